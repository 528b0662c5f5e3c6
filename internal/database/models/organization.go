package models

// Organization represents a tenant users can belong to. Names are not
// unique: every registration creates a default "<firstName>'s Organization".
type Organization struct {
	BaseModel
	Name        string `json:"name" gorm:"not null;size:200" validate:"required,max=200"`
	Description string `json:"description" gorm:"type:text"`

	// Relationships
	Memberships []Membership `json:"memberships,omitempty" gorm:"foreignKey:OrganizationID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Organization
func (Organization) TableName() string {
	return "organizations"
}
