package models

// User represents a registered account
type User struct {
	BaseModel
	FirstName    string `json:"first_name" gorm:"not null;size:100" validate:"required,max=100"`
	LastName     string `json:"last_name" gorm:"not null;size:100" validate:"required,max=100"`
	Email        string `json:"email" gorm:"uniqueIndex;not null;size:255" validate:"required,email,max=255"`
	PasswordHash string `json:"-" gorm:"not null;size:255"`
	Phone        string `json:"phone,omitempty" gorm:"size:20"`

	// Relationships
	Memberships []Membership `json:"memberships,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for User
func (User) TableName() string {
	return "users"
}
