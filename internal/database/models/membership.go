package models

import (
	"github.com/google/uuid"
)

// Membership links a user to an organization. The (user, organization)
// pair is unique at the database level.
type Membership struct {
	BaseModel
	UserID         uuid.UUID `json:"user_id" gorm:"type:uuid;not null;uniqueIndex:idx_memberships_user_org"`
	OrganizationID uuid.UUID `json:"org_id" gorm:"type:uuid;not null;uniqueIndex:idx_memberships_user_org"`

	// Relationships
	User         *User         `json:"user,omitempty" gorm:"foreignKey:UserID"`
	Organization *Organization `json:"organization,omitempty" gorm:"foreignKey:OrganizationID"`
}

// TableName returns the table name for Membership
func (Membership) TableName() string {
	return "memberships"
}
