package testutils

import (
	"fmt"
	"time"

	"org-portal-backend/internal/auth"
	"org-portal-backend/internal/database/models"

	"github.com/google/uuid"
)

// TestPassword is the plaintext behind every factory-built user's hash.
const TestPassword = "correct-horse-battery"

// UserFactory provides methods to create test User data
type UserFactory struct{}

// NewUserFactory creates a new UserFactory
func NewUserFactory() *UserFactory {
	return &UserFactory{}
}

// Create creates a test User with default values and a unique email
func (f *UserFactory) Create() *models.User {
	id := uuid.New()
	hash, _ := auth.HashPassword(TestPassword)

	return &models.User{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		FirstName:    "Jane",
		LastName:     "Doe",
		Email:        fmt.Sprintf("jane.doe+%s@test.com", id.String()[:8]),
		PasswordHash: hash,
		Phone:        "+1-555-0123",
	}
}

// WithEmail sets a custom email for the user
func (f *UserFactory) WithEmail(email string) *models.User {
	user := f.Create()
	user.Email = email
	return user
}

// WithName sets a custom first and last name for the user
func (f *UserFactory) WithName(first, last string) *models.User {
	user := f.Create()
	user.FirstName = first
	user.LastName = last
	return user
}

// WithPassword hashes and sets a custom password for the user
func (f *UserFactory) WithPassword(password string) *models.User {
	user := f.Create()
	hash, _ := auth.HashPassword(password)
	user.PasswordHash = hash
	return user
}

// OrganizationFactory provides methods to create test Organization data
type OrganizationFactory struct{}

// NewOrganizationFactory creates a new OrganizationFactory
func NewOrganizationFactory() *OrganizationFactory {
	return &OrganizationFactory{}
}

// Create creates a test Organization with default values
func (f *OrganizationFactory) Create() *models.Organization {
	return &models.Organization{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Name:        "Test Organization",
		Description: "A test organization for testing purposes",
	}
}

// WithName sets a custom name for the organization
func (f *OrganizationFactory) WithName(name string) *models.Organization {
	org := f.Create()
	org.Name = name
	return org
}

// MembershipFactory provides methods to create test Membership data
type MembershipFactory struct{}

// NewMembershipFactory creates a new MembershipFactory
func NewMembershipFactory() *MembershipFactory {
	return &MembershipFactory{}
}

// Create creates a test Membership between the given user and organization
func (f *MembershipFactory) Create(userID, orgID uuid.UUID) *models.Membership {
	return &models.Membership{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		UserID:         userID,
		OrganizationID: orgID,
	}
}

// FactorySet provides access to all factories
type FactorySet struct {
	User         *UserFactory
	Organization *OrganizationFactory
	Membership   *MembershipFactory
}

// NewFactorySet creates a new FactorySet with all factories initialized
func NewFactorySet() *FactorySet {
	return &FactorySet{
		User:         NewUserFactory(),
		Organization: NewOrganizationFactory(),
		Membership:   NewMembershipFactory(),
	}
}
