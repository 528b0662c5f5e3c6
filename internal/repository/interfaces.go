package repository

import (
	"org-portal-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// UserRepositoryInterface defines the interface for user repository operations
type UserRepositoryInterface interface {
	Create(user *models.User) error
	CreateWithDefaultOrganization(user *models.User, org *models.Organization) error
	GetByID(id uuid.UUID) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	Update(user *models.User) error
	Delete(id uuid.UUID) error
}

// OrganizationRepositoryInterface defines the interface for organization repository operations
type OrganizationRepositoryInterface interface {
	Create(org *models.Organization) error
	CreateWithMember(org *models.Organization, userID uuid.UUID) error
	GetByID(id uuid.UUID) (*models.Organization, error)
	GetByUserID(userID uuid.UUID) ([]models.Organization, error)
	Update(org *models.Organization) error
	Delete(id uuid.UUID) error
}

// MembershipRepositoryInterface defines the interface for membership repository operations
type MembershipRepositoryInterface interface {
	Create(membership *models.Membership) error
	GetByUserAndOrganization(userID, orgID uuid.UUID) (*models.Membership, error)
	HaveSharedOrganization(userID, otherID uuid.UUID) (bool, error)
	Delete(id uuid.UUID) error
}
