package service

import (
	"errors"
	"fmt"

	"org-portal-backend/internal/database/models"
	apperrors "org-portal-backend/internal/errors"
	"org-portal-backend/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserService handles profile lookups with the same-organization
// visibility rule
type UserService struct {
	userRepo       repository.UserRepositoryInterface
	membershipRepo repository.MembershipRepositoryInterface
}

// NewUserService creates a new user service
func NewUserService(userRepo repository.UserRepositoryInterface, membershipRepo repository.MembershipRepositoryInterface) *UserService {
	return &UserService{
		userRepo:       userRepo,
		membershipRepo: membershipRepo,
	}
}

// UserProfile represents the public shape of a user. The password hash is
// never part of it.
type UserProfile struct {
	UserID    uuid.UUID `json:"userId"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone,omitempty"`
}

// GetVisibleUser returns the target user's profile when the requester is
// the target or shares at least one organization with them. A missing
// target and a non-visible target collapse to the same not-found error so
// existence does not leak.
func (s *UserService) GetVisibleUser(targetID, requesterID uuid.UUID) (*UserProfile, error) {
	if targetID != requesterID {
		shared, err := s.membershipRepo.HaveSharedOrganization(requesterID, targetID)
		if err != nil {
			return nil, fmt.Errorf("failed to check shared organizations: %w", err)
		}
		if !shared {
			return nil, apperrors.ErrUserNotFound
		}
	}

	user, err := s.userRepo.GetByID(targetID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	profile := toProfile(user)
	return &profile, nil
}

// toProfile converts a user model to its public profile
func toProfile(user *models.User) UserProfile {
	return UserProfile{
		UserID:    user.ID,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Email:     user.Email,
		Phone:     user.Phone,
	}
}
