package service

import (
	"errors"
	"fmt"

	"org-portal-backend/internal/database/models"
	apperrors "org-portal-backend/internal/errors"
	"org-portal-backend/internal/logger"
	"org-portal-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// OrganizationService handles business logic for organizations and
// memberships
type OrganizationService struct {
	orgRepo        repository.OrganizationRepositoryInterface
	userRepo       repository.UserRepositoryInterface
	membershipRepo repository.MembershipRepositoryInterface
	validator      *validator.Validate
}

// NewOrganizationService creates a new organization service
func NewOrganizationService(
	orgRepo repository.OrganizationRepositoryInterface,
	userRepo repository.UserRepositoryInterface,
	membershipRepo repository.MembershipRepositoryInterface,
	validator *validator.Validate,
) *OrganizationService {
	return &OrganizationService{
		orgRepo:        orgRepo,
		userRepo:       userRepo,
		membershipRepo: membershipRepo,
		validator:      validator,
	}
}

// CreateOrganizationRequest represents the request to create an organization
type CreateOrganizationRequest struct {
	Name        string `json:"name" validate:"required,max=200"`
	Description string `json:"description" validate:"required"`
}

// OrganizationResponse represents the response for organization operations
type OrganizationResponse struct {
	OrgID       uuid.UUID `json:"orgId"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
}

// MembershipResponse represents the response for membership operations
type MembershipResponse struct {
	ID     uuid.UUID `json:"id"`
	UserID uuid.UUID `json:"userId"`
	OrgID  uuid.UUID `json:"orgId"`
}

// Create creates an organization and makes the requesting user a member
func (s *OrganizationService) Create(userID uuid.UUID, req *CreateOrganizationRequest) (*OrganizationResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	org := &models.Organization{
		Name:        req.Name,
		Description: req.Description,
	}

	if err := s.orgRepo.CreateWithMember(org, userID); err != nil {
		return nil, fmt.Errorf("failed to create organization: %w", err)
	}

	return s.toResponse(org), nil
}

// ListForUser returns all organizations the user is a member of. No
// memberships is not an error; the list is simply empty.
func (s *OrganizationService) ListForUser(userID uuid.UUID) ([]OrganizationResponse, error) {
	orgs, err := s.orgRepo.GetByUserID(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list organizations: %w", err)
	}

	responses := make([]OrganizationResponse, len(orgs))
	for i, org := range orgs {
		responses[i] = *s.toResponse(&org)
	}
	return responses, nil
}

// GetByID retrieves an organization by ID
func (s *OrganizationService) GetByID(orgID uuid.UUID) (*OrganizationResponse, error) {
	org, err := s.orgRepo.GetByID(orgID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrOrganizationNotFound
		}
		return nil, fmt.Errorf("failed to get organization: %w", err)
	}

	return s.toResponse(org), nil
}

// AddMember adds a user to an organization. Adding a user who is already a
// member returns the existing membership.
func (s *OrganizationService) AddMember(orgID, userID uuid.UUID) (*MembershipResponse, error) {
	if _, err := s.orgRepo.GetByID(orgID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrOrganizationNotFound
		}
		return nil, fmt.Errorf("failed to get organization: %w", err)
	}

	if _, err := s.userRepo.GetByID(userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	existing, err := s.membershipRepo.GetByUserAndOrganization(userID, orgID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check existing membership: %w", err)
	}
	if existing != nil {
		return toMembershipResponse(existing), nil
	}

	membership := &models.Membership{
		UserID:         userID,
		OrganizationID: orgID,
	}
	if err := s.membershipRepo.Create(membership); err != nil {
		// A concurrent add can win the race; fall back to the row it wrote.
		if repository.IsDuplicateKey(err) {
			existing, err := s.membershipRepo.GetByUserAndOrganization(userID, orgID)
			if err != nil {
				return nil, fmt.Errorf("failed to get membership: %w", err)
			}
			return toMembershipResponse(existing), nil
		}
		return nil, fmt.Errorf("failed to add member: %w", err)
	}

	logger.New().WithFields(map[string]interface{}{
		"user_id":         userID,
		"organization_id": orgID,
	}).Info("User added to organization")

	return toMembershipResponse(membership), nil
}

// toResponse converts an organization model to response
func (s *OrganizationService) toResponse(org *models.Organization) *OrganizationResponse {
	return &OrganizationResponse{
		OrgID:       org.ID,
		Name:        org.Name,
		Description: org.Description,
	}
}

func toMembershipResponse(m *models.Membership) *MembershipResponse {
	return &MembershipResponse{
		ID:     m.ID,
		UserID: m.UserID,
		OrgID:  m.OrganizationID,
	}
}
