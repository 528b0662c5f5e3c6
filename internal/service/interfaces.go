package service

import (
	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// AuthServiceInterface defines the interface for the auth service
type AuthServiceInterface interface {
	Register(req *RegisterRequest) (*AuthResponse, error)
	Login(req *LoginRequest) (*AuthResponse, error)
}

// OrganizationServiceInterface defines the interface for the organization service
type OrganizationServiceInterface interface {
	Create(userID uuid.UUID, req *CreateOrganizationRequest) (*OrganizationResponse, error)
	ListForUser(userID uuid.UUID) ([]OrganizationResponse, error)
	GetByID(orgID uuid.UUID) (*OrganizationResponse, error)
	AddMember(orgID, userID uuid.UUID) (*MembershipResponse, error)
}

// UserServiceInterface defines the interface for the user service
type UserServiceInterface interface {
	GetVisibleUser(targetID, requesterID uuid.UUID) (*UserProfile, error)
}
