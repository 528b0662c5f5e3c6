package service

import (
	"errors"
	"fmt"

	"org-portal-backend/internal/auth"
	"org-portal-backend/internal/database/models"
	apperrors "org-portal-backend/internal/errors"
	"org-portal-backend/internal/logger"
	"org-portal-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

// AuthService handles registration and login
type AuthService struct {
	userRepo  repository.UserRepositoryInterface
	tokens    *auth.TokenService
	validator *validator.Validate
}

// NewAuthService creates a new auth service
func NewAuthService(userRepo repository.UserRepositoryInterface, tokens *auth.TokenService, validator *validator.Validate) *AuthService {
	return &AuthService{
		userRepo:  userRepo,
		tokens:    tokens,
		validator: validator,
	}
}

// RegisterRequest represents the request to register a new user
type RegisterRequest struct {
	FirstName string `json:"firstName" validate:"required,max=100"`
	LastName  string `json:"lastName" validate:"required,max=100"`
	Email     string `json:"email" validate:"required,email,max=255"`
	Password  string `json:"password" validate:"required,min=12"`
	Phone     string `json:"phone,omitempty" validate:"omitempty,max=20"`
}

// LoginRequest represents the request to log in
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// AuthResponse represents the response for register and login operations
type AuthResponse struct {
	AccessToken string      `json:"accessToken"`
	User        UserProfile `json:"user"`
}

// Register creates a new user together with their default organization and
// membership, then issues an access token. The three writes happen in one
// transaction: a duplicate email leaves no partial rows behind.
func (s *AuthService) Register(req *RegisterRequest) (*AuthResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	existing, err := s.userRepo.GetByEmail(req.Email)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check existing user: %w", err)
	}
	if existing != nil {
		return nil, apperrors.ErrEmailInUse
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Email:        req.Email,
		PasswordHash: hash,
		Phone:        req.Phone,
	}
	org := &models.Organization{
		Name: fmt.Sprintf("%s's Organization", req.FirstName),
	}

	if err := s.userRepo.CreateWithDefaultOrganization(user, org); err != nil {
		// A concurrent registration can slip past the pre-check; the unique
		// index on email decides the winner.
		if repository.IsDuplicateKey(err) {
			return nil, apperrors.ErrEmailInUse
		}
		return nil, fmt.Errorf("failed to register user: %w", err)
	}

	token, err := s.tokens.Generate(user.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	logger.New().WithField("user_id", user.ID).Info("User registered with default organization")

	return &AuthResponse{
		AccessToken: token,
		User:        toProfile(user),
	}, nil
}

// Login authenticates a user by email and password and issues an access
// token. Unknown email and wrong password return the same error.
func (s *AuthService) Login(req *LoginRequest) (*AuthResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	user, err := s.userRepo.GetByEmail(req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	if !auth.ComparePassword(user.PasswordHash, req.Password) {
		logger.New().WithField("user_id", user.ID).Warn("Login attempt with wrong password")
		return nil, apperrors.ErrInvalidCredentials
	}

	token, err := s.tokens.Generate(user.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	return &AuthResponse{
		AccessToken: token,
		User:        toProfile(user),
	}, nil
}
