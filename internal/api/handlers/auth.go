package handlers

import (
	"errors"
	"net/http"

	apperrors "org-portal-backend/internal/errors"
	"org-portal-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// AuthHandler handles HTTP requests for registration and login
type AuthHandler struct {
	service service.AuthServiceInterface
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(service service.AuthServiceInterface) *AuthHandler {
	return &AuthHandler{service: service}
}

// Register handles POST /auth/register
// @Summary Register a new user
// @Description Register a user, creating their default organization and membership
// @Tags auth
// @Accept json
// @Produce json
// @Param registration body service.RegisterRequest true "Registration data"
// @Success 201 {object} map[string]interface{} "Registration successful"
// @Failure 400 {object} map[string]interface{} "Email already in use"
// @Failure 422 {object} map[string]interface{} "Validation failed"
// @Router /auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req service.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	resp, err := h.service.Register(&req)
	if err != nil {
		if respondValidationError(c, err) {
			return
		}
		if errors.Is(err, apperrors.ErrEmailInUse) {
			respondError(c, http.StatusBadRequest, "Email already in use")
			return
		}
		respondError(c, http.StatusInternalServerError, "Registration unsuccessful")
		return
	}

	respondSuccess(c, http.StatusCreated, "Registration successful", resp)
}

// Login handles POST /auth/login
// @Summary Log a user in
// @Description Authenticate by email and password and return an access token
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body service.LoginRequest true "Login credentials"
// @Success 200 {object} map[string]interface{} "Login successful"
// @Failure 401 {object} map[string]interface{} "Authentication failed"
// @Failure 422 {object} map[string]interface{} "Validation failed"
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req service.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	resp, err := h.service.Login(&req)
	if err != nil {
		if respondValidationError(c, err) {
			return
		}
		if errors.Is(err, apperrors.ErrInvalidCredentials) {
			respondError(c, http.StatusUnauthorized, "Authentication failed")
			return
		}
		respondError(c, http.StatusInternalServerError, "Login unsuccessful")
		return
	}

	respondSuccess(c, http.StatusOK, "Login successful", resp)
}
