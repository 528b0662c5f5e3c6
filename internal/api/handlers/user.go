package handlers

import (
	"errors"
	"net/http"

	"org-portal-backend/internal/auth"
	apperrors "org-portal-backend/internal/errors"
	"org-portal-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// UserHandler handles HTTP requests for user profiles
type UserHandler struct {
	service service.UserServiceInterface
}

// NewUserHandler creates a new user handler
func NewUserHandler(service service.UserServiceInterface) *UserHandler {
	return &UserHandler{service: service}
}

// GetUser handles GET /api/users/:id
// @Summary Get a user's profile
// @Description Return the profile when the target is the caller or shares an organization with them
// @Tags users
// @Produce json
// @Param id path string true "User ID (UUID)"
// @Success 200 {object} map[string]interface{} "User retrieved successfully"
// @Failure 404 {object} map[string]interface{} "User not found"
// @Security BearerAuth
// @Router /api/users/{id} [get]
func (h *UserHandler) GetUser(c *gin.Context) {
	requesterID, ok := auth.GetUserID(c)
	if !ok {
		respondError(c, http.StatusUnauthorized, "Authorization denied")
		return
	}

	targetID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respondError(c, http.StatusNotFound, "User not found")
		return
	}

	profile, err := h.service.GetVisibleUser(targetID, requesterID)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			respondError(c, http.StatusNotFound, "User not found")
			return
		}
		respondError(c, http.StatusInternalServerError, "Failed to get user")
		return
	}

	respondSuccess(c, http.StatusOK, "User retrieved successfully", profile)
}
