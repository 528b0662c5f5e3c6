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

// OrganizationHandler handles HTTP requests for organizations
type OrganizationHandler struct {
	service service.OrganizationServiceInterface
}

// NewOrganizationHandler creates a new organization handler
func NewOrganizationHandler(service service.OrganizationServiceInterface) *OrganizationHandler {
	return &OrganizationHandler{service: service}
}

// CreateOrganization handles POST /api/organizations
// @Summary Create a new organization
// @Description Create an organization; the caller becomes its first member
// @Tags organizations
// @Accept json
// @Produce json
// @Param organization body service.CreateOrganizationRequest true "Organization data"
// @Success 201 {object} map[string]interface{} "Organization created successfully"
// @Failure 401 {object} map[string]interface{} "Unauthorized"
// @Failure 422 {object} map[string]interface{} "Validation failed"
// @Security BearerAuth
// @Router /api/organizations [post]
func (h *OrganizationHandler) CreateOrganization(c *gin.Context) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		respondError(c, http.StatusUnauthorized, "Authorization denied")
		return
	}

	var req service.CreateOrganizationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	org, err := h.service.Create(userID, &req)
	if err != nil {
		if respondValidationError(c, err) {
			return
		}
		respondError(c, http.StatusInternalServerError, "Failed to create organization")
		return
	}

	respondSuccess(c, http.StatusCreated, "Organization created successfully", org)
}

// ListOrganizations handles GET /api/organizations
// @Summary List the caller's organizations
// @Description Get all organizations the authenticated user belongs to
// @Tags organizations
// @Produce json
// @Success 200 {object} map[string]interface{} "Organizations retrieved successfully"
// @Failure 401 {object} map[string]interface{} "Unauthorized"
// @Security BearerAuth
// @Router /api/organizations [get]
func (h *OrganizationHandler) ListOrganizations(c *gin.Context) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		respondError(c, http.StatusUnauthorized, "Authorization denied")
		return
	}

	orgs, err := h.service.ListForUser(userID)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to list organizations")
		return
	}

	respondSuccess(c, http.StatusOK, "Organizations retrieved successfully", gin.H{"organizations": orgs})
}

// GetOrganization handles GET /api/organizations/:orgId
// @Summary Get organization by ID
// @Tags organizations
// @Produce json
// @Param orgId path string true "Organization ID (UUID)"
// @Success 200 {object} map[string]interface{} "Organization retrieved successfully"
// @Failure 404 {object} map[string]interface{} "Organization not found"
// @Security BearerAuth
// @Router /api/organizations/{orgId} [get]
func (h *OrganizationHandler) GetOrganization(c *gin.Context) {
	orgID, err := uuid.Parse(c.Param("orgId"))
	if err != nil {
		respondError(c, http.StatusNotFound, "Organization not found")
		return
	}

	org, err := h.service.GetByID(orgID)
	if err != nil {
		if errors.Is(err, apperrors.ErrOrganizationNotFound) {
			respondError(c, http.StatusNotFound, "Organization not found")
			return
		}
		respondError(c, http.StatusInternalServerError, "Failed to get organization")
		return
	}

	respondSuccess(c, http.StatusOK, "Organization retrieved successfully", org)
}

// addMemberRequest is the body for adding a user to an organization
type addMemberRequest struct {
	UserID uuid.UUID `json:"userId" binding:"required"`
}

// AddMember handles POST /api/organizations/:orgId/users
// @Summary Add a user to an organization
// @Description Create a membership; adding an existing member returns the current membership
// @Tags organizations
// @Accept json
// @Produce json
// @Param orgId path string true "Organization ID (UUID)"
// @Param member body addMemberRequest true "User to add"
// @Success 201 {object} map[string]interface{} "User added to organization successfully"
// @Failure 404 {object} map[string]interface{} "Organization or user not found"
// @Security BearerAuth
// @Router /api/organizations/{orgId}/users [post]
func (h *OrganizationHandler) AddMember(c *gin.Context) {
	orgID, err := uuid.Parse(c.Param("orgId"))
	if err != nil {
		respondError(c, http.StatusNotFound, "Organization not found")
		return
	}

	var req addMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	membership, err := h.service.AddMember(orgID, req.UserID)
	if err != nil {
		if apperrors.IsNotFound(err) {
			respondError(c, http.StatusNotFound, err.Error())
			return
		}
		respondError(c, http.StatusInternalServerError, "Failed to add user to organization")
		return
	}

	respondSuccess(c, http.StatusCreated, "User added to organization successfully", membership)
}
