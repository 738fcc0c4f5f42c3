package handlers

import (
	"net/http"

	"widget-admin-backend/internal/auth"
	"widget-admin-backend/internal/database/models"
	"widget-admin-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// OrganizationHandler handles HTTP requests for organizations
type OrganizationHandler struct {
	service service.OrganizationServiceInterface
	members service.MemberServiceInterface
}

// NewOrganizationHandler creates a new organization handler
func NewOrganizationHandler(service service.OrganizationServiceInterface, members service.MemberServiceInterface) *OrganizationHandler {
	return &OrganizationHandler{service: service, members: members}
}

// SetStatusRequest suspends or reactivates an organization
type SetStatusRequest struct {
	Status string `json:"status" binding:"required" example:"suspended"`
}

// CreateOrganization handles POST /api/v1/organizations
// @Summary Create a new organization
// @Description Create an organization; the caller becomes its owner and a free subscription is started
// @Tags organizations
// @Accept json
// @Produce json
// @Param organization body service.CreateOrganizationRequest true "Organization data"
// @Success 201 {object} service.OrganizationResponse "Successfully created organization"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 409 {object} ErrorResponse "Organization slug already exists"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /organizations [post]
func (h *OrganizationHandler) CreateOrganization(c *gin.Context) {
	var req service.CreateOrganizationRequest
	if !bindJSON(c, &req) {
		return
	}

	org, err := h.service.Create(actorFrom(c), &req)
	if err != nil {
		respondError(c, err, "Failed to create organization")
		return
	}

	c.JSON(http.StatusCreated, org)
}

// ListOrganizations handles GET /api/v1/organizations
// @Summary List organizations
// @Description Organizations the caller belongs to; platform administrators see all of them
// @Tags organizations
// @Produce json
// @Param page query int false "Page number (default 1)"
// @Param page_size query int false "Page size (default 20, max 100)"
// @Success 200 {object} service.OrganizationListResponse
// @Failure 400 {object} ErrorResponse "Invalid pagination parameters"
// @Security BearerAuth
// @Router /organizations [get]
func (h *OrganizationHandler) ListOrganizations(c *gin.Context) {
	page, pageSize, ok := pageParams(c)
	if !ok {
		return
	}

	resp, err := h.service.List(actorFrom(c), page, pageSize)
	if err != nil {
		respondError(c, err, "Failed to list organizations")
		return
	}

	c.JSON(http.StatusOK, resp)
}

// GetOrganization handles GET /api/v1/organizations/:id
// @Summary Get organization by ID
// @Tags organizations
// @Produce json
// @Param id path string true "Organization ID (UUID)"
// @Success 200 {object} service.OrganizationResponse
// @Failure 400 {object} ErrorResponse "Invalid organization ID"
// @Failure 404 {object} ErrorResponse "Organization not found"
// @Security BearerAuth
// @Router /organizations/{id} [get]
func (h *OrganizationHandler) GetOrganization(c *gin.Context) {
	id, ok := uuidParam(c, "id", "organization")
	if !ok {
		return
	}

	org, err := h.service.GetByID(id)
	if err != nil {
		respondError(c, err, "Failed to get organization")
		return
	}

	c.JSON(http.StatusOK, org)
}

// GetOrganizationBySlug handles GET /api/v1/organizations/by-slug/:slug
// @Summary Get organization by slug
// @Tags organizations
// @Produce json
// @Param slug path string true "Organization slug"
// @Success 200 {object} service.OrganizationResponse
// @Failure 403 {object} ErrorResponse "Not a member of the organization"
// @Failure 404 {object} ErrorResponse "Organization not found"
// @Security BearerAuth
// @Router /organizations/by-slug/{slug} [get]
func (h *OrganizationHandler) GetOrganizationBySlug(c *gin.Context) {
	org, err := h.service.GetBySlug(c.Param("slug"))
	if err != nil {
		respondError(c, err, "Failed to get organization")
		return
	}

	// The route carries no :id, so membership is checked here
	if !auth.IsSuperAdmin(c) {
		userID, _ := auth.GetUserID(c)
		if _, err := h.members.RoleOf(org.ID, userID); err != nil {
			respondError(c, err, "Failed to get organization")
			return
		}
	}

	c.JSON(http.StatusOK, org)
}

// UpdateOrganization handles PUT /api/v1/organizations/:id
// @Summary Update organization
// @Tags organizations
// @Accept json
// @Produce json
// @Param id path string true "Organization ID (UUID)"
// @Param organization body service.UpdateOrganizationRequest true "Fields to update"
// @Success 200 {object} service.OrganizationResponse
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 404 {object} ErrorResponse "Organization not found"
// @Security BearerAuth
// @Router /organizations/{id} [put]
func (h *OrganizationHandler) UpdateOrganization(c *gin.Context) {
	id, ok := uuidParam(c, "id", "organization")
	if !ok {
		return
	}
	var req service.UpdateOrganizationRequest
	if !bindJSON(c, &req) {
		return
	}

	org, err := h.service.Update(actorFrom(c), id, &req)
	if err != nil {
		respondError(c, err, "Failed to update organization")
		return
	}

	c.JSON(http.StatusOK, org)
}

// ChangePlan handles PUT /api/v1/organizations/:id/plan
// @Summary Change subscription plan
// @Tags organizations
// @Accept json
// @Produce json
// @Param id path string true "Organization ID (UUID)"
// @Param plan body service.ChangePlanRequest true "Plan and billing interval"
// @Success 200 {object} service.OrganizationResponse
// @Failure 400 {object} ErrorResponse "Unknown plan"
// @Security BearerAuth
// @Router /organizations/{id}/plan [put]
func (h *OrganizationHandler) ChangePlan(c *gin.Context) {
	id, ok := uuidParam(c, "id", "organization")
	if !ok {
		return
	}
	var req service.ChangePlanRequest
	if !bindJSON(c, &req) {
		return
	}

	org, err := h.service.ChangePlan(actorFrom(c), id, &req)
	if err != nil {
		respondError(c, err, "Failed to change plan")
		return
	}

	c.JSON(http.StatusOK, org)
}

// CancelSubscription handles DELETE /api/v1/organizations/:id/subscription
// @Summary Cancel subscription
// @Tags organizations
// @Produce json
// @Param id path string true "Organization ID (UUID)"
// @Success 200 {object} service.OrganizationResponse
// @Failure 409 {object} ErrorResponse "Subscription already canceled"
// @Security BearerAuth
// @Router /organizations/{id}/subscription [delete]
func (h *OrganizationHandler) CancelSubscription(c *gin.Context) {
	id, ok := uuidParam(c, "id", "organization")
	if !ok {
		return
	}

	org, err := h.service.CancelSubscription(actorFrom(c), id)
	if err != nil {
		respondError(c, err, "Failed to cancel subscription")
		return
	}

	c.JSON(http.StatusOK, org)
}

// SetStatus handles PUT /api/v1/admin/organizations/:id/status
// @Summary Suspend or reactivate an organization
// @Description Platform administrators only. Suspended organizations' widgets are served as inactive.
// @Tags admin
// @Accept json
// @Produce json
// @Param id path string true "Organization ID (UUID)"
// @Param status body SetStatusRequest true "active or suspended"
// @Success 200 {object} service.OrganizationResponse
// @Failure 400 {object} ErrorResponse "Invalid status"
// @Failure 403 {object} ErrorResponse "Platform administrator access required"
// @Security BearerAuth
// @Router /admin/organizations/{id}/status [put]
func (h *OrganizationHandler) SetStatus(c *gin.Context) {
	id, ok := uuidParam(c, "id", "organization")
	if !ok {
		return
	}
	var req SetStatusRequest
	if !bindJSON(c, &req) {
		return
	}

	org, err := h.service.SetStatus(actorFrom(c), id, models.OrganizationStatus(req.Status))
	if err != nil {
		respondError(c, err, "Failed to update organization status")
		return
	}

	c.JSON(http.StatusOK, org)
}

// DeleteOrganization handles DELETE /api/v1/organizations/:id
// @Summary Delete organization
// @Description Owners only. Removes the organization and everything it owns.
// @Tags organizations
// @Param id path string true "Organization ID (UUID)"
// @Success 204 "Organization deleted"
// @Failure 403 {object} ErrorResponse "Owner role required"
// @Failure 404 {object} ErrorResponse "Organization not found"
// @Security BearerAuth
// @Router /organizations/{id} [delete]
func (h *OrganizationHandler) DeleteOrganization(c *gin.Context) {
	id, ok := uuidParam(c, "id", "organization")
	if !ok {
		return
	}

	if err := h.service.Delete(actorFrom(c), id); err != nil {
		respondError(c, err, "Failed to delete organization")
		return
	}

	c.Status(http.StatusNoContent)
}
