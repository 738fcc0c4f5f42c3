package handlers

import (
	"net/http"

	"widget-admin-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// InvitationHandler handles HTTP requests for invitations
type InvitationHandler struct {
	service service.InvitationServiceInterface
}

// NewInvitationHandler creates a new invitation handler
func NewInvitationHandler(service service.InvitationServiceInterface) *InvitationHandler {
	return &InvitationHandler{service: service}
}

// CreateInvitation handles POST /api/v1/organizations/:id/invitations
// @Summary Invite a user
// @Description Sends a plain-text email with an accept link valid for 7 days
// @Tags invitations
// @Accept json
// @Produce json
// @Param id path string true "Organization ID (UUID)"
// @Param invitation body service.CreateInvitationRequest true "Email and role"
// @Success 201 {object} service.InvitationCreatedResponse
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 409 {object} ErrorResponse "Already a member or pending invitation"
// @Security BearerAuth
// @Router /organizations/{id}/invitations [post]
func (h *InvitationHandler) CreateInvitation(c *gin.Context) {
	orgID, ok := uuidParam(c, "id", "organization")
	if !ok {
		return
	}
	var req service.CreateInvitationRequest
	if !bindJSON(c, &req) {
		return
	}

	resp, err := h.service.Create(c.Request.Context(), actorFrom(c), orgID, &req)
	if err != nil {
		respondError(c, err, "Failed to create invitation")
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// ListInvitations handles GET /api/v1/organizations/:id/invitations
// @Summary List invitations
// @Tags invitations
// @Produce json
// @Param id path string true "Organization ID (UUID)"
// @Param status query string false "pending, accepted, revoked or expired"
// @Param page query int false "Page number (default 1)"
// @Param page_size query int false "Page size (default 20, max 100)"
// @Success 200 {object} service.InvitationListResponse
// @Security BearerAuth
// @Router /organizations/{id}/invitations [get]
func (h *InvitationHandler) ListInvitations(c *gin.Context) {
	orgID, ok := uuidParam(c, "id", "organization")
	if !ok {
		return
	}
	page, pageSize, ok := pageParams(c)
	if !ok {
		return
	}

	resp, err := h.service.List(orgID, c.Query("status"), page, pageSize)
	if err != nil {
		respondError(c, err, "Failed to list invitations")
		return
	}

	c.JSON(http.StatusOK, resp)
}

// RevokeInvitation handles DELETE /api/v1/organizations/:id/invitations/:invitationId
// @Summary Revoke a pending invitation
// @Tags invitations
// @Produce json
// @Param id path string true "Organization ID (UUID)"
// @Param invitationId path string true "Invitation ID (UUID)"
// @Success 200 {object} service.InvitationResponse
// @Failure 409 {object} ErrorResponse "Invitation is no longer pending"
// @Security BearerAuth
// @Router /organizations/{id}/invitations/{invitationId} [delete]
func (h *InvitationHandler) RevokeInvitation(c *gin.Context) {
	orgID, ok := uuidParam(c, "id", "organization")
	if !ok {
		return
	}
	id, ok := uuidParam(c, "invitationId", "invitation")
	if !ok {
		return
	}

	resp, err := h.service.Revoke(actorFrom(c), orgID, id)
	if err != nil {
		respondError(c, err, "Failed to revoke invitation")
		return
	}

	c.JSON(http.StatusOK, resp)
}

// ResendInvitation handles POST /api/v1/organizations/:id/invitations/:invitationId/resend
// @Summary Resend an invitation
// @Description Rotates the token and resets the expiry to 7 days from now
// @Tags invitations
// @Produce json
// @Param id path string true "Organization ID (UUID)"
// @Param invitationId path string true "Invitation ID (UUID)"
// @Success 200 {object} service.InvitationCreatedResponse
// @Security BearerAuth
// @Router /organizations/{id}/invitations/{invitationId}/resend [post]
func (h *InvitationHandler) ResendInvitation(c *gin.Context) {
	orgID, ok := uuidParam(c, "id", "organization")
	if !ok {
		return
	}
	id, ok := uuidParam(c, "invitationId", "invitation")
	if !ok {
		return
	}

	resp, err := h.service.Resend(c.Request.Context(), actorFrom(c), orgID, id)
	if err != nil {
		respondError(c, err, "Failed to resend invitation")
		return
	}

	c.JSON(http.StatusOK, resp)
}

// AcceptInvitation handles POST /api/v1/invitations/accept
// @Summary Accept an invitation
// @Description Public endpoint. Creates the account when the email is not registered yet.
// @Tags invitations
// @Accept json
// @Produce json
// @Param request body service.AcceptInvitationRequest true "Token and account details"
// @Success 200 {object} service.AcceptInvitationResponse
// @Failure 400 {object} ErrorResponse "Password required for new accounts"
// @Failure 404 {object} ErrorResponse "Unknown token"
// @Failure 409 {object} ErrorResponse "Invitation already used or revoked"
// @Failure 410 {object} ErrorResponse "Invitation has expired"
// @Router /invitations/accept [post]
func (h *InvitationHandler) AcceptInvitation(c *gin.Context) {
	var req service.AcceptInvitationRequest
	if !bindJSON(c, &req) {
		return
	}

	resp, err := h.service.Accept(c.Request.Context(), &req, c.ClientIP(), c.Request.UserAgent())
	if err != nil {
		respondError(c, err, "Failed to accept invitation")
		return
	}

	c.JSON(http.StatusOK, resp)
}
