package handlers

import (
	"net/http"

	"widget-admin-backend/internal/auth"
	"widget-admin-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// MemberHandler handles HTTP requests for organization members and the current user
type MemberHandler struct {
	service service.MemberServiceInterface
}

// NewMemberHandler creates a new member handler
func NewMemberHandler(service service.MemberServiceInterface) *MemberHandler {
	return &MemberHandler{service: service}
}

// Me handles GET /api/v1/me
// @Summary Current user
// @Description Profile of the signed-in user with organization memberships
// @Tags members
// @Produce json
// @Success 200 {object} service.ProfileResponse
// @Failure 401 {object} ErrorResponse "Not authenticated"
// @Security BearerAuth
// @Router /me [get]
func (h *MemberHandler) Me(c *gin.Context) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	profile, err := h.service.Profile(userID)
	if err != nil {
		respondError(c, err, "Failed to load profile")
		return
	}

	c.JSON(http.StatusOK, profile)
}

// ListMembers handles GET /api/v1/organizations/:id/members
// @Summary List members
// @Tags members
// @Produce json
// @Param id path string true "Organization ID (UUID)"
// @Param q query string false "Filter by email or name"
// @Param page query int false "Page number (default 1)"
// @Param page_size query int false "Page size (default 20, max 100)"
// @Success 200 {object} service.MemberListResponse
// @Security BearerAuth
// @Router /organizations/{id}/members [get]
func (h *MemberHandler) ListMembers(c *gin.Context) {
	orgID, ok := uuidParam(c, "id", "organization")
	if !ok {
		return
	}
	page, pageSize, ok := pageParams(c)
	if !ok {
		return
	}

	resp, err := h.service.List(orgID, c.Query("q"), page, pageSize)
	if err != nil {
		respondError(c, err, "Failed to list members")
		return
	}

	c.JSON(http.StatusOK, resp)
}

// ChangeRole handles PUT /api/v1/organizations/:id/members/:userId
// @Summary Change a member's role
// @Description Demoting the last owner is rejected
// @Tags members
// @Accept json
// @Produce json
// @Param id path string true "Organization ID (UUID)"
// @Param userId path string true "User ID (UUID)"
// @Param role body service.ChangeRoleRequest true "New role"
// @Success 200 {object} service.MemberResponse
// @Failure 400 {object} ErrorResponse "Invalid role or last owner"
// @Failure 403 {object} ErrorResponse "Insufficient permissions"
// @Failure 404 {object} ErrorResponse "Member not found"
// @Security BearerAuth
// @Router /organizations/{id}/members/{userId} [put]
func (h *MemberHandler) ChangeRole(c *gin.Context) {
	orgID, ok := uuidParam(c, "id", "organization")
	if !ok {
		return
	}
	userID, ok := uuidParam(c, "userId", "user")
	if !ok {
		return
	}
	var req service.ChangeRoleRequest
	if !bindJSON(c, &req) {
		return
	}

	member, err := h.service.ChangeRole(actorFrom(c), orgID, userID, &req)
	if err != nil {
		respondError(c, err, "Failed to change role")
		return
	}

	c.JSON(http.StatusOK, member)
}

// RemoveMember handles DELETE /api/v1/organizations/:id/members/:userId
// @Summary Remove a member
// @Description Members may remove themselves; removing the last owner is rejected
// @Tags members
// @Param id path string true "Organization ID (UUID)"
// @Param userId path string true "User ID (UUID)"
// @Success 204 "Member removed"
// @Failure 400 {object} ErrorResponse "Last owner"
// @Failure 403 {object} ErrorResponse "Insufficient permissions"
// @Security BearerAuth
// @Router /organizations/{id}/members/{userId} [delete]
func (h *MemberHandler) RemoveMember(c *gin.Context) {
	orgID, ok := uuidParam(c, "id", "organization")
	if !ok {
		return
	}
	userID, ok := uuidParam(c, "userId", "user")
	if !ok {
		return
	}

	if err := h.service.Remove(actorFrom(c), orgID, userID); err != nil {
		respondError(c, err, "Failed to remove member")
		return
	}

	c.Status(http.StatusNoContent)
}
