package handlers

import (
	"net/http"

	"widget-admin-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// LinkRuleHandler handles HTTP requests for link rules
type LinkRuleHandler struct {
	service service.LinkRuleServiceInterface
}

// NewLinkRuleHandler creates a new link rule handler
func NewLinkRuleHandler(service service.LinkRuleServiceInterface) *LinkRuleHandler {
	return &LinkRuleHandler{service: service}
}

// CreateLinkRule handles POST /api/v1/organizations/:id/link-rules
// @Summary Create a link rule
// @Tags link-rules
// @Accept json
// @Produce json
// @Param id path string true "Organization ID (UUID)"
// @Param rule body service.LinkRuleRequest true "Rule definition"
// @Success 201 {object} service.LinkRuleResponse
// @Failure 400 {object} ErrorResponse "Invalid pattern"
// @Security BearerAuth
// @Router /organizations/{id}/link-rules [post]
func (h *LinkRuleHandler) CreateLinkRule(c *gin.Context) {
	orgID, ok := uuidParam(c, "id", "organization")
	if !ok {
		return
	}
	var req service.LinkRuleRequest
	if !bindJSON(c, &req) {
		return
	}

	rule, err := h.service.Create(actorFrom(c), orgID, &req)
	if err != nil {
		respondError(c, err, "Failed to create link rule")
		return
	}

	c.JSON(http.StatusCreated, rule)
}

// ListLinkRules handles GET /api/v1/organizations/:id/link-rules
// @Summary List link rules
// @Description Ordered by priority, then creation time
// @Tags link-rules
// @Produce json
// @Param id path string true "Organization ID (UUID)"
// @Param page query int false "Page number (default 1)"
// @Param page_size query int false "Page size (default 20, max 100)"
// @Success 200 {object} service.LinkRuleListResponse
// @Security BearerAuth
// @Router /organizations/{id}/link-rules [get]
func (h *LinkRuleHandler) ListLinkRules(c *gin.Context) {
	orgID, ok := uuidParam(c, "id", "organization")
	if !ok {
		return
	}
	page, pageSize, ok := pageParams(c)
	if !ok {
		return
	}

	resp, err := h.service.List(orgID, page, pageSize)
	if err != nil {
		respondError(c, err, "Failed to list link rules")
		return
	}

	c.JSON(http.StatusOK, resp)
}

// GetLinkRule handles GET /api/v1/organizations/:id/link-rules/:ruleId
// @Summary Get a link rule
// @Tags link-rules
// @Produce json
// @Param id path string true "Organization ID (UUID)"
// @Param ruleId path string true "Link rule ID (UUID)"
// @Success 200 {object} service.LinkRuleResponse
// @Failure 404 {object} ErrorResponse "Link rule not found"
// @Security BearerAuth
// @Router /organizations/{id}/link-rules/{ruleId} [get]
func (h *LinkRuleHandler) GetLinkRule(c *gin.Context) {
	orgID, ok := uuidParam(c, "id", "organization")
	if !ok {
		return
	}
	id, ok := uuidParam(c, "ruleId", "link rule")
	if !ok {
		return
	}

	rule, err := h.service.Get(orgID, id)
	if err != nil {
		respondError(c, err, "Failed to get link rule")
		return
	}

	c.JSON(http.StatusOK, rule)
}

// UpdateLinkRule handles PUT /api/v1/organizations/:id/link-rules/:ruleId
// @Summary Replace a link rule
// @Tags link-rules
// @Accept json
// @Produce json
// @Param id path string true "Organization ID (UUID)"
// @Param ruleId path string true "Link rule ID (UUID)"
// @Param rule body service.LinkRuleRequest true "Rule definition"
// @Success 200 {object} service.LinkRuleResponse
// @Failure 400 {object} ErrorResponse "Invalid pattern"
// @Security BearerAuth
// @Router /organizations/{id}/link-rules/{ruleId} [put]
func (h *LinkRuleHandler) UpdateLinkRule(c *gin.Context) {
	orgID, ok := uuidParam(c, "id", "organization")
	if !ok {
		return
	}
	id, ok := uuidParam(c, "ruleId", "link rule")
	if !ok {
		return
	}
	var req service.LinkRuleRequest
	if !bindJSON(c, &req) {
		return
	}

	rule, err := h.service.Update(actorFrom(c), orgID, id, &req)
	if err != nil {
		respondError(c, err, "Failed to update link rule")
		return
	}

	c.JSON(http.StatusOK, rule)
}

// DeleteLinkRule handles DELETE /api/v1/organizations/:id/link-rules/:ruleId
// @Summary Delete a link rule
// @Tags link-rules
// @Param id path string true "Organization ID (UUID)"
// @Param ruleId path string true "Link rule ID (UUID)"
// @Success 204 "Link rule deleted"
// @Security BearerAuth
// @Router /organizations/{id}/link-rules/{ruleId} [delete]
func (h *LinkRuleHandler) DeleteLinkRule(c *gin.Context) {
	orgID, ok := uuidParam(c, "id", "organization")
	if !ok {
		return
	}
	id, ok := uuidParam(c, "ruleId", "link rule")
	if !ok {
		return
	}

	if err := h.service.Delete(actorFrom(c), orgID, id); err != nil {
		respondError(c, err, "Failed to delete link rule")
		return
	}

	c.Status(http.StatusNoContent)
}

// TestLinkRule handles POST /api/v1/organizations/:id/link-rules/test
// @Summary Try a pattern without saving it
// @Description Reports the matches of the pattern and the cards the saved rules would return
// @Tags link-rules
// @Accept json
// @Produce json
// @Param id path string true "Organization ID (UUID)"
// @Param request body service.TestLinkRuleRequest true "Pattern and sample message"
// @Success 200 {object} service.TestLinkRuleResponse
// @Failure 400 {object} ErrorResponse "Invalid pattern"
// @Security BearerAuth
// @Router /organizations/{id}/link-rules/test [post]
func (h *LinkRuleHandler) TestLinkRule(c *gin.Context) {
	orgID, ok := uuidParam(c, "id", "organization")
	if !ok {
		return
	}
	var req service.TestLinkRuleRequest
	if !bindJSON(c, &req) {
		return
	}

	resp, err := h.service.Test(orgID, &req)
	if err != nil {
		respondError(c, err, "Failed to test link rule")
		return
	}

	c.JSON(http.StatusOK, resp)
}
