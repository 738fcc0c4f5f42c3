package handlers

import (
	"bytes"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"widget-admin-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// AuditHandler handles HTTP requests for the audit log
type AuditHandler struct {
	service service.AuditServiceInterface
}

// NewAuditHandler creates a new audit handler
func NewAuditHandler(service service.AuditServiceInterface) *AuditHandler {
	return &AuditHandler{service: service}
}

// ListOrganizationAudit handles GET /api/v1/organizations/:id/audit-logs
// @Summary List audit entries of an organization
// @Description Newest first. Times are RFC 3339.
// @Tags audit
// @Produce json
// @Param id path string true "Organization ID (UUID)"
// @Param action query string false "Action, e.g. member.removed"
// @Param actor_id query string false "Actor user ID (UUID)"
// @Param resource_type query string false "Resource type"
// @Param from query string false "Inclusive lower bound"
// @Param to query string false "Exclusive upper bound"
// @Param page query int false "Page number (default 1)"
// @Param page_size query int false "Page size (default 20, max 100)"
// @Success 200 {object} service.AuditLogListResponse
// @Security BearerAuth
// @Router /organizations/{id}/audit-logs [get]
func (h *AuditHandler) ListOrganizationAudit(c *gin.Context) {
	orgID, ok := uuidParam(c, "id", "organization")
	if !ok {
		return
	}
	h.list(c, &orgID)
}

// ExportOrganizationAudit handles GET /api/v1/organizations/:id/audit-logs/export
// @Summary Export audit entries of an organization as XLSX
// @Tags audit
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param id path string true "Organization ID (UUID)"
// @Param action query string false "Action"
// @Param actor_id query string false "Actor user ID (UUID)"
// @Param resource_type query string false "Resource type"
// @Param from query string false "Inclusive lower bound"
// @Param to query string false "Exclusive upper bound"
// @Success 200 {file} file
// @Security BearerAuth
// @Router /organizations/{id}/audit-logs/export [get]
func (h *AuditHandler) ExportOrganizationAudit(c *gin.Context) {
	orgID, ok := uuidParam(c, "id", "organization")
	if !ok {
		return
	}
	h.export(c, &orgID)
}

// ListAudit handles GET /api/v1/admin/audit-logs
// @Summary List audit entries across all organizations
// @Tags admin
// @Produce json
// @Param organization_id query string false "Organization ID (UUID)"
// @Param action query string false "Action"
// @Param actor_id query string false "Actor user ID (UUID)"
// @Param resource_type query string false "Resource type"
// @Param from query string false "Inclusive lower bound"
// @Param to query string false "Exclusive upper bound"
// @Param page query int false "Page number (default 1)"
// @Param page_size query int false "Page size (default 20, max 100)"
// @Success 200 {object} service.AuditLogListResponse
// @Security BearerAuth
// @Router /admin/audit-logs [get]
func (h *AuditHandler) ListAudit(c *gin.Context) {
	orgID, ok := optionalUUIDQuery(c, "organization_id")
	if !ok {
		return
	}
	h.list(c, orgID)
}

// ExportAudit handles GET /api/v1/admin/audit-logs/export
// @Summary Export audit entries across all organizations as XLSX
// @Tags admin
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param organization_id query string false "Organization ID (UUID)"
// @Param action query string false "Action"
// @Param actor_id query string false "Actor user ID (UUID)"
// @Param resource_type query string false "Resource type"
// @Param from query string false "Inclusive lower bound"
// @Param to query string false "Exclusive upper bound"
// @Success 200 {file} file
// @Security BearerAuth
// @Router /admin/audit-logs/export [get]
func (h *AuditHandler) ExportAudit(c *gin.Context) {
	orgID, ok := optionalUUIDQuery(c, "organization_id")
	if !ok {
		return
	}
	h.export(c, orgID)
}

func (h *AuditHandler) list(c *gin.Context, orgID *uuid.UUID) {
	query, ok := auditQuery(c, orgID)
	if !ok {
		return
	}
	page, pageSize, ok := pageParams(c)
	if !ok {
		return
	}

	resp, err := h.service.List(query, page, pageSize)
	if err != nil {
		respondError(c, err, "Failed to list audit log")
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *AuditHandler) export(c *gin.Context, orgID *uuid.UUID) {
	query, ok := auditQuery(c, orgID)
	if !ok {
		return
	}

	var buf bytes.Buffer
	rows, err := h.service.Export(query, &buf)
	if err != nil {
		respondError(c, err, "Failed to export audit log")
		return
	}

	name := fmt.Sprintf("audit-log-%s.xlsx", time.Now().UTC().Format("20060102-150405"))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", name))
	c.Header("X-Total-Count", strconv.Itoa(rows))
	c.Data(http.StatusOK, xlsxContentType, buf.Bytes())
}

func auditQuery(c *gin.Context, orgID *uuid.UUID) (*service.AuditQuery, bool) {
	actorID, ok := optionalUUIDQuery(c, "actor_id")
	if !ok {
		return nil, false
	}
	from, ok := optionalTimeQuery(c, "from")
	if !ok {
		return nil, false
	}
	to, ok := optionalTimeQuery(c, "to")
	if !ok {
		return nil, false
	}

	return &service.AuditQuery{
		OrganizationID: orgID,
		ActorID:        actorID,
		Action:         c.Query("action"),
		ResourceType:   c.Query("resource_type"),
		From:           from,
		To:             to,
	}, true
}

func optionalUUIDQuery(c *gin.Context, name string) (*uuid.UUID, bool) {
	raw := c.Query(name)
	if raw == "" {
		return nil, true
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid " + name + " parameter: invalid UUID format"})
		return nil, false
	}
	return &id, true
}

func optionalTimeQuery(c *gin.Context, name string) (*time.Time, bool) {
	raw := c.Query(name)
	if raw == "" {
		return nil, true
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid " + name + " parameter: expected RFC 3339 time"})
		return nil, false
	}
	return &t, true
}
