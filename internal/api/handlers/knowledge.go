package handlers

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"widget-admin-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// KnowledgeHandler handles HTTP requests for knowledge base sources
type KnowledgeHandler struct {
	service service.KnowledgeServiceInterface
}

// NewKnowledgeHandler creates a new knowledge handler
func NewKnowledgeHandler(service service.KnowledgeServiceInterface) *KnowledgeHandler {
	return &KnowledgeHandler{service: service}
}

type createSourceBody struct {
	Type string `json:"type" binding:"required,oneof=text url"`
	service.CreateTextSourceRequest
	URL string `json:"url"`
}

// CreateSource handles POST /api/v1/organizations/:id/knowledge/sources
// @Summary Add a knowledge source
// @Description JSON bodies create text or url sources. A multipart form with a "file" part uploads a document (PDF, HTML, Markdown or plain text).
// @Tags knowledge
// @Accept json
// @Accept mpfd
// @Produce json
// @Param id path string true "Organization ID (UUID)"
// @Param file formData file false "Document to ingest"
// @Param title formData string false "Title of the uploaded document"
// @Success 202 {object} service.KnowledgeSourceResponse
// @Failure 400 {object} ErrorResponse "Invalid source"
// @Failure 413 {object} ErrorResponse "File too large"
// @Security BearerAuth
// @Router /organizations/{id}/knowledge/sources [post]
func (h *KnowledgeHandler) CreateSource(c *gin.Context) {
	orgID, ok := uuidParam(c, "id", "organization")
	if !ok {
		return
	}

	if strings.HasPrefix(c.ContentType(), "multipart/") {
		h.upload(c, orgID)
		return
	}

	var body createSourceBody
	if !bindJSON(c, &body) {
		return
	}

	var (
		resp *service.KnowledgeSourceResponse
		err  error
	)
	actor := actorFrom(c)
	switch body.Type {
	case "url":
		resp, err = h.service.CreateURL(actor, orgID, &service.CreateURLSourceRequest{
			Title:    body.Title,
			URL:      body.URL,
			WidgetID: body.WidgetID,
		})
	default:
		resp, err = h.service.CreateText(actor, orgID, &body.CreateTextSourceRequest)
	}
	if err != nil {
		respondError(c, err, "Failed to create knowledge source")
		return
	}

	c.JSON(http.StatusAccepted, resp)
}

func (h *KnowledgeHandler) upload(c *gin.Context, orgID uuid.UUID) {
	limit := h.service.MaxUploadSize()
	// room for the multipart envelope and the title field
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, limit+1<<20)

	fh, err := c.FormFile("file")
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": fmt.Sprintf("file exceeds %d bytes", limit)})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing file", "details": err.Error()})
		return
	}
	if fh.Size > limit {
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": fmt.Sprintf("file exceeds %d bytes", limit)})
		return
	}

	f, err := fh.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unreadable file", "details": err.Error()})
		return
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unreadable file", "details": err.Error()})
		return
	}

	resp, err := h.service.CreateFile(actorFrom(c), orgID, c.PostForm("title"), fh.Filename, data)
	if err != nil {
		respondError(c, err, "Failed to create knowledge source")
		return
	}

	c.JSON(http.StatusAccepted, resp)
}

// ListSources handles GET /api/v1/organizations/:id/knowledge/sources
// @Summary List knowledge sources
// @Tags knowledge
// @Produce json
// @Param id path string true "Organization ID (UUID)"
// @Param page query int false "Page number (default 1)"
// @Param page_size query int false "Page size (default 20, max 100)"
// @Success 200 {object} service.KnowledgeSourceListResponse
// @Security BearerAuth
// @Router /organizations/{id}/knowledge/sources [get]
func (h *KnowledgeHandler) ListSources(c *gin.Context) {
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
		respondError(c, err, "Failed to list knowledge sources")
		return
	}

	c.JSON(http.StatusOK, resp)
}

// GetSource handles GET /api/v1/organizations/:id/knowledge/sources/:sourceId
// @Summary Get a knowledge source
// @Tags knowledge
// @Produce json
// @Param id path string true "Organization ID (UUID)"
// @Param sourceId path string true "Source ID (UUID)"
// @Success 200 {object} service.KnowledgeSourceResponse
// @Failure 404 {object} ErrorResponse "Source not found"
// @Security BearerAuth
// @Router /organizations/{id}/knowledge/sources/{sourceId} [get]
func (h *KnowledgeHandler) GetSource(c *gin.Context) {
	orgID, ok := uuidParam(c, "id", "organization")
	if !ok {
		return
	}
	id, ok := uuidParam(c, "sourceId", "source")
	if !ok {
		return
	}

	resp, err := h.service.Get(orgID, id)
	if err != nil {
		respondError(c, err, "Failed to get knowledge source")
		return
	}

	c.JSON(http.StatusOK, resp)
}

// ReingestSource handles POST /api/v1/organizations/:id/knowledge/sources/:sourceId/reingest
// @Summary Re-run ingestion
// @Tags knowledge
// @Produce json
// @Param id path string true "Organization ID (UUID)"
// @Param sourceId path string true "Source ID (UUID)"
// @Success 202 {object} service.KnowledgeSourceResponse
// @Failure 409 {object} ErrorResponse "Ingestion already running"
// @Security BearerAuth
// @Router /organizations/{id}/knowledge/sources/{sourceId}/reingest [post]
func (h *KnowledgeHandler) ReingestSource(c *gin.Context) {
	orgID, ok := uuidParam(c, "id", "organization")
	if !ok {
		return
	}
	id, ok := uuidParam(c, "sourceId", "source")
	if !ok {
		return
	}

	resp, err := h.service.Reingest(actorFrom(c), orgID, id)
	if err != nil {
		respondError(c, err, "Failed to reingest knowledge source")
		return
	}

	c.JSON(http.StatusAccepted, resp)
}

// DeleteSource handles DELETE /api/v1/organizations/:id/knowledge/sources/:sourceId
// @Summary Delete a knowledge source and its chunks
// @Tags knowledge
// @Param id path string true "Organization ID (UUID)"
// @Param sourceId path string true "Source ID (UUID)"
// @Success 204 "Source deleted"
// @Security BearerAuth
// @Router /organizations/{id}/knowledge/sources/{sourceId} [delete]
func (h *KnowledgeHandler) DeleteSource(c *gin.Context) {
	orgID, ok := uuidParam(c, "id", "organization")
	if !ok {
		return
	}
	id, ok := uuidParam(c, "sourceId", "source")
	if !ok {
		return
	}

	if err := h.service.Delete(actorFrom(c), orgID, id); err != nil {
		respondError(c, err, "Failed to delete knowledge source")
		return
	}

	c.Status(http.StatusNoContent)
}

// ListChunks handles GET /api/v1/organizations/:id/knowledge/sources/:sourceId/chunks
// @Summary List the chunks of a source
// @Tags knowledge
// @Produce json
// @Param id path string true "Organization ID (UUID)"
// @Param sourceId path string true "Source ID (UUID)"
// @Success 200 {array} service.KnowledgeChunkResponse
// @Security BearerAuth
// @Router /organizations/{id}/knowledge/sources/{sourceId}/chunks [get]
func (h *KnowledgeHandler) ListChunks(c *gin.Context) {
	orgID, ok := uuidParam(c, "id", "organization")
	if !ok {
		return
	}
	id, ok := uuidParam(c, "sourceId", "source")
	if !ok {
		return
	}

	chunks, err := h.service.ListChunks(orgID, id)
	if err != nil {
		respondError(c, err, "Failed to list chunks")
		return
	}

	c.JSON(http.StatusOK, chunks)
}

// Search handles GET /api/v1/organizations/:id/knowledge/search
// @Summary Keyword search over ingested chunks
// @Tags knowledge
// @Produce json
// @Param id path string true "Organization ID (UUID)"
// @Param q query string true "Search terms"
// @Success 200 {array} service.KnowledgeChunkResponse
// @Security BearerAuth
// @Router /organizations/{id}/knowledge/search [get]
func (h *KnowledgeHandler) Search(c *gin.Context) {
	orgID, ok := uuidParam(c, "id", "organization")
	if !ok {
		return
	}
	q := strings.TrimSpace(c.Query("q"))
	if q == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing query parameter: q"})
		return
	}

	chunks, err := h.service.Search(orgID, q)
	if err != nil {
		respondError(c, err, "Failed to search knowledge base")
		return
	}

	c.JSON(http.StatusOK, chunks)
}
