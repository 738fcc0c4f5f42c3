package handlers

import (
	"net/http"

	"widget-admin-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// DirectoryHandler handles company directory lookups
type DirectoryHandler struct {
	service service.DirectoryServiceInterface
}

// NewDirectoryHandler creates a new directory handler
func NewDirectoryHandler(s service.DirectoryServiceInterface) *DirectoryHandler {
	return &DirectoryHandler{service: s}
}

// UserSearch searches directory users by CN prefix
// @Summary Search directory users by CN prefix
// @Description Searches the LDAP directory for users whose cn starts with the given prefix, for picking invitees
// @Tags directory
// @Produce json
// @Param id path string true "Organization ID (UUID)"
// @Param cn query string true "Common name prefix (at least 2 characters)"
// @Success 200 {object} map[string]interface{} "Search results"
// @Failure 400 {object} ErrorResponse "Missing or invalid query parameter"
// @Failure 502 {object} ErrorResponse "Directory connection or search failed"
// @Failure 503 {object} ErrorResponse "Directory not configured"
// @Security BearerAuth
// @Router /organizations/{id}/directory/users/search [get]
func (h *DirectoryHandler) UserSearch(c *gin.Context) {
	cn := c.Query("cn")
	if cn == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing query parameter: cn"})
		return
	}

	users, err := h.service.SearchUsersByCN(cn)
	if err != nil {
		respondError(c, err, "Directory search failed")
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": users})
}
