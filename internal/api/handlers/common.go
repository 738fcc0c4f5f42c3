package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"widget-admin-backend/internal/auth"
	apperrors "widget-admin-backend/internal/errors"
	"widget-admin-backend/internal/logger"
	"widget-admin-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// ErrorResponse represents a standard API error response
type ErrorResponse struct {
	Error   string `json:"error" example:"error message"`
	Details string `json:"details,omitempty"`
}

// actorFrom builds the acting user from the context populated by RequireAuth
func actorFrom(c *gin.Context) service.Actor {
	userID, _ := auth.GetUserID(c)
	email, _ := auth.GetUserEmail(c)
	return service.Actor{
		UserID:       userID,
		Email:        email,
		IP:           c.ClientIP(),
		UserAgent:    c.Request.UserAgent(),
		IsSuperAdmin: auth.IsSuperAdmin(c),
	}
}

// uuidParam parses a path parameter and writes a 400 when it is not a UUID
func uuidParam(c *gin.Context, name, label string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid " + label + " ID: invalid UUID format"})
		return uuid.Nil, false
	}
	return id, true
}

// pageParams reads page and page_size; out-of-range values are clamped by the services
func pageParams(c *gin.Context) (int, int, bool) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid page parameter"})
		return 0, 0, false
	}
	pageSize, err := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid page_size parameter"})
		return 0, 0, false
	}
	return page, pageSize, true
}

// respondError maps service errors to HTTP status codes.
// Unexpected errors are logged and answered with fallback as the message.
func respondError(c *gin.Context, err error, fallback string) {
	var verrs validator.ValidationErrors

	switch {
	case apperrors.IsValidation(err), errors.As(err, &verrs), strings.HasPrefix(err.Error(), "validation failed"):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case apperrors.IsAuthentication(err):
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
	case apperrors.IsAuthorization(err):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	case apperrors.IsNotFound(err):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case apperrors.IsAlreadyExists(err), apperrors.IsConflict(err):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case apperrors.IsGone(err):
		c.JSON(http.StatusGone, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrDirectoryUnavailable):
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
	case apperrors.IsConfiguration(err):
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": err.Error()})
	default:
		logger.WithContext(c).WithError(err).Error(fallback)
		c.JSON(http.StatusInternalServerError, gin.H{"error": fallback, "details": err.Error()})
	}
}

func bindJSON(c *gin.Context, dest interface{}) bool {
	if err := c.ShouldBindJSON(dest); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return false
	}
	return true
}
