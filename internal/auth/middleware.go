package auth

import (
	"errors"
	"net/http"
	"strings"

	"widget-admin-backend/internal/authz"
	"widget-admin-backend/internal/database/models"
	apperrors "widget-admin-backend/internal/errors"
	"widget-admin-backend/internal/logger"
	"widget-admin-backend/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AuthMiddleware provides JWT authentication and organization role middleware
type AuthMiddleware struct {
	service     *AuthService
	memberships repository.MembershipRepositoryInterface
	enforcer    *authz.Enforcer
}

// NewAuthMiddleware creates a new authentication middleware
func NewAuthMiddleware(service *AuthService, memberships repository.MembershipRepositoryInterface, enforcer *authz.Enforcer) *AuthMiddleware {
	return &AuthMiddleware{service: service, memberships: memberships, enforcer: enforcer}
}

// RequireAuth validates JWT tokens and sets user context
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header is required"})
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid authorization header format"})
			return
		}

		claims, err := m.service.ValidateJWT(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token", "details": err.Error()})
			return
		}

		c.Set("user_id", claims.UserID)
		c.Set("email", claims.Email)
		c.Set("is_super_admin", claims.IsSuperAdmin)
		c.Set("provider", claims.Provider)
		c.Set("auth_claims", claims)

		c.Next()
	}
}

// RequireSuperAdmin rejects callers without the platform administrator flag
func (m *AuthMiddleware) RequireSuperAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !IsSuperAdmin(c) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": apperrors.ErrSuperAdminRequired.Error()})
			return
		}
		c.Next()
	}
}

// RequireOrgRole loads the caller's membership in the organization named by the :id
// path parameter and checks the role may perform action on resource.
// Super admins bypass the check.
func (m *AuthMiddleware) RequireOrgRole(resource, action string) gin.HandlerFunc {
	return func(c *gin.Context) {
		orgID, err := uuid.Parse(c.Param("id"))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "invalid organization ID"})
			return
		}

		if IsSuperAdmin(c) {
			c.Set("org_role", models.RoleOwner)
			c.Next()
			return
		}

		userID, ok := GetUserID(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
			return
		}

		membership, err := m.memberships.Get(orgID, userID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": apperrors.ErrNotAMember.Error()})
				return
			}
			logger.WithContext(c).WithError(err).Error("failed to load membership")
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "failed to load membership"})
			return
		}

		allowed, err := m.enforcer.Can(membership.Role, resource, action)
		if err != nil {
			logger.WithContext(c).WithError(err).Error("permission check failed")
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "permission check failed"})
			return
		}
		if !allowed {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": apperrors.ErrForbidden.Error()})
			return
		}

		c.Set("org_role", membership.Role)
		c.Next()
	}
}

// GetUserID is a helper function to extract user ID from context
func GetUserID(c *gin.Context) (uuid.UUID, bool) {
	userID, exists := c.Get("user_id")
	if !exists {
		return uuid.Nil, false
	}

	id, ok := userID.(uuid.UUID)
	return id, ok
}

// GetUserEmail is a helper function to extract user email from context
func GetUserEmail(c *gin.Context) (string, bool) {
	email, exists := c.Get("email")
	if !exists {
		return "", false
	}

	emailStr, ok := email.(string)
	return emailStr, ok
}

// IsSuperAdmin reports whether the authenticated caller is a platform administrator
func IsSuperAdmin(c *gin.Context) bool {
	return c.GetBool("is_super_admin")
}

// GetOrgRole returns the role resolved by RequireOrgRole
func GetOrgRole(c *gin.Context) (models.Role, bool) {
	role, exists := c.Get("org_role")
	if !exists {
		return "", false
	}

	r, ok := role.(models.Role)
	return r, ok
}

// GetAuthClaims is a helper function to extract full auth claims from context
func GetAuthClaims(c *gin.Context) (*AuthClaims, bool) {
	claims, exists := c.Get("auth_claims")
	if !exists {
		return nil, false
	}

	authClaims, ok := claims.(*AuthClaims)
	return authClaims, ok
}
