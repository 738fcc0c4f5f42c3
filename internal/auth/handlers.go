package auth

import (
	"encoding/json"
	"html"
	"net/http"
	"strings"

	apperrors "widget-admin-backend/internal/errors"
	"widget-admin-backend/internal/logger"

	"github.com/gin-gonic/gin"
)

const stateCookie = "oauth_state"

// formatResponseAsJSON converts the response to JSON string for embedding in HTML
func formatResponseAsJSON(response interface{}) string {
	jsonBytes, err := json.Marshal(response)
	if err != nil {
		return "{}"
	}
	return string(jsonBytes)
}

// escapeJSString safely escapes a Go string for embedding inside JS string literals.
func escapeJSString(s string) string {
	e := html.EscapeString(s)
	e = strings.ReplaceAll(e, "\n", `\n`)
	e = strings.ReplaceAll(e, "\r", ``)
	return e
}

// AuthHandler handles HTTP requests for authentication
type AuthHandler struct {
	service *AuthService
}

// NewAuthHandler creates a new authentication handler
func NewAuthHandler(service *AuthService) *AuthHandler {
	return &AuthHandler{service: service}
}

func (h *AuthHandler) respondError(c *gin.Context, err error) {
	switch {
	case apperrors.IsAuthentication(err):
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
	case apperrors.IsConfiguration(err):
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": err.Error()})
	default:
		logger.WithContext(c).WithError(err).Error("authentication failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "authentication failed", "details": err.Error()})
	}
}

// Login handles POST /api/auth/login
// @Summary Password login
// @Description Exchange email and password for an access token and a refresh token
// @Tags authentication
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Credentials"
// @Success 200 {object} TokenResponse
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 401 {object} map[string]interface{} "Invalid email or password"
// @Router /api/auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	resp, err := h.service.Login(c.Request.Context(), &req)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// GitHubStart handles GET /api/auth/github/start
// @Summary Start GitHub SSO
// @Description Redirect to GitHub to authorize the platform
// @Tags authentication
// @Success 302 {string} string "Redirect to GitHub authorization URL"
// @Failure 503 {object} map[string]interface{} "GitHub SSO is not configured"
// @Router /api/auth/github/start [get]
func (h *AuthHandler) GitHubStart(c *gin.Context) {
	state, err := h.service.GenerateState()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate state parameter"})
		return
	}

	authURL, err := h.service.GetAuthURL(state)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(stateCookie, state, 600, "/api/auth/github", "", c.Request.TLS != nil, true)
	c.Redirect(http.StatusFound, authURL)
}

// GitHubCallback handles GET /api/auth/github/callback
// Posts { type: 'authorization_response', response | error } to the opener window and closes.
// @Summary Handle GitHub SSO callback
// @Description Exchange the authorization code and return the result to the admin UI in an HTML frame
// @Tags authentication
// @Produce text/html
// @Param code query string true "OAuth authorization code"
// @Param state query string true "OAuth state parameter"
// @Param error query string false "OAuth error parameter from provider"
// @Param error_description query string false "OAuth error description from provider"
// @Success 200 {string} string "HTML page that posts the authentication result to the opener window"
// @Router /api/auth/github/callback [get]
func (h *AuthHandler) GitHubCallback(c *gin.Context) {
	if errorParam := c.Query("error"); errorParam != "" {
		h.renderFrameError(c, "OAuthError", errorParam+": "+c.Query("error_description"))
		return
	}

	code := c.Query("code")
	state := c.Query("state")
	if code == "" || state == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Authorization code and state are required"})
		return
	}

	expected, err := c.Cookie(stateCookie)
	if err != nil || expected != state {
		h.renderFrameError(c, "Error", "state mismatch")
		return
	}
	c.SetCookie(stateCookie, "", -1, "/api/auth/github", "", c.Request.TLS != nil, true)

	resp, err := h.service.HandleCallback(c.Request.Context(), code)
	if err != nil {
		if !apperrors.IsAuthentication(err) {
			logger.WithContext(c).WithError(err).Error("GitHub SSO callback failed")
		}
		h.renderFrameError(c, "Error", err.Error())
		return
	}

	successHTML := `<!doctype html><html><body><script>
(function(){
  var msg = { type: "authorization_response", response: ` + formatResponseAsJSON(resp) + ` };
  try { if (window.opener) window.opener.postMessage(msg, "` + escapeJSString(h.targetOrigin()) + `"); } finally { window.close(); }
})();
</script></body></html>`
	c.Header("Content-Type", "text/html; charset=utf-8")
	c.String(http.StatusOK, successHTML)
}

func (h *AuthHandler) renderFrameError(c *gin.Context, name, message string) {
	errorHTML := `<!doctype html><html><body><script>
(function(){
  var msg = { type: "authorization_response", error: { name: "` + escapeJSString(name) + `", message: "` + escapeJSString(message) + `" } };
  try { if (window.opener) window.opener.postMessage(msg, "` + escapeJSString(h.targetOrigin()) + `"); } finally { window.close(); }
})();
</script></body></html>`
	c.Header("Content-Type", "text/html; charset=utf-8")
	c.String(http.StatusOK, errorHTML)
}

func (h *AuthHandler) targetOrigin() string {
	if h.service.config.FrontendURL == "" {
		return "*"
	}
	return h.service.config.FrontendURL
}

// Refresh handles POST /api/auth/refresh
// @Summary Refresh access token
// @Description Rotate the refresh token and issue a new access token
// @Tags authentication
// @Accept json
// @Produce json
// @Param request body RefreshTokenRequest true "Refresh token"
// @Success 200 {object} TokenResponse
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 401 {object} map[string]interface{} "Invalid or expired refresh token"
// @Router /api/auth/refresh [post]
func (h *AuthHandler) Refresh(c *gin.Context) {
	var req RefreshTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	resp, err := h.service.RefreshToken(req.RefreshToken)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// Logout handles POST /api/auth/logout
// @Summary Logout
// @Description Revoke a refresh token. Always succeeds.
// @Tags authentication
// @Accept json
// @Produce json
// @Param request body RefreshTokenRequest false "Refresh token to revoke"
// @Success 200 {object} AuthLogoutResponse
// @Router /api/auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	var req RefreshTokenRequest
	_ = c.ShouldBindJSON(&req)
	h.service.Logout(req.RefreshToken)

	c.JSON(http.StatusOK, AuthLogoutResponse{Message: "Logged out successfully"})
}

// ValidateToken handles POST /api/auth/validate
// @Summary Validate access token
// @Description Validate the bearer token and return its claims
// @Tags authentication
// @Produce json
// @Security BearerAuth
// @Success 200 {object} AuthValidateResponse
// @Failure 401 {object} map[string]interface{} "Missing or invalid token"
// @Router /api/auth/validate [post]
func (h *AuthHandler) ValidateToken(c *gin.Context) {
	authHeader := c.GetHeader("Authorization")
	tokenString := strings.TrimPrefix(authHeader, "Bearer ")
	if authHeader == "" || tokenString == authHeader {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header is required"})
		return
	}

	claims, err := h.service.ValidateJWT(tokenString)
	if err != nil {
		c.JSON(http.StatusUnauthorized, AuthValidateResponse{Valid: false})
		return
	}

	c.JSON(http.StatusOK, AuthValidateResponse{Valid: true, Claims: claims})
}
