package auth

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"widget-admin-backend/internal/authz"
	"widget-admin-backend/internal/database/models"
	apperrors "widget-admin-backend/internal/errors"
	"widget-admin-backend/internal/mocks"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func testConfig() *AuthConfig {
	return &AuthConfig{
		JWTSecret:       "test-signing-key",
		RedirectURL:     "http://localhost:7008",
		FrontendURL:     "http://localhost:3000",
		AccessTokenTTL:  time.Hour,
		RefreshTokenTTL: 30 * 24 * time.Hour,
	}
}

func testUser(t *testing.T, password string) *models.User {
	t.Helper()
	u := &models.User{Email: "jane.doe@acme.io", FullName: "Jane Doe"}
	u.ID = uuid.New()
	if password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
		require.NoError(t, err)
		u.PasswordHash = string(hash)
	}
	return u
}

func TestAuthConfig(t *testing.T) {
	t.Run("valid config without SSO", func(t *testing.T) {
		assert.NoError(t, testConfig().ValidateConfig())
	})

	t.Run("missing jwt secret", func(t *testing.T) {
		cfg := testConfig()
		cfg.JWTSecret = ""
		err := cfg.ValidateConfig()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "JWT secret is required")
	})

	t.Run("SSO requires client credentials", func(t *testing.T) {
		cfg := testConfig()
		cfg.GitHub = &ProviderConfig{ClientSecret: "secret"}
		err := cfg.ValidateConfig()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "client_id is required")
	})

	t.Run("SSO requires redirect url", func(t *testing.T) {
		cfg := testConfig()
		cfg.RedirectURL = ""
		cfg.GitHub = &ProviderConfig{ClientID: "id", ClientSecret: "secret"}
		err := cfg.ValidateConfig()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "redirect URL is required")
	})

	t.Run("callback url", func(t *testing.T) {
		assert.Equal(t, "http://localhost:7008/api/auth/github/callback", testConfig().CallbackURL())
	})
}

func TestGitHubClientConfig(t *testing.T) {
	client := NewGitHubClient(&ProviderConfig{
		ClientID:          "test-client-id",
		ClientSecret:      "test-client-secret",
		EnterpriseBaseURL: "https://github.example.com",
	})

	oauthConfig := client.GetOAuth2Config("http://localhost:7008/api/auth/github/callback")
	assert.Equal(t, "test-client-id", oauthConfig.ClientID)
	assert.Equal(t, "https://github.example.com/login/oauth/authorize", oauthConfig.Endpoint.AuthURL)
	assert.Contains(t, oauthConfig.Scopes, "user:email")

	public := NewGitHubClient(&ProviderConfig{ClientID: "id", ClientSecret: "secret"})
	assert.Equal(t, "https://github.com/login/oauth/access_token", public.GetOAuth2Config("").Endpoint.TokenURL)
}

func TestJWTOperations(t *testing.T) {
	svc, err := NewAuthService(testConfig(), nil)
	require.NoError(t, err)

	user := testUser(t, "")
	user.IsSuperAdmin = true

	token, err := svc.GenerateJWT(user, ProviderPassword)
	require.NoError(t, err)

	claims, err := svc.ValidateJWT(token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, user.Email, claims.Email)
	assert.True(t, claims.IsSuperAdmin)
	assert.Equal(t, ProviderPassword, claims.Provider)
	assert.Equal(t, user.ID.String(), claims.Subject)

	_, err = svc.ValidateJWT("invalid-token")
	assert.Error(t, err)

	t.Run("expired token", func(t *testing.T) {
		svc.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }
		old, err := svc.GenerateJWT(user, ProviderPassword)
		require.NoError(t, err)
		svc.now = time.Now

		_, err = svc.ValidateJWT(old)
		assert.Error(t, err)
	})

	t.Run("wrong secret", func(t *testing.T) {
		other := testConfig()
		other.JWTSecret = "another-key"
		otherSvc, err := NewAuthService(other, nil)
		require.NoError(t, err)

		_, err = otherSvc.ValidateJWT(token)
		assert.Error(t, err)
	})
}

func TestLogin(t *testing.T) {
	ctrl := gomock.NewController(t)
	users := mocks.NewMockUserRepositoryInterface(ctrl)
	svc, err := NewAuthService(testConfig(), users)
	require.NoError(t, err)

	user := testUser(t, "s3cret-pass")

	t.Run("success", func(t *testing.T) {
		users.EXPECT().GetByEmail("jane.doe@acme.io").Return(user, nil)
		users.EXPECT().TouchLastLogin(user.ID, gomock.Any()).Return(nil)

		resp, err := svc.Login(context.Background(), &LoginRequest{Email: " Jane.Doe@Acme.io ", Password: "s3cret-pass"})
		require.NoError(t, err)
		assert.Equal(t, "Bearer", resp.TokenType)
		assert.Equal(t, int64(3600), resp.ExpiresIn)
		assert.NotEmpty(t, resp.RefreshToken)
		assert.Equal(t, user.ID, resp.Profile.ID)

		claims, err := svc.ValidateJWT(resp.AccessToken)
		require.NoError(t, err)
		assert.Equal(t, user.ID, claims.UserID)
	})

	t.Run("wrong password", func(t *testing.T) {
		users.EXPECT().GetByEmail("jane.doe@acme.io").Return(user, nil)

		_, err := svc.Login(context.Background(), &LoginRequest{Email: "jane.doe@acme.io", Password: "nope"})
		assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
	})

	t.Run("unknown email", func(t *testing.T) {
		users.EXPECT().GetByEmail("ghost@acme.io").Return(nil, gorm.ErrRecordNotFound)

		_, err := svc.Login(context.Background(), &LoginRequest{Email: "ghost@acme.io", Password: "whatever"})
		assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
	})

	t.Run("SSO-only account", func(t *testing.T) {
		users.EXPECT().GetByEmail("sso@acme.io").Return(&models.User{Email: "sso@acme.io"}, nil)

		_, err := svc.Login(context.Background(), &LoginRequest{Email: "sso@acme.io", Password: "whatever"})
		assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
	})

	t.Run("last login failure is not fatal", func(t *testing.T) {
		users.EXPECT().GetByEmail("jane.doe@acme.io").Return(user, nil)
		users.EXPECT().TouchLastLogin(user.ID, gomock.Any()).Return(errors.New("db down"))

		_, err := svc.Login(context.Background(), &LoginRequest{Email: "jane.doe@acme.io", Password: "s3cret-pass"})
		assert.NoError(t, err)
	})
}

func TestRefreshToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	users := mocks.NewMockUserRepositoryInterface(ctrl)
	svc, err := NewAuthService(testConfig(), users)
	require.NoError(t, err)

	user := testUser(t, "")
	first, err := svc.issueTokens(user, ProviderGitHub)
	require.NoError(t, err)

	t.Run("rotates the token", func(t *testing.T) {
		promoted := *user
		promoted.IsSuperAdmin = true
		users.EXPECT().GetByID(user.ID).Return(&promoted, nil)

		second, err := svc.RefreshToken(first.RefreshToken)
		require.NoError(t, err)
		assert.NotEqual(t, first.RefreshToken, second.RefreshToken)

		claims, err := svc.ValidateJWT(second.AccessToken)
		require.NoError(t, err)
		assert.True(t, claims.IsSuperAdmin)
		assert.Equal(t, ProviderGitHub, claims.Provider)

		_, err = svc.RefreshToken(first.RefreshToken)
		assert.ErrorIs(t, err, apperrors.ErrInvalidRefreshToken)
	})

	t.Run("expired token is dropped", func(t *testing.T) {
		resp, err := svc.issueTokens(user, ProviderPassword)
		require.NoError(t, err)

		svc.now = func() time.Time { return time.Now().Add(31 * 24 * time.Hour) }
		defer func() { svc.now = time.Now }()

		_, err = svc.RefreshToken(resp.RefreshToken)
		assert.ErrorIs(t, err, apperrors.ErrRefreshTokenExpired)

		svc.tokenMutex.RLock()
		_, exists := svc.refreshTokens[resp.RefreshToken]
		svc.tokenMutex.RUnlock()
		assert.False(t, exists)
	})

	t.Run("deleted user", func(t *testing.T) {
		resp, err := svc.issueTokens(user, ProviderPassword)
		require.NoError(t, err)
		users.EXPECT().GetByID(user.ID).Return(nil, gorm.ErrRecordNotFound)

		_, err = svc.RefreshToken(resp.RefreshToken)
		assert.ErrorIs(t, err, apperrors.ErrInvalidRefreshToken)
	})

	t.Run("logout revokes", func(t *testing.T) {
		resp, err := svc.issueTokens(user, ProviderPassword)
		require.NoError(t, err)

		svc.Logout(resp.RefreshToken)
		_, err = svc.RefreshToken(resp.RefreshToken)
		assert.ErrorIs(t, err, apperrors.ErrInvalidRefreshToken)
	})

	t.Run("purge expired", func(t *testing.T) {
		_, err := svc.issueTokens(user, ProviderPassword)
		require.NoError(t, err)

		svc.now = func() time.Time { return time.Now().Add(31 * 24 * time.Hour) }
		defer func() { svc.now = time.Now }()

		assert.Positive(t, svc.PurgeExpired())
		assert.Zero(t, svc.PurgeExpired())
	})
}

// fakeGitHub serves the OAuth token endpoint and the REST API of a GitHub Enterprise host
func fakeGitHub(t *testing.T, email string) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/login/oauth/access_token", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"access_token":"gho_test","token_type":"bearer","scope":"read:user,user:email"}`))
	})
	mux.HandleFunc("/api/v3/user", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer gho_test", r.Header.Get("Authorization"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":42,"login":"janed","name":"Jane Doe"}`))
	})
	mux.HandleFunc("/api/v3/user/emails", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode([]map[string]interface{}{
			{"email": "old@personal.dev", "primary": false, "verified": true},
			{"email": email, "primary": true, "verified": true},
		})
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func TestGitHubSSO(t *testing.T) {
	gin.SetMode(gin.TestMode)

	newService := func(t *testing.T, users *mocks.MockUserRepositoryInterface, email string) *AuthService {
		srv := fakeGitHub(t, email)
		cfg := testConfig()
		cfg.GitHub = &ProviderConfig{ClientID: "id", ClientSecret: "secret", EnterpriseBaseURL: srv.URL}
		svc, err := NewAuthService(cfg, users)
		require.NoError(t, err)
		return svc
	}

	t.Run("start redirects with state cookie", func(t *testing.T) {
		svc := newService(t, nil, "jane.doe@acme.io")
		handler := NewAuthHandler(svc)

		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/api/auth/github/start", nil)
		handler.GitHubStart(c)

		assert.Equal(t, http.StatusFound, w.Code)
		location := w.Header().Get("Location")
		assert.Contains(t, location, "/login/oauth/authorize")
		assert.Contains(t, location, "redirect_uri=http%3A%2F%2Flocalhost%3A7008%2Fapi%2Fauth%2Fgithub%2Fcallback")
		assert.Contains(t, w.Header().Get("Set-Cookie"), stateCookie+"=")
	})

	t.Run("callback signs in the matching user", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		users := mocks.NewMockUserRepositoryInterface(ctrl)
		svc := newService(t, users, "Jane.Doe@acme.io")
		handler := NewAuthHandler(svc)

		user := testUser(t, "")
		users.EXPECT().GetByEmail("jane.doe@acme.io").Return(user, nil)
		users.EXPECT().Update(gomock.Any()).DoAndReturn(func(u *models.User) error {
			require.NotNil(t, u.GitHubLogin)
			assert.Equal(t, "janed", *u.GitHubLogin)
			return nil
		})
		users.EXPECT().TouchLastLogin(user.ID, gomock.Any()).Return(nil)

		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/api/auth/github/callback?code=abc&state=xyz", nil)
		c.Request.AddCookie(&http.Cookie{Name: stateCookie, Value: "xyz"})
		handler.GitHubCallback(c)

		assert.Equal(t, http.StatusOK, w.Code)
		body := w.Body.String()
		assert.Contains(t, body, `"accessToken"`)
		assert.Contains(t, body, `"githubLogin":"janed"`)
		assert.Contains(t, body, `"http://localhost:3000"`)
	})

	t.Run("unknown email is rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		users := mocks.NewMockUserRepositoryInterface(ctrl)
		svc := newService(t, users, "stranger@elsewhere.io")

		users.EXPECT().GetByEmail("stranger@elsewhere.io").Return(nil, gorm.ErrRecordNotFound)

		_, err := svc.HandleCallback(context.Background(), "abc")
		assert.ErrorIs(t, err, apperrors.ErrSSOUserUnknown)
	})

	t.Run("state mismatch", func(t *testing.T) {
		svc := newService(t, nil, "jane.doe@acme.io")
		handler := NewAuthHandler(svc)

		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/api/auth/github/callback?code=abc&state=xyz", nil)
		c.Request.AddCookie(&http.Cookie{Name: stateCookie, Value: "other"})
		handler.GitHubCallback(c)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "state mismatch")
		assert.NotContains(t, w.Body.String(), "accessToken")
	})

	t.Run("disabled SSO", func(t *testing.T) {
		svc, err := NewAuthService(testConfig(), nil)
		require.NoError(t, err)
		handler := NewAuthHandler(svc)

		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/api/auth/github/start", nil)
		handler.GitHubStart(c)

		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	})
}

func TestAuthHandlers(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	users := mocks.NewMockUserRepositoryInterface(ctrl)
	svc, err := NewAuthService(testConfig(), users)
	require.NoError(t, err)
	handler := NewAuthHandler(svc)

	router := gin.New()
	router.POST("/api/auth/login", handler.Login)
	router.POST("/api/auth/refresh", handler.Refresh)
	router.POST("/api/auth/logout", handler.Logout)
	router.POST("/api/auth/validate", handler.ValidateToken)

	user := testUser(t, "s3cret-pass")

	do := func(path, body, bearer string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		if bearer != "" {
			req.Header.Set("Authorization", "Bearer "+bearer)
		}
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		return w
	}

	t.Run("login", func(t *testing.T) {
		users.EXPECT().GetByEmail("jane.doe@acme.io").Return(user, nil)
		users.EXPECT().TouchLastLogin(user.ID, gomock.Any()).Return(nil)

		w := do("/api/auth/login", `{"email":"jane.doe@acme.io","password":"s3cret-pass"}`, "")
		require.Equal(t, http.StatusOK, w.Code)

		var resp TokenResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.NotEmpty(t, resp.AccessToken)

		w = do("/api/auth/validate", "", resp.AccessToken)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"valid":true`)
	})

	t.Run("bad credentials", func(t *testing.T) {
		users.EXPECT().GetByEmail("jane.doe@acme.io").Return(user, nil)

		w := do("/api/auth/login", `{"email":"jane.doe@acme.io","password":"wrong"}`, "")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "invalid email or password")
	})

	t.Run("malformed body", func(t *testing.T) {
		w := do("/api/auth/login", `{"email":"not-an-email"}`, "")
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("refresh with unknown token", func(t *testing.T) {
		w := do("/api/auth/refresh", `{"refreshToken":"nope"}`, "")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("logout always succeeds", func(t *testing.T) {
		w := do("/api/auth/logout", "", "")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Logged out successfully")
	})

	t.Run("validate rejects garbage", func(t *testing.T) {
		w := do("/api/auth/validate", "", "garbage")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), `"valid":false`)
	})
}

func TestMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	memberships := mocks.NewMockMembershipRepositoryInterface(ctrl)
	enforcer, err := authz.NewEnforcer()
	require.NoError(t, err)

	svc, err := NewAuthService(testConfig(), nil)
	require.NoError(t, err)
	mw := NewAuthMiddleware(svc, memberships, enforcer)

	member := testUser(t, "")
	admin := testUser(t, "")
	admin.IsSuperAdmin = true
	memberToken, err := svc.GenerateJWT(member, ProviderPassword)
	require.NoError(t, err)
	adminToken, err := svc.GenerateJWT(admin, ProviderPassword)
	require.NoError(t, err)

	orgID := uuid.New()

	router := gin.New()
	api := router.Group("/api/v1", mw.RequireAuth())
	api.GET("/me", func(c *gin.Context) {
		id, _ := GetUserID(c)
		email, _ := GetUserEmail(c)
		c.JSON(http.StatusOK, gin.H{"id": id, "email": email, "super": IsSuperAdmin(c)})
	})
	api.GET("/organizations/:id/widgets", mw.RequireOrgRole(authz.ResourceWidget, authz.ActionRead), func(c *gin.Context) {
		role, _ := GetOrgRole(c)
		c.String(http.StatusOK, string(role))
	})
	api.POST("/organizations/:id/webhooks", mw.RequireOrgRole(authz.ResourceWebhook, authz.ActionWrite), func(c *gin.Context) {
		c.Status(http.StatusCreated)
	})
	api.GET("/admin/billing/kpis", mw.RequireSuperAdmin(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	do := func(method, path, token string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(method, path, nil)
		if token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		return w
	}

	t.Run("missing header", func(t *testing.T) {
		assert.Equal(t, http.StatusUnauthorized, do(http.MethodGet, "/api/v1/me", "").Code)
	})

	t.Run("sets user context", func(t *testing.T) {
		w := do(http.MethodGet, "/api/v1/me", memberToken)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), member.ID.String())
		assert.Contains(t, w.Body.String(), `"super":false`)
	})

	t.Run("member may read widgets", func(t *testing.T) {
		memberships.EXPECT().Get(orgID, member.ID).Return(&models.Membership{Role: models.RoleMember}, nil)

		w := do(http.MethodGet, "/api/v1/organizations/"+orgID.String()+"/widgets", memberToken)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "member", w.Body.String())
	})

	t.Run("member may not manage webhooks", func(t *testing.T) {
		memberships.EXPECT().Get(orgID, member.ID).Return(&models.Membership{Role: models.RoleMember}, nil)

		w := do(http.MethodPost, "/api/v1/organizations/"+orgID.String()+"/webhooks", memberToken)
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("non member", func(t *testing.T) {
		memberships.EXPECT().Get(orgID, member.ID).Return(nil, gorm.ErrRecordNotFound)

		w := do(http.MethodGet, "/api/v1/organizations/"+orgID.String()+"/widgets", memberToken)
		assert.Equal(t, http.StatusForbidden, w.Code)
		assert.Contains(t, w.Body.String(), "not a member")
	})

	t.Run("invalid organization id", func(t *testing.T) {
		w := do(http.MethodGet, "/api/v1/organizations/not-a-uuid/widgets", memberToken)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("super admin bypasses membership", func(t *testing.T) {
		w := do(http.MethodPost, "/api/v1/organizations/"+orgID.String()+"/webhooks", adminToken)
		assert.Equal(t, http.StatusCreated, w.Code)
	})

	t.Run("super admin only route", func(t *testing.T) {
		assert.Equal(t, http.StatusForbidden, do(http.MethodGet, "/api/v1/admin/billing/kpis", memberToken).Code)
		assert.Equal(t, http.StatusOK, do(http.MethodGet, "/api/v1/admin/billing/kpis", adminToken).Code)
	})
}
