package auth

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"widget-admin-backend/internal/database/models"
	apperrors "widget-admin-backend/internal/errors"
	"widget-admin-backend/internal/logger"
	"widget-admin-backend/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const (
	ProviderPassword = "password"
	ProviderGitHub   = "github"
)

// RefreshTokenData stores information about a refresh token
type RefreshTokenData struct {
	UserID    uuid.UUID `json:"user_id"`
	Email     string    `json:"email"`
	Provider  string    `json:"provider"`
	ExpiresAt time.Time `json:"expires_at"`
	CreatedAt time.Time `json:"created_at"`
}

// AuthService provides authentication functionality
type AuthService struct {
	config        *AuthConfig
	github        *GitHubClient
	users         repository.UserRepositoryInterface
	refreshTokens map[string]*RefreshTokenData // In-memory store for refresh tokens
	tokenMutex    sync.RWMutex
	now           func() time.Time
}

// AuthClaims represents JWT token claims
type AuthClaims struct {
	UserID               uuid.UUID `json:"user_id" swaggertype:"string" example:"5f0c6a52-8f1e-4b43-9b61-2f7f4b7a9d11"`
	Email                string    `json:"email" example:"jane.doe@acme.io"`
	IsSuperAdmin         bool      `json:"is_super_admin" example:"false"`
	Provider             string    `json:"provider" example:"password"`
	jwt.RegisteredClaims `swaggerignore:"true"`
}

// LoginRequest represents a password login
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email" example:"jane.doe@acme.io"`
	Password string `json:"password" binding:"required" example:"correct horse battery staple"`
}

// TokenResponse is returned by login, refresh and SSO callback
type TokenResponse struct {
	AccessToken  string      `json:"accessToken"`
	TokenType    string      `json:"tokenType" example:"Bearer"`
	ExpiresIn    int64       `json:"expiresIn" example:"3600"`
	RefreshToken string      `json:"refreshToken,omitempty"`
	Profile      UserProfile `json:"profile"`
}

// UserProfile is the signed-in user as returned to the client
type UserProfile struct {
	ID           uuid.UUID `json:"id" swaggertype:"string"`
	Email        string    `json:"email"`
	FullName     string    `json:"fullName"`
	GitHubLogin  string    `json:"githubLogin,omitempty"`
	IsSuperAdmin bool      `json:"isSuperAdmin"`
}

// RefreshTokenRequest represents the request for token refresh
type RefreshTokenRequest struct {
	RefreshToken string `json:"refreshToken" binding:"required"`
}

// AuthLogoutResponse represents the response from the logout endpoint
type AuthLogoutResponse struct {
	Message string `json:"message" example:"Logged out successfully"`
}

// AuthValidateResponse represents the response from the token validation endpoint
type AuthValidateResponse struct {
	Valid  bool        `json:"valid" example:"true"`
	Claims *AuthClaims `json:"claims"`
}

// NewAuthService creates a new authentication service
func NewAuthService(config *AuthConfig, users repository.UserRepositoryInterface) (*AuthService, error) {
	if err := config.ValidateConfig(); err != nil {
		return nil, fmt.Errorf("invalid auth config: %w", err)
	}

	s := &AuthService{
		config:        config,
		users:         users,
		refreshTokens: make(map[string]*RefreshTokenData),
		now:           time.Now,
	}
	if config.GitHub != nil {
		s.github = NewGitHubClient(config.GitHub)
	}
	return s, nil
}

// GitHubEnabled reports whether GitHub SSO is configured
func (s *AuthService) GitHubEnabled() bool {
	return s.github != nil
}

// Login verifies an email/password pair
func (s *AuthService) Login(ctx context.Context, req *LoginRequest) (*TokenResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	user, err := s.users.GetByEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to load user: %w", err)
	}

	// SSO-only accounts have no password hash
	if user.PasswordHash == "" {
		return nil, apperrors.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, apperrors.ErrInvalidCredentials
	}

	s.touchLastLogin(ctx, user)
	return s.issueTokens(user, ProviderPassword)
}

// GetAuthURL generates the GitHub authorization URL
func (s *AuthService) GetAuthURL(state string) (string, error) {
	if s.github == nil {
		return "", apperrors.ErrOAuthProviderUnavailable
	}
	return s.github.GetOAuth2Config(s.config.CallbackURL()).AuthCodeURL(state), nil
}

// HandleCallback exchanges the OAuth code and signs in the user registered under the GitHub email.
// Accounts are never created here.
func (s *AuthService) HandleCallback(ctx context.Context, code string) (*TokenResponse, error) {
	if s.github == nil {
		return nil, apperrors.ErrOAuthProviderUnavailable
	}

	token, err := s.github.GetOAuth2Config(s.config.CallbackURL()).Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("failed to exchange code for token: %w", err)
	}

	profile, err := s.github.GetUserProfile(ctx, token.AccessToken)
	if err != nil {
		return nil, fmt.Errorf("failed to get user profile: %w", err)
	}
	if profile.Email == "" {
		return nil, apperrors.ErrSSOUserUnknown
	}

	user, err := s.users.GetByEmail(strings.ToLower(profile.Email))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrSSOUserUnknown
		}
		return nil, fmt.Errorf("failed to load user: %w", err)
	}

	if user.GitHubLogin == nil || *user.GitHubLogin != profile.Login {
		login := profile.Login
		user.GitHubLogin = &login
		if err := s.users.Update(user); err != nil {
			return nil, fmt.Errorf("failed to link GitHub account: %w", err)
		}
	}

	s.touchLastLogin(ctx, user)
	return s.issueTokens(user, ProviderGitHub)
}

// RefreshToken rotates a refresh token and issues a new access token
func (s *AuthService) RefreshToken(refreshToken string) (*TokenResponse, error) {
	s.tokenMutex.RLock()
	tokenData, exists := s.refreshTokens[refreshToken]
	s.tokenMutex.RUnlock()

	if !exists {
		return nil, apperrors.ErrInvalidRefreshToken
	}

	if s.now().After(tokenData.ExpiresAt) {
		s.revoke(refreshToken)
		return nil, apperrors.ErrRefreshTokenExpired
	}

	// Reload so role changes apply on the next access token
	user, err := s.users.GetByID(tokenData.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			s.revoke(refreshToken)
			return nil, apperrors.ErrInvalidRefreshToken
		}
		return nil, fmt.Errorf("failed to load user: %w", err)
	}

	resp, err := s.issueTokens(user, tokenData.Provider)
	if err != nil {
		return nil, err
	}
	s.revoke(refreshToken)
	return resp, nil
}

// Logout drops the refresh token; access tokens expire on their own
func (s *AuthService) Logout(refreshToken string) {
	if refreshToken == "" {
		return
	}
	s.revoke(refreshToken)
}

// PurgeExpired removes expired refresh tokens and returns how many were dropped
func (s *AuthService) PurgeExpired() int {
	now := s.now()

	s.tokenMutex.Lock()
	defer s.tokenMutex.Unlock()

	n := 0
	for token, data := range s.refreshTokens {
		if now.After(data.ExpiresAt) {
			delete(s.refreshTokens, token)
			n++
		}
	}
	return n
}

// GenerateJWT creates a JWT token for the user
func (s *AuthService) GenerateJWT(user *models.User, provider string) (string, error) {
	now := s.now()
	claims := &AuthClaims{
		UserID:       user.ID,
		Email:        user.Email,
		IsSuperAdmin: user.IsSuperAdmin,
		Provider:     provider,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(s.config.AccessTokenTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    tokenIssuer,
			Subject:   user.ID.String(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.config.JWTSecret))
}

// ValidateJWT validates and parses a JWT token
func (s *AuthService) ValidateJWT(tokenString string) (*AuthClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &AuthClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.config.JWTSecret), nil
	}, jwt.WithIssuer(tokenIssuer), jwt.WithTimeFunc(s.now))

	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	if claims, ok := token.Claims.(*AuthClaims); ok && token.Valid {
		return claims, nil
	}

	return nil, fmt.Errorf("invalid token")
}

// GenerateState generates a random state parameter for OAuth2
func (s *AuthService) GenerateState() (string, error) {
	return generateRandomString(32)
}

func (s *AuthService) issueTokens(user *models.User, provider string) (*TokenResponse, error) {
	jwtToken, err := s.GenerateJWT(user, provider)
	if err != nil {
		return nil, fmt.Errorf("failed to generate JWT: %w", err)
	}

	refreshToken, err := generateRandomString(64)
	if err != nil {
		return nil, fmt.Errorf("failed to generate refresh token: %w", err)
	}

	now := s.now()
	s.tokenMutex.Lock()
	s.refreshTokens[refreshToken] = &RefreshTokenData{
		UserID:    user.ID,
		Email:     user.Email,
		Provider:  provider,
		ExpiresAt: now.Add(s.config.RefreshTokenTTL),
		CreatedAt: now,
	}
	s.tokenMutex.Unlock()

	return &TokenResponse{
		AccessToken:  jwtToken,
		TokenType:    "Bearer",
		ExpiresIn:    int64(s.config.AccessTokenTTL.Seconds()),
		RefreshToken: refreshToken,
		Profile:      profileOf(user),
	}, nil
}

func (s *AuthService) revoke(refreshToken string) {
	s.tokenMutex.Lock()
	delete(s.refreshTokens, refreshToken)
	s.tokenMutex.Unlock()
}

func (s *AuthService) touchLastLogin(ctx context.Context, user *models.User) {
	if err := s.users.TouchLastLogin(user.ID, s.now()); err != nil {
		logger.WithContext(ctx).WithError(err).WithField("user_id", user.ID).Warn("failed to record last login")
	}
}

func profileOf(user *models.User) UserProfile {
	p := UserProfile{
		ID:           user.ID,
		Email:        user.Email,
		FullName:     user.FullName,
		IsSuperAdmin: user.IsSuperAdmin,
	}
	if user.GitHubLogin != nil {
		p.GitHubLogin = *user.GitHubLogin
	}
	return p
}

// generateRandomString generates a random base64 encoded string
func generateRandomString(length int) (string, error) {
	bytes := make([]byte, length)
	if _, err := rand.Read(bytes); err != nil {
		return "", fmt.Errorf("failed to generate random bytes: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(bytes), nil
}
