package auth

import (
	"fmt"
	"strings"
	"time"

	"widget-admin-backend/internal/config"
)

const (
	defaultAccessTokenTTL  = time.Hour
	defaultRefreshTokenTTL = 30 * 24 * time.Hour
	tokenIssuer            = "widget-admin-backend"
)

// AuthConfig holds all authentication configuration for the application
type AuthConfig struct {
	JWTSecret       string        `yaml:"jwt_secret" json:"jwt_secret"`
	RedirectURL     string        `yaml:"redirect_url" json:"redirect_url"`
	FrontendURL     string        `yaml:"frontend_url" json:"frontend_url"`
	AccessTokenTTL  time.Duration `yaml:"access_token_ttl" json:"access_token_ttl"`
	RefreshTokenTTL time.Duration `yaml:"refresh_token_ttl" json:"refresh_token_ttl"`

	// GitHub is nil when SSO is disabled
	GitHub *ProviderConfig `yaml:"github,omitempty" json:"github,omitempty"`
}

// ProviderConfig holds configuration for an OAuth provider
type ProviderConfig struct {
	ClientID          string `yaml:"client_id" json:"client_id"`
	ClientSecret      string `yaml:"client_secret" json:"client_secret"`
	EnterpriseBaseURL string `yaml:"enterprise_base_url,omitempty" json:"enterprise_base_url,omitempty"`
}

// NewAuthConfig derives the auth configuration from the application config
func NewAuthConfig(cfg *config.Config) *AuthConfig {
	ac := &AuthConfig{
		JWTSecret:       cfg.JWTSecret,
		RedirectURL:     strings.TrimRight(cfg.AuthRedirectURL, "/"),
		FrontendURL:     strings.TrimRight(cfg.PublicBaseURL, "/"),
		AccessTokenTTL:  defaultAccessTokenTTL,
		RefreshTokenTTL: defaultRefreshTokenTTL,
	}
	if cfg.GitHubSSOEnabled() {
		ac.GitHub = &ProviderConfig{
			ClientID:          cfg.GitHubClientID,
			ClientSecret:      cfg.GitHubClientSecret,
			EnterpriseBaseURL: strings.TrimRight(cfg.GitHubEnterpriseBaseURL, "/"),
		}
	}
	return ac
}

// ValidateConfig validates the authentication configuration
func (c *AuthConfig) ValidateConfig() error {
	if c.JWTSecret == "" {
		return fmt.Errorf("JWT secret is required")
	}

	if c.AccessTokenTTL <= 0 || c.RefreshTokenTTL <= 0 {
		return fmt.Errorf("token lifetimes must be positive")
	}

	if c.GitHub != nil {
		if c.RedirectURL == "" {
			return fmt.Errorf("redirect URL is required when GitHub SSO is enabled")
		}
		if c.GitHub.ClientID == "" {
			return fmt.Errorf("client_id is required for provider 'github'")
		}
		if c.GitHub.ClientSecret == "" {
			return fmt.Errorf("client_secret is required for provider 'github'")
		}
	}

	return nil
}

// CallbackURL is the OAuth redirect target registered with GitHub
func (c *AuthConfig) CallbackURL() string {
	return c.RedirectURL + "/api/auth/github/callback"
}
