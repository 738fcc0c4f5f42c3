package auth

import (
	"context"
	"fmt"
	"net/http"

	"github.com/google/go-github/v57/github"
	"golang.org/x/oauth2"
)

// GitHubClient wraps the GitHub API client with authentication support
type GitHubClient struct {
	config *ProviderConfig
}

// GitHubProfile is the subset of a GitHub account used to match a platform user
type GitHubProfile struct {
	ID        int64  `json:"id"`
	Login     string `json:"login"`
	Email     string `json:"email"`
	Name      string `json:"name"`
	AvatarURL string `json:"avatarUrl"`
}

// NewGitHubClient creates a new GitHub API client
func NewGitHubClient(config *ProviderConfig) *GitHubClient {
	return &GitHubClient{config: config}
}

func (c *GitHubClient) apiClient(httpClient *http.Client) (*github.Client, error) {
	client := github.NewClient(httpClient)
	if c.config.EnterpriseBaseURL == "" {
		return client, nil
	}
	return client.WithEnterpriseURLs(c.config.EnterpriseBaseURL, c.config.EnterpriseBaseURL)
}

// GetUserProfile fetches the authenticated user and picks the best email address
func (c *GitHubClient) GetUserProfile(ctx context.Context, accessToken string) (*GitHubProfile, error) {
	tc := oauth2.NewClient(ctx, oauth2.StaticTokenSource(&oauth2.Token{AccessToken: accessToken}))

	client, err := c.apiClient(tc)
	if err != nil {
		return nil, fmt.Errorf("failed to create GitHub client: %w", err)
	}

	user, resp, err := client.Users.Get(ctx, "")
	if err != nil {
		if resp != nil && resp.StatusCode == http.StatusUnauthorized {
			return nil, fmt.Errorf("invalid access token")
		}
		return nil, fmt.Errorf("failed to get user profile: %w", err)
	}

	// Missing user:email scope is tolerated; the profile email is the fallback
	emails, _, err := client.Users.ListEmails(ctx, nil)
	if err != nil {
		emails = nil
	}

	return &GitHubProfile{
		ID:        user.GetID(),
		Login:     user.GetLogin(),
		Email:     pickEmail(emails, user.GetEmail()),
		Name:      user.GetName(),
		AvatarURL: user.GetAvatarURL(),
	}, nil
}

// pickEmail prefers the primary verified address, then any verified one, then the public profile email
func pickEmail(emails []*github.UserEmail, fallback string) string {
	for _, e := range emails {
		if e.GetPrimary() && e.GetVerified() {
			return e.GetEmail()
		}
	}
	for _, e := range emails {
		if e.GetVerified() {
			return e.GetEmail()
		}
	}
	return fallback
}

// GetOAuth2Config returns the OAuth2 configuration for this GitHub client
func (c *GitHubClient) GetOAuth2Config(redirectURL string) *oauth2.Config {
	endpoint := oauth2.Endpoint{
		AuthURL:  "https://github.com/login/oauth/authorize",
		TokenURL: "https://github.com/login/oauth/access_token",
	}
	if c.config.EnterpriseBaseURL != "" {
		endpoint = oauth2.Endpoint{
			AuthURL:  fmt.Sprintf("%s/login/oauth/authorize", c.config.EnterpriseBaseURL),
			TokenURL: fmt.Sprintf("%s/login/oauth/access_token", c.config.EnterpriseBaseURL),
		}
	}

	return &oauth2.Config{
		ClientID:     c.config.ClientID,
		ClientSecret: c.config.ClientSecret,
		RedirectURL:  redirectURL,
		Scopes:       []string{"read:user", "user:email"},
		Endpoint:     endpoint,
	}
}
