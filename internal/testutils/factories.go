package testutils

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"widget-admin-backend/internal/database/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func newBase() models.BaseModel {
	now := time.Now()
	return models.BaseModel{ID: uuid.New(), CreatedAt: now, UpdatedAt: now}
}

func shortID() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
}

// OrganizationFactory provides methods to create test Organization data
type OrganizationFactory struct{}

// Create creates a test Organization with a unique slug
func (f *OrganizationFactory) Create() *models.Organization {
	return &models.Organization{
		BaseModel:    newBase(),
		Name:         "Acme Support",
		Slug:         "acme-" + shortID(),
		Plan:         models.PlanFree,
		Status:       models.OrganizationStatusActive,
		BillingEmail: "billing@acme.test",
	}
}

// WithSlug sets a custom slug
func (f *OrganizationFactory) WithSlug(slug string) *models.Organization {
	org := f.Create()
	org.Slug = slug
	return org
}

// UserFactory provides methods to create test User data
type UserFactory struct{}

// Create creates a test User with a unique email
func (f *UserFactory) Create() *models.User {
	return &models.User{
		BaseModel: newBase(),
		Email:     fmt.Sprintf("user-%s@acme.test", shortID()),
		FullName:  "Test User",
	}
}

// WithEmail sets a custom email
func (f *UserFactory) WithEmail(email string) *models.User {
	u := f.Create()
	u.Email = email
	return u
}

// MembershipFactory provides methods to create test Membership data
type MembershipFactory struct{}

// Create creates a membership linking user to org with role
func (f *MembershipFactory) Create(orgID, userID uuid.UUID, role models.Role) *models.Membership {
	return &models.Membership{
		BaseModel:      newBase(),
		OrganizationID: orgID,
		UserID:         userID,
		Role:           role,
	}
}

// InvitationFactory provides methods to create test Invitation data
type InvitationFactory struct{}

// Create creates a pending invitation expiring in a week
func (f *InvitationFactory) Create(orgID uuid.UUID) *models.Invitation {
	return &models.Invitation{
		BaseModel:      newBase(),
		OrganizationID: orgID,
		Email:          fmt.Sprintf("invitee-%s@acme.test", shortID()),
		Role:           models.RoleMember,
		TokenHash:      strings.Repeat(shortID(), 8),
		Status:         models.InvitationStatusPending,
		ExpiresAt:      time.Now().Add(7 * 24 * time.Hour),
	}
}

// WidgetFactory provides methods to create test Widget data
type WidgetFactory struct{}

// Create creates an active widget
func (f *WidgetFactory) Create(orgID uuid.UUID) *models.Widget {
	return &models.Widget{
		BaseModel:      newBase(),
		OrganizationID: orgID,
		Name:           "Website " + shortID(),
		PublicKey:      "wgt_" + shortID() + shortID(),
		AllowedOrigins: json.RawMessage(`["https://acme.test"]`),
		Settings:       json.RawMessage(`{"title":"Chat with us"}`),
		IsActive:       true,
	}
}

// LinkRuleFactory provides methods to create test LinkRule data
type LinkRuleFactory struct{}

// Create creates an org-wide active rule
func (f *LinkRuleFactory) Create(orgID uuid.UUID, pattern string) *models.LinkRule {
	return &models.LinkRule{
		BaseModel:      newBase(),
		OrganizationID: orgID,
		Name:           "rule-" + shortID(),
		Pattern:        pattern,
		Priority:       100,
		CardTitle:      "Pricing",
		CardURL:        "https://acme.test/pricing",
		IsActive:       true,
	}
}

// WebhookFactory provides methods to create test Webhook data
type WebhookFactory struct{}

// Create creates an active webhook subscribed to all events
func (f *WebhookFactory) Create(orgID uuid.UUID, url string) *models.Webhook {
	return &models.Webhook{
		BaseModel:      newBase(),
		OrganizationID: orgID,
		URL:            url,
		Secret:         "whsec_" + shortID(),
		Events:         json.RawMessage(`["*"]`),
		IsActive:       true,
	}
}

// SubscriptionFactory provides methods to create test Subscription data
type SubscriptionFactory struct{}

// Create creates an active monthly subscription
func (f *SubscriptionFactory) Create(orgID uuid.UUID, plan models.Plan, amount string) *models.Subscription {
	return &models.Subscription{
		BaseModel:      newBase(),
		OrganizationID: orgID,
		Plan:           plan,
		Status:         models.SubscriptionStatusActive,
		Amount:         decimal.RequireFromString(amount),
		Currency:       "USD",
		Interval:       models.BillingIntervalMonth,
		StartedAt:      time.Now().Add(-60 * 24 * time.Hour),
	}
}

// KnowledgeSourceFactory provides methods to create test KnowledgeSource data
type KnowledgeSourceFactory struct{}

// Create creates a pending text source
func (f *KnowledgeSourceFactory) Create(orgID uuid.UUID) *models.KnowledgeSource {
	return &models.KnowledgeSource{
		BaseModel:      newBase(),
		OrganizationID: orgID,
		Kind:           models.SourceKindText,
		Title:          "Shipping FAQ",
		RawContent:     "# Shipping\n\nWe ship worldwide.",
		Status:         models.SourceStatusPending,
	}
}

// FactorySet contains all factories for easy access
type FactorySet struct {
	Organization    *OrganizationFactory
	User            *UserFactory
	Membership      *MembershipFactory
	Invitation      *InvitationFactory
	Widget          *WidgetFactory
	LinkRule        *LinkRuleFactory
	Webhook         *WebhookFactory
	Subscription    *SubscriptionFactory
	KnowledgeSource *KnowledgeSourceFactory
}

// NewFactorySet creates a new set of all factories
func NewFactorySet() *FactorySet {
	return &FactorySet{
		Organization:    &OrganizationFactory{},
		User:            &UserFactory{},
		Membership:      &MembershipFactory{},
		Invitation:      &InvitationFactory{},
		Widget:          &WidgetFactory{},
		LinkRule:        &LinkRuleFactory{},
		Webhook:         &WebhookFactory{},
		Subscription:    &SubscriptionFactory{},
		KnowledgeSource: &KnowledgeSourceFactory{},
	}
}
