package repository

import (
	"time"

	"widget-admin-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// OrganizationRepositoryInterface defines the interface for organization repository operations
type OrganizationRepositoryInterface interface {
	CreateWithOwner(org *models.Organization, owner *models.Membership, sub *models.Subscription) error
	GetByID(id uuid.UUID) (*models.Organization, error)
	GetBySlug(slug string) (*models.Organization, error)
	GetAll(limit, offset int) ([]models.Organization, int64, error)
	GetByUserID(userID uuid.UUID, limit, offset int) ([]models.Organization, int64, error)
	Update(org *models.Organization) error
	UpdatePlan(org *models.Organization, sub *models.Subscription) error
	Delete(id uuid.UUID) error
}

// UserRepositoryInterface defines the interface for user repository operations
type UserRepositoryInterface interface {
	Create(user *models.User) error
	GetByID(id uuid.UUID) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	GetWithMemberships(id uuid.UUID) (*models.User, error)
	Update(user *models.User) error
	TouchLastLogin(id uuid.UUID, at time.Time) error
}

// MembershipRepositoryInterface defines the interface for membership repository operations
type MembershipRepositoryInterface interface {
	Create(membership *models.Membership) error
	Get(orgID, userID uuid.UUID) (*models.Membership, error)
	GetByOrganizationID(orgID uuid.UUID, query string, limit, offset int) ([]models.Membership, int64, error)
	ChangeRole(orgID, userID uuid.UUID, role models.Role) (*models.Membership, error)
	Remove(orgID, userID uuid.UUID) (*models.Membership, error)
	CountOwners(orgID uuid.UUID) (int64, error)
}

// InvitationRepositoryInterface defines the interface for invitation repository operations
type InvitationRepositoryInterface interface {
	Create(inv *models.Invitation) error
	GetByID(id uuid.UUID) (*models.Invitation, error)
	GetByTokenHash(hash string) (*models.Invitation, error)
	GetPendingByEmail(orgID uuid.UUID, email string, now time.Time) (*models.Invitation, error)
	GetByOrganizationID(orgID uuid.UUID, status models.InvitationStatus, limit, offset int) ([]models.Invitation, int64, error)
	Update(inv *models.Invitation) error
	Accept(inv *models.Invitation, user *models.User, membership *models.Membership, at time.Time) error
	ExpirePending(now time.Time) (int64, error)
}

// WidgetRepositoryInterface defines the interface for widget repository operations
type WidgetRepositoryInterface interface {
	Create(widget *models.Widget) error
	GetByID(id uuid.UUID) (*models.Widget, error)
	GetByPublicKey(publicKey string) (*models.Widget, error)
	GetByOrganizationID(orgID uuid.UUID, limit, offset int) ([]models.Widget, int64, error)
	Update(widget *models.Widget) error
	Delete(id uuid.UUID) error
}

// LinkRuleRepositoryInterface defines the interface for link rule repository operations
type LinkRuleRepositoryInterface interface {
	Create(rule *models.LinkRule) error
	GetByID(id uuid.UUID) (*models.LinkRule, error)
	GetByOrganizationID(orgID uuid.UUID, limit, offset int) ([]models.LinkRule, int64, error)
	GetActiveByOrganizationID(orgID uuid.UUID) ([]models.LinkRule, error)
	Update(rule *models.LinkRule) error
	Delete(id uuid.UUID) error
}

// WebhookRepositoryInterface defines the interface for webhook repository operations
type WebhookRepositoryInterface interface {
	Create(hook *models.Webhook) error
	GetByID(id uuid.UUID) (*models.Webhook, error)
	GetByOrganizationID(orgID uuid.UUID) ([]models.Webhook, error)
	GetSubscribed(orgID uuid.UUID, event string) ([]models.Webhook, error)
	Update(hook *models.Webhook) error
	Delete(id uuid.UUID) error
	RecordSuccess(id uuid.UUID, at time.Time) error
	RecordFailure(id uuid.UUID, at time.Time, disableThreshold int) (bool, error)
}

// WebhookDeliveryRepositoryInterface defines the interface for webhook delivery repository operations
type WebhookDeliveryRepositoryInterface interface {
	Create(delivery *models.WebhookDelivery) error
	GetByID(id uuid.UUID) (*models.WebhookDelivery, error)
	GetByWebhookID(webhookID uuid.UUID, limit, offset int) ([]models.WebhookDelivery, int64, error)
	GetStale(status models.DeliveryStatus, before time.Time, limit int) ([]models.WebhookDelivery, error)
	Update(delivery *models.WebhookDelivery) error
}

// AuditLogRepositoryInterface defines the interface for audit log repository operations
type AuditLogRepositoryInterface interface {
	Create(entry *models.AuditLog) error
	List(filter AuditLogFilter, limit, offset int) ([]models.AuditLog, int64, error)
}

// SubscriptionRepositoryInterface defines the interface for subscription repository operations
type SubscriptionRepositoryInterface interface {
	GetByOrganizationID(orgID uuid.UUID) (*models.Subscription, error)
	GetAll() ([]models.Subscription, error)
	Update(sub *models.Subscription) error
}

// KnowledgeRepositoryInterface defines the interface for knowledge base repository operations
type KnowledgeRepositoryInterface interface {
	CreateSource(source *models.KnowledgeSource) error
	GetSourceByID(id uuid.UUID) (*models.KnowledgeSource, error)
	GetSourcesByOrganizationID(orgID uuid.UUID, limit, offset int) ([]models.KnowledgeSource, int64, error)
	UpdateSource(source *models.KnowledgeSource) error
	GetStaleSources(status models.SourceStatus, before time.Time, limit int) ([]models.KnowledgeSource, error)
	DeleteSource(id uuid.UUID) error
	ReplaceChunks(sourceID uuid.UUID, chunks []models.KnowledgeChunk) error
	GetChunksBySourceID(sourceID uuid.UUID) ([]models.KnowledgeChunk, error)
	SearchChunks(orgID uuid.UUID, query string, limit int) ([]models.KnowledgeChunk, error)
}
