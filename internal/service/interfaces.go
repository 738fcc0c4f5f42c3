package service

import (
	"context"
	"encoding/json"
	"io"
	"time"

	"widget-admin-backend/internal/database/models"
	"widget-admin-backend/internal/linkrules"
	"widget-admin-backend/internal/mailer"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// EventPublisher queues webhook events
type EventPublisher interface {
	Publish(orgID uuid.UUID, event string, data interface{})
}

// AuditRecorder appends audit entries; it never fails the caller
type AuditRecorder interface {
	Record(actor Actor, orgID *uuid.UUID, action, resourceType, resourceID string, metadata interface{})
}

// Mailer delivers plain-text mail
type Mailer interface {
	Send(ctx context.Context, msg mailer.Message) error
}

// ConfigCache stores public widget configuration
type ConfigCache interface {
	Get(ctx context.Context, key string, dest interface{}) (bool, error)
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
	Delete(ctx context.Context, keys ...string) error
}

// WidgetCacheInvalidator drops cached public widget config of an organization
type WidgetCacheInvalidator interface {
	InvalidateOrganization(ctx context.Context, orgID uuid.UUID) error
}

// RuleMatcher evaluates cached link rules
type RuleMatcher interface {
	Match(orgID, widgetID uuid.UUID, message string) ([]linkrules.Card, error)
	Invalidate(orgID uuid.UUID)
}

// WebhookDispatcher creates and delivers webhook deliveries
type WebhookDispatcher interface {
	CreateDelivery(hook *models.Webhook, event string, data interface{}) (*models.WebhookDelivery, error)
	Enqueue(deliveryID uuid.UUID) error
	Deliver(ctx context.Context, delivery *models.WebhookDelivery) error
}

// DocumentFetcher downloads URL knowledge sources
type DocumentFetcher interface {
	Fetch(ctx context.Context, url string) ([]byte, error)
}

// OrganizationServiceInterface defines the interface for organization service
type OrganizationServiceInterface interface {
	Create(actor Actor, req *CreateOrganizationRequest) (*OrganizationResponse, error)
	GetByID(id uuid.UUID) (*OrganizationResponse, error)
	GetBySlug(slug string) (*OrganizationResponse, error)
	List(actor Actor, page, pageSize int) (*OrganizationListResponse, error)
	Update(actor Actor, id uuid.UUID, req *UpdateOrganizationRequest) (*OrganizationResponse, error)
	ChangePlan(actor Actor, id uuid.UUID, req *ChangePlanRequest) (*OrganizationResponse, error)
	CancelSubscription(actor Actor, id uuid.UUID) (*OrganizationResponse, error)
	SetStatus(actor Actor, id uuid.UUID, status models.OrganizationStatus) (*OrganizationResponse, error)
	Delete(actor Actor, id uuid.UUID) error
}

// MemberServiceInterface defines the interface for member service
type MemberServiceInterface interface {
	List(orgID uuid.UUID, query string, page, pageSize int) (*MemberListResponse, error)
	ChangeRole(actor Actor, orgID, userID uuid.UUID, req *ChangeRoleRequest) (*MemberResponse, error)
	Remove(actor Actor, orgID, userID uuid.UUID) error
	Profile(userID uuid.UUID) (*ProfileResponse, error)
	RoleOf(orgID, userID uuid.UUID) (models.Role, error)
}

// InvitationServiceInterface defines the interface for invitation service
type InvitationServiceInterface interface {
	Create(ctx context.Context, actor Actor, orgID uuid.UUID, req *CreateInvitationRequest) (*InvitationCreatedResponse, error)
	List(orgID uuid.UUID, status string, page, pageSize int) (*InvitationListResponse, error)
	Revoke(actor Actor, orgID, id uuid.UUID) (*InvitationResponse, error)
	Resend(ctx context.Context, actor Actor, orgID, id uuid.UUID) (*InvitationCreatedResponse, error)
	Accept(ctx context.Context, req *AcceptInvitationRequest, ip, userAgent string) (*AcceptInvitationResponse, error)
	ExpireStale() (int64, error)
}

// WidgetServiceInterface defines the interface for widget service
type WidgetServiceInterface interface {
	Create(actor Actor, orgID uuid.UUID, req *CreateWidgetRequest) (*WidgetResponse, error)
	Get(orgID, id uuid.UUID) (*WidgetResponse, error)
	List(orgID uuid.UUID, page, pageSize int) (*WidgetListResponse, error)
	Update(actor Actor, orgID, id uuid.UUID, req *UpdateWidgetRequest) (*WidgetResponse, error)
	PatchSettings(actor Actor, orgID, id uuid.UUID, patch json.RawMessage) (*WidgetResponse, error)
	RotateKey(actor Actor, orgID, id uuid.UUID) (*WidgetResponse, error)
	Delete(actor Actor, orgID, id uuid.UUID) error
	PublicConfig(ctx context.Context, publicKey, origin string) (*PublicWidgetConfig, error)
}

// LinkRuleServiceInterface defines the interface for link rule service
type LinkRuleServiceInterface interface {
	Create(actor Actor, orgID uuid.UUID, req *LinkRuleRequest) (*LinkRuleResponse, error)
	Get(orgID, id uuid.UUID) (*LinkRuleResponse, error)
	List(orgID uuid.UUID, page, pageSize int) (*LinkRuleListResponse, error)
	Update(actor Actor, orgID, id uuid.UUID, req *LinkRuleRequest) (*LinkRuleResponse, error)
	Delete(actor Actor, orgID, id uuid.UUID) error
	Test(orgID uuid.UUID, req *TestLinkRuleRequest) (*TestLinkRuleResponse, error)
	Scan(ctx context.Context, publicKey, origin, message string) (*ScanResponse, error)
}

// WebhookServiceInterface defines the interface for webhook service
type WebhookServiceInterface interface {
	Create(actor Actor, orgID uuid.UUID, req *CreateWebhookRequest) (*WebhookSecretResponse, error)
	Get(orgID, id uuid.UUID) (*WebhookResponse, error)
	List(orgID uuid.UUID) ([]WebhookResponse, error)
	Update(actor Actor, orgID, id uuid.UUID, req *UpdateWebhookRequest) (*WebhookResponse, error)
	Delete(actor Actor, orgID, id uuid.UUID) error
	RotateSecret(actor Actor, orgID, id uuid.UUID) (*WebhookSecretResponse, error)
	ListDeliveries(orgID, id uuid.UUID, page, pageSize int) (*DeliveryListResponse, error)
	Redeliver(actor Actor, orgID, id, deliveryID uuid.UUID) (*DeliveryResponse, error)
	SendTest(actor Actor, orgID, id uuid.UUID) (*DeliveryResponse, error)
	RedeliverStale(ctx context.Context, status models.DeliveryStatus, olderThan time.Duration, limit int) (*RedeliverReport, error)
}

// AuditServiceInterface defines the interface for audit log queries
type AuditServiceInterface interface {
	List(query *AuditQuery, page, pageSize int) (*AuditLogListResponse, error)
	Export(query *AuditQuery, w io.Writer) (int, error)
}

// BillingServiceInterface defines the interface for billing KPIs
type BillingServiceInterface interface {
	KPIs() (*BillingKPIResponse, error)
}

// KnowledgeServiceInterface defines the interface for knowledge base service
type KnowledgeServiceInterface interface {
	CreateText(actor Actor, orgID uuid.UUID, req *CreateTextSourceRequest) (*KnowledgeSourceResponse, error)
	CreateURL(actor Actor, orgID uuid.UUID, req *CreateURLSourceRequest) (*KnowledgeSourceResponse, error)
	CreateFile(actor Actor, orgID uuid.UUID, title, fileName string, data []byte) (*KnowledgeSourceResponse, error)
	Get(orgID, id uuid.UUID) (*KnowledgeSourceResponse, error)
	List(orgID uuid.UUID, page, pageSize int) (*KnowledgeSourceListResponse, error)
	Reingest(actor Actor, orgID, id uuid.UUID) (*KnowledgeSourceResponse, error)
	Delete(actor Actor, orgID, id uuid.UUID) error
	ListChunks(orgID, id uuid.UUID) ([]KnowledgeChunkResponse, error)
	Search(orgID uuid.UUID, query string) ([]KnowledgeChunkResponse, error)
	MaxUploadSize() int64
}

// DirectoryServiceInterface defines the interface for directory search
type DirectoryServiceInterface interface {
	SearchUsersByCN(cn string) ([]DirectoryUser, error)
}
