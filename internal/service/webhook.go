package service

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"time"

	"widget-admin-backend/internal/database/models"
	apperrors "widget-admin-backend/internal/errors"
	"widget-admin-backend/internal/logger"
	"widget-admin-backend/internal/repository"
	"widget-admin-backend/internal/webhook"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// WebhookService manages webhook endpoints and their deliveries
type WebhookService struct {
	hooks      repository.WebhookRepositoryInterface
	deliveries repository.WebhookDeliveryRepositoryInterface
	dispatcher WebhookDispatcher
	audit      AuditRecorder
	validator  *validator.Validate
	now        func() time.Time
}

// NewWebhookService creates a new webhook service
func NewWebhookService(
	hooks repository.WebhookRepositoryInterface,
	deliveries repository.WebhookDeliveryRepositoryInterface,
	dispatcher WebhookDispatcher,
	audit AuditRecorder,
	validator *validator.Validate,
) *WebhookService {
	return &WebhookService{
		hooks:      hooks,
		deliveries: deliveries,
		dispatcher: dispatcher,
		audit:      audit,
		validator:  validator,
		now:        time.Now,
	}
}

// CreateWebhookRequest represents the request to register a webhook
type CreateWebhookRequest struct {
	URL         string   `json:"url" validate:"required,max=2000"`
	Description string   `json:"description,omitempty" validate:"max=200"`
	Events      []string `json:"events" validate:"required,min=1,max=50"`
}

// UpdateWebhookRequest represents the request to update a webhook
type UpdateWebhookRequest struct {
	URL         *string   `json:"url,omitempty" validate:"omitempty,max=2000"`
	Description *string   `json:"description,omitempty" validate:"omitempty,max=200"`
	Events      *[]string `json:"events,omitempty" validate:"omitempty,min=1,max=50"`
	IsActive    *bool     `json:"is_active,omitempty"`
}

// WebhookResponse represents a webhook without its secret
type WebhookResponse struct {
	ID             uuid.UUID `json:"id"`
	OrganizationID uuid.UUID `json:"organization_id"`
	URL            string    `json:"url"`
	Description    string    `json:"description"`
	Events         []string  `json:"events"`
	IsActive       bool      `json:"is_active"`
	FailureCount   int       `json:"failure_count"`
	LastDeliveryAt *string   `json:"last_delivery_at,omitempty"`
	DisabledAt     *string   `json:"disabled_at,omitempty"`
	CreatedAt      string    `json:"created_at"`
	UpdatedAt      string    `json:"updated_at"`
}

// WebhookSecretResponse is returned on create and rotate; the secret is never shown again
type WebhookSecretResponse struct {
	Webhook WebhookResponse `json:"webhook"`
	Secret  string          `json:"secret"`
}

// DeliveryResponse represents one webhook delivery
type DeliveryResponse struct {
	ID             uuid.UUID `json:"id"`
	WebhookID      uuid.UUID `json:"webhook_id"`
	Event          string    `json:"event"`
	Status         string    `json:"status"`
	Attempts       int       `json:"attempts"`
	ResponseStatus int       `json:"response_status,omitempty"`
	ResponseBody   string    `json:"response_body,omitempty"`
	Error          string    `json:"error,omitempty"`
	NextAttemptAt  *string   `json:"next_attempt_at,omitempty"`
	DeliveredAt    *string   `json:"delivered_at,omitempty"`
	CreatedAt      string    `json:"created_at"`
}

// DeliveryListResponse represents a paginated list of deliveries
type DeliveryListResponse struct {
	Deliveries []DeliveryResponse `json:"deliveries"`
	Total      int64              `json:"total"`
	Page       int                `json:"page"`
	PageSize   int                `json:"page_size"`
}

// RedeliverReport summarizes a bulk redelivery run
type RedeliverReport struct {
	Scanned   int `json:"scanned"`
	Succeeded int `json:"succeeded"`
	Failed    int `json:"failed"`
}

// Create registers a webhook and returns its signing secret
func (s *WebhookService) Create(actor Actor, orgID uuid.UUID, req *CreateWebhookRequest) (*WebhookSecretResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	endpoint, err := validateWebhookURL(req.URL)
	if err != nil {
		return nil, err
	}
	events, err := validateEvents(req.Events)
	if err != nil {
		return nil, err
	}
	secret, err := webhook.NewSecret()
	if err != nil {
		return nil, fmt.Errorf("failed to generate secret: %w", err)
	}

	hook := &models.Webhook{
		OrganizationID: orgID,
		URL:            endpoint,
		Description:    req.Description,
		Secret:         secret,
		Events:         events,
		IsActive:       true,
	}
	if err := s.hooks.Create(hook); err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, apperrors.ErrWebhookExists
		}
		return nil, fmt.Errorf("failed to create webhook: %w", err)
	}

	s.audit.Record(actor, orgIDPtr(orgID), "webhook.create", "webhook", hook.ID.String(), map[string]interface{}{"url": endpoint, "events": hook.EventList()})
	return &WebhookSecretResponse{Webhook: *webhookToResponse(hook), Secret: secret}, nil
}

// Get retrieves a webhook
func (s *WebhookService) Get(orgID, id uuid.UUID) (*WebhookResponse, error) {
	hook, err := s.load(orgID, id)
	if err != nil {
		return nil, err
	}
	return webhookToResponse(hook), nil
}

// List returns all webhooks of an organization
func (s *WebhookService) List(orgID uuid.UUID) ([]WebhookResponse, error) {
	hooks, err := s.hooks.GetByOrganizationID(orgID)
	if err != nil {
		return nil, fmt.Errorf("failed to list webhooks: %w", err)
	}
	out := make([]WebhookResponse, len(hooks))
	for i := range hooks {
		out[i] = *webhookToResponse(&hooks[i])
	}
	return out, nil
}

// Update changes a webhook. Re-enabling clears the failure streak.
func (s *WebhookService) Update(actor Actor, orgID, id uuid.UUID, req *UpdateWebhookRequest) (*WebhookResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	hook, err := s.load(orgID, id)
	if err != nil {
		return nil, err
	}

	if req.URL != nil {
		endpoint, err := validateWebhookURL(*req.URL)
		if err != nil {
			return nil, err
		}
		hook.URL = endpoint
	}
	if req.Description != nil {
		hook.Description = *req.Description
	}
	if req.Events != nil {
		events, err := validateEvents(*req.Events)
		if err != nil {
			return nil, err
		}
		hook.Events = events
	}
	if req.IsActive != nil {
		if *req.IsActive && !hook.IsActive {
			hook.FailureCount = 0
			hook.DisabledAt = nil
		}
		hook.IsActive = *req.IsActive
	}

	if err := s.hooks.Update(hook); err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, apperrors.ErrWebhookExists
		}
		return nil, fmt.Errorf("failed to update webhook: %w", err)
	}

	s.audit.Record(actor, orgIDPtr(orgID), "webhook.update", "webhook", hook.ID.String(), map[string]interface{}{"url": hook.URL, "is_active": hook.IsActive})
	return webhookToResponse(hook), nil
}

// Delete removes a webhook and its delivery history
func (s *WebhookService) Delete(actor Actor, orgID, id uuid.UUID) error {
	hook, err := s.load(orgID, id)
	if err != nil {
		return err
	}
	if err := s.hooks.Delete(hook.ID); err != nil {
		return fmt.Errorf("failed to delete webhook: %w", err)
	}
	s.audit.Record(actor, orgIDPtr(orgID), "webhook.delete", "webhook", hook.ID.String(), map[string]string{"url": hook.URL})
	return nil
}

// RotateSecret replaces the signing secret
func (s *WebhookService) RotateSecret(actor Actor, orgID, id uuid.UUID) (*WebhookSecretResponse, error) {
	hook, err := s.load(orgID, id)
	if err != nil {
		return nil, err
	}
	secret, err := webhook.NewSecret()
	if err != nil {
		return nil, fmt.Errorf("failed to generate secret: %w", err)
	}
	hook.Secret = secret
	if err := s.hooks.Update(hook); err != nil {
		return nil, fmt.Errorf("failed to rotate secret: %w", err)
	}

	s.audit.Record(actor, orgIDPtr(orgID), "webhook.rotate_secret", "webhook", hook.ID.String(), nil)
	return &WebhookSecretResponse{Webhook: *webhookToResponse(hook), Secret: secret}, nil
}

// ListDeliveries returns a webhook's deliveries, newest first
func (s *WebhookService) ListDeliveries(orgID, id uuid.UUID, page, pageSize int) (*DeliveryListResponse, error) {
	hook, err := s.load(orgID, id)
	if err != nil {
		return nil, err
	}
	page, pageSize, offset := paginate(page, pageSize)
	deliveries, total, err := s.deliveries.GetByWebhookID(hook.ID, pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list deliveries: %w", err)
	}
	out := make([]DeliveryResponse, len(deliveries))
	for i := range deliveries {
		out[i] = *deliveryToResponse(&deliveries[i])
	}
	return &DeliveryListResponse{Deliveries: out, Total: total, Page: page, PageSize: pageSize}, nil
}

// Redeliver resends a finished delivery with its original payload
func (s *WebhookService) Redeliver(actor Actor, orgID, id, deliveryID uuid.UUID) (*DeliveryResponse, error) {
	hook, err := s.load(orgID, id)
	if err != nil {
		return nil, err
	}
	delivery, err := s.deliveries.GetByID(deliveryID)
	if err != nil {
		if isNotFound(err) {
			return nil, apperrors.ErrWebhookDeliveryNotFound
		}
		return nil, fmt.Errorf("failed to get delivery: %w", err)
	}
	if delivery.WebhookID != hook.ID {
		return nil, apperrors.ErrWebhookDeliveryNotFound
	}
	if delivery.Status == models.DeliveryStatusPending {
		return nil, apperrors.ErrDeliveryAlreadyRunning
	}

	resetDelivery(delivery)
	if err := s.deliveries.Update(delivery); err != nil {
		return nil, fmt.Errorf("failed to reset delivery: %w", err)
	}
	s.enqueue(delivery)

	s.audit.Record(actor, orgIDPtr(orgID), "webhook.redeliver", "webhook_delivery", delivery.ID.String(), map[string]string{"event": delivery.Event})
	return deliveryToResponse(delivery), nil
}

// SendTest queues a webhook.test event to one webhook regardless of its subscriptions
func (s *WebhookService) SendTest(actor Actor, orgID, id uuid.UUID) (*DeliveryResponse, error) {
	hook, err := s.load(orgID, id)
	if err != nil {
		return nil, err
	}
	if !hook.IsActive {
		return nil, apperrors.NewConflictError("webhook is disabled")
	}

	delivery, err := s.dispatcher.CreateDelivery(hook, webhook.EventWebhookTest, map[string]interface{}{
		"webhook_id": hook.ID,
		"message":    "This is a test delivery.",
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create test delivery: %w", err)
	}
	s.enqueue(delivery)

	s.audit.Record(actor, orgIDPtr(orgID), "webhook.test", "webhook", hook.ID.String(), nil)
	return deliveryToResponse(delivery), nil
}

// RedeliverStale re-sends deliveries stuck in status for longer than olderThan.
// Deliveries are sent synchronously; ctx cancellation stops the run.
func (s *WebhookService) RedeliverStale(ctx context.Context, status models.DeliveryStatus, olderThan time.Duration, limit int) (*RedeliverReport, error) {
	if status != models.DeliveryStatusPending && status != models.DeliveryStatusFailed {
		return nil, apperrors.NewValidationError("status", "must be pending or failed")
	}
	if limit < 1 {
		limit = 100
	}

	stale, err := s.deliveries.GetStale(status, s.now().UTC().Add(-olderThan), limit)
	if err != nil {
		return nil, fmt.Errorf("failed to load deliveries: %w", err)
	}

	report := &RedeliverReport{Scanned: len(stale)}
	for i := range stale {
		if ctx.Err() != nil {
			break
		}
		delivery := &stale[i]
		resetDelivery(delivery)
		if err := s.dispatcher.Deliver(ctx, delivery); err != nil {
			report.Failed++
			continue
		}
		report.Succeeded++
	}

	s.audit.Record(SystemActor, nil, "webhook.redeliver_stale", "webhook_delivery", "", report)
	return report, ctx.Err()
}

func (s *WebhookService) enqueue(delivery *models.WebhookDelivery) {
	if err := s.dispatcher.Enqueue(delivery.ID); err != nil {
		logger.Named("webhook").WithError(err).WithField("delivery_id", delivery.ID).Warn("delivery left pending")
	}
}

func (s *WebhookService) load(orgID, id uuid.UUID) (*models.Webhook, error) {
	hook, err := s.hooks.GetByID(id)
	if err != nil {
		if isNotFound(err) {
			return nil, apperrors.ErrWebhookNotFound
		}
		return nil, fmt.Errorf("failed to get webhook: %w", err)
	}
	if hook.OrganizationID != orgID {
		return nil, apperrors.ErrWebhookNotFound
	}
	return hook, nil
}

func resetDelivery(d *models.WebhookDelivery) {
	d.Status = models.DeliveryStatusPending
	d.Attempts = 0
	d.ResponseStatus = 0
	d.ResponseBody = ""
	d.Error = ""
	d.NextAttemptAt = nil
	d.DeliveredAt = nil
}

func validateWebhookURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	u, err := url.Parse(raw)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return "", apperrors.NewValidationError("url", "must be an absolute http or https URL")
	}
	return u.String(), nil
}

func validateEvents(events []string) (json.RawMessage, error) {
	seen := make(map[string]bool, len(events))
	out := make([]string, 0, len(events))
	for _, e := range events {
		e = strings.TrimSpace(e)
		if !webhook.IsKnownEvent(e) {
			return nil, fmt.Errorf("%w: %s", apperrors.ErrInvalidWebhookEvent, e)
		}
		if seen[e] {
			continue
		}
		seen[e] = true
		out = append(out, e)
	}
	return json.Marshal(out)
}

func webhookToResponse(h *models.Webhook) *WebhookResponse {
	return &WebhookResponse{
		ID:             h.ID,
		OrganizationID: h.OrganizationID,
		URL:            h.URL,
		Description:    h.Description,
		Events:         h.EventList(),
		IsActive:       h.IsActive,
		FailureCount:   h.FailureCount,
		LastDeliveryAt: formatTimePtr(h.LastDeliveryAt),
		DisabledAt:     formatTimePtr(h.DisabledAt),
		CreatedAt:      formatTime(h.CreatedAt),
		UpdatedAt:      formatTime(h.UpdatedAt),
	}
}

func deliveryToResponse(d *models.WebhookDelivery) *DeliveryResponse {
	return &DeliveryResponse{
		ID:             d.ID,
		WebhookID:      d.WebhookID,
		Event:          d.Event,
		Status:         string(d.Status),
		Attempts:       d.Attempts,
		ResponseStatus: d.ResponseStatus,
		ResponseBody:   d.ResponseBody,
		Error:          d.Error,
		NextAttemptAt:  formatTimePtr(d.NextAttemptAt),
		DeliveredAt:    formatTimePtr(d.DeliveredAt),
		CreatedAt:      formatTime(d.CreatedAt),
	}
}
