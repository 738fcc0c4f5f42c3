package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"widget-admin-backend/internal/database/models"
	apperrors "widget-admin-backend/internal/errors"
	"widget-admin-backend/internal/logger"
	"widget-admin-backend/internal/repository"
	"widget-admin-backend/internal/webhook"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// OrganizationService handles business logic for organizations
type OrganizationService struct {
	repo          repository.OrganizationRepositoryInterface
	memberships   repository.MembershipRepositoryInterface
	subscriptions repository.SubscriptionRepositoryInterface
	prices        PlanPrices
	widgets       WidgetCacheInvalidator
	audit         AuditRecorder
	events        EventPublisher
	validator     *validator.Validate
	now           func() time.Time
}

// NewOrganizationService creates a new organization service
func NewOrganizationService(
	repo repository.OrganizationRepositoryInterface,
	memberships repository.MembershipRepositoryInterface,
	subscriptions repository.SubscriptionRepositoryInterface,
	prices PlanPrices,
	widgets WidgetCacheInvalidator,
	audit AuditRecorder,
	events EventPublisher,
	validator *validator.Validate,
) *OrganizationService {
	return &OrganizationService{
		repo:          repo,
		memberships:   memberships,
		subscriptions: subscriptions,
		prices:        prices,
		widgets:       widgets,
		audit:         audit,
		events:        events,
		validator:     validator,
		now:           time.Now,
	}
}

// CreateOrganizationRequest represents the request to create an organization
type CreateOrganizationRequest struct {
	Name         string          `json:"name" validate:"required,min=1,max=100"`
	Slug         string          `json:"slug" validate:"required,max=60"`
	BillingEmail string          `json:"billing_email,omitempty" validate:"omitempty,email,max=255"`
	Metadata     json.RawMessage `json:"metadata,omitempty" swaggertype:"object"`
}

// UpdateOrganizationRequest represents the request to update an organization
type UpdateOrganizationRequest struct {
	Name         *string         `json:"name,omitempty" validate:"omitempty,min=1,max=100"`
	BillingEmail *string         `json:"billing_email,omitempty" validate:"omitempty,email,max=255"`
	Metadata     json.RawMessage `json:"metadata,omitempty" swaggertype:"object"`
}

// ChangePlanRequest represents the request to change an organization's plan
type ChangePlanRequest struct {
	Plan     string `json:"plan" validate:"required"`
	Interval string `json:"interval,omitempty" validate:"omitempty,oneof=month year"`
}

// SubscriptionResponse summarizes an organization's subscription
type SubscriptionResponse struct {
	Plan        string  `json:"plan"`
	Status      string  `json:"status"`
	Amount      string  `json:"amount"`
	Currency    string  `json:"currency"`
	Interval    string  `json:"interval"`
	StartedAt   string  `json:"started_at"`
	CanceledAt  *string `json:"canceled_at,omitempty"`
	TrialEndsAt *string `json:"trial_ends_at,omitempty"`
}

// OrganizationResponse represents the response for organization operations
type OrganizationResponse struct {
	ID           uuid.UUID             `json:"id"`
	Name         string                `json:"name"`
	Slug         string                `json:"slug"`
	Plan         string                `json:"plan"`
	Status       string                `json:"status"`
	BillingEmail string                `json:"billing_email"`
	Metadata     json.RawMessage       `json:"metadata,omitempty" swaggertype:"object"`
	Subscription *SubscriptionResponse `json:"subscription,omitempty"`
	CreatedAt    string                `json:"created_at"`
	UpdatedAt    string                `json:"updated_at"`
}

// OrganizationListResponse represents a paginated list of organizations
type OrganizationListResponse struct {
	Organizations []OrganizationResponse `json:"organizations"`
	Total         int64                  `json:"total"`
	Page          int                    `json:"page"`
	PageSize      int                    `json:"page_size"`
}

// Create creates a new organization with the actor as its owner
func (s *OrganizationService) Create(actor Actor, req *CreateOrganizationRequest) (*OrganizationResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	slug := NormalizeSlug(req.Slug)
	if !validSlug(slug) {
		return nil, apperrors.NewValidationError("slug", "must be 3-50 characters of lowercase letters, digits and hyphens")
	}
	if len(req.Metadata) > 0 && !json.Valid(req.Metadata) {
		return nil, apperrors.NewValidationError("metadata", "must be valid JSON")
	}

	existing, err := s.repo.GetBySlug(slug)
	if err != nil && !isNotFound(err) {
		return nil, fmt.Errorf("failed to check existing organization: %w", err)
	}
	if existing != nil {
		return nil, apperrors.ErrOrganizationSlugExists
	}

	now := s.now().UTC()
	org := &models.Organization{
		Name:         req.Name,
		Slug:         slug,
		Plan:         models.PlanFree,
		Status:       models.OrganizationStatusActive,
		BillingEmail: normalizeEmail(req.BillingEmail),
		Metadata:     req.Metadata,
	}
	if org.BillingEmail == "" {
		org.BillingEmail = normalizeEmail(actor.Email)
	}
	owner := &models.Membership{UserID: actor.UserID, Role: models.RoleOwner}
	sub := &models.Subscription{
		Plan:      models.PlanFree,
		Status:    models.SubscriptionStatusActive,
		Amount:    s.prices.Amount(models.PlanFree, models.BillingIntervalMonth),
		Currency:  s.prices.Currency(),
		Interval:  models.BillingIntervalMonth,
		StartedAt: now,
	}

	if err := s.repo.CreateWithOwner(org, owner, sub); err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, apperrors.ErrOrganizationSlugExists
		}
		return nil, fmt.Errorf("failed to create organization: %w", err)
	}
	org.Subscription = sub

	s.audit.Record(actor, orgIDPtr(org.ID), "organization.create", "organization", org.ID.String(), map[string]string{"slug": slug})
	return s.toResponse(org), nil
}

// GetByID retrieves an organization by ID
func (s *OrganizationService) GetByID(id uuid.UUID) (*OrganizationResponse, error) {
	org, err := s.repo.GetByID(id)
	if err != nil {
		if isNotFound(err) {
			return nil, apperrors.ErrOrganizationNotFound
		}
		return nil, fmt.Errorf("failed to get organization: %w", err)
	}
	return s.toResponse(org), nil
}

// GetBySlug retrieves an organization by its slug, case-insensitively
func (s *OrganizationService) GetBySlug(slug string) (*OrganizationResponse, error) {
	org, err := s.repo.GetBySlug(NormalizeSlug(slug))
	if err != nil {
		if isNotFound(err) {
			return nil, apperrors.ErrOrganizationNotFound
		}
		return nil, fmt.Errorf("failed to get organization: %w", err)
	}
	return s.toResponse(org), nil
}

// List returns all organizations for super admins, otherwise the actor's own
func (s *OrganizationService) List(actor Actor, page, pageSize int) (*OrganizationListResponse, error) {
	page, pageSize, offset := paginate(page, pageSize)

	var (
		orgs  []models.Organization
		total int64
		err   error
	)
	if actor.IsSuperAdmin {
		orgs, total, err = s.repo.GetAll(pageSize, offset)
	} else {
		orgs, total, err = s.repo.GetByUserID(actor.UserID, pageSize, offset)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list organizations: %w", err)
	}

	responses := make([]OrganizationResponse, len(orgs))
	for i := range orgs {
		responses[i] = *s.toResponse(&orgs[i])
	}
	return &OrganizationListResponse{
		Organizations: responses,
		Total:         total,
		Page:          page,
		PageSize:      pageSize,
	}, nil
}

// Update changes name, billing email and metadata
func (s *OrganizationService) Update(actor Actor, id uuid.UUID, req *UpdateOrganizationRequest) (*OrganizationResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	if len(req.Metadata) > 0 && !json.Valid(req.Metadata) {
		return nil, apperrors.NewValidationError("metadata", "must be valid JSON")
	}

	org, err := s.load(id)
	if err != nil {
		return nil, err
	}

	changed := map[string]interface{}{}
	if req.Name != nil && *req.Name != org.Name {
		org.Name = *req.Name
		changed["name"] = org.Name
	}
	if req.BillingEmail != nil {
		email := normalizeEmail(*req.BillingEmail)
		if email != org.BillingEmail {
			org.BillingEmail = email
			changed["billing_email"] = email
		}
	}
	if len(req.Metadata) > 0 {
		org.Metadata = req.Metadata
		changed["metadata"] = true
	}

	if err := s.repo.Update(org); err != nil {
		return nil, fmt.Errorf("failed to update organization: %w", err)
	}

	resp := s.toResponse(org)
	s.audit.Record(actor, orgIDPtr(org.ID), "organization.update", "organization", org.ID.String(), changed)
	s.events.Publish(org.ID, webhook.EventOrganizationUpdated, resp)
	return resp, nil
}

// ChangePlan moves the organization to another plan and reprices its subscription
func (s *OrganizationService) ChangePlan(actor Actor, id uuid.UUID, req *ChangePlanRequest) (*OrganizationResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	plan := models.Plan(req.Plan)
	if !plan.IsValid() {
		return nil, apperrors.ErrInvalidPlan
	}

	org, err := s.load(id)
	if err != nil {
		return nil, err
	}
	sub, err := s.subscription(org)
	if err != nil {
		return nil, err
	}

	interval := sub.Interval
	if req.Interval != "" {
		interval = models.BillingInterval(req.Interval)
	}
	previous := org.Plan
	now := s.now().UTC()

	org.Plan = plan
	sub.Plan = plan
	sub.Interval = interval
	sub.Amount = s.prices.Amount(plan, interval)
	sub.Currency = s.prices.Currency()
	if sub.Status == models.SubscriptionStatusCanceled {
		sub.Status = models.SubscriptionStatusActive
		sub.CanceledAt = nil
		sub.StartedAt = now
	}

	if err := s.repo.UpdatePlan(org, sub); err != nil {
		return nil, fmt.Errorf("failed to change plan: %w", err)
	}
	org.Subscription = sub

	resp := s.toResponse(org)
	s.audit.Record(actor, orgIDPtr(org.ID), "organization.plan_change", "subscription", sub.ID.String(),
		map[string]string{"from": string(previous), "to": string(plan), "interval": string(interval)})
	s.events.Publish(org.ID, webhook.EventOrganizationUpdated, resp)
	return resp, nil
}

// CancelSubscription marks the organization's subscription canceled
func (s *OrganizationService) CancelSubscription(actor Actor, id uuid.UUID) (*OrganizationResponse, error) {
	org, err := s.load(id)
	if err != nil {
		return nil, err
	}
	sub, err := s.subscription(org)
	if err != nil {
		return nil, err
	}
	if sub.Status == models.SubscriptionStatusCanceled {
		return nil, apperrors.NewConflictError("subscription is already canceled")
	}

	now := s.now().UTC()
	sub.Status = models.SubscriptionStatusCanceled
	sub.CanceledAt = &now
	if err := s.subscriptions.Update(sub); err != nil {
		return nil, fmt.Errorf("failed to cancel subscription: %w", err)
	}
	org.Subscription = sub

	s.audit.Record(actor, orgIDPtr(org.ID), "subscription.cancel", "subscription", sub.ID.String(), map[string]string{"plan": string(sub.Plan)})
	return s.toResponse(org), nil
}

// SetStatus suspends or reactivates an organization; super admins only
func (s *OrganizationService) SetStatus(actor Actor, id uuid.UUID, status models.OrganizationStatus) (*OrganizationResponse, error) {
	if !actor.IsSuperAdmin {
		return nil, apperrors.ErrSuperAdminRequired
	}
	if status != models.OrganizationStatusActive && status != models.OrganizationStatusSuspended {
		return nil, apperrors.NewValidationError("status", "must be active or suspended")
	}

	org, err := s.load(id)
	if err != nil {
		return nil, err
	}
	if org.Status == status {
		return s.toResponse(org), nil
	}

	org.Status = status
	if err := s.repo.Update(org); err != nil {
		return nil, fmt.Errorf("failed to update organization status: %w", err)
	}
	if err := s.widgets.InvalidateOrganization(context.Background(), org.ID); err != nil {
		logger.Named("organization").WithError(err).WithField("organization_id", org.ID).Warn("failed to invalidate widget config cache")
	}

	action := "organization.suspend"
	if status == models.OrganizationStatusActive {
		action = "organization.reactivate"
	}
	resp := s.toResponse(org)
	s.audit.Record(actor, orgIDPtr(org.ID), action, "organization", org.ID.String(), nil)
	s.events.Publish(org.ID, webhook.EventOrganizationUpdated, resp)
	return resp, nil
}

// Delete removes an organization and everything it owns
func (s *OrganizationService) Delete(actor Actor, id uuid.UUID) error {
	org, err := s.load(id)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(org.ID); err != nil {
		return fmt.Errorf("failed to delete organization: %w", err)
	}
	s.audit.Record(actor, nil, "organization.delete", "organization", org.ID.String(), map[string]string{"slug": org.Slug})
	return nil
}

func (s *OrganizationService) load(id uuid.UUID) (*models.Organization, error) {
	org, err := s.repo.GetByID(id)
	if err != nil {
		if isNotFound(err) {
			return nil, apperrors.ErrOrganizationNotFound
		}
		return nil, fmt.Errorf("failed to get organization: %w", err)
	}
	return org, nil
}

func (s *OrganizationService) subscription(org *models.Organization) (*models.Subscription, error) {
	if org.Subscription != nil {
		return org.Subscription, nil
	}
	sub, err := s.subscriptions.GetByOrganizationID(org.ID)
	if err != nil {
		if isNotFound(err) {
			return nil, apperrors.ErrSubscriptionNotFound
		}
		return nil, fmt.Errorf("failed to get subscription: %w", err)
	}
	return sub, nil
}

func (s *OrganizationService) toResponse(org *models.Organization) *OrganizationResponse {
	resp := &OrganizationResponse{
		ID:           org.ID,
		Name:         org.Name,
		Slug:         org.Slug,
		Plan:         string(org.Plan),
		Status:       string(org.Status),
		BillingEmail: org.BillingEmail,
		Metadata:     org.Metadata,
		CreatedAt:    formatTime(org.CreatedAt),
		UpdatedAt:    formatTime(org.UpdatedAt),
	}
	if sub := org.Subscription; sub != nil {
		resp.Subscription = &SubscriptionResponse{
			Plan:        string(sub.Plan),
			Status:      string(sub.Status),
			Amount:      sub.Amount.StringFixed(2),
			Currency:    sub.Currency,
			Interval:    string(sub.Interval),
			StartedAt:   formatTime(sub.StartedAt),
			CanceledAt:  formatTimePtr(sub.CanceledAt),
			TrialEndsAt: formatTimePtr(sub.TrialEndsAt),
		}
	}
	return resp
}
