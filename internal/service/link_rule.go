package service

import (
	"context"
	"fmt"
	"strings"

	"widget-admin-backend/internal/database/models"
	apperrors "widget-admin-backend/internal/errors"
	"widget-admin-backend/internal/linkrules"
	"widget-admin-backend/internal/metrics"
	"widget-admin-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

const (
	defaultRulePriority = 100
	maxTestMatches      = 10
	maxScanMessageLen   = 4000
)

// LinkRuleService manages link rules and evaluates them against chat messages
type LinkRuleService struct {
	repo      repository.LinkRuleRepositoryInterface
	widgets   repository.WidgetRepositoryInterface
	matcher   RuleMatcher
	audit     AuditRecorder
	validator *validator.Validate
}

// NewLinkRuleService creates a new link rule service
func NewLinkRuleService(
	repo repository.LinkRuleRepositoryInterface,
	widgets repository.WidgetRepositoryInterface,
	matcher RuleMatcher,
	audit AuditRecorder,
	validator *validator.Validate,
) *LinkRuleService {
	return &LinkRuleService{
		repo:      repo,
		widgets:   widgets,
		matcher:   matcher,
		audit:     audit,
		validator: validator,
	}
}

// LinkRuleRequest represents the request to create or replace a link rule
type LinkRuleRequest struct {
	Name            string     `json:"name" validate:"required,max=100"`
	WidgetID        *uuid.UUID `json:"widget_id,omitempty"`
	Pattern         string     `json:"pattern" validate:"required"`
	CaseSensitive   bool       `json:"case_sensitive"`
	Priority        *int       `json:"priority,omitempty" validate:"omitempty,min=1,max=10000"`
	CardTitle       string     `json:"card_title" validate:"required,max=200"`
	CardDescription string     `json:"card_description,omitempty" validate:"max=500"`
	CardURL         string     `json:"card_url" validate:"required,url,max=2000"`
	CardImageURL    string     `json:"card_image_url,omitempty" validate:"omitempty,url,max=2000"`
	IsActive        *bool      `json:"is_active,omitempty"`
}

// LinkRuleResponse represents a link rule
type LinkRuleResponse struct {
	ID              uuid.UUID  `json:"id"`
	OrganizationID  uuid.UUID  `json:"organization_id"`
	WidgetID        *uuid.UUID `json:"widget_id,omitempty"`
	Name            string     `json:"name"`
	Pattern         string     `json:"pattern"`
	CaseSensitive   bool       `json:"case_sensitive"`
	Priority        int        `json:"priority"`
	CardTitle       string     `json:"card_title"`
	CardDescription string     `json:"card_description"`
	CardURL         string     `json:"card_url"`
	CardImageURL    string     `json:"card_image_url"`
	IsActive        bool       `json:"is_active"`
	CreatedAt       string     `json:"created_at"`
	UpdatedAt       string     `json:"updated_at"`
}

// LinkRuleListResponse represents a paginated list of link rules
type LinkRuleListResponse struct {
	Rules    []LinkRuleResponse `json:"rules"`
	Total    int64              `json:"total"`
	Page     int                `json:"page"`
	PageSize int                `json:"page_size"`
}

// TestLinkRuleRequest checks a pattern against sample text without saving it
type TestLinkRuleRequest struct {
	Pattern       string     `json:"pattern,omitempty"`
	CaseSensitive bool       `json:"case_sensitive"`
	Message       string     `json:"message" validate:"required,max=4000"`
	WidgetID      *uuid.UUID `json:"widget_id,omitempty"`
}

// TestLinkRuleResponse reports how the pattern and the saved rules react to the message
type TestLinkRuleResponse struct {
	Matched    bool             `json:"matched"`
	Matches    []string         `json:"matches"`
	SavedCards []linkrules.Card `json:"saved_cards"`
}

// ScanRequest is the widget runtime's message scan call
type ScanRequest struct {
	Message string `json:"message" validate:"required"`
}

// ScanResponse carries the link cards for a visitor message
type ScanResponse struct {
	Cards []linkrules.Card `json:"cards"`
}

// Create validates the pattern and stores a new rule
func (s *LinkRuleService) Create(actor Actor, orgID uuid.UUID, req *LinkRuleRequest) (*LinkRuleResponse, error) {
	rule := &models.LinkRule{OrganizationID: orgID}
	if err := s.apply(rule, req); err != nil {
		return nil, err
	}
	if err := s.repo.Create(rule); err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, apperrors.ErrLinkRuleExists
		}
		return nil, fmt.Errorf("failed to create link rule: %w", err)
	}
	s.matcher.Invalidate(orgID)

	s.audit.Record(actor, orgIDPtr(orgID), "link_rule.create", "link_rule", rule.ID.String(), map[string]string{"name": rule.Name, "pattern": rule.Pattern})
	return linkRuleToResponse(rule), nil
}

// Get retrieves a link rule
func (s *LinkRuleService) Get(orgID, id uuid.UUID) (*LinkRuleResponse, error) {
	rule, err := s.load(orgID, id)
	if err != nil {
		return nil, err
	}
	return linkRuleToResponse(rule), nil
}

// List returns rules in evaluation order
func (s *LinkRuleService) List(orgID uuid.UUID, page, pageSize int) (*LinkRuleListResponse, error) {
	page, pageSize, offset := paginate(page, pageSize)
	rules, total, err := s.repo.GetByOrganizationID(orgID, pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list link rules: %w", err)
	}
	out := make([]LinkRuleResponse, len(rules))
	for i := range rules {
		out[i] = *linkRuleToResponse(&rules[i])
	}
	return &LinkRuleListResponse{Rules: out, Total: total, Page: page, PageSize: pageSize}, nil
}

// Update replaces a rule's definition
func (s *LinkRuleService) Update(actor Actor, orgID, id uuid.UUID, req *LinkRuleRequest) (*LinkRuleResponse, error) {
	rule, err := s.load(orgID, id)
	if err != nil {
		return nil, err
	}
	if err := s.apply(rule, req); err != nil {
		return nil, err
	}
	if err := s.repo.Update(rule); err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, apperrors.ErrLinkRuleExists
		}
		return nil, fmt.Errorf("failed to update link rule: %w", err)
	}
	s.matcher.Invalidate(orgID)

	s.audit.Record(actor, orgIDPtr(orgID), "link_rule.update", "link_rule", rule.ID.String(), map[string]string{"name": rule.Name, "pattern": rule.Pattern})
	return linkRuleToResponse(rule), nil
}

// Delete removes a rule
func (s *LinkRuleService) Delete(actor Actor, orgID, id uuid.UUID) error {
	rule, err := s.load(orgID, id)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(rule.ID); err != nil {
		return fmt.Errorf("failed to delete link rule: %w", err)
	}
	s.matcher.Invalidate(orgID)

	s.audit.Record(actor, orgIDPtr(orgID), "link_rule.delete", "link_rule", rule.ID.String(), map[string]string{"name": rule.Name})
	return nil
}

// Test runs an unsaved pattern against a message and shows the cards saved rules would produce
func (s *LinkRuleService) Test(orgID uuid.UUID, req *TestLinkRuleRequest) (*TestLinkRuleResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	resp := &TestLinkRuleResponse{Matches: []string{}}
	if req.Pattern != "" {
		re, err := linkrules.Compile(req.Pattern, req.CaseSensitive)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", apperrors.ErrInvalidPattern, err)
		}
		resp.Matches = append(resp.Matches, re.FindAllString(req.Message, maxTestMatches)...)
		resp.Matched = len(resp.Matches) > 0
	}

	widgetID := uuid.Nil
	if req.WidgetID != nil {
		widgetID = *req.WidgetID
	}
	cards, err := s.matcher.Match(orgID, widgetID, req.Message)
	if err != nil {
		return nil, fmt.Errorf("failed to evaluate link rules: %w", err)
	}
	resp.SavedCards = cards
	return resp, nil
}

// Scan returns link cards for a visitor message sent through a public widget
func (s *LinkRuleService) Scan(ctx context.Context, publicKey, origin, message string) (*ScanResponse, error) {
	message = strings.TrimSpace(message)
	if message == "" {
		return nil, apperrors.NewValidationError("message", "is required")
	}
	message = truncateBytes(message, maxScanMessageLen)

	widget, err := s.widgets.GetByPublicKey(publicKey)
	if err != nil {
		if isNotFound(err) {
			return nil, apperrors.ErrWidgetNotFound
		}
		return nil, fmt.Errorf("failed to get widget: %w", err)
	}
	if !widget.IsActive || widget.Organization == nil || !widget.Organization.IsActive() {
		return nil, apperrors.ErrWidgetNotFound
	}
	if !OriginAllowed(widget.Origins(), origin) {
		return nil, apperrors.ErrOriginNotAllowed
	}

	cards, err := s.matcher.Match(widget.OrganizationID, widget.ID, message)
	if err != nil {
		return nil, fmt.Errorf("failed to evaluate link rules: %w", err)
	}
	metrics.Get().LinkRuleCardsServed.Add(float64(len(cards)))
	return &ScanResponse{Cards: cards}, nil
}

func (s *LinkRuleService) apply(rule *models.LinkRule, req *LinkRuleRequest) error {
	if err := s.validator.Struct(req); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}
	if _, err := linkrules.Compile(req.Pattern, req.CaseSensitive); err != nil {
		return fmt.Errorf("%w: %v", apperrors.ErrInvalidPattern, err)
	}
	if req.WidgetID != nil {
		widget, err := s.widgets.GetByID(*req.WidgetID)
		if err != nil && !isNotFound(err) {
			return fmt.Errorf("failed to get widget: %w", err)
		}
		if err != nil || widget.OrganizationID != rule.OrganizationID {
			return apperrors.NewValidationError("widget_id", "widget does not belong to this organization")
		}
	}

	rule.Name = strings.TrimSpace(req.Name)
	rule.WidgetID = req.WidgetID
	rule.Pattern = req.Pattern
	rule.CaseSensitive = req.CaseSensitive
	rule.Priority = defaultRulePriority
	if req.Priority != nil {
		rule.Priority = *req.Priority
	}
	rule.CardTitle = req.CardTitle
	rule.CardDescription = req.CardDescription
	rule.CardURL = req.CardURL
	rule.CardImageURL = req.CardImageURL
	rule.IsActive = true
	if req.IsActive != nil {
		rule.IsActive = *req.IsActive
	}
	return nil
}

func (s *LinkRuleService) load(orgID, id uuid.UUID) (*models.LinkRule, error) {
	rule, err := s.repo.GetByID(id)
	if err != nil {
		if isNotFound(err) {
			return nil, apperrors.ErrLinkRuleNotFound
		}
		return nil, fmt.Errorf("failed to get link rule: %w", err)
	}
	if rule.OrganizationID != orgID {
		return nil, apperrors.ErrLinkRuleNotFound
	}
	return rule, nil
}

func linkRuleToResponse(r *models.LinkRule) *LinkRuleResponse {
	return &LinkRuleResponse{
		ID:              r.ID,
		OrganizationID:  r.OrganizationID,
		WidgetID:        r.WidgetID,
		Name:            r.Name,
		Pattern:         r.Pattern,
		CaseSensitive:   r.CaseSensitive,
		Priority:        r.Priority,
		CardTitle:       r.CardTitle,
		CardDescription: r.CardDescription,
		CardURL:         r.CardURL,
		CardImageURL:    r.CardImageURL,
		IsActive:        r.IsActive,
		CreatedAt:       formatTime(r.CreatedAt),
		UpdatedAt:       formatTime(r.UpdatedAt),
	}
}
