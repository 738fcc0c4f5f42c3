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
	"widget-admin-backend/internal/metrics"
	"widget-admin-backend/internal/repository"
	"widget-admin-backend/internal/webhook"

	jsonpatch "github.com/evanphx/json-patch/v5"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

const widgetConfigKeyPrefix = "widget:config:"

// WidgetSettings are the known keys of a widget's settings document; unknown keys are kept as-is
type WidgetSettings struct {
	ThemeColor   string `json:"theme_color,omitempty" validate:"omitempty,hexcolor"`
	Position     string `json:"position,omitempty" validate:"omitempty,oneof=bottom-right bottom-left"`
	Greeting     string `json:"greeting,omitempty" validate:"max=500"`
	LauncherText string `json:"launcher_text,omitempty" validate:"max=60"`
}

var defaultWidgetSettings = json.RawMessage(`{"theme_color":"#2563eb","position":"bottom-right","greeting":"Hi! How can we help?","launcher_text":"Chat"}`)

// WidgetService manages chat widgets and serves their public configuration
type WidgetService struct {
	repo      repository.WidgetRepositoryInterface
	cache     ConfigCache
	cacheTTL  time.Duration
	audit     AuditRecorder
	events    EventPublisher
	validator *validator.Validate
}

// NewWidgetService creates a new widget service
func NewWidgetService(
	repo repository.WidgetRepositoryInterface,
	cache ConfigCache,
	cacheTTL time.Duration,
	audit AuditRecorder,
	events EventPublisher,
	validator *validator.Validate,
) *WidgetService {
	return &WidgetService{
		repo:      repo,
		cache:     cache,
		cacheTTL:  cacheTTL,
		audit:     audit,
		events:    events,
		validator: validator,
	}
}

// CreateWidgetRequest represents the request to create a widget
type CreateWidgetRequest struct {
	Name           string          `json:"name" validate:"required,min=1,max=100"`
	AllowedOrigins []string        `json:"allowed_origins,omitempty" validate:"max=50"`
	Settings       json.RawMessage `json:"settings,omitempty" swaggertype:"object"`
}

// UpdateWidgetRequest represents the request to update a widget
type UpdateWidgetRequest struct {
	Name           *string   `json:"name,omitempty" validate:"omitempty,min=1,max=100"`
	AllowedOrigins *[]string `json:"allowed_origins,omitempty"`
	IsActive       *bool     `json:"is_active,omitempty"`
}

// WidgetResponse represents a widget as seen by organization admins
type WidgetResponse struct {
	ID             uuid.UUID       `json:"id"`
	OrganizationID uuid.UUID       `json:"organization_id"`
	Name           string          `json:"name"`
	PublicKey      string          `json:"public_key"`
	AllowedOrigins []string        `json:"allowed_origins"`
	Settings       json.RawMessage `json:"settings" swaggertype:"object"`
	IsActive       bool            `json:"is_active"`
	CreatedAt      string          `json:"created_at"`
	UpdatedAt      string          `json:"updated_at"`
}

// WidgetListResponse represents a paginated list of widgets
type WidgetListResponse struct {
	Widgets  []WidgetResponse `json:"widgets"`
	Total    int64            `json:"total"`
	Page     int              `json:"page"`
	PageSize int              `json:"page_size"`
}

// PublicWidgetConfig is what the embedded widget loads at runtime
type PublicWidgetConfig struct {
	PublicKey        string          `json:"public_key"`
	Name             string          `json:"name"`
	OrganizationName string          `json:"organization_name"`
	Settings         json.RawMessage `json:"settings" swaggertype:"object"`
	AllowedOrigins   []string        `json:"-"`
}

type cachedWidgetConfig struct {
	Config  PublicWidgetConfig `json:"config"`
	Origins []string           `json:"origins"`
}

// Create creates a widget with a fresh public key
func (s *WidgetService) Create(actor Actor, orgID uuid.UUID, req *CreateWidgetRequest) (*WidgetResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	origins, err := normalizeOrigins(req.AllowedOrigins)
	if err != nil {
		return nil, err
	}
	settings := defaultWidgetSettings
	if len(req.Settings) > 0 {
		merged, err := jsonpatch.MergePatch(defaultWidgetSettings, req.Settings)
		if err != nil {
			return nil, apperrors.ErrInvalidWidgetSettings
		}
		settings = merged
	}
	if err := s.validateSettings(settings); err != nil {
		return nil, err
	}

	key, err := newPublicKey()
	if err != nil {
		return nil, fmt.Errorf("failed to generate public key: %w", err)
	}
	originsJSON, _ := json.Marshal(origins)
	widget := &models.Widget{
		OrganizationID: orgID,
		Name:           strings.TrimSpace(req.Name),
		PublicKey:      key,
		AllowedOrigins: originsJSON,
		Settings:       settings,
		IsActive:       true,
	}
	if err := s.repo.Create(widget); err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, apperrors.ErrWidgetExists
		}
		return nil, fmt.Errorf("failed to create widget: %w", err)
	}

	resp := widgetToResponse(widget)
	s.audit.Record(actor, orgIDPtr(orgID), "widget.create", "widget", widget.ID.String(), map[string]string{"name": widget.Name})
	s.events.Publish(orgID, webhook.EventWidgetCreated, resp)
	return resp, nil
}

// Get retrieves a widget of an organization
func (s *WidgetService) Get(orgID, id uuid.UUID) (*WidgetResponse, error) {
	widget, err := s.load(orgID, id)
	if err != nil {
		return nil, err
	}
	return widgetToResponse(widget), nil
}

// List returns widgets of an organization
func (s *WidgetService) List(orgID uuid.UUID, page, pageSize int) (*WidgetListResponse, error) {
	page, pageSize, offset := paginate(page, pageSize)
	widgets, total, err := s.repo.GetByOrganizationID(orgID, pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list widgets: %w", err)
	}
	out := make([]WidgetResponse, len(widgets))
	for i := range widgets {
		out[i] = *widgetToResponse(&widgets[i])
	}
	return &WidgetListResponse{Widgets: out, Total: total, Page: page, PageSize: pageSize}, nil
}

// Update changes name, allowed origins or the active flag
func (s *WidgetService) Update(actor Actor, orgID, id uuid.UUID, req *UpdateWidgetRequest) (*WidgetResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	widget, err := s.load(orgID, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		widget.Name = strings.TrimSpace(*req.Name)
	}
	if req.AllowedOrigins != nil {
		origins, err := normalizeOrigins(*req.AllowedOrigins)
		if err != nil {
			return nil, err
		}
		widget.AllowedOrigins, _ = json.Marshal(origins)
	}
	if req.IsActive != nil {
		widget.IsActive = *req.IsActive
	}

	return s.save(actor, widget, "widget.update", nil)
}

// PatchSettings applies an RFC 7386 merge patch to the settings and validates the result
func (s *WidgetService) PatchSettings(actor Actor, orgID, id uuid.UUID, patch json.RawMessage) (*WidgetResponse, error) {
	if len(patch) == 0 || !json.Valid(patch) {
		return nil, apperrors.NewValidationError("settings", "merge patch must be a JSON document")
	}
	widget, err := s.load(orgID, id)
	if err != nil {
		return nil, err
	}

	current := widget.Settings
	if len(current) == 0 {
		current = json.RawMessage(`{}`)
	}
	merged, err := jsonpatch.MergePatch(current, patch)
	if err != nil {
		return nil, apperrors.ErrInvalidWidgetSettings
	}
	if err := s.validateSettings(merged); err != nil {
		return nil, err
	}
	widget.Settings = merged

	return s.save(actor, widget, "widget.settings_update", json.RawMessage(patch))
}

// RotateKey issues a new public key; the old one stops working immediately
func (s *WidgetService) RotateKey(actor Actor, orgID, id uuid.UUID) (*WidgetResponse, error) {
	widget, err := s.load(orgID, id)
	if err != nil {
		return nil, err
	}
	oldKey := widget.PublicKey
	key, err := newPublicKey()
	if err != nil {
		return nil, fmt.Errorf("failed to generate public key: %w", err)
	}
	widget.PublicKey = key

	resp, err := s.save(actor, widget, "widget.rotate_key", nil)
	if err != nil {
		return nil, err
	}
	s.invalidate(oldKey)
	return resp, nil
}

// Delete removes a widget
func (s *WidgetService) Delete(actor Actor, orgID, id uuid.UUID) error {
	widget, err := s.load(orgID, id)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(widget.ID); err != nil {
		return fmt.Errorf("failed to delete widget: %w", err)
	}
	s.invalidate(widget.PublicKey)

	s.audit.Record(actor, orgIDPtr(orgID), "widget.delete", "widget", widget.ID.String(), map[string]string{"name": widget.Name})
	s.events.Publish(orgID, webhook.EventWidgetDeleted, map[string]interface{}{"id": widget.ID, "name": widget.Name})
	return nil
}

// InvalidateOrganization drops cached public config of every widget in the organization
func (s *WidgetService) InvalidateOrganization(ctx context.Context, orgID uuid.UUID) error {
	offset := 0
	for {
		widgets, _, err := s.repo.GetByOrganizationID(orgID, maxPageSize, offset)
		if err != nil {
			return fmt.Errorf("failed to list widgets: %w", err)
		}
		if len(widgets) == 0 {
			return nil
		}
		keys := make([]string, len(widgets))
		for i := range widgets {
			keys[i] = widgetConfigKeyPrefix + widgets[i].PublicKey
		}
		if err := s.cache.Delete(ctx, keys...); err != nil {
			return err
		}
		if len(widgets) < maxPageSize {
			return nil
		}
		offset += len(widgets)
	}
}

// PublicConfig returns the runtime configuration of an active widget for an allowed origin
func (s *WidgetService) PublicConfig(ctx context.Context, publicKey, origin string) (*PublicWidgetConfig, error) {
	var cached cachedWidgetConfig
	hit, err := s.cache.Get(ctx, widgetConfigKeyPrefix+publicKey, &cached)
	if err != nil {
		metrics.Get().WidgetConfigCache.WithLabelValues("error").Inc()
		logger.WithContext(ctx).WithError(err).Warn("widget config cache read failed")
	}
	if hit {
		metrics.Get().WidgetConfigCache.WithLabelValues("hit").Inc()
	} else {
		metrics.Get().WidgetConfigCache.WithLabelValues("miss").Inc()
		widget, err := s.repo.GetByPublicKey(publicKey)
		if err != nil {
			if isNotFound(err) {
				return nil, apperrors.ErrWidgetNotFound
			}
			return nil, fmt.Errorf("failed to get widget: %w", err)
		}
		if !widget.IsActive || widget.Organization == nil || !widget.Organization.IsActive() {
			return nil, apperrors.ErrWidgetNotFound
		}
		cached = cachedWidgetConfig{
			Config: PublicWidgetConfig{
				PublicKey:        widget.PublicKey,
				Name:             widget.Name,
				OrganizationName: widget.Organization.Name,
				Settings:         widget.Settings,
			},
			Origins: widget.Origins(),
		}
		if err := s.cache.Set(ctx, widgetConfigKeyPrefix+publicKey, cached, s.cacheTTL); err != nil {
			logger.WithContext(ctx).WithError(err).Warn("widget config cache write failed")
		}
	}

	if !OriginAllowed(cached.Origins, origin) {
		return nil, apperrors.ErrOriginNotAllowed
	}
	cfg := cached.Config
	cfg.AllowedOrigins = cached.Origins
	return &cfg, nil
}

// OriginAllowed reports whether origin may embed a widget with the given allow-list.
// An empty list or a "*" entry allows any origin; requests without an Origin header pass.
func OriginAllowed(allowed []string, origin string) bool {
	if origin == "" || len(allowed) == 0 {
		return true
	}
	origin = strings.TrimRight(strings.ToLower(origin), "/")
	for _, a := range allowed {
		if a == "*" || a == origin {
			return true
		}
	}
	return false
}

func (s *WidgetService) save(actor Actor, widget *models.Widget, action string, metadata interface{}) (*WidgetResponse, error) {
	if err := s.repo.Update(widget); err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, apperrors.ErrWidgetExists
		}
		return nil, fmt.Errorf("failed to update widget: %w", err)
	}
	s.invalidate(widget.PublicKey)

	resp := widgetToResponse(widget)
	s.audit.Record(actor, orgIDPtr(widget.OrganizationID), action, "widget", widget.ID.String(), metadata)
	s.events.Publish(widget.OrganizationID, webhook.EventWidgetUpdated, resp)
	return resp, nil
}

func (s *WidgetService) invalidate(publicKey string) {
	if err := s.cache.Delete(context.Background(), widgetConfigKeyPrefix+publicKey); err != nil {
		logger.Named("widget").WithError(err).WithField("public_key", publicKey).Warn("failed to invalidate widget config cache")
	}
}

func (s *WidgetService) load(orgID, id uuid.UUID) (*models.Widget, error) {
	widget, err := s.repo.GetByID(id)
	if err != nil {
		if isNotFound(err) {
			return nil, apperrors.ErrWidgetNotFound
		}
		return nil, fmt.Errorf("failed to get widget: %w", err)
	}
	if widget.OrganizationID != orgID {
		return nil, apperrors.ErrWidgetNotFound
	}
	return widget, nil
}

func (s *WidgetService) validateSettings(doc json.RawMessage) error {
	var object map[string]json.RawMessage
	if err := json.Unmarshal(doc, &object); err != nil || object == nil {
		return apperrors.NewValidationError("settings", "must be a JSON object")
	}
	var settings WidgetSettings
	if err := json.Unmarshal(doc, &settings); err != nil {
		return apperrors.ErrInvalidWidgetSettings
	}
	if err := s.validator.Struct(&settings); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}
	return nil
}

func normalizeOrigins(origins []string) ([]string, error) {
	out := make([]string, 0, len(origins))
	seen := make(map[string]bool, len(origins))
	for _, o := range origins {
		o = strings.TrimRight(strings.ToLower(strings.TrimSpace(o)), "/")
		if o == "" || seen[o] {
			continue
		}
		if o != "*" {
			u, err := url.Parse(o)
			if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" || u.Path != "" || u.RawQuery != "" {
				return nil, apperrors.NewValidationError("allowed_origins", fmt.Sprintf("%q is not an origin", o))
			}
		}
		seen[o] = true
		out = append(out, o)
	}
	return out, nil
}

func widgetToResponse(w *models.Widget) *WidgetResponse {
	return &WidgetResponse{
		ID:             w.ID,
		OrganizationID: w.OrganizationID,
		Name:           w.Name,
		PublicKey:      w.PublicKey,
		AllowedOrigins: w.Origins(),
		Settings:       w.Settings,
		IsActive:       w.IsActive,
		CreatedAt:      formatTime(w.CreatedAt),
		UpdatedAt:      formatTime(w.UpdatedAt),
	}
}
