package repository

import (
	"encoding/json"
	"time"

	"widget-admin-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// WebhookRepository handles database operations for webhooks
type WebhookRepository struct {
	db *gorm.DB
}

// NewWebhookRepository creates a new webhook repository
func NewWebhookRepository(db *gorm.DB) *WebhookRepository {
	return &WebhookRepository{db: db}
}

// Create creates a new webhook
func (r *WebhookRepository) Create(hook *models.Webhook) error {
	return r.db.Omit("Deliveries").Create(hook).Error
}

// GetByID retrieves a webhook by ID
func (r *WebhookRepository) GetByID(id uuid.UUID) (*models.Webhook, error) {
	var hook models.Webhook
	if err := r.db.First(&hook, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &hook, nil
}

// GetByOrganizationID lists the webhooks of an organization
func (r *WebhookRepository) GetByOrganizationID(orgID uuid.UUID) ([]models.Webhook, error) {
	var hooks []models.Webhook
	err := r.db.Where("organization_id = ?", orgID).Order("created_at ASC").Find(&hooks).Error
	return hooks, err
}

// GetSubscribed returns active webhooks whose event list contains event or "*"
func (r *WebhookRepository) GetSubscribed(orgID uuid.UUID, event string) ([]models.Webhook, error) {
	exact, err := json.Marshal([]string{event})
	if err != nil {
		return nil, err
	}
	var hooks []models.Webhook
	err = r.db.
		Where("organization_id = ? AND is_active = ?", orgID, true).
		Where("events @> ?::jsonb OR events @> ?::jsonb", string(exact), `["*"]`).
		Find(&hooks).Error
	return hooks, err
}

// Update updates a webhook
func (r *WebhookRepository) Update(hook *models.Webhook) error {
	return r.db.Omit("Deliveries").Save(hook).Error
}

// Delete deletes a webhook and its deliveries
func (r *WebhookRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Webhook{}, "id = ?", id).Error
}

// RecordSuccess clears the consecutive failure counter
func (r *WebhookRepository) RecordSuccess(id uuid.UUID, at time.Time) error {
	return r.db.Model(&models.Webhook{}).Where("id = ?", id).Updates(map[string]interface{}{
		"failure_count":    0,
		"last_delivery_at": at,
	}).Error
}

// RecordFailure increments the consecutive failure counter and deactivates the
// webhook once it reaches disableThreshold. It reports whether this call disabled it.
func (r *WebhookRepository) RecordFailure(id uuid.UUID, at time.Time, disableThreshold int) (bool, error) {
	disabled := false
	err := r.db.Transaction(func(tx *gorm.DB) error {
		var hook models.Webhook
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&hook, "id = ?", id).Error; err != nil {
			return err
		}
		updates := map[string]interface{}{
			"failure_count":    hook.FailureCount + 1,
			"last_delivery_at": at,
		}
		if disableThreshold > 0 && hook.IsActive && hook.FailureCount+1 >= disableThreshold {
			updates["is_active"] = false
			updates["disabled_at"] = at
			disabled = true
		}
		return tx.Model(&hook).Updates(updates).Error
	})
	return disabled, err
}
