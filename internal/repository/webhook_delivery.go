package repository

import (
	"time"

	"widget-admin-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// WebhookDeliveryRepository handles database operations for webhook deliveries
type WebhookDeliveryRepository struct {
	db *gorm.DB
}

// NewWebhookDeliveryRepository creates a new webhook delivery repository
func NewWebhookDeliveryRepository(db *gorm.DB) *WebhookDeliveryRepository {
	return &WebhookDeliveryRepository{db: db}
}

// Create creates a new delivery
func (r *WebhookDeliveryRepository) Create(delivery *models.WebhookDelivery) error {
	return r.db.Create(delivery).Error
}

// GetByID retrieves a delivery by ID
func (r *WebhookDeliveryRepository) GetByID(id uuid.UUID) (*models.WebhookDelivery, error) {
	var d models.WebhookDelivery
	if err := r.db.First(&d, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &d, nil
}

// GetByWebhookID lists deliveries of a webhook, newest first
func (r *WebhookDeliveryRepository) GetByWebhookID(webhookID uuid.UUID, limit, offset int) ([]models.WebhookDelivery, int64, error) {
	var deliveries []models.WebhookDelivery
	var total int64

	q := r.db.Model(&models.WebhookDelivery{}).Where("webhook_id = ?", webhookID)
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	if err := q.Order("created_at DESC").Limit(limit).Offset(offset).Find(&deliveries).Error; err != nil {
		return nil, 0, err
	}
	return deliveries, total, nil
}

// GetStale returns deliveries in status last touched before the cutoff, oldest first
func (r *WebhookDeliveryRepository) GetStale(status models.DeliveryStatus, before time.Time, limit int) ([]models.WebhookDelivery, error) {
	var deliveries []models.WebhookDelivery
	err := r.db.
		Where("status = ? AND updated_at < ?", status, before).
		Order("created_at ASC").
		Limit(limit).
		Find(&deliveries).Error
	return deliveries, err
}

// Update updates a delivery
func (r *WebhookDeliveryRepository) Update(delivery *models.WebhookDelivery) error {
	return r.db.Save(delivery).Error
}
