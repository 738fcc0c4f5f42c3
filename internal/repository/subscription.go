package repository

import (
	"widget-admin-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SubscriptionRepository handles database operations for subscriptions
type SubscriptionRepository struct {
	db *gorm.DB
}

// NewSubscriptionRepository creates a new subscription repository
func NewSubscriptionRepository(db *gorm.DB) *SubscriptionRepository {
	return &SubscriptionRepository{db: db}
}

// GetByOrganizationID retrieves the subscription of an organization
func (r *SubscriptionRepository) GetByOrganizationID(orgID uuid.UUID) (*models.Subscription, error) {
	var sub models.Subscription
	if err := r.db.First(&sub, "organization_id = ?", orgID).Error; err != nil {
		return nil, err
	}
	return &sub, nil
}

// GetAll returns every subscription
func (r *SubscriptionRepository) GetAll() ([]models.Subscription, error) {
	var subs []models.Subscription
	err := r.db.Order("created_at ASC").Find(&subs).Error
	return subs, err
}

// Update updates a subscription
func (r *SubscriptionRepository) Update(sub *models.Subscription) error {
	return r.db.Save(sub).Error
}
