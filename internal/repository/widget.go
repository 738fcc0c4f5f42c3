package repository

import (
	"widget-admin-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// WidgetRepository handles database operations for widgets
type WidgetRepository struct {
	db *gorm.DB
}

// NewWidgetRepository creates a new widget repository
func NewWidgetRepository(db *gorm.DB) *WidgetRepository {
	return &WidgetRepository{db: db}
}

// Create creates a new widget
func (r *WidgetRepository) Create(widget *models.Widget) error {
	return r.db.Omit("Organization").Create(widget).Error
}

// GetByID retrieves a widget by ID
func (r *WidgetRepository) GetByID(id uuid.UUID) (*models.Widget, error) {
	var w models.Widget
	if err := r.db.First(&w, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &w, nil
}

// GetByPublicKey retrieves a widget and its organization by public key
func (r *WidgetRepository) GetByPublicKey(publicKey string) (*models.Widget, error) {
	var w models.Widget
	if err := r.db.Preload("Organization").First(&w, "public_key = ?", publicKey).Error; err != nil {
		return nil, err
	}
	return &w, nil
}

// GetByOrganizationID lists widgets of an organization
func (r *WidgetRepository) GetByOrganizationID(orgID uuid.UUID, limit, offset int) ([]models.Widget, int64, error) {
	var widgets []models.Widget
	var total int64

	q := r.db.Model(&models.Widget{}).Where("organization_id = ?", orgID)
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	if err := q.Order("name ASC").Limit(limit).Offset(offset).Find(&widgets).Error; err != nil {
		return nil, 0, err
	}
	return widgets, total, nil
}

// Update updates a widget
func (r *WidgetRepository) Update(widget *models.Widget) error {
	return r.db.Omit("Organization").Save(widget).Error
}

// Delete deletes a widget
func (r *WidgetRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Widget{}, "id = ?", id).Error
}
