package repository

import (
	"widget-admin-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// LinkRuleRepository handles database operations for link rules
type LinkRuleRepository struct {
	db *gorm.DB
}

// NewLinkRuleRepository creates a new link rule repository
func NewLinkRuleRepository(db *gorm.DB) *LinkRuleRepository {
	return &LinkRuleRepository{db: db}
}

// Create creates a new link rule
func (r *LinkRuleRepository) Create(rule *models.LinkRule) error {
	// Select("*") keeps is_active=false from being replaced by the column default
	return r.db.Select("*").Omit("Widget").Create(rule).Error
}

// GetByID retrieves a link rule by ID
func (r *LinkRuleRepository) GetByID(id uuid.UUID) (*models.LinkRule, error) {
	var rule models.LinkRule
	if err := r.db.First(&rule, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &rule, nil
}

// GetByOrganizationID lists link rules of an organization in evaluation order
func (r *LinkRuleRepository) GetByOrganizationID(orgID uuid.UUID, limit, offset int) ([]models.LinkRule, int64, error) {
	var rules []models.LinkRule
	var total int64

	q := r.db.Model(&models.LinkRule{}).Where("organization_id = ?", orgID)
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	if err := q.Order("priority ASC, created_at ASC").Limit(limit).Offset(offset).Find(&rules).Error; err != nil {
		return nil, 0, err
	}
	return rules, total, nil
}

// GetActiveByOrganizationID returns every active rule of an organization in evaluation order
func (r *LinkRuleRepository) GetActiveByOrganizationID(orgID uuid.UUID) ([]models.LinkRule, error) {
	var rules []models.LinkRule
	err := r.db.
		Where("organization_id = ? AND is_active = ?", orgID, true).
		Order("priority ASC, created_at ASC").
		Find(&rules).Error
	return rules, err
}

// Update updates a link rule
func (r *LinkRuleRepository) Update(rule *models.LinkRule) error {
	return r.db.Omit("Widget").Save(rule).Error
}

// Delete deletes a link rule
func (r *LinkRuleRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.LinkRule{}, "id = ?", id).Error
}
