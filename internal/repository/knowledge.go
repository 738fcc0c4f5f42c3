package repository

import (
	"time"

	"widget-admin-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// KnowledgeRepository handles database operations for knowledge sources and chunks
type KnowledgeRepository struct {
	db *gorm.DB
}

// NewKnowledgeRepository creates a new knowledge repository
func NewKnowledgeRepository(db *gorm.DB) *KnowledgeRepository {
	return &KnowledgeRepository{db: db}
}

// CreateSource creates a new knowledge source
func (r *KnowledgeRepository) CreateSource(source *models.KnowledgeSource) error {
	return r.db.Omit("Chunks").Create(source).Error
}

// GetSourceByID retrieves a source by ID
func (r *KnowledgeRepository) GetSourceByID(id uuid.UUID) (*models.KnowledgeSource, error) {
	var source models.KnowledgeSource
	if err := r.db.First(&source, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &source, nil
}

// GetSourcesByOrganizationID lists sources of an organization, newest first
func (r *KnowledgeRepository) GetSourcesByOrganizationID(orgID uuid.UUID, limit, offset int) ([]models.KnowledgeSource, int64, error) {
	var sources []models.KnowledgeSource
	var total int64

	q := r.db.Model(&models.KnowledgeSource{}).Where("organization_id = ?", orgID)
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	if err := q.Order("created_at DESC").Limit(limit).Offset(offset).Find(&sources).Error; err != nil {
		return nil, 0, err
	}
	return sources, total, nil
}

// UpdateSource updates a source
func (r *KnowledgeRepository) UpdateSource(source *models.KnowledgeSource) error {
	return r.db.Omit("Chunks").Save(source).Error
}

// GetStaleSources returns sources in status last touched before the cutoff, oldest first
func (r *KnowledgeRepository) GetStaleSources(status models.SourceStatus, before time.Time, limit int) ([]models.KnowledgeSource, error) {
	var sources []models.KnowledgeSource
	err := r.db.
		Where("status = ? AND updated_at < ?", status, before).
		Order("created_at ASC").
		Limit(limit).
		Find(&sources).Error
	return sources, err
}

// DeleteSource deletes a source; its chunks cascade
func (r *KnowledgeRepository) DeleteSource(id uuid.UUID) error {
	return r.db.Delete(&models.KnowledgeSource{}, "id = ?", id).Error
}

// ReplaceChunks swaps the chunk set of a source in one transaction
func (r *KnowledgeRepository) ReplaceChunks(sourceID uuid.UUID, chunks []models.KnowledgeChunk) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("source_id = ?", sourceID).Delete(&models.KnowledgeChunk{}).Error; err != nil {
			return err
		}
		if len(chunks) == 0 {
			return nil
		}
		for i := range chunks {
			chunks[i].SourceID = sourceID
		}
		return tx.CreateInBatches(chunks, 200).Error
	})
}

// GetChunksBySourceID lists the chunks of a source in position order
func (r *KnowledgeRepository) GetChunksBySourceID(sourceID uuid.UUID) ([]models.KnowledgeChunk, error) {
	var chunks []models.KnowledgeChunk
	err := r.db.Where("source_id = ?", sourceID).Order("position ASC").Find(&chunks).Error
	return chunks, err
}

// SearchChunks finds chunks of an organization whose heading or content contains query
func (r *KnowledgeRepository) SearchChunks(orgID uuid.UUID, query string, limit int) ([]models.KnowledgeChunk, error) {
	var chunks []models.KnowledgeChunk
	like := likePattern(query)
	err := r.db.
		Where("organization_id = ?", orgID).
		Where("content ILIKE ? OR heading ILIKE ?", like, like).
		Order("created_at DESC, position ASC").
		Limit(limit).
		Find(&chunks).Error
	return chunks, err
}
