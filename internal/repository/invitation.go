package repository

import (
	"time"

	"widget-admin-backend/internal/database/models"
	apperrors "widget-admin-backend/internal/errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// InvitationRepository handles database operations for invitations
type InvitationRepository struct {
	db *gorm.DB
}

// NewInvitationRepository creates a new invitation repository
func NewInvitationRepository(db *gorm.DB) *InvitationRepository {
	return &InvitationRepository{db: db}
}

// Create creates a new invitation
func (r *InvitationRepository) Create(inv *models.Invitation) error {
	return r.db.Create(inv).Error
}

// GetByID retrieves an invitation by ID
func (r *InvitationRepository) GetByID(id uuid.UUID) (*models.Invitation, error) {
	var inv models.Invitation
	if err := r.db.First(&inv, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &inv, nil
}

// GetByTokenHash retrieves an invitation with its organization by token hash
func (r *InvitationRepository) GetByTokenHash(hash string) (*models.Invitation, error) {
	var inv models.Invitation
	if err := r.db.Preload("Organization").First(&inv, "token_hash = ?", hash).Error; err != nil {
		return nil, err
	}
	return &inv, nil
}

// GetPendingByEmail finds a still-valid pending invitation for the email
func (r *InvitationRepository) GetPendingByEmail(orgID uuid.UUID, email string, now time.Time) (*models.Invitation, error) {
	var inv models.Invitation
	err := r.db.
		Where("organization_id = ? AND email = ? AND status = ? AND expires_at >= ?",
			orgID, email, models.InvitationStatusPending, now).
		First(&inv).Error
	if err != nil {
		return nil, err
	}
	return &inv, nil
}

// GetByOrganizationID lists invitations of an organization, optionally by status
func (r *InvitationRepository) GetByOrganizationID(orgID uuid.UUID, status models.InvitationStatus, limit, offset int) ([]models.Invitation, int64, error) {
	var invs []models.Invitation
	var total int64

	q := r.db.Model(&models.Invitation{}).Where("organization_id = ?", orgID)
	if status != "" {
		q = q.Where("status = ?", status)
	}

	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	if err := q.Order("created_at DESC").Limit(limit).Offset(offset).Find(&invs).Error; err != nil {
		return nil, 0, err
	}
	return invs, total, nil
}

// Update updates an invitation
func (r *InvitationRepository) Update(inv *models.Invitation) error {
	return r.db.Omit("Organization").Save(inv).Error
}

// Accept creates the user when it has no ID yet, adds the membership and marks
// the invitation accepted. The invitation row is locked so it can be consumed once.
func (r *InvitationRepository) Accept(inv *models.Invitation, user *models.User, membership *models.Membership, at time.Time) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var current models.Invitation
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&current, "id = ?", inv.ID).Error; err != nil {
			return err
		}
		switch current.Status {
		case models.InvitationStatusPending:
		case models.InvitationStatusAccepted:
			return apperrors.ErrInvitationAlreadyUsed
		default:
			return apperrors.ErrInvitationNotPending
		}

		if user.ID == uuid.Nil {
			if err := tx.Omit("Memberships").Create(user).Error; err != nil {
				if IsUniqueViolation(err) {
					return apperrors.ErrUserExists
				}
				return err
			}
		}

		membership.OrganizationID = current.OrganizationID
		membership.UserID = user.ID
		if err := tx.Create(membership).Error; err != nil {
			if IsUniqueViolation(err) {
				return apperrors.ErrMembershipExists
			}
			return err
		}

		inv.Status = models.InvitationStatusAccepted
		inv.AcceptedAt = &at
		return tx.Model(&models.Invitation{}).Where("id = ?", current.ID).Updates(map[string]interface{}{
			"status":      models.InvitationStatusAccepted,
			"accepted_at": at,
		}).Error
	})
}

// ExpirePending marks overdue pending invitations as expired and returns how many changed
func (r *InvitationRepository) ExpirePending(now time.Time) (int64, error) {
	res := r.db.Model(&models.Invitation{}).
		Where("status = ? AND expires_at < ?", models.InvitationStatusPending, now).
		Update("status", models.InvitationStatusExpired)
	return res.RowsAffected, res.Error
}
