package repository

import (
	"widget-admin-backend/internal/database/models"
	apperrors "widget-admin-backend/internal/errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// MembershipRepository handles database operations for organization memberships
type MembershipRepository struct {
	db *gorm.DB
}

// NewMembershipRepository creates a new membership repository
func NewMembershipRepository(db *gorm.DB) *MembershipRepository {
	return &MembershipRepository{db: db}
}

// Create creates a new membership
func (r *MembershipRepository) Create(membership *models.Membership) error {
	return r.db.Create(membership).Error
}

// Get retrieves the membership of a user in an organization
func (r *MembershipRepository) Get(orgID, userID uuid.UUID) (*models.Membership, error) {
	var m models.Membership
	err := r.db.Preload("User").First(&m, "organization_id = ? AND user_id = ?", orgID, userID).Error
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// GetByOrganizationID lists members of an organization, optionally filtered by email or name
func (r *MembershipRepository) GetByOrganizationID(orgID uuid.UUID, query string, limit, offset int) ([]models.Membership, int64, error) {
	var members []models.Membership
	var total int64

	q := r.db.Model(&models.Membership{}).
		Joins("JOIN users ON users.id = memberships.user_id").
		Where("memberships.organization_id = ?", orgID)
	if query != "" {
		like := likePattern(query)
		q = q.Where("users.email ILIKE ? OR users.full_name ILIKE ?", like, like)
	}

	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := q.Preload("User").Order("users.email ASC").Limit(limit).Offset(offset).Find(&members).Error
	if err != nil {
		return nil, 0, err
	}

	return members, total, nil
}

// ChangeRole updates a member's role. Owner rows are locked so two concurrent
// demotions cannot both pass the last-owner check.
func (r *MembershipRepository) ChangeRole(orgID, userID uuid.UUID, role models.Role) (*models.Membership, error) {
	var target models.Membership
	err := r.db.Transaction(func(tx *gorm.DB) error {
		owners, err := lockOwners(tx, orgID)
		if err != nil {
			return err
		}
		if err := tx.First(&target, "organization_id = ? AND user_id = ?", orgID, userID).Error; err != nil {
			return err
		}
		if target.Role == models.RoleOwner && role != models.RoleOwner && owners <= 1 {
			return apperrors.ErrLastOwner
		}
		target.Role = role
		return tx.Model(&target).Update("role", role).Error
	})
	if err != nil {
		return nil, err
	}
	return &target, nil
}

// Remove deletes a membership unless it is the organization's last owner
func (r *MembershipRepository) Remove(orgID, userID uuid.UUID) (*models.Membership, error) {
	var target models.Membership
	err := r.db.Transaction(func(tx *gorm.DB) error {
		owners, err := lockOwners(tx, orgID)
		if err != nil {
			return err
		}
		if err := tx.First(&target, "organization_id = ? AND user_id = ?", orgID, userID).Error; err != nil {
			return err
		}
		if target.Role == models.RoleOwner && owners <= 1 {
			return apperrors.ErrLastOwner
		}
		return tx.Delete(&target).Error
	})
	if err != nil {
		return nil, err
	}
	return &target, nil
}

// CountOwners counts owners of an organization
func (r *MembershipRepository) CountOwners(orgID uuid.UUID) (int64, error) {
	var n int64
	err := r.db.Model(&models.Membership{}).
		Where("organization_id = ? AND role = ?", orgID, models.RoleOwner).
		Count(&n).Error
	return n, err
}

func lockOwners(tx *gorm.DB, orgID uuid.UUID) (int, error) {
	var owners []models.Membership
	err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("organization_id = ? AND role = ?", orgID, models.RoleOwner).
		Find(&owners).Error
	return len(owners), err
}
