package models

import (
	"time"

	"github.com/google/uuid"
)

// Invitation is a pending offer for an email address to join an organization
type Invitation struct {
	BaseModel
	OrganizationID uuid.UUID        `json:"organization_id" gorm:"type:uuid;not null;index"`
	Email          string           `json:"email" gorm:"not null;size:255;index"`
	Role           Role             `json:"role" gorm:"type:varchar(20);not null;default:'member'"`
	TokenHash      string           `json:"-" gorm:"uniqueIndex;not null;size:64"`
	InvitedBy      *uuid.UUID       `json:"invited_by,omitempty" gorm:"type:uuid"`
	Status         InvitationStatus `json:"status" gorm:"type:varchar(20);not null;default:'pending';index"`
	ExpiresAt      time.Time        `json:"expires_at" gorm:"not null;index"`
	AcceptedAt     *time.Time       `json:"accepted_at,omitempty"`

	Organization *Organization `json:"organization,omitempty" gorm:"foreignKey:OrganizationID"`
}

// TableName returns the table name for Invitation
func (Invitation) TableName() string {
	return "invitations"
}

// IsExpired reports whether the invitation's expiry has passed at now
func (i *Invitation) IsExpired(now time.Time) bool {
	return now.After(i.ExpiresAt)
}
