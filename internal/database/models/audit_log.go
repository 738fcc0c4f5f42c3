package models

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AuditLog is an append-only record of a mutating action
type AuditLog struct {
	ID             uuid.UUID       `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	OrganizationID *uuid.UUID      `json:"organization_id,omitempty" gorm:"type:uuid;index"`
	ActorID        *uuid.UUID      `json:"actor_id,omitempty" gorm:"type:uuid;index"`
	ActorEmail     string          `json:"actor_email" gorm:"size:255"`
	Action         string          `json:"action" gorm:"not null;size:100;index"`
	ResourceType   string          `json:"resource_type" gorm:"size:50;index"`
	ResourceID     string          `json:"resource_id" gorm:"size:64"`
	Metadata       json.RawMessage `json:"metadata" gorm:"type:jsonb"`
	IPAddress      string          `json:"ip_address" gorm:"size:64"`
	UserAgent      string          `json:"user_agent" gorm:"size:500"`
	CreatedAt      time.Time       `json:"created_at" gorm:"index"`
}

// TableName returns the table name for AuditLog
func (AuditLog) TableName() string {
	return "audit_logs"
}

// BeforeCreate sets the UUID if not already set
func (a *AuditLog) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}
