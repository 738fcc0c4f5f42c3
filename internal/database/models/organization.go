package models

import (
	"encoding/json"
)

// Organization represents the root entity for multi-tenancy
type Organization struct {
	BaseModel
	Name         string             `json:"name" gorm:"not null;size:100" validate:"required,min=1,max=100"`
	Slug         string             `json:"slug" gorm:"uniqueIndex;not null;size:50" validate:"required,min=3,max=50"`
	Plan         Plan               `json:"plan" gorm:"type:varchar(20);not null;default:'free'"`
	Status       OrganizationStatus `json:"status" gorm:"type:varchar(20);not null;default:'active';index"`
	BillingEmail string             `json:"billing_email" gorm:"size:255"`
	Metadata     json.RawMessage    `json:"metadata" gorm:"type:jsonb"`

	// Relationships
	Memberships  []Membership      `json:"memberships,omitempty" gorm:"foreignKey:OrganizationID;constraint:OnDelete:CASCADE"`
	Widgets      []Widget          `json:"widgets,omitempty" gorm:"foreignKey:OrganizationID;constraint:OnDelete:CASCADE"`
	Invitations  []Invitation      `json:"-" gorm:"foreignKey:OrganizationID;constraint:OnDelete:CASCADE"`
	LinkRules    []LinkRule        `json:"-" gorm:"foreignKey:OrganizationID;constraint:OnDelete:CASCADE"`
	Webhooks     []Webhook         `json:"-" gorm:"foreignKey:OrganizationID;constraint:OnDelete:CASCADE"`
	Sources      []KnowledgeSource `json:"-" gorm:"foreignKey:OrganizationID;constraint:OnDelete:CASCADE"`
	Subscription *Subscription     `json:"subscription,omitempty" gorm:"foreignKey:OrganizationID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Organization
func (Organization) TableName() string {
	return "organizations"
}

// IsActive reports whether the organization is not suspended
func (o *Organization) IsActive() bool {
	return o.Status != OrganizationStatusSuspended
}
