package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Subscription is the billing state of one organization
type Subscription struct {
	BaseModel
	OrganizationID uuid.UUID          `json:"organization_id" gorm:"type:uuid;not null;uniqueIndex"`
	Plan           Plan               `json:"plan" gorm:"type:varchar(20);not null"`
	Status         SubscriptionStatus `json:"status" gorm:"type:varchar(20);not null;index"`
	Amount         decimal.Decimal    `json:"amount" gorm:"type:numeric(12,2);not null;default:0"`
	Currency       string             `json:"currency" gorm:"size:3;not null"`
	Interval       BillingInterval    `json:"interval" gorm:"type:varchar(10);not null;default:'month'"`
	StartedAt      time.Time          `json:"started_at" gorm:"not null"`
	CanceledAt     *time.Time         `json:"canceled_at,omitempty" gorm:"index"`
	TrialEndsAt    *time.Time         `json:"trial_ends_at,omitempty"`
}

// TableName returns the table name for Subscription
func (Subscription) TableName() string {
	return "subscriptions"
}

// MonthlyAmount normalizes the charge to one month
func (s *Subscription) MonthlyAmount() decimal.Decimal {
	if s.Interval == BillingIntervalYear {
		return s.Amount.Div(decimal.NewFromInt(12))
	}
	return s.Amount
}
