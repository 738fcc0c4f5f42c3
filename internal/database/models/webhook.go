package models

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Webhook is an organization's HTTP endpoint subscribed to platform events
type Webhook struct {
	BaseModel
	OrganizationID uuid.UUID       `json:"organization_id" gorm:"type:uuid;not null;index"`
	URL            string          `json:"url" gorm:"not null;size:2000"`
	Description    string          `json:"description" gorm:"size:200"`
	Secret         string          `json:"-" gorm:"not null;size:100"`
	Events         json.RawMessage `json:"events" gorm:"type:jsonb;not null"`
	IsActive       bool            `json:"is_active" gorm:"not null;default:true"`
	FailureCount   int             `json:"failure_count" gorm:"not null;default:0"`
	LastDeliveryAt *time.Time      `json:"last_delivery_at,omitempty"`
	DisabledAt     *time.Time      `json:"disabled_at,omitempty"`

	Deliveries []WebhookDelivery `json:"-" gorm:"foreignKey:WebhookID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Webhook
func (Webhook) TableName() string {
	return "webhooks"
}

// EventList decodes Events; malformed data yields no events
func (w *Webhook) EventList() []string {
	var events []string
	if len(w.Events) == 0 {
		return events
	}
	_ = json.Unmarshal(w.Events, &events)
	return events
}

// Subscribes reports whether the webhook wants the event
func (w *Webhook) Subscribes(event string) bool {
	for _, e := range w.EventList() {
		if e == "*" || e == event {
			return true
		}
	}
	return false
}

// WebhookDelivery records one event sent (or being sent) to one webhook
type WebhookDelivery struct {
	BaseModel
	WebhookID      uuid.UUID       `json:"webhook_id" gorm:"type:uuid;not null;index"`
	OrganizationID uuid.UUID       `json:"organization_id" gorm:"type:uuid;not null;index"`
	Event          string          `json:"event" gorm:"not null;size:100;index"`
	Payload        json.RawMessage `json:"payload" gorm:"type:jsonb;not null"`
	Status         DeliveryStatus  `json:"status" gorm:"type:varchar(20);not null;default:'pending';index"`
	Attempts       int             `json:"attempts" gorm:"not null;default:0"`
	ResponseStatus int             `json:"response_status"`
	ResponseBody   string          `json:"response_body" gorm:"type:text"`
	Error          string          `json:"error" gorm:"type:text"`
	NextAttemptAt  *time.Time      `json:"next_attempt_at,omitempty"`
	DeliveredAt    *time.Time      `json:"delivered_at,omitempty"`
}

// TableName returns the table name for WebhookDelivery
func (WebhookDelivery) TableName() string {
	return "webhook_deliveries"
}
