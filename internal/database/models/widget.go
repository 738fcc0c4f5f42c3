package models

import (
	"encoding/json"

	"github.com/google/uuid"
)

// Widget is an embeddable chat widget instance
type Widget struct {
	BaseModel
	OrganizationID uuid.UUID       `json:"organization_id" gorm:"type:uuid;not null;uniqueIndex:idx_widgets_org_name"`
	Name           string          `json:"name" gorm:"not null;size:100;uniqueIndex:idx_widgets_org_name" validate:"required,max=100"`
	PublicKey      string          `json:"public_key" gorm:"uniqueIndex;not null;size:40"`
	AllowedOrigins json.RawMessage `json:"allowed_origins" gorm:"type:jsonb"`
	Settings       json.RawMessage `json:"settings" gorm:"type:jsonb"`
	IsActive       bool            `json:"is_active" gorm:"not null;default:true"`

	Organization *Organization `json:"-" gorm:"foreignKey:OrganizationID"`
}

// TableName returns the table name for Widget
func (Widget) TableName() string {
	return "widgets"
}

// Origins decodes AllowedOrigins; malformed data yields no origins
func (w *Widget) Origins() []string {
	var origins []string
	if len(w.AllowedOrigins) == 0 {
		return origins
	}
	_ = json.Unmarshal(w.AllowedOrigins, &origins)
	return origins
}
