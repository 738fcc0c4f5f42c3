package models

import (
	"github.com/google/uuid"
)

// LinkRule injects a link card into a chat when its pattern matches a visitor message
type LinkRule struct {
	BaseModel
	OrganizationID  uuid.UUID  `json:"organization_id" gorm:"type:uuid;not null;index;uniqueIndex:idx_link_rules_org_name"`
	WidgetID        *uuid.UUID `json:"widget_id,omitempty" gorm:"type:uuid;index"`
	Name            string     `json:"name" gorm:"not null;size:100;uniqueIndex:idx_link_rules_org_name"`
	Pattern         string     `json:"pattern" gorm:"not null;size:500"`
	CaseSensitive   bool       `json:"case_sensitive" gorm:"not null;default:false"`
	Priority        int        `json:"priority" gorm:"not null;default:100"`
	CardTitle       string     `json:"card_title" gorm:"not null;size:200"`
	CardDescription string     `json:"card_description" gorm:"size:500"`
	CardURL         string     `json:"card_url" gorm:"not null;size:2000"`
	CardImageURL    string     `json:"card_image_url" gorm:"size:2000"`
	IsActive        bool       `json:"is_active" gorm:"not null;default:true"`

	Widget *Widget `json:"-" gorm:"foreignKey:WidgetID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for LinkRule
func (LinkRule) TableName() string {
	return "link_rules"
}
