package models

import (
	"time"

	"github.com/google/uuid"
)

// KnowledgeSource is a document the chat assistant can draw answers from
type KnowledgeSource struct {
	BaseModel
	OrganizationID uuid.UUID    `json:"organization_id" gorm:"type:uuid;not null;index"`
	WidgetID       *uuid.UUID   `json:"widget_id,omitempty" gorm:"type:uuid;index"`
	Kind           SourceKind   `json:"kind" gorm:"type:varchar(10);not null"`
	Title          string       `json:"title" gorm:"not null;size:200"`
	SourceURL      string       `json:"source_url,omitempty" gorm:"size:2000"`
	FileName       string       `json:"file_name,omitempty" gorm:"size:255"`
	MimeType       string       `json:"mime_type,omitempty" gorm:"size:100"`
	RawContent     string       `json:"-" gorm:"type:text"`
	Status         SourceStatus `json:"status" gorm:"type:varchar(20);not null;default:'pending';index"`
	Error          string       `json:"error,omitempty" gorm:"type:text"`
	ChunkCount     int          `json:"chunk_count" gorm:"not null;default:0"`
	ContentHash    string       `json:"content_hash,omitempty" gorm:"size:64"`
	IngestedAt     *time.Time   `json:"ingested_at,omitempty"`

	Chunks []KnowledgeChunk `json:"-" gorm:"foreignKey:SourceID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for KnowledgeSource
func (KnowledgeSource) TableName() string {
	return "knowledge_sources"
}

// KnowledgeChunk is one searchable slice of a source's text
type KnowledgeChunk struct {
	BaseModel
	SourceID       uuid.UUID `json:"source_id" gorm:"type:uuid;not null;index"`
	OrganizationID uuid.UUID `json:"organization_id" gorm:"type:uuid;not null;index"`
	Position       int       `json:"position" gorm:"not null"`
	Heading        string    `json:"heading" gorm:"size:300"`
	Content        string    `json:"content" gorm:"type:text;not null"`
}

// TableName returns the table name for KnowledgeChunk
func (KnowledgeChunk) TableName() string {
	return "knowledge_chunks"
}
