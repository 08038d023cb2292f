package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Manual fallback strength ratings, used only before a computed score exists.
const (
	StrengthHigh   = "high"
	StrengthMedium = "medium"
	StrengthLow    = "low"
)

// Known source systems. The column is an open enum: ingestion adapters may
// write values outside this list and scoring falls back to the lowest
// configured weight for them.
const (
	SourceManual    = "manual"
	SourceSlack     = "slack"
	SourceNotion    = "notion"
	SourceMixpanel  = "mixpanel"
	SourceAirtable  = "airtable"
	SourceIntercom  = "intercom"
	SourceInterview = "interview"
	SourceSupport   = "support"
	SourceSocial    = "social"
)

// Evidence is a single evidence bank item. ComputedStrength is a cache of a
// pure function of (item, claim peers, workspace weight config); zero means
// the item has not been scored yet.
type Evidence struct {
	ID          uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	WorkspaceID uuid.UUID `gorm:"type:uuid;not null;index" json:"workspace_id"`
	Title       string    `gorm:"column:title;not null" json:"title"`
	Type        string    `gorm:"column:type;not null;default:'text'" json:"type"` // url | text
	Content     string    `gorm:"column:content;type:text" json:"content,omitempty"`
	URL         string    `gorm:"column:url" json:"url,omitempty"`

	SourceSystem string `gorm:"column:source_system;not null;default:'manual';index" json:"source_system"`
	// Manual rating assigned at ingestion; display fallback until scored.
	Strength string `gorm:"column:strength;not null;default:'medium'" json:"strength"`

	ComputedStrength float64 `gorm:"column:computed_strength;not null;default:0;index" json:"computed_strength"`
	SourceWeight     float64 `gorm:"column:source_weight;not null;default:0" json:"source_weight"`
	RecencyFactor    float64 `gorm:"column:recency_factor;not null;default:0" json:"recency_factor"`

	Segment        *string `gorm:"column:segment;index" json:"segment,omitempty"`
	Sentiment      string  `gorm:"column:sentiment" json:"sentiment,omitempty"` // positive | negative | neutral
	HasDirectVoice bool    `gorm:"column:has_direct_voice;not null;default:false" json:"has_direct_voice"`

	Tags           datatypes.JSON `gorm:"column:tags;type:jsonb" json:"tags,omitempty"`            // []string
	SourceMetadata datatypes.JSON `gorm:"column:source_metadata;type:jsonb" json:"source_metadata,omitempty"`

	// When the underlying event happened, as opposed to CreatedAt (ingestion).
	SourceTimestamp *time.Time `gorm:"column:source_timestamp" json:"source_timestamp,omitempty"`

	CreatedBy *uuid.UUID     `gorm:"type:uuid;column:created_by" json:"created_by,omitempty"`
	CreatedAt time.Time      `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt time.Time      `gorm:"not null;default:now()" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

func (Evidence) TableName() string { return "evidence_bank" }
