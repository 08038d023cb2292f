package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// WorkspaceSettings holds the per-workspace scoring configuration consumed by
// the weight resolver. WeightConfig is only meaningful while WeightTemplate
// is "default"; selecting a named template overrides it.
type WorkspaceSettings struct {
	ID          uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	WorkspaceID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex" json:"workspace_id"`

	WeightTemplate string         `gorm:"column:weight_template;not null;default:'default'" json:"weight_template"`
	WeightConfig   datatypes.JSON `gorm:"column:weight_config;type:jsonb" json:"weight_config,omitempty"` // map[source_system]float64

	RecencyEnabled   bool    `gorm:"column:recency_enabled;not null;default:false" json:"recency_enabled"`
	RecencyDecayDays float64 `gorm:"column:recency_decay_days;not null;default:30" json:"recency_decay_days"`
	RecencyFloor     float64 `gorm:"column:recency_floor;not null;default:0.3" json:"recency_floor"`

	TargetSegments datatypes.JSON `gorm:"column:target_segments;type:jsonb" json:"target_segments,omitempty"` // []string

	CreatedAt time.Time `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;default:now()" json:"updated_at"`
}

func (WorkspaceSettings) TableName() string { return "workspace_settings" }
