package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Agent types writing alerts.
const (
	AgentStrengthCalculator    = "strength_calculator"
	AgentContradictionDetector = "contradiction_detector"
	AgentSegmentIdentifier     = "segment_identifier"
)

// AgentAlert is a finding surfaced by one of the analysis agents, shown in
// the workspace alert feed. The remote agents persist their own alerts; this
// table is read by the feed endpoint.
type AgentAlert struct {
	ID          uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	WorkspaceID uuid.UUID `gorm:"type:uuid;not null;index" json:"workspace_id"`
	AgentType   string    `gorm:"column:agent_type;not null;index" json:"agent_type"`
	AlertType   string    `gorm:"column:alert_type;not null;default:'info'" json:"alert_type"` // info | warning
	Title       string    `gorm:"column:title;not null" json:"title"`
	Content     string    `gorm:"column:content;type:text" json:"content,omitempty"`

	EvidenceID *uuid.UUID `gorm:"type:uuid;column:evidence_id;index" json:"evidence_id,omitempty"`
	IsRead     bool       `gorm:"column:is_read;not null;default:false" json:"is_read"`

	CreatedAt time.Time      `gorm:"not null;default:now()" json:"created_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

func (AgentAlert) TableName() string { return "agent_alerts" }
