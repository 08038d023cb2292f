package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Claim is a problem/assumption/decision statement that evidence supports or
// refutes. Aggregate strength is derived on read from linked evidence and is
// never stored.
type Claim struct {
	ID          uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	WorkspaceID uuid.UUID `gorm:"type:uuid;not null;index" json:"workspace_id"`
	Kind        string    `gorm:"column:kind;not null;default:'problem'" json:"kind"` // problem | assumption | decision
	Text        string    `gorm:"column:text;type:text;not null" json:"text"`
	HasEvidence bool      `gorm:"column:has_evidence;not null;default:false" json:"has_evidence"`

	CreatedBy *uuid.UUID     `gorm:"type:uuid;column:created_by" json:"created_by,omitempty"`
	CreatedAt time.Time      `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt time.Time      `gorm:"not null;default:now()" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

func (Claim) TableName() string { return "claim" }

// ClaimEvidenceLink attaches an evidence bank item to a claim. The pair is
// unique; linking is idempotent at the repo level.
type ClaimEvidenceLink struct {
	ID         uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	ClaimID    uuid.UUID `gorm:"type:uuid;not null;index:idx_claim_evidence,unique,priority:1" json:"claim_id"`
	EvidenceID uuid.UUID `gorm:"type:uuid;not null;index:idx_claim_evidence,unique,priority:2" json:"evidence_id"`
	CreatedAt  time.Time `gorm:"not null;default:now()" json:"created_at"`
}

func (ClaimEvidenceLink) TableName() string { return "claim_evidence_link" }
