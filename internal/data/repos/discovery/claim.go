package discovery

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	types "github.com/discoboard/discovery-backend/internal/domain"
	"github.com/discoboard/discovery-backend/internal/pkg/logger"
)

// ClaimStrength is the derived aggregate for a claim: mean computed strength
// over linked evidence that has been scored, plus counts.
type ClaimStrength struct {
	ClaimID       uuid.UUID `json:"claim_id"`
	Aggregate     float64   `json:"aggregate"`
	ScoredCount   int       `json:"scored_count"`
	EvidenceCount int       `json:"evidence_count"`
}

type ClaimRepo interface {
	Create(ctx context.Context, tx *gorm.DB, rows []*types.Claim) ([]*types.Claim, error)
	GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.Claim, error)
	SetHasEvidence(ctx context.Context, tx *gorm.DB, id uuid.UUID, has bool) error

	// AggregateStrength derives the claim's aggregate from linked evidence
	// with computed_strength > 0. It is never stored.
	AggregateStrength(ctx context.Context, tx *gorm.DB, claimID uuid.UUID) (*ClaimStrength, error)
}

type claimRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewClaimRepo(db *gorm.DB, baseLog *logger.Logger) ClaimRepo {
	return &claimRepo{db: db, log: baseLog.With("repo", "ClaimRepo")}
}

func (r *claimRepo) Create(ctx context.Context, tx *gorm.DB, rows []*types.Claim) ([]*types.Claim, error) {
	t := tx
	if t == nil {
		t = r.db
	}
	if len(rows) == 0 {
		return []*types.Claim{}, nil
	}
	if err := t.WithContext(ctx).Create(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *claimRepo) GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.Claim, error) {
	t := tx
	if t == nil {
		t = r.db
	}
	var out types.Claim
	if err := t.WithContext(ctx).Where("id = ?", id).First(&out).Error; err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *claimRepo) SetHasEvidence(ctx context.Context, tx *gorm.DB, id uuid.UUID, has bool) error {
	t := tx
	if t == nil {
		t = r.db
	}
	return t.WithContext(ctx).
		Model(&types.Claim{}).
		Where("id = ?", id).
		Update("has_evidence", has).Error
}

func (r *claimRepo) AggregateStrength(ctx context.Context, tx *gorm.DB, claimID uuid.UUID) (*ClaimStrength, error) {
	t := tx
	if t == nil {
		t = r.db
	}

	var total int64
	if err := t.WithContext(ctx).
		Model(&types.ClaimEvidenceLink{}).
		Where("claim_id = ?", claimID).
		Count(&total).Error; err != nil {
		return nil, err
	}

	var row struct {
		Mean  float64
		Count int64
	}
	err := t.WithContext(ctx).
		Model(&types.Evidence{}).
		Select("COALESCE(AVG(evidence_bank.computed_strength), 0) AS mean, COUNT(*) AS count").
		Joins("JOIN claim_evidence_link ON claim_evidence_link.evidence_id = evidence_bank.id").
		Where("claim_evidence_link.claim_id = ?", claimID).
		Where("evidence_bank.computed_strength > 0").
		Where("evidence_bank.deleted_at IS NULL").
		Scan(&row).Error
	if err != nil {
		return nil, err
	}

	return &ClaimStrength{
		ClaimID:       claimID,
		Aggregate:     row.Mean,
		ScoredCount:   int(row.Count),
		EvidenceCount: int(total),
	}, nil
}
