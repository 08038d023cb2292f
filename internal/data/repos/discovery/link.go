package discovery

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	types "github.com/discoboard/discovery-backend/internal/domain"
	"github.com/discoboard/discovery-backend/internal/pkg/logger"
)

type LinkRepo interface {
	// Create inserts the link, ignoring a duplicate pair. Returns whether a
	// new row was written.
	Create(ctx context.Context, tx *gorm.DB, claimID, evidenceID uuid.UUID) (bool, error)
	Delete(ctx context.Context, tx *gorm.DB, claimID, evidenceID uuid.UUID) error

	GetEvidenceIDsByClaim(ctx context.Context, tx *gorm.DB, claimID uuid.UUID) ([]uuid.UUID, error)
	// GetPeerEvidence loads the other evidence items linked to the claim,
	// excluding the subject item. These are the corroboration peers.
	GetPeerEvidence(ctx context.Context, tx *gorm.DB, claimID, excludeEvidenceID uuid.UUID) ([]*types.Evidence, error)
	CountByClaim(ctx context.Context, tx *gorm.DB, claimID uuid.UUID) (int64, error)
}

type linkRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewLinkRepo(db *gorm.DB, baseLog *logger.Logger) LinkRepo {
	return &linkRepo{db: db, log: baseLog.With("repo", "LinkRepo")}
}

func (r *linkRepo) Create(ctx context.Context, tx *gorm.DB, claimID, evidenceID uuid.UUID) (bool, error) {
	t := tx
	if t == nil {
		t = r.db
	}
	row := &types.ClaimEvidenceLink{ID: uuid.New(), ClaimID: claimID, EvidenceID: evidenceID}
	res := t.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "claim_id"}, {Name: "evidence_id"}},
			DoNothing: true,
		}).
		Create(row)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *linkRepo) Delete(ctx context.Context, tx *gorm.DB, claimID, evidenceID uuid.UUID) error {
	t := tx
	if t == nil {
		t = r.db
	}
	return t.WithContext(ctx).
		Where("claim_id = ? AND evidence_id = ?", claimID, evidenceID).
		Delete(&types.ClaimEvidenceLink{}).Error
}

func (r *linkRepo) GetEvidenceIDsByClaim(ctx context.Context, tx *gorm.DB, claimID uuid.UUID) ([]uuid.UUID, error) {
	t := tx
	if t == nil {
		t = r.db
	}
	var ids []uuid.UUID
	if err := t.WithContext(ctx).
		Model(&types.ClaimEvidenceLink{}).
		Where("claim_id = ?", claimID).
		Order("created_at ASC").
		Pluck("evidence_id", &ids).Error; err != nil {
		return nil, err
	}
	return ids, nil
}

func (r *linkRepo) GetPeerEvidence(ctx context.Context, tx *gorm.DB, claimID, excludeEvidenceID uuid.UUID) ([]*types.Evidence, error) {
	t := tx
	if t == nil {
		t = r.db
	}
	var out []*types.Evidence
	err := t.WithContext(ctx).
		Joins("JOIN claim_evidence_link ON claim_evidence_link.evidence_id = evidence_bank.id").
		Where("claim_evidence_link.claim_id = ?", claimID).
		Where("evidence_bank.id <> ?", excludeEvidenceID).
		Find(&out).Error
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (r *linkRepo) CountByClaim(ctx context.Context, tx *gorm.DB, claimID uuid.UUID) (int64, error) {
	t := tx
	if t == nil {
		t = r.db
	}
	var n int64
	if err := t.WithContext(ctx).
		Model(&types.ClaimEvidenceLink{}).
		Where("claim_id = ?", claimID).
		Count(&n).Error; err != nil {
		return 0, err
	}
	return n, nil
}
