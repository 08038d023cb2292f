package discovery

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	types "github.com/discoboard/discovery-backend/internal/domain"
	"github.com/discoboard/discovery-backend/internal/pkg/logger"
)

// EvidenceFilter narrows ListByWorkspace. Zero values mean "no filter".
type EvidenceFilter struct {
	SourceSystem string
	Strength     string // manual rating: high | medium | low
	Segment      string
	Limit        int
}

type EvidenceRepo interface {
	Create(ctx context.Context, tx *gorm.DB, rows []*types.Evidence) ([]*types.Evidence, error)

	GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.Evidence, error)
	GetByIDs(ctx context.Context, tx *gorm.DB, ids []uuid.UUID) ([]*types.Evidence, error)
	ListByWorkspace(ctx context.Context, tx *gorm.DB, workspaceID uuid.UUID, filter EvidenceFilter) ([]*types.Evidence, error)

	// UpdateStrengthFields persists a scoring result: the computed score plus
	// its source-weight and recency components. Nothing else on the row moves.
	UpdateStrengthFields(ctx context.Context, tx *gorm.DB, id uuid.UUID, computed, sourceWeight, recencyFactor float64) error
	UpdateSegment(ctx context.Context, tx *gorm.DB, id uuid.UUID, segment string) error

	SoftDeleteByIDs(ctx context.Context, tx *gorm.DB, ids []uuid.UUID) error
}

type evidenceRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewEvidenceRepo(db *gorm.DB, baseLog *logger.Logger) EvidenceRepo {
	return &evidenceRepo{db: db, log: baseLog.With("repo", "EvidenceRepo")}
}

func (r *evidenceRepo) Create(ctx context.Context, tx *gorm.DB, rows []*types.Evidence) ([]*types.Evidence, error) {
	t := tx
	if t == nil {
		t = r.db
	}
	if len(rows) == 0 {
		return []*types.Evidence{}, nil
	}
	if err := t.WithContext(ctx).Create(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *evidenceRepo) GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.Evidence, error) {
	t := tx
	if t == nil {
		t = r.db
	}
	var out types.Evidence
	if err := t.WithContext(ctx).Where("id = ?", id).First(&out).Error; err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *evidenceRepo) GetByIDs(ctx context.Context, tx *gorm.DB, ids []uuid.UUID) ([]*types.Evidence, error) {
	t := tx
	if t == nil {
		t = r.db
	}
	var out []*types.Evidence
	if len(ids) == 0 {
		return out, nil
	}
	if err := t.WithContext(ctx).Where("id IN ?", ids).Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *evidenceRepo) ListByWorkspace(ctx context.Context, tx *gorm.DB, workspaceID uuid.UUID, filter EvidenceFilter) ([]*types.Evidence, error) {
	t := tx
	if t == nil {
		t = r.db
	}
	q := t.WithContext(ctx).Where("workspace_id = ?", workspaceID)
	if filter.SourceSystem != "" {
		q = q.Where("source_system = ?", filter.SourceSystem)
	}
	if filter.Strength != "" {
		q = q.Where("strength = ?", filter.Strength)
	}
	if filter.Segment != "" {
		q = q.Where("segment = ?", filter.Segment)
	}
	limit := filter.Limit
	if limit <= 0 {
		limit = 20
	}
	var out []*types.Evidence
	if err := q.Order("computed_strength DESC, created_at DESC").Limit(limit).Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *evidenceRepo) UpdateStrengthFields(ctx context.Context, tx *gorm.DB, id uuid.UUID, computed, sourceWeight, recencyFactor float64) error {
	t := tx
	if t == nil {
		t = r.db
	}
	return t.WithContext(ctx).
		Model(&types.Evidence{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"computed_strength": computed,
			"source_weight":     sourceWeight,
			"recency_factor":    recencyFactor,
		}).Error
}

func (r *evidenceRepo) UpdateSegment(ctx context.Context, tx *gorm.DB, id uuid.UUID, segment string) error {
	t := tx
	if t == nil {
		t = r.db
	}
	return t.WithContext(ctx).
		Model(&types.Evidence{}).
		Where("id = ?", id).
		Update("segment", segment).Error
}

func (r *evidenceRepo) SoftDeleteByIDs(ctx context.Context, tx *gorm.DB, ids []uuid.UUID) error {
	t := tx
	if t == nil {
		t = r.db
	}
	if len(ids) == 0 {
		return nil
	}
	return t.WithContext(ctx).Where("id IN ?", ids).Delete(&types.Evidence{}).Error
}
