package discovery

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	types "github.com/discoboard/discovery-backend/internal/domain"
	"github.com/discoboard/discovery-backend/internal/pkg/logger"
)

type AlertFilter struct {
	AgentType  string
	UnreadOnly bool
	Limit      int
}

type AlertRepo interface {
	Create(ctx context.Context, tx *gorm.DB, rows []*types.AgentAlert) ([]*types.AgentAlert, error)
	ListByWorkspace(ctx context.Context, tx *gorm.DB, workspaceID uuid.UUID, filter AlertFilter) ([]*types.AgentAlert, error)
	MarkRead(ctx context.Context, tx *gorm.DB, id uuid.UUID) error
}

type alertRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewAlertRepo(db *gorm.DB, baseLog *logger.Logger) AlertRepo {
	return &alertRepo{db: db, log: baseLog.With("repo", "AlertRepo")}
}

func (r *alertRepo) Create(ctx context.Context, tx *gorm.DB, rows []*types.AgentAlert) ([]*types.AgentAlert, error) {
	t := tx
	if t == nil {
		t = r.db
	}
	if len(rows) == 0 {
		return []*types.AgentAlert{}, nil
	}
	if err := t.WithContext(ctx).Create(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *alertRepo) ListByWorkspace(ctx context.Context, tx *gorm.DB, workspaceID uuid.UUID, filter AlertFilter) ([]*types.AgentAlert, error) {
	t := tx
	if t == nil {
		t = r.db
	}
	q := t.WithContext(ctx).Where("workspace_id = ?", workspaceID)
	if filter.AgentType != "" {
		q = q.Where("agent_type = ?", filter.AgentType)
	}
	if filter.UnreadOnly {
		q = q.Where("is_read = ?", false)
	}
	limit := filter.Limit
	if limit <= 0 {
		limit = 20
	}
	var out []*types.AgentAlert
	if err := q.Order("created_at DESC").Limit(limit).Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *alertRepo) MarkRead(ctx context.Context, tx *gorm.DB, id uuid.UUID) error {
	t := tx
	if t == nil {
		t = r.db
	}
	return t.WithContext(ctx).
		Model(&types.AgentAlert{}).
		Where("id = ?", id).
		Update("is_read", true).Error
}
