package discovery

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	types "github.com/discoboard/discovery-backend/internal/domain"
	"github.com/discoboard/discovery-backend/internal/pkg/logger"
)

type SettingsRepo interface {
	// GetByWorkspace returns nil (no error) when the workspace has no
	// settings row yet; the resolver treats that as "all defaults".
	GetByWorkspace(ctx context.Context, tx *gorm.DB, workspaceID uuid.UUID) (*types.WorkspaceSettings, error)
	Upsert(ctx context.Context, tx *gorm.DB, row *types.WorkspaceSettings) error
}

type settingsRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewSettingsRepo(db *gorm.DB, baseLog *logger.Logger) SettingsRepo {
	return &settingsRepo{db: db, log: baseLog.With("repo", "SettingsRepo")}
}

func (r *settingsRepo) GetByWorkspace(ctx context.Context, tx *gorm.DB, workspaceID uuid.UUID) (*types.WorkspaceSettings, error) {
	t := tx
	if t == nil {
		t = r.db
	}
	var out types.WorkspaceSettings
	err := t.WithContext(ctx).Where("workspace_id = ?", workspaceID).First(&out).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *settingsRepo) Upsert(ctx context.Context, tx *gorm.DB, row *types.WorkspaceSettings) error {
	t := tx
	if t == nil {
		t = r.db
	}
	return t.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "workspace_id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"weight_template", "weight_config",
				"recency_enabled", "recency_decay_days", "recency_floor",
				"target_segments", "updated_at",
			}),
		}).
		Create(row).Error
}
