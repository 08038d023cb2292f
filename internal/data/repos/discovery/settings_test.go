package discovery

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"github.com/discoboard/discovery-backend/internal/data/repos/testutil"
	types "github.com/discoboard/discovery-backend/internal/domain"
)

func TestSettingsRepo(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)

	ctx := context.Background()
	repo := NewSettingsRepo(db, testutil.Logger(t))
	ws := uuid.New()

	got, err := repo.GetByWorkspace(ctx, tx, ws)
	if err != nil {
		t.Fatalf("GetByWorkspace missing: %v", err)
	}
	if got != nil {
		t.Fatalf("expected nil for missing settings, got %+v", got)
	}

	row := &types.WorkspaceSettings{
		ID:               uuid.New(),
		WorkspaceID:      ws,
		WeightTemplate:   "default",
		WeightConfig:     datatypes.JSON([]byte(`{"manual": 0.3}`)),
		RecencyEnabled:   true,
		RecencyDecayDays: 30,
		RecencyFloor:     0.3,
	}
	if err := repo.Upsert(ctx, tx, row); err != nil {
		t.Fatalf("Upsert insert: %v", err)
	}

	row2 := &types.WorkspaceSettings{
		ID:               uuid.New(),
		WorkspaceID:      ws,
		WeightTemplate:   "b2b_enterprise",
		RecencyEnabled:   false,
		RecencyDecayDays: 60,
		RecencyFloor:     0.4,
	}
	if err := repo.Upsert(ctx, tx, row2); err != nil {
		t.Fatalf("Upsert update: %v", err)
	}

	got, err = repo.GetByWorkspace(ctx, tx, ws)
	if err != nil || got == nil {
		t.Fatalf("GetByWorkspace after upsert: got=%v err=%v", got, err)
	}
	if got.WeightTemplate != "b2b_enterprise" || got.RecencyDecayDays != 60 {
		t.Fatalf("upsert did not update row: %+v", got)
	}
}
