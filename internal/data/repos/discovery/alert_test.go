package discovery

import (
	"context"
	"testing"

	"github.com/google/uuid"

	"github.com/discoboard/discovery-backend/internal/data/repos/testutil"
	types "github.com/discoboard/discovery-backend/internal/domain"
)

func TestAlertRepo(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)

	ctx := context.Background()
	repo := NewAlertRepo(db, testutil.Logger(t))
	ws := uuid.New()

	ev := testutil.SeedEvidence(t, ctx, tx, ws, types.SourceInterview)
	rows := []*types.AgentAlert{
		{
			ID:          uuid.New(),
			WorkspaceID: ws,
			AgentType:   types.AgentContradictionDetector,
			AlertType:   "warning",
			Title:       "Contradiction: pricing feedback",
			EvidenceID:  &ev.ID,
		},
		{
			ID:          uuid.New(),
			WorkspaceID: ws,
			AgentType:   types.AgentSegmentIdentifier,
			Title:       "Segment identified: Enterprise",
			EvidenceID:  &ev.ID,
		},
	}
	if _, err := repo.Create(ctx, tx, rows); err != nil {
		t.Fatalf("Create: %v", err)
	}

	all, err := repo.ListByWorkspace(ctx, tx, ws, AlertFilter{})
	if err != nil || len(all) != 2 {
		t.Fatalf("ListByWorkspace: err=%v len=%d", err, len(all))
	}

	contra, err := repo.ListByWorkspace(ctx, tx, ws, AlertFilter{AgentType: types.AgentContradictionDetector})
	if err != nil || len(contra) != 1 {
		t.Fatalf("filtered list: err=%v len=%d", err, len(contra))
	}

	if err := repo.MarkRead(ctx, tx, rows[0].ID); err != nil {
		t.Fatalf("MarkRead: %v", err)
	}
	unread, err := repo.ListByWorkspace(ctx, tx, ws, AlertFilter{UnreadOnly: true})
	if err != nil || len(unread) != 1 || unread[0].ID != rows[1].ID {
		t.Fatalf("unread list: err=%v len=%d", err, len(unread))
	}
}
