package testutil

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	types "github.com/discoboard/discovery-backend/internal/domain"
)

func SeedClaim(tb testing.TB, ctx context.Context, tx *gorm.DB, workspaceID uuid.UUID) *types.Claim {
	tb.Helper()
	row := &types.Claim{
		ID:          uuid.New(),
		WorkspaceID: workspaceID,
		Kind:        "problem",
		Text:        "users churn before activation",
	}
	if err := tx.WithContext(ctx).Create(row).Error; err != nil {
		tb.Fatalf("seed claim: %v", err)
	}
	return row
}

func SeedEvidence(tb testing.TB, ctx context.Context, tx *gorm.DB, workspaceID uuid.UUID, source string) *types.Evidence {
	tb.Helper()
	ts := time.Now().Add(-24 * time.Hour)
	row := &types.Evidence{
		ID:              uuid.New(),
		WorkspaceID:     workspaceID,
		Title:           "evidence from " + source,
		Type:            "text",
		Content:         "quote body",
		SourceSystem:    source,
		Strength:        types.StrengthMedium,
		SourceTimestamp: &ts,
	}
	if err := tx.WithContext(ctx).Create(row).Error; err != nil {
		tb.Fatalf("seed evidence: %v", err)
	}
	return row
}

func SeedLink(tb testing.TB, ctx context.Context, tx *gorm.DB, claimID, evidenceID uuid.UUID) *types.ClaimEvidenceLink {
	tb.Helper()
	row := &types.ClaimEvidenceLink{ID: uuid.New(), ClaimID: claimID, EvidenceID: evidenceID}
	if err := tx.WithContext(ctx).Create(row).Error; err != nil {
		tb.Fatalf("seed link: %v", err)
	}
	return row
}
