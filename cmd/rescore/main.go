package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/uuid"

	"github.com/discoboard/discovery-backend/internal/app"
)

type idList []string

func (l *idList) String() string { return strings.Join(*l, ",") }
func (l *idList) Set(v string) error {
	v = strings.TrimSpace(v)
	if v != "" {
		*l = append(*l, v)
	}
	return nil
}

// Recomputes evidence strength for every item linked to the given claims.
// Useful after editing a workspace's weight settings, since stored scores
// are only refreshed lazily on link events.
func main() {
	var claims idList
	var dryRun bool
	var limit int
	flag.Var(&claims, "claim", "claim_id to rescore (repeatable)")
	flag.BoolVar(&dryRun, "dry-run", false, "print planned recomputes without writing")
	flag.IntVar(&limit, "limit", 0, "limit number of evidence items processed")
	flag.Parse()

	if len(claims) == 0 {
		fmt.Println("at least one -claim is required")
		os.Exit(1)
	}

	application, err := app.New()
	if err != nil {
		fmt.Printf("init app: %v\n", err)
		os.Exit(1)
	}
	defer application.Close()

	ctx := context.Background()
	processed := 0
	for _, raw := range claims {
		claimID, err := uuid.Parse(raw)
		if err != nil {
			application.Log.Error("invalid claim id", "claim_id", raw, "error", err)
			os.Exit(1)
		}
		claim, err := application.Repos.Claim.GetByID(ctx, nil, claimID)
		if err != nil {
			application.Log.Error("claim not found", "claim_id", claimID, "error", err)
			os.Exit(1)
		}
		ids, err := application.Repos.Link.GetEvidenceIDsByClaim(ctx, nil, claimID)
		if err != nil {
			application.Log.Error("failed to list linked evidence", "claim_id", claimID, "error", err)
			os.Exit(1)
		}
		for _, evidenceID := range ids {
			if limit > 0 && processed >= limit {
				break
			}
			processed++
			if dryRun {
				fmt.Printf("would rescore evidence %s (claim %s)\n", evidenceID, claimID)
				continue
			}
			res, err := application.Services.Strength.RecomputeForLink(ctx, evidenceID, claimID, claim.WorkspaceID)
			if err != nil {
				application.Log.Warn("rescore failed", "evidence_id", evidenceID, "error", err)
				continue
			}
			fmt.Printf("rescored evidence %s -> %d (%s)\n", evidenceID, res.Score, res.Band)
		}
	}
	fmt.Printf("done, %d item(s) processed\n", processed)
}
