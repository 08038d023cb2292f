package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/discoboard/discovery-backend/internal/data/repos/discovery"
	"github.com/discoboard/discovery-backend/internal/pkg/logger"
	"github.com/discoboard/discovery-backend/internal/scoring"
)

// StrengthService owns the local scoring write path: load the evidence item
// and its claim siblings, resolve the workspace's effective weight config,
// compute the score, and persist it. On any failure nothing is persisted —
// the item simply stays at its previous score (or unscored).
type StrengthService interface {
	RecomputeForLink(ctx context.Context, evidenceID, claimID, workspaceID uuid.UUID) (*scoring.Result, error)
	ScoreClaim(ctx context.Context, claimID uuid.UUID) (*discovery.ClaimStrength, error)
}

type strengthService struct {
	log      *logger.Logger
	evidence discovery.EvidenceRepo
	claims   discovery.ClaimRepo
	links    discovery.LinkRepo
	settings discovery.SettingsRepo
	resolver *scoring.Resolver
	now      func() time.Time
}

func NewStrengthService(
	log *logger.Logger,
	evidence discovery.EvidenceRepo,
	claims discovery.ClaimRepo,
	links discovery.LinkRepo,
	settings discovery.SettingsRepo,
	resolver *scoring.Resolver,
) StrengthService {
	return &strengthService{
		log:      log.With("service", "StrengthService"),
		evidence: evidence,
		claims:   claims,
		links:    links,
		settings: settings,
		resolver: resolver,
		now:      time.Now,
	}
}

func (s *strengthService) RecomputeForLink(ctx context.Context, evidenceID, claimID, workspaceID uuid.UUID) (*scoring.Result, error) {
	ev, err := s.evidence.GetByID(ctx, nil, evidenceID)
	if err != nil {
		return nil, fmt.Errorf("load evidence %s: %w", evidenceID, err)
	}

	peers, err := s.links.GetPeerEvidence(ctx, nil, claimID, evidenceID)
	if err != nil {
		return nil, fmt.Errorf("load peers for claim %s: %w", claimID, err)
	}

	settings, err := s.settings.GetByWorkspace(ctx, nil, workspaceID)
	if err != nil {
		return nil, fmt.Errorf("load settings for workspace %s: %w", workspaceID, err)
	}

	cfg := s.resolver.Resolve(settings)
	res := scoring.ComputeStrength(ev, peers, cfg, s.now())

	if err := s.evidence.UpdateStrengthFields(ctx, nil, evidenceID, float64(res.Score), res.SourceWeight, res.RecencyFactor); err != nil {
		return nil, fmt.Errorf("persist strength for evidence %s: %w", evidenceID, err)
	}

	s.log.Debug("evidence scored",
		"evidence_id", evidenceID,
		"claim_id", claimID,
		"score", res.Score,
		"band", res.Band,
	)
	return &res, nil
}

func (s *strengthService) ScoreClaim(ctx context.Context, claimID uuid.UUID) (*discovery.ClaimStrength, error) {
	return s.claims.AggregateStrength(ctx, nil, claimID)
}
