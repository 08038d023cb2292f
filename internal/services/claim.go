package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/discoboard/discovery-backend/internal/data/repos/discovery"
	types "github.com/discoboard/discovery-backend/internal/domain"
	"github.com/discoboard/discovery-backend/internal/pkg/logger"
)

// ClaimCreate is the write shape for a new claim.
type ClaimCreate struct {
	WorkspaceID uuid.UUID  `json:"workspace_id"`
	Kind        string     `json:"kind,omitempty"` // problem | assumption | decision
	Text        string     `json:"text"`
	CreatedBy   *uuid.UUID `json:"created_by,omitempty"`
}

// ClaimView is a claim plus its derived strength rollup.
type ClaimView struct {
	Claim    *types.Claim             `json:"claim"`
	Strength *discovery.ClaimStrength `json:"strength"`
}

type ClaimService interface {
	Create(ctx context.Context, in ClaimCreate) (*types.Claim, error)
	Get(ctx context.Context, id uuid.UUID) (*ClaimView, error)

	// Link attaches evidence to a claim. Returns the claim and whether a new
	// link row was written; a repeated pair is a no-op and reports false.
	Link(ctx context.Context, claimID, evidenceID uuid.UUID) (*types.Claim, bool, error)
	Unlink(ctx context.Context, claimID, evidenceID uuid.UUID) error
	ListEvidence(ctx context.Context, claimID uuid.UUID) ([]*types.Evidence, error)
	Strength(ctx context.Context, claimID uuid.UUID) (*discovery.ClaimStrength, error)
}

type claimService struct {
	log      *logger.Logger
	claims   discovery.ClaimRepo
	evidence discovery.EvidenceRepo
	links    discovery.LinkRepo
}

func NewClaimService(
	log *logger.Logger,
	claims discovery.ClaimRepo,
	evidence discovery.EvidenceRepo,
	links discovery.LinkRepo,
) ClaimService {
	return &claimService{
		log:      log.With("service", "ClaimService"),
		claims:   claims,
		evidence: evidence,
		links:    links,
	}
}

func (s *claimService) Create(ctx context.Context, in ClaimCreate) (*types.Claim, error) {
	if in.WorkspaceID == uuid.Nil {
		return nil, fmt.Errorf("workspace_id required")
	}
	if strings.TrimSpace(in.Text) == "" {
		return nil, fmt.Errorf("text required")
	}
	kind := in.Kind
	if kind == "" {
		kind = "problem"
	}
	row := &types.Claim{
		ID:          uuid.New(),
		WorkspaceID: in.WorkspaceID,
		Kind:        kind,
		Text:        in.Text,
		CreatedBy:   in.CreatedBy,
	}
	created, err := s.claims.Create(ctx, nil, []*types.Claim{row})
	if err != nil {
		return nil, fmt.Errorf("create claim: %w", err)
	}
	return created[0], nil
}

func (s *claimService) Get(ctx context.Context, id uuid.UUID) (*ClaimView, error) {
	claim, err := s.claims.GetByID(ctx, nil, id)
	if err != nil {
		return nil, err
	}
	agg, err := s.claims.AggregateStrength(ctx, nil, id)
	if err != nil {
		return nil, fmt.Errorf("aggregate strength for claim %s: %w", id, err)
	}
	return &ClaimView{Claim: claim, Strength: agg}, nil
}

func (s *claimService) Link(ctx context.Context, claimID, evidenceID uuid.UUID) (*types.Claim, bool, error) {
	// Both ends must exist before a link is written.
	claim, err := s.claims.GetByID(ctx, nil, claimID)
	if err != nil {
		return nil, false, fmt.Errorf("claim %s: %w", claimID, err)
	}
	if _, err := s.evidence.GetByID(ctx, nil, evidenceID); err != nil {
		return nil, false, fmt.Errorf("evidence %s: %w", evidenceID, err)
	}

	created, err := s.links.Create(ctx, nil, claimID, evidenceID)
	if err != nil {
		return nil, false, fmt.Errorf("link evidence %s to claim %s: %w", evidenceID, claimID, err)
	}
	if created {
		if err := s.claims.SetHasEvidence(ctx, nil, claimID, true); err != nil {
			s.log.Warn("failed to flag claim as evidenced",
				"claim_id", claimID, "error", err)
		}
	}
	return claim, created, nil
}

func (s *claimService) Unlink(ctx context.Context, claimID, evidenceID uuid.UUID) error {
	if err := s.links.Delete(ctx, nil, claimID, evidenceID); err != nil {
		return fmt.Errorf("unlink evidence %s from claim %s: %w", evidenceID, claimID, err)
	}
	remaining, err := s.links.CountByClaim(ctx, nil, claimID)
	if err != nil {
		s.log.Warn("failed to count remaining links",
			"claim_id", claimID, "error", err)
		return nil
	}
	if remaining == 0 {
		if err := s.claims.SetHasEvidence(ctx, nil, claimID, false); err != nil {
			s.log.Warn("failed to clear evidenced flag",
				"claim_id", claimID, "error", err)
		}
	}
	return nil
}

func (s *claimService) ListEvidence(ctx context.Context, claimID uuid.UUID) ([]*types.Evidence, error) {
	ids, err := s.links.GetEvidenceIDsByClaim(ctx, nil, claimID)
	if err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return []*types.Evidence{}, nil
	}
	return s.evidence.GetByIDs(ctx, nil, ids)
}

func (s *claimService) Strength(ctx context.Context, claimID uuid.UUID) (*discovery.ClaimStrength, error) {
	return s.claims.AggregateStrength(ctx, nil, claimID)
}
