package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/discoboard/discovery-backend/internal/clients/agents"
	redisclient "github.com/discoboard/discovery-backend/internal/clients/redis"
	"github.com/discoboard/discovery-backend/internal/pkg/logger"
)

// Orchestrator reacts to "evidence linked to a claim" events. Each event
// fans out three independent tasks — local strength recompute, remote
// contradiction detection, remote segment identification — and settles all
// of them: every task runs to its own success or failure, task errors are
// logged and discarded, and the caller never sees a failure. This keeps the
// latency and reliability of the link write path decoupled from enrichment.
type Orchestrator interface {
	TriggerOnEvidenceLink(ctx context.Context, evidenceID, claimID, workspaceID uuid.UUID)
}

type taskOutcome struct {
	name string
	err  error
}

type orchestrator struct {
	log      *logger.Logger
	strength StrengthService
	agents   agents.Client
	bus      redisclient.ScoreBus // nil when the bus is disabled
	timeout  time.Duration
}

func NewOrchestrator(
	log *logger.Logger,
	strength StrengthService,
	agentClient agents.Client,
	bus redisclient.ScoreBus,
	timeout time.Duration,
) Orchestrator {
	if timeout <= 0 {
		timeout = 60 * time.Second
	}
	return &orchestrator{
		log:      log.With("service", "Orchestrator"),
		strength: strength,
		agents:   agentClient,
		bus:      bus,
		timeout:  timeout,
	}
}

func (o *orchestrator) TriggerOnEvidenceLink(ctx context.Context, evidenceID, claimID, workspaceID uuid.UUID) {
	defer func() {
		if r := recover(); r != nil {
			o.log.Error("orchestrator panic recovered",
				"evidence_id", evidenceID, "panic", fmt.Sprintf("%v", r))
		}
	}()

	ctx, cancel := context.WithTimeout(ctx, o.timeout)
	defer cancel()

	// Checked once per invocation, not per task.
	agentsEnabled := o.agents != nil && o.agents.Enabled()

	outcomes := make([]taskOutcome, 3)
	g := new(errgroup.Group)

	g.Go(func() error {
		outcomes[0] = taskOutcome{name: "strength", err: o.runStrength(ctx, evidenceID, claimID, workspaceID)}
		return nil
	})
	g.Go(func() error {
		if !agentsEnabled {
			outcomes[1] = taskOutcome{name: "contradiction"}
			return nil
		}
		_, err := o.agents.DetectContradictions(ctx, evidenceID, workspaceID)
		outcomes[1] = taskOutcome{name: "contradiction", err: err}
		return nil
	})
	g.Go(func() error {
		if !agentsEnabled {
			outcomes[2] = taskOutcome{name: "segment"}
			return nil
		}
		_, err := o.agents.IdentifySegment(ctx, evidenceID, workspaceID)
		outcomes[2] = taskOutcome{name: "segment", err: err}
		return nil
	})

	// Task funcs always return nil; the join itself cannot fail.
	_ = g.Wait()

	if !agentsEnabled {
		o.log.Debug("agent service not configured, remote tasks skipped",
			"evidence_id", evidenceID)
	}
	for _, out := range outcomes {
		if out.err != nil {
			o.log.Warn("enrichment task failed",
				"task", out.name,
				"evidence_id", evidenceID,
				"error", out.err,
			)
		}
	}
}

func (o *orchestrator) runStrength(ctx context.Context, evidenceID, claimID, workspaceID uuid.UUID) error {
	res, err := o.strength.RecomputeForLink(ctx, evidenceID, claimID, workspaceID)
	if err != nil {
		return err
	}
	if o.bus != nil {
		ev := redisclient.ScoreEvent{
			EvidenceID:  evidenceID,
			ClaimID:     claimID,
			WorkspaceID: workspaceID,
			Score:       res.Score,
			Band:        res.Band,
		}
		if err := o.bus.Publish(ctx, ev); err != nil {
			// Publishing is best-effort; the score is already persisted.
			o.log.Warn("score event publish failed",
				"evidence_id", evidenceID, "error", err)
		}
	}
	return nil
}
