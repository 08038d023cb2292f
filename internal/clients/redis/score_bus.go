package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"

	"github.com/discoboard/discovery-backend/internal/pkg/logger"
	"github.com/discoboard/discovery-backend/internal/platform/envutil"
	"github.com/discoboard/discovery-backend/internal/scoring"
)

// ScoreEvent is published whenever an evidence item is (re)scored, so
// dashboard consumers can refresh without polling.
type ScoreEvent struct {
	EvidenceID  uuid.UUID    `json:"evidence_id"`
	ClaimID     uuid.UUID    `json:"claim_id"`
	WorkspaceID uuid.UUID    `json:"workspace_id"`
	Score       int          `json:"score"`
	Band        scoring.Band `json:"band"`
}

type ScoreBus interface {
	Publish(ctx context.Context, ev ScoreEvent) error
	Close() error
}

type scoreBus struct {
	log     *logger.Logger
	rdb     *goredis.Client
	channel string
}

// NewScoreBus connects to Redis from the environment. Callers treat a
// missing REDIS_ADDR as "bus disabled" and skip construction.
func NewScoreBus(log *logger.Logger) (ScoreBus, error) {
	if log == nil {
		return nil, fmt.Errorf("logger required")
	}
	addr := envutil.Str("REDIS_ADDR", "")
	if addr == "" {
		return nil, fmt.Errorf("missing REDIS_ADDR")
	}
	channel := envutil.Str("REDIS_SCORE_CHANNEL", "evidence.scores")

	rdb := goredis.NewClient(&goredis.Options{
		Addr:        addr,
		DialTimeout: 5 * time.Second,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}

	return &scoreBus{
		log:     log.With("client", "ScoreBus"),
		rdb:     rdb,
		channel: channel,
	}, nil
}

func (b *scoreBus) Publish(ctx context.Context, ev ScoreEvent) error {
	if b == nil || b.rdb == nil {
		return fmt.Errorf("score bus not initialized")
	}
	raw, err := json.Marshal(ev)
	if err != nil {
		return err
	}
	return b.rdb.Publish(ctx, b.channel, raw).Err()
}

func (b *scoreBus) Close() error {
	if b == nil || b.rdb == nil {
		return nil
	}
	return b.rdb.Close()
}
