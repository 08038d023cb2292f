package scoring

import (
	"math"
	"time"

	"github.com/discoboard/discovery-backend/internal/domain"
)

// Result is the outcome of a strength computation. SourceWeight and
// RecencyFactor are the intermediate components, persisted alongside the
// score for explainability.
type Result struct {
	Score         int     `json:"score"`
	Band          Band    `json:"band"`
	SourceWeight  float64 `json:"source_weight"`
	RecencyFactor float64 `json:"recency_factor"`
	Bonus         float64 `json:"bonus"`
}

// ComputeStrength maps an evidence item, its claim peers, and the effective
// config to a 0-100 trust score and band. Pure and total: it never errors,
// and missing optional fields degrade to safe defaults (lowest configured
// weight, ingestion time, zero bonus).
func ComputeStrength(ev *domain.Evidence, peers []*domain.Evidence, cfg Config, now time.Time) Result {
	if ev == nil {
		return Result{Score: 0, Band: BandWeak}
	}

	weight, ok := cfg.SourceWeights[ev.SourceSystem]
	if !ok {
		weight = lowestWeight(cfg.SourceWeights)
	}
	weight = clampFloat(weight, 0, 1)
	base := weight * 100

	ts := ev.CreatedAt
	if ev.SourceTimestamp != nil && !ev.SourceTimestamp.IsZero() {
		ts = *ev.SourceTimestamp
	}
	recency := DecayFactor(ts, now, cfg.Recency)

	bonus := CorroborationBonus(peers, cfg)

	score := clampInt(int(math.Round(base*recency+bonus)), 0, 100)
	return Result{
		Score:         score,
		Band:          Classify(score),
		SourceWeight:  weight,
		RecencyFactor: recency,
		Bonus:         bonus,
	}
}

// lowestWeight is the fallback for unknown source systems: the lowest
// configured trust tier, never an error.
func lowestWeight(weights map[string]float64) float64 {
	if len(weights) == 0 {
		return 0
	}
	lowest := math.Inf(1)
	for _, w := range weights {
		if w < lowest {
			lowest = w
		}
	}
	return clampFloat(lowest, 0, 1)
}
