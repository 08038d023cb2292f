package scoring

import (
	"math"
	"time"
)

// RecencyConfig controls how evidence age suppresses trust. Floor bounds the
// suppression so arbitrarily old evidence never decays to zero.
type RecencyConfig struct {
	Enabled   bool    `json:"enabled" yaml:"enabled"`
	DecayDays float64 `json:"decay_days" yaml:"decay_days"`
	Floor     float64 `json:"floor" yaml:"floor"`
}

const defaultDecayDays = 30

// DecayFactor returns a multiplier in [policy.Floor, 1] for evidence whose
// underlying event happened at ts. Decay is an exponential half-life over
// policy.DecayDays. A disabled policy, a zero ts, or a future ts all yield
// 1.0.
func DecayFactor(ts, now time.Time, policy RecencyConfig) float64 {
	if !policy.Enabled {
		return 1.0
	}
	floor := clampFloat(policy.Floor, 0, 1)
	if ts.IsZero() {
		return 1.0
	}
	elapsed := now.Sub(ts)
	if elapsed <= 0 {
		return 1.0
	}
	decayDays := policy.DecayDays
	if decayDays <= 0 {
		decayDays = defaultDecayDays
	}
	ageDays := elapsed.Hours() / 24
	factor := math.Pow(0.5, ageDays/decayDays)
	return clampFloat(factor, floor, 1.0)
}
