package scoring

import (
	"math"
	"testing"
	"time"
)

func TestDecayFactorDisabled(t *testing.T) {
	now := time.Now()
	policy := RecencyConfig{Enabled: false, DecayDays: 30, Floor: 0.3}
	old := now.AddDate(-10, 0, 0)
	if got := DecayFactor(old, now, policy); got != 1.0 {
		t.Fatalf("disabled policy: got %v, want 1.0", got)
	}
}

func TestDecayFactorHalfLife(t *testing.T) {
	now := time.Now()
	policy := RecencyConfig{Enabled: true, DecayDays: 30, Floor: 0.0}

	got := DecayFactor(now.Add(-30*24*time.Hour), now, policy)
	if math.Abs(got-0.5) > 1e-9 {
		t.Fatalf("one half-life: got %v, want 0.5", got)
	}

	got = DecayFactor(now.Add(-60*24*time.Hour), now, policy)
	if math.Abs(got-0.25) > 1e-9 {
		t.Fatalf("two half-lives: got %v, want 0.25", got)
	}
}

func TestDecayFactorFloor(t *testing.T) {
	now := time.Now()
	policy := RecencyConfig{Enabled: true, DecayDays: 30, Floor: 0.3}
	got := DecayFactor(now.AddDate(-5, 0, 0), now, policy)
	if got != 0.3 {
		t.Fatalf("ancient evidence: got %v, want floor 0.3", got)
	}
}

func TestDecayFactorMonotonic(t *testing.T) {
	now := time.Now()
	policy := RecencyConfig{Enabled: true, DecayDays: 30, Floor: 0.1}
	prev := 2.0
	for days := 0; days <= 365; days += 7 {
		f := DecayFactor(now.Add(-time.Duration(days)*24*time.Hour), now, policy)
		if f > prev {
			t.Fatalf("decay not monotonic: %d days -> %v after %v", days, f, prev)
		}
		if f < policy.Floor || f > 1.0 {
			t.Fatalf("decay out of range at %d days: %v", days, f)
		}
		prev = f
	}
}

func TestDecayFactorEdgeTimestamps(t *testing.T) {
	now := time.Now()
	policy := RecencyConfig{Enabled: true, DecayDays: 30, Floor: 0.3}

	if got := DecayFactor(time.Time{}, now, policy); got != 1.0 {
		t.Fatalf("zero ts: got %v, want 1.0", got)
	}
	if got := DecayFactor(now.Add(24*time.Hour), now, policy); got != 1.0 {
		t.Fatalf("future ts: got %v, want 1.0", got)
	}
}

func TestDecayFactorDefaultsDecayDays(t *testing.T) {
	now := time.Now()
	policy := RecencyConfig{Enabled: true, DecayDays: 0, Floor: 0}
	got := DecayFactor(now.Add(-30*24*time.Hour), now, policy)
	if math.Abs(got-0.5) > 1e-9 {
		t.Fatalf("zero decay_days should fall back to 30: got %v", got)
	}
}
