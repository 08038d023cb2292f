package scoring

// Band is the qualitative tier derived from a computed strength score.
type Band string

const (
	BandStrong   Band = "strong"
	BandModerate Band = "moderate"
	BandWeak     Band = "weak"
)

// Fixed band thresholds over the 0-100 score range.
const (
	StrongThreshold   = 70
	ModerateThreshold = 40
)

// Classify maps a score to its band. Out-of-range input is clamped first, so
// the partition over [0,100] is total and non-overlapping.
func Classify(score int) Band {
	s := clampInt(score, 0, 100)
	switch {
	case s >= StrongThreshold:
		return BandStrong
	case s >= ModerateThreshold:
		return BandModerate
	default:
		return BandWeak
	}
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func clampFloat(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
