package scoring

import (
	"github.com/discoboard/discovery-backend/internal/domain"
)

// CorroborationBonus returns the score bonus earned from the other evidence
// items already linked to the same claim. Distinct source systems and
// distinct segments among peers each contribute a capped number of points,
// so corroboration alone can never lift a weak score straight to strong.
// Adding a peer with a previously unseen source or segment never decreases
// the bonus.
func CorroborationBonus(peers []*domain.Evidence, cfg Config) float64 {
	if len(peers) == 0 {
		return 0
	}

	sources := make(map[string]struct{})
	segments := make(map[string]struct{})
	for _, p := range peers {
		if p == nil {
			continue
		}
		if p.SourceSystem != "" {
			sources[p.SourceSystem] = struct{}{}
		}
		if p.Segment != nil && *p.Segment != "" {
			segments[*p.Segment] = struct{}{}
		}
	}

	sourceCount := len(sources)
	if cfg.SourceCountCap > 0 && sourceCount > cfg.SourceCountCap {
		sourceCount = cfg.SourceCountCap
	}
	segmentCount := len(segments)
	if cfg.SegmentCountCap > 0 && segmentCount > cfg.SegmentCountCap {
		segmentCount = cfg.SegmentCountCap
	}

	return cfg.PerSourcePoint*float64(sourceCount) + cfg.PerSegmentPoint*float64(segmentCount)
}
