package scoring

import (
	"testing"

	"github.com/discoboard/discovery-backend/internal/domain"
)

func strptr(s string) *string { return &s }

func peer(source, segment string) *domain.Evidence {
	p := &domain.Evidence{SourceSystem: source}
	if segment != "" {
		p.Segment = strptr(segment)
	}
	return p
}

func TestCorroborationBonusZeroPeers(t *testing.T) {
	if got := CorroborationBonus(nil, DefaultConfig()); got != 0 {
		t.Fatalf("no peers: got %v, want 0", got)
	}
	if got := CorroborationBonus([]*domain.Evidence{}, DefaultConfig()); got != 0 {
		t.Fatalf("empty peers: got %v, want 0", got)
	}
}

func TestCorroborationBonusCountsDistinctSourcesAndSegments(t *testing.T) {
	cfg := DefaultConfig()

	peers := []*domain.Evidence{peer(domain.SourceSlack, "")}
	if got := CorroborationBonus(peers, cfg); got != 5 {
		t.Fatalf("one source: got %v, want 5", got)
	}

	peers = append(peers, peer(domain.SourceSlack, ""))
	if got := CorroborationBonus(peers, cfg); got != 5 {
		t.Fatalf("duplicate source should not add: got %v, want 5", got)
	}

	peers = append(peers, peer(domain.SourceInterview, "Enterprise"))
	if got := CorroborationBonus(peers, cfg); got != 15 {
		t.Fatalf("second source + first segment: got %v, want 15", got)
	}
}

func TestCorroborationBonusMonotonic(t *testing.T) {
	cfg := DefaultConfig()
	peers := []*domain.Evidence{}
	additions := []*domain.Evidence{
		peer(domain.SourceSlack, ""),
		peer(domain.SourceInterview, "Enterprise"),
		peer(domain.SourceMixpanel, "SMB"),
		peer(domain.SourceSupport, "Consumer"),
		peer(domain.SourceSocial, "Internal"),
	}
	prev := 0.0
	for _, add := range additions {
		peers = append(peers, add)
		got := CorroborationBonus(peers, cfg)
		if got < prev {
			t.Fatalf("bonus decreased after adding unseen peer: %v -> %v", prev, got)
		}
		prev = got
	}
}

func TestCorroborationBonusCapped(t *testing.T) {
	cfg := DefaultConfig()
	var peers []*domain.Evidence
	segments := []string{"Enterprise", "Mid-market", "SMB", "Consumer", "Internal", "Gov"}
	sources := []string{"a", "b", "c", "d", "e", "f"}
	for i := range sources {
		peers = append(peers, peer(sources[i], segments[i]))
	}
	got := CorroborationBonus(peers, cfg)
	want := cfg.PerSourcePoint*float64(cfg.SourceCountCap) + cfg.PerSegmentPoint*float64(cfg.SegmentCountCap)
	if got != want {
		t.Fatalf("capped bonus: got %v, want %v", got, want)
	}
	// The cap can never lift the top of the weak band into strong.
	if 39+int(want) >= StrongThreshold {
		t.Fatalf("bonus cap %v allows weak->strong jump", want)
	}
}

func TestCorroborationBonusIgnoresNilAndEmpty(t *testing.T) {
	cfg := DefaultConfig()
	peers := []*domain.Evidence{nil, peer("", ""), peer(domain.SourceSlack, "")}
	if got := CorroborationBonus(peers, cfg); got != 5 {
		t.Fatalf("nil/empty peers should not count: got %v, want 5", got)
	}
}
