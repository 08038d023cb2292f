package scoring

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"

	"github.com/discoboard/discovery-backend/internal/domain"
)

// Config is the effective scoring configuration for a workspace: per-source
// trust weights, corroboration bonus parameters, and the recency policy.
type Config struct {
	SourceWeights map[string]float64 `json:"source_weights" yaml:"source_weights"`

	PerSourcePoint  float64 `json:"per_source_point" yaml:"per_source_point"`
	SourceCountCap  int     `json:"source_count_cap" yaml:"source_count_cap"`
	PerSegmentPoint float64 `json:"per_segment_point" yaml:"per_segment_point"`
	SegmentCountCap int     `json:"segment_count_cap" yaml:"segment_count_cap"`

	Recency RecencyConfig `json:"recency" yaml:"recency"`
}

// Clone returns a deep copy so callers can never mutate a registry entry.
func (c Config) Clone() Config {
	out := c
	out.SourceWeights = make(map[string]float64, len(c.SourceWeights))
	for k, v := range c.SourceWeights {
		out.SourceWeights[k] = v
	}
	return out
}

// Weight template names. The set is fixed; settings writes are validated
// against it.
const (
	TemplateDefault       = "default"
	TemplateB2BEnterprise = "b2b_enterprise"
	TemplatePLGGrowth     = "plg_growth"
	TemplateSupportLed    = "support_led"
	TemplateResearchHeavy = "research_heavy"
)

var ErrUnknownTemplate = errors.New("unknown weight template")

func defaultBonus(c *Config) {
	c.PerSourcePoint = 5
	c.SourceCountCap = 3
	c.PerSegmentPoint = 5
	c.SegmentCountCap = 2
}

// DefaultConfig is the global default weight configuration, used when a
// workspace has neither a named template nor custom weights.
func DefaultConfig() Config {
	c := Config{
		SourceWeights: map[string]float64{
			domain.SourceManual:    0.2,
			domain.SourceSlack:     0.5,
			domain.SourceNotion:    0.5,
			domain.SourceMixpanel:  0.8,
			domain.SourceAirtable:  0.4,
			domain.SourceIntercom:  0.7,
			domain.SourceInterview: 0.9,
			domain.SourceSupport:   0.7,
			domain.SourceSocial:    0.3,
		},
		Recency: RecencyConfig{Enabled: false, DecayDays: 30, Floor: 0.3},
	}
	defaultBonus(&c)
	return c
}

// Templates returns the canonical config for every named template. The map
// and its configs are freshly built on each call; templates are immutable.
func Templates() map[string]Config {
	b2b := Config{
		SourceWeights: map[string]float64{
			domain.SourceManual:    0.25,
			domain.SourceSlack:     0.6,
			domain.SourceNotion:    0.6,
			domain.SourceMixpanel:  0.7,
			domain.SourceAirtable:  0.5,
			domain.SourceIntercom:  0.8,
			domain.SourceInterview: 0.95,
			domain.SourceSupport:   0.8,
			domain.SourceSocial:    0.2,
		},
		Recency: RecencyConfig{Enabled: false, DecayDays: 60, Floor: 0.3},
	}
	plg := Config{
		SourceWeights: map[string]float64{
			domain.SourceManual:    0.2,
			domain.SourceSlack:     0.5,
			domain.SourceNotion:    0.4,
			domain.SourceMixpanel:  0.95,
			domain.SourceAirtable:  0.4,
			domain.SourceIntercom:  0.7,
			domain.SourceInterview: 0.7,
			domain.SourceSupport:   0.6,
			domain.SourceSocial:    0.6,
		},
		Recency: RecencyConfig{Enabled: true, DecayDays: 30, Floor: 0.3},
	}
	support := Config{
		SourceWeights: map[string]float64{
			domain.SourceManual:    0.2,
			domain.SourceSlack:     0.5,
			domain.SourceNotion:    0.4,
			domain.SourceMixpanel:  0.6,
			domain.SourceAirtable:  0.4,
			domain.SourceIntercom:  0.9,
			domain.SourceInterview: 0.8,
			domain.SourceSupport:   0.95,
			domain.SourceSocial:    0.3,
		},
		Recency: RecencyConfig{Enabled: true, DecayDays: 45, Floor: 0.3},
	}
	research := Config{
		SourceWeights: map[string]float64{
			domain.SourceManual:    0.4,
			domain.SourceSlack:     0.4,
			domain.SourceNotion:    0.7,
			domain.SourceMixpanel:  0.7,
			domain.SourceAirtable:  0.5,
			domain.SourceIntercom:  0.6,
			domain.SourceInterview: 0.95,
			domain.SourceSupport:   0.6,
			domain.SourceSocial:    0.2,
		},
		Recency: RecencyConfig{Enabled: false, DecayDays: 90, Floor: 0.4},
	}
	for _, c := range []*Config{&b2b, &plg, &support, &research} {
		defaultBonus(c)
	}
	return map[string]Config{
		TemplateDefault:       DefaultConfig(),
		TemplateB2BEnterprise: b2b,
		TemplatePLGGrowth:     plg,
		TemplateSupportLed:    support,
		TemplateResearchHeavy: research,
	}
}

// TemplateNames returns the valid template names, sorted.
func TemplateNames() []string {
	names := make([]string, 0, 5)
	for name := range Templates() {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Resolver resolves a workspace's stored settings into an effective scoring
// config. The template registry and the fallback default are fixed at
// construction so tests can substitute configurations freely.
type Resolver struct {
	templates map[string]Config
	def       Config
}

func NewResolver() *Resolver {
	return NewResolverWithDefault(DefaultConfig())
}

// NewResolverWithDefault uses def as the global default config (e.g. loaded
// from a weights file). Named templates stay canonical.
func NewResolverWithDefault(def Config) *Resolver {
	return &Resolver{templates: Templates(), def: def.Clone()}
}

// ValidateTemplate rejects template names outside the fixed set. This is the
// one caller-visible configuration error in the scoring core; it is surfaced
// on settings writes, not at resolve time.
func (r *Resolver) ValidateTemplate(name string) error {
	if name == "" {
		return nil
	}
	if _, ok := r.templates[name]; !ok {
		return fmt.Errorf("%w: %q", ErrUnknownTemplate, name)
	}
	return nil
}

// Resolve returns the effective config for the given settings. A non-default
// template wins over any stored custom weights; the default template (or no
// template) uses the stored custom weights when present, else the global
// default. The recency policy always comes from the workspace settings row
// when one exists. Resolve never fails: unparseable or unknown stored state
// falls back to the default config.
func (r *Resolver) Resolve(settings *domain.WorkspaceSettings) Config {
	cfg := r.def.Clone()
	if settings == nil {
		return cfg
	}

	if settings.WeightTemplate != "" && settings.WeightTemplate != TemplateDefault {
		if tpl, ok := r.templates[settings.WeightTemplate]; ok {
			cfg = tpl.Clone()
		}
	} else if len(settings.WeightConfig) > 0 {
		var custom map[string]float64
		if err := json.Unmarshal(settings.WeightConfig, &custom); err == nil && len(custom) > 0 {
			weights := make(map[string]float64, len(custom))
			for source, w := range custom {
				weights[source] = clampFloat(w, 0, 1)
			}
			cfg.SourceWeights = weights
		}
	}

	cfg.Recency = RecencyConfig{
		Enabled:   settings.RecencyEnabled,
		DecayDays: settings.RecencyDecayDays,
		Floor:     clampFloat(settings.RecencyFloor, 0, 1),
	}
	return cfg
}
