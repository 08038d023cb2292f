package scoring

import (
	"errors"
	"testing"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"github.com/discoboard/discovery-backend/internal/domain"
)

func TestValidateTemplate(t *testing.T) {
	r := NewResolver()
	for _, name := range TemplateNames() {
		if err := r.ValidateTemplate(name); err != nil {
			t.Fatalf("ValidateTemplate(%q): %v", name, err)
		}
	}
	err := r.ValidateTemplate("b2c_hypergrowth")
	if err == nil {
		t.Fatal("expected error for unknown template")
	}
	if !errors.Is(err, ErrUnknownTemplate) {
		t.Fatalf("error %v does not wrap ErrUnknownTemplate", err)
	}
}

func TestResolveNilSettingsUsesDefault(t *testing.T) {
	r := NewResolver()
	cfg := r.Resolve(nil)
	if cfg.SourceWeights[domain.SourceManual] != 0.2 {
		t.Fatalf("manual weight = %v, want 0.2", cfg.SourceWeights[domain.SourceManual])
	}
}

// Scenario D: switching to a named template ignores stored custom weights.
func TestResolveTemplateOverridesCustomWeights(t *testing.T) {
	r := NewResolver()
	settings := &domain.WorkspaceSettings{
		WorkspaceID:      uuid.New(),
		WeightTemplate:   TemplateB2BEnterprise,
		WeightConfig:     datatypes.JSON([]byte(`{"manual": 0.99, "interview": 0.01}`)),
		RecencyDecayDays: 30,
		RecencyFloor:     0.3,
	}
	cfg := r.Resolve(settings)
	want := Templates()[TemplateB2BEnterprise]
	if cfg.SourceWeights[domain.SourceManual] != want.SourceWeights[domain.SourceManual] {
		t.Fatalf("manual weight = %v, want template value %v",
			cfg.SourceWeights[domain.SourceManual], want.SourceWeights[domain.SourceManual])
	}
	if cfg.SourceWeights[domain.SourceInterview] != want.SourceWeights[domain.SourceInterview] {
		t.Fatal("custom weights leaked through a named template")
	}
}

func TestResolveDefaultTemplateUsesCustomWeights(t *testing.T) {
	r := NewResolver()
	settings := &domain.WorkspaceSettings{
		WorkspaceID:    uuid.New(),
		WeightTemplate: TemplateDefault,
		WeightConfig:   datatypes.JSON([]byte(`{"manual": 0.6, "slack": 1.5}`)),
	}
	cfg := r.Resolve(settings)
	if cfg.SourceWeights["manual"] != 0.6 {
		t.Fatalf("custom manual weight = %v, want 0.6", cfg.SourceWeights["manual"])
	}
	// Out-of-range stored weights are clamped into [0,1].
	if cfg.SourceWeights["slack"] != 1.0 {
		t.Fatalf("slack weight = %v, want clamped 1.0", cfg.SourceWeights["slack"])
	}
}

func TestResolveMalformedCustomWeightsFallsBack(t *testing.T) {
	r := NewResolver()
	settings := &domain.WorkspaceSettings{
		WorkspaceID:  uuid.New(),
		WeightConfig: datatypes.JSON([]byte(`"not a map"`)),
	}
	cfg := r.Resolve(settings)
	if cfg.SourceWeights[domain.SourceManual] != 0.2 {
		t.Fatalf("malformed custom config should fall back to default, got %v",
			cfg.SourceWeights[domain.SourceManual])
	}
}

func TestResolveRecencyComesFromSettings(t *testing.T) {
	r := NewResolver()
	settings := &domain.WorkspaceSettings{
		WorkspaceID:      uuid.New(),
		WeightTemplate:   TemplateResearchHeavy,
		RecencyEnabled:   true,
		RecencyDecayDays: 14,
		RecencyFloor:     0.5,
	}
	cfg := r.Resolve(settings)
	if !cfg.Recency.Enabled || cfg.Recency.DecayDays != 14 || cfg.Recency.Floor != 0.5 {
		t.Fatalf("recency not taken from settings: %+v", cfg.Recency)
	}
}

func TestResolveUnknownStoredTemplateFallsBack(t *testing.T) {
	r := NewResolver()
	settings := &domain.WorkspaceSettings{
		WorkspaceID:    uuid.New(),
		WeightTemplate: "retired_template",
	}
	cfg := r.Resolve(settings)
	if cfg.SourceWeights[domain.SourceManual] != 0.2 {
		t.Fatal("unknown stored template should resolve to default config")
	}
}

func TestTemplatesAreImmutable(t *testing.T) {
	first := Templates()[TemplateB2BEnterprise]
	first.SourceWeights[domain.SourceManual] = 0.77
	second := Templates()[TemplateB2BEnterprise]
	if second.SourceWeights[domain.SourceManual] == 0.77 {
		t.Fatal("mutating a returned template leaked into the registry")
	}
}

func TestResolverWithDefaultKeepsTemplatesCanonical(t *testing.T) {
	def := DefaultConfig()
	def.SourceWeights[domain.SourceManual] = 0.5
	r := NewResolverWithDefault(def)

	if cfg := r.Resolve(nil); cfg.SourceWeights[domain.SourceManual] != 0.5 {
		t.Fatalf("overridden default not used: %v", cfg.SourceWeights[domain.SourceManual])
	}

	settings := &domain.WorkspaceSettings{WeightTemplate: TemplateB2BEnterprise}
	cfg := r.Resolve(settings)
	want := Templates()[TemplateB2BEnterprise].SourceWeights[domain.SourceManual]
	if cfg.SourceWeights[domain.SourceManual] != want {
		t.Fatal("named template should stay canonical under a custom default")
	}
}
