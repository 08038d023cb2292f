package app

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/discoboard/discovery-backend/internal/pkg/logger"
	"github.com/discoboard/discovery-backend/internal/platform/envutil"
	"github.com/discoboard/discovery-backend/internal/scoring"
)

type Config struct {
	Port string

	// Defaults used when a workspace has no stored weight settings. Loaded
	// from WEIGHTS_FILE when set, otherwise the built-in defaults.
	ScoringDefaults scoring.Config

	OrchestratorTimeout time.Duration
}

// weightsFile is the YAML shape of WEIGHTS_FILE. Only the keys present
// override the built-in defaults.
type weightsFile struct {
	SourceWeights map[string]float64     `yaml:"source_weights"`
	Recency       *scoring.RecencyConfig `yaml:"recency"`
}

func LoadConfig(log *logger.Logger) Config {
	cfg := Config{
		Port:                envutil.Str("PORT", "8080"),
		ScoringDefaults:     scoring.DefaultConfig(),
		OrchestratorTimeout: envutil.DurationSeconds("ORCHESTRATOR_TIMEOUT_SECONDS", 60*time.Second),
	}

	if path := envutil.Str("WEIGHTS_FILE", ""); path != "" {
		if err := applyWeightsFile(&cfg.ScoringDefaults, path); err != nil {
			log.Warn("failed to load weights file, using built-in defaults",
				"path", path, "error", err)
		} else {
			log.Info("scoring defaults loaded from file", "path", path)
		}
	}
	return cfg
}

func applyWeightsFile(cfg *scoring.Config, path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	var wf weightsFile
	if err := yaml.Unmarshal(raw, &wf); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	for source, w := range wf.SourceWeights {
		if w < 0 {
			w = 0
		}
		if w > 1 {
			w = 1
		}
		cfg.SourceWeights[source] = w
	}
	if wf.Recency != nil {
		cfg.Recency = *wf.Recency
	}
	return nil
}
