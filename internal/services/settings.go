package services

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"github.com/discoboard/discovery-backend/internal/data/repos/discovery"
	types "github.com/discoboard/discovery-backend/internal/domain"
	"github.com/discoboard/discovery-backend/internal/pkg/logger"
	"github.com/discoboard/discovery-backend/internal/scoring"
)

// SettingsUpdate is the write shape for workspace weight settings. A nil
// field leaves the stored value alone.
type SettingsUpdate struct {
	WeightTemplate *string                `json:"weight_template,omitempty"`
	WeightConfig   map[string]float64     `json:"weight_config,omitempty"`
	Recency        *scoring.RecencyConfig `json:"recency_config,omitempty"`
	TargetSegments []string               `json:"target_segments,omitempty"`
}

// SettingsView is the read shape: the stored row plus the resolved effective
// config.
type SettingsView struct {
	WorkspaceID    uuid.UUID                `json:"workspace_id"`
	WeightTemplate string                   `json:"weight_template"`
	Templates      []string                 `json:"templates"`
	Effective      scoring.Config           `json:"effective"`
	Stored         *types.WorkspaceSettings `json:"stored,omitempty"`
}

type SettingsService interface {
	Get(ctx context.Context, workspaceID uuid.UUID) (*SettingsView, error)
	// Update validates the template name against the fixed set; this is the
	// one caller-visible validation error in the scoring core. Selecting a
	// non-default template clears any stored custom weights.
	Update(ctx context.Context, workspaceID uuid.UUID, upd SettingsUpdate) (*SettingsView, error)

	// Resolve returns the effective scoring config for a workspace. Never
	// fails; missing or malformed stored state resolves to defaults.
	Resolve(ctx context.Context, workspaceID uuid.UUID) scoring.Config
}

type settingsService struct {
	log      *logger.Logger
	settings discovery.SettingsRepo
	resolver *scoring.Resolver
}

func NewSettingsService(log *logger.Logger, settings discovery.SettingsRepo, resolver *scoring.Resolver) SettingsService {
	return &settingsService{
		log:      log.With("service", "SettingsService"),
		settings: settings,
		resolver: resolver,
	}
}

func (s *settingsService) Get(ctx context.Context, workspaceID uuid.UUID) (*SettingsView, error) {
	stored, err := s.settings.GetByWorkspace(ctx, nil, workspaceID)
	if err != nil {
		return nil, err
	}
	return s.view(workspaceID, stored), nil
}

func (s *settingsService) Update(ctx context.Context, workspaceID uuid.UUID, upd SettingsUpdate) (*SettingsView, error) {
	if upd.WeightTemplate != nil {
		if err := s.resolver.ValidateTemplate(*upd.WeightTemplate); err != nil {
			return nil, err
		}
	}

	stored, err := s.settings.GetByWorkspace(ctx, nil, workspaceID)
	if err != nil {
		return nil, err
	}
	if stored == nil {
		def := scoring.DefaultConfig().Recency
		stored = &types.WorkspaceSettings{
			ID:               uuid.New(),
			WorkspaceID:      workspaceID,
			WeightTemplate:   scoring.TemplateDefault,
			RecencyEnabled:   def.Enabled,
			RecencyDecayDays: def.DecayDays,
			RecencyFloor:     def.Floor,
		}
	}

	if upd.WeightTemplate != nil {
		stored.WeightTemplate = *upd.WeightTemplate
		if stored.WeightTemplate != scoring.TemplateDefault {
			// Named templates and custom weights are mutually exclusive.
			stored.WeightConfig = nil
		}
	}
	if upd.WeightConfig != nil {
		if stored.WeightTemplate != scoring.TemplateDefault {
			return nil, fmt.Errorf("custom weight_config requires the %q template, workspace uses %q",
				scoring.TemplateDefault, stored.WeightTemplate)
		}
		raw, err := json.Marshal(upd.WeightConfig)
		if err != nil {
			return nil, fmt.Errorf("encode weight_config: %w", err)
		}
		stored.WeightConfig = datatypes.JSON(raw)
	}
	if upd.Recency != nil {
		stored.RecencyEnabled = upd.Recency.Enabled
		if upd.Recency.DecayDays > 0 {
			stored.RecencyDecayDays = upd.Recency.DecayDays
		}
		stored.RecencyFloor = upd.Recency.Floor
	}
	if upd.TargetSegments != nil {
		raw, err := json.Marshal(upd.TargetSegments)
		if err != nil {
			return nil, fmt.Errorf("encode target_segments: %w", err)
		}
		stored.TargetSegments = datatypes.JSON(raw)
	}

	if err := s.settings.Upsert(ctx, nil, stored); err != nil {
		return nil, err
	}
	s.log.Info("workspace weight settings updated",
		"workspace_id", workspaceID,
		"weight_template", stored.WeightTemplate,
	)
	return s.view(workspaceID, stored), nil
}

func (s *settingsService) Resolve(ctx context.Context, workspaceID uuid.UUID) scoring.Config {
	stored, err := s.settings.GetByWorkspace(ctx, nil, workspaceID)
	if err != nil {
		s.log.Warn("failed to load workspace settings, using defaults",
			"workspace_id", workspaceID, "error", err)
		stored = nil
	}
	return s.resolver.Resolve(stored)
}

func (s *settingsService) view(workspaceID uuid.UUID, stored *types.WorkspaceSettings) *SettingsView {
	template := scoring.TemplateDefault
	if stored != nil && stored.WeightTemplate != "" {
		template = stored.WeightTemplate
	}
	return &SettingsView{
		WorkspaceID:    workspaceID,
		WeightTemplate: template,
		Templates:      scoring.TemplateNames(),
		Effective:      s.resolver.Resolve(stored),
		Stored:         stored,
	}
}
