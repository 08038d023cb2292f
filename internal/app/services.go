package app

import (
	"github.com/discoboard/discovery-backend/internal/pkg/logger"
	"github.com/discoboard/discovery-backend/internal/scoring"
	"github.com/discoboard/discovery-backend/internal/services"
)

type Services struct {
	Evidence     services.EvidenceService
	Claim        services.ClaimService
	Settings     services.SettingsService
	Strength     services.StrengthService
	Alert        services.AlertService
	Orchestrator services.Orchestrator
}

func wireServices(log *logger.Logger, cfg Config, repos Repos, clients Clients) Services {
	log.Info("Wiring services...")

	resolver := scoring.NewResolverWithDefault(cfg.ScoringDefaults)

	strength := services.NewStrengthService(log, repos.Evidence, repos.Claim, repos.Link, repos.Settings, resolver)
	orchestrator := services.NewOrchestrator(log, strength, clients.Agents, clients.ScoreBus, cfg.OrchestratorTimeout)

	return Services{
		Evidence:     services.NewEvidenceService(log, repos.Evidence),
		Claim:        services.NewClaimService(log, repos.Claim, repos.Evidence, repos.Link),
		Settings:     services.NewSettingsService(log, repos.Settings, resolver),
		Strength:     strength,
		Alert:        services.NewAlertService(log, repos.Alert),
		Orchestrator: orchestrator,
	}
}
