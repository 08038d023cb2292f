package app

import (
	"github.com/discoboard/discovery-backend/internal/handlers"
	"github.com/discoboard/discovery-backend/internal/pkg/logger"
)

type Handlers struct {
	Evidence *handlers.EvidenceHandler
	Claim    *handlers.ClaimHandler
	Settings *handlers.SettingsHandler
	Alert    *handlers.AlertHandler
}

func wireHandlers(log *logger.Logger, services Services) Handlers {
	log.Info("Wiring handlers...")
	return Handlers{
		Evidence: handlers.NewEvidenceHandler(services.Evidence),
		Claim:    handlers.NewClaimHandler(services.Claim, services.Orchestrator),
		Settings: handlers.NewSettingsHandler(services.Settings),
		Alert:    handlers.NewAlertHandler(services.Alert),
	}
}
