package app

import (
	"github.com/gin-gonic/gin"

	"github.com/discoboard/discovery-backend/internal/pkg/logger"
	"github.com/discoboard/discovery-backend/internal/server"
)

func wireRouter(log *logger.Logger, handlers Handlers) *gin.Engine {
	return server.NewRouter(server.RouterConfig{
		Log:             log,
		EvidenceHandler: handlers.Evidence,
		ClaimHandler:    handlers.Claim,
		SettingsHandler: handlers.Settings,
		AlertHandler:    handlers.Alert,
	})
}
