package server

import (
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/discoboard/discovery-backend/internal/handlers"
	"github.com/discoboard/discovery-backend/internal/middleware"
	"github.com/discoboard/discovery-backend/internal/pkg/logger"
	"github.com/discoboard/discovery-backend/internal/platform/envutil"
)

type RouterConfig struct {
	Log             *logger.Logger
	EvidenceHandler *handlers.EvidenceHandler
	ClaimHandler    *handlers.ClaimHandler
	SettingsHandler *handlers.SettingsHandler
	AlertHandler    *handlers.AlertHandler
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger(cfg.Log))

	// Cors
	origins := strings.Split(envutil.Str("CORS_ALLOW_ORIGINS", "http://localhost:3000,http://localhost:5173"), ",")
	router.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "PATCH", "OPTIONS"},
		AllowHeaders:     []string{"Authorization", "Content-Type", "X-Requested-With"},
		AllowCredentials: true,
	}))

	router.GET("/healthcheck", handlers.HealthCheck)

	api := router.Group("/api")
	{
		// Evidence
		api.POST("/evidence", cfg.EvidenceHandler.CreateEvidence)
		api.GET("/evidence/:id", cfg.EvidenceHandler.GetEvidence)
		api.DELETE("/evidence", cfg.EvidenceHandler.DeleteEvidence)

		// Claims
		api.POST("/claims", cfg.ClaimHandler.CreateClaim)
		api.GET("/claims/:id", cfg.ClaimHandler.GetClaim)
		api.GET("/claims/:id/strength", cfg.ClaimHandler.GetClaimStrength)
		api.GET("/claims/:id/evidence", cfg.ClaimHandler.ListClaimEvidence)
		api.POST("/claims/:id/evidence/:evidenceID", cfg.ClaimHandler.LinkEvidence)
		api.DELETE("/claims/:id/evidence/:evidenceID", cfg.ClaimHandler.UnlinkEvidence)

		// Workspace-scoped reads and settings
		api.GET("/workspaces/:workspaceID/evidence", cfg.EvidenceHandler.ListEvidence)
		api.GET("/workspaces/:workspaceID/alerts", cfg.AlertHandler.ListAlerts)
		api.GET("/workspaces/:workspaceID/settings", cfg.SettingsHandler.GetSettings)
		api.PUT("/workspaces/:workspaceID/settings", cfg.SettingsHandler.UpdateSettings)

		// Alerts
		api.POST("/alerts/:id/read", cfg.AlertHandler.MarkAlertRead)

		// Weight templates
		api.GET("/weight-templates", cfg.SettingsHandler.ListTemplates)
	}

	return router
}
