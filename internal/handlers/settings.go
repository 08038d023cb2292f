package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/discoboard/discovery-backend/internal/scoring"
	"github.com/discoboard/discovery-backend/internal/services"
)

type SettingsHandler struct {
	settingsService services.SettingsService
}

func NewSettingsHandler(settingsService services.SettingsService) *SettingsHandler {
	return &SettingsHandler{settingsService: settingsService}
}

// GET /api/workspaces/:workspaceID/settings
func (h *SettingsHandler) GetSettings(c *gin.Context) {
	workspaceID, err := uuid.Parse(c.Param("workspaceID"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_workspace_id", err)
		return
	}
	view, err := h.settingsService.Get(c.Request.Context(), workspaceID)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "settings_load_failed", err)
		return
	}
	RespondOK(c, view)
}

// PUT /api/workspaces/:workspaceID/settings
func (h *SettingsHandler) UpdateSettings(c *gin.Context) {
	workspaceID, err := uuid.Parse(c.Param("workspaceID"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_workspace_id", err)
		return
	}
	var req services.SettingsUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_body", err)
		return
	}
	view, err := h.settingsService.Update(c.Request.Context(), workspaceID, req)
	if err != nil {
		if errors.Is(err, scoring.ErrUnknownTemplate) {
			RespondError(c, http.StatusBadRequest, "unknown_template", err)
			return
		}
		RespondError(c, http.StatusBadRequest, "settings_update_failed", err)
		return
	}
	RespondOK(c, view)
}

// GET /api/weight-templates
func (h *SettingsHandler) ListTemplates(c *gin.Context) {
	RespondOK(c, gin.H{
		"templates": scoring.TemplateNames(),
		"configs":   scoring.Templates(),
	})
}
