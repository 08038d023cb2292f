package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/discoboard/discovery-backend/internal/data/repos/discovery"
	"github.com/discoboard/discovery-backend/internal/services"
)

type AlertHandler struct {
	alertService services.AlertService
}

func NewAlertHandler(alertService services.AlertService) *AlertHandler {
	return &AlertHandler{alertService: alertService}
}

// GET /api/workspaces/:workspaceID/alerts
// Filters: agent_type, unread_only, limit.
func (h *AlertHandler) ListAlerts(c *gin.Context) {
	workspaceID, err := uuid.Parse(c.Param("workspaceID"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_workspace_id", err)
		return
	}
	filter := discovery.AlertFilter{
		AgentType:  c.Query("agent_type"),
		UnreadOnly: c.Query("unread_only") == "true",
	}
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			RespondError(c, http.StatusBadRequest, "invalid_limit", err)
			return
		}
		filter.Limit = n
	}
	alerts, err := h.alertService.List(c.Request.Context(), workspaceID, filter)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "alerts_list_failed", err)
		return
	}
	RespondOK(c, gin.H{"alerts": alerts, "count": len(alerts)})
}

// POST /api/alerts/:id/read
func (h *AlertHandler) MarkAlertRead(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_alert_id", err)
		return
	}
	if err := h.alertService.MarkRead(c.Request.Context(), id); err != nil {
		RespondError(c, http.StatusBadRequest, "alert_mark_read_failed", err)
		return
	}
	RespondOK(c, gin.H{"read": true})
}
