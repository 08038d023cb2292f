package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/discoboard/discovery-backend/internal/data/repos/discovery"
	"github.com/discoboard/discovery-backend/internal/services"
)

type EvidenceHandler struct {
	evidenceService services.EvidenceService
}

func NewEvidenceHandler(evidenceService services.EvidenceService) *EvidenceHandler {
	return &EvidenceHandler{evidenceService: evidenceService}
}

// POST /api/evidence
func (h *EvidenceHandler) CreateEvidence(c *gin.Context) {
	var req services.EvidenceCreate
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_body", err)
		return
	}
	ev, err := h.evidenceService.Create(c.Request.Context(), req)
	if err != nil {
		RespondError(c, http.StatusBadRequest, "evidence_create_failed", err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"evidence": ev})
}

// GET /api/evidence/:id
func (h *EvidenceHandler) GetEvidence(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_evidence_id", err)
		return
	}
	ev, err := h.evidenceService.Get(c.Request.Context(), id)
	if err != nil {
		RespondError(c, http.StatusNotFound, "evidence_not_found", err)
		return
	}
	RespondOK(c, gin.H{"evidence": ev})
}

// GET /api/workspaces/:workspaceID/evidence
// Filters: source_system, strength, segment, limit.
func (h *EvidenceHandler) ListEvidence(c *gin.Context) {
	workspaceID, err := uuid.Parse(c.Param("workspaceID"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_workspace_id", err)
		return
	}
	filter := discovery.EvidenceFilter{
		SourceSystem: c.Query("source_system"),
		Strength:     c.Query("strength"),
		Segment:      c.Query("segment"),
	}
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			RespondError(c, http.StatusBadRequest, "invalid_limit", err)
			return
		}
		filter.Limit = n
	}
	items, err := h.evidenceService.List(c.Request.Context(), workspaceID, filter)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "evidence_list_failed", err)
		return
	}
	RespondOK(c, gin.H{"evidence": items, "count": len(items)})
}

// DELETE /api/evidence
func (h *EvidenceHandler) DeleteEvidence(c *gin.Context) {
	var req struct {
		IDs []uuid.UUID `json:"ids"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || len(req.IDs) == 0 {
		RespondError(c, http.StatusBadRequest, "invalid_body", err)
		return
	}
	if err := h.evidenceService.Delete(c.Request.Context(), req.IDs); err != nil {
		RespondError(c, http.StatusInternalServerError, "evidence_delete_failed", err)
		return
	}
	RespondOK(c, gin.H{"deleted": len(req.IDs)})
}
