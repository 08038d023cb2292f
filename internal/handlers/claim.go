package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/discoboard/discovery-backend/internal/services"
)

type ClaimHandler struct {
	claimService services.ClaimService
	orchestrator services.Orchestrator
}

func NewClaimHandler(claimService services.ClaimService, orchestrator services.Orchestrator) *ClaimHandler {
	return &ClaimHandler{
		claimService: claimService,
		orchestrator: orchestrator,
	}
}

// POST /api/claims
func (h *ClaimHandler) CreateClaim(c *gin.Context) {
	var req services.ClaimCreate
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_body", err)
		return
	}
	claim, err := h.claimService.Create(c.Request.Context(), req)
	if err != nil {
		RespondError(c, http.StatusBadRequest, "claim_create_failed", err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"claim": claim})
}

// GET /api/claims/:id
func (h *ClaimHandler) GetClaim(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_claim_id", err)
		return
	}
	view, err := h.claimService.Get(c.Request.Context(), id)
	if err != nil {
		RespondError(c, http.StatusNotFound, "claim_not_found", err)
		return
	}
	RespondOK(c, view)
}

// POST /api/claims/:id/evidence/:evidenceID
// Links the evidence item and kicks off enrichment in the background. The
// link write is the only thing the response waits on; scoring and agent
// analysis settle on their own and never fail this request.
func (h *ClaimHandler) LinkEvidence(c *gin.Context) {
	claimID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_claim_id", err)
		return
	}
	evidenceID, err := uuid.Parse(c.Param("evidenceID"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_evidence_id", err)
		return
	}

	claim, created, err := h.claimService.Link(c.Request.Context(), claimID, evidenceID)
	if err != nil {
		RespondError(c, http.StatusBadRequest, "link_failed", err)
		return
	}

	// Detached from the request context so client disconnects cannot cancel
	// enrichment mid-flight.
	go h.orchestrator.TriggerOnEvidenceLink(context.Background(), evidenceID, claimID, claim.WorkspaceID)

	c.JSON(http.StatusAccepted, gin.H{"linked": true, "created": created})
}

// DELETE /api/claims/:id/evidence/:evidenceID
func (h *ClaimHandler) UnlinkEvidence(c *gin.Context) {
	claimID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_claim_id", err)
		return
	}
	evidenceID, err := uuid.Parse(c.Param("evidenceID"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_evidence_id", err)
		return
	}
	if err := h.claimService.Unlink(c.Request.Context(), claimID, evidenceID); err != nil {
		RespondError(c, http.StatusBadRequest, "unlink_failed", err)
		return
	}
	RespondOK(c, gin.H{"unlinked": true})
}

// GET /api/claims/:id/evidence
func (h *ClaimHandler) ListClaimEvidence(c *gin.Context) {
	claimID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_claim_id", err)
		return
	}
	items, err := h.claimService.ListEvidence(c.Request.Context(), claimID)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "claim_evidence_failed", err)
		return
	}
	RespondOK(c, gin.H{"evidence": items, "count": len(items)})
}

// GET /api/claims/:id/strength
func (h *ClaimHandler) GetClaimStrength(c *gin.Context) {
	claimID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_claim_id", err)
		return
	}
	agg, err := h.claimService.Strength(c.Request.Context(), claimID)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "claim_strength_failed", err)
		return
	}
	RespondOK(c, agg)
}
