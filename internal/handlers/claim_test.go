package handlers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/discoboard/discovery-backend/internal/data/repos/discovery"
	types "github.com/discoboard/discovery-backend/internal/domain"
	"github.com/discoboard/discovery-backend/internal/services"
)

type fakeClaimService struct {
	workspaceID uuid.UUID
	linkErr     error
	created     bool
}

func (f *fakeClaimService) Create(ctx context.Context, in services.ClaimCreate) (*types.Claim, error) {
	return &types.Claim{ID: uuid.New(), WorkspaceID: in.WorkspaceID, Text: in.Text}, nil
}
func (f *fakeClaimService) Get(ctx context.Context, id uuid.UUID) (*services.ClaimView, error) {
	return &services.ClaimView{Claim: &types.Claim{ID: id}}, nil
}
func (f *fakeClaimService) Link(ctx context.Context, claimID, evidenceID uuid.UUID) (*types.Claim, bool, error) {
	if f.linkErr != nil {
		return nil, false, f.linkErr
	}
	return &types.Claim{ID: claimID, WorkspaceID: f.workspaceID}, f.created, nil
}
func (f *fakeClaimService) Unlink(ctx context.Context, claimID, evidenceID uuid.UUID) error {
	return nil
}
func (f *fakeClaimService) ListEvidence(ctx context.Context, claimID uuid.UUID) ([]*types.Evidence, error) {
	return []*types.Evidence{}, nil
}
func (f *fakeClaimService) Strength(ctx context.Context, claimID uuid.UUID) (*discovery.ClaimStrength, error) {
	return &discovery.ClaimStrength{ClaimID: claimID}, nil
}

type fakeOrchestrator struct {
	mu       sync.Mutex
	triggers int
	lastWS   uuid.UUID
	done     chan struct{}
}

func (f *fakeOrchestrator) TriggerOnEvidenceLink(ctx context.Context, evidenceID, claimID, workspaceID uuid.UUID) {
	f.mu.Lock()
	f.triggers++
	f.lastWS = workspaceID
	f.mu.Unlock()
	if f.done != nil {
		close(f.done)
	}
}

func linkRequest(t *testing.T, h *ClaimHandler, claimID, evidenceID string) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/api/claims/:id/evidence/:evidenceID", h.LinkEvidence)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost,
		fmt.Sprintf("/api/claims/%s/evidence/%s", claimID, evidenceID), nil)
	router.ServeHTTP(w, req)
	return w
}

func TestLinkEvidenceAcceptedAndTriggersEnrichment(t *testing.T) {
	workspaceID := uuid.New()
	orch := &fakeOrchestrator{done: make(chan struct{})}
	h := NewClaimHandler(&fakeClaimService{workspaceID: workspaceID, created: true}, orch)

	w := linkRequest(t, h, uuid.NewString(), uuid.NewString())
	if w.Code != http.StatusAccepted {
		t.Fatalf("status = %d, want 202", w.Code)
	}

	select {
	case <-orch.done:
	case <-time.After(time.Second):
		t.Fatal("orchestrator was not triggered")
	}
	orch.mu.Lock()
	defer orch.mu.Unlock()
	if orch.lastWS != workspaceID {
		t.Fatalf("trigger workspace = %s, want %s", orch.lastWS, workspaceID)
	}
}

func TestLinkEvidenceInvalidIDRejected(t *testing.T) {
	orch := &fakeOrchestrator{}
	h := NewClaimHandler(&fakeClaimService{}, orch)

	w := linkRequest(t, h, "not-a-uuid", uuid.NewString())
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
	orch.mu.Lock()
	defer orch.mu.Unlock()
	if orch.triggers != 0 {
		t.Fatal("orchestrator must not fire on a rejected request")
	}
}

func TestLinkEvidenceServiceFailureDoesNotTrigger(t *testing.T) {
	orch := &fakeOrchestrator{}
	h := NewClaimHandler(&fakeClaimService{linkErr: errors.New("claim missing")}, orch)

	w := linkRequest(t, h, uuid.NewString(), uuid.NewString())
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
	orch.mu.Lock()
	defer orch.mu.Unlock()
	if orch.triggers != 0 {
		t.Fatal("orchestrator must not fire when the link write fails")
	}
}
