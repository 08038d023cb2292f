package agents

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/discoboard/discovery-backend/internal/pkg/logger"
	"github.com/discoboard/discovery-backend/internal/platform/envutil"
)

// Client talks to the remote analysis agent service. When no base URL is
// configured the client reports Enabled() == false and never attempts a
// network call; callers treat that as "feature disabled", not a failure.
type Client interface {
	Enabled() bool
	DetectContradictions(ctx context.Context, evidenceID, workspaceID uuid.UUID) (*ContradictionResult, error)
	IdentifySegment(ctx context.Context, evidenceID, workspaceID uuid.UUID) (*SegmentResult, error)
}

type analyzeRequest struct {
	EvidenceID  string `json:"evidence_id"`
	WorkspaceID string `json:"workspace_id"`
}

// ContradictionResult is the strict response schema for
// POST /agent/detect-contradictions. Any decode mismatch is a task-level
// failure for the caller.
type ContradictionResult struct {
	ContradictionsFound int `json:"contradictions_found"`
}

// SegmentResult is the strict response schema for POST /agent/segment-identify.
// Segment is null when the agent could not infer one.
type SegmentResult struct {
	Segment *string `json:"segment"`
}

type client struct {
	log        *logger.Logger
	baseURL    string
	token      string
	httpClient *http.Client
}

// NewClient builds a client from the environment: AGENT_SERVICE_URL (absent
// disables the client), AGENT_SERVICE_TOKEN (bearer credential, optional),
// AGENT_TIMEOUT_SECONDS (default 30). Calls are single-attempt; a timeout is
// the same as a failure to the caller.
func NewClient(log *logger.Logger) Client {
	baseURL := strings.TrimRight(envutil.Str("AGENT_SERVICE_URL", ""), "/")
	timeout := envutil.DurationSeconds("AGENT_TIMEOUT_SECONDS", 30*time.Second)
	return &client{
		log:        log.With("client", "AgentClient"),
		baseURL:    baseURL,
		token:      envutil.Str("AGENT_SERVICE_TOKEN", ""),
		httpClient: &http.Client{Timeout: timeout},
	}
}

// NewClientWith builds a client with explicit settings, for tests and custom
// wiring.
func NewClientWith(log *logger.Logger, baseURL, token string, timeout time.Duration) Client {
	return &client{
		log:        log.With("client", "AgentClient"),
		baseURL:    strings.TrimRight(baseURL, "/"),
		token:      token,
		httpClient: &http.Client{Timeout: timeout},
	}
}

func (c *client) Enabled() bool { return c.baseURL != "" }

func (c *client) DetectContradictions(ctx context.Context, evidenceID, workspaceID uuid.UUID) (*ContradictionResult, error) {
	var out ContradictionResult
	if err := c.post(ctx, "/agent/detect-contradictions", evidenceID, workspaceID, &out); err != nil {
		return nil, err
	}
	if out.ContradictionsFound < 0 {
		return nil, fmt.Errorf("contradiction agent returned invalid count %d", out.ContradictionsFound)
	}
	return &out, nil
}

func (c *client) IdentifySegment(ctx context.Context, evidenceID, workspaceID uuid.UUID) (*SegmentResult, error) {
	var out SegmentResult
	if err := c.post(ctx, "/agent/segment-identify", evidenceID, workspaceID, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *client) post(ctx context.Context, path string, evidenceID, workspaceID uuid.UUID, out interface{}) error {
	if !c.Enabled() {
		return fmt.Errorf("agent service not configured")
	}

	body, err := json.Marshal(analyzeRequest{
		EvidenceID:  evidenceID.String(),
		WorkspaceID: workspaceID.String(),
	})
	if err != nil {
		return fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewBuffer(body))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		return fmt.Errorf("agent service returned status %d: %s", resp.StatusCode, string(raw))
	}

	dec := json.NewDecoder(resp.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}
