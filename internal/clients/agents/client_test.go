package agents

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/discoboard/discovery-backend/internal/pkg/logger"
)

func testLogger(t *testing.T) *logger.Logger {
	t.Helper()
	log, err := logger.New("test")
	if err != nil {
		t.Fatalf("init logger: %v", err)
	}
	return log
}

func TestDetectContradictions(t *testing.T) {
	evidenceID := uuid.New()
	workspaceID := uuid.New()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/agent/detect-contradictions" {
			t.Errorf("path = %s", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer sekrit" {
			t.Errorf("auth header = %q", got)
		}
		var body map[string]string
		if err := jsonDecode(r, &body); err != nil {
			t.Errorf("decode body: %v", err)
		}
		if body["evidence_id"] != evidenceID.String() || body["workspace_id"] != workspaceID.String() {
			t.Errorf("body = %v", body)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"contradictions_found": 2}`))
	}))
	defer srv.Close()

	c := NewClientWith(testLogger(t), srv.URL, "sekrit", 5*time.Second)
	res, err := c.DetectContradictions(context.Background(), evidenceID, workspaceID)
	if err != nil {
		t.Fatalf("DetectContradictions: %v", err)
	}
	if res.ContradictionsFound != 2 {
		t.Fatalf("contradictions_found = %d, want 2", res.ContradictionsFound)
	}
}

func TestIdentifySegmentNullSegment(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/agent/segment-identify" {
			t.Errorf("path = %s", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "" {
			t.Errorf("unexpected auth header %q with no token configured", got)
		}
		_, _ = w.Write([]byte(`{"segment": null}`))
	}))
	defer srv.Close()

	c := NewClientWith(testLogger(t), srv.URL, "", 5*time.Second)
	res, err := c.IdentifySegment(context.Background(), uuid.New(), uuid.New())
	if err != nil {
		t.Fatalf("IdentifySegment: %v", err)
	}
	if res.Segment != nil {
		t.Fatalf("segment = %v, want nil", *res.Segment)
	}
}

func TestIdentifySegmentValue(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"segment": "Enterprise"}`))
	}))
	defer srv.Close()

	c := NewClientWith(testLogger(t), srv.URL, "", 5*time.Second)
	res, err := c.IdentifySegment(context.Background(), uuid.New(), uuid.New())
	if err != nil {
		t.Fatalf("IdentifySegment: %v", err)
	}
	if res.Segment == nil || *res.Segment != "Enterprise" {
		t.Fatalf("segment = %v, want Enterprise", res.Segment)
	}
}

func TestSchemaMismatchIsError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"contradictions_found": "lots", "extra": true}`))
	}))
	defer srv.Close()

	c := NewClientWith(testLogger(t), srv.URL, "", 5*time.Second)
	if _, err := c.DetectContradictions(context.Background(), uuid.New(), uuid.New()); err == nil {
		t.Fatal("expected error for schema mismatch")
	}
}

func TestNon2xxIsError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := NewClientWith(testLogger(t), srv.URL, "", 5*time.Second)
	if _, err := c.DetectContradictions(context.Background(), uuid.New(), uuid.New()); err == nil {
		t.Fatal("expected error for 500 response")
	}
}

func TestDisabledClientMakesNoCalls(t *testing.T) {
	c := NewClientWith(testLogger(t), "", "", 5*time.Second)
	if c.Enabled() {
		t.Fatal("client with no base URL should be disabled")
	}
	if _, err := c.DetectContradictions(context.Background(), uuid.New(), uuid.New()); err == nil {
		t.Fatal("disabled client should error if called anyway")
	}
}

func jsonDecode(r *http.Request, out interface{}) error {
	defer r.Body.Close()
	return json.NewDecoder(r.Body).Decode(out)
}
