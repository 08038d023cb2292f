package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"github.com/discoboard/discovery-backend/internal/data/repos/discovery"
	types "github.com/discoboard/discovery-backend/internal/domain"
	"github.com/discoboard/discovery-backend/internal/pkg/logger"
)

// EvidenceCreate is the write shape for capturing a new evidence item.
type EvidenceCreate struct {
	WorkspaceID     uuid.UUID  `json:"workspace_id"`
	Title           string     `json:"title"`
	Type            string     `json:"type,omitempty"` // url | text
	Content         string     `json:"content,omitempty"`
	URL             string     `json:"url,omitempty"`
	SourceSystem    string     `json:"source_system,omitempty"`
	Strength        string     `json:"strength,omitempty"` // manual rating fallback
	Segment         *string    `json:"segment,omitempty"`
	Sentiment       string     `json:"sentiment,omitempty"`
	HasDirectVoice  bool       `json:"has_direct_voice,omitempty"`
	Tags            []string   `json:"tags,omitempty"`
	SourceTimestamp *time.Time `json:"source_timestamp,omitempty"`
	CreatedBy       *uuid.UUID `json:"created_by,omitempty"`
}

type EvidenceService interface {
	Create(ctx context.Context, in EvidenceCreate) (*types.Evidence, error)
	Get(ctx context.Context, id uuid.UUID) (*types.Evidence, error)
	List(ctx context.Context, workspaceID uuid.UUID, filter discovery.EvidenceFilter) ([]*types.Evidence, error)
	Delete(ctx context.Context, ids []uuid.UUID) error
}

type evidenceService struct {
	log      *logger.Logger
	evidence discovery.EvidenceRepo
}

func NewEvidenceService(log *logger.Logger, evidence discovery.EvidenceRepo) EvidenceService {
	return &evidenceService{
		log:      log.With("service", "EvidenceService"),
		evidence: evidence,
	}
}

func (s *evidenceService) Create(ctx context.Context, in EvidenceCreate) (*types.Evidence, error) {
	if in.WorkspaceID == uuid.Nil {
		return nil, fmt.Errorf("workspace_id required")
	}
	if strings.TrimSpace(in.Title) == "" {
		return nil, fmt.Errorf("title required")
	}

	source := strings.ToLower(strings.TrimSpace(in.SourceSystem))
	if source == "" {
		source = types.SourceManual
	}
	kind := in.Type
	if kind == "" {
		kind = "text"
	}
	rating := in.Strength
	if rating == "" {
		rating = types.StrengthMedium
	}

	row := &types.Evidence{
		ID:              uuid.New(),
		WorkspaceID:     in.WorkspaceID,
		Title:           in.Title,
		Type:            kind,
		Content:         in.Content,
		URL:             in.URL,
		SourceSystem:    source,
		Strength:        rating,
		Segment:         in.Segment,
		Sentiment:       in.Sentiment,
		HasDirectVoice:  in.HasDirectVoice,
		SourceTimestamp: in.SourceTimestamp,
		CreatedBy:       in.CreatedBy,
	}
	if len(in.Tags) > 0 {
		raw, err := json.Marshal(in.Tags)
		if err != nil {
			return nil, fmt.Errorf("encode tags: %w", err)
		}
		row.Tags = datatypes.JSON(raw)
	}

	created, err := s.evidence.Create(ctx, nil, []*types.Evidence{row})
	if err != nil {
		return nil, fmt.Errorf("create evidence: %w", err)
	}
	s.log.Info("evidence captured",
		"evidence_id", row.ID,
		"workspace_id", in.WorkspaceID,
		"source_system", source,
	)
	return created[0], nil
}

func (s *evidenceService) Get(ctx context.Context, id uuid.UUID) (*types.Evidence, error) {
	return s.evidence.GetByID(ctx, nil, id)
}

func (s *evidenceService) List(ctx context.Context, workspaceID uuid.UUID, filter discovery.EvidenceFilter) ([]*types.Evidence, error) {
	return s.evidence.ListByWorkspace(ctx, nil, workspaceID, filter)
}

func (s *evidenceService) Delete(ctx context.Context, ids []uuid.UUID) error {
	return s.evidence.SoftDeleteByIDs(ctx, nil, ids)
}
