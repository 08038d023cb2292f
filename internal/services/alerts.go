package services

import (
	"context"

	"github.com/google/uuid"

	"github.com/discoboard/discovery-backend/internal/data/repos/discovery"
	types "github.com/discoboard/discovery-backend/internal/domain"
	"github.com/discoboard/discovery-backend/internal/pkg/logger"
)

// AlertService reads the workspace alert feed written by the analysis agents.
type AlertService interface {
	List(ctx context.Context, workspaceID uuid.UUID, filter discovery.AlertFilter) ([]*types.AgentAlert, error)
	MarkRead(ctx context.Context, id uuid.UUID) error
}

type alertService struct {
	log    *logger.Logger
	alerts discovery.AlertRepo
}

func NewAlertService(log *logger.Logger, alerts discovery.AlertRepo) AlertService {
	return &alertService{
		log:    log.With("service", "AlertService"),
		alerts: alerts,
	}
}

func (s *alertService) List(ctx context.Context, workspaceID uuid.UUID, filter discovery.AlertFilter) ([]*types.AgentAlert, error) {
	return s.alerts.ListByWorkspace(ctx, nil, workspaceID, filter)
}

func (s *alertService) MarkRead(ctx context.Context, id uuid.UUID) error {
	return s.alerts.MarkRead(ctx, nil, id)
}
