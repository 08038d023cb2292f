package app

import (
	"fmt"
	"os"
	"strings"

	"github.com/discoboard/discovery-backend/internal/clients/agents"
	"github.com/discoboard/discovery-backend/internal/clients/redis"
	"github.com/discoboard/discovery-backend/internal/pkg/logger"
)

type Clients struct {
	Agents   agents.Client
	ScoreBus redis.ScoreBus // nil when REDIS_ADDR is unset
}

func wireClients(log *logger.Logger) (Clients, error) {
	log.Info("Wiring clients...")

	// Redis score bus is optional.
	var bus redis.ScoreBus
	if strings.TrimSpace(os.Getenv("REDIS_ADDR")) != "" {
		b, err := redis.NewScoreBus(log)
		if err != nil {
			return Clients{}, fmt.Errorf("init redis score bus: %w", err)
		}
		bus = b
	}

	// Agent client is always constructed; it disables itself when
	// AGENT_SERVICE_URL is unset.
	agentClient := agents.NewClient(log)
	if !agentClient.Enabled() {
		log.Warn("AGENT_SERVICE_URL not set, remote analysis agents disabled")
	}

	return Clients{
		Agents:   agentClient,
		ScoreBus: bus,
	}, nil
}
