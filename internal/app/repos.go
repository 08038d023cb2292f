package app

import (
	"gorm.io/gorm"

	"github.com/discoboard/discovery-backend/internal/data/repos/discovery"
	"github.com/discoboard/discovery-backend/internal/pkg/logger"
)

type Repos struct {
	Evidence discovery.EvidenceRepo
	Claim    discovery.ClaimRepo
	Link     discovery.LinkRepo
	Settings discovery.SettingsRepo
	Alert    discovery.AlertRepo
}

func wireRepos(db *gorm.DB, log *logger.Logger) Repos {
	log.Info("Wiring repos...")
	return Repos{
		Evidence: discovery.NewEvidenceRepo(db, log),
		Claim:    discovery.NewClaimRepo(db, log),
		Link:     discovery.NewLinkRepo(db, log),
		Settings: discovery.NewSettingsRepo(db, log),
		Alert:    discovery.NewAlertRepo(db, log),
	}
}
