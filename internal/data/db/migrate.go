package db

import (
	types "github.com/discoboard/discovery-backend/internal/domain"
)

func (s *Service) AutoMigrateAll() error {
	return s.db.AutoMigrate(types.AllModels()...)
}
