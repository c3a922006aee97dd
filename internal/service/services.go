package service

import (
	"github.com/mhenke/logbuch/internal/config"
	"github.com/mhenke/logbuch/internal/logger"
	"github.com/mhenke/logbuch/internal/store"
)

type Services struct {
	AuthService     AuthService
	CategoryService CategoryService
	EntryService    EntryService
}

func NewServices(storages *store.Storages, cfg config.StructuredConfig, logger *logger.Logger) *Services {
	return &Services{
		AuthService:     NewAuthService(storages.Users, cfg.App, logger),
		CategoryService: NewCategoryService(storages.Categories, logger),
		EntryService:    NewEntryService(storages.Entries, logger),
	}
}
