package service

import (
	"fmt"

	"github.com/MKhiriev/go-schema-keeper/internal/config"
	"github.com/MKhiriev/go-schema-keeper/internal/logger"
	"github.com/MKhiriev/go-schema-keeper/internal/store"
	"github.com/MKhiriev/go-schema-keeper/models"
)

type Services struct {
	EntityTypeService EntityTypeService
	EntityService     EntityService
	FileService       FileService
	AppInfoService    AppInfoService
}

func NewServices(storages *store.Storages, cfg *config.ServerConfig, buildInfo models.AppBuildInfo, logger *logger.Logger) (*Services, error) {
	appInfo, err := NewAppInfoService(cfg.App, buildInfo, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating app info service: %w", err)
	}

	return &Services{
		EntityTypeService: NewEntityTypeService(storages.EntityTypeRepository, logger),
		EntityService:     NewEntityService(storages.EntityRepository, storages.BlobStorage, logger),
		FileService:       NewFileService(storages.BlobStorage, logger),
		AppInfoService:    appInfo,
	}, nil
}
