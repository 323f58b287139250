package service

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

import (
	"context"

	"github.com/MKhiriev/go-schema-keeper/models"
)

// EntityTypeService serves the entity type endpoints of the data store.
type EntityTypeService interface {
	List(ctx context.Context) ([]models.EntityType, error)
	Get(ctx context.Context, id string) (models.EntityType, error)
	Create(ctx context.Context, payload models.EntityTypePayload) (models.EntityType, error)
	Update(ctx context.Context, id string, payload models.EntityTypePayload) (models.EntityType, error)
	Delete(ctx context.Context, id string) error
}

// EntityService serves the entity endpoints of the data store. Values are
// stored as received; blobs are written to file storage and replaced by
// their reference.
type EntityService interface {
	List(ctx context.Context, typeID string) ([]models.Entity, error)
	Create(ctx context.Context, draft models.EntityDraft) (models.Entity, error)
	Update(ctx context.Context, id string, draft models.EntityDraft) (models.Entity, error)
	Delete(ctx context.Context, id string) error
}

// FileService serves stored blobs.
type FileService interface {
	Load(ctx context.Context, name string) ([]byte, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}
