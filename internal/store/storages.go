package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-schema-keeper/internal/config"
	"github.com/MKhiriev/go-schema-keeper/internal/logger"
)

// Storages groups the data store repositories.
type Storages struct {
	EntityTypeRepository EntityTypeRepository
	EntityRepository     EntityRepository
	BlobStorage          BlobStorage
}

// NewStorages connects to PostgreSQL, applies migrations and prepares the
// blob directory.
func NewStorages(ctx context.Context, cfg config.ServerStorage, logger *logger.Logger) (*Storages, error) {
	logger.Info().Msg("creating new storages...")

	db, err := NewConnectPostgres(ctx, cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("postgres connection error: %w", err)
	}

	if err := db.Migrate(); err != nil {
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	blobs, err := NewFileBlobStorage(cfg.Files, logger)
	if err != nil {
		return nil, fmt.Errorf("file storage error: %w", err)
	}

	return &Storages{
		EntityTypeRepository: NewEntityTypeRepository(db, logger),
		EntityRepository:     NewEntityRepository(db, logger),
		BlobStorage:          blobs,
	}, nil
}
