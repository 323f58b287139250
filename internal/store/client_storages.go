package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-schema-keeper/internal/config"
	"github.com/MKhiriev/go-schema-keeper/internal/logger"
)

// ClientStorages groups all client-side storage into a single value that can
// be passed around the service layer.
type ClientStorages struct {
	// ListingCache is the SQLite-backed cache of fetched listings.
	ListingCache ListingCache
}

// NewClientStorages opens (creating if needed) the SQLite file named by
// cfg.Cache.DSN, runs the cache migrations, clears listings left by an earlier
// session and wires the listing cache.
func NewClientStorages(ctx context.Context, cfg config.ClientStorage, logger *logger.Logger) (*ClientStorages, error) {
	logger.Info().Msg("creating new client storages...")

	db, err := NewConnectSQLite(ctx, cfg.Cache, logger)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err := db.Migrate(); err != nil {
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	if err := purgeListings(ctx, db); err != nil {
		return nil, fmt.Errorf("clear listing cache: %w", err)
	}

	return &ClientStorages{
		ListingCache: NewListingCache(db, logger),
	}, nil
}
