// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-schema-keeper/internal/logger"
	"github.com/MKhiriev/go-schema-keeper/models"
)

const entityTypesScope = "entity_types"

// entitiesScope is the cache key of one type's entity collection.
func entitiesScope(typeID string) string {
	return "entities:" + typeID
}

// listingCache is the SQLite-backed [ListingCache]. Each scope holds the
// JSON text of one listing.
type listingCache struct {
	db     *DB
	logger *logger.Logger
	now    func() time.Time
}

func NewListingCache(db *DB, logger *logger.Logger) ListingCache {
	logger.Debug().Msg("creating listing cache")
	return &listingCache{
		db:     db,
		logger: logger,
		now:    time.Now,
	}
}

func (c *listingCache) GetEntityTypes(ctx context.Context) ([]models.EntityType, bool, error) {
	return loadListing[models.EntityType](ctx, c.db, entityTypesScope)
}

func (c *listingCache) SaveEntityTypes(ctx context.Context, types []models.EntityType) error {
	return saveListing(ctx, c.db, entityTypesScope, types, c.now())
}

func (c *listingCache) InvalidateEntityTypes(ctx context.Context) error {
	return deleteListing(ctx, c.db, entityTypesScope)
}

func (c *listingCache) GetEntities(ctx context.Context, typeID string) ([]models.Entity, bool, error) {
	return loadListing[models.Entity](ctx, c.db, entitiesScope(typeID))
}

func (c *listingCache) SaveEntities(ctx context.Context, typeID string, entities []models.Entity) error {
	return saveListing(ctx, c.db, entitiesScope(typeID), entities, c.now())
}

func (c *listingCache) InvalidateEntities(ctx context.Context, typeID string) error {
	return deleteListing(ctx, c.db, entitiesScope(typeID))
}

func loadListing[T any](ctx context.Context, db *DB, scope string) ([]T, bool, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectListingQuery(scope)
	if err != nil {
		return nil, false, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var payload string
	err = db.QueryRowContext(ctx, query, args...).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		log.Err(err).Str("func", "loadListing").Str("scope", scope).Msg("error reading cached listing")
		return nil, false, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	var items []T
	if err := json.Unmarshal([]byte(payload), &items); err != nil {
		log.Warn().Err(err).Str("func", "loadListing").Str("scope", scope).Msg("dropping corrupted cached listing")
		return nil, false, fmt.Errorf("%w: %w", ErrCorruptedCache, err)
	}
	if items == nil {
		items = []T{}
	}

	return items, true, nil
}

func saveListing[T any](ctx context.Context, db *DB, scope string, items []T, at time.Time) error {
	if items == nil {
		items = []T{}
	}
	payload, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrEncodingColumn, err)
	}

	query, args, err := buildUpsertListingQuery(scope, string(payload), at.Unix())
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err := db.ExecContext(ctx, query, args...); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "saveListing").Str("scope", scope).Msg("error caching listing")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func deleteListing(ctx context.Context, db *DB, scope string) error {
	query, args, err := buildDeleteListingQuery(scope)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err := db.ExecContext(ctx, query, args...); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "deleteListing").Str("scope", scope).Msg("error invalidating listing")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

// purgeListings drops every cached listing. Listings written by an earlier
// session may describe schemas other operators have changed since.
func purgeListings(ctx context.Context, db *DB) error {
	query, args, err := buildPurgeListingsQuery()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err := db.ExecContext(ctx, query, args...); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "purgeListings").Msg("error clearing listing cache")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}
