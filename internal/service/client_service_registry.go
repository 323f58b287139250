// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-schema-keeper/internal/adapter"
	"github.com/MKhiriev/go-schema-keeper/internal/logger"
	"github.com/MKhiriev/go-schema-keeper/internal/store"
	"github.com/MKhiriev/go-schema-keeper/internal/validators"
	"github.com/MKhiriev/go-schema-keeper/models"
)

type schemaRegistry struct {
	adapter   adapter.ServerAdapter
	cache     store.ListingCache
	validator validators.Validator
	logger    *logger.Logger
}

func NewSchemaRegistry(storages *store.ClientStorages, serverAdapter adapter.ServerAdapter, logger *logger.Logger) SchemaRegistry {
	return &schemaRegistry{
		adapter:   serverAdapter,
		cache:     storages.ListingCache,
		validator: validators.NewEntityTypeValidator(),
		logger:    logger,
	}
}

func (r *schemaRegistry) List(ctx context.Context) ([]models.EntityTypeEntry, error) {
	types, err := r.fetch(ctx)
	if err != nil {
		return nil, err
	}

	return classify(types), nil
}

func (r *schemaRegistry) Resolve(ctx context.Context, typeID string) (models.EntityType, error) {
	types, err := r.fetch(ctx)
	if err != nil {
		return models.EntityType{}, err
	}

	for _, t := range types {
		if t.ID == typeID {
			return t, nil
		}
	}

	return models.EntityType{}, fmt.Errorf("resolve entity type %q: %w", typeID, store.ErrEntityTypeNotFound)
}

func (r *schemaRegistry) Save(ctx context.Context, entityType models.EntityType) (models.EntityType, error) {
	log := r.logger.With().Str("func", "*schemaRegistry.Save").Logger()

	if dt, ok := models.LookupDefaultType(strings.TrimSpace(entityType.Slug)); ok {
		entityType.Name = dt.Name
		entityType.Slug = dt.Slug
	}

	payload := normalizePayload(entityType.Payload())
	if err := r.validator.Validate(ctx, payload); err != nil {
		return models.EntityType{}, fmt.Errorf("entity type validation failed: %w", err)
	}

	held, err := r.fetch(ctx)
	if err != nil {
		return models.EntityType{}, err
	}

	// a held type keeps its class whatever slug it is saved with
	id := entityType.ID
	if existing, ok := findByID(held, id); ok {
		dt, wasDefault := models.LookupDefaultType(existing.Slug)
		switch {
		case wasDefault:
			payload.Name = dt.Name
			payload.Slug = dt.Slug
		case models.IsDefaultSlug(payload.Slug):
			return models.EntityType{}, fmt.Errorf("entity type validation failed: %w", ErrReservedSlug)
		}
	}

	// explicit upsert: the default type may not exist server-side yet
	if models.IsDefaultSlug(payload.Slug) {
		id = ""
		if materialized, ok := findBySlug(held, payload.Slug); ok {
			id = materialized.ID
		}
	}

	var saved models.EntityType
	if id == "" {
		log.Debug().Str("slug", payload.Slug).Msg("creating entity type")
		saved, err = r.adapter.CreateEntityType(ctx, payload)
	} else {
		log.Debug().Str("slug", payload.Slug).Str("type_id", id).Msg("updating entity type")
		saved, err = r.adapter.UpdateEntityType(ctx, id, payload)
	}
	if err != nil {
		log.Err(err).Str("slug", payload.Slug).Msg("error saving entity type")
		return models.EntityType{}, fmt.Errorf("save entity type: %w", mapAdapterError(err))
	}

	r.invalidate(ctx, entityTypesInvalidator(r.cache))

	return saved, nil
}

func (r *schemaRegistry) Delete(ctx context.Context, entityType models.EntityType) error {
	log := r.logger.With().Str("func", "*schemaRegistry.Delete").Logger()

	if models.IsDefaultSlug(entityType.Slug) {
		return ErrDefaultTypeNotDeletable
	}
	if !entityType.Materialized() {
		return ErrEntityTypeNotMaterialized
	}

	held, err := r.fetch(ctx)
	if err != nil {
		return err
	}
	if existing, ok := findByID(held, entityType.ID); ok && models.IsDefaultSlug(existing.Slug) {
		return ErrDefaultTypeNotDeletable
	}

	if err := r.adapter.DeleteEntityType(ctx, entityType.ID); err != nil {
		log.Err(err).Str("type_id", entityType.ID).Msg("error deleting entity type")
		return fmt.Errorf("delete entity type: %w", mapAdapterError(err))
	}

	r.invalidate(ctx,
		entityTypesInvalidator(r.cache),
		entitiesInvalidator(r.cache, entityType.ID),
	)

	return nil
}

// fetch returns the held types, from cache when present.
func (r *schemaRegistry) fetch(ctx context.Context) ([]models.EntityType, error) {
	log := r.logger.With().Str("func", "*schemaRegistry.fetch").Logger()

	cached, ok, err := r.cache.GetEntityTypes(ctx)
	if err != nil {
		log.Warn().Err(err).Msg("ignoring unreadable cached entity types")
	}
	if ok {
		return cached, nil
	}

	types, err := r.adapter.ListEntityTypes(ctx)
	if err != nil {
		log.Err(err).Msg("error listing entity types")
		return nil, fmt.Errorf("list entity types: %w", mapAdapterError(err))
	}

	if err := r.cache.SaveEntityTypes(ctx, types); err != nil {
		log.Warn().Err(err).Msg("error caching entity types")
	}

	return types, nil
}

func (r *schemaRegistry) invalidate(ctx context.Context, invalidators ...func(context.Context) error) {
	for _, invalidate := range invalidators {
		if err := invalidate(ctx); err != nil {
			r.logger.Warn().Err(err).Str("func", "*schemaRegistry.invalidate").Msg("error invalidating cache")
		}
	}
}

func entityTypesInvalidator(cache store.ListingCache) func(context.Context) error {
	return cache.InvalidateEntityTypes
}

func entitiesInvalidator(cache store.ListingCache, typeID string) func(context.Context) error {
	return func(ctx context.Context) error {
		return cache.InvalidateEntities(ctx, typeID)
	}
}

// classify lists every default type first, in table order, then custom
// types in the order they were fetched.
func classify(types []models.EntityType) []models.EntityTypeEntry {
	entries := make([]models.EntityTypeEntry, 0, len(models.DefaultTypes)+len(types))

	for _, dt := range models.DefaultTypes {
		entityType, ok := findBySlug(types, dt.Slug)
		if !ok {
			entityType = models.EntityType{
				Name:   dt.Name,
				Slug:   dt.Slug,
				Fields: []models.FieldDefinition{},
			}
		}
		entries = append(entries, models.EntityTypeEntry{EntityType: entityType, Default: true})
	}

	for _, t := range types {
		if models.IsDefaultSlug(t.Slug) {
			continue
		}
		entries = append(entries, models.EntityTypeEntry{EntityType: t})
	}

	return entries
}

// normalizePayload trims identifiers of the payload and its fields.
func normalizePayload(p models.EntityTypePayload) models.EntityTypePayload {
	p.Name = strings.TrimSpace(p.Name)
	p.Slug = strings.TrimSpace(p.Slug)

	fields := make([]models.FieldDefinition, len(p.FieldSchema))
	for i, f := range p.FieldSchema {
		f.Key = strings.TrimSpace(f.Key)
		f.Label = strings.TrimSpace(f.Label)
		if !f.Type.HasOptions() {
			f.Options = nil
		}
		fields[i] = f
	}
	p.FieldSchema = fields

	return p
}

func findByID(types []models.EntityType, id string) (models.EntityType, bool) {
	if id == "" {
		return models.EntityType{}, false
	}
	for _, t := range types {
		if t.ID == id {
			return t, true
		}
	}
	return models.EntityType{}, false
}

func findBySlug(types []models.EntityType, slug string) (models.EntityType, bool) {
	for _, t := range types {
		if t.Slug == slug {
			return t, true
		}
	}
	return models.EntityType{}, false
}
