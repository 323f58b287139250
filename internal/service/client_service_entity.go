// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-schema-keeper/internal/adapter"
	"github.com/MKhiriev/go-schema-keeper/internal/codec"
	"github.com/MKhiriev/go-schema-keeper/internal/envelope"
	"github.com/MKhiriev/go-schema-keeper/internal/logger"
	"github.com/MKhiriev/go-schema-keeper/internal/store"
	"github.com/MKhiriev/go-schema-keeper/internal/validators"
	"github.com/MKhiriev/go-schema-keeper/models"
)

type entityStore struct {
	adapter   adapter.ServerAdapter
	cache     store.ListingCache
	registry  SchemaRegistry
	validator validators.Validator
	logger    *logger.Logger
}

func NewEntityStore(storages *store.ClientStorages, serverAdapter adapter.ServerAdapter, registry SchemaRegistry, logger *logger.Logger) EntityStore {
	return &entityStore{
		adapter:   serverAdapter,
		cache:     storages.ListingCache,
		registry:  registry,
		validator: validators.NewEntityValidator(),
		logger:    logger,
	}
}

func (s *entityStore) List(ctx context.Context, typeID string) ([]models.Entity, error) {
	if err := s.validator.Validate(ctx, models.EntityDraft{TypeID: typeID}, validators.FieldTypeID); err != nil {
		return nil, fmt.Errorf("list entities: %w", err)
	}

	cached, ok, err := s.cache.GetEntities(ctx, typeID)
	if err != nil {
		s.logger.Warn().Err(err).Str("func", "*entityStore.List").Str("type_id", typeID).Msg("ignoring unreadable cached entities")
	}
	if ok {
		return cached, nil
	}

	entities, err := s.adapter.ListEntities(ctx, typeID)
	if err != nil {
		s.logger.Err(err).Str("func", "*entityStore.List").Str("type_id", typeID).Msg("error listing entities")
		return nil, fmt.Errorf("list entities: %w", mapAdapterError(err))
	}

	if err := s.cache.SaveEntities(ctx, typeID, entities); err != nil {
		s.logger.Warn().Err(err).Str("func", "*entityStore.List").Str("type_id", typeID).Msg("error caching entities")
	}

	return entities, nil
}

func (s *entityStore) Create(ctx context.Context, draft models.EntityDraft) (models.Entity, error) {
	if err := s.validator.Validate(ctx, draft); err != nil {
		return models.Entity{}, fmt.Errorf("entity validation failed: %w", err)
	}

	env, err := s.encode(ctx, draft)
	if err != nil {
		return models.Entity{}, err
	}

	created, err := s.adapter.CreateEntity(ctx, env)
	if err != nil {
		s.logger.Err(err).Str("func", "*entityStore.Create").Str("type_id", draft.TypeID).Msg("error creating entity")
		return models.Entity{}, fmt.Errorf("create entity: %w", mapAdapterError(err))
	}

	s.invalidate(ctx, draft.TypeID)

	return created, nil
}

func (s *entityStore) Update(ctx context.Context, id string, draft models.EntityDraft) (models.Entity, error) {
	entity := models.Entity{ID: id, TypeID: draft.TypeID, Name: draft.Name}
	if err := s.validator.Validate(ctx, entity, validators.FieldID, validators.FieldName, validators.FieldTypeID); err != nil {
		return models.Entity{}, fmt.Errorf("entity validation failed: %w", err)
	}

	env, err := s.encode(ctx, draft)
	if err != nil {
		return models.Entity{}, err
	}

	updated, err := s.adapter.UpdateEntity(ctx, id, env)
	if err != nil {
		s.logger.Err(err).Str("func", "*entityStore.Update").Str("entity_id", id).Msg("error updating entity")
		return models.Entity{}, fmt.Errorf("update entity: %w", mapAdapterError(err))
	}

	s.invalidate(ctx, draft.TypeID)

	return updated, nil
}

func (s *entityStore) Delete(ctx context.Context, id, typeID string) error {
	entity := models.Entity{ID: id, TypeID: typeID}
	if err := s.validator.Validate(ctx, entity, validators.FieldID, validators.FieldTypeID); err != nil {
		return fmt.Errorf("entity validation failed: %w", err)
	}

	if err := s.adapter.DeleteEntity(ctx, id); err != nil {
		s.logger.Err(err).Str("func", "*entityStore.Delete").Str("entity_id", id).Msg("error deleting entity")
		return fmt.Errorf("delete entity: %w", mapAdapterError(err))
	}

	s.invalidate(ctx, typeID)

	return nil
}

// encode validates every field against the owning type and flattens the
// merged metadata into the transport envelope.
func (s *entityStore) encode(ctx context.Context, draft models.EntityDraft) (envelope.Envelope, error) {
	entityType, err := s.schemaFor(ctx, draft)
	if err != nil {
		return envelope.Envelope{}, err
	}

	metadata, err := mergeMetadata(entityType.Fields, draft)
	if err != nil {
		return envelope.Envelope{}, err
	}

	order := make([]string, 0, len(entityType.Fields))
	for _, def := range entityType.Fields {
		order = append(order, def.Key)
	}

	env, err := envelope.EncodeEntity(draft.TypeID, strings.TrimSpace(draft.Name), metadata, order...)
	if err != nil {
		return envelope.Envelope{}, fmt.Errorf("encode entity: %w", err)
	}

	return env, nil
}

// schemaFor prefers the schema carried by the draft. Otherwise the registry
// resolves it, which may read the type listing from the store.
func (s *entityStore) schemaFor(ctx context.Context, draft models.EntityDraft) (models.EntityType, error) {
	if draft.Schema != nil && draft.Schema.ID == draft.TypeID {
		return *draft.Schema, nil
	}
	return s.registry.Resolve(ctx, draft.TypeID)
}

func (s *entityStore) invalidate(ctx context.Context, typeID string) {
	if err := s.cache.InvalidateEntities(ctx, typeID); err != nil {
		s.logger.Warn().Err(err).Str("func", "*entityStore.invalidate").Str("type_id", typeID).Msg("error invalidating cache")
	}
}

// mergeMetadata validates schema-bound values and lays them over the loose
// metadata. A key declared by the schema is never taken from loose metadata.
func mergeMetadata(defs []models.FieldDefinition, draft models.EntityDraft) (models.Metadata, error) {
	if err := codec.ValidateAll(defs, draft.Metadata); err != nil {
		return nil, fmt.Errorf("entity validation failed: %w", err)
	}

	loose, err := envelope.DecodeLoose(draft.LooseMetadata)
	if err != nil {
		return nil, fmt.Errorf("entity validation failed: %w", err)
	}

	merged := loose.Clone()
	for _, def := range defs {
		delete(merged, def.Key)
		if v, ok := draft.Metadata[def.Key]; ok {
			merged[def.Key] = codec.Normalize(def, v)
		}
	}

	return merged, nil
}
