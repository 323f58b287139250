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
	"github.com/jackc/pgerrcode"
)

// entityRepository is the PostgreSQL-backed implementation of
// [EntityRepository]. Metadata is stored as a jsonb object.
type entityRepository struct {
	logger *logger.Logger
	db     *DB
}

func NewEntityRepository(db *DB, logger *logger.Logger) EntityRepository {
	logger.Debug().Msg("creating entity repository")
	return &entityRepository{
		db:     db,
		logger: logger,
	}
}

func (r *entityRepository) ListEntities(ctx context.Context, typeID string) ([]models.Entity, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectEntitiesQuery(typeID)
	if err != nil {
		log.Err(err).Str("func", "*entityRepository.ListEntities").Msg("error building query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*entityRepository.ListEntities").Str("type_id", typeID).Bool("retryable", isTransient(err)).Msg("error executing query")
		if postgresError(err) == pgerrcode.InvalidTextRepresentation {
			return []models.Entity{}, nil
		}
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	entities := make([]models.Entity, 0)
	for rows.Next() {
		entity, err := scanEntity(rows)
		if err != nil {
			log.Err(err).Str("func", "*entityRepository.ListEntities").Msg("error scanning row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		entities = append(entities, entity)
	}
	if err := rows.Err(); err != nil {
		log.Err(err).Str("func", "*entityRepository.ListEntities").Msg("error iterating rows")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return entities, nil
}

func (r *entityRepository) GetEntity(ctx context.Context, id string) (models.Entity, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectEntityQuery(id)
	if err != nil {
		log.Err(err).Str("func", "*entityRepository.GetEntity").Msg("error building query")
		return models.Entity{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	entity, err := scanEntity(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		log.Err(err).Str("func", "*entityRepository.GetEntity").Str("entity_id", id).Msg("error getting entity")
		return models.Entity{}, entityError(err)
	}

	return entity, nil
}

func (r *entityRepository) CreateEntity(ctx context.Context, entity models.Entity) (models.Entity, error) {
	log := logger.FromContext(ctx)

	metadata, err := marshalMetadata(entity.Metadata)
	if err != nil {
		log.Err(err).Str("func", "*entityRepository.CreateEntity").Msg("error encoding metadata")
		return models.Entity{}, err
	}

	query, args, err := buildInsertEntityQuery(entity.ID, entity.TypeID, entity.Name, metadata)
	if err != nil {
		log.Err(err).Str("func", "*entityRepository.CreateEntity").Msg("error building query")
		return models.Entity{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	created, err := scanEntity(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		log.Err(err).Str("func", "*entityRepository.CreateEntity").Str("type_id", entity.TypeID).Bool("retryable", isTransient(err)).Msg("error creating entity")
		return models.Entity{}, entityError(err)
	}

	return created, nil
}

func (r *entityRepository) UpdateEntity(ctx context.Context, entity models.Entity) (models.Entity, error) {
	log := logger.FromContext(ctx)

	metadata, err := marshalMetadata(entity.Metadata)
	if err != nil {
		log.Err(err).Str("func", "*entityRepository.UpdateEntity").Msg("error encoding metadata")
		return models.Entity{}, err
	}

	query, args, err := buildUpdateEntityQuery(entity.ID, entity.TypeID, entity.Name, metadata)
	if err != nil {
		log.Err(err).Str("func", "*entityRepository.UpdateEntity").Msg("error building query")
		return models.Entity{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	updated, err := scanEntity(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		log.Err(err).Str("func", "*entityRepository.UpdateEntity").Str("entity_id", entity.ID).Bool("retryable", isTransient(err)).Msg("error updating entity")
		return models.Entity{}, entityError(err)
	}

	return updated, nil
}

func (r *entityRepository) DeleteEntity(ctx context.Context, id string) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteEntityQuery(id)
	if err != nil {
		log.Err(err).Str("func", "*entityRepository.DeleteEntity").Msg("error building query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*entityRepository.DeleteEntity").Str("entity_id", id).Msg("error deleting entity")
		return entityError(err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrEntityNotFound
	}

	return nil
}

// entityError maps driver errors of entities statements to domain sentinels.
func entityError(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return ErrEntityNotFound
	}
	if errors.Is(err, ErrEncodingColumn) {
		return err
	}

	return entityErrors.translate(err)
}

func scanEntity(row rowScanner) (models.Entity, error) {
	var (
		entity               models.Entity
		metadata             []byte
		createdAt, updatedAt time.Time
	)

	err := row.Scan(
		&entity.ID,
		&entity.TypeID,
		&entity.Name,
		&metadata,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return models.Entity{}, err
	}

	entity.Metadata = models.Metadata{}
	if len(metadata) > 0 {
		if err := json.Unmarshal(metadata, &entity.Metadata); err != nil {
			return models.Entity{}, fmt.Errorf("%w: %w", ErrEncodingColumn, err)
		}
		if entity.Metadata == nil {
			entity.Metadata = models.Metadata{}
		}
	}
	entity.CreatedAt = &createdAt
	entity.UpdatedAt = &updatedAt

	return entity, nil
}

func marshalMetadata(metadata models.Metadata) (string, error) {
	if metadata == nil {
		metadata = models.Metadata{}
	}
	data, err := json.Marshal(metadata)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrEncodingColumn, err)
	}
	return string(data), nil
}
