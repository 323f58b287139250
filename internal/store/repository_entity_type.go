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

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

// entityTypeRepository is the PostgreSQL-backed implementation of
// [EntityTypeRepository]. The field list is kept in the jsonb column
// field_schema.
type entityTypeRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewEntityTypeRepository constructs an [EntityTypeRepository] backed by the
// provided database connection and logger.
func NewEntityTypeRepository(db *DB, logger *logger.Logger) EntityTypeRepository {
	logger.Debug().Msg("creating entity type repository")
	return &entityTypeRepository{
		db:     db,
		logger: logger,
	}
}

func (r *entityTypeRepository) ListEntityTypes(ctx context.Context) ([]models.EntityType, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectEntityTypesQuery()
	if err != nil {
		log.Err(err).Str("func", "*entityTypeRepository.ListEntityTypes").Msg("error building query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*entityTypeRepository.ListEntityTypes").Bool("retryable", isTransient(err)).Msg("error executing query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	types := make([]models.EntityType, 0)
	for rows.Next() {
		entityType, err := scanEntityType(rows)
		if err != nil {
			log.Err(err).Str("func", "*entityTypeRepository.ListEntityTypes").Msg("error scanning row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		types = append(types, entityType)
	}
	if err := rows.Err(); err != nil {
		log.Err(err).Str("func", "*entityTypeRepository.ListEntityTypes").Msg("error iterating rows")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return types, nil
}

func (r *entityTypeRepository) GetEntityType(ctx context.Context, id string) (models.EntityType, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectEntityTypeQuery(id)
	if err != nil {
		log.Err(err).Str("func", "*entityTypeRepository.GetEntityType").Msg("error building query")
		return models.EntityType{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	entityType, err := scanEntityType(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		log.Err(err).Str("func", "*entityTypeRepository.GetEntityType").Str("type_id", id).Msg("error getting entity type")
		return models.EntityType{}, entityTypeError(err)
	}

	return entityType, nil
}

func (r *entityTypeRepository) CreateEntityType(ctx context.Context, entityType models.EntityType) (models.EntityType, error) {
	log := logger.FromContext(ctx)

	fieldSchema, err := marshalFieldSchema(entityType.Fields)
	if err != nil {
		log.Err(err).Str("func", "*entityTypeRepository.CreateEntityType").Msg("error encoding field schema")
		return models.EntityType{}, err
	}

	query, args, err := buildInsertEntityTypeQuery(entityType.ID, entityType.Name, entityType.Slug, entityType.Description, fieldSchema)
	if err != nil {
		log.Err(err).Str("func", "*entityTypeRepository.CreateEntityType").Msg("error building query")
		return models.EntityType{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	created, err := scanEntityType(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		log.Err(err).Str("func", "*entityTypeRepository.CreateEntityType").Str("slug", entityType.Slug).Bool("retryable", isTransient(err)).Msg("error creating entity type")
		return models.EntityType{}, entityTypeError(err)
	}

	return created, nil
}

func (r *entityTypeRepository) UpdateEntityType(ctx context.Context, entityType models.EntityType) (models.EntityType, error) {
	log := logger.FromContext(ctx)

	fieldSchema, err := marshalFieldSchema(entityType.Fields)
	if err != nil {
		log.Err(err).Str("func", "*entityTypeRepository.UpdateEntityType").Msg("error encoding field schema")
		return models.EntityType{}, err
	}

	query, args, err := buildUpdateEntityTypeQuery(entityType.ID, entityType.Name, entityType.Slug, entityType.Description, fieldSchema)
	if err != nil {
		log.Err(err).Str("func", "*entityTypeRepository.UpdateEntityType").Msg("error building query")
		return models.EntityType{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	updated, err := scanEntityType(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		log.Err(err).Str("func", "*entityTypeRepository.UpdateEntityType").Str("type_id", entityType.ID).Bool("retryable", isTransient(err)).Msg("error updating entity type")
		return models.EntityType{}, entityTypeError(err)
	}

	return updated, nil
}

func (r *entityTypeRepository) DeleteEntityType(ctx context.Context, id string) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteEntityTypeQuery(id)
	if err != nil {
		log.Err(err).Str("func", "*entityTypeRepository.DeleteEntityType").Msg("error building query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*entityTypeRepository.DeleteEntityType").Str("type_id", id).Msg("error deleting entity type")
		return entityTypeError(err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrEntityTypeNotFound
	}

	return nil
}

// entityTypeError maps driver errors of entity_types statements to domain
// sentinels.
func entityTypeError(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return ErrEntityTypeNotFound
	}
	if errors.Is(err, ErrEncodingColumn) {
		return err
	}

	return entityTypeErrors.translate(err)
}

func scanEntityType(row rowScanner) (models.EntityType, error) {
	var (
		entityType           models.EntityType
		fieldSchema          []byte
		createdAt, updatedAt time.Time
	)

	err := row.Scan(
		&entityType.ID,
		&entityType.Name,
		&entityType.Slug,
		&entityType.Description,
		&fieldSchema,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return models.EntityType{}, err
	}

	entityType.Fields = []models.FieldDefinition{}
	if len(fieldSchema) > 0 {
		if err := json.Unmarshal(fieldSchema, &entityType.Fields); err != nil {
			return models.EntityType{}, fmt.Errorf("%w: %w", ErrEncodingColumn, err)
		}
	}
	entityType.CreatedAt = &createdAt
	entityType.UpdatedAt = &updatedAt

	return entityType, nil
}

func marshalFieldSchema(fields []models.FieldDefinition) (string, error) {
	if fields == nil {
		fields = []models.FieldDefinition{}
	}
	data, err := json.Marshal(fields)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrEncodingColumn, err)
	}
	return string(data), nil
}
