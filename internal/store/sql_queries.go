// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"strings"

	sq "github.com/Masterminds/squirrel"
)

const (
	entityTypesTable  = "entity_types"
	entitiesTable     = "entities"
	listingCacheTable = "listing_cache"
)

var (
	entityTypeColumns = []string{"id", "name", "slug", "description", "field_schema", "created_at", "updated_at"}
	entityColumns     = []string{"id", "type_id", "name", "metadata", "created_at", "updated_at"}
)

// psql builds queries with $n placeholders for the pgx driver.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// sqlite builds queries with ? placeholders for the sqlite3 driver.
var sqlite = sq.StatementBuilder.PlaceholderFormat(sq.Question)

func returning(columns []string) string {
	return "RETURNING " + strings.Join(columns, ", ")
}

// ── Entity types ──

func buildSelectEntityTypesQuery() (string, []any, error) {
	return psql.
		Select(entityTypeColumns...).
		From(entityTypesTable).
		OrderBy("created_at", "name").
		ToSql()
}

func buildSelectEntityTypeQuery(id string) (string, []any, error) {
	return psql.
		Select(entityTypeColumns...).
		From(entityTypesTable).
		Where(sq.Eq{"id": id}).
		ToSql()
}

func buildInsertEntityTypeQuery(id, name, slug, description, fieldSchema string) (string, []any, error) {
	return psql.
		Insert(entityTypesTable).
		Columns("id", "name", "slug", "description", "field_schema").
		Values(id, name, slug, description, fieldSchema).
		Suffix(returning(entityTypeColumns)).
		ToSql()
}

func buildUpdateEntityTypeQuery(id, name, slug, description, fieldSchema string) (string, []any, error) {
	return psql.
		Update(entityTypesTable).
		Set("name", name).
		Set("slug", slug).
		Set("description", description).
		Set("field_schema", fieldSchema).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": id}).
		Suffix(returning(entityTypeColumns)).
		ToSql()
}

func buildDeleteEntityTypeQuery(id string) (string, []any, error) {
	return psql.
		Delete(entityTypesTable).
		Where(sq.Eq{"id": id}).
		ToSql()
}

// ── Entities ──

func buildSelectEntitiesQuery(typeID string) (string, []any, error) {
	return psql.
		Select(entityColumns...).
		From(entitiesTable).
		Where(sq.Eq{"type_id": typeID}).
		OrderBy("created_at", "name").
		ToSql()
}

func buildSelectEntityQuery(id string) (string, []any, error) {
	return psql.
		Select(entityColumns...).
		From(entitiesTable).
		Where(sq.Eq{"id": id}).
		ToSql()
}

func buildInsertEntityQuery(id, typeID, name, metadata string) (string, []any, error) {
	return psql.
		Insert(entitiesTable).
		Columns("id", "type_id", "name", "metadata").
		Values(id, typeID, name, metadata).
		Suffix(returning(entityColumns)).
		ToSql()
}

func buildUpdateEntityQuery(id, typeID, name, metadata string) (string, []any, error) {
	return psql.
		Update(entitiesTable).
		Set("type_id", typeID).
		Set("name", name).
		Set("metadata", metadata).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": id}).
		Suffix(returning(entityColumns)).
		ToSql()
}

func buildDeleteEntityQuery(id string) (string, []any, error) {
	return psql.
		Delete(entitiesTable).
		Where(sq.Eq{"id": id}).
		ToSql()
}

// ── Listing cache ──

func buildSelectListingQuery(scope string) (string, []any, error) {
	return sqlite.
		Select("payload").
		From(listingCacheTable).
		Where(sq.Eq{"scope": scope}).
		ToSql()
}

func buildUpsertListingQuery(scope, payload string, cachedAt int64) (string, []any, error) {
	return sqlite.
		Insert(listingCacheTable).
		Columns("scope", "payload", "cached_at").
		Values(scope, payload, cachedAt).
		Suffix("ON CONFLICT(scope) DO UPDATE SET payload = excluded.payload, cached_at = excluded.cached_at").
		ToSql()
}

func buildDeleteListingQuery(scope string) (string, []any, error) {
	return sqlite.
		Delete(listingCacheTable).
		Where(sq.Eq{"scope": scope}).
		ToSql()
}

func buildPurgeListingsQuery() (string, []any, error) {
	return sqlite.
		Delete(listingCacheTable).
		ToSql()
}
