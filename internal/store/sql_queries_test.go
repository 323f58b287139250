// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_buildSelectEntityTypesQuery(t *testing.T) {
	query, args, err := buildSelectEntityTypesQuery()
	require.NoError(t, err)
	assert.Empty(t, args)

	q := strings.ToLower(query)
	assert.Contains(t, q, "from entity_types")
	assert.Contains(t, q, "order by created_at, name")
	for _, col := range entityTypeColumns {
		assert.Contains(t, q, col)
	}
}

func Test_buildInsertEntityTypeQuery(t *testing.T) {
	query, args, err := buildInsertEntityTypeQuery("id-1", "Books", "books", "", `[]`)
	require.NoError(t, err)

	assert.Equal(t, []any{"id-1", "Books", "books", "", `[]`}, args)
	assert.Contains(t, query, "INSERT INTO entity_types")
	assert.Contains(t, query, "VALUES ($1,$2,$3,$4,$5)")
	assert.Contains(t, query, "RETURNING id, name, slug, description, field_schema, created_at, updated_at")
}

func Test_buildUpdateEntityTypeQuery(t *testing.T) {
	query, args, err := buildUpdateEntityTypeQuery("id-1", "Books", "books", "desc", `[]`)
	require.NoError(t, err)

	// id goes last: it belongs to the WHERE clause
	assert.Equal(t, []any{"Books", "books", "desc", `[]`, "id-1"}, args)
	assert.Contains(t, query, "UPDATE entity_types SET")
	assert.Contains(t, query, "updated_at = now()")
	assert.Contains(t, query, "WHERE id = $5")
}

func Test_buildSelectEntitiesQuery(t *testing.T) {
	query, args, err := buildSelectEntitiesQuery("type-1")
	require.NoError(t, err)

	assert.Equal(t, []any{"type-1"}, args)
	assert.Contains(t, query, "FROM entities")
	assert.Contains(t, query, "WHERE type_id = $1")
}

func Test_buildDeleteQueries(t *testing.T) {
	tests := []struct {
		name  string
		build func(string) (string, []any, error)
		want  string
	}{
		{name: "entity type", build: buildDeleteEntityTypeQuery, want: "DELETE FROM entity_types WHERE id = $1"},
		{name: "entity", build: buildDeleteEntityQuery, want: "DELETE FROM entities WHERE id = $1"},
		{name: "listing", build: buildDeleteListingQuery, want: "DELETE FROM listing_cache WHERE scope = ?"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, args, err := tt.build("x")
			require.NoError(t, err)
			assert.Equal(t, tt.want, query)
			assert.Equal(t, []any{"x"}, args)
		})
	}
}

func Test_buildUpsertListingQuery(t *testing.T) {
	query, args, err := buildUpsertListingQuery("entity_types", "[]", 42)
	require.NoError(t, err)

	assert.Equal(t, []any{"entity_types", "[]", int64(42)}, args)
	assert.Contains(t, query, "VALUES (?,?,?)")
	assert.Contains(t, query, "ON CONFLICT(scope) DO UPDATE")
	assert.NotContains(t, query, "$1")
}

func Test_buildPurgeListingsQuery(t *testing.T) {
	query, args, err := buildPurgeListingsQuery()
	require.NoError(t, err)

	assert.Equal(t, "DELETE FROM listing_cache", query)
	assert.Empty(t, args)
}
