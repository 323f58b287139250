// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/go-schema-keeper/internal/logger"
	"github.com/MKhiriev/go-schema-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

func newTestListingCache(t *testing.T) (*listingCache, sqlmock.Sqlmock) {
	db, mock := newTestDB(t)
	return &listingCache{
		db:     db,
		logger: logger.Nop(),
		now:    func() time.Time { return fixedNow },
	}, mock
}

func TestEntitiesScope(t *testing.T) {
	assert.Equal(t, "entities:t1", entitiesScope("t1"))
}

func TestListingCache_GetEntityTypes_Miss(t *testing.T) {
	cache, mock := newTestListingCache(t)
	mock.ExpectQuery(regexp.QuoteMeta("SELECT payload FROM listing_cache WHERE scope = ?")).
		WithArgs(entityTypesScope).
		WillReturnError(sql.ErrNoRows)

	types, ok, err := cache.GetEntityTypes(context.Background())
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Nil(t, types)
}

func TestListingCache_GetEntityTypes_Hit(t *testing.T) {
	cache, mock := newTestListingCache(t)
	mock.ExpectQuery("SELECT payload FROM listing_cache").
		WithArgs(entityTypesScope).
		WillReturnRows(sqlmock.NewRows([]string{"payload"}).
			AddRow(`[{"id":"t1","name":"Books","slug":"books","description":"","fieldSchema":[]}]`))

	types, ok, err := cache.GetEntityTypes(context.Background())
	require.NoError(t, err)
	assert.True(t, ok)
	require.Len(t, types, 1)
	assert.Equal(t, "books", types[0].Slug)
}

func TestListingCache_GetEntities_Corrupted(t *testing.T) {
	cache, mock := newTestListingCache(t)
	mock.ExpectQuery("SELECT payload FROM listing_cache").
		WithArgs("entities:t1").
		WillReturnRows(sqlmock.NewRows([]string{"payload"}).AddRow(`{`))

	_, ok, err := cache.GetEntities(context.Background(), "t1")
	assert.False(t, ok)
	assert.ErrorIs(t, err, ErrCorruptedCache)
}

func TestListingCache_SaveEntities(t *testing.T) {
	cache, mock := newTestListingCache(t)

	entities := []models.Entity{
		{ID: "e1", TypeID: "t1", Name: "Dune", Metadata: models.Metadata{"read": models.BoolValue(false)}},
	}

	mock.ExpectExec("INSERT INTO listing_cache").
		WithArgs("entities:t1", `[{"id":"e1","type_id":"t1","name":"Dune","metadata":{"read":false}}]`, fixedNow.Unix()).
		WillReturnResult(sqlmock.NewResult(1, 1))

	require.NoError(t, cache.SaveEntities(context.Background(), "t1", entities))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListingCache_SaveEntityTypes_NilIsEmptyArray(t *testing.T) {
	cache, mock := newTestListingCache(t)

	mock.ExpectExec("INSERT INTO listing_cache").
		WithArgs(entityTypesScope, "[]", fixedNow.Unix()).
		WillReturnResult(sqlmock.NewResult(1, 1))

	require.NoError(t, cache.SaveEntityTypes(context.Background(), nil))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListingCache_Invalidate(t *testing.T) {
	cache, mock := newTestListingCache(t)

	mock.ExpectExec("DELETE FROM listing_cache").
		WithArgs(entityTypesScope).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("DELETE FROM listing_cache").
		WithArgs("entities:t1").
		WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, cache.InvalidateEntityTypes(context.Background()))
	require.NoError(t, cache.InvalidateEntities(context.Background(), "t1"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListingCache_InvalidateError(t *testing.T) {
	cache, mock := newTestListingCache(t)
	mock.ExpectExec("DELETE FROM listing_cache").WillReturnError(errors.New("locked"))

	err := cache.InvalidateEntities(context.Background(), "t1")
	assert.ErrorIs(t, err, ErrExecutingStatement)
}

func TestPurgeListings(t *testing.T) {
	db, mock := newTestDB(t)
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM listing_cache")).
		WillReturnResult(sqlmock.NewResult(0, 3))

	require.NoError(t, purgeListings(context.Background(), db))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPurgeListings_Error(t *testing.T) {
	db, mock := newTestDB(t)
	mock.ExpectExec("DELETE FROM listing_cache").WillReturnError(errors.New("locked"))

	assert.ErrorIs(t, purgeListings(context.Background(), db), ErrExecutingStatement)
}
