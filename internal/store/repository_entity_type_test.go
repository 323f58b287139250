// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/go-schema-keeper/internal/logger"
	"github.com/MKhiriev/go-schema-keeper/models"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestDB(t *testing.T) (*DB, sqlmock.Sqlmock) {
	t.Helper()

	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	return &DB{
		DB:     conn,
		logger: logger.Nop(),
	}, mock
}

func newTestEntityTypeRepo(t *testing.T) (*entityTypeRepository, sqlmock.Sqlmock) {
	db, mock := newTestDB(t)
	return &entityTypeRepository{db: db, logger: logger.Nop()}, mock
}

func pgError(code string) error {
	return &pgconn.PgError{Code: code}
}

func entityTypeRows() *sqlmock.Rows {
	return sqlmock.NewRows(entityTypeColumns)
}

// ── List ──

func TestListEntityTypes_Success(t *testing.T) {
	repo, mock := newTestEntityTypeRepo(t)
	now := time.Now()

	rows := entityTypeRows().
		AddRow("t1", "Books", "books", "", []byte(`[{"key":"isbn","label":"ISBN","type":"text","required":true,"private":false}]`), now, now).
		AddRow("t2", "Skills", "skills", "d", []byte(`[]`), now, now)

	mock.ExpectQuery("SELECT (.+) FROM entity_types").WillReturnRows(rows)

	types, err := repo.ListEntityTypes(context.Background())
	require.NoError(t, err)
	require.Len(t, types, 2)

	assert.Equal(t, "books", types[0].Slug)
	require.Len(t, types[0].Fields, 1)
	assert.Equal(t, models.FieldDefinition{Key: "isbn", Label: "ISBN", Type: models.FieldText, Required: true}, types[0].Fields[0])
	assert.NotNil(t, types[1].Fields)
	assert.Empty(t, types[1].Fields)
	require.NotNil(t, types[0].CreatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListEntityTypes_Empty(t *testing.T) {
	repo, mock := newTestEntityTypeRepo(t)
	mock.ExpectQuery("SELECT (.+) FROM entity_types").WillReturnRows(entityTypeRows())

	types, err := repo.ListEntityTypes(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, types)
	assert.Empty(t, types)
}

func TestListEntityTypes_QueryError(t *testing.T) {
	repo, mock := newTestEntityTypeRepo(t)
	mock.ExpectQuery("SELECT (.+) FROM entity_types").WillReturnError(errors.New("boom"))

	_, err := repo.ListEntityTypes(context.Background())
	assert.ErrorIs(t, err, ErrExecutingQuery)
}

func TestListEntityTypes_CorruptedSchema(t *testing.T) {
	repo, mock := newTestEntityTypeRepo(t)
	now := time.Now()
	mock.ExpectQuery("SELECT (.+) FROM entity_types").
		WillReturnRows(entityTypeRows().AddRow("t1", "Books", "books", "", []byte(`{`), now, now))

	_, err := repo.ListEntityTypes(context.Background())
	assert.ErrorIs(t, err, ErrScanningRows)
	assert.ErrorIs(t, err, ErrEncodingColumn)
}

// ── Get ──

func TestGetEntityType_NotFound(t *testing.T) {
	repo, mock := newTestEntityTypeRepo(t)
	mock.ExpectQuery("SELECT (.+) FROM entity_types WHERE id").
		WithArgs("missing").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetEntityType(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrEntityTypeNotFound)
}

func TestGetEntityType_InvalidUUID(t *testing.T) {
	repo, mock := newTestEntityTypeRepo(t)
	mock.ExpectQuery("SELECT (.+) FROM entity_types WHERE id").
		WithArgs("not-a-uuid").
		WillReturnError(pgError(pgerrcode.InvalidTextRepresentation))

	_, err := repo.GetEntityType(context.Background(), "not-a-uuid")
	assert.ErrorIs(t, err, ErrEntityTypeNotFound)
}

// ── Create ──

func TestCreateEntityType_Success(t *testing.T) {
	repo, mock := newTestEntityTypeRepo(t)
	now := time.Now()

	entityType := models.EntityType{
		ID:   "t1",
		Name: "Books",
		Slug: "books",
		Fields: []models.FieldDefinition{
			{Key: "pages", Label: "Pages", Type: models.FieldNumber},
		},
	}
	schema := `[{"key":"pages","label":"Pages","type":"number","required":false,"private":false}]`

	mock.ExpectQuery("INSERT INTO entity_types").
		WithArgs("t1", "Books", "books", "", schema).
		WillReturnRows(entityTypeRows().AddRow("t1", "Books", "books", "", []byte(schema), now, now))

	created, err := repo.CreateEntityType(context.Background(), entityType)
	require.NoError(t, err)
	assert.Equal(t, "t1", created.ID)
	assert.Equal(t, entityType.Fields, created.Fields)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateEntityType_NilFieldsStoredAsEmptyArray(t *testing.T) {
	repo, mock := newTestEntityTypeRepo(t)
	now := time.Now()

	mock.ExpectQuery("INSERT INTO entity_types").
		WithArgs("t1", "Notes", "notes", "", "[]").
		WillReturnRows(entityTypeRows().AddRow("t1", "Notes", "notes", "", []byte(`[]`), now, now))

	_, err := repo.CreateEntityType(context.Background(), models.EntityType{ID: "t1", Name: "Notes", Slug: "notes"})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateEntityType_UniqueViolation(t *testing.T) {
	repo, mock := newTestEntityTypeRepo(t)

	mock.ExpectQuery("INSERT INTO entity_types").
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnError(pgError(pgerrcode.UniqueViolation))

	_, err := repo.CreateEntityType(context.Background(), models.EntityType{ID: "t1", Name: "Books", Slug: "books"})
	assert.ErrorIs(t, err, ErrSlugAlreadyExists)
}

func TestCreateEntityType_UnexpectedError(t *testing.T) {
	repo, mock := newTestEntityTypeRepo(t)

	mock.ExpectQuery("INSERT INTO entity_types").
		WillReturnError(pgError(pgerrcode.ConnectionFailure))

	_, err := repo.CreateEntityType(context.Background(), models.EntityType{ID: "t1", Name: "Books", Slug: "books"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unexpected DB error")
}

// ── Update ──

func TestUpdateEntityType_NotFound(t *testing.T) {
	repo, mock := newTestEntityTypeRepo(t)

	mock.ExpectQuery("UPDATE entity_types SET").
		WithArgs("Books", "books", "", "[]", "t1").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.UpdateEntityType(context.Background(), models.EntityType{ID: "t1", Name: "Books", Slug: "books"})
	assert.ErrorIs(t, err, ErrEntityTypeNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateEntityType_SlugTaken(t *testing.T) {
	repo, mock := newTestEntityTypeRepo(t)

	mock.ExpectQuery("UPDATE entity_types SET").
		WillReturnError(pgError(pgerrcode.UniqueViolation))

	_, err := repo.UpdateEntityType(context.Background(), models.EntityType{ID: "t1", Name: "Books", Slug: "skills"})
	assert.ErrorIs(t, err, ErrSlugAlreadyExists)
}

// ── Delete ──

func TestDeleteEntityType(t *testing.T) {
	tests := []struct {
		name     string
		affected int64
		wantErr  error
	}{
		{name: "deleted", affected: 1},
		{name: "missing", affected: 0, wantErr: ErrEntityTypeNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := newTestEntityTypeRepo(t)
			mock.ExpectExec("DELETE FROM entity_types WHERE id").
				WithArgs("t1").
				WillReturnResult(sqlmock.NewResult(0, tt.affected))

			err := repo.DeleteEntityType(context.Background(), "t1")
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
