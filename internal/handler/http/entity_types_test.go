package http

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MKhiriev/go-schema-keeper/internal/app"
	"github.com/MKhiriev/go-schema-keeper/internal/service"
	"github.com/MKhiriev/go-schema-keeper/internal/store"
	"github.com/MKhiriev/go-schema-keeper/internal/validators"
	"github.com/MKhiriev/go-schema-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestListEntityTypes_EnvelopedData(t *testing.T) {
	router, m := newTestRouter(t)
	m.types.EXPECT().List(gomock.Any()).Return([]models.EntityType{
		{ID: "t1", Name: "Books", Slug: "books", Fields: []models.FieldDefinition{}},
	}, nil)

	rec := serve(router, httptest.NewRequest(http.MethodGet, "/api/entity-types", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	body := decodeBody[models.ListResponse[models.EntityType]](t, rec.Body)
	require.Len(t, body.Data, 1)
	assert.Equal(t, "books", body.Data[0].Slug)
}

func TestListEntityTypes_NilBecomesEmptyArray(t *testing.T) {
	router, m := newTestRouter(t)
	m.types.EXPECT().List(gomock.Any()).Return(nil, nil)

	rec := serve(router, httptest.NewRequest(http.MethodGet, "/api/entity-types", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"data":[]}`, rec.Body.String())
}

func TestCreateEntityType(t *testing.T) {
	router, m := newTestRouter(t)

	payload := models.EntityTypePayload{
		Name: "Books",
		Slug: "books",
		FieldSchema: []models.FieldDefinition{
			{Key: "isbn", Label: "ISBN", Type: models.FieldText},
		},
	}
	m.types.EXPECT().Create(gomock.Any(), payload).
		Return(models.EntityType{ID: "t1", Name: "Books", Slug: "books", Fields: payload.FieldSchema}, nil)

	rec := serve(router, jsonRequest(t, http.MethodPost, "/api/entity-types", payload))

	require.Equal(t, http.StatusCreated, rec.Code)
	created := decodeBody[models.EntityType](t, rec.Body)
	assert.Equal(t, "t1", created.ID)
	assert.Equal(t, payload.FieldSchema, created.Fields)
}

func TestCreateEntityType_Errors(t *testing.T) {
	tests := []struct {
		name       string
		serviceErr error
		wantStatus int
		wantError  string
	}{
		{
			name:       "validation",
			serviceErr: fmt.Errorf("%w: %w", service.ErrInvalidDataProvided, validators.ErrEmptyTypeSlug),
			wantStatus: http.StatusBadRequest,
			wantError:  app.MsgInvalidDataProvided,
		},
		{
			name:       "slug taken",
			serviceErr: store.ErrSlugAlreadyExists,
			wantStatus: http.StatusConflict,
			wantError:  store.ErrSlugAlreadyExists.Error(),
		},
		{
			name:       "database failure hides details",
			serviceErr: store.ErrExecutingQuery,
			wantStatus: http.StatusInternalServerError,
			wantError:  app.MsgInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, m := newTestRouter(t)
			m.types.EXPECT().Create(gomock.Any(), gomock.Any()).Return(models.EntityType{}, tt.serviceErr)

			rec := serve(router, jsonRequest(t, http.MethodPost, "/api/entity-types", models.EntityTypePayload{Name: "Books"}))

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantError, decodeBody[models.ErrorResponse](t, rec.Body).Error)
		})
	}
}

func TestCreateEntityType_InvalidJSON(t *testing.T) {
	router, _ := newTestRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/api/entity-types", strings.NewReader("{broken"))
	rec := serve(router, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, app.MsgInvalidDataProvided, decodeBody[models.ErrorResponse](t, rec.Body).Error)
}

func TestUpdateEntityType_UsesPathID(t *testing.T) {
	router, m := newTestRouter(t)

	payload := models.EntityTypePayload{Name: "Books", Slug: "books"}
	m.types.EXPECT().Update(gomock.Any(), "t1", payload).Return(models.EntityType{ID: "t1"}, nil)

	rec := serve(router, jsonRequest(t, http.MethodPut, "/api/entity-types/t1", payload))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestUpdateEntityType_NotFound(t *testing.T) {
	router, m := newTestRouter(t)
	m.types.EXPECT().Update(gomock.Any(), "t9", gomock.Any()).Return(models.EntityType{}, store.ErrEntityTypeNotFound)

	rec := serve(router, jsonRequest(t, http.MethodPut, "/api/entity-types/t9", models.EntityTypePayload{}))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, store.ErrEntityTypeNotFound.Error(), decodeBody[models.ErrorResponse](t, rec.Body).Error)
}

func TestDeleteEntityType(t *testing.T) {
	tests := []struct {
		name       string
		serviceErr error
		wantStatus int
	}{
		{name: "deleted", serviceErr: nil, wantStatus: http.StatusNoContent},
		{name: "missing", serviceErr: store.ErrEntityTypeNotFound, wantStatus: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, m := newTestRouter(t)
			m.types.EXPECT().Delete(gomock.Any(), "t1").Return(tt.serviceErr)

			rec := serve(router, httptest.NewRequest(http.MethodDelete, "/api/entity-types/t1", nil))

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}
