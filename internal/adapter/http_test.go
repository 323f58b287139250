// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MKhiriev/go-schema-keeper/internal/config"
	"github.com/MKhiriev/go-schema-keeper/internal/envelope"
	"github.com/MKhiriev/go-schema-keeper/internal/logger"
	"github.com/MKhiriev/go-schema-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestAdapter создаёт httpServerAdapter, направленный на тестовый сервер
func newTestAdapter(t *testing.T, serverURL string) ServerAdapter {
	t.Helper()
	adapterCfg := config.ClientAdapter{HTTPAddress: serverURL, RequestTimeout: 5 * time.Second}

	a, err := NewHTTPServerAdapter(adapterCfg, logger.Nop())
	require.NoError(t, err)
	return a
}

func TestNewHTTPServerAdapter_InvalidAddress(t *testing.T) {
	_, err := NewHTTPServerAdapter(config.ClientAdapter{HTTPAddress: "  "}, logger.Nop())
	assert.Error(t, err)
}

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{in: "localhost:8080", want: "http://localhost:8080"},
		{in: "https://store.example.com/", want: "https://store.example.com"},
		{in: "", wantErr: true},
		{in: "http://", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := normalizeBaseURL(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

// ── Entity types ────────────────────────────────────────────────────────────

func TestListEntityTypes_Shapes(t *testing.T) {
	tests := []struct {
		name string
		body string
		want int
	}{
		{name: "bare array", body: `[{"id":"1","name":"Books","slug":"books","fieldSchema":[]}]`, want: 1},
		{name: "data wrapper", body: `{"data":[{"id":"1"},{"id":"2"}]}`, want: 2},
		{name: "empty array", body: `[]`, want: 0},
		{name: "unexpected object", body: `{"items":[{"id":"1"}]}`, want: 0},
		{name: "scalar", body: `"nope"`, want: 0},
		{name: "empty body", body: ``, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, http.MethodGet, r.Method)
				assert.Equal(t, "/api/entity-types", r.URL.Path)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			got, err := newTestAdapter(t, srv.URL).ListEntityTypes(context.Background())
			require.NoError(t, err)
			assert.NotNil(t, got)
			assert.Len(t, got, tt.want)
		})
	}
}

func TestCreateEntityType(t *testing.T) {
	payload := models.EntityType{
		Name:   "Certifications",
		Slug:   "certifications",
		Fields: []models.FieldDefinition{{Key: "issuer", Label: "Issuer", Type: models.FieldText, Required: true}},
	}.Payload()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/entity-types", r.URL.Path)
		assert.Contains(t, r.Header.Get("Content-Type"), "application/json")

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "certifications", body["slug"])
		assert.Contains(t, body, "fieldSchema")

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"id":"t1","name":"Certifications","slug":"certifications","fieldSchema":[{"key":"issuer","label":"Issuer","type":"text","required":true}]}`))
	}))
	defer srv.Close()

	got, err := newTestAdapter(t, srv.URL).CreateEntityType(context.Background(), payload)
	require.NoError(t, err)
	assert.Equal(t, "t1", got.ID)
	require.Len(t, got.Fields, 1)
	assert.True(t, got.Fields[0].Required)
}

func TestUpdateEntityType_Conflict(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/api/entity-types/t1", r.URL.Path)
		w.WriteHeader(http.StatusConflict)
		_, _ = w.Write([]byte(`{"error":"slug already exists"}`))
	}))
	defer srv.Close()

	_, err := newTestAdapter(t, srv.URL).UpdateEntityType(context.Background(), "t1", models.EntityTypePayload{})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrConflict)
	assert.Contains(t, err.Error(), "slug already exists")
}

func TestDeleteEntityType(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/api/entity-types/t9", r.URL.Path)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	assert.NoError(t, newTestAdapter(t, srv.URL).DeleteEntityType(context.Background(), "t9"))
}

// ── Entities ────────────────────────────────────────────────────────────────

func TestListEntities_ScopedByType(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/entities", r.URL.Path)
		assert.Equal(t, "t1", r.URL.Query().Get("type_id"))
		_, _ = w.Write([]byte(`{"data":[{"id":"e1","type_id":"t1","name":"AWS SA","metadata":{"issuer":"Amazon","year":2023,"tags":["a","b"]}}]}`))
	}))
	defer srv.Close()

	got, err := newTestAdapter(t, srv.URL).ListEntities(context.Background(), "t1")
	require.NoError(t, err)
	require.Len(t, got, 1)

	e := got[0]
	assert.Equal(t, "t1", e.TypeID)
	assert.Equal(t, models.TextValue("Amazon"), e.Metadata["issuer"])
	assert.Equal(t, models.NumberValue(2023), e.Metadata["year"])
	assert.Equal(t, models.ListValue([]string{"a", "b"}), e.Metadata["tags"])
}

func TestCreateEntity_Multipart(t *testing.T) {
	logo := models.Blob{FileName: "logo.png", ContentType: "image/png", Data: []byte("PNGDATA")}
	env, err := envelope.EncodeEntity("t1", "AWS SA", models.Metadata{
		"issuer": models.TextValue("Amazon"),
		"logo":   models.BlobValue(logo),
		"pages":  models.BlobValue(logo, logo),
	})
	require.NoError(t, err)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/entities", r.URL.Path)
		require.NoError(t, r.ParseMultipartForm(1<<20))

		assert.Equal(t, []string{"t1"}, r.MultipartForm.Value["type_id"])
		assert.Equal(t, []string{"AWS SA"}, r.MultipartForm.Value["name"])
		assert.Equal(t, []string{"Amazon"}, r.MultipartForm.Value["metadata.issuer"])

		files := r.MultipartForm.File["metadata.logo"]
		require.Len(t, files, 1)
		assert.Equal(t, "logo.png", files[0].Filename)
		assert.Equal(t, "image/png", files[0].Header.Get("Content-Type"))
		f, err := files[0].Open()
		require.NoError(t, err)
		data, _ := io.ReadAll(f)
		_ = f.Close()
		assert.Equal(t, "PNGDATA", string(data))

		assert.Len(t, r.MultipartForm.File["metadata.pages"], 2)

		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"id":"e1","type_id":"t1","name":"AWS SA","metadata":{"issuer":"Amazon","logo":"/api/files/x.png"}}`))
	}))
	defer srv.Close()

	got, err := newTestAdapter(t, srv.URL).CreateEntity(context.Background(), env)
	require.NoError(t, err)
	assert.Equal(t, "e1", got.ID)
	assert.Equal(t, models.TextValue("/api/files/x.png"), got.Metadata["logo"])
}

func TestCreateEntity_TextOnlyPartsKeepOrder(t *testing.T) {
	var env envelope.Envelope
	env.AddText("type_id", "t1")
	env.AddText("name", "AWS SA")
	env.AddText("metadata.issuer", "Amazon")
	env.AddText("metadata.note", "first")
	env.AddText("metadata.note", "second")

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Contains(t, r.Header.Get("Content-Type"), "multipart/form-data")

		reader, err := r.MultipartReader()
		require.NoError(t, err)

		var got [][2]string
		for {
			part, err := reader.NextPart()
			if errors.Is(err, io.EOF) {
				break
			}
			require.NoError(t, err)
			assert.Empty(t, part.FileName())
			data, err := io.ReadAll(part)
			require.NoError(t, err)
			got = append(got, [2]string{part.FormName(), string(data)})
		}

		assert.Equal(t, [][2]string{
			{"type_id", "t1"},
			{"name", "AWS SA"},
			{"metadata.issuer", "Amazon"},
			{"metadata.note", "first"},
			{"metadata.note", "second"},
		}, got)

		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"id":"e1","type_id":"t1","name":"AWS SA"}`))
	}))
	defer srv.Close()

	got, err := newTestAdapter(t, srv.URL).CreateEntity(context.Background(), env)
	require.NoError(t, err)
	assert.Equal(t, "e1", got.ID)
}

func TestUpdateEntity_TextOnlyIsStillMultipart(t *testing.T) {
	env, err := envelope.EncodeEntity("t1", "Renamed", models.Metadata{
		"tags": models.ListValue([]string{"a", "b"}),
	})
	require.NoError(t, err)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/api/entities/e1", r.URL.Path)
		assert.Contains(t, r.Header.Get("Content-Type"), "multipart/form-data")
		require.NoError(t, r.ParseMultipartForm(1<<20))
		assert.Equal(t, []string{`["a","b"]`}, r.MultipartForm.Value["metadata.tags"])

		_, _ = w.Write([]byte(`{"id":"e1","type_id":"t1","name":"Renamed"}`))
	}))
	defer srv.Close()

	got, err := newTestAdapter(t, srv.URL).UpdateEntity(context.Background(), "e1", env)
	require.NoError(t, err)
	assert.Equal(t, "Renamed", got.Name)
}

func TestDeleteEntity_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/entities/e404", r.URL.Path)
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"message":"entity not found"}`))
	}))
	defer srv.Close()

	err := newTestAdapter(t, srv.URL).DeleteEntity(context.Background(), "e404")
	require.ErrorIs(t, err, ErrNotFound)
	assert.Contains(t, err.Error(), "entity not found")
}

func TestVersion(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/version", r.URL.Path)
		_, _ = w.Write([]byte("1.4.0\n"))
	}))
	defer srv.Close()

	got, err := newTestAdapter(t, srv.URL).Version(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "1.4.0", got)
}

func TestRequest_TransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	a := newTestAdapter(t, srv.URL)
	srv.Close()

	_, err := a.ListEntityTypes(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "list entity types request")
}
