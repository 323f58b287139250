package http

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"

	"github.com/MKhiriev/go-schema-keeper/internal/logger"
	"github.com/MKhiriev/go-schema-keeper/internal/mock"
	"github.com/MKhiriev/go-schema-keeper/internal/service"
	"github.com/MKhiriev/go-schema-keeper/internal/store"
	"github.com/MKhiriev/go-schema-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

type serviceMocks struct {
	types    *mock.MockEntityTypeService
	entities *mock.MockEntityService
	files    *mock.MockFileService
	appInfo  *mock.MockAppInfoService
}

func newTestRouter(t *testing.T) (http.Handler, serviceMocks) {
	t.Helper()

	ctrl := gomock.NewController(t)
	m := serviceMocks{
		types:    mock.NewMockEntityTypeService(ctrl),
		entities: mock.NewMockEntityService(ctrl),
		files:    mock.NewMockFileService(ctrl),
		appInfo:  mock.NewMockAppInfoService(ctrl),
	}

	h := NewHandler(&service.Services{
		EntityTypeService: m.types,
		EntityService:     m.entities,
		FileService:       m.files,
		AppInfoService:    m.appInfo,
	}, logger.Nop())

	return h.Init(), m
}

func serve(router http.Handler, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func jsonRequest(t *testing.T, method, target string, body any) *http.Request {
	t.Helper()

	raw, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(method, target, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	return req
}

type formFile struct {
	field, name, contentType string
	data                     []byte
}

func multipartRequest(t *testing.T, method, target string, values [][2]string, files ...formFile) *http.Request {
	t.Helper()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for _, kv := range values {
		require.NoError(t, mw.WriteField(kv[0], kv[1]))
	}
	for _, f := range files {
		header := make(textproto.MIMEHeader)
		header.Set("Content-Disposition", `form-data; name="`+f.field+`"; filename="`+f.name+`"`)
		header.Set("Content-Type", f.contentType)
		part, err := mw.CreatePart(header)
		require.NoError(t, err)
		_, err = part.Write(f.data)
		require.NoError(t, err)
	}
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

func decodeBody[T any](t *testing.T, body io.Reader) T {
	t.Helper()

	var out T
	require.NoError(t, json.NewDecoder(body).Decode(&out))
	return out
}

// ─────────────────────────────────────────────
// NewHandler
// ─────────────────────────────────────────────

func TestNewHandler_StoresDependencies(t *testing.T) {
	svc := &service.Services{}
	log := logger.Nop()

	h := NewHandler(svc, log)

	require.NotNil(t, h)
	assert.Equal(t, svc, h.services)
	assert.Equal(t, log, h.logger)
}

func TestNewHandler_IndependentInstances(t *testing.T) {
	h1 := NewHandler(&service.Services{}, logger.Nop())
	h2 := NewHandler(&service.Services{}, logger.Nop())

	assert.NotSame(t, h1, h2)
}

// ─────────────────────────────────────────────
// Routes
// ─────────────────────────────────────────────

func TestInit_UnknownRoutes_Return404(t *testing.T) {
	router, _ := newTestRouter(t)

	tests := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/api/nonexistent"},
		{http.MethodGet, "/totally/wrong"},
		{http.MethodPatch, "/api/entity-types"},
		{http.MethodDelete, "/api/entity-types"},
		{http.MethodPost, "/api/version"},
		{http.MethodPatch, "/api/entities/e1"},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			rec := serve(router, httptest.NewRequest(tt.method, tt.path, nil))
			assert.Equal(t, http.StatusNotFound, rec.Code)
		})
	}
}

func TestInit_SetsTraceHeader(t *testing.T) {
	router, m := newTestRouter(t)
	m.appInfo.EXPECT().GetAppVersion(gomock.Any()).Return("1.0.0")

	req := httptest.NewRequest(http.MethodGet, "/api/version", nil)
	req.Header.Set("X-Trace-ID", "trace-1")

	rec := serve(router, req)

	assert.Equal(t, "trace-1", rec.Header().Get("X-Trace-ID"))
}

// ─────────────────────────────────────────────
// Version
// ─────────────────────────────────────────────

func TestGetServerVersion(t *testing.T) {
	tests := []struct {
		name    string
		version string
	}{
		{name: "semver", version: "1.2.3"},
		{name: "empty", version: ""},
		{name: "special chars", version: "v2.0.0-beta+build.42"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, m := newTestRouter(t)
			m.appInfo.EXPECT().GetAppVersion(gomock.Any()).Return(tt.version)

			rec := serve(router, httptest.NewRequest(http.MethodGet, "/api/version", nil))

			require.Equal(t, http.StatusOK, rec.Code)
			assert.Equal(t, tt.version, rec.Body.String())
			assert.Contains(t, rec.Header().Get("Content-Type"), "text/plain")
		})
	}
}

// ─────────────────────────────────────────────
// Files
// ─────────────────────────────────────────────

func TestGetFile(t *testing.T) {
	router, m := newTestRouter(t)
	png := []byte("\x89PNG\r\n\x1a\n0000")
	m.files.EXPECT().Load(gomock.Any(), "c.png").Return(png, nil)

	rec := serve(router, httptest.NewRequest(http.MethodGet, "/api/files/c.png", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get("Content-Type"))
	assert.Equal(t, png, rec.Body.Bytes())
}

func TestGetFile_NotFound(t *testing.T) {
	router, m := newTestRouter(t)
	m.files.EXPECT().Load(gomock.Any(), "missing.png").Return(nil, fmt.Errorf("open: %w", store.ErrBlobNotFound))

	rec := serve(router, httptest.NewRequest(http.MethodGet, "/api/files/missing.png", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	body := decodeBody[models.ErrorResponse](t, rec.Body)
	assert.Equal(t, store.ErrBlobNotFound.Error(), body.Error)
}
