package server

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MKhiriev/go-schema-keeper/internal/config"
	handler "github.com/MKhiriev/go-schema-keeper/internal/handler/http"
	"github.com/MKhiriev/go-schema-keeper/internal/logger"
	"github.com/MKhiriev/go-schema-keeper/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewServer_NoAddress(t *testing.T) {
	h := handler.NewHandler(&service.Services{}, logger.Nop())

	s, err := NewServer(h, config.Server{}, logger.Nop())

	require.ErrorIs(t, err, errNoListenAddress)
	assert.Nil(t, s)
}

func TestNewServer_NilHandler(t *testing.T) {
	s, err := NewServer(nil, config.Server{HTTPAddress: ":8080"}, logger.Nop())

	require.ErrorIs(t, err, errNoHandler)
	assert.Nil(t, s)
}

func TestNewServer_AppliesTimeouts(t *testing.T) {
	h := handler.NewHandler(&service.Services{}, logger.Nop())
	cfg := config.Server{HTTPAddress: ":8080", RequestTimeout: 5 * time.Second}

	s, err := NewServer(h, cfg, logger.Nop())
	require.NoError(t, err)

	srv := s.(*server).httpServer.server
	assert.Equal(t, ":8080", srv.Addr)
	assert.Equal(t, 5*time.Second, srv.ReadTimeout)
	assert.Equal(t, 5*time.Second, srv.WriteTimeout)
	assert.NotNil(t, srv.Handler)
}

func TestHTTPServer_ShutdownBeforeRun(t *testing.T) {
	hs := newHTTPServer(http.NotFoundHandler(), config.Server{HTTPAddress: "127.0.0.1:0"}, logger.Nop())

	assert.NotPanics(t, hs.Shutdown)
}

func TestHTTPServer_ServesHandler(t *testing.T) {
	hs := newHTTPServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}), config.Server{}, logger.Nop())

	rec := httptest.NewRecorder()
	hs.server.Handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusTeapot, rec.Code)
}
