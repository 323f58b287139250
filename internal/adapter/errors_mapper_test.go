package adapter

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-resty/resty/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func responseWith(t *testing.T, status int, body string) *resty.Response {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	defer srv.Close()

	resp, err := resty.New().R().SetContext(context.Background()).Get(srv.URL)
	require.NoError(t, err)
	return resp
}

func TestMapHTTPError(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantErr error
		wantMsg string
	}{
		{name: "ok", status: http.StatusOK},
		{name: "no content", status: http.StatusNoContent},
		{name: "bad request json error", status: http.StatusBadRequest, body: `{"error":"name is required"}`, wantErr: ErrBadRequest, wantMsg: "name is required"},
		{name: "unauthorized", status: http.StatusUnauthorized, wantErr: ErrUnauthorized},
		{name: "forbidden", status: http.StatusForbidden, wantErr: ErrForbidden},
		{name: "not found raw", status: http.StatusNotFound, body: "  no such type \n", wantErr: ErrNotFound, wantMsg: "no such type"},
		{name: "conflict message", status: http.StatusConflict, body: `{"message":"dup"}`, wantErr: ErrConflict, wantMsg: "dup"},
		{name: "bad gateway", status: http.StatusBadGateway, wantErr: ErrBadGateway},
		{name: "internal", status: http.StatusInternalServerError, body: "boom", wantErr: ErrInternalServerError, wantMsg: "boom"},
		{name: "teapot", status: http.StatusTeapot, wantErr: ErrUnexpectedStatus, wantMsg: "I'm a teapot"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := mapHTTPError(responseWith(t, tt.status, tt.body))
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
			if tt.wantMsg != "" {
				assert.Contains(t, err.Error(), tt.wantMsg)
			}
		})
	}
}

func TestErrorMessage(t *testing.T) {
	assert.Equal(t, "a", errorMessage([]byte(`{"error":"a","message":"b"}`)))
	assert.Equal(t, "b", errorMessage([]byte(`{"message":"b"}`)))
	assert.Equal(t, `{"other":1}`, errorMessage([]byte(`{"other":1}`)))
	assert.Equal(t, "plain", errorMessage([]byte(" plain ")))
}
