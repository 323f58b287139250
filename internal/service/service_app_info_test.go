package service

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-schema-keeper/internal/config"
	"github.com/MKhiriev/go-schema-keeper/internal/logger"
	"github.com/MKhiriev/go-schema-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAppInfoService(t *testing.T) {
	tests := []struct {
		name      string
		cfg       config.App
		buildInfo models.AppBuildInfo
		want      string
		wantErr   error
	}{
		{
			name:      "configured version wins",
			cfg:       config.App{Version: "3.1.4"},
			buildInfo: models.NewAppBuildInfo("9.9.9", "", ""),
			want:      "3.1.4",
		},
		{
			name:      "falls back to build version",
			buildInfo: models.NewAppBuildInfo("v1.2.3-beta+build.42", "2026-10-01", "abc123"),
			want:      "v1.2.3-beta+build.42",
		},
		{
			name:      "no version anywhere",
			buildInfo: models.NewAppBuildInfo("", "", ""),
			wantErr:   ErrVersionIsNotSpecified,
		},
		{
			name:    "zero build info",
			wantErr: ErrVersionIsNotSpecified,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, err := NewAppInfoService(tt.cfg, tt.buildInfo, logger.Nop())

			if tt.wantErr != nil {
				assert.Nil(t, svc)
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, svc.GetAppVersion(context.Background()))
		})
	}
}

func TestGetAppVersion_CancelledContext_StillReturnsVersion(t *testing.T) {
	svc, err := NewAppInfoService(config.App{Version: "1.0.0"}, models.AppBuildInfo{}, logger.Nop())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.Equal(t, "1.0.0", svc.GetAppVersion(ctx))
}
