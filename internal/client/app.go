package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-schema-keeper/internal/adapter"
	"github.com/MKhiriev/go-schema-keeper/internal/logger"
	"github.com/MKhiriev/go-schema-keeper/internal/tui"
)

// UI is the interactive front end driven by App.
type UI interface {
	Run(ctx context.Context) error
}

type App struct {
	adapter adapter.ServerAdapter
	ui      UI
	logger  *logger.Logger
}

func NewApp(serverAdapter adapter.ServerAdapter, ui UI, logger *logger.Logger) (*App, error) {
	if serverAdapter == nil || ui == nil {
		return nil, ErrNilDependency
	}
	return &App{adapter: serverAdapter, ui: ui, logger: logger}, nil
}

// Run checks the remote data store and blocks on the UI. An unreachable
// store is only logged: listings fall back to the local cache.
func (a *App) Run(ctx context.Context) error {
	version, err := a.adapter.Version(ctx)
	if err != nil {
		a.logger.Warn().Err(err).Str("func", "*App.Run").Msg("remote data store is unavailable")
	} else {
		a.logger.Info().Str("server_version", version).Msg("connected to remote data store")
	}

	err = a.ui.Run(ctx)
	if errors.Is(err, tui.ErrUserQuit) {
		a.logger.Info().Msg("user quit")
		return nil
	}
	if err != nil {
		return fmt.Errorf("run ui: %w", err)
	}
	return nil
}
