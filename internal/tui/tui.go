package tui

import (
	"context"
	"errors"

	"github.com/MKhiriev/go-schema-keeper/internal/logger"
	"github.com/MKhiriev/go-schema-keeper/internal/service"
	"github.com/MKhiriev/go-schema-keeper/models"
	tea "github.com/charmbracelet/bubbletea"
)

var ErrUserQuit = errors.New("вышел из программы")

type TUI struct {
	services  *service.ClientServices
	buildInfo models.AppBuildInfo
	logger    *logger.Logger
}

func New(services *service.ClientServices, buildInfo models.AppBuildInfo, logger *logger.Logger) (*TUI, error) {
	if services == nil {
		return nil, errors.New("client services are nil")
	}
	return &TUI{services: services, buildInfo: buildInfo, logger: logger}, nil
}

// Run opens the type list and blocks until the user quits.
func (t *TUI) Run(ctx context.Context) error {
	pages := map[string]tea.Model{
		pageTypes:      newTypesModel(ctx, t.services.SchemaRegistry),
		pageSchema:     newSchemaModel(ctx, t.services.SchemaRegistry),
		pageEntities:   newEntitiesModel(ctx, t.services.EntityStore),
		pageEntityForm: newEntityFormModel(ctx, t.services.EntityStore),
	}

	root := NewRootModel(pages, pageTypes, t.buildInfo)
	finalModel, runErr := tea.NewProgram(root, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if runErr != nil {
		t.logger.Err(runErr).Str("func", "*TUI.Run").Msg("tui program stopped with error")
		return runErr
	}

	result, ok := finalModel.(RootModel)
	if !ok {
		return tea.ErrProgramKilled
	}
	if result.quitByUser {
		return ErrUserQuit
	}

	return nil
}
