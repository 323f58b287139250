package tui

import (
	"context"

	"github.com/MKhiriev/go-schema-keeper/internal/service"
	"github.com/MKhiriev/go-schema-keeper/internal/utils"
	"github.com/MKhiriev/go-schema-keeper/models"
	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
)

// traced gives every user action its own trace id, sent to the data store
// in the X-Trace-ID header.
func traced(ctx context.Context) context.Context {
	return utils.WithTraceID(ctx, uuid.NewString())
}

func navigate(page string, payload tea.Msg) tea.Cmd {
	return func() tea.Msg { return NavigateTo{Page: page, Payload: payload} }
}

func back() tea.Msg {
	return navigateBackMsg{}
}

func cmdLoadTypes(ctx context.Context, registry service.SchemaRegistry) tea.Cmd {
	return func() tea.Msg {
		entries, err := registry.List(traced(ctx))
		return typesLoadedMsg{entries: entries, err: err}
	}
}

func cmdSaveType(ctx context.Context, registry service.SchemaRegistry, entityType models.EntityType) tea.Cmd {
	return func() tea.Msg {
		saved, err := registry.Save(traced(ctx), entityType)
		return typeSavedMsg{entityType: saved, err: err}
	}
}

func cmdDeleteType(ctx context.Context, registry service.SchemaRegistry, entityType models.EntityType) tea.Cmd {
	return func() tea.Msg {
		return typeDeletedMsg{err: registry.Delete(traced(ctx), entityType)}
	}
}

func cmdLoadEntities(ctx context.Context, store service.EntityStore, typeID string) tea.Cmd {
	return func() tea.Msg {
		entities, err := store.List(traced(ctx), typeID)
		return entitiesLoadedMsg{typeID: typeID, entities: entities, err: err}
	}
}

// cmdSaveEntity creates the entity when id is empty and updates it otherwise.
func cmdSaveEntity(ctx context.Context, store service.EntityStore, id string, draft models.EntityDraft) tea.Cmd {
	return func() tea.Msg {
		var (
			saved models.Entity
			err   error
		)
		if id == "" {
			saved, err = store.Create(traced(ctx), draft)
		} else {
			saved, err = store.Update(traced(ctx), id, draft)
		}
		return entitySavedMsg{entity: saved, err: err}
	}
}

func cmdDeleteEntity(ctx context.Context, store service.EntityStore, id, typeID string) tea.Cmd {
	return func() tea.Msg {
		return entityDeletedMsg{err: store.Delete(traced(ctx), id, typeID)}
	}
}

func cmdCopy(text string) tea.Cmd {
	return func() tea.Msg {
		return copiedMsg{err: clipboard.WriteAll(text)}
	}
}
