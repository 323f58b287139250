package tui

import (
	"context"
	"errors"
	"testing"

	"github.com/MKhiriev/go-schema-keeper/internal/mock"
	"github.com/MKhiriev/go-schema-keeper/internal/service"
	"github.com/MKhiriev/go-schema-keeper/internal/store"
	"github.com/MKhiriev/go-schema-keeper/internal/utils"
	"github.com/MKhiriev/go-schema-keeper/models"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var testEntries = []models.EntityTypeEntry{
	{EntityType: models.EntityType{Name: "Projects", Slug: "projects"}, Default: true},
	{EntityType: models.EntityType{ID: "t1", Name: "Books", Slug: "books"}},
}

func runeKey(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestCmdLoadTypes_AttachesTraceID(t *testing.T) {
	ctrl := gomock.NewController(t)
	registry := mock.NewMockSchemaRegistry(ctrl)

	registry.EXPECT().List(gomock.Any()).DoAndReturn(func(ctx context.Context) ([]models.EntityTypeEntry, error) {
		traceID, ok := utils.GetTraceIDFromContext(ctx)
		assert.True(t, ok)
		assert.NotEmpty(t, traceID)
		return testEntries, nil
	})

	msg := cmdLoadTypes(context.Background(), registry)()

	loaded, ok := msg.(typesLoadedMsg)
	require.True(t, ok)
	require.NoError(t, loaded.err)
	assert.Equal(t, testEntries, loaded.entries)
}

func TestTypesModel_LoadedEntriesAreRendered(t *testing.T) {
	m := newTypesModel(context.Background(), nil)

	_, cmd := m.Update(typesLoadedMsg{entries: testEntries})
	assert.Nil(t, cmd)

	view := m.View()
	assert.Contains(t, view, "[D]")
	assert.Contains(t, view, "[C]")
	assert.Contains(t, view, "Projects")
	assert.Contains(t, view, "books")
}

func TestTypesModel_LoadErrorIsHumanized(t *testing.T) {
	m := newTypesModel(context.Background(), nil)

	m.Update(typesLoadedMsg{err: errors.New("dial tcp 127.0.0.1:8080: connection refused")})

	assert.Equal(t, "Отсутствует сеть или Сервер недоступен", m.errMsg)
}

func TestTypesModel_DeleteDefaultIsRefused(t *testing.T) {
	m := newTypesModel(context.Background(), nil)
	m.Update(typesLoadedMsg{entries: testEntries})

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlD})

	assert.Nil(t, cmd)
	assert.Nil(t, m.confirm)
	require.NotNil(t, m.overlay)
	assert.Equal(t, "Стандартный тип нельзя удалить", m.overlay.message)
}

func TestTypesModel_DeleteCustomAsksForConfirmation(t *testing.T) {
	ctrl := gomock.NewController(t)
	registry := mock.NewMockSchemaRegistry(ctrl)

	m := newTypesModel(context.Background(), registry)
	m.Update(typesLoadedMsg{entries: testEntries})
	m.Update(tea.KeyMsg{Type: tea.KeyDown})

	m.Update(tea.KeyMsg{Type: tea.KeyCtrlD})
	require.NotNil(t, m.confirm)
	assert.Contains(t, m.View(), "Books")

	registry.EXPECT().Delete(gomock.Any(), testEntries[1].EntityType).Return(nil)

	_, cmd := m.Update(runeKey("y"))
	require.NotNil(t, cmd)
	assert.Nil(t, m.confirm)

	deleted, ok := cmd().(typeDeletedMsg)
	require.True(t, ok)
	assert.NoError(t, deleted.err)
}

func TestTypesModel_EnterOnPlaceholderStays(t *testing.T) {
	m := newTypesModel(context.Background(), nil)
	m.Update(typesLoadedMsg{entries: testEntries})

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})

	assert.Nil(t, cmd)
	assert.NotEmpty(t, m.status)
}

func TestTypesModel_EnterOpensEntities(t *testing.T) {
	m := newTypesModel(context.Background(), nil)
	m.Update(typesLoadedMsg{entries: testEntries})
	m.Update(tea.KeyMsg{Type: tea.KeyDown})

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)

	nav, ok := cmd().(NavigateTo)
	require.True(t, ok)
	assert.Equal(t, pageEntities, nav.Page)
	assert.Equal(t, openEntitiesMsg{entityType: testEntries[1].EntityType}, nav.Payload)
}

func TestHumanizeError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{name: "nil", err: nil, want: ""},
		{name: "wrapped conflict", err: errors.Join(errors.New("save entity type"), store.ErrSlugAlreadyExists), want: "Тип с таким slug уже существует"},
		{name: "reserved slug", err: service.ErrReservedSlug, want: "Slug зарезервирован стандартным типом"},
		{name: "timeout", err: errors.New("context deadline exceeded"), want: "Отсутствует сеть или Сервер недоступен"},
		{name: "other", err: errors.New("boom"), want: "boom"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, humanizeError(tt.err))
		})
	}
}
