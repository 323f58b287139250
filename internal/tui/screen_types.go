package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-schema-keeper/internal/service"
	"github.com/MKhiriev/go-schema-keeper/models"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

// typesModel lists every default type followed by the custom ones.
type typesModel struct {
	ctx      context.Context
	registry service.SchemaRegistry

	entries []models.EntityTypeEntry
	cursor  int
	loading bool
	spinner spinner.Model

	confirm *confirmModel
	overlay *errorOverlayModel

	errMsg string
	status string
}

func newTypesModel(ctx context.Context, registry service.SchemaRegistry) *typesModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	return &typesModel{ctx: ctx, registry: registry, spinner: s}
}

func (m *typesModel) Init() tea.Cmd {
	m.loading = true
	m.errMsg = ""
	return tea.Batch(m.spinner.Tick, cmdLoadTypes(m.ctx, m.registry))
}

func (m *typesModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case typesLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		m.errMsg = ""
		m.entries = msg.entries
		if m.cursor >= len(m.entries) {
			m.cursor = max(len(m.entries)-1, 0)
		}
		return m, nil

	case typeDeletedMsg:
		if msg.err != nil {
			m.overlay = newErrorOverlay(msg.err)
			return m, nil
		}
		m.status = "Тип удалён"
		return m, m.Init()

	case copiedMsg:
		if msg.err != nil {
			m.status = "Не удалось скопировать: " + msg.err.Error()
		} else {
			m.status = "ID скопирован"
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m *typesModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.overlay != nil {
		if m.overlay.closes(msg) {
			m.overlay = nil
		}
		return m, nil
	}

	if m.confirm != nil {
		switch {
		case key.Matches(msg, keys.yes):
			m.confirm = nil
			entry, ok := m.selected()
			if !ok {
				return m, nil
			}
			m.status = "Удаление..."
			return m, cmdDeleteType(m.ctx, m.registry, entry.EntityType)
		case key.Matches(msg, keys.no):
			m.confirm = nil
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, keys.quit):
		return m, func() tea.Msg { return quitMsg{} }
	case key.Matches(msg, keys.up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, keys.down):
		if m.cursor < len(m.entries)-1 {
			m.cursor++
		}
	case key.Matches(msg, keys.reload):
		m.status = ""
		return m, m.Init()
	case key.Matches(msg, keys.newItem):
		return m, navigate(pageSchema, editSchemaMsg{creating: true})
	case key.Matches(msg, keys.edit):
		entry, ok := m.selected()
		if !ok {
			return m, nil
		}
		return m, navigate(pageSchema, editSchemaMsg{entry: entry})
	case key.Matches(msg, keys.enter):
		entry, ok := m.selected()
		if !ok {
			return m, nil
		}
		if !entry.Materialized() {
			m.status = "Сначала сохраните схему типа (e)"
			return m, nil
		}
		return m, navigate(pageEntities, openEntitiesMsg{entityType: entry.EntityType})
	case key.Matches(msg, keys.copy):
		entry, ok := m.selected()
		if !ok || !entry.Materialized() {
			return m, nil
		}
		return m, cmdCopy(entry.ID)
	case key.Matches(msg, keys.delete):
		entry, ok := m.selected()
		if !ok {
			return m, nil
		}
		if entry.Default {
			m.overlay = &errorOverlayModel{message: humanizeError(service.ErrDefaultTypeNotDeletable)}
			return m, nil
		}
		m.confirm = &confirmModel{
			message: entry.Name,
			warning: "Все записи этого типа будут удалены",
		}
	}

	return m, nil
}

func (m *typesModel) selected() (models.EntityTypeEntry, bool) {
	if m.cursor < 0 || m.cursor >= len(m.entries) {
		return models.EntityTypeEntry{}, false
	}
	return m.entries[m.cursor], true
}

func (m *typesModel) View() string {
	if m.overlay != nil {
		return m.overlay.View()
	}
	if m.confirm != nil {
		return m.confirm.View()
	}

	var b strings.Builder
	if m.loading {
		b.WriteString(m.spinner.View() + " Загрузка...\n")
	}
	b.WriteString(statusLines(m.errMsg, m.status))

	if len(m.entries) == 0 && !m.loading {
		b.WriteString("Типов пока нет\n")
	}
	for i, entry := range m.entries {
		b.WriteString(renderTypeRow(entry, i == m.cursor))
		b.WriteString("\n")
	}

	return renderPage(
		"ТИПЫ ЗАПИСЕЙ",
		b.String(),
		"↑/↓: выбор | enter: записи | e: схема | n: новый тип | ctrl+d: удалить | c: копировать ID | r: обновить | v: версия | q: выход",
	)
}

// renderTypeRow marks default types with [D] and custom ones with [C]; a
// trailing * flags a default type that has not been saved yet.
func renderTypeRow(entry models.EntityTypeEntry, selected bool) string {
	marker := "[C]"
	if entry.Default {
		marker = "[D]"
	}
	placeholder := ""
	if !entry.Materialized() {
		placeholder = " *"
	}
	return fmt.Sprintf("%s %s %s%s  %s  (%d полей)",
		cursor(selected),
		marker,
		pad(entry.Name, 24),
		placeholder,
		helpStyle.Render(entry.Slug),
		len(entry.Fields),
	)
}
