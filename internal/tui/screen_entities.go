package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-schema-keeper/internal/codec"
	"github.com/MKhiriev/go-schema-keeper/internal/service"
	"github.com/MKhiriev/go-schema-keeper/models"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

const privateMask = "••••••"

// entitiesModel lists the records of one type.
type entitiesModel struct {
	ctx   context.Context
	store service.EntityStore

	entityType models.EntityType
	entities   []models.Entity
	cursor     int
	loading    bool
	revealed   bool
	spinner    spinner.Model

	confirm *confirmModel
	overlay *errorOverlayModel

	errMsg string
	status string
}

func newEntitiesModel(ctx context.Context, store service.EntityStore) *entitiesModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	return &entitiesModel{ctx: ctx, store: store, spinner: s}
}

// Init reloads the current type, so returning here from the form refreshes
// the listing.
func (m *entitiesModel) Init() tea.Cmd {
	if !m.entityType.Materialized() {
		return nil
	}
	m.loading = true
	m.errMsg = ""
	return tea.Batch(m.spinner.Tick, cmdLoadEntities(m.ctx, m.store, m.entityType.ID))
}

func (m *entitiesModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case openEntitiesMsg:
		m.entityType = msg.entityType
		m.entities = nil
		m.cursor = 0
		m.revealed = false
		m.confirm = nil
		m.overlay = nil
		m.status = ""
		return m, m.Init()

	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case entitiesLoadedMsg:
		if msg.typeID != m.entityType.ID {
			return m, nil
		}
		m.loading = false
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		m.errMsg = ""
		m.entities = msg.entities
		if m.cursor >= len(m.entities) {
			m.cursor = max(len(m.entities)-1, 0)
		}
		return m, nil

	case entityDeletedMsg:
		if msg.err != nil {
			m.overlay = newErrorOverlay(msg.err)
			return m, nil
		}
		m.status = "Запись удалена"
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

func (m *entitiesModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
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
			entity, ok := m.selected()
			if !ok {
				return m, nil
			}
			m.status = "Удаление..."
			return m, cmdDeleteEntity(m.ctx, m.store, entity.ID, entity.TypeID)
		case key.Matches(msg, keys.no):
			m.confirm = nil
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, keys.esc):
		return m, back
	case key.Matches(msg, keys.up):
		if m.cursor > 0 {
			m.cursor--
			m.revealed = false
		}
	case key.Matches(msg, keys.down):
		if m.cursor < len(m.entities)-1 {
			m.cursor++
			m.revealed = false
		}
	case key.Matches(msg, keys.reload):
		m.status = ""
		return m, m.Init()
	case key.Matches(msg, keys.reveal):
		m.revealed = !m.revealed
	case key.Matches(msg, keys.newItem):
		return m, navigate(pageEntityForm, editEntityMsg{entityType: m.entityType})
	case key.Matches(msg, keys.edit), key.Matches(msg, keys.enter):
		entity, ok := m.selected()
		if !ok {
			return m, nil
		}
		return m, navigate(pageEntityForm, editEntityMsg{entityType: m.entityType, entity: &entity})
	case key.Matches(msg, keys.copy):
		entity, ok := m.selected()
		if !ok {
			return m, nil
		}
		return m, cmdCopy(entity.ID)
	case key.Matches(msg, keys.delete):
		entity, ok := m.selected()
		if !ok {
			return m, nil
		}
		m.confirm = &confirmModel{message: entity.Name}
	}

	return m, nil
}

func (m *entitiesModel) selected() (models.Entity, bool) {
	if m.cursor < 0 || m.cursor >= len(m.entities) {
		return models.Entity{}, false
	}
	return m.entities[m.cursor], true
}

func (m *entitiesModel) View() string {
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

	if len(m.entities) == 0 && !m.loading {
		b.WriteString("Записей пока нет\n")
	}
	for i, entity := range m.entities {
		b.WriteString(fmt.Sprintf("%s %s %s\n", cursor(i == m.cursor), pad(valueOrDash(entity.Name), 28), helpStyle.Render(entity.ID)))
	}

	if entity, ok := m.selected(); ok {
		b.WriteString("\n")
		b.WriteString(renderEntityDetails(m.entityType, entity, m.revealed))
	}

	return renderPage(
		"ЗАПИСИ: "+strings.ToUpper(m.entityType.Name),
		b.String(),
		"↑/↓: выбор | enter/e: изменить | n: новая | ctrl+d: удалить | c: копировать ID | s: показать скрытые | r: обновить | esc: назад",
	)
}

// renderEntityDetails lists schema fields in order, then any keys the schema
// does not declare. Private values stay masked unless revealed.
func renderEntityDetails(entityType models.EntityType, entity models.Entity, revealed bool) string {
	var b strings.Builder
	declared := make(map[string]struct{}, len(entityType.Fields))

	for _, def := range entityType.Fields {
		declared[def.Key] = struct{}{}
		b.WriteString(fmt.Sprintf("%s: %s\n", def.DisplayName(), displayValue(def, entity.Metadata[def.Key], revealed)))
	}

	for _, k := range entity.Metadata.Keys() {
		if _, ok := declared[k]; ok {
			continue
		}
		b.WriteString(fmt.Sprintf("%s: %s\n", helpStyle.Render(k), valueOrDash(entity.Metadata[k].String())))
	}

	return b.String()
}

func displayValue(def models.FieldDefinition, v models.TypedValue, revealed bool) string {
	if v.IsAbsent() {
		return "-"
	}
	if def.Private && !revealed {
		return privateMask
	}
	if def.Type == models.FieldBoolean {
		if codec.Checked(v) {
			return "да"
		}
		return "нет"
	}
	text, _ := codec.Format(def.Type, v)
	return valueOrDash(fitText(strings.ReplaceAll(text, "\n", " "), 60))
}
