package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-schema-keeper/internal/codec"
	"github.com/MKhiriev/go-schema-keeper/internal/schema"
	"github.com/MKhiriev/go-schema-keeper/internal/service"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	schemaRowName = iota
	schemaRowSlug
	schemaRowDescription
	schemaHeaderRows
)

type schemaTarget int

const (
	targetTypeName schemaTarget = iota
	targetTypeSlug
	targetTypeDescription
	targetFieldKey
	targetFieldLabel
	targetFieldOptions
)

// schemaModel edits the header and the ordered field list of one type.
type schemaModel struct {
	ctx      context.Context
	registry service.SchemaRegistry

	draft  *schema.Draft
	cursor int
	saving bool

	prompt       *promptModel
	promptTarget schemaTarget

	overlay *errorOverlayModel
	status  string
}

func newSchemaModel(ctx context.Context, registry service.SchemaRegistry) *schemaModel {
	return &schemaModel{ctx: ctx, registry: registry, draft: schema.NewDraft()}
}

func (m *schemaModel) Init() tea.Cmd {
	return nil
}

func (m *schemaModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case editSchemaMsg:
		if msg.creating {
			m.draft = schema.NewDraft()
		} else {
			m.draft = schema.EditDraft(msg.entry.EntityType)
		}
		m.cursor = 0
		m.prompt = nil
		m.overlay = nil
		m.saving = false
		m.status = ""
		return m, nil

	case typeSavedMsg:
		m.saving = false
		if msg.err != nil {
			m.overlay = newErrorOverlay(msg.err)
			return m, nil
		}
		return m, back

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	if m.prompt != nil {
		_, _, cmd := m.prompt.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *schemaModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.overlay != nil {
		if m.overlay.closes(msg) {
			m.overlay = nil
		}
		return m, nil
	}

	if m.prompt != nil {
		done, ok, cmd := m.prompt.Update(msg)
		if done {
			if ok {
				m.apply(m.promptTarget, m.prompt.Value())
			}
			m.prompt = nil
		}
		return m, cmd
	}

	if m.saving {
		return m, nil
	}

	m.status = ""
	field := m.cursor - schemaHeaderRows
	onField := field >= 0 && field < m.draft.Len()

	switch {
	case key.Matches(msg, keys.esc):
		return m, back
	case key.Matches(msg, keys.save):
		m.saving = true
		m.status = "Сохранение..."
		return m, cmdSaveType(m.ctx, m.registry, m.draft.Build())
	case key.Matches(msg, keys.up), key.Matches(msg, keys.backtab):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, keys.down), key.Matches(msg, keys.tab):
		if m.cursor < m.rowCount()-1 {
			m.cursor++
		}
	case key.Matches(msg, keys.addRow):
		m.cursor = schemaHeaderRows + m.draft.AddField()
	case key.Matches(msg, keys.enter):
		switch m.cursor {
		case schemaRowName:
			m.openHeaderPrompt(targetTypeName, "Название", m.draft.Name())
		case schemaRowSlug:
			m.openHeaderPrompt(targetTypeSlug, "Slug", m.draft.Slug())
		case schemaRowDescription:
			m.open(targetTypeDescription, "Описание", m.draft.Description(), true)
		default:
			if onField {
				def, _ := m.draft.Field(field)
				m.open(targetFieldLabel, "Подпись поля", def.Label, false)
			}
		}
	}

	if !onField {
		return m, nil
	}

	def, _ := m.draft.Field(field)
	switch {
	case key.Matches(msg, keys.dropRow):
		_ = m.draft.RemoveField(field)
		if m.cursor >= m.rowCount() {
			m.cursor = m.rowCount() - 1
		}
	case key.Matches(msg, keys.cycle):
		_ = m.draft.CycleType(field)
	case key.Matches(msg, keys.required):
		def.Required = !def.Required
		_ = m.draft.SetField(field, def)
	case key.Matches(msg, keys.private):
		def.Private = !def.Private
		_ = m.draft.SetField(field, def)
	case key.Matches(msg, keys.rowKey):
		m.open(targetFieldKey, "Ключ поля", def.Key, false)
	case key.Matches(msg, keys.rowLabel):
		m.open(targetFieldLabel, "Подпись поля", def.Label, false)
	case key.Matches(msg, keys.options):
		if !def.Type.HasOptions() {
			m.status = "Варианты есть только у select и multiselect"
			return m, nil
		}
		m.open(targetFieldOptions, "Варианты через запятую", strings.Join(def.Options, ", "), false)
	case key.Matches(msg, keys.moveUp):
		if field > 0 && m.draft.MoveField(field, field-1) == nil {
			m.cursor--
		}
	case key.Matches(msg, keys.moveDown):
		if field < m.draft.Len()-1 && m.draft.MoveField(field, field+1) == nil {
			m.cursor++
		}
	}

	return m, nil
}

func (m *schemaModel) openHeaderPrompt(target schemaTarget, label, value string) {
	if m.draft.Locked() {
		m.status = "Название и slug стандартного типа не меняются"
		return
	}
	m.open(target, label, value, false)
}

func (m *schemaModel) open(target schemaTarget, label, value string, multiline bool) {
	m.promptTarget = target
	m.prompt = newPrompt(label, value, multiline)
}

// apply writes an edited value back into the draft.
func (m *schemaModel) apply(target schemaTarget, value string) {
	switch target {
	case targetTypeName:
		m.draft.SetName(value)
		return
	case targetTypeSlug:
		m.draft.SetSlug(strings.TrimSpace(value))
		return
	case targetTypeDescription:
		m.draft.SetDescription(value)
		return
	}

	field := m.cursor - schemaHeaderRows
	def, err := m.draft.Field(field)
	if err != nil {
		return
	}
	switch target {
	case targetFieldKey:
		def.Key = strings.TrimSpace(value)
	case targetFieldLabel:
		def.Label = value
	case targetFieldOptions:
		def.Options = codec.SplitList(value)
	}
	_ = m.draft.SetField(field, def)
}

func (m *schemaModel) rowCount() int {
	return schemaHeaderRows + m.draft.Len()
}

func (m *schemaModel) View() string {
	if m.overlay != nil {
		return m.overlay.View()
	}

	title := "РЕДАКТИРОВАНИЕ СХЕМЫ"
	if m.draft.Creating() {
		title = "НОВЫЙ ТИП"
	}

	var b strings.Builder
	b.WriteString(statusLines("", m.status))

	lock := ""
	if m.draft.Locked() {
		lock = " (стандартный тип)"
	}
	b.WriteString(fmt.Sprintf("%s Название: %s%s\n", cursor(m.cursor == schemaRowName), valueOrDash(m.draft.Name()), lock))
	b.WriteString(fmt.Sprintf("%s Slug:     %s\n", cursor(m.cursor == schemaRowSlug), valueOrDash(m.draft.Slug())))
	b.WriteString(fmt.Sprintf("%s Описание: %s\n", cursor(m.cursor == schemaRowDescription), valueOrDash(fitText(m.draft.Description(), 60))))
	b.WriteString("\nПоля:\n")

	if m.draft.Len() == 0 {
		b.WriteString("  полей нет, a: добавить\n")
	}
	for i, def := range m.draft.Fields() {
		flags := ""
		if def.Required {
			flags += " обяз."
		}
		if def.Private {
			flags += " скрыт."
		}
		options := ""
		if def.Type.HasOptions() {
			options = " [" + strings.Join(def.Options, ", ") + "]"
		}
		b.WriteString(fmt.Sprintf("%s %2d. %s %s %-11s%s%s\n",
			cursor(m.cursor == schemaHeaderRows+i),
			i+1,
			pad(valueOrDash(def.Key), 16),
			pad(valueOrDash(def.Label), 20),
			def.Type,
			flags,
			options,
		))
	}

	if m.prompt != nil {
		b.WriteString("\n")
		b.WriteString(m.prompt.View())
		b.WriteString("\n")
	}

	return renderPage(
		title,
		b.String(),
		"enter: изменить | a: поле | x: удалить | t: тип | r: обяз. | p: скрыт. | k: ключ | l: подпись | o: варианты | [/]: порядок | ctrl+s: сохранить | esc: назад",
	)
}
