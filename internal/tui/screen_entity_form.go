package tui

import (
	"context"
	"encoding/json"
	"fmt"
	"mime"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/MKhiriev/go-schema-keeper/internal/builder"
	"github.com/MKhiriev/go-schema-keeper/internal/codec"
	"github.com/MKhiriev/go-schema-keeper/internal/service"
	"github.com/MKhiriev/go-schema-keeper/models"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// fieldInput is the editor state of one schema field.
type fieldInput struct {
	def models.FieldDefinition

	// text is the raw input; for image fields it is a local file path.
	text    string
	checked bool

	// reference is the stored asset an image field already points at.
	reference string
}

type formTarget int

const (
	targetEntityName formTarget = iota
	targetEntityField
	targetLooseKey
	targetLooseValue
)

// entityFormModel creates or edits one entity. Row 0 is the name, schema
// fields follow, then the free-form metadata rows.
type entityFormModel struct {
	ctx   context.Context
	store service.EntityStore

	entityType models.EntityType
	entityID   string

	name   string
	fields []fieldInput
	loose  *builder.Builder

	cursor int
	saving bool

	prompt       *promptModel
	promptTarget formTarget

	overlay *errorOverlayModel
	status  string

	readFile func(string) ([]byte, error)
}

func newEntityFormModel(ctx context.Context, store service.EntityStore) *entityFormModel {
	return &entityFormModel{
		ctx:      ctx,
		store:    store,
		loose:    builder.New(""),
		readFile: os.ReadFile,
	}
}

func (m *entityFormModel) Init() tea.Cmd {
	return nil
}

// load resets the form for entityType, prefilled from entity when editing.
func (m *entityFormModel) load(entityType models.EntityType, entity *models.Entity) {
	m.entityType = entityType
	m.entityID = ""
	m.name = ""
	m.cursor = 0
	m.saving = false
	m.prompt = nil
	m.overlay = nil
	m.status = ""

	var metadata models.Metadata
	if entity != nil {
		m.entityID = entity.ID
		m.name = entity.Name
		metadata = entity.Metadata
	}

	m.fields = make([]fieldInput, 0, len(entityType.Fields))
	declared := make(map[string]struct{}, len(entityType.Fields))
	for _, def := range entityType.Fields {
		declared[def.Key] = struct{}{}
		m.fields = append(m.fields, prefill(def, metadata[def.Key]))
	}

	m.loose = builder.New(undeclaredJSON(metadata, declared))
}

func prefill(def models.FieldDefinition, v models.TypedValue) fieldInput {
	in := fieldInput{def: def}
	switch def.Type {
	case models.FieldBoolean:
		in.checked = codec.Checked(v)
	case models.FieldImage:
		in.reference, _ = codec.AssetReference(v)
	default:
		in.text, _ = codec.Format(def.Type, v)
	}
	return in
}

// undeclaredJSON returns the keys the schema does not declare as a JSON
// object, the builder's canonical form.
func undeclaredJSON(metadata models.Metadata, declared map[string]struct{}) string {
	extra := make(map[string]any)
	for k, v := range metadata {
		if _, ok := declared[k]; ok {
			continue
		}
		extra[k] = v.Any()
	}
	if len(extra) == 0 {
		return ""
	}
	raw, err := json.Marshal(extra)
	if err != nil {
		return ""
	}
	return string(raw)
}

// draft collects the editor state into the value submitted to the store.
// Image paths are read here so that a missing file fails before anything is
// sent.
func (m *entityFormModel) draft() (models.EntityDraft, error) {
	metadata := make(models.Metadata, len(m.fields))

	for _, in := range m.fields {
		switch in.def.Type {
		case models.FieldBoolean:
			metadata[in.def.Key] = codec.ParseChecked(in.checked)
		case models.FieldImage:
			path := strings.TrimSpace(in.text)
			switch {
			case path != "":
				data, err := m.readFile(path)
				if err != nil {
					return models.EntityDraft{}, fmt.Errorf("%s: %w", in.def.DisplayName(), err)
				}
				metadata[in.def.Key] = codec.ParseBlob(models.Blob{
					FileName:    filepath.Base(path),
					ContentType: mime.TypeByExtension(filepath.Ext(path)),
					Data:        data,
				})
			case in.reference != "":
				metadata[in.def.Key] = models.TextValue(in.reference)
			default:
				metadata[in.def.Key] = models.Null()
			}
		default:
			metadata[in.def.Key] = codec.ParseString(in.def.Type, in.text)
		}
	}

	schema := m.entityType
	return models.EntityDraft{
		TypeID:        m.entityType.ID,
		Name:          m.name,
		Metadata:      metadata,
		LooseMetadata: m.loose.Value(),
		Schema:        &schema,
	}, nil
}

func (m *entityFormModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case editEntityMsg:
		m.load(msg.entityType, msg.entity)
		return m, nil

	case entitySavedMsg:
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

func (m *entityFormModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
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
	switch {
	case key.Matches(msg, keys.esc):
		return m, back
	case key.Matches(msg, keys.save):
		d, err := m.draft()
		if err != nil {
			m.overlay = newErrorOverlay(err)
			return m, nil
		}
		m.saving = true
		m.status = "Сохранение..."
		return m, cmdSaveEntity(m.ctx, m.store, m.entityID, d)
	case key.Matches(msg, keys.up), key.Matches(msg, keys.backtab):
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil
	case key.Matches(msg, keys.down), key.Matches(msg, keys.tab):
		if m.cursor < m.rowCount()-1 {
			m.cursor++
		}
		return m, nil
	case key.Matches(msg, keys.addRow):
		m.loose.Add()
		m.cursor = m.rowCount() - 1
		return m, nil
	}

	if m.cursor == 0 {
		if key.Matches(msg, keys.enter) {
			m.open(targetEntityName, "Название", m.name, false)
		}
		return m, nil
	}

	if i := m.cursor - 1; i < len(m.fields) {
		return m, m.handleFieldKey(msg, i)
	}

	m.handleLooseKey(msg, m.cursor-1-len(m.fields))
	return m, nil
}

func (m *entityFormModel) handleFieldKey(msg tea.KeyMsg, i int) tea.Cmd {
	in := &m.fields[i]

	if in.def.Type == models.FieldBoolean {
		if key.Matches(msg, keys.toggle) || key.Matches(msg, keys.enter) {
			in.checked = !in.checked
		}
		return nil
	}

	if !key.Matches(msg, keys.enter) {
		return nil
	}

	label := in.def.DisplayName()
	switch in.def.Type {
	case models.FieldImage:
		label += " (путь к файлу)"
	case models.FieldMultiselect:
		label += " (через запятую)"
	case models.FieldSelect:
		label += " [" + strings.Join(in.def.Options, ", ") + "]"
	}
	multiline := in.def.Type == models.FieldTextarea || in.def.Type == models.FieldJSON
	m.open(targetEntityField, label, in.text, multiline)
	return nil
}

func (m *entityFormModel) handleLooseKey(msg tea.KeyMsg, row int) {
	rows := m.loose.Rows()
	if row < 0 || row >= len(rows) {
		return
	}

	switch {
	case key.Matches(msg, keys.dropRow):
		if _, err := m.loose.Remove(row); err == nil && m.cursor >= m.rowCount() {
			m.cursor = m.rowCount() - 1
		}
	case key.Matches(msg, keys.cycle):
		idx := slices.Index(models.RowTypes, rows[row].ValueType)
		_, _ = m.loose.SetType(row, models.RowTypes[(idx+1)%len(models.RowTypes)])
	case key.Matches(msg, keys.rowKey):
		m.open(targetLooseKey, "Ключ", rows[row].Key, false)
	case key.Matches(msg, keys.rowValue), key.Matches(msg, keys.enter):
		m.open(targetLooseValue, "Значение", rows[row].Value, false)
	}
}

func (m *entityFormModel) open(target formTarget, label, value string, multiline bool) {
	m.promptTarget = target
	m.prompt = newPrompt(label, value, multiline)
}

func (m *entityFormModel) apply(target formTarget, value string) {
	switch target {
	case targetEntityName:
		m.name = value
	case targetEntityField:
		if i := m.cursor - 1; i >= 0 && i < len(m.fields) {
			m.fields[i].text = value
		}
	case targetLooseKey:
		_, _ = m.loose.SetKey(m.cursor-1-len(m.fields), value)
	case targetLooseValue:
		_, _ = m.loose.SetValue(m.cursor-1-len(m.fields), value)
	}
}

func (m *entityFormModel) rowCount() int {
	return 1 + len(m.fields) + m.loose.Len()
}

func (m *entityFormModel) View() string {
	if m.overlay != nil {
		return m.overlay.View()
	}

	title := "НОВАЯ ЗАПИСЬ: " + strings.ToUpper(m.entityType.Name)
	if m.entityID != "" {
		title = "РЕДАКТИРОВАНИЕ ЗАПИСИ: " + strings.ToUpper(m.entityType.Name)
	}

	var b strings.Builder
	b.WriteString(statusLines("", m.status))
	b.WriteString(fmt.Sprintf("%s Название: %s\n\n", cursor(m.cursor == 0), valueOrDash(m.name)))

	for i, in := range m.fields {
		b.WriteString(cursor(m.cursor == i+1))
		b.WriteString(" ")
		b.WriteString(renderFieldInput(in))
		b.WriteString("\n")
	}

	b.WriteString("\nДополнительно:\n")
	rows := m.loose.Rows()
	if len(rows) == 0 {
		b.WriteString("  нет, a: добавить\n")
	}
	for i, row := range rows {
		b.WriteString(fmt.Sprintf("%s %s = %s (%s)\n",
			cursor(m.cursor == 1+len(m.fields)+i),
			pad(valueOrDash(row.Key), 16),
			valueOrDash(row.Value),
			row.ValueType,
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
		"enter: изменить | space: флажок | a: доп. поле | x: удалить | t: тип | k: ключ | v: значение | ctrl+s: сохранить | esc: назад",
	)
}

func renderFieldInput(in fieldInput) string {
	label := in.def.DisplayName()
	if in.def.Required {
		label += "*"
	}

	switch in.def.Type {
	case models.FieldBoolean:
		return checkbox(in.checked) + " " + label
	case models.FieldImage:
		value := valueOrDash(in.reference)
		if strings.TrimSpace(in.text) != "" {
			value = "новый файл: " + in.text
		}
		return label + ": " + value
	default:
		return label + ": " + valueOrDash(fitText(strings.ReplaceAll(in.text, "\n", " "), 60))
	}
}
