package tui

import (
	"github.com/MKhiriev/go-schema-keeper/models"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	pageTypes      = "types"
	pageSchema     = "schema"
	pageEntities   = "entities"
	pageEntityForm = "entity_form"
)

// NavigateTo switches the active page. A non-nil Payload is delivered to the
// new page instead of calling its Init.
type NavigateTo struct {
	Page    string
	Payload tea.Msg
}

// navigateBackMsg returns to the previous page, re-running its Init.
type navigateBackMsg struct{}

type quitMsg struct{}

type typesLoadedMsg struct {
	entries []models.EntityTypeEntry
	err     error
}

type typeSavedMsg struct {
	entityType models.EntityType
	err        error
}

type typeDeletedMsg struct {
	err error
}

type entitiesLoadedMsg struct {
	typeID   string
	entities []models.Entity
	err      error
}

type entitySavedMsg struct {
	entity models.Entity
	err    error
}

type entityDeletedMsg struct {
	err error
}

type copiedMsg struct {
	err error
}

// editSchemaMsg opens the schema editor; a zero entry starts a new type.
type editSchemaMsg struct {
	entry    models.EntityTypeEntry
	creating bool
}

type openEntitiesMsg struct {
	entityType models.EntityType
}

// editEntityMsg opens the entity form; a nil entity starts a new record.
type editEntityMsg struct {
	entityType models.EntityType
	entity     *models.Entity
}
