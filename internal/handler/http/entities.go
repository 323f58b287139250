package http

import (
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-schema-keeper/internal/envelope"
	"github.com/MKhiriev/go-schema-keeper/internal/utils"
	"github.com/MKhiriev/go-schema-keeper/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) listEntities(w http.ResponseWriter, r *http.Request) {
	entities, err := h.services.EntityService.List(r.Context(), r.URL.Query().Get(envelope.FieldTypeID))
	if err != nil {
		writeError(w, r, err, "*Handler.listEntities")
		return
	}
	if entities == nil {
		entities = []models.Entity{}
	}

	utils.WriteJSON(w, models.ListResponse[models.Entity]{Data: entities}, http.StatusOK)
}

func (h *Handler) createEntity(w http.ResponseWriter, r *http.Request) {
	draft, err := h.decodeEntityForm(r)
	if err != nil {
		writeError(w, r, err, "*Handler.createEntity")
		return
	}

	created, err := h.services.EntityService.Create(r.Context(), draft)
	if err != nil {
		writeError(w, r, err, "*Handler.createEntity")
		return
	}

	utils.WriteJSON(w, created, http.StatusCreated)
}

func (h *Handler) updateEntity(w http.ResponseWriter, r *http.Request) {
	draft, err := h.decodeEntityForm(r)
	if err != nil {
		writeError(w, r, err, "*Handler.updateEntity")
		return
	}

	updated, err := h.services.EntityService.Update(r.Context(), chi.URLParam(r, "id"), draft)
	if err != nil {
		writeError(w, r, err, "*Handler.updateEntity")
		return
	}

	utils.WriteJSON(w, updated, http.StatusOK)
}

func (h *Handler) deleteEntity(w http.ResponseWriter, r *http.Request) {
	if err := h.services.EntityService.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeError(w, r, err, "*Handler.deleteEntity")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// decodeEntityForm reads the envelope and decodes its metadata against the
// schema of the referenced type. A missing type_id is left for the service
// validator to reject.
func (h *Handler) decodeEntityForm(r *http.Request) (models.EntityDraft, error) {
	if err := r.ParseMultipartForm(maxMultipartMemory); err != nil {
		return models.EntityDraft{}, fmt.Errorf("%w: %w", ErrInvalidMultipartForm, err)
	}

	var defs []models.FieldDefinition
	if typeID := r.MultipartForm.Value[envelope.FieldTypeID]; len(typeID) > 0 && typeID[0] != "" {
		et, err := h.services.EntityTypeService.Get(r.Context(), typeID[0])
		if err != nil {
			return models.EntityDraft{}, err
		}
		defs = et.Fields
	}

	return envelope.DecodeForm(r.MultipartForm, defs)
}
