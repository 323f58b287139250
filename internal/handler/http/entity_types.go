package http

import (
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-schema-keeper/internal/logger"
	"github.com/MKhiriev/go-schema-keeper/internal/utils"
	"github.com/MKhiriev/go-schema-keeper/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) listEntityTypes(w http.ResponseWriter, r *http.Request) {
	types, err := h.services.EntityTypeService.List(r.Context())
	if err != nil {
		writeError(w, r, err, "*Handler.listEntityTypes")
		return
	}
	if types == nil {
		types = []models.EntityType{}
	}

	utils.WriteJSON(w, models.ListResponse[models.EntityType]{Data: types}, http.StatusOK)
}

func (h *Handler) createEntityType(w http.ResponseWriter, r *http.Request) {
	payload, err := decodeEntityTypePayload(w, r)
	if err != nil {
		writeError(w, r, err, "*Handler.createEntityType")
		return
	}

	created, err := h.services.EntityTypeService.Create(r.Context(), payload)
	if err != nil {
		writeError(w, r, err, "*Handler.createEntityType")
		return
	}

	logger.FromRequest(r).Debug().Str("id", created.ID).Str("slug", created.Slug).Msg("entity type created")
	utils.WriteJSON(w, created, http.StatusCreated)
}

func (h *Handler) updateEntityType(w http.ResponseWriter, r *http.Request) {
	payload, err := decodeEntityTypePayload(w, r)
	if err != nil {
		writeError(w, r, err, "*Handler.updateEntityType")
		return
	}

	updated, err := h.services.EntityTypeService.Update(r.Context(), chi.URLParam(r, "id"), payload)
	if err != nil {
		writeError(w, r, err, "*Handler.updateEntityType")
		return
	}

	utils.WriteJSON(w, updated, http.StatusOK)
}

func (h *Handler) deleteEntityType(w http.ResponseWriter, r *http.Request) {
	if err := h.services.EntityTypeService.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeError(w, r, err, "*Handler.deleteEntityType")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func decodeEntityTypePayload(w http.ResponseWriter, r *http.Request) (models.EntityTypePayload, error) {
	var payload models.EntityTypePayload
	if err := utils.DecodeJSON(w, r, &payload); err != nil {
		return models.EntityTypePayload{}, fmt.Errorf("%w: %w", ErrInvalidJSON, err)
	}
	return payload, nil
}
