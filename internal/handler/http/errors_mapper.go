package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-schema-keeper/internal/app"
	"github.com/MKhiriev/go-schema-keeper/internal/logger"
	"github.com/MKhiriev/go-schema-keeper/internal/service"
	"github.com/MKhiriev/go-schema-keeper/internal/store"
	"github.com/MKhiriev/go-schema-keeper/internal/utils"
	"github.com/MKhiriev/go-schema-keeper/models"
)

type errorStatus struct {
	target  error
	status  int
	message string
}

// errorStatusMap is checked in order: wrapped validation errors carry
// ErrInvalidDataProvided first, so it must win over anything below it.
var errorStatusMap = []errorStatus{
	{service.ErrInvalidDataProvided, http.StatusBadRequest, app.MsgInvalidDataProvided},
	{ErrInvalidJSON, http.StatusBadRequest, app.MsgInvalidDataProvided},
	{ErrInvalidMultipartForm, http.StatusBadRequest, app.MsgInvalidMultipartForm},

	{store.ErrEntityTypeNotFound, http.StatusNotFound, store.ErrEntityTypeNotFound.Error()},
	{store.ErrEntityNotFound, http.StatusNotFound, store.ErrEntityNotFound.Error()},
	{store.ErrBlobNotFound, http.StatusNotFound, store.ErrBlobNotFound.Error()},
	{store.ErrSlugAlreadyExists, http.StatusConflict, store.ErrSlugAlreadyExists.Error()},
}

func statusFromError(err error) (int, string) {
	for _, es := range errorStatusMap {
		if errors.Is(err, es.target) {
			return es.status, es.message
		}
	}
	return http.StatusInternalServerError, app.MsgInternalServerError
}

// writeError logs err and answers with its mapped status and a JSON
// {"error": "..."} body.
func writeError(w http.ResponseWriter, r *http.Request, err error, caller string) {
	status, message := statusFromError(err)

	log := logger.FromRequest(r)
	event := log.Warn()
	if status >= http.StatusInternalServerError {
		event = log.Error()
	}
	event.Err(err).Str("func", caller).Int("status", status).Msg(message)

	utils.WriteJSON(w, models.ErrorResponse{Error: message}, status)
}
