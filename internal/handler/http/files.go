package http

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
)

func (h *Handler) getFile(w http.ResponseWriter, r *http.Request) {
	data, err := h.services.FileService.Load(r.Context(), chi.URLParam(r, "name"))
	if err != nil {
		writeError(w, r, err, "*Handler.getFile")
		return
	}

	w.Header().Set("Content-Type", http.DetectContentType(data))
	w.Header().Set("Content-Length", strconv.Itoa(len(data)))
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}
