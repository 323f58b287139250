package http

import (
	"net/http"
)

// getServerVersion answers GET /api/version with the configured version as plain text.
func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	version := h.services.AppInfoService.GetAppVersion(r.Context())

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte(version)); err != nil {
		h.logger.Err(err).Str("func", "*Handler.getServerVersion").Msg("write version")
	}
}
