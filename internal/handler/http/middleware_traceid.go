package http

import (
	"net/http"
	"unicode"

	"github.com/MKhiriev/go-schema-keeper/internal/utils"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// maxTraceIDLength bounds a caller supplied trace id.
const maxTraceIDLength = 128

// withTraceID reuses the caller's X-Trace-ID or mints one, then stores it
// both in a request-scoped child logger and under [utils.TraceIDCtxKey].
// Oversized or non printable ids are replaced.
func (h *Handler) withTraceID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		traceID := r.Header.Get(utils.TraceIDHeader)
		if !acceptableTraceID(traceID) {
			traceID = uuid.NewString()
		}

		l := h.logger.GetChildLogger()
		l.UpdateContext(func(c zerolog.Context) zerolog.Context {
			return c.Str("trace_id", traceID)
		})

		ctx := utils.WithTraceID(r.Context(), traceID)
		r = r.WithContext(l.WithContext(ctx))

		w.Header().Set(utils.TraceIDHeader, traceID)
		next.ServeHTTP(w, r)
	})
}

func acceptableTraceID(traceID string) bool {
	if traceID == "" || len(traceID) > maxTraceIDLength {
		return false
	}
	for _, r := range traceID {
		if !unicode.IsPrint(r) || unicode.IsSpace(r) {
			return false
		}
	}
	return true
}
