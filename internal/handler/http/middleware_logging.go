package http

import (
	"net/http"
	"time"

	"github.com/MKhiriev/go-pin-vault/internal/logger"
)

// withLogging writes one access-log line per request, after the handler has
// run. It logs through the request-scoped logger, so the entry carries the
// trace id installed by withTraceID.
func (h *Handler) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		lw := &responseWriter{ResponseWriter: w}
		next.ServeHTTP(lw, r)

		status := lw.status
		if status == 0 {
			status = http.StatusOK
		}

		logger.FromRequest(r).Info().
			Str("method", r.Method).
			Str("uri", r.RequestURI).
			Str("remote", r.RemoteAddr).
			Int("status", status).
			Int("bytes", lw.size).
			Dur("duration", time.Since(start)).
			Msg("request handled")
	})
}
