package http

import (
	"crypto/subtle"
	"net/http"

	"github.com/MKhiriev/go-pin-vault/internal/logger"
)

const apiKeyHeader = "X-API-KEY"

// apiKeyAuth enforces the static API key on /api routes.
//
// The presented key is compared in constant time so response timing leaks
// nothing about the configured value. Requests are rejected with HTTP 401
// Unauthorized when the header is absent ([ErrMissingAPIKey]) or when the
// key does not match ([ErrWrongAPIKey]). Rejections are logged via the
// context-scoped logger obtained from [logger.FromRequest].
func (h *Handler) apiKeyAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		key := r.Header.Get(apiKeyHeader)
		if key == "" {
			log.Err(ErrMissingAPIKey).Send()
			http.Error(w, ErrMissingAPIKey.Error(), http.StatusUnauthorized)
			return
		}

		if subtle.ConstantTimeCompare([]byte(key), []byte(h.app.APIKey)) != 1 {
			log.Err(ErrWrongAPIKey).Send()
			http.Error(w, ErrWrongAPIKey.Error(), http.StatusUnauthorized)
			return
		}

		next.ServeHTTP(w, r)
	})
}
