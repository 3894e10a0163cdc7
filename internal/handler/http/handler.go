package http

import (
	"net/http"

	"github.com/MKhiriev/go-pin-vault/internal/config"
	"github.com/MKhiriev/go-pin-vault/internal/logger"
	"github.com/MKhiriev/go-pin-vault/internal/store"
	"github.com/MKhiriev/go-pin-vault/internal/utils"
)

type Handler struct {
	backups store.BackupStore
	app     config.ServerApp

	logger *logger.Logger
}

func NewHandler(backups store.BackupStore, app config.ServerApp, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		backups: backups,
		app:     app,
		logger:  logger,
	}
}

// writeJSON serializes v into the response body via [utils.WriteJSON],
// logging serialization failures with the request's logger.
func (h *Handler) writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	if _, err := utils.WriteJSON(w, v, status); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.writeJSON").Msg("error encoding response body")
	}
}
