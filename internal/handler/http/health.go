package http

import (
	"net/http"

	"github.com/MKhiriev/go-pin-vault/models"
)

// health serves both the authorized /api/health route and the bare /health
// probe route. Reaching it at all is the signal; the body is a fixed shape.
func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, r, http.StatusOK, models.HealthResponse{Status: models.HealthStatusOK})
}
