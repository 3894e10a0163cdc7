package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)

	// probe route without authorization
	router.Group(func(r chi.Router) {
		r.Get("/health", h.health)
	})

	// backup API behind the static key
	router.Group(func(r chi.Router) {
		r.Use(h.apiKeyAuth)
		r.Get("/api/health", h.health)
		r.Get("/api/backups/", h.listBackups)
		r.Get("/api/backups/latest/", h.latestBackup)
		r.Post("/api/backups/export/", h.exportBackup)
		r.Post("/api/backups/import/", h.importBackup)
	})

	return router
}
