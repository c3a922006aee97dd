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
	router.Use(withGzip)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/api/auth/register", h.register)
		r.Post("/api/auth/login", h.login)
	})

	// routes requiring a valid bearer token
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Get("/api/categories", h.getCategories)
		r.Post("/api/categories", h.createCategory)

		r.Get("/api/entries", h.getEntries)
		r.Post("/api/entries", h.createEntry)
		r.Delete("/api/entries/{entryID}", h.deleteEntry)

		r.Post("/api/reset", h.reset)
	})

	return router
}
