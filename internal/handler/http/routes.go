package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(h.withTraceID, h.withLogging, h.withRequestMetrics, middleware.Recoverer)

	// browser UI
	router.Get("/", h.index)
	router.Get("/static/*", h.static())

	// stego operations
	router.Group(func(r chi.Router) {
		r.Use(middleware.Timeout(h.cfg.RequestTimeout))
		r.Use(h.withBodyLimit)

		r.Post("/encrypt", h.encrypt)
		r.With(withGZip).Post("/decrypt", h.decrypt)
	})

	// operational routes
	router.Route("/api", func(r chi.Router) {
		r.Get("/version/", h.getServerVersion)
		r.With(withGZip).Get("/health/", h.health)
	})
	router.Method(http.MethodGet, "/metrics", h.metrics.Handler())

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
