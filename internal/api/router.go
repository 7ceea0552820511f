package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/InfoRubix/filecase-tracking-management-system/internal/api/middleware"
)

// RouterOptions selects optional parts of the HTTP surface.
type RouterOptions struct {
	// ActionEndpoint mounts the action dispatcher on /exec.
	ActionEndpoint bool
	// AccessLog writes one log line per request.
	AccessLog bool
}

// NewRouter wires the REST routes, the optional action endpoint and the
// operational endpoints behind the common middleware chain.
func NewRouter(h *Handler, opts RouterOptions) http.Handler {
	router := chi.NewRouter()

	router.Use(middleware.RequestID)
	if opts.AccessLog {
		router.Use(middleware.RequestLogger(h.logger.Named("http")))
	}
	router.Use(middleware.Metrics)
	router.Use(chimiddleware.Recoverer)

	router.Get("/health", h.health)
	router.Method(http.MethodGet, "/metrics", promhttp.Handler())

	if opts.ActionEndpoint {
		router.Get("/exec", h.execGet)
		router.Post("/exec", h.execPost)
	}

	router.Route("/api", func(r chi.Router) {
		r.Post("/auth/login", h.login)
		r.Post("/auth/logout", h.logout)
		r.Get("/auth/verify", h.verify)
		r.Get("/files/search", h.searchFiles)

		r.Group(func(r chi.Router) {
			r.Use(requireSession)

			r.Get("/files/all", h.allFiles)
			r.Post("/files/create", h.createFile)
			r.Post("/files/update", h.updateFile)
			r.Post("/files/delete", h.deleteFile)

			r.Get("/racks", h.rackLookup)
			r.Post("/racks/create", h.createRack)
			r.Post("/racks/delete", h.deleteRack)
			r.Post("/racks/add-kotak", h.addKotak)
			r.Post("/racks/delete-kotak", h.deleteKotak)

			r.Get("/boxes/available", h.availableBoxes)
			r.Post("/boxes/create", h.createBox)
			r.Post("/boxes/delete", h.deleteBox)

			r.Get("/categories", h.categories)
			r.Post("/categories", h.createCategory)
			r.Get("/types", h.types)
			r.Post("/types", h.createType)

			r.Post("/logs", h.addLog)
		})
	})

	return router
}
