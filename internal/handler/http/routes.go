package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID, h.withLogging)

	router.Get("/api/version", h.getServerVersion)

	// entity types
	router.Get("/api/entity-types", h.listEntityTypes)
	router.Post("/api/entity-types", h.createEntityType)
	router.Put("/api/entity-types/{id}", h.updateEntityType)
	router.Delete("/api/entity-types/{id}", h.deleteEntityType)

	// entities
	router.Get("/api/entities", h.listEntities)
	router.Post("/api/entities", h.createEntity)
	router.Put("/api/entities/{id}", h.updateEntity)
	router.Delete("/api/entities/{id}", h.deleteEntity)

	router.Get("/api/files/{name}", h.getFile)

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
