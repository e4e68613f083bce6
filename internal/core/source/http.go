// Copyright (c) 2026 Citeline. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package source

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/citeline/internal/platform/document"
	"github.com/taibuivan/citeline/internal/platform/middleware"
	requestutil "github.com/taibuivan/citeline/internal/platform/request"
	"github.com/taibuivan/citeline/internal/platform/respond"
	"github.com/taibuivan/citeline/internal/platform/sec"
	"github.com/taibuivan/citeline/pkg/pagination"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (handler *Handler) RegisterRoutes(router chi.Router) {
	// Public
	router.Get("/", handler.listSources)
	router.Get("/{id}", handler.getSource)

	// Authenticated users may contribute sources
	router.Group(func(userRoute chi.Router) {
		userRoute.Use(middleware.RequireGroup(sec.GroupUsers))

		userRoute.Post("/", handler.createSource)
		userRoute.Patch("/{id}", handler.updateSource)

		// Admin strict only
		userRoute.With(middleware.RequireGroup(sec.GroupAdmin)).Delete("/{id}", handler.deleteSource)
	})
}

func (handler *Handler) listSources(writer http.ResponseWriter, request *http.Request) {
	paginationParams := pagination.FromRequest(request)

	filter := Filter{
		Query: request.URL.Query().Get("q"),
		Kind:  Kind(request.URL.Query().Get("kind")),
	}

	sources, total, err := handler.service.ListSources(request.Context(), filter, paginationParams.Limit, paginationParams.Offset())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	serialized := make([]document.Map, len(sources))
	for i, s := range sources {
		serialized[i] = s.Serialize()
	}

	respond.Paginated(writer, serialized, pagination.NewMeta(paginationParams.Page, paginationParams.Limit, total))
}

func (handler *Handler) getSource(writer http.ResponseWriter, request *http.Request) {
	id, err := document.ParseID(requestutil.ID(request, "id"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	source, err := handler.service.GetSource(request.Context(), id)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, source.Serialize())
}

func (handler *Handler) createSource(writer http.ResponseWriter, request *http.Request) {
	var input document.Map
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	source := &Source{}
	if err := source.Deserialize(input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.CreateSource(request.Context(), source); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, source.Serialize())
}

func (handler *Handler) updateSource(writer http.ResponseWriter, request *http.Request) {
	id, err := document.ParseID(requestutil.ID(request, "id"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	source, err := handler.service.GetSource(request.Context(), id)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input document.Map
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := source.Deserialize(input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.UpdateSource(request.Context(), id, source); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, source.Serialize())
}

func (handler *Handler) deleteSource(writer http.ResponseWriter, request *http.Request) {
	id, err := document.ParseID(requestutil.ID(request, "id"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.DeleteSource(request.Context(), id); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}
