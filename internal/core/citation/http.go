// Copyright (c) 2026 Citeline. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package citation

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
	router.Get("/", handler.listCitations)
	router.Get("/{id}", handler.getCitation)

	// Authenticated users may contribute citations
	router.Group(func(userRoute chi.Router) {
		userRoute.Use(middleware.RequireGroup(sec.GroupUsers))

		userRoute.Post("/", handler.createCitation)
		userRoute.Patch("/{id}", handler.updateCitation)

		// Admin strict only
		userRoute.With(middleware.RequireGroup(sec.GroupAdmin)).Delete("/{id}", handler.deleteCitation)
	})
}

func (handler *Handler) listCitations(writer http.ResponseWriter, request *http.Request) {
	paginationParams := pagination.FromRequest(request)

	filter := Filter{
		Kind: Kind(request.URL.Query().Get("kind")),
	}
	if raw := request.URL.Query().Get("source"); raw != "" {
		id, err := document.ParseID(raw)
		if err != nil {
			respond.Error(writer, request, err)
			return
		}
		filter.Source = id
	}

	citations, total, err := handler.service.ListCitations(request.Context(), filter, paginationParams.Limit, paginationParams.Offset())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	serialized := make([]document.Map, len(citations))
	for i, c := range citations {
		serialized[i] = c.Serialize()
	}

	respond.Paginated(writer, serialized, pagination.NewMeta(paginationParams.Page, paginationParams.Limit, total))
}

func (handler *Handler) getCitation(writer http.ResponseWriter, request *http.Request) {
	id, err := document.ParseID(requestutil.ID(request, "id"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	citation, err := handler.service.GetCitation(request.Context(), id)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, citation.Serialize())
}

func (handler *Handler) createCitation(writer http.ResponseWriter, request *http.Request) {
	var input document.Map
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	citation := &Citation{}
	if err := citation.Deserialize(input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.CreateCitation(request.Context(), citation); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, citation.Serialize())
}

func (handler *Handler) updateCitation(writer http.ResponseWriter, request *http.Request) {
	id, err := document.ParseID(requestutil.ID(request, "id"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	citation, err := handler.service.GetCitation(request.Context(), id)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input document.Map
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := citation.Deserialize(input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.UpdateCitation(request.Context(), id, citation); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, citation.Serialize())
}

func (handler *Handler) deleteCitation(writer http.ResponseWriter, request *http.Request) {
	id, err := document.ParseID(requestutil.ID(request, "id"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.DeleteCitation(request.Context(), id); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}
