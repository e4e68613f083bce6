// Copyright (c) 2026 Citeline. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package people

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
	router.Get("/", handler.listPeople)
	router.Get("/{id}", handler.getPerson)

	// Staff Only
	router.Group(func(staffRoute chi.Router) {
		staffRoute.Use(middleware.RequireGroup(sec.GroupStaff))

		staffRoute.Post("/", handler.createPerson)
		staffRoute.Patch("/{id}", handler.updatePerson)

		// Admin strict only
		staffRoute.With(middleware.RequireGroup(sec.GroupAdmin)).Delete("/{id}", handler.deletePerson)
	})
}

func (handler *Handler) listPeople(writer http.ResponseWriter, request *http.Request) {
	paginationParams := pagination.FromRequest(request)

	filter := Filter{
		Query: request.URL.Query().Get("q"),
	}

	people, total, err := handler.service.ListPeople(request.Context(), filter, paginationParams.Limit, paginationParams.Offset())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	serialized := make([]document.Map, len(people))
	for i, p := range people {
		serialized[i] = p.Serialize()
	}

	respond.Paginated(writer, serialized, pagination.NewMeta(paginationParams.Page, paginationParams.Limit, total))
}

func (handler *Handler) getPerson(writer http.ResponseWriter, request *http.Request) {
	id, err := document.ParseID(requestutil.ID(request, "id"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	person, err := handler.service.GetPerson(request.Context(), id)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, person.Serialize())
}

func (handler *Handler) createPerson(writer http.ResponseWriter, request *http.Request) {
	var input document.Map
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	person := &Person{}
	if err := person.Deserialize(input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.CreatePerson(request.Context(), person); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, person.Serialize())
}

func (handler *Handler) updatePerson(writer http.ResponseWriter, request *http.Request) {
	id, err := document.ParseID(requestutil.ID(request, "id"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	person, err := handler.service.GetPerson(request.Context(), id)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input document.Map
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := person.Deserialize(input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.UpdatePerson(request.Context(), id, person); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, person.Serialize())
}

func (handler *Handler) deletePerson(writer http.ResponseWriter, request *http.Request) {
	id, err := document.ParseID(requestutil.ID(request, "id"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.DeletePerson(request.Context(), id); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}
