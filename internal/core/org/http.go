// Copyright (c) 2026 Citeline. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package org

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
	// Public; {key} accepts a UUID or a slug
	router.Get("/", handler.listOrganizations)
	router.Get("/{key}", handler.getOrganization)

	// Staff Only
	router.Group(func(staffRoute chi.Router) {
		staffRoute.Use(middleware.RequireGroup(sec.GroupStaff))

		staffRoute.Post("/", handler.createOrganization)
		staffRoute.Patch("/{id}", handler.updateOrganization)

		// Admin strict only
		staffRoute.With(middleware.RequireGroup(sec.GroupAdmin)).Delete("/{id}", handler.deleteOrganization)
	})
}

func (handler *Handler) listOrganizations(writer http.ResponseWriter, request *http.Request) {
	paginationParams := pagination.FromRequest(request)

	filter := Filter{
		Query: request.URL.Query().Get("q"),
		Kind:  Kind(request.URL.Query().Get("kind")),
	}

	organizations, total, err := handler.service.ListOrganizations(request.Context(), filter, paginationParams.Limit, paginationParams.Offset())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	serialized := make([]document.Map, len(organizations))
	for i, o := range organizations {
		serialized[i] = o.Serialize()
	}

	respond.Paginated(writer, serialized, pagination.NewMeta(paginationParams.Page, paginationParams.Limit, total))
}

func (handler *Handler) getOrganization(writer http.ResponseWriter, request *http.Request) {
	key := requestutil.Param(request, "key")

	organization, err := handler.service.GetOrganizationByKey(request.Context(), key)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, organization.Serialize())
}

func (handler *Handler) createOrganization(writer http.ResponseWriter, request *http.Request) {
	var input document.Map
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	organization := &Organization{}
	if err := organization.Deserialize(input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.CreateOrganization(request.Context(), organization); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, organization.Serialize())
}

func (handler *Handler) updateOrganization(writer http.ResponseWriter, request *http.Request) {
	id, err := document.ParseID(requestutil.ID(request, "id"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	organization, err := handler.service.GetOrganization(request.Context(), id)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input document.Map
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := organization.Deserialize(input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.UpdateOrganization(request.Context(), id, organization); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, organization.Serialize())
}

func (handler *Handler) deleteOrganization(writer http.ResponseWriter, request *http.Request) {
	id, err := document.ParseID(requestutil.ID(request, "id"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.DeleteOrganization(request.Context(), id); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}
