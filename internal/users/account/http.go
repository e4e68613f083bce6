// Copyright (c) 2026 Citeline. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package account

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/citeline/internal/platform/apperr"
	"github.com/taibuivan/citeline/internal/platform/document"
	"github.com/taibuivan/citeline/internal/platform/middleware"
	requestutil "github.com/taibuivan/citeline/internal/platform/request"
	"github.com/taibuivan/citeline/internal/platform/respond"
	"github.com/taibuivan/citeline/internal/platform/sec"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (handler *Handler) RegisterRoutes(router chi.Router) {
	// Public
	router.Post("/", handler.register)

	// Authenticated self-service
	router.Group(func(selfRoute chi.Router) {
		selfRoute.Use(middleware.RequireAuth)

		selfRoute.Get("/me", handler.getMe)
		selfRoute.Patch("/me", handler.updateMe)
		selfRoute.Put("/me/password", handler.changePassword)
	})

	// Admin strict only
	router.Group(func(adminRoute chi.Router) {
		adminRoute.Use(middleware.RequireGroup(sec.GroupAdmin))

		adminRoute.Get("/{id}", handler.getUser)
		adminRoute.Delete("/{id}", handler.deleteUser)
	})
}

type registerInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type changePasswordInput struct {
	Current string `json:"current"`
	New     string `json:"new"`
}

func (handler *Handler) register(writer http.ResponseWriter, request *http.Request) {
	var input registerInput
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	user, err := handler.service.Register(request.Context(), input.Email, input.Password)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, user.Serialize())
}

func (handler *Handler) getMe(writer http.ResponseWriter, request *http.Request) {
	user, err := handler.currentUser(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, user.Serialize())
}

func (handler *Handler) updateMe(writer http.ResponseWriter, request *http.Request) {
	user, err := handler.currentUser(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input document.Map
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	// Membership changes go through the admin surface, never self-service.
	delete(input, keyUserGroups)

	if err := user.Deserialize(input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.Update(request.Context(), user.ID, user); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, user.Serialize())
}

func (handler *Handler) changePassword(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	id, err := document.ParseID(userID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input changePasswordInput
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.ChangePassword(request.Context(), id, input.Current, input.New); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}

func (handler *Handler) getUser(writer http.ResponseWriter, request *http.Request) {
	id, err := document.ParseID(requestutil.ID(request, "id"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	user, err := handler.service.GetUser(request.Context(), id)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, user.Serialize())
}

func (handler *Handler) deleteUser(writer http.ResponseWriter, request *http.Request) {
	id, err := document.ParseID(requestutil.ID(request, "id"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.Delete(request.Context(), id); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}

func (handler *Handler) currentUser(request *http.Request) (*User, error) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		return nil, err
	}

	id, err := document.ParseID(userID)
	if err != nil {
		return nil, apperr.Unauthorized("Authentication required")
	}

	return handler.service.GetUser(request.Context(), id)
}
