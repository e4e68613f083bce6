// Copyright (c) 2026 Citeline. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package auth

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/citeline/internal/platform/apperr"
	"github.com/taibuivan/citeline/internal/platform/constants"
	"github.com/taibuivan/citeline/internal/platform/document"
	"github.com/taibuivan/citeline/internal/platform/middleware"
	requestutil "github.com/taibuivan/citeline/internal/platform/request"
	"github.com/taibuivan/citeline/internal/platform/respond"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (handler *Handler) RegisterRoutes(router chi.Router) {
	// Public
	router.Post("/login", handler.login)
	router.Post("/confirm", handler.confirm)

	// Authenticated
	router.With(middleware.RequireAuth).Delete("/logout", handler.logout)
	router.With(middleware.RequireAuth).Post("/confirm-token", handler.issueConfirmToken)
}

type loginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type confirmInput struct {
	Key string `json:"key"`
}

func (handler *Handler) login(writer http.ResponseWriter, request *http.Request) {
	var input loginInput
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	token, err := handler.service.Login(request.Context(), input.Email, input.Password)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, token.Serialize())
}

func (handler *Handler) logout(writer http.ResponseWriter, request *http.Request) {
	key, err := bearerKey(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.Logout(request.Context(), key); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}

func (handler *Handler) issueConfirmToken(writer http.ResponseWriter, request *http.Request) {
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

	token, err := handler.service.IssueConfirmToken(request.Context(), id)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, token.Serialize())
}

func (handler *Handler) confirm(writer http.ResponseWriter, request *http.Request) {
	var input confirmInput
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	user, err := handler.service.ConfirmUser(request.Context(), input.Key)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, user.Serialize())
}

// bearerKey re-extracts the raw token key from the Authorization header, for
// the logout path that needs the key itself rather than the principal.
func bearerKey(request *http.Request) (string, error) {
	header := request.Header.Get(constants.HeaderAuthorization)

	parts := strings.Split(header, " ")
	if len(parts) != 2 || strings.ToLower(parts[0]) != "key" {
		return "", apperr.Unauthorized("Authentication required")
	}

	return parts[1], nil
}
