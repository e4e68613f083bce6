// Copyright (c) 2026 Citeline. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package account

import (
	"context"
	"log/slog"

	"github.com/taibuivan/citeline/internal/platform/apperr"
	"github.com/taibuivan/citeline/internal/platform/document"
	"github.com/taibuivan/citeline/internal/platform/metrics"
	"github.com/taibuivan/citeline/pkg/uuidv7"
)

type Service struct {
	repo    Repository
	logger  *slog.Logger
	metrics *metrics.Metrics
}

func NewService(repo Repository, logger *slog.Logger, m *metrics.Metrics) *Service {
	return &Service{
		repo:    repo,
		logger:  logger,
		metrics: m,
	}
}

func (service *Service) GetUser(context context.Context, id document.ID) (*User, error) {
	return service.repo.GetUser(context, id)
}

func (service *Service) GetUserByEmail(context context.Context, email string) (*User, error) {
	return service.repo.GetUserByEmail(context, email)
}

// Register creates an unconfirmed account with the given credentials.
// Email uniqueness is the store's constraint; its violation surfaces as
// CONFLICT.
func (service *Service) Register(context context.Context, email, password string) (*User, error) {
	user := &User{Email: email}

	if err := user.SetPassword(password); err != nil {
		return nil, err
	}

	user.Clean()
	if err := user.Validate(); err != nil {
		return nil, err
	}

	user.ID = document.ID(uuidv7.New())

	if err := service.repo.CreateUser(context, user); err != nil {
		return nil, err
	}

	service.metrics.IncrementUsersRegistered()
	service.logger.Info("user_registered", slog.String("user_id", user.ID.String()))
	return user, nil
}

// Update applies a deserialized change set to an existing account.
func (service *Service) Update(context context.Context, id document.ID, user *User) error {
	user.ID = id
	user.Clean()
	if err := user.Validate(); err != nil {
		return err
	}

	if err := service.repo.UpdateUser(context, user); err != nil {
		return err
	}

	service.logger.Info("user_updated", slog.String("user_id", user.ID.String()))
	return nil
}

// ChangePassword verifies the current credential before storing a new one.
func (service *Service) ChangePassword(context context.Context, id document.ID, current, next string) error {
	user, err := service.repo.GetUser(context, id)
	if err != nil {
		return err
	}

	ok, err := user.CheckPassword(current)
	if err != nil {
		return err
	}
	if !ok {
		return apperr.Unauthorized("Invalid login credentials")
	}

	if err := user.SetPassword(next); err != nil {
		return err
	}

	if err := service.repo.UpdateUser(context, user); err != nil {
		return err
	}

	service.logger.Info("user_password_changed", slog.String("user_id", user.ID.String()))
	return nil
}

func (service *Service) Delete(context context.Context, id document.ID) error {
	if err := service.repo.DeleteUser(context, id); err != nil {
		return err
	}

	service.logger.Warn("user_deleted", slog.String("user_id", id.String()))
	return nil
}
