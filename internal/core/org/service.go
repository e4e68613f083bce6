// Copyright (c) 2026 Citeline. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package org

import (
	"context"
	"log/slog"

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

func (service *Service) ListOrganizations(context context.Context, filter Filter, limit, offset int) ([]*Organization, int, error) {
	return service.repo.ListOrganizations(context, filter, limit, offset)
}

func (service *Service) GetOrganization(context context.Context, id document.ID) (*Organization, error) {
	return service.repo.GetOrganization(context, id)
}

// GetOrganizationByKey looks an organization up by UUID or, failing the
// UUID shape check, by its slug.
func (service *Service) GetOrganizationByKey(context context.Context, key string) (*Organization, error) {
	if id, err := document.ParseID(key); err == nil {
		return service.repo.GetOrganization(context, id)
	}
	return service.repo.GetOrganizationBySlug(context, key)
}

func (service *Service) CreateOrganization(context context.Context, organization *Organization) error {
	organization.Clean()
	if err := organization.Validate(); err != nil {
		return err
	}

	if organization.ID.IsZero() {
		organization.ID = document.ID(uuidv7.New())
	}

	if err := service.repo.CreateOrganization(context, organization); err != nil {
		return err
	}

	service.metrics.IncrementEntityOp("organization", "create")
	service.logger.Info("organization_created",
		slog.String("organization_id", organization.ID.String()),
		slog.String("kind", string(organization.Kind)),
		slog.String("name", organization.Name),
	)
	return nil
}

func (service *Service) UpdateOrganization(context context.Context, id document.ID, organization *Organization) error {
	organization.ID = id
	organization.Clean()
	if err := organization.Validate(); err != nil {
		return err
	}

	if err := service.repo.UpdateOrganization(context, organization); err != nil {
		return err
	}

	service.metrics.IncrementEntityOp("organization", "update")
	service.logger.Info("organization_updated", slog.String("organization_id", organization.ID.String()))
	return nil
}

func (service *Service) DeleteOrganization(context context.Context, id document.ID) error {
	if err := service.repo.DeleteOrganization(context, id); err != nil {
		return err
	}

	service.metrics.IncrementEntityOp("organization", "delete")
	service.logger.Warn("organization_deleted", slog.String("organization_id", id.String()))
	return nil
}
