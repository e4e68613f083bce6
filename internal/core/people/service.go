// Copyright (c) 2026 Citeline. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package people

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

func (service *Service) ListPeople(context context.Context, filter Filter, limit, offset int) ([]*Person, int, error) {
	return service.repo.ListPeople(context, filter, limit, offset)
}

func (service *Service) GetPerson(context context.Context, id document.ID) (*Person, error) {
	return service.repo.GetPerson(context, id)
}

// GetPeopleByIDs resolves a set of weak references in one bulk query.
// Callers that need membership partitioning (e.g. authors vs editors) do it
// on the returned set; the store is hit exactly once.
func (service *Service) GetPeopleByIDs(context context.Context, ids []document.ID) ([]*Person, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	return service.repo.GetPeopleByIDs(context, ids)
}

func (service *Service) CreatePerson(context context.Context, person *Person) error {
	person.Clean()
	if err := person.Validate(); err != nil {
		return err
	}

	if person.ID.IsZero() {
		person.ID = document.ID(uuidv7.New())
	}

	if err := service.repo.CreatePerson(context, person); err != nil {
		return err
	}

	service.metrics.IncrementEntityOp("person", "create")
	service.logger.Info("person_created", slog.String("person_id", person.ID.String()), slog.String("name", person.Name.Full()))
	return nil
}

func (service *Service) UpdatePerson(context context.Context, id document.ID, person *Person) error {
	person.ID = id
	person.Clean()
	if err := person.Validate(); err != nil {
		return err
	}

	if err := service.repo.UpdatePerson(context, person); err != nil {
		return err
	}

	service.metrics.IncrementEntityOp("person", "update")
	service.logger.Info("person_updated", slog.String("person_id", person.ID.String()))
	return nil
}

func (service *Service) DeletePerson(context context.Context, id document.ID) error {
	if err := service.repo.DeletePerson(context, id); err != nil {
		return err
	}

	service.metrics.IncrementEntityOp("person", "delete")
	service.logger.Warn("person_deleted", slog.String("person_id", id.String()))
	return nil
}
