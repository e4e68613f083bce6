// Copyright (c) 2026 Citeline. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package source

import (
	"context"
	"log/slog"

	"github.com/taibuivan/citeline/internal/core/people"
	"github.com/taibuivan/citeline/internal/platform/apperr"
	"github.com/taibuivan/citeline/internal/platform/document"
	"github.com/taibuivan/citeline/internal/platform/metrics"
	"github.com/taibuivan/citeline/pkg/uuidv7"
)

// PersonResolver resolves person references in bulk. Satisfied by
// [people.Service].
type PersonResolver interface {
	GetPeopleByIDs(ctx context.Context, ids []document.ID) ([]*people.Person, error)
}

type Service struct {
	repo     Repository
	resolver PersonResolver
	logger   *slog.Logger
	metrics  *metrics.Metrics
}

func NewService(repo Repository, resolver PersonResolver, logger *slog.Logger, m *metrics.Metrics) *Service {
	return &Service{
		repo:     repo,
		resolver: resolver,
		logger:   logger,
		metrics:  m,
	}
}

func (service *Service) ListSources(context context.Context, filter Filter, limit, offset int) ([]*Source, int, error) {
	return service.repo.ListSources(context, filter, limit, offset)
}

func (service *Service) GetSource(context context.Context, id document.ID) (*Source, error) {
	return service.repo.GetSource(context, id)
}

func (service *Service) CreateSource(context context.Context, source *Source) error {
	source.Clean()
	if err := source.Validate(); err != nil {
		return err
	}

	if err := service.resolveContributors(context, source); err != nil {
		return err
	}

	if source.ID.IsZero() {
		source.ID = document.ID(uuidv7.New())
	}

	if err := service.repo.CreateSource(context, source); err != nil {
		return err
	}

	service.metrics.IncrementEntityOp("source", "create")
	service.logger.Info("source_created",
		slog.String("source_id", source.ID.String()),
		slog.String("kind", string(source.Kind)),
		slog.String("title", source.Title),
	)
	return nil
}

func (service *Service) UpdateSource(context context.Context, id document.ID, source *Source) error {
	source.ID = id
	source.Clean()
	if err := source.Validate(); err != nil {
		return err
	}

	if err := service.resolveContributors(context, source); err != nil {
		return err
	}

	if err := service.repo.UpdateSource(context, source); err != nil {
		return err
	}

	service.metrics.IncrementEntityOp("source", "update")
	service.logger.Info("source_updated", slog.String("source_id", source.ID.String()))
	return nil
}

func (service *Service) DeleteSource(context context.Context, id document.ID) error {
	if err := service.repo.DeleteSource(context, id); err != nil {
		return err
	}

	service.metrics.IncrementEntityOp("source", "delete")
	service.logger.Warn("source_deleted", slog.String("source_id", id.String()))
	return nil
}

// resolveContributors verifies every author and editor reference in one bulk
// query over the union of both lists, then partitions the result by
// membership. The person store is hit exactly once regardless of list sizes.
func (service *Service) resolveContributors(context context.Context, source *Source) error {
	if !source.Kind.isText() {
		return nil
	}

	union := make([]document.ID, 0, len(source.Authors)+len(source.Editors))
	seen := make(map[document.ID]struct{}, cap(union))
	for _, id := range append(append([]document.ID{}, source.Authors...), source.Editors...) {
		if _, dup := seen[id]; !dup {
			seen[id] = struct{}{}
			union = append(union, id)
		}
	}

	if len(union) == 0 {
		return nil
	}

	found, err := service.resolver.GetPeopleByIDs(context, union)
	if err != nil {
		return err
	}

	existing := make(map[document.ID]struct{}, len(found))
	for _, p := range found {
		existing[p.ID] = struct{}{}
	}

	for _, id := range source.Authors {
		if _, ok := existing[id]; !ok {
			return apperr.ValidationError("Validation failed", apperr.FieldError{
				Field:   FieldAuthors,
				Message: "references an unknown person: " + id.String(),
			})
		}
	}
	for _, id := range source.Editors {
		if _, ok := existing[id]; !ok {
			return apperr.ValidationError("Validation failed", apperr.FieldError{
				Field:   "editors",
				Message: "references an unknown person: " + id.String(),
			})
		}
	}

	return nil
}
