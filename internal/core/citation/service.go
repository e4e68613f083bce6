// Copyright (c) 2026 Citeline. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package citation

import (
	"context"
	"log/slog"

	"github.com/taibuivan/citeline/internal/core/source"
	"github.com/taibuivan/citeline/internal/platform/document"
	"github.com/taibuivan/citeline/internal/platform/metrics"
	"github.com/taibuivan/citeline/pkg/uuidv7"
)

// SourceResolver verifies that a cited source exists. Satisfied by
// [source.Service].
type SourceResolver interface {
	GetSource(ctx context.Context, id document.ID) (*source.Source, error)
}

type Service struct {
	repo     Repository
	resolver SourceResolver
	logger   *slog.Logger
	metrics  *metrics.Metrics
}

func NewService(repo Repository, resolver SourceResolver, logger *slog.Logger, m *metrics.Metrics) *Service {
	return &Service{
		repo:     repo,
		resolver: resolver,
		logger:   logger,
		metrics:  m,
	}
}

func (service *Service) ListCitations(context context.Context, filter Filter, limit, offset int) ([]*Citation, int, error) {
	return service.repo.ListCitations(context, filter, limit, offset)
}

func (service *Service) GetCitation(context context.Context, id document.ID) (*Citation, error) {
	return service.repo.GetCitation(context, id)
}

func (service *Service) CreateCitation(context context.Context, citation *Citation) error {
	citation.Clean()
	if err := citation.Validate(); err != nil {
		return err
	}

	// The required source reference must resolve before the write.
	if _, err := service.resolver.GetSource(context, citation.Source); err != nil {
		return err
	}

	if citation.ID.IsZero() {
		citation.ID = document.ID(uuidv7.New())
	}

	if err := service.repo.CreateCitation(context, citation); err != nil {
		return err
	}

	service.metrics.IncrementEntityOp("citation", "create")
	service.logger.Info("citation_created",
		slog.String("citation_id", citation.ID.String()),
		slog.String("source_id", citation.Source.String()),
		slog.String("kind", string(citation.Kind)),
	)
	return nil
}

func (service *Service) UpdateCitation(context context.Context, id document.ID, citation *Citation) error {
	citation.ID = id
	citation.Clean()
	if err := citation.Validate(); err != nil {
		return err
	}

	if _, err := service.resolver.GetSource(context, citation.Source); err != nil {
		return err
	}

	if err := service.repo.UpdateCitation(context, citation); err != nil {
		return err
	}

	service.metrics.IncrementEntityOp("citation", "update")
	service.logger.Info("citation_updated", slog.String("citation_id", citation.ID.String()))
	return nil
}

func (service *Service) DeleteCitation(context context.Context, id document.ID) error {
	if err := service.repo.DeleteCitation(context, id); err != nil {
		return err
	}

	service.metrics.IncrementEntityOp("citation", "delete")
	service.logger.Warn("citation_deleted", slog.String("citation_id", id.String()))
	return nil
}
