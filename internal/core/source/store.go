// Copyright (c) 2026 Citeline. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package source

import (
	"context"

	"github.com/taibuivan/citeline/internal/platform/document"
)

type Repository interface {
	ListSources(context context.Context, f Filter, limit, offset int) ([]*Source, int, error)
	GetSource(context context.Context, id document.ID) (*Source, error)
	CreateSource(context context.Context, s *Source) error
	UpdateSource(context context.Context, s *Source) error
	DeleteSource(context context.Context, id document.ID) error
}
