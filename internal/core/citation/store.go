// Copyright (c) 2026 Citeline. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package citation

import (
	"context"

	"github.com/taibuivan/citeline/internal/platform/document"
)

type Repository interface {
	ListCitations(context context.Context, f Filter, limit, offset int) ([]*Citation, int, error)
	GetCitation(context context.Context, id document.ID) (*Citation, error)
	CreateCitation(context context.Context, c *Citation) error
	UpdateCitation(context context.Context, c *Citation) error
	DeleteCitation(context context.Context, id document.ID) error
}
