// Copyright (c) 2026 Citeline. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package org

import (
	"context"

	"github.com/taibuivan/citeline/internal/platform/document"
)

type Repository interface {
	ListOrganizations(context context.Context, f Filter, limit, offset int) ([]*Organization, int, error)
	GetOrganization(context context.Context, id document.ID) (*Organization, error)
	GetOrganizationBySlug(context context.Context, slug string) (*Organization, error)
	CreateOrganization(context context.Context, o *Organization) error
	UpdateOrganization(context context.Context, o *Organization) error
	DeleteOrganization(context context.Context, id document.ID) error
}
