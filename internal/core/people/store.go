// Copyright (c) 2026 Citeline. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package people

import (
	"context"

	"github.com/taibuivan/citeline/internal/platform/document"
)

type Repository interface {
	ListPeople(context context.Context, f Filter, limit, offset int) ([]*Person, int, error)
	GetPerson(context context.Context, id document.ID) (*Person, error)
	GetPeopleByIDs(context context.Context, ids []document.ID) ([]*Person, error)
	CreatePerson(context context.Context, p *Person) error
	UpdatePerson(context context.Context, p *Person) error
	DeletePerson(context context.Context, id document.ID) error
}
