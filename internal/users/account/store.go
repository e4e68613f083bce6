// Copyright (c) 2026 Citeline. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package account

import (
	"context"

	"github.com/taibuivan/citeline/internal/platform/document"
)

type Repository interface {
	GetUser(context context.Context, id document.ID) (*User, error)
	GetUserByEmail(context context.Context, email string) (*User, error)
	CreateUser(context context.Context, u *User) error
	UpdateUser(context context.Context, u *User) error
	DeleteUser(context context.Context, id document.ID) error
}
