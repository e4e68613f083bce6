// Copyright (c) 2026 Citeline. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package account

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/taibuivan/citeline/internal/platform/database/schema"
	"github.com/taibuivan/citeline/internal/platform/dberr"
	"github.com/taibuivan/citeline/internal/platform/document"
	"github.com/taibuivan/citeline/internal/platform/sec"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func userColumns() string {
	t := schema.UserAccount
	return fmt.Sprintf("%s, %s, %s, %s, %s, %s, %s, %s, %s, %s",
		t.ID, t.Email, t.Groups, t.Joined, t.Confirmed, t.LastLogin,
		t.PrevLogin, t.PasswordHash, t.CreatedAt, t.UpdatedAt,
	)
}

func scanUser(row interface{ Scan(dest ...any) error }) (*User, error) {
	u := &User{}
	var groups []string
	var hash string

	err := row.Scan(
		&u.ID, &u.Email, &groups, &u.Joined, &u.Confirmed, &u.LastLogin,
		&u.PrevLogin, &hash, &u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	u.Groups = sec.FromStrings(groups)
	u.RestorePasswordHash(hash)
	return u, nil
}

func (repository *PostgresRepository) GetUser(context context.Context, id document.ID) (*User, error) {
	t := schema.UserAccount

	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1`, userColumns(), t.Table, t.ID)

	u, err := scanUser(repository.db.QueryRow(context, query, id.String()))
	if err != nil {
		return nil, dberr.Wrap(err, "get_user")
	}
	return u, nil
}

func (repository *PostgresRepository) GetUserByEmail(context context.Context, email string) (*User, error) {
	t := schema.UserAccount

	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1`, userColumns(), t.Table, t.Email)

	u, err := scanUser(repository.db.QueryRow(context, query, email))
	if err != nil {
		return nil, dberr.Wrap(err, "get_user_by_email")
	}
	return u, nil
}

func (repository *PostgresRepository) CreateUser(context context.Context, u *User) error {
	t := schema.UserAccount

	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW(), NOW())
		RETURNING %s, %s
	`,
		t.Table, t.ID, t.Email, t.Groups, t.Joined, t.Confirmed, t.LastLogin,
		t.PrevLogin, t.PasswordHash, t.CreatedAt, t.UpdatedAt,
		t.CreatedAt, t.UpdatedAt,
	)

	err := repository.db.QueryRow(context, query,
		u.ID.String(), u.Email, sec.Strings(u.Groups), u.Joined, u.Confirmed,
		u.LastLogin, u.PrevLogin, u.PasswordHash(),
	).Scan(&u.CreatedAt, &u.UpdatedAt)

	return dberr.Wrap(err, "create_user")
}

func (repository *PostgresRepository) UpdateUser(context context.Context, u *User) error {
	t := schema.UserAccount

	query := fmt.Sprintf(`
		UPDATE %s
		SET %s = $2, %s = $3, %s = $4, %s = $5, %s = $6, %s = $7, %s = $8, %s = NOW()
		WHERE %s = $1
		RETURNING %s
	`,
		t.Table, t.Email, t.Groups, t.Joined, t.Confirmed, t.LastLogin,
		t.PrevLogin, t.PasswordHash, t.UpdatedAt, t.ID, t.UpdatedAt,
	)

	err := repository.db.QueryRow(context, query,
		u.ID.String(), u.Email, sec.Strings(u.Groups), u.Joined, u.Confirmed,
		u.LastLogin, u.PrevLogin, u.PasswordHash(),
	).Scan(&u.UpdatedAt)

	return dberr.Wrap(err, "update_user")
}

func (repository *PostgresRepository) DeleteUser(context context.Context, id document.ID) error {
	t := schema.UserAccount

	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, t.Table, t.ID)

	cmd, err := repository.db.Exec(context, query, id.String())
	if err != nil {
		return dberr.Wrap(err, "delete_user")
	}

	if cmd.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}
