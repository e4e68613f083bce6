// Copyright (c) 2026 Citeline. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package org

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/taibuivan/citeline/internal/core/locale"
	"github.com/taibuivan/citeline/internal/platform/database/schema"
	"github.com/taibuivan/citeline/internal/platform/dberr"
	"github.com/taibuivan/citeline/internal/platform/document"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func organizationColumns() string {
	t := schema.CoreOrganization
	return fmt.Sprintf("%s, %s, %s, %s, %s, %s, %s, %s, %s",
		t.ID, t.Kind, t.Name, t.Slug, t.Established, t.Description, t.Region,
		t.CreatedAt, t.UpdatedAt,
	)
}

func scanOrganization(row interface{ Scan(dest ...any) error }) (*Organization, error) {
	o := &Organization{}
	var established *int

	err := row.Scan(
		&o.ID, &o.Kind, &o.Name, &o.Slug, &established, &o.Description,
		&o.Region, &o.CreatedAt, &o.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if established != nil {
		y := locale.Year(*established)
		o.Established = &y
	}
	return o, nil
}

func (repository *PostgresRepository) ListOrganizations(context context.Context, f Filter, limit, offset int) ([]*Organization, int, error) {
	t := schema.CoreOrganization

	query := fmt.Sprintf(`SELECT %s FROM %s WHERE 1=1`, organizationColumns(), t.Table)
	countQuery := fmt.Sprintf(`SELECT count(*) FROM %s WHERE 1=1`, t.Table)

	args := []any{}
	countArgs := []any{}

	if f.Query != "" {
		searchTerm := "%" + f.Query + "%"
		clause := fmt.Sprintf(` AND %s ILIKE $%d`, t.Name, len(args)+1)
		query += clause
		countQuery += clause
		args = append(args, searchTerm)
		countArgs = append(countArgs, searchTerm)
	}

	if f.Kind != "" {
		clause := fmt.Sprintf(` AND %s = $%d`, t.Kind, len(args)+1)
		query += clause
		countQuery += clause
		args = append(args, string(f.Kind))
		countArgs = append(countArgs, string(f.Kind))
	}

	query += fmt.Sprintf(" ORDER BY %s ASC LIMIT $%d OFFSET $%d", t.Name, len(args)+1, len(args)+2)
	args = append(args, limit, offset)

	var total int
	if err := repository.db.QueryRow(context, countQuery, countArgs...).Scan(&total); err != nil {
		return nil, 0, dberr.Wrap(err, "count_organizations")
	}

	rows, err := repository.db.Query(context, query, args...)
	if err != nil {
		return nil, 0, dberr.Wrap(err, "list_organizations")
	}
	defer rows.Close()

	var organizations []*Organization
	for rows.Next() {
		o, err := scanOrganization(rows)
		if err != nil {
			return nil, 0, dberr.Wrap(err, "scan_organization")
		}
		organizations = append(organizations, o)
	}

	return organizations, total, nil
}

func (repository *PostgresRepository) GetOrganization(context context.Context, id document.ID) (*Organization, error) {
	t := schema.CoreOrganization

	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1`, organizationColumns(), t.Table, t.ID)

	o, err := scanOrganization(repository.db.QueryRow(context, query, id.String()))
	if err != nil {
		return nil, dberr.Wrap(err, "get_organization")
	}
	return o, nil
}

func (repository *PostgresRepository) GetOrganizationBySlug(context context.Context, slug string) (*Organization, error) {
	t := schema.CoreOrganization

	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1`, organizationColumns(), t.Table, t.Slug)

	o, err := scanOrganization(repository.db.QueryRow(context, query, slug))
	if err != nil {
		return nil, dberr.Wrap(err, "get_organization_by_slug")
	}
	return o, nil
}

func (repository *PostgresRepository) CreateOrganization(context context.Context, o *Organization) error {
	t := schema.CoreOrganization

	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW(), NOW())
		RETURNING %s, %s
	`,
		t.Table, t.ID, t.Kind, t.Name, t.Slug, t.Established, t.Description,
		t.Region, t.CreatedAt, t.UpdatedAt,
		t.CreatedAt, t.UpdatedAt,
	)

	err := repository.db.QueryRow(context, query,
		o.ID.String(), string(o.Kind), o.Name, o.Slug, establishedArg(o.Established),
		o.Description, o.Region,
	).Scan(&o.CreatedAt, &o.UpdatedAt)

	return dberr.Wrap(err, "create_organization")
}

func (repository *PostgresRepository) UpdateOrganization(context context.Context, o *Organization) error {
	t := schema.CoreOrganization

	query := fmt.Sprintf(`
		UPDATE %s
		SET %s = $2, %s = $3, %s = $4, %s = $5, %s = $6, %s = $7, %s = NOW()
		WHERE %s = $1
		RETURNING %s
	`,
		t.Table, t.Kind, t.Name, t.Slug, t.Established, t.Description,
		t.Region, t.UpdatedAt, t.ID, t.UpdatedAt,
	)

	err := repository.db.QueryRow(context, query,
		o.ID.String(), string(o.Kind), o.Name, o.Slug,
		establishedArg(o.Established), o.Description, o.Region,
	).Scan(&o.UpdatedAt)

	return dberr.Wrap(err, "update_organization")
}

func (repository *PostgresRepository) DeleteOrganization(context context.Context, id document.ID) error {
	t := schema.CoreOrganization

	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, t.Table, t.ID)

	cmd, err := repository.db.Exec(context, query, id.String())
	if err != nil {
		return dberr.Wrap(err, "delete_organization")
	}

	if cmd.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}

// establishedArg converts a nullable year into its nullable SQL argument.
func establishedArg(y *locale.Year) *int {
	if y == nil {
		return nil
	}
	v := y.Int()
	return &v
}
