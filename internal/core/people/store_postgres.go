// Copyright (c) 2026 Citeline. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package people

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

func personColumns() string {
	t := schema.CorePerson
	return fmt.Sprintf("%s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s",
		t.ID, t.NameTitle, t.NameFirst, t.NameMiddle, t.NameLast,
		t.NamePrefixes, t.NameSuffixes, t.Description, t.Birth, t.Death,
		t.CreatedAt, t.UpdatedAt,
	)
}

func scanPerson(row interface{ Scan(dest ...any) error }) (*Person, error) {
	p := &Person{}
	var birth, death *int

	err := row.Scan(
		&p.ID, &p.Name.Title, &p.Name.First, &p.Name.Middle, &p.Name.Last,
		&p.Name.Prefixes, &p.Name.Suffixes, &p.Description, &birth, &death,
		&p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if birth != nil {
		y := locale.Year(*birth)
		p.Birth = &y
	}
	if death != nil {
		y := locale.Year(*death)
		p.Death = &y
	}
	return p, nil
}

func (repository *PostgresRepository) ListPeople(context context.Context, f Filter, limit, offset int) ([]*Person, int, error) {
	t := schema.CorePerson

	query := fmt.Sprintf(`SELECT %s FROM %s`, personColumns(), t.Table)
	countQuery := fmt.Sprintf(`SELECT count(*) FROM %s`, t.Table)

	args := []any{}
	countArgs := []any{}

	if f.Query != "" {
		searchTerm := "%" + f.Query + "%"
		clause := fmt.Sprintf(` WHERE %s ILIKE $1`, t.NameFull)
		query += clause
		countQuery += clause
		args = append(args, searchTerm)
		countArgs = append(countArgs, searchTerm)
	}

	query += fmt.Sprintf(" ORDER BY %s ASC LIMIT $%d OFFSET $%d", t.NameFull, len(args)+1, len(args)+2)
	args = append(args, limit, offset)

	var total int
	if err := repository.db.QueryRow(context, countQuery, countArgs...).Scan(&total); err != nil {
		return nil, 0, dberr.Wrap(err, "count_people")
	}

	rows, err := repository.db.Query(context, query, args...)
	if err != nil {
		return nil, 0, dberr.Wrap(err, "list_people")
	}
	defer rows.Close()

	var people []*Person
	for rows.Next() {
		p, err := scanPerson(rows)
		if err != nil {
			return nil, 0, dberr.Wrap(err, "scan_person")
		}
		people = append(people, p)
	}

	return people, total, nil
}

func (repository *PostgresRepository) GetPerson(context context.Context, id document.ID) (*Person, error) {
	t := schema.CorePerson

	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1`, personColumns(), t.Table, t.ID)

	p, err := scanPerson(repository.db.QueryRow(context, query, id.String()))
	if err != nil {
		return nil, dberr.Wrap(err, "get_person")
	}
	return p, nil
}

func (repository *PostgresRepository) GetPeopleByIDs(context context.Context, ids []document.ID) ([]*Person, error) {
	t := schema.CorePerson

	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = ANY($1)`, personColumns(), t.Table, t.ID)

	rows, err := repository.db.Query(context, query, document.IDStrings(ids))
	if err != nil {
		return nil, dberr.Wrap(err, "get_people_by_ids")
	}
	defer rows.Close()

	var people []*Person
	for rows.Next() {
		p, err := scanPerson(rows)
		if err != nil {
			return nil, dberr.Wrap(err, "scan_person")
		}
		people = append(people, p)
	}

	return people, nil
}

func (repository *PostgresRepository) CreatePerson(context context.Context, p *Person) error {
	t := schema.CorePerson

	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, NOW(), NOW())
		RETURNING %s, %s
	`,
		t.Table, t.ID, t.NameTitle, t.NameFirst, t.NameMiddle, t.NameLast,
		t.NameFull, t.NamePrefixes, t.NameSuffixes, t.Description, t.Birth,
		t.Death, t.CreatedAt, t.UpdatedAt,
		t.CreatedAt, t.UpdatedAt,
	)

	err := repository.db.QueryRow(context, query,
		p.ID.String(), p.Name.Title, p.Name.First, p.Name.Middle, p.Name.Last,
		p.Name.Full(), p.Name.Prefixes, p.Name.Suffixes, p.Description,
		yearArg(p.Birth), yearArg(p.Death),
	).Scan(&p.CreatedAt, &p.UpdatedAt)

	return dberr.Wrap(err, "create_person")
}

func (repository *PostgresRepository) UpdatePerson(context context.Context, p *Person) error {
	t := schema.CorePerson

	query := fmt.Sprintf(`
		UPDATE %s
		SET %s = $2, %s = $3, %s = $4, %s = $5, %s = $6, %s = $7, %s = $8, %s = $9, %s = $10, %s = $11, %s = NOW()
		WHERE %s = $1
		RETURNING %s
	`,
		t.Table, t.NameTitle, t.NameFirst, t.NameMiddle, t.NameLast, t.NameFull,
		t.NamePrefixes, t.NameSuffixes, t.Description, t.Birth, t.Death,
		t.UpdatedAt, t.ID, t.UpdatedAt,
	)

	err := repository.db.QueryRow(context, query,
		p.ID.String(), p.Name.Title, p.Name.First, p.Name.Middle, p.Name.Last,
		p.Name.Full(), p.Name.Prefixes, p.Name.Suffixes, p.Description,
		yearArg(p.Birth), yearArg(p.Death),
	).Scan(&p.UpdatedAt)

	return dberr.Wrap(err, "update_person")
}

func (repository *PostgresRepository) DeletePerson(context context.Context, id document.ID) error {
	t := schema.CorePerson

	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, t.Table, t.ID)

	cmd, err := repository.db.Exec(context, query, id.String())
	if err != nil {
		return dberr.Wrap(err, "delete_person")
	}

	if cmd.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}

// yearArg converts a nullable year into its nullable SQL argument.
func yearArg(y *locale.Year) *int {
	if y == nil {
		return nil
	}
	v := y.Int()
	return &v
}
