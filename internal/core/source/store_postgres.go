// Copyright (c) 2026 Citeline. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package source

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
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

func sourceColumns() string {
	t := schema.CoreSource
	return fmt.Sprintf("%s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s",
		t.ID, t.Kind, t.Title, t.Medium, t.Description, t.Edition,
		t.PublisherID, t.Published, t.Location, t.ISBN10, t.ISBN13,
		t.CreatedAt, t.UpdatedAt,
	)
}

func scanSource(row interface{ Scan(dest ...any) error }) (*Source, error) {
	s := &Source{}
	var published *int
	var publisher, isbn10, isbn13 *string

	err := row.Scan(
		&s.ID, &s.Kind, &s.Title, &s.Medium, &s.Description, &s.Edition,
		&publisher, &published, &s.Location, &isbn10, &isbn13,
		&s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if publisher != nil {
		s.Publisher = document.ID(*publisher)
	}
	if published != nil {
		y := locale.Year(*published)
		s.Published = &y
	}
	if isbn10 != nil {
		s.ISBN.ISBN10 = *isbn10
	}
	if isbn13 != nil {
		s.ISBN.ISBN13 = *isbn13
	}
	return s, nil
}

func (repository *PostgresRepository) ListSources(context context.Context, f Filter, limit, offset int) ([]*Source, int, error) {
	t := schema.CoreSource

	query := fmt.Sprintf(`SELECT %s FROM %s WHERE 1=1`, sourceColumns(), t.Table)
	countQuery := fmt.Sprintf(`SELECT count(*) FROM %s WHERE 1=1`, t.Table)

	args := []any{}
	countArgs := []any{}

	if f.Query != "" {
		searchTerm := "%" + f.Query + "%"
		clause := fmt.Sprintf(` AND %s ILIKE $%d`, t.Title, len(args)+1)
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

	query += fmt.Sprintf(" ORDER BY %s ASC LIMIT $%d OFFSET $%d", t.Title, len(args)+1, len(args)+2)
	args = append(args, limit, offset)

	var total int
	if err := repository.db.QueryRow(context, countQuery, countArgs...).Scan(&total); err != nil {
		return nil, 0, dberr.Wrap(err, "count_sources")
	}

	rows, err := repository.db.Query(context, query, args...)
	if err != nil {
		return nil, 0, dberr.Wrap(err, "list_sources")
	}
	defer rows.Close()

	var sources []*Source
	for rows.Next() {
		s, err := scanSource(rows)
		if err != nil {
			return nil, 0, dberr.Wrap(err, "scan_source")
		}
		sources = append(sources, s)
	}

	if err := repository.loadContributors(context, sources); err != nil {
		return nil, 0, err
	}

	return sources, total, nil
}

func (repository *PostgresRepository) GetSource(context context.Context, id document.ID) (*Source, error) {
	t := schema.CoreSource

	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1`, sourceColumns(), t.Table, t.ID)

	s, err := scanSource(repository.db.QueryRow(context, query, id.String()))
	if err != nil {
		return nil, dberr.Wrap(err, "get_source")
	}

	if err := repository.loadContributors(context, []*Source{s}); err != nil {
		return nil, err
	}
	return s, nil
}

func (repository *PostgresRepository) CreateSource(context context.Context, s *Source) error {
	return repository.inTx(context, "create_source", func(tx pgx.Tx) error {
		t := schema.CoreSource

		query := fmt.Sprintf(`
			INSERT INTO %s (%s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, NOW(), NOW())
			RETURNING %s, %s
		`,
			t.Table, t.ID, t.Kind, t.Title, t.Medium, t.Description, t.Edition,
			t.PublisherID, t.Published, t.Location, t.ISBN10, t.ISBN13,
			t.CreatedAt, t.UpdatedAt,
			t.CreatedAt, t.UpdatedAt,
		)

		err := tx.QueryRow(context, query,
			s.ID.String(), string(s.Kind), s.Title, string(s.Medium),
			s.Description, s.Edition, refArg(s.Publisher), publishedArg(s.Published),
			s.Location, textArg(s.ISBN.ISBN10), textArg(s.ISBN.ISBN13),
		).Scan(&s.CreatedAt, &s.UpdatedAt)
		if err != nil {
			return err
		}

		return repository.saveContributors(context, tx, s)
	})
}

func (repository *PostgresRepository) UpdateSource(context context.Context, s *Source) error {
	return repository.inTx(context, "update_source", func(tx pgx.Tx) error {
		t := schema.CoreSource

		query := fmt.Sprintf(`
			UPDATE %s
			SET %s = $2, %s = $3, %s = $4, %s = $5, %s = $6, %s = $7, %s = $8, %s = $9, %s = $10, %s = $11, %s = NOW()
			WHERE %s = $1
			RETURNING %s
		`,
			t.Table, t.Kind, t.Title, t.Medium, t.Description, t.Edition,
			t.PublisherID, t.Published, t.Location, t.ISBN10, t.ISBN13,
			t.UpdatedAt, t.ID, t.UpdatedAt,
		)

		err := tx.QueryRow(context, query,
			s.ID.String(), string(s.Kind), s.Title, string(s.Medium),
			s.Description, s.Edition, refArg(s.Publisher), publishedArg(s.Published),
			s.Location, textArg(s.ISBN.ISBN10), textArg(s.ISBN.ISBN13),
		).Scan(&s.UpdatedAt)
		if err != nil {
			return err
		}

		for _, join := range []schema.CoreSourcePersonTable{schema.CoreSourceAuthor, schema.CoreSourceEditor} {
			clear := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, join.Table, join.SourceID)
			if _, err := tx.Exec(context, clear, s.ID.String()); err != nil {
				return err
			}
		}

		return repository.saveContributors(context, tx, s)
	})
}

func (repository *PostgresRepository) DeleteSource(context context.Context, id document.ID) error {
	t := schema.CoreSource

	// Join rows cascade with the source row.
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, t.Table, t.ID)

	cmd, err := repository.db.Exec(context, query, id.String())
	if err != nil {
		return dberr.Wrap(err, "delete_source")
	}

	if cmd.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}

// loadContributors fills the ordered author and editor lists for a batch of
// sources with one query per join table.
func (repository *PostgresRepository) loadContributors(context context.Context, sources []*Source) error {
	if len(sources) == 0 {
		return nil
	}

	byID := make(map[document.ID]*Source, len(sources))
	ids := make([]string, 0, len(sources))
	for _, s := range sources {
		byID[s.ID] = s
		ids = append(ids, s.ID.String())
	}

	load := func(join schema.CoreSourcePersonTable, assign func(s *Source, personID document.ID)) error {
		query := fmt.Sprintf(`
			SELECT %s, %s FROM %s WHERE %s = ANY($1) ORDER BY %s ASC
		`, join.SourceID, join.PersonID, join.Table, join.SourceID, join.Position)

		rows, err := repository.db.Query(context, query, ids)
		if err != nil {
			return dberr.Wrap(err, "load_contributors")
		}
		defer rows.Close()

		for rows.Next() {
			var sourceID, personID document.ID
			if err := rows.Scan(&sourceID, &personID); err != nil {
				return dberr.Wrap(err, "scan_contributor")
			}
			if s, ok := byID[sourceID]; ok {
				assign(s, personID)
			}
		}
		return nil
	}

	if err := load(schema.CoreSourceAuthor, func(s *Source, id document.ID) {
		s.Authors = append(s.Authors, id)
	}); err != nil {
		return err
	}

	return load(schema.CoreSourceEditor, func(s *Source, id document.ID) {
		s.Editors = append(s.Editors, id)
	})
}

// saveContributors writes the ordered join rows inside the entity's
// transaction.
func (repository *PostgresRepository) saveContributors(context context.Context, tx pgx.Tx, s *Source) error {
	write := func(join schema.CoreSourcePersonTable, ids []document.ID) error {
		query := fmt.Sprintf(`INSERT INTO %s (%s, %s, %s) VALUES ($1, $2, $3)`,
			join.Table, join.SourceID, join.PersonID, join.Position,
		)

		for position, personID := range ids {
			if _, err := tx.Exec(context, query, s.ID.String(), personID.String(), position); err != nil {
				return err
			}
		}
		return nil
	}

	if err := write(schema.CoreSourceAuthor, s.Authors); err != nil {
		return err
	}
	return write(schema.CoreSourceEditor, s.Editors)
}

// inTx runs fn inside a transaction, translating any failure through dberr.
func (repository *PostgresRepository) inTx(context context.Context, action string, fn func(tx pgx.Tx) error) error {
	tx, err := repository.db.Begin(context)
	if err != nil {
		return dberr.Wrap(err, action)
	}
	defer func() { _ = tx.Rollback(context) }()

	if err := fn(tx); err != nil {
		return dberr.Wrap(err, action)
	}

	return dberr.Wrap(tx.Commit(context), action)
}

// refArg converts an optional reference into its nullable SQL argument.
func refArg(id document.ID) *string {
	if id.IsZero() {
		return nil
	}
	v := id.String()
	return &v
}

// publishedArg converts a nullable year into its nullable SQL argument.
func publishedArg(y *locale.Year) *int {
	if y == nil {
		return nil
	}
	v := y.Int()
	return &v
}

// textArg maps an empty string to NULL so sparse unique indexes ignore it.
func textArg(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
