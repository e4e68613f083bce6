// Copyright (c) 2026 Citeline. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package citation

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

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

func citationColumns() string {
	t := schema.CoreCitation
	return fmt.Sprintf("%s, %s, %s, %s, %s, %s, %s, %s, %s",
		t.ID, t.Kind, t.SourceID, t.Note, t.Text, t.PagesStart, t.PagesEnd,
		t.CreatedAt, t.UpdatedAt,
	)
}

func scanCitation(row interface{ Scan(dest ...any) error }) (*Citation, error) {
	c := &Citation{}
	var pagesStart, pagesEnd *int

	err := row.Scan(
		&c.ID, &c.Kind, &c.Source, &c.Note, &c.Text, &pagesStart, &pagesEnd,
		&c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if pagesStart != nil {
		c.Pages.Start = *pagesStart
		c.Pages.End = pagesEnd
	}
	return c, nil
}

func (repository *PostgresRepository) ListCitations(context context.Context, f Filter, limit, offset int) ([]*Citation, int, error) {
	t := schema.CoreCitation

	query := fmt.Sprintf(`SELECT %s FROM %s WHERE 1=1`, citationColumns(), t.Table)
	countQuery := fmt.Sprintf(`SELECT count(*) FROM %s WHERE 1=1`, t.Table)

	args := []any{}
	countArgs := []any{}

	if !f.Source.IsZero() {
		clause := fmt.Sprintf(` AND %s = $%d`, t.SourceID, len(args)+1)
		query += clause
		countQuery += clause
		args = append(args, f.Source.String())
		countArgs = append(countArgs, f.Source.String())
	}

	if f.Kind != "" {
		clause := fmt.Sprintf(` AND %s = $%d`, t.Kind, len(args)+1)
		query += clause
		countQuery += clause
		args = append(args, string(f.Kind))
		countArgs = append(countArgs, string(f.Kind))
	}

	query += fmt.Sprintf(" ORDER BY %s ASC LIMIT $%d OFFSET $%d", t.CreatedAt, len(args)+1, len(args)+2)
	args = append(args, limit, offset)

	var total int
	if err := repository.db.QueryRow(context, countQuery, countArgs...).Scan(&total); err != nil {
		return nil, 0, dberr.Wrap(err, "count_citations")
	}

	rows, err := repository.db.Query(context, query, args...)
	if err != nil {
		return nil, 0, dberr.Wrap(err, "list_citations")
	}
	defer rows.Close()

	var citations []*Citation
	for rows.Next() {
		c, err := scanCitation(rows)
		if err != nil {
			return nil, 0, dberr.Wrap(err, "scan_citation")
		}
		citations = append(citations, c)
	}

	return citations, total, nil
}

func (repository *PostgresRepository) GetCitation(context context.Context, id document.ID) (*Citation, error) {
	t := schema.CoreCitation

	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1`, citationColumns(), t.Table, t.ID)

	c, err := scanCitation(repository.db.QueryRow(context, query, id.String()))
	if err != nil {
		return nil, dberr.Wrap(err, "get_citation")
	}
	return c, nil
}

func (repository *PostgresRepository) CreateCitation(context context.Context, c *Citation) error {
	t := schema.CoreCitation

	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW(), NOW())
		RETURNING %s, %s
	`,
		t.Table, t.ID, t.Kind, t.SourceID, t.Note, t.Text, t.PagesStart,
		t.PagesEnd, t.CreatedAt, t.UpdatedAt,
		t.CreatedAt, t.UpdatedAt,
	)

	err := repository.db.QueryRow(context, query,
		c.ID.String(), string(c.Kind), c.Source.String(), c.Note, c.Text,
		pagesStartArg(c), c.Pages.End,
	).Scan(&c.CreatedAt, &c.UpdatedAt)

	return dberr.Wrap(err, "create_citation")
}

func (repository *PostgresRepository) UpdateCitation(context context.Context, c *Citation) error {
	t := schema.CoreCitation

	query := fmt.Sprintf(`
		UPDATE %s
		SET %s = $2, %s = $3, %s = $4, %s = $5, %s = $6, %s = $7, %s = NOW()
		WHERE %s = $1
		RETURNING %s
	`,
		t.Table, t.Kind, t.SourceID, t.Note, t.Text, t.PagesStart, t.PagesEnd,
		t.UpdatedAt, t.ID, t.UpdatedAt,
	)

	err := repository.db.QueryRow(context, query,
		c.ID.String(), string(c.Kind), c.Source.String(), c.Note, c.Text,
		pagesStartArg(c), c.Pages.End,
	).Scan(&c.UpdatedAt)

	return dberr.Wrap(err, "update_citation")
}

func (repository *PostgresRepository) DeleteCitation(context context.Context, id document.ID) error {
	t := schema.CoreCitation

	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, t.Table, t.ID)

	cmd, err := repository.db.Exec(context, query, id.String())
	if err != nil {
		return dberr.Wrap(err, "delete_citation")
	}

	if cmd.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}

// pagesStartArg maps an unassigned page range to NULL.
func pagesStartArg(c *Citation) *int {
	if c.Kind != KindBook || c.Pages.IsZero() {
		return nil
	}
	v := c.Pages.Start
	return &v
}
