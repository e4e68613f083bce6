// Copyright (c) 2026 Citeline. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package dberr provides a bridge between low-level database errors and
// higher-level application errors.
package dberr

import (
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/taibuivan/citeline/internal/platform/apperr"
)

var (
	// ErrNotFound is a standard error returned when a queried row doesn't exist.
	ErrNotFound = apperr.NotFound("Resource")
)

// Wrap inspects a database error and wraps it into a meaningful [apperr.AppError].
// It hides internal database details from the client while classifying the error type.
//
// # Classification
//
//   - pgx.ErrNoRows               → NOT_FOUND
//   - SQLSTATE 23505 (unique)     → CONFLICT ("not unique" is recoverable)
//   - SQLSTATE 23502/23503/23514  → VALIDATION_ERROR (constraint violations)
//   - anything else               → INTERNAL_ERROR (cause kept for logs)
func Wrap(err error, action string) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgerrcode.UniqueViolation:
			return apperr.Conflict("A record with the same unique value already exists")
		case pgerrcode.NotNullViolation, pgerrcode.ForeignKeyViolation, pgerrcode.CheckViolation:
			return apperr.ValidationError("The record violates a storage constraint")
		}
	}

	return apperr.Internal(err)
}
