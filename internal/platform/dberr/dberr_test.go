// Copyright (c) 2026 Citeline. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package dberr_test

import (
	"errors"
	"testing"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"

	"github.com/taibuivan/citeline/internal/platform/apperr"
	"github.com/taibuivan/citeline/internal/platform/dberr"
)

/*
TestWrap verifies the SQLSTATE classification. The unique-violation case is
the write-time surface of every uq_* index (person full name, organization
name and slug, source ISBNs, account email).
*/
func TestWrap(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode string
	}{
		{"no rows", pgx.ErrNoRows, "NOT_FOUND"},
		{"unique violation", &pgconn.PgError{Code: pgerrcode.UniqueViolation, ConstraintName: "uq_person_namefull"}, "CONFLICT"},
		{"not null violation", &pgconn.PgError{Code: pgerrcode.NotNullViolation}, "VALIDATION_ERROR"},
		{"foreign key violation", &pgconn.PgError{Code: pgerrcode.ForeignKeyViolation}, "VALIDATION_ERROR"},
		{"check violation", &pgconn.PgError{Code: pgerrcode.CheckViolation}, "VALIDATION_ERROR"},
		{"unknown", errors.New("connection reset"), "INTERNAL_ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wrapped := dberr.Wrap(tt.err, "test_action")
			assert.True(t, apperr.IsCode(wrapped, tt.wantCode), "got %v", wrapped)
		})
	}
}

func TestWrap_Nil(t *testing.T) {
	assert.NoError(t, dberr.Wrap(nil, "test_action"))
}
