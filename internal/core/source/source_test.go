// Copyright (c) 2026 Citeline. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package source_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/citeline/internal/core/locale"
	"github.com/taibuivan/citeline/internal/core/people"
	"github.com/taibuivan/citeline/internal/core/source"
	"github.com/taibuivan/citeline/internal/platform/document"
	"github.com/taibuivan/citeline/pkg/uuidv7"
)

func newID() document.ID { return document.ID(uuidv7.New()) }

func validBook(t *testing.T) *source.Source {
	t.Helper()

	published := locale.Year(1951)
	s := &source.Source{
		ID:        newID(),
		Kind:      source.KindBook,
		Title:     "Foundation",
		Authors:   []document.ID{newID()},
		Edition:   "1st",
		Publisher: newID(),
		Published: &published,
		Location:  "New York",
	}
	require.NoError(t, s.ISBN.Set("9780985339890"))
	s.Clean()
	return s
}

/*
TestSource_Clean verifies kind and medium defaulting.
*/
func TestSource_Clean(t *testing.T) {
	s := &source.Source{Title: "Any"}
	s.Clean()

	assert.Equal(t, source.KindSource, s.Kind)
	assert.Equal(t, source.MediumPrint, s.Medium)
}

/*
TestSource_Validate verifies per-variant invariants.
*/
func TestSource_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*source.Source)
		wantErr bool
	}{
		{"valid book", func(s *source.Source) {}, false},
		{"missing title", func(s *source.Source) { s.Title = "" }, true},
		{"bad medium", func(s *source.Source) { s.Medium = "AUDIO" }, true},
		{"bad kind", func(s *source.Source) { s.Kind = "MOVIE" }, true},
		{"text requires an author", func(s *source.Source) { s.Kind = source.KindText; s.Authors = nil }, true},
		{"plain source needs no author", func(s *source.Source) { s.Kind = source.KindSource; s.Authors = nil }, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := validBook(t)
			tc.mutate(s)

			err := s.Validate()
			if tc.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

/*
TestSource_SerializeVariants verifies the additive key contract: each tier
contains 100% of the previous tier's keys plus its own.
*/
func TestSource_SerializeVariants(t *testing.T) {
	plain := &source.Source{Title: "Any"}
	plain.Clean()
	plainOut := plain.Serialize()

	text := &source.Source{Kind: source.KindText, Title: "Any", Authors: []document.ID{newID()}}
	text.Clean()
	textOut := text.Serialize()

	bookOut := validBook(t).Serialize()

	for key := range plainOut {
		assert.Contains(t, textOut, key)
		assert.Contains(t, bookOut, key)
	}
	for key := range textOut {
		assert.Contains(t, bookOut, key)
	}

	assert.NotContains(t, plainOut, "authors")
	assert.Contains(t, textOut, "authors")
	assert.NotContains(t, textOut, "isbn13")
	assert.Contains(t, bookOut, "isbn13")
}

/*
TestSource_ISBNIndependence verifies that a book created with only an
ISBN-13 serializes with a null isbn10: cross-derivation is not automatic.
*/
func TestSource_ISBNIndependence(t *testing.T) {
	s := validBook(t)
	out := s.Serialize()

	assert.Equal(t, "9780985339890", out["isbn13"])
	assert.Nil(t, out["isbn10"])

	// Independently set ISBN-10 appears alongside
	require.NoError(t, s.ISBN.Set("0985339896"))
	out = s.Serialize()
	assert.Equal(t, "0985339896", out["isbn10"])
	assert.Equal(t, "9780985339890", out["isbn13"])
}

/*
TestSource_RoundTrip verifies serialize → deserialize → serialize stability
for every variant, with references collapsing to identifier strings.
*/
func TestSource_RoundTrip(t *testing.T) {
	variants := []*source.Source{
		func() *source.Source {
			s := &source.Source{ID: newID(), Title: "Plain"}
			s.Clean()
			return s
		}(),
		func() *source.Source {
			s := &source.Source{
				ID: newID(), Kind: source.KindText, Title: "Text",
				Authors: []document.ID{newID(), newID()},
				Editors: []document.ID{newID()},
			}
			s.Clean()
			return s
		}(),
		validBook(t),
	}

	for _, s := range variants {
		out := s.Serialize()

		restored := &source.Source{}
		require.NoError(t, restored.Deserialize(out))

		assert.Equal(t, out, restored.Serialize())
	}
}

// countingResolver records bulk person lookups for the resolution contract.
type countingResolver struct {
	known map[document.ID]struct{}
	calls int
}

func (r *countingResolver) GetPeopleByIDs(_ context.Context, ids []document.ID) ([]*people.Person, error) {
	r.calls++

	var found []*people.Person
	for _, id := range ids {
		if _, ok := r.known[id]; ok {
			found = append(found, &people.Person{ID: id})
		}
	}
	return found, nil
}

type fakeRepo struct {
	created *source.Source
}

func (f *fakeRepo) ListSources(context.Context, source.Filter, int, int) ([]*source.Source, int, error) {
	return nil, 0, nil
}
func (f *fakeRepo) GetSource(context.Context, document.ID) (*source.Source, error) { return nil, nil }
func (f *fakeRepo) CreateSource(_ context.Context, s *source.Source) error {
	f.created = s
	return nil
}
func (f *fakeRepo) UpdateSource(context.Context, *source.Source) error { return nil }
func (f *fakeRepo) DeleteSource(context.Context, document.ID) error    { return nil }

/*
TestService_CreateSourceBulkResolution verifies that author and editor
references are resolved with exactly one bulk lookup over their union.
*/
func TestService_CreateSourceBulkResolution(t *testing.T) {
	author1, author2, editor := newID(), newID(), newID()

	resolver := &countingResolver{known: map[document.ID]struct{}{
		author1: {}, author2: {}, editor: {},
	}}
	repo := &fakeRepo{}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	service := source.NewService(repo, resolver, logger, nil)

	s := &source.Source{
		Kind:    source.KindText,
		Title:   "Collected Essays",
		Authors: []document.ID{author1, author2},
		Editors: []document.ID{editor},
	}

	require.NoError(t, service.CreateSource(context.Background(), s))
	assert.Equal(t, 1, resolver.calls)
	assert.NotNil(t, repo.created)
}

/*
TestService_CreateSourceUnknownReference verifies that a dangling person
reference fails validation before any write.
*/
func TestService_CreateSourceUnknownReference(t *testing.T) {
	resolver := &countingResolver{known: map[document.ID]struct{}{}}
	repo := &fakeRepo{}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	service := source.NewService(repo, resolver, logger, nil)

	s := &source.Source{
		Kind:    source.KindText,
		Title:   "Collected Essays",
		Authors: []document.ID{newID()},
	}

	err := service.CreateSource(context.Background(), s)
	require.Error(t, err)
	assert.Nil(t, repo.created)
}
