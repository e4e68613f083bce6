// Copyright (c) 2026 Citeline. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package document_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/citeline/internal/platform/document"
)

func TestParseID(t *testing.T) {
	id, err := document.ParseID("0190a8b0-7a3e-7bbb-9df5-8f4b6e1aa001")
	require.NoError(t, err)
	assert.Equal(t, "0190a8b0-7a3e-7bbb-9df5-8f4b6e1aa001", id.String())
	assert.False(t, id.IsZero())

	_, err = document.ParseID("not-an-id")
	assert.Error(t, err)

	var zero document.ID
	assert.True(t, zero.IsZero())
}

/*
TestFilter covers whole-document, flat, and dotted-path field selection.
*/
func TestFilter(t *testing.T) {
	doc := document.Map{
		"id": "x",
		"name": document.Map{
			"title": "John Doe",
			"full":  "John Doe",
			"last":  "Doe",
		},
		"birth": 1950,
	}

	t.Run("nil_selection_returns_all", func(t *testing.T) {
		out := document.Filter(doc, document.NewFieldSet())
		assert.Equal(t, doc, out)
	})

	t.Run("flat_selection", func(t *testing.T) {
		out := document.Filter(doc, document.NewFieldSet("id", "birth"))
		assert.Equal(t, document.Map{"id": "x", "birth": 1950}, out)
	})

	t.Run("dotted_selection", func(t *testing.T) {
		out := document.Filter(doc, document.NewFieldSet("name.full"))
		assert.Equal(t, document.Map{"name": document.Map{"full": "John Doe"}}, out)
	})

	t.Run("whole_key_subsumes_dotted", func(t *testing.T) {
		out := document.Filter(doc, document.NewFieldSet("name", "name.full"))
		assert.Equal(t, document.Map{"name": doc["name"]}, out)

		out = document.Filter(doc, document.NewFieldSet("name.full", "name"))
		assert.Equal(t, document.Map{"name": doc["name"]}, out)
	})

	t.Run("unknown_keys_ignored", func(t *testing.T) {
		out := document.Filter(doc, document.NewFieldSet("nope", "name.last"))
		assert.Equal(t, document.Map{"name": document.Map{"last": "Doe"}}, out)
	})
}

/*
TestAccessors checks the tolerant getters against JSON-shaped input.
*/
func TestAccessors(t *testing.T) {
	data := document.Map{
		"title":  "The Greatest Story",
		"birth":  float64(1950),
		"tags":   []any{"a", "b"},
		"nested": map[string]any{"k": "v"},
		"none":   nil,
		"when":   "2026-01-02T15:04:05Z",
		"ref":    "0190a8b0-7a3e-7bbb-9df5-8f4b6e1aa001",
		"refs":   []any{"0190a8b0-7a3e-7bbb-9df5-8f4b6e1aa001"},
	}

	s, ok, err := document.GetString(data, "title")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "The Greatest Story", s)

	_, ok, err = document.GetString(data, "missing")
	require.NoError(t, err)
	assert.False(t, ok, "absent keys are not an error")

	_, ok, err = document.GetString(data, "none")
	require.NoError(t, err)
	assert.False(t, ok, "explicit null reads as absent")

	_, _, err = document.GetString(data, "birth")
	assert.Error(t, err, "present keys with the wrong shape are an error")

	n, ok, err := document.GetInt(data, "birth")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 1950, n)

	_, _, err = document.GetInt(data, "title")
	assert.Error(t, err)

	tags, ok, err := document.GetStrings(data, "tags")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, []string{"a", "b"}, tags)

	nested, ok, err := document.GetMap(data, "nested")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, document.Map{"k": "v"}, nested)

	when, ok, err := document.GetTime(data, "when")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, time.Date(2026, 1, 2, 15, 4, 5, 0, time.UTC), when.UTC())

	ref, ok, err := document.GetID(data, "ref")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, document.ID("0190a8b0-7a3e-7bbb-9df5-8f4b6e1aa001"), ref)

	refs, ok, err := document.GetIDs(data, "refs")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Len(t, refs, 1)

	_, _, err = document.GetID(document.Map{"ref": "derp"}, "ref")
	assert.Error(t, err)
}
