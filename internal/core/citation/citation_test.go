// Copyright (c) 2026 Citeline. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package citation_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/citeline/internal/core/citation"
	"github.com/taibuivan/citeline/internal/platform/document"
	"github.com/taibuivan/citeline/pkg/uuidv7"
)

func newID() document.ID { return document.ID(uuidv7.New()) }

func validBookCitation(t *testing.T) *citation.Citation {
	t.Helper()

	c := &citation.Citation{
		ID:     newID(),
		Kind:   citation.KindBook,
		Source: newID(),
		Note:   "On psychohistory",
		Text:   "Violence is the last refuge of the incompetent.",
	}
	require.NoError(t, c.Pages.SetRange([]int{23, 24}))
	c.Clean()
	return c
}

/*
TestCitation_Validate verifies the required source reference and the closed
kind set.
*/
func TestCitation_Validate(t *testing.T) {
	c := &citation.Citation{}
	c.Clean()
	assert.Error(t, c.Validate())

	c.Source = newID()
	assert.NoError(t, c.Validate())

	c.Kind = "MOVIE"
	assert.Error(t, c.Validate())
}

/*
TestCitation_SerializeVariants verifies the additive key contract across the
three tiers.
*/
func TestCitation_SerializeVariants(t *testing.T) {
	plain := &citation.Citation{Source: newID(), Note: "plain"}
	plain.Clean()
	plainOut := plain.Serialize()

	text := &citation.Citation{Kind: citation.KindText, Source: newID(), Text: "quoted"}
	text.Clean()
	textOut := text.Serialize()

	bookOut := validBookCitation(t).Serialize()

	for key := range plainOut {
		assert.Contains(t, textOut, key)
		assert.Contains(t, bookOut, key)
	}
	for key := range textOut {
		assert.Contains(t, bookOut, key)
	}

	assert.NotContains(t, plainOut, "text")
	assert.NotContains(t, textOut, "pages")

	pages, ok := bookOut["pages"].(document.Map)
	require.True(t, ok)
	assert.Equal(t, 23, pages["start"])
	assert.Equal(t, 24, pages["end"])
}

/*
TestCitation_RoundTrip verifies serialize → deserialize → serialize
stability, with the source reference collapsing to an identifier.
*/
func TestCitation_RoundTrip(t *testing.T) {
	variants := []*citation.Citation{
		func() *citation.Citation {
			c := &citation.Citation{ID: newID(), Source: newID(), Note: "plain"}
			c.Clean()
			return c
		}(),
		func() *citation.Citation {
			c := &citation.Citation{ID: newID(), Kind: citation.KindText, Source: newID(), Text: "quoted"}
			c.Clean()
			return c
		}(),
		validBookCitation(t),
	}

	for _, c := range variants {
		out := c.Serialize()

		restored := &citation.Citation{}
		require.NoError(t, restored.Deserialize(out))

		assert.Equal(t, out, restored.Serialize())
	}
}

/*
TestCitation_DeserializeBadPages verifies that a malformed embedded page
range surfaces its own validation error.
*/
func TestCitation_DeserializeBadPages(t *testing.T) {
	c := &citation.Citation{}
	err := c.Deserialize(document.Map{
		"kind":   "BOOK",
		"source": uuidv7.New(),
		"pages":  document.Map{"start": 13, "end": 12},
	})
	assert.Error(t, err)
}
