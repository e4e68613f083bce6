// Copyright (c) 2026 Citeline. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package people_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/citeline/internal/core/locale"
	"github.com/taibuivan/citeline/internal/core/people"
	"github.com/taibuivan/citeline/internal/platform/document"
	"github.com/taibuivan/citeline/pkg/uuidv7"
)

func validPerson(t *testing.T) *people.Person {
	t.Helper()

	birth := locale.Year(1920)
	death := locale.Year(1992)

	p := &people.Person{
		ID:          document.ID(uuidv7.New()),
		Description: "Science fiction writer",
		Birth:       &birth,
		Death:       &death,
	}
	require.NoError(t, p.Name.SetFull("Isaac Asimov"))
	p.Clean()
	return p
}

/*
TestPerson_Serialize verifies the wire mapping including the nested name.
*/
func TestPerson_Serialize(t *testing.T) {
	p := validPerson(t)
	out := p.Serialize()

	assert.Equal(t, p.ID.String(), out["id"])
	assert.Equal(t, "Science fiction writer", out["description"])
	assert.Equal(t, 1920, out["birth"])
	assert.Equal(t, 1992, out["death"])

	name, ok := out["name"].(document.Map)
	require.True(t, ok)
	assert.Equal(t, "Isaac Asimov", name["full"])
}

/*
TestPerson_SerializeFields verifies dotted-path field selection into the
embedded name.
*/
func TestPerson_SerializeFields(t *testing.T) {
	p := validPerson(t)
	out := p.Serialize("id", "name.full")

	assert.Contains(t, out, "id")
	assert.NotContains(t, out, "birth")

	name, ok := out["name"].(document.Map)
	require.True(t, ok)
	assert.Equal(t, "Isaac Asimov", name["full"])
	assert.NotContains(t, name, "first")
}

/*
TestPerson_RoundTrip verifies serialize → deserialize → serialize stability.
*/
func TestPerson_RoundTrip(t *testing.T) {
	p := validPerson(t)
	out := p.Serialize()

	restored := &people.Person{}
	require.NoError(t, restored.Deserialize(out))

	assert.Equal(t, out, restored.Serialize())
}

/*
TestPerson_DeserializeUnknownKeys verifies tolerant deserialization: unknown
keys are ignored, bad values error.
*/
func TestPerson_DeserializeUnknownKeys(t *testing.T) {
	p := &people.Person{}

	require.NoError(t, p.Deserialize(document.Map{
		"unexpected": "value",
		"name":       document.Map{"last": "Doe"},
	}))
	assert.Equal(t, "Doe", p.Name.Last)

	assert.Error(t, p.Deserialize(document.Map{"birth": "not a year"}))
	assert.Error(t, p.Deserialize(document.Map{"id": "not-a-uuid"}))
}

/*
TestPerson_Validate verifies the aggregated invariant check.
*/
func TestPerson_Validate(t *testing.T) {
	assert.Error(t, (&people.Person{}).Validate())
	assert.NoError(t, validPerson(t).Validate())
}
