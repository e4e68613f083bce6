// Copyright (c) 2026 Citeline. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package org_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/citeline/internal/core/locale"
	"github.com/taibuivan/citeline/internal/core/org"
	"github.com/taibuivan/citeline/internal/platform/document"
	"github.com/taibuivan/citeline/pkg/uuidv7"
)

func validPublisher() *org.Organization {
	established := locale.Year(1586)
	o := &org.Organization{
		ID:          document.ID(uuidv7.New()),
		Kind:        org.KindPublisher,
		Name:        "Oxford University Press",
		Established: &established,
		Description: "The largest university press in the world",
		Region:      "uk",
	}
	o.Clean()
	return o
}

/*
TestOrganization_Clean verifies kind defaulting, region normalization, and
slug derivation.
*/
func TestOrganization_Clean(t *testing.T) {
	o := &org.Organization{Name: "Project Gutenberg"}
	o.Clean()

	assert.Equal(t, org.KindOrganization, o.Kind)
	assert.Equal(t, "project-gutenberg", o.Slug)

	p := validPublisher()
	assert.Equal(t, "UK", p.Region)
	assert.Equal(t, "oxford-university-press", p.Slug)
}

/*
TestOrganization_Validate verifies the aggregated invariants per variant.
*/
func TestOrganization_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*org.Organization)
		wantErr bool
	}{
		{"valid publisher", func(o *org.Organization) {}, false},
		{"missing name", func(o *org.Organization) { o.Name = "" }, true},
		{"bad kind", func(o *org.Organization) { o.Kind = "LIBRARY" }, true},
		{"publisher region must be 2 letters", func(o *org.Organization) { o.Region = "GBR" }, true},
		{"plain organization rejects region", func(o *org.Organization) { o.Kind = org.KindOrganization }, true},
		{"publisher region optional", func(o *org.Organization) { o.Region = "" }, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			o := validPublisher()
			tc.mutate(o)

			err := o.Validate()
			if tc.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

/*
TestOrganization_Serialize verifies that the publisher variant carries every
base key plus its own region.
*/
func TestOrganization_Serialize(t *testing.T) {
	base := &org.Organization{Name: "Project Gutenberg"}
	base.Clean()
	baseOut := base.Serialize()

	publisher := validPublisher()
	publisherOut := publisher.Serialize()

	// Every base key appears in the publisher's mapping too
	for key := range baseOut {
		assert.Contains(t, publisherOut, key)
	}
	assert.Equal(t, "UK", publisherOut["region"])
	assert.NotContains(t, baseOut, "region")
	assert.Equal(t, 1586, publisherOut["established"])
}

/*
TestOrganization_RoundTrip verifies serialize → deserialize → serialize
stability for both variants.
*/
func TestOrganization_RoundTrip(t *testing.T) {
	for _, o := range []*org.Organization{validPublisher(), func() *org.Organization {
		base := &org.Organization{ID: document.ID(uuidv7.New()), Name: "Project Gutenberg"}
		base.Clean()
		return base
	}()} {
		out := o.Serialize()

		restored := &org.Organization{}
		require.NoError(t, restored.Deserialize(out))

		assert.Equal(t, out, restored.Serialize())
	}
}

/*
TestValidKind verifies the closed discriminant set.
*/
func TestValidKind(t *testing.T) {
	assert.True(t, org.ValidKind("ORGANIZATION"))
	assert.True(t, org.ValidKind("PUBLISHER"))
	assert.False(t, org.ValidKind("publisher"))
	assert.False(t, org.ValidKind(""))
}
