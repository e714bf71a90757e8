// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package x509selection_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	x509dn "github.com/H0llyW00dzZ/x509-bundle-editor/src/internal/x509/dn"
	x509record "github.com/H0llyW00dzZ/x509-bundle-editor/src/internal/x509/record"
	x509selection "github.com/H0llyW00dzZ/x509-bundle-editor/src/internal/x509/selection"
)

// fixture returns four records:
//
//  1. Issuer O=Acme CN=Acme Root, Subject CN=www.example.com, valid
//  2. Issuer O=Straße GmbH CN=Root, Subject O=Leaf Org CN=leaf, expired
//  3. decode failure
//  4. Issuer O=Other CN=Other CA, Subject O=Acme CN=api, not yet valid
func fixture() []*x509record.Record {
	return []*x509record.Record{
		{
			Position: 1,
			Issuer:   x509dn.Names{Org: "Acme", CommonName: "Acme Root"},
			Subject:  x509dn.Names{CommonName: "www.example.com"},
		},
		{
			Position: 2,
			Issuer:   x509dn.Names{Org: "Straße GmbH", CommonName: "Root"},
			Subject:  x509dn.Names{Org: "Leaf Org", CommonName: "leaf"},
			Validity: x509record.ValidityExpired,
		},
		{
			Position:  3,
			DecodeErr: x509record.ErrDecode,
		},
		{
			Position: 4,
			Issuer:   x509dn.Names{Org: "Other", CommonName: "Other CA"},
			Subject:  x509dn.Names{Org: "Acme", CommonName: "api"},
			Validity: x509record.ValidityNotYetValid,
		},
	}
}

func TestSelect(t *testing.T) {
	tests := []struct {
		name            string
		criteria        x509selection.Criteria
		expectedMask    x509selection.Mask
		expectedRemoved int
		positionMatched bool
	}{
		{
			name:         "No Criteria",
			criteria:     x509selection.Criteria{},
			expectedMask: x509selection.Mask{false, false, false, false},
		},
		{
			name:            "By Position",
			criteria:        x509selection.Criteria{Position: 2, HasPosition: true},
			expectedMask:    x509selection.Mask{false, true, false, false},
			expectedRemoved: 1,
			positionMatched: true,
		},
		{
			name:            "Decode Failure Selectable By Position",
			criteria:        x509selection.Criteria{Position: 3, HasPosition: true},
			expectedMask:    x509selection.Mask{false, false, true, false},
			expectedRemoved: 1,
			positionMatched: true,
		},
		{
			name:         "Position Out Of Range",
			criteria:     x509selection.Criteria{Position: 9, HasPosition: true},
			expectedMask: x509selection.Mask{false, false, false, false},
		},
		{
			name:         "Position Zero",
			criteria:     x509selection.Criteria{Position: 0, HasPosition: true},
			expectedMask: x509selection.Mask{false, false, false, false},
		},
		{
			name:            "Issuer By Organization Case Insensitive",
			criteria:        x509selection.Criteria{Issuer: "ACME"},
			expectedMask:    x509selection.Mask{true, false, false, false},
			expectedRemoved: 1,
		},
		{
			name:            "Issuer By Common Name",
			criteria:        x509selection.Criteria{Issuer: "other ca"},
			expectedMask:    x509selection.Mask{false, false, false, true},
			expectedRemoved: 1,
		},
		{
			name:            "Issuer Unicode Case Folding",
			criteria:        x509selection.Criteria{Issuer: "STRASSE GMBH"},
			expectedMask:    x509selection.Mask{false, true, false, false},
			expectedRemoved: 1,
		},
		{
			name:         "Issuer Substring Does Not Match",
			criteria:     x509selection.Criteria{Issuer: "Acm"},
			expectedMask: x509selection.Mask{false, false, false, false},
		},
		{
			name:            "Subject Matches Organization And Common Name Independently",
			criteria:        x509selection.Criteria{Subject: "acme"},
			expectedMask:    x509selection.Mask{false, false, false, true},
			expectedRemoved: 1,
		},
		{
			name:            "Expired Only",
			criteria:        x509selection.Criteria{Expired: true},
			expectedMask:    x509selection.Mask{false, true, false, false},
			expectedRemoved: 1,
		},
		{
			name:            "Overlapping Criteria Count Once",
			criteria:        x509selection.Criteria{Position: 2, HasPosition: true, Issuer: "Root", Subject: "leaf", Expired: true},
			expectedMask:    x509selection.Mask{false, true, false, false},
			expectedRemoved: 1,
			positionMatched: true,
		},
		{
			name:            "Combined Criteria",
			criteria:        x509selection.Criteria{Position: 1, HasPosition: true, Subject: "api", Expired: true},
			expectedMask:    x509selection.Mask{true, true, false, true},
			expectedRemoved: 3,
			positionMatched: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			records := fixture()
			res := x509selection.Select(records, tt.criteria)

			assert.Equal(t, tt.expectedRemoved, res.Removed)
			assert.Equal(t, tt.positionMatched, res.PositionMatched)

			mask := x509selection.MaskOf(records)
			assert.Equal(t, tt.expectedMask, mask)
			assert.Len(t, mask, len(records), "mask length equals certificate count")
			assert.Equal(t, tt.expectedRemoved, mask.Count())
		})
	}
}

func TestSelect_AlreadyMarked(t *testing.T) {
	records := fixture()
	records[0].Marked = true

	res := x509selection.Select(records, x509selection.Criteria{Position: 1, HasPosition: true, Issuer: "Acme"})
	assert.Zero(t, res.Removed, "already marked records are not counted again")
	assert.True(t, res.PositionMatched)
	assert.True(t, records[0].Marked, "marks are never cleared")
}

func TestCriteria_Empty(t *testing.T) {
	assert.True(t, x509selection.Criteria{}.Empty())
	assert.False(t, x509selection.Criteria{HasPosition: true}.Empty())
	assert.False(t, x509selection.Criteria{Issuer: "x"}.Empty())
	assert.False(t, x509selection.Criteria{Subject: "x"}.Empty())
	assert.False(t, x509selection.Criteria{Expired: true}.Empty())
}

func TestMask(t *testing.T) {
	tests := []struct {
		name  string
		mask  x509selection.Mask
		count int
		none  bool
		all   bool
	}{
		{name: "Empty", mask: nil, count: 0, none: true, all: false},
		{name: "All False", mask: x509selection.Mask{false, false}, count: 0, none: true, all: false},
		{name: "All True", mask: x509selection.Mask{true, true}, count: 2, none: false, all: true},
		{name: "Mixed", mask: x509selection.Mask{false, true, false}, count: 1, none: false, all: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.count, tt.mask.Count())
			assert.Equal(t, tt.none, tt.mask.None())
			assert.Equal(t, tt.all, tt.mask.All())
		})
	}

	m := x509selection.Mask{false, true}
	assert.False(t, m.Removes(0))
	assert.False(t, m.Removes(1))
	assert.True(t, m.Removes(2))
	assert.False(t, m.Removes(3))
}
