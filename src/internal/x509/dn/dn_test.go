// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package x509dn_test

import (
	"crypto/x509/pkix"
	"encoding/asn1"
	"testing"

	"github.com/stretchr/testify/assert"

	x509dn "github.com/H0llyW00dzZ/x509-bundle-editor/src/internal/x509/dn"
)

func TestExtract(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		expected x509dn.Names
	}{
		{
			name:     "Organization And Common Name",
			raw:      "C = US, O = Let's Encrypt, CN = R3",
			expected: x509dn.Names{Org: "Let's Encrypt", CommonName: "R3"},
		},
		{
			name:     "Common Name Only",
			raw:      "CN = www.google.com",
			expected: x509dn.Names{CommonName: "www.google.com"},
		},
		{
			name:     "Organization Only",
			raw:      "C = BE, O = GlobalSign nv-sa, OU = Root CA",
			expected: x509dn.Names{Org: "GlobalSign nv-sa"},
		},
		{
			name:     "Empty",
			raw:      "",
			expected: x509dn.Names{},
		},
		{
			name:     "Quoted Organization With Comma",
			raw:      `C = US, O = "DigiCert, Inc.", CN = DigiCert Global Root G2`,
			expected: x509dn.Names{Org: "DigiCert, Inc.", CommonName: "DigiCert Global Root G2"},
		},
		{
			name:     "Escaped Quote",
			raw:      `O = "Acme \"Widgets\", Ltd", CN = acme`,
			expected: x509dn.Names{Org: `Acme "Widgets", Ltd`, CommonName: "acme"},
		},
		{
			name:     "Common Name Runs To End",
			raw:      "O = Example, CN = Example CA, emailAddress = ca@example.com",
			expected: x509dn.Names{Org: "Example", CommonName: "Example CA, emailAddress = ca@example.com"},
		},
		{
			name:     "Organizational Unit Is Not Organization",
			raw:      "OU = Unit, CN = host",
			expected: x509dn.Names{CommonName: "host"},
		},
		{
			name:     "First Organization Wins",
			raw:      "O = First, O = Second, CN = host",
			expected: x509dn.Names{Org: "First", CommonName: "host"},
		},
		{
			name:     "Compact Spacing",
			raw:      "O=Compact,CN=tight",
			expected: x509dn.Names{Org: "Compact", CommonName: "tight"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, x509dn.Extract(tt.raw))
		})
	}
}

func TestParse(t *testing.T) {
	raw := `C = US, O = "A, B", junk, CN = host`
	comps := x509dn.Parse(raw)

	assert.Equal(t, []x509dn.Component{
		{Key: "C", Value: "US", Offset: 4},
		{Key: "O", Value: "A, B", Offset: 12},
		{Key: "CN", Value: "host", Offset: 31},
	}, comps)
}

func TestFormat(t *testing.T) {
	emailOID := asn1.ObjectIdentifier{1, 2, 840, 113549, 1, 9, 1}
	unknownOID := asn1.ObjectIdentifier{1, 3, 6, 1, 4, 1, 99999, 1}

	tests := []struct {
		name     string
		input    pkix.Name
		expected string
	}{
		{
			name: "Attribute Order Preserved",
			input: pkix.Name{Names: []pkix.AttributeTypeAndValue{
				{Type: asn1.ObjectIdentifier{2, 5, 4, 6}, Value: "US"},
				{Type: asn1.ObjectIdentifier{2, 5, 4, 10}, Value: "Let's Encrypt"},
				{Type: asn1.ObjectIdentifier{2, 5, 4, 3}, Value: "R3"},
			}},
			expected: "C = US, O = Let's Encrypt, CN = R3",
		},
		{
			name: "Separators Quoted",
			input: pkix.Name{Names: []pkix.AttributeTypeAndValue{
				{Type: asn1.ObjectIdentifier{2, 5, 4, 10}, Value: `DigiCert, "Inc."`},
			}},
			expected: `O = "DigiCert, \"Inc.\""`,
		},
		{
			name: "Email And Unknown Attribute",
			input: pkix.Name{Names: []pkix.AttributeTypeAndValue{
				{Type: emailOID, Value: "ca@example.com"},
				{Type: unknownOID, Value: "x"},
			}},
			expected: "emailAddress = ca@example.com, 1.3.6.1.4.1.99999.1 = x",
		},
		{
			name:     "Fields Without Names",
			input:    pkix.Name{Organization: []string{"Example"}, CommonName: "example.com"},
			expected: "O = Example, CN = example.com",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, x509dn.Format(tt.input))
		})
	}
}

func TestFormatExtract_RoundTrip(t *testing.T) {
	name := pkix.Name{Names: []pkix.AttributeTypeAndValue{
		{Type: asn1.ObjectIdentifier{2, 5, 4, 10}, Value: "Acme, Inc."},
		{Type: asn1.ObjectIdentifier{2, 5, 4, 3}, Value: "Acme Root"},
	}}

	assert.Equal(t, x509dn.Names{Org: "Acme, Inc.", CommonName: "Acme Root"}, x509dn.Extract(x509dn.Format(name)))
}
