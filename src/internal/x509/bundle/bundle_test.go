// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package x509bundle_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/H0llyW00dzZ/x509-bundle-editor/src/internal/helper/certtest"
	x509bundle "github.com/H0llyW00dzZ/x509-bundle-editor/src/internal/x509/bundle"
)

func block(body string) string {
	return x509bundle.BeginMarker + "\n" + body + "\n" + x509bundle.EndMarker + "\n"
}

func TestScanner(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		expected  []string
		expectErr error
	}{
		{
			name:     "Empty Input",
			input:    "",
			expected: nil,
		},
		{
			name:     "Single Block",
			input:    block("AAAA"),
			expected: []string{block("AAAA")},
		},
		{
			name:     "Blocks Separated By Blank Lines And Comments",
			input:    "# trust store\n\n" + block("AAAA") + "\nstray text\n" + block("BBBB") + "\n\n",
			expected: []string{block("AAAA"), block("BBBB")},
		},
		{
			name:     "Trailing Whitespace And CRLF Stripped",
			input:    x509bundle.BeginMarker + "  \r\nAAAA\t\r\n" + x509bundle.EndMarker + "\r\n",
			expected: []string{block("AAAA")},
		},
		{
			name:     "Indented Marker Is Not A Marker",
			input:    "  " + x509bundle.BeginMarker + "\nAAAA\n" + x509bundle.EndMarker + "\n",
			expected: nil,
		},
		{
			name:      "Missing End Marker",
			input:     block("AAAA") + x509bundle.BeginMarker + "\nBBBB\n",
			expectErr: x509bundle.ErrMalformedBundle,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			blocks, err := x509bundle.ReadAll(strings.NewReader(tt.input))
			if tt.expectErr != nil {
				assert.ErrorIs(t, err, tt.expectErr)
				assert.Nil(t, blocks, "partial blocks must not be returned")
				return
			}
			require.NoError(t, err)

			require.Len(t, blocks, len(tt.expected))
			for i, b := range blocks {
				assert.Equal(t, i+1, b.Position, "positions are contiguous from 1")
				assert.Equal(t, tt.expected[i], string(b.Text))
			}
		})
	}
}

func TestScanner_Lazy(t *testing.T) {
	s := x509bundle.NewScanner(strings.NewReader(block("AAAA") + block("BBBB") + x509bundle.BeginMarker + "\n"))

	require.True(t, s.Scan())
	assert.Equal(t, 1, s.Block().Position)
	require.NoError(t, s.Err(), "error only surfaces once the stream ends")

	require.True(t, s.Scan())
	assert.Equal(t, 2, s.Block().Position)

	assert.False(t, s.Scan())
	assert.ErrorIs(t, s.Err(), x509bundle.ErrMalformedBundle)
	assert.False(t, s.Scan(), "scanner is not restartable")
}

func TestReadAll_RoundTrip(t *testing.T) {
	certs := [][]byte{
		certtest.Valid(t, certtest.Name("Example Org", "one.example")),
		certtest.Valid(t, certtest.Name("Example Org", "two.example")),
		certtest.Expired(t, certtest.Name("", "three.example")),
	}
	input := certtest.Bundle(certs...)

	blocks, err := x509bundle.ReadAll(bytes.NewReader(input))
	require.NoError(t, err)
	require.Len(t, blocks, len(certs))

	for i, b := range blocks {
		assert.Equal(t, certs[i], b.Text, "block %d round-trips byte for byte", i+1)
	}

	var out bytes.Buffer
	n, err := x509bundle.Join(&out, blocks, func(x509bundle.Block) bool { return true })
	require.NoError(t, err)
	assert.Equal(t, len(certs), n)
	assert.Equal(t, input, out.Bytes())
}

func TestJoin(t *testing.T) {
	blocks := []x509bundle.Block{
		{Position: 1, Text: []byte(block("AAAA"))},
		{Position: 2, Text: []byte(block("BBBB"))},
		{Position: 3, Text: []byte(block("CCCC"))},
		{Position: 4, Text: []byte(block("DDDD"))},
	}

	tests := []struct {
		name     string
		remove   map[int]bool
		expected string
		written  int
	}{
		{
			name:     "Remove Middle",
			remove:   map[int]bool{2: true},
			expected: block("AAAA") + "\n" + block("CCCC") + "\n" + block("DDDD"),
			written:  3,
		},
		{
			name:     "Remove First",
			remove:   map[int]bool{1: true},
			expected: block("BBBB") + "\n" + block("CCCC") + "\n" + block("DDDD"),
			written:  3,
		},
		{
			name:     "Remove Last",
			remove:   map[int]bool{4: true},
			expected: block("AAAA") + "\n" + block("BBBB") + "\n" + block("CCCC"),
			written:  3,
		},
		{
			name:     "Remove Two Adjacent",
			remove:   map[int]bool{2: true, 3: true},
			expected: block("AAAA") + "\n" + block("DDDD"),
			written:  2,
		},
		{
			name:     "Remove All",
			remove:   map[int]bool{1: true, 2: true, 3: true, 4: true},
			expected: "",
			written:  0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			n, err := x509bundle.Join(&out, blocks, func(b x509bundle.Block) bool {
				return !tt.remove[b.Position]
			})
			require.NoError(t, err)
			assert.Equal(t, tt.written, n)
			assert.Equal(t, tt.expected, out.String())
		})
	}
}
