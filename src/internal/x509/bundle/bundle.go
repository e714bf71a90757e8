// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package x509bundle

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"
)

const (
	// BeginMarker opens one certificate in a bundle.
	BeginMarker = "-----BEGIN CERTIFICATE-----"
	// EndMarker closes one certificate in a bundle.
	EndMarker = "-----END CERTIFICATE-----"
)

// ErrMalformedBundle indicates that the bundle ended inside a certificate block.
var ErrMalformedBundle = errors.New("x509bundle: malformed bundle, missing end marker")

// Block is the raw PEM text of one certificate, markers included.
//
// Text holds one line per certificate line with trailing whitespace removed,
// each terminated by a single newline.
type Block struct {
	Position int
	Text     []byte
}

// Scanner reads certificate blocks from a bundle one at a time.
//
// Successive calls to Scan step through the blocks in file order. Scanning stops
// at EOF or the first error; a Scanner cannot be rewound.
type Scanner struct {
	lines   *bufio.Scanner
	current Block
	count   int
	err     error
	done    bool
}

// NewScanner returns a Scanner reading the bundle from r.
func NewScanner(r io.Reader) *Scanner {
	lines := bufio.NewScanner(r)
	// Bundles with long comment lines exceed the default 64 KiB token size.
	lines.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	return &Scanner{lines: lines}
}

// Scan advances to the next certificate block. It returns false when the bundle
// is exhausted or an error occurred; Err reports which.
func (s *Scanner) Scan() bool {
	if s.done {
		return false
	}

	var (
		text   bytes.Buffer
		inCert bool
	)

	for s.lines.Scan() {
		line := strings.TrimRight(s.lines.Text(), " \t\r\n\f")

		if !inCert {
			if line == BeginMarker {
				inCert = true
				text.WriteString(line)
				text.WriteByte('\n')
			}
			continue
		}

		text.WriteString(line)
		text.WriteByte('\n')

		if line == EndMarker {
			s.count++
			s.current = Block{Position: s.count, Text: text.Bytes()}
			return true
		}
	}

	s.done = true
	if err := s.lines.Err(); err != nil {
		s.err = fmt.Errorf("x509bundle: read bundle: %w", err)
		return false
	}
	if inCert {
		s.err = fmt.Errorf("%w (certificate %d)", ErrMalformedBundle, s.count+1)
	}
	return false
}

// Block returns the block produced by the most recent call to Scan.
func (s *Scanner) Block() Block { return s.current }

// Err returns the first error encountered by the Scanner.
func (s *Scanner) Err() error { return s.err }

// ReadAll reads every certificate block from r.
//
// Returns:
//   - []Block: Blocks in file order
//   - error: ErrMalformedBundle if the final block is not terminated, or a read error
func ReadAll(r io.Reader) ([]Block, error) {
	var blocks []Block

	s := NewScanner(r)
	for s.Scan() {
		blocks = append(blocks, s.Block())
	}
	if err := s.Err(); err != nil {
		return nil, err
	}

	return blocks, nil
}

// Join writes the blocks for which keep returns true to w.
//
// Exactly one blank line separates consecutive kept blocks; there is no leading
// or trailing blank line, and removed blocks never leave a gap behind.
//
// Returns:
//   - int: Number of blocks written
//   - error: First write error
func Join(w io.Writer, blocks []Block, keep func(Block) bool) (int, error) {
	written := 0

	for _, b := range blocks {
		if !keep(b) {
			continue
		}
		if written > 0 {
			if _, err := io.WriteString(w, "\n"); err != nil {
				return written, err
			}
		}
		if _, err := w.Write(b.Text); err != nil {
			return written, err
		}
		written++
	}

	return written, nil
}
