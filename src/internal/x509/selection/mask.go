// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package x509selection

import x509record "github.com/H0llyW00dzZ/x509-bundle-editor/src/internal/x509/record"

// Mask holds one entry per certificate position; true means omit the
// certificate from the rewritten bundle. Index i is position i+1.
type Mask []bool

// MaskOf derives the removal mask from the marks on records.
func MaskOf(records []*x509record.Record) Mask {
	m := make(Mask, len(records))
	for i, rec := range records {
		m[i] = rec.Marked
	}
	return m
}

// Count returns the number of certificates to remove.
func (m Mask) Count() int {
	n := 0
	for _, remove := range m {
		if remove {
			n++
		}
	}
	return n
}

// None reports whether nothing is removed.
func (m Mask) None() bool { return m.Count() == 0 }

// All reports whether every certificate is removed. An empty mask removes nothing.
func (m Mask) All() bool { return len(m) > 0 && m.Count() == len(m) }

// Removes reports whether the certificate at 1-based position is removed.
func (m Mask) Removes(position int) bool {
	if position < 1 || position > len(m) {
		return false
	}
	return m[position-1]
}
