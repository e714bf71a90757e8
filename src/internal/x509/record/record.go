// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package x509record

import (
	"errors"
	"time"

	x509dn "github.com/H0llyW00dzZ/x509-bundle-editor/src/internal/x509/dn"
)

var (
	// ErrDecode marks a record whose block the decoder rejected.
	ErrDecode = errors.New("x509record: certificate could not be decoded")

	// ErrEmptyReport marks a record whose decoder produced no output.
	ErrEmptyReport = errors.New("x509record: decoder produced an empty report")
)

// Validity is the annotation of a certificate's validity window relative to now.
type Validity int

const (
	// ValidityNone means no bound was violated, or none could be parsed.
	ValidityNone Validity = iota
	// ValidityNotYetValid means Not Before lies in the future.
	ValidityNotYetValid
	// ValidityExpired means Not After lies in the past.
	ValidityExpired
)

// String returns the lower-case name of v.
func (v Validity) String() string {
	switch v {
	case ValidityNotYetValid:
		return "not yet valid"
	case ValidityExpired:
		return "expired"
	default:
		return "valid"
	}
}

// Record is the structured metadata of one certificate in a bundle.
//
// A zero NotBefore or NotAfter means the bound is absent. Records with a
// non-nil DecodeErr carry only their Position.
type Record struct {
	Position int

	IssuerRaw  string
	SubjectRaw string
	Issuer     x509dn.Names
	Subject    x509dn.Names

	NotBefore    time.Time
	NotAfter     time.Time
	NotBeforeRaw string
	NotAfterRaw  string

	Validity Validity
	Marked   bool

	DecodeErr error

	// Report holds the decoder output, one right-trimmed line per element.
	Report []string
}

// Decoded reports whether the decoder accepted the record's block.
func (r *Record) Decoded() bool { return r.DecodeErr == nil }

// Classify annotates rec against now and returns the annotation.
//
// Expired takes precedence over not yet valid. Absent bounds are not checked,
// and records that failed to decode are never annotated.
func Classify(rec *Record, now time.Time) Validity {
	rec.Validity = ValidityNone

	switch {
	case !rec.Decoded():
	case !rec.NotAfter.IsZero() && rec.NotAfter.Before(now):
		rec.Validity = ValidityExpired
	case !rec.NotBefore.IsZero() && rec.NotBefore.After(now):
		rec.Validity = ValidityNotYetValid
	}

	return rec.Validity
}
