// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package x509selection

import (
	"golang.org/x/text/cases"

	x509dn "github.com/H0llyW00dzZ/x509-bundle-editor/src/internal/x509/dn"
	x509record "github.com/H0llyW00dzZ/x509-bundle-editor/src/internal/x509/record"
)

// Criteria describes which certificates an operator wants removed.
// Empty strings and a false HasPosition leave the criterion unset.
type Criteria struct {
	Position    int
	HasPosition bool
	Issuer      string
	Subject     string
	Expired     bool
}

// Empty reports whether no criterion is set.
func (c Criteria) Empty() bool {
	return !c.HasPosition && c.Issuer == "" && c.Subject == "" && !c.Expired
}

// Result summarizes one selection pass.
type Result struct {
	// Removed is the number of records marked by this pass.
	Removed int
	// PositionMatched is false when a position was requested but no record has it.
	PositionMatched bool
}

// Select marks the records matching c and reports how many were marked.
//
// Records already marked are left as they are and not counted again. A
// requested position outside the bundle marks nothing.
//
// Parameters:
//   - records: Records in position order
//   - c: Selection criteria
//
// Returns:
//   - Result: Number of newly marked records and whether the position matched
func Select(records []*x509record.Record, c Criteria) Result {
	var (
		res  Result
		fold = cases.Fold()
	)
	issuer := fold.String(c.Issuer)
	subject := fold.String(c.Subject)

	for _, rec := range records {
		if c.HasPosition && rec.Position == c.Position {
			res.PositionMatched = true
		}
		if rec.Marked {
			continue
		}

		switch {
		case c.HasPosition && rec.Position == c.Position:
		case !rec.Decoded():
			continue
		case c.Issuer != "" && matches(fold, rec.Issuer, issuer):
		case c.Subject != "" && matches(fold, rec.Subject, subject):
		case c.Expired && rec.Validity == x509record.ValidityExpired:
		default:
			continue
		}

		rec.Marked = true
		res.Removed++
	}

	return res
}

func matches(fold cases.Caser, names x509dn.Names, want string) bool {
	return fold.String(names.Org) == want || fold.String(names.CommonName) == want
}
