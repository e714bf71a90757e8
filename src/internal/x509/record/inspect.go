// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package x509record

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"time"

	x509bundle "github.com/H0llyW00dzZ/x509-bundle-editor/src/internal/x509/bundle"
	x509certs "github.com/H0llyW00dzZ/x509-bundle-editor/src/internal/x509/certs"
)

// Inspector runs the segment, decode, parse and classify pipeline over a bundle.
type Inspector struct {
	// Decoder renders each block into a report.
	Decoder x509certs.Decoder
	// Now returns the reference time for classification. Defaults to time.Now.
	Now func() time.Time
}

// Inspect reads the bundle from r and returns one record per certificate, in
// file order.
//
// A block the decoder rejects yields a record carrying only its position and a
// DecodeErr; the run continues with the next block. The reference time is taken
// once, before the first block.
//
// Parameters:
//   - ctx: Context passed to the decoder; cancellation stops the run
//   - r: Bundle contents
//
// Returns:
//   - []*Record: Records ordered by position
//   - error: [x509bundle.ErrMalformedBundle], a read error, or the context error
func (in *Inspector) Inspect(ctx context.Context, r io.Reader) ([]*Record, error) {
	now := time.Now
	if in.Now != nil {
		now = in.Now
	}
	ref := now()

	var records []*Record
	blocks := x509bundle.NewScanner(r)
	for blocks.Scan() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		block := blocks.Block()
		rec := &Record{Position: block.Position}

		report, err := in.Decoder.DecodeText(ctx, block.Text)
		switch {
		case ctx.Err() != nil:
			return nil, ctx.Err()
		case err != nil:
			rec.DecodeErr = fmt.Errorf("%w: certificate %d: %w", ErrDecode, block.Position, err)
		case len(bytes.TrimSpace(report)) == 0:
			rec.DecodeErr = fmt.Errorf("%w: certificate %d", ErrEmptyReport, block.Position)
		default:
			ParseReport(rec, report)
		}

		Classify(rec, ref)
		records = append(records, rec)
	}

	if err := blocks.Err(); err != nil {
		return nil, err
	}

	return records, nil
}
