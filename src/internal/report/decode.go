// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package report

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/H0llyW00dzZ/x509-bundle-editor/src/internal/helper/gc"
	x509record "github.com/H0llyW00dzZ/x509-bundle-editor/src/internal/x509/record"
)

// ParsedTimeLayout formats timestamps in debug output.
const ParsedTimeLayout = "2006-01-02-Mon 15:04:05 MST"

// DecodeOptions selects the layout of an inspection report.
type DecodeOptions struct {
	// Verbose prints every decoder line instead of the summary lines.
	Verbose bool
	// Debug adds the parsed validity timestamps.
	Debug bool
	// Table renders a markdown table instead of text.
	Table bool
}

// WriteDecode writes the inspection report of the bundle shown as display.
//
// Each certificate starts with a "========" header. The text layout keeps the
// decoder's issuer and subject lines and prints the validity block with the
// classification marker appended. A "########" trailer counts the certificates
// when there is more than one.
func WriteDecode(w io.Writer, display string, records []*x509record.Record, opts DecodeOptions) error {
	buf := gc.Default.Get()
	defer func() {
		buf.Reset()
		gc.Default.Put(buf)
	}()

	if opts.Table {
		fmt.Fprintf(buf, "######## %s, %d Certificates in File\n", display, len(records))
		renderTable(buf, records, false)
	} else {
		for _, rec := range records {
			fmt.Fprintf(buf, "======== %s, Certificate %d\n", display, rec.Position)
			if opts.Verbose {
				for _, line := range rec.Report {
					fmt.Fprintln(buf, line)
				}
				continue
			}
			writeSummary(buf, rec, opts.Debug)
		}
		if len(records) > 1 {
			fmt.Fprintf(buf, "######## %s, %d Certificates in File\n", display, len(records))
		}
	}

	_, err := buf.WriteTo(w)
	return err
}

// writeSummary prints the issuer and subject lines as they appear in the
// report, and the validity block once its Not After line is reached. A report
// without a Not After line still gets its validity block at the end.
func writeSummary(w io.Writer, rec *x509record.Record, debug bool) {
	if !rec.Decoded() {
		fmt.Fprintln(w, Banner(rec))
		return
	}

	var validity, before string
	pending := false

	for _, line := range rec.Report {
		switch {
		case strings.Contains(line, "Issuer:"), strings.Contains(line, "Subject:"):
			fmt.Fprintln(w, line)
		case strings.Contains(line, "Validity"):
			validity, pending = line, true
		case strings.Contains(line, x509record.LabelNotBefore):
			before, pending = line, true
			if debug {
				fmt.Fprintf(w, "*** PARSED NOT BEFORE (%s): %s\n", rec.NotBeforeRaw, parsed(rec.NotBefore))
			}
		case strings.Contains(line, x509record.LabelNotAfter):
			if debug {
				fmt.Fprintf(w, "*** PARSED NOT AFTER (%s): %s\n", rec.NotAfterRaw, parsed(rec.NotAfter))
			}
			writeValidity(w, rec, validity, before)
			fmt.Fprintln(w, line)
			pending = false
		}
	}

	if pending {
		writeValidity(w, rec, validity, before)
	}
}

// writeValidity prints the validity header with the classification marker and
// the Not Before line, skipping whichever of the two the report lacked.
func writeValidity(w io.Writer, rec *x509record.Record, validity, before string) {
	switch banner := Banner(rec); {
	case banner == "":
	case validity == "":
		validity = banner
	default:
		validity += " " + banner
	}
	if validity != "" {
		fmt.Fprintln(w, validity)
	}
	if before != "" {
		fmt.Fprintln(w, before)
	}
}

func parsed(t time.Time) string {
	if t.IsZero() {
		return "unparsed"
	}
	return t.Format(ParsedTimeLayout)
}
