// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package report

import (
	"fmt"
	"io"

	"github.com/dustin/go-humanize"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/renderer"
	"github.com/olekukonko/tablewriter/tw"

	x509dn "github.com/H0llyW00dzZ/x509-bundle-editor/src/internal/x509/dn"
	x509record "github.com/H0llyW00dzZ/x509-bundle-editor/src/internal/x509/record"
)

// renderTable writes records as a markdown table. The action column is
// included for removal reports.
func renderTable(w io.Writer, records []*x509record.Record, action bool) {
	table := tablewriter.NewTable(w,
		tablewriter.WithRenderer(renderer.NewMarkdown(tw.Rendition{Streaming: true})),
	)

	headers := []string{"#", "Validity", "Not After", "Expires", "Issuer", "Subject"}
	if action {
		headers = append([]string{"#", "Action"}, headers[1:]...)
	}
	table.Header(headers)

	var rows [][]string
	for _, rec := range records {
		row := []string{
			fmt.Sprintf("%d", rec.Position),
			validityCell(rec),
			rec.NotAfterRaw,
			expiresCell(rec),
			nameCell(rec.Issuer, rec.IssuerRaw),
			nameCell(rec.Subject, rec.SubjectRaw),
		}
		if action {
			mark := ""
			if rec.Marked {
				mark = "DELETE"
			}
			row = append([]string{row[0], mark}, row[1:]...)
		}
		rows = append(rows, row)
	}

	table.Bulk(rows)
	table.Render()
}

func validityCell(rec *x509record.Record) string {
	if !rec.Decoded() {
		return "decode failed"
	}
	return rec.Validity.String()
}

func expiresCell(rec *x509record.Record) string {
	if rec.NotAfter.IsZero() {
		return ""
	}
	return humanize.Time(rec.NotAfter)
}

func nameCell(names x509dn.Names, raw string) string {
	switch {
	case names.CommonName != "" && names.Org != "":
		return names.CommonName + " (" + names.Org + ")"
	case names.CommonName != "":
		return names.CommonName
	case names.Org != "":
		return names.Org
	default:
		return raw
	}
}
