// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package x509record

import (
	"bufio"
	"bytes"
	"strings"
	"time"

	x509certs "github.com/H0llyW00dzZ/x509-bundle-editor/src/internal/x509/certs"
	x509dn "github.com/H0llyW00dzZ/x509-bundle-editor/src/internal/x509/dn"
)

// Report line labels.
const (
	LabelIssuer    = "Issuer: "
	LabelSubject   = "Subject: "
	LabelNotBefore = "Not Before: "
	LabelNotAfter  = "Not After : "
)

// ParseReport fills rec from a decoder report.
//
// The first line containing each label wins. Timestamps are parsed with
// [x509certs.ReportTimeLayout]; a timestamp that does not parse leaves its
// bound absent while the raw text is still kept.
func ParseReport(rec *Record, report []byte) {
	var seenIssuer, seenSubject, seenBefore, seenAfter bool

	lines := bufio.NewScanner(bytes.NewReader(report))
	lines.Buffer(make([]byte, 0, 4096), 1024*1024)

	for lines.Scan() {
		line := strings.TrimRight(lines.Text(), " \t\r\n\f")
		rec.Report = append(rec.Report, line)

		if v, ok := valueAfter(line, LabelIssuer); ok && !seenIssuer {
			rec.IssuerRaw = v
			rec.Issuer = x509dn.Extract(v)
			seenIssuer = true
			continue
		}
		if v, ok := valueAfter(line, LabelSubject); ok && !seenSubject {
			rec.SubjectRaw = v
			rec.Subject = x509dn.Extract(v)
			seenSubject = true
			continue
		}
		if v, ok := valueAfter(line, LabelNotBefore); ok && !seenBefore {
			rec.NotBeforeRaw = v
			rec.NotBefore = parseTime(v)
			seenBefore = true
			continue
		}
		if v, ok := valueAfter(line, LabelNotAfter); ok && !seenAfter {
			rec.NotAfterRaw = v
			rec.NotAfter = parseTime(v)
			seenAfter = true
		}
	}
}

func valueAfter(line, label string) (string, bool) {
	i := strings.Index(line, label)
	if i < 0 {
		return "", false
	}
	return line[i+len(label):], true
}

func parseTime(v string) time.Time {
	t, err := time.Parse(x509certs.ReportTimeLayout, strings.TrimSpace(v))
	if err != nil {
		return time.Time{}
	}
	return t
}
