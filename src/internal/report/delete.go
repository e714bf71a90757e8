// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package report

import (
	"fmt"
	"io"

	"github.com/H0llyW00dzZ/x509-bundle-editor/src/internal/helper/gc"
	x509record "github.com/H0llyW00dzZ/x509-bundle-editor/src/internal/x509/record"
)

// Status is the outcome of a removal run for one bundle.
type Status int

const (
	// StatusNotModified means no certificate was selected.
	StatusNotModified Status = iota
	// StatusWholeBundle means every certificate was selected.
	StatusWholeBundle
	// StatusTestMode means the rewrite was skipped on request.
	StatusTestMode
	// StatusBackupOverwrite means an existing backup is about to be replaced.
	StatusBackupOverwrite
	// StatusBackupExists means the backup path is taken, so the bundle stays as is.
	StatusBackupExists
	// StatusBackup means the bundle is about to be rewritten with a fresh backup.
	StatusBackup
)

// Rewrites reports whether s leads to a rewrite of the bundle.
func (s Status) Rewrites() bool {
	return s == StatusBackup || s == StatusBackupOverwrite
}

// Summary is the header line of a removal report.
type Summary struct {
	Listing    string
	Path       string
	BackupPath string
	Total      int
	Removed    int
	Status     Status
}

// String renders the header line.
func (s Summary) String() string {
	return fmt.Sprintf("######## %s, %d Certificates in File, Delete %d (%s)",
		s.Listing, s.Total, s.Removed, s.statusText())
}

func (s Summary) statusText() string {
	switch s.Status {
	case StatusWholeBundle:
		return "Entire file must be deleted"
	case StatusTestMode:
		return "File not updated in Test Mode"
	case StatusBackupOverwrite:
		return fmt.Sprintf("Backup %s will be overwritten in Force Mode", s.BackupPath)
	case StatusBackupExists:
		return fmt.Sprintf("Backup %s already exists so %s will NOT be updated", s.BackupPath, s.Path)
	case StatusBackup:
		return fmt.Sprintf("Backup to %s", s.BackupPath)
	default:
		return "File NOT Modified"
	}
}

// Banner returns the validity marker printed for rec, or "" when there is none.
func Banner(rec *x509record.Record) string {
	switch {
	case !rec.Decoded():
		return "*** DECODE FAILED ***"
	case rec.Validity == x509record.ValidityExpired:
		return "*** EXPIRED ***"
	case rec.Validity == x509record.ValidityNotYetValid:
		return "*** NOT YET VALID ***"
	default:
		return ""
	}
}

// Range returns "not before - not after" as reported by the decoder.
func Range(rec *x509record.Record) string {
	if rec.NotAfterRaw == "" {
		return rec.NotBeforeRaw
	}
	return rec.NotBeforeRaw + " - " + rec.NotAfterRaw
}

// CertificateLine renders the one-line summary of rec in a removal report.
func CertificateLine(rec *x509record.Record) string {
	action := "      "
	if rec.Marked {
		action = "DELETE"
	}

	return fmt.Sprintf("%3d. %s %-21.21s %s; Issuer <%s>; Subject <%s>",
		rec.Position, action, Banner(rec), Range(rec), rec.IssuerRaw, rec.SubjectRaw)
}

// WriteDelete writes the removal report for one bundle: the summary line
// followed by one line per certificate, or a table when table is set.
func WriteDelete(w io.Writer, s Summary, records []*x509record.Record, table bool) error {
	buf := gc.Default.Get()
	defer func() {
		buf.Reset()
		gc.Default.Put(buf)
	}()

	fmt.Fprintln(buf, s.String())
	if table {
		renderTable(buf, records, true)
	} else {
		for _, rec := range records {
			fmt.Fprintln(buf, CertificateLine(rec))
		}
	}

	_, err := buf.WriteTo(w)
	return err
}

// WriteIgnored writes the notice for a backup file skipped in a multi-file run.
func WriteIgnored(w io.Writer, listing string) error {
	_, err := fmt.Fprintf(w, "######## %s: Ignoring BACKUP File\n", listing)
	return err
}
