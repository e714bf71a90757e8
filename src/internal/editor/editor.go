// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package editor

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/H0llyW00dzZ/x509-bundle-editor/src/internal/helper/posix"
	"github.com/H0llyW00dzZ/x509-bundle-editor/src/internal/report"
	"github.com/H0llyW00dzZ/x509-bundle-editor/src/internal/rewrite"
	x509certs "github.com/H0llyW00dzZ/x509-bundle-editor/src/internal/x509/certs"
	x509record "github.com/H0llyW00dzZ/x509-bundle-editor/src/internal/x509/record"
	x509selection "github.com/H0llyW00dzZ/x509-bundle-editor/src/internal/x509/selection"
	"github.com/H0llyW00dzZ/x509-bundle-editor/src/logger"
)

// ErrSomeFilesFailed indicates that at least one file of a run could not be processed.
var ErrSomeFilesFailed = errors.New("editor: one or more files failed")

// Options is the operator's configuration for a run, built once from flags.
type Options struct {
	// Debug prints parsed validity timestamps.
	Debug bool
	// FullPath shows relative paths resolved against the working directory.
	FullPath bool
	// Verbose prints the complete decoder report for each certificate.
	Verbose bool
	// Table renders reports as markdown tables.
	Table bool

	// Expired selects certificates whose Not After lies in the past.
	Expired bool
	// Force allows replacing an existing backup.
	Force bool
	// Issuer selects certificates whose issuer O or CN equals this value.
	Issuer string
	// Subject selects certificates whose subject O or CN equals this value.
	Subject string
	// Position selects the certificate at this 1-based position when HasPosition is set.
	Position    int
	HasPosition bool
	// Test reports what would be removed without rewriting.
	Test bool

	// BackupSuffix names backup files, empty for rewrite.DefaultSuffix.
	BackupSuffix string
}

// Criteria returns the selection criteria carried by o.
func (o Options) Criteria() x509selection.Criteria {
	return x509selection.Criteria{
		Position:    o.Position,
		HasPosition: o.HasPosition,
		Issuer:      o.Issuer,
		Subject:     o.Subject,
		Expired:     o.Expired,
	}
}

// Editor processes bundle files with a fixed decoder and options.
type Editor struct {
	Options Options
	// Out receives the reports.
	Out io.Writer
	// Log receives per-file failures and warnings.
	Log logger.Logger

	inspector *x509record.Inspector
}

// New returns an Editor. A nil out discards reports; a nil log writes to stderr.
func New(decoder x509certs.Decoder, opts Options, out io.Writer, log logger.Logger) *Editor {
	if out == nil {
		out = io.Discard
	}
	if log == nil {
		log = logger.NewCLILogger("")
	}

	return &Editor{
		Options:   opts,
		Out:       out,
		Log:       log,
		inspector: &x509record.Inspector{Decoder: decoder},
	}
}

// SetClock replaces the reference time used for validity classification.
func (e *Editor) SetClock(now func() time.Time) { e.inspector.Now = now }

// Decode writes the inspection report of every file in paths.
func (e *Editor) Decode(ctx context.Context, paths []string) error {
	return e.each(ctx, paths, e.DecodeFile)
}

// Delete selects and removes certificates from every file in paths.
//
// When more than one file is given, files named like a backup are reported and
// skipped. Without any selection criterion nothing is removed and a warning is
// logged once.
func (e *Editor) Delete(ctx context.Context, paths []string) error {
	if e.Options.Criteria().Empty() {
		e.Log.Println("no selection given (-e, -i, -s or -n), no certificate will be deleted")
	}
	return e.each(ctx, paths, func(ctx context.Context, path string) error {
		if len(paths) > 1 && rewrite.IsBackup(path, e.Options.BackupSuffix) {
			display := e.display(path)
			return report.WriteIgnored(e.Out, report.Listing(path, display))
		}
		_, err := e.DeleteFile(ctx, path)
		return err
	})
}

func (e *Editor) each(ctx context.Context, paths []string, fn func(context.Context, string) error) error {
	failed := 0
	for _, path := range paths {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := fn(ctx, path); err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return ctxErr
			}
			e.Log.Printf("%v", err)
			failed++
		}
	}

	if failed > 0 {
		return fmt.Errorf("%w: %d of %d", ErrSomeFilesFailed, failed, len(paths))
	}
	return nil
}

func (e *Editor) display(path string) string {
	return posix.DisplayPath(path, e.Options.FullPath)
}

// inspect reads the records of path and logs certificates the decoder rejected.
func (e *Editor) inspect(ctx context.Context, path, display string) ([]*x509record.Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	records, err := e.inspector.Inspect(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", display, err)
	}

	for _, rec := range records {
		if !rec.Decoded() {
			e.Log.Printf("%s: %v", display, rec.DecodeErr)
		}
	}
	return records, nil
}

// DecodeFile writes the inspection report of one file.
func (e *Editor) DecodeFile(ctx context.Context, path string) error {
	display := e.display(path)

	records, err := e.inspect(ctx, path, display)
	if err != nil {
		return err
	}

	return report.WriteDecode(e.Out, display, records, report.DecodeOptions{
		Verbose: e.Options.Verbose,
		Debug:   e.Options.Debug,
		Table:   e.Options.Table,
	})
}

// DeleteFile selects certificates in one file, reports the selection and
// rewrites the file when the outcome allows it.
//
// Returns:
//   - report.Status: What happened to the file
//   - error: Read, decode, report or rewrite failure
func (e *Editor) DeleteFile(ctx context.Context, path string) (report.Status, error) {
	display := e.display(path)

	records, err := e.inspect(ctx, path, display)
	if err != nil {
		return report.StatusNotModified, err
	}

	res := x509selection.Select(records, e.Options.Criteria())
	if e.Options.HasPosition && !res.PositionMatched {
		e.Log.Printf("%s: no certificate %d in file (%d certificates)", display, e.Options.Position, len(records))
	}
	mask := x509selection.MaskOf(records)

	summary := report.Summary{
		Listing:    report.Listing(path, display),
		Path:       display,
		BackupPath: rewrite.BackupPath(display, e.Options.BackupSuffix),
		Total:      len(records),
		Removed:    mask.Count(),
	}

	var plan *rewrite.Plan
	switch {
	case mask.None():
		summary.Status = report.StatusNotModified
	case mask.All():
		summary.Status = report.StatusWholeBundle
	case e.Options.Test:
		summary.Status = report.StatusTestMode
	default:
		plan, err = rewrite.NewPlan(path, e.Options.BackupSuffix, mask, e.Options.Force)
		if err != nil {
			return report.StatusNotModified, err
		}
		switch {
		case !plan.BackupExists():
			summary.Status = report.StatusBackup
		case e.Options.Force:
			summary.Status = report.StatusBackupOverwrite
		default:
			summary.Status = report.StatusBackupExists
		}
	}

	if err := report.WriteDelete(e.Out, summary, records, e.Options.Table); err != nil {
		return summary.Status, err
	}
	if !summary.Status.Rewrites() {
		return summary.Status, nil
	}

	if _, err := plan.Execute(); err != nil {
		return summary.Status, fmt.Errorf("%s: %w", display, err)
	}
	return summary.Status, nil
}
