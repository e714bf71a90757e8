// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package rewrite

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/natefinch/atomic"

	"github.com/H0llyW00dzZ/x509-bundle-editor/src/internal/helper/gc"
	x509bundle "github.com/H0llyW00dzZ/x509-bundle-editor/src/internal/x509/bundle"
	x509selection "github.com/H0llyW00dzZ/x509-bundle-editor/src/internal/x509/selection"
)

var (
	// ErrPlanConsumed indicates that Execute was called on a plan that already ran.
	ErrPlanConsumed = errors.New("rewrite: plan already executed")

	// ErrNothingToRemove indicates a mask that removes no certificate.
	ErrNothingToRemove = errors.New("rewrite: no certificates selected for removal")

	// ErrWholeBundle indicates a mask that removes every certificate.
	ErrWholeBundle = errors.New("rewrite: refusing to remove every certificate in the bundle")

	// ErrBackupExists indicates that the backup path is taken and overwriting was not allowed.
	ErrBackupExists = errors.New("rewrite: backup file already exists")

	// ErrMaskMismatch indicates that the bundle no longer has as many certificates as the mask.
	ErrMaskMismatch = errors.New("rewrite: certificate count does not match removal mask")

	// ErrMetadata indicates that the swap completed but permissions or ownership could not be applied.
	ErrMetadata = errors.New("rewrite: failed to apply file metadata")

	// ErrNotRegular indicates that the bundle path is not a regular file.
	ErrNotRegular = errors.New("rewrite: not a regular file")

	// ErrSamePath indicates that the backup path equals the bundle path.
	ErrSamePath = errors.New("rewrite: backup path equals bundle path")
)

// rename is replaced in tests to simulate a failing restore.
var rename = os.Rename

// RestoreError reports a failed rewrite whose backup could not be moved back.
// Both files may need manual attention.
type RestoreError struct {
	Path       string
	BackupPath string
	Cause      error
	RestoreErr error
}

func (e *RestoreError) Error() string {
	return fmt.Sprintf("rewrite: %v; restoring %s to %s also failed: %v",
		e.Cause, e.BackupPath, e.Path, e.RestoreErr)
}

// Unwrap returns both the rewrite failure and the restore failure.
func (e *RestoreError) Unwrap() []error { return []error{e.Cause, e.RestoreErr} }

// Plan is a single rewrite of one bundle file.
type Plan struct {
	Path       string
	BackupPath string
	Mask       x509selection.Mask
	Overwrite  bool
	Snapshot   Snapshot

	consumed bool
}

// Result describes a completed rewrite.
type Result struct {
	BackupPath string
	Kept       int
	Removed    int
	// Overwritten is true when an earlier backup was replaced.
	Overwritten bool
}

// NewPlan captures the current permissions and owner of path and builds the
// rewrite plan for mask.
//
// Parameters:
//   - path: Bundle file to edit
//   - suffix: Backup suffix, empty for DefaultSuffix
//   - mask: Removal mask, one entry per certificate in path
//   - overwrite: Whether an existing backup may be replaced
//
// Returns:
//   - *Plan: The plan, ready to execute once
//   - error: A stat error or ErrNotRegular
func NewPlan(path, suffix string, mask x509selection.Mask, overwrite bool) (*Plan, error) {
	snap, err := TakeSnapshot(path)
	if err != nil {
		return nil, fmt.Errorf("rewrite: snapshot %s: %w", path, err)
	}

	return &Plan{
		Path:       path,
		BackupPath: BackupPath(path, suffix),
		Mask:       mask,
		Overwrite:  overwrite,
		Snapshot:   snap,
	}, nil
}

// BackupExists reports whether something already occupies the backup path.
func (p *Plan) BackupExists() bool {
	_, err := os.Lstat(p.BackupPath)
	return err == nil
}

// Execute performs the rewrite. A plan runs at most once.
//
// Nothing on disk changes when Execute returns ErrPlanConsumed,
// ErrNothingToRemove, ErrWholeBundle or ErrBackupExists. Failures after the
// original has been renamed move it back; a *RestoreError is returned when
// that fails too. Errors wrapping ErrMetadata come with a non-nil Result: the
// new bundle is in place but its permissions or owner may differ.
func (p *Plan) Execute() (*Result, error) {
	if p.consumed {
		return nil, ErrPlanConsumed
	}
	p.consumed = true

	switch {
	case p.Mask.None():
		return nil, ErrNothingToRemove
	case p.Mask.All():
		return nil, ErrWholeBundle
	case filepath.Clean(p.Path) == filepath.Clean(p.BackupPath):
		return nil, fmt.Errorf("%w: %s", ErrSamePath, p.Path)
	}

	res := &Result{BackupPath: p.BackupPath}
	if p.BackupExists() {
		if !p.Overwrite {
			return nil, fmt.Errorf("%w: %s", ErrBackupExists, p.BackupPath)
		}
		if err := os.Chmod(p.BackupPath, p.Snapshot.Perm()); err != nil {
			return nil, fmt.Errorf("rewrite: relax permissions of %s: %w", p.BackupPath, err)
		}
		res.Overwritten = true
	}

	if err := rename(p.Path, p.BackupPath); err != nil {
		return nil, fmt.Errorf("rewrite: backup %s: %w", p.Path, err)
	}

	kept, warnings, err := p.swap()
	if err != nil {
		if rerr := rename(p.BackupPath, p.Path); rerr != nil {
			return nil, &RestoreError{Path: p.Path, BackupPath: p.BackupPath, Cause: err, RestoreErr: rerr}
		}
		return nil, err
	}
	res.Kept = kept
	res.Removed = p.Mask.Count()

	if err := os.Chmod(p.BackupPath, p.Snapshot.ReadOnlyPerm()); err != nil {
		warnings = append(warnings, fmt.Errorf("chmod %s: %w", p.BackupPath, err))
	}
	if len(warnings) > 0 {
		return res, fmt.Errorf("%w: %w", ErrMetadata, errors.Join(warnings...))
	}

	return res, nil
}

// swap writes the kept blocks of the backup to the original path. Ownership
// failures are returned as warnings since the new content is already correct.
func (p *Plan) swap() (kept int, warnings []error, err error) {
	in, err := os.Open(p.BackupPath)
	if err != nil {
		return 0, nil, fmt.Errorf("rewrite: open %s: %w", p.BackupPath, err)
	}
	blocks, err := x509bundle.ReadAll(in)
	in.Close()
	if err != nil {
		return 0, nil, fmt.Errorf("rewrite: read %s: %w", p.BackupPath, err)
	}
	if len(blocks) != len(p.Mask) {
		return 0, nil, fmt.Errorf("%w: %s has %d certificates, mask has %d",
			ErrMaskMismatch, p.BackupPath, len(blocks), len(p.Mask))
	}

	buf := gc.Default.Get()
	defer func() {
		buf.Reset()
		gc.Default.Put(buf)
	}()

	kept, err = x509bundle.Join(buf, blocks, func(b x509bundle.Block) bool {
		return !p.Mask.Removes(b.Position)
	})
	if err != nil {
		return 0, nil, err
	}

	warnings, err = p.writeFile(buf)
	return kept, warnings, err
}

// writeFile stages content in a temporary file beside the bundle, applies the
// snapshot to it and renames it onto the bundle path.
func (p *Plan) writeFile(content gc.Buffer) (warnings []error, err error) {
	dir, file := filepath.Split(p.Path)
	if dir == "" {
		dir = "."
	}

	tmp, err := os.CreateTemp(dir, "."+file+".tmp-*")
	if err != nil {
		return nil, fmt.Errorf("rewrite: create %s: %w", p.Path, err)
	}
	defer func() {
		tmp.Close()
		if err != nil {
			_ = os.Remove(tmp.Name())
		}
	}()

	if _, err = content.WriteTo(tmp); err != nil {
		return nil, fmt.Errorf("rewrite: write %s: %w", tmp.Name(), err)
	}
	if err = tmp.Sync(); err != nil {
		return nil, fmt.Errorf("rewrite: flush %s: %w", tmp.Name(), err)
	}
	if err = tmp.Chmod(p.Snapshot.Perm()); err != nil {
		return nil, fmt.Errorf("rewrite: chmod %s: %w", tmp.Name(), err)
	}
	if p.Snapshot.HasOwner() {
		if cerr := tmp.Chown(p.Snapshot.UID, p.Snapshot.GID); cerr != nil {
			warnings = append(warnings, fmt.Errorf("chown %s: %w", p.Path, cerr))
		}
	}
	if err = tmp.Close(); err != nil {
		return nil, fmt.Errorf("rewrite: close %s: %w", tmp.Name(), err)
	}

	if err = atomic.ReplaceFile(tmp.Name(), p.Path); err != nil {
		return nil, fmt.Errorf("rewrite: replace %s: %w", p.Path, err)
	}

	return warnings, nil
}
