// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package rewrite

import (
	"path/filepath"
	"strings"
)

// DefaultSuffix is inserted before the extension of a bundle to name its backup.
const DefaultSuffix = "-BACKUP"

// BackupPath returns the backup file name for path.
//
// The suffix goes before the extension of the final path element, or at the
// end when the element has none:
//
//	certs/ca.pem   -> certs/ca-BACKUP.pem
//	certs/bundle   -> certs/bundle-BACKUP
//	certs/.hidden  -> certs/.hidden-BACKUP
//
// An empty suffix selects DefaultSuffix.
func BackupPath(path, suffix string) string {
	if suffix == "" {
		suffix = DefaultSuffix
	}

	dir, base := filepath.Split(path)
	ext := filepath.Ext(base)
	if ext == "" || ext == base {
		return dir + base + suffix
	}

	return dir + strings.TrimSuffix(base, ext) + suffix + ext
}

// IsBackup reports whether the final element of path looks like a backup made
// with suffix, that is, it contains suffix followed by a dot.
func IsBackup(path, suffix string) bool {
	if suffix == "" {
		suffix = DefaultSuffix
	}
	return strings.Contains(filepath.Base(path), suffix+".")
}
