// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package rewrite

import (
	"fmt"
	"os"

	"github.com/H0llyW00dzZ/x509-bundle-editor/src/internal/helper/posix"
)

// Snapshot is the permission and ownership state of a file before an edit.
//
// UID and GID are -1 where ownership is not available; such snapshots skip
// the ownership change.
type Snapshot struct {
	Mode os.FileMode
	UID  int
	GID  int
}

// TakeSnapshot records the permission bits and owner of path.
func TakeSnapshot(path string) (Snapshot, error) {
	fi, err := os.Stat(path)
	if err != nil {
		return Snapshot{}, err
	}
	if !fi.Mode().IsRegular() {
		return Snapshot{}, fmt.Errorf("%w: %s", ErrNotRegular, path)
	}

	uid, gid, err := posix.Owner(path)
	if err != nil {
		return Snapshot{}, err
	}

	return Snapshot{Mode: fi.Mode(), UID: uid, GID: gid}, nil
}

// Perm returns the read, write and execute bits for a fresh working copy.
func (s Snapshot) Perm() os.FileMode { return s.Mode.Perm() }

// ReadOnlyPerm returns the bits of s with every write bit cleared.
func (s Snapshot) ReadOnlyPerm() os.FileMode { return s.Mode.Perm() & 0o555 }

// HasOwner reports whether s carries ownership to restore.
func (s Snapshot) HasOwner() bool { return s.UID >= 0 && s.GID >= 0 }
