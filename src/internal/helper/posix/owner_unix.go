// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

//go:build unix

package posix

import "golang.org/x/sys/unix"

// Owner returns the numeric user and group owning path. Symbolic links are followed.
func Owner(path string) (uid, gid int, err error) {
	var st unix.Stat_t
	if err := unix.Stat(path, &st); err != nil {
		return -1, -1, err
	}
	return int(st.Uid), int(st.Gid), nil
}
