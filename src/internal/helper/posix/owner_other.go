// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

//go:build !unix

package posix

// Owner reports -1 for both ids; file ownership is not modeled on this platform.
func Owner(string) (uid, gid int, err error) { return -1, -1, nil }
