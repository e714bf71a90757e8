// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package rewrite

// SetRename swaps the rename function and returns a func restoring the original.
func SetRename(f func(oldpath, newpath string) error) (reset func()) {
	prev := rename
	rename = f
	return func() { rename = prev }
}
