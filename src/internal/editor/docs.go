// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package editor runs inspection and removal over a list of bundle files.
//
// Files are processed one after another. A failure in one file is logged and
// the run moves on to the next; the run as a whole then reports
// ErrSomeFilesFailed. Removal never touches a file unless at least one, but not
// every, certificate is selected, test mode is off, and the backup path is free
// or may be overwritten.
package editor
