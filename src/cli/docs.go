// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package cli provides the command-line interfaces of decodecert and deletecert.
// It builds Cobra commands that parse flags into an explicit editor.Options value,
// load the optional configuration file, select the certificate decoder and hand
// the file list to the editor. Usage errors abort before any file is touched;
// per-file failures are logged and reported as a single error at the end.
package cli
