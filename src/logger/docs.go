// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package logger provides abstraction and implementation for logging operations.
// It defines the Logger interface and provides two implementations: CLILogger for
// human-readable diagnostics prefixed with the program name, and JSONLogger for
// one JSON object per line, suitable for log collectors. Both implementations are
// thread-safe; JSONLogger encodes through pooled buffers.
package logger
