// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package report renders human-readable output for bundle inspection and
// certificate removal runs.
//
// Reports only observe records and removal masks; nothing here changes them.
// Two layouts are available: line-oriented text that mirrors the classic
// decodeCert and deleteCert output, and a markdown table.
package report
