// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package posix

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetExecutableName(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		expected string
	}{
		{
			name:     "Relative path",
			args:     []string{"./deletecert"},
			expected: "deletecert",
		},
		{
			name:     "Just filename",
			args:     []string{"decodecert"},
			expected: "decodecert",
		},
		{
			name:     "Empty args",
			args:     []string{},
			expected: "fallback",
		},
		{
			name:     "Empty first arg",
			args:     []string{""},
			expected: "fallback",
		},
		{
			name:     "Foreign windows path separators",
			args:     []string{"C:\\windows\\style\\path\\deletecert.exe"},
			expected: "deletecert",
		},
	}

	if runtime.GOOS != "windows" {
		tests = append(tests, struct {
			name     string
			args     []string
			expected string
		}{
			name:     "Unix absolute path",
			args:     []string{"/usr/local/bin/deletecert"},
			expected: "deletecert",
		})
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			origArgs := os.Args
			os.Args = tt.args
			defer func() {
				os.Args = origArgs
			}()

			assert.Equal(t, tt.expected, GetExecutableName("fallback"))
		})
	}
}

func TestDisplayPath(t *testing.T) {
	wd, err := os.Getwd()
	require.NoError(t, err)

	abs := filepath.Join(wd, "bundle.pem")

	tests := []struct {
		name     string
		path     string
		full     bool
		expected string
	}{
		{name: "Relative kept", path: "bundle.pem", full: false, expected: "bundle.pem"},
		{name: "Relative resolved", path: "bundle.pem", full: true, expected: abs},
		{name: "Dot-slash resolved", path: "./bundle.pem", full: true, expected: abs},
		{name: "Absolute kept", path: abs, full: true, expected: abs},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, DisplayPath(tt.path, tt.full))
		})
	}
}
