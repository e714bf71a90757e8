// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package x509certs

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/H0llyW00dzZ/x509-bundle-editor/src/internal/helper/gc"
)

var (
	// ErrDecoderFailed indicates that the external decoder exited abnormally.
	ErrDecoderFailed = errors.New("x509certs: decoder failed")

	// ErrEmptyReport indicates that the external decoder produced no output.
	ErrEmptyReport = errors.New("x509certs: decoder produced no output")
)

// DefaultOpenSSLPath is the openssl binary looked up in PATH when none is configured.
const DefaultOpenSSLPath = "openssl"

// OpenSSL decodes certificates by running "openssl x509 -text -noout".
//
// Each call writes the certificate to its own temporary file, named after the
// process id, and removes it before returning whatever the outcome.
type OpenSSL struct {
	// Path is the openssl binary.
	Path string
	// TempDir holds the temporary certificate files; empty means os.TempDir.
	TempDir string
}

// NewOpenSSL returns an OpenSSL decoder. An empty path selects DefaultOpenSSLPath.
func NewOpenSSL(path, tempDir string) *OpenSSL {
	if path == "" {
		path = DefaultOpenSSLPath
	}
	return &OpenSSL{Path: path, TempDir: tempDir}
}

// DecodeText runs openssl against block and returns its report.
//
// Returns:
//   - []byte: Report printed by openssl
//   - error: ErrDecoderFailed on a non-zero exit or start failure, ErrEmptyReport on
//     empty output, or an I/O error from the temporary file
func (o *OpenSSL) DecodeText(ctx context.Context, block []byte) ([]byte, error) {
	tmp, err := os.CreateTemp(o.TempDir, fmt.Sprintf("x509-bundle-editor-%d-*.pem", os.Getpid()))
	if err != nil {
		return nil, fmt.Errorf("x509certs: create temporary file: %w", err)
	}
	name := tmp.Name()
	defer os.Remove(name)

	if _, err := tmp.Write(block); err != nil {
		tmp.Close()
		return nil, fmt.Errorf("x509certs: write temporary file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return nil, fmt.Errorf("x509certs: close temporary file: %w", err)
	}

	out := gc.Default.Get()
	defer func() {
		out.Reset()
		gc.Default.Put(out)
	}()

	var stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, o.Path, "x509", "-in", name, "-text", "-noout")
	cmd.Stdout = out
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return nil, fmt.Errorf("%w: %v: %s", ErrDecoderFailed, err, msg)
		}
		return nil, fmt.Errorf("%w: %v", ErrDecoderFailed, err)
	}
	if len(bytes.TrimSpace(out.Bytes())) == 0 {
		return nil, ErrEmptyReport
	}

	return append([]byte(nil), out.Bytes()...), nil
}
