// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package x509certs

import (
	"context"
	"crypto/x509"
	"encoding/pem"
	"errors"
	"fmt"

	"github.com/cloudflare/cfssl/crypto/pkcs7"
	"github.com/cloudflare/cfssl/helpers"
)

const (
	// EngineNative selects the in-process decoder.
	EngineNative = "native"
	// EngineOpenSSL selects the external openssl decoder.
	EngineOpenSSL = "openssl"
)

var (
	// ErrInvalidBlockType indicates that the PEM block type is not the expected certificate type.
	ErrInvalidBlockType = errors.New("x509certs: invalid block type")

	// ErrParseCertificate indicates a failure to parse the certificate from the provided data.
	ErrParseCertificate = errors.New("x509certs: failed to parse certificate")

	// ErrParsePKCS7 indicates a failure to parse PKCS7 formatted data.
	ErrParsePKCS7 = errors.New("x509certs: failed to parse PKCS7 data")

	// ErrNoCertificatesInPKCS indicates that no certificates were found in the PKCS7 data.
	ErrNoCertificatesInPKCS = errors.New("x509certs: no certificates found in PKCS7 data")

	// ErrUnknownEngine indicates an unsupported decoder engine name.
	ErrUnknownEngine = errors.New("x509certs: unknown decoder engine")
)

// Decoder turns one PEM certificate into a textual report.
//
// Implementations return an error, never a partial report, when the input is
// not a certificate they can decode.
type Decoder interface {
	DecodeText(ctx context.Context, block []byte) ([]byte, error)
}

// NewDecoder returns the decoder for engine.
//
// Parameters:
//   - engine: EngineNative (or empty) or EngineOpenSSL
//   - opensslPath: Path or name of the openssl binary, used by EngineOpenSSL
//   - tempDir: Directory for temporary certificate files, empty for the OS default
//
// Returns:
//   - Decoder: The selected decoder
//   - error: ErrUnknownEngine for any other engine name
func NewDecoder(engine, opensslPath, tempDir string) (Decoder, error) {
	switch engine {
	case "", EngineNative:
		return New(), nil
	case EngineOpenSSL:
		return NewOpenSSL(opensslPath, tempDir), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownEngine, engine)
	}
}

// Certificate provides methods to decode [X.509] certificates in-process.
// It maintains internal configuration such as the certificate block type.
//
// [X.509]: https://en.wikipedia.org/wiki/X.509
type Certificate struct {
	certBlockType string
}

// New creates a new Certificate with default settings.
func New() *Certificate {
	return &Certificate{
		certBlockType: "CERTIFICATE",
	}
}

// IsPEM checks if the data is in PEM format.
func (c *Certificate) IsPEM(data []byte) bool {
	block, _ := pem.Decode(data)
	return block != nil
}

// Decode decodes a single certificate from data.
//
// PEM input must hold exactly one CERTIFICATE block. DER input is parsed as a
// certificate first and as PKCS7 signed data second.
func (c *Certificate) Decode(data []byte) (*x509.Certificate, error) {
	if c.IsPEM(data) {
		block, _ := pem.Decode(data)
		if block.Type != c.certBlockType {
			return nil, ErrInvalidBlockType
		}

		cert, err := helpers.ParseCertificatePEM(data)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrParseCertificate, err)
		}
		return cert, nil
	}

	cert, err := x509.ParseCertificate(data)
	if err == nil {
		return cert, nil
	}

	// Attempt to parse as PKCS7 using Cloudflare's library
	p, err := pkcs7.ParsePKCS7(data)
	if err != nil {
		return nil, ErrParsePKCS7
	}
	if len(p.Content.SignedData.Certificates) == 0 {
		return nil, ErrNoCertificatesInPKCS
	}

	return p.Content.SignedData.Certificates[0], nil
}

// DecodeText decodes block and renders its report.
func (c *Certificate) DecodeText(ctx context.Context, block []byte) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	cert, err := c.Decode(block)
	if err != nil {
		return nil, err
	}

	return Text(cert), nil
}
