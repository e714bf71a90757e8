// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package certtest generates throwaway [X.509] certificates for tests.
//
// [X.509]: https://grokipedia.com/page/X.509
package certtest

import (
	"bytes"
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"crypto/x509"
	"crypto/x509/pkix"
	"encoding/pem"
	"math/big"
	"testing"
	"time"
)

// Authority is a self-signed CA used to issue leaf certificates.
type Authority struct {
	cert *x509.Certificate
	key  *ecdsa.PrivateKey
	pem  []byte
}

// NewAuthority creates a CA named name, valid from one year ago until ten years from now.
func NewAuthority(tb testing.TB, name pkix.Name) *Authority {
	tb.Helper()

	key := newKey(tb)
	tmpl := &x509.Certificate{
		SerialNumber:          serial(tb),
		Subject:               name,
		NotBefore:             time.Now().AddDate(-1, 0, 0),
		NotAfter:              time.Now().AddDate(10, 0, 0),
		IsCA:                  true,
		BasicConstraintsValid: true,
		KeyUsage:              x509.KeyUsageCertSign | x509.KeyUsageDigitalSignature,
	}

	der, err := x509.CreateCertificate(rand.Reader, tmpl, tmpl, &key.PublicKey, key)
	if err != nil {
		tb.Fatalf("certtest: create authority: %v", err)
	}
	cert, err := x509.ParseCertificate(der)
	if err != nil {
		tb.Fatalf("certtest: parse authority: %v", err)
	}

	return &Authority{cert: cert, key: key, pem: encode(der)}
}

// PEM returns the authority certificate in PEM form.
func (a *Authority) PEM() []byte { return a.pem }

// Issue signs a leaf certificate for subject with the given validity window.
func (a *Authority) Issue(tb testing.TB, subject pkix.Name, notBefore, notAfter time.Time) []byte {
	tb.Helper()

	key := newKey(tb)
	tmpl := &x509.Certificate{
		SerialNumber: serial(tb),
		Subject:      subject,
		NotBefore:    notBefore,
		NotAfter:     notAfter,
		KeyUsage:     x509.KeyUsageDigitalSignature,
	}

	der, err := x509.CreateCertificate(rand.Reader, tmpl, a.cert, &key.PublicKey, a.key)
	if err != nil {
		tb.Fatalf("certtest: issue certificate: %v", err)
	}
	return encode(der)
}

// SelfSigned returns a self-signed certificate for subject with the given validity window.
func SelfSigned(tb testing.TB, subject pkix.Name, notBefore, notAfter time.Time) []byte {
	tb.Helper()

	key := newKey(tb)
	tmpl := &x509.Certificate{
		SerialNumber: serial(tb),
		Subject:      subject,
		NotBefore:    notBefore,
		NotAfter:     notAfter,
	}

	der, err := x509.CreateCertificate(rand.Reader, tmpl, tmpl, &key.PublicKey, key)
	if err != nil {
		tb.Fatalf("certtest: create self-signed certificate: %v", err)
	}
	return encode(der)
}

// Valid returns a self-signed certificate for subject that is valid now.
func Valid(tb testing.TB, subject pkix.Name) []byte {
	tb.Helper()
	return SelfSigned(tb, subject, time.Now().Add(-time.Hour), time.Now().AddDate(1, 0, 0))
}

// Expired returns a self-signed certificate for subject that expired yesterday.
func Expired(tb testing.TB, subject pkix.Name) []byte {
	tb.Helper()
	return SelfSigned(tb, subject, time.Now().AddDate(-1, 0, 0), time.Now().AddDate(0, 0, -1))
}

// Bundle concatenates PEM certificates with one blank line between them,
// the layout the rewriter produces.
func Bundle(certs ...[]byte) []byte {
	return bytes.Join(certs, []byte("\n"))
}

// Name is a shorthand for a subject with an organization and a common name.
func Name(org, cn string) pkix.Name {
	name := pkix.Name{CommonName: cn}
	if org != "" {
		name.Organization = []string{org}
	}
	return name
}

func newKey(tb testing.TB) *ecdsa.PrivateKey {
	tb.Helper()

	key, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	if err != nil {
		tb.Fatalf("certtest: generate key: %v", err)
	}
	return key
}

func serial(tb testing.TB) *big.Int {
	tb.Helper()

	n, err := rand.Int(rand.Reader, new(big.Int).Lsh(big.NewInt(1), 62))
	if err != nil {
		tb.Fatalf("certtest: serial number: %v", err)
	}
	return n
}

func encode(der []byte) []byte {
	return pem.EncodeToMemory(&pem.Block{Type: "CERTIFICATE", Bytes: der})
}
