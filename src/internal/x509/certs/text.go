// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package x509certs

import (
	"crypto/ecdsa"
	"crypto/rsa"
	"crypto/x509"
	"encoding/hex"
	"fmt"
	"strings"
	"time"

	"github.com/H0llyW00dzZ/x509-bundle-editor/src/internal/helper/gc"
	x509dn "github.com/H0llyW00dzZ/x509-bundle-editor/src/internal/x509/dn"
)

// ReportTimeLayout is the layout of the "Not Before" and "Not After" report lines.
const ReportTimeLayout = "Jan _2 15:04:05 2006 MST"

var gmt = time.FixedZone("GMT", 0)

// Text renders cert in the layout of "openssl x509 -text -noout", limited to
// the header fields: version, serial, signature algorithm, issuer, validity,
// subject and public key algorithm.
func Text(cert *x509.Certificate) []byte {
	buf := gc.Default.Get()
	defer func() {
		buf.Reset()
		gc.Default.Put(buf)
	}()

	fmt.Fprintf(buf, "Certificate:\n")
	fmt.Fprintf(buf, "    Data:\n")
	fmt.Fprintf(buf, "        Version: %d (0x%x)\n", cert.Version, cert.Version-1)
	fmt.Fprintf(buf, "        Serial Number:\n")
	fmt.Fprintf(buf, "            %s\n", serialHex(cert))
	fmt.Fprintf(buf, "        Signature Algorithm: %s\n", cert.SignatureAlgorithm)
	fmt.Fprintf(buf, "        Issuer: %s\n", x509dn.Format(cert.Issuer))
	fmt.Fprintf(buf, "        Validity\n")
	fmt.Fprintf(buf, "            Not Before: %s\n", cert.NotBefore.In(gmt).Format(ReportTimeLayout))
	fmt.Fprintf(buf, "            Not After : %s\n", cert.NotAfter.In(gmt).Format(ReportTimeLayout))
	fmt.Fprintf(buf, "        Subject: %s\n", x509dn.Format(cert.Subject))
	fmt.Fprintf(buf, "        Subject Public Key Info:\n")
	fmt.Fprintf(buf, "            Public Key Algorithm: %s\n", publicKeyDescription(cert))

	return append([]byte(nil), buf.Bytes()...)
}

func serialHex(cert *x509.Certificate) string {
	if cert.SerialNumber == nil {
		return "00"
	}

	raw := cert.SerialNumber.Bytes()
	if len(raw) == 0 {
		return "00"
	}

	parts := make([]string, len(raw))
	for i, b := range raw {
		parts[i] = hex.EncodeToString([]byte{b})
	}
	return strings.Join(parts, ":")
}

func publicKeyDescription(cert *x509.Certificate) string {
	switch key := cert.PublicKey.(type) {
	case *rsa.PublicKey:
		return fmt.Sprintf("%s (%d bit)", cert.PublicKeyAlgorithm, key.Size()*8)
	case *ecdsa.PublicKey:
		return fmt.Sprintf("%s (%d bit)", cert.PublicKeyAlgorithm, key.Curve.Params().BitSize)
	default:
		return cert.PublicKeyAlgorithm.String()
	}
}
