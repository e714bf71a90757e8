// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package x509record turns certificate blocks into structured records.
//
// Each block of a bundle is handed to a [x509certs.Decoder], whose textual report
// is scanned for the issuer, subject and validity lines. The validity bounds are
// then compared against the current time to annotate the record as expired or
// not yet valid.
//
// Example usage:
//
//	in := &x509record.Inspector{Decoder: x509certs.New()}
//	records, err := in.Inspect(ctx, file)
//	if err != nil {
//		return err
//	}
//	for _, rec := range records {
//		fmt.Println(rec.Position, rec.Validity, rec.Subject.CommonName)
//	}
package x509record
