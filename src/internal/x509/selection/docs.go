// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package x509selection marks certificate records for removal.
//
// Criteria are evaluated per record in a fixed order: position, issuer, subject,
// then the expired annotation. The first criterion that matches marks the record
// and later criteria are not consulted, so a record is counted at most once.
// Issuer and subject strings match the organization or the common name of the
// corresponding distinguished name, compared with Unicode case folding.
//
// Records that failed to decode can only be selected by position.
package x509selection
