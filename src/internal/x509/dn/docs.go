// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package x509dn parses and formats distinguished names in the one-line
// "C = US, O = Example, CN = Example Root" layout printed by OpenSSL.
//
// Values containing separators are double-quoted, and backslash escapes are
// honoured inside and outside quotes.
package x509dn
