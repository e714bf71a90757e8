// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package x509certs decodes single [X.509] certificates into the textual report
// layout of "openssl x509 -text -noout".
//
// Two decoders are provided. Certificate parses in-process using the standard
// library and [CFSSL] helpers, with a [PKCS7] fallback for DER input. OpenSSL
// runs an external openssl binary against a temporary file that is removed
// after every call. Both satisfy the Decoder interface so callers can swap
// them, and tests can supply their own.
//
// [X.509]: https://grokipedia.com/page/X.509
// [PKCS7]: https://grokipedia.com/page/PKCS_7
// [CFSSL]: https://github.com/cloudflare/cfssl
package x509certs
