// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// decodecert displays the certificates stored in PEM bundles.
//
// # Installation
//
// Install with Go 1.25.5 or later:
//
//	go install github.com/H0llyW00dzZ/x509-bundle-editor/cmd/decodecert@latest
//
// # Usage
//
//	decodecert [FLAGS] FILE...
//
// # Flags
//
//	-d, --debug    Print the parsed validity bounds of each certificate
//	-p, --path     Display the full pathname of each file
//	-v, --verbose  Print the full decoder report of each certificate
//	    --table    Display certificates as markdown table
//	    --config   Configuration file (.json, .yaml, .yml)
//	    --engine   Certificate decoder: "native" or "openssl"
//
// # Examples
//
// Show issuer, validity and subject of a system bundle:
//
//	decodecert /etc/ssl/certs/ca-certificates.crt
//
// Use openssl as the decoder:
//
//	decodecert --engine openssl -v ca.pem
package main
