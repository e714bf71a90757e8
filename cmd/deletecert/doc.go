// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// deletecert removes certificates from PEM bundles.
//
// The original bundle is renamed to a read-only backup (ca.pem becomes
// ca-BACKUP.pem) and the remaining certificates are written to a new file
// with the original permissions and ownership. A bundle from which every
// certificate would be removed is left untouched.
//
// # Installation
//
// Install with Go 1.25.5 or later:
//
//	go install github.com/H0llyW00dzZ/x509-bundle-editor/cmd/deletecert@latest
//
// # Usage
//
//	deletecert [FLAGS] FILE...
//
// # Flags
//
//	-e, --expired  Delete expired certificates
//	-i, --issuer   Delete certificates whose issuer O or CN matches
//	-s, --subject  Delete certificates whose subject O or CN matches
//	-n, --number   Delete certificate N (single file only)
//	-f, --force    Overwrite an existing backup
//	-t, --test     Report only, do not modify any file
//	-d, --debug    Print the parsed validity bounds of each certificate
//	-p, --path     Display the full pathname of each file
//	-v, --verbose  Print the full decoder report of each certificate
//	    --table    Display certificates as markdown table
//	    --config   Configuration file (.json, .yaml, .yml)
//	    --engine   Certificate decoder: "native" or "openssl"
//
// Backups found among multiple FILE arguments are skipped.
//
// # Examples
//
// Preview which expired certificates would go:
//
//	deletecert -t -e /etc/pki/tls/certs/*.pem
//
// Remove the third certificate of a bundle:
//
//	deletecert -n 3 ca.pem
package main
