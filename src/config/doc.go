// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package config loads the settings shared by decodecert and deletecert.
//
// Settings come from a JSON or YAML file, chosen by extension (.json, .yaml,
// .yml). The file path is given explicitly or through the X509_BUNDLE_CONFIG
// environment variable; without a file every setting keeps its default.
//
// Example configuration (YAML):
//
//	decoder:
//	  engine: openssl
//	  opensslPath: /usr/local/bin/openssl
//	  tempDir: /var/tmp
//	backup:
//	  suffix: -BACKUP
//	report:
//	  format: table
//	log:
//	  format: json
package config
