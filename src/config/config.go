// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/H0llyW00dzZ/x509-bundle-editor/src/internal/rewrite"
	x509certs "github.com/H0llyW00dzZ/x509-bundle-editor/src/internal/x509/certs"
)

const (
	// EnvConfigFile names the environment variable holding the configuration file path.
	EnvConfigFile = "X509_BUNDLE_CONFIG"
	// EnvOpenSSL names the environment variable overriding the openssl binary.
	EnvOpenSSL = "X509_BUNDLE_OPENSSL"
)

const (
	// ReportText selects the line-oriented report layout.
	ReportText = "text"
	// ReportTable selects the markdown table layout.
	ReportTable = "table"

	// LogText selects plain text diagnostics.
	LogText = "text"
	// LogJSON selects one JSON object per diagnostic line.
	LogJSON = "json"
)

// configFormat represents supported configuration file formats.
type configFormat int

const (
	// configFormatJSON represents JSON configuration format (.json)
	configFormatJSON configFormat = iota
	// configFormatYAML represents YAML configuration format (.yaml, .yml)
	configFormatYAML
)

// Config holds the settings of a run.
type Config struct {
	// Decoder: How certificate blocks are decoded
	Decoder struct {
		// Engine: "native" or "openssl"
		Engine string `json:"engine" yaml:"engine"`
		// OpenSSLPath: Binary used by the openssl engine (can also be set via X509_BUNDLE_OPENSSL env var)
		OpenSSLPath string `json:"opensslPath" yaml:"opensslPath"`
		// TempDir: Directory for temporary certificate files, empty for the OS default
		TempDir string `json:"tempDir,omitempty" yaml:"tempDir,omitempty"`
	} `json:"decoder" yaml:"decoder"`

	// Backup: Naming of backup files
	Backup struct {
		// Suffix: Inserted before the extension of the bundle name
		Suffix string `json:"suffix" yaml:"suffix"`
	} `json:"backup" yaml:"backup"`

	// Report: Output layout
	Report struct {
		// Format: "text" or "table"
		Format string `json:"format" yaml:"format"`
	} `json:"report" yaml:"report"`

	// Log: Diagnostic output
	Log struct {
		// Format: "text" or "json"
		Format string `json:"format" yaml:"format"`
	} `json:"log" yaml:"log"`
}

// Default returns a Config with every setting at its default.
func Default() *Config {
	c := &Config{}
	c.Decoder.Engine = x509certs.EngineNative
	c.Decoder.OpenSSLPath = x509certs.DefaultOpenSSLPath
	c.Backup.Suffix = rewrite.DefaultSuffix
	c.Report.Format = ReportText
	c.Log.Format = LogText
	return c
}

// detectConfigFormat determines the configuration file format based on file extension.
// Extension matching is case-insensitive; anything other than .yaml or .yml is JSON.
func detectConfigFormat(configPath string) configFormat {
	ext := strings.ToLower(filepath.Ext(configPath))
	switch ext {
	case ".yaml", ".yml":
		return configFormatYAML
	default:
		return configFormatJSON
	}
}

// unmarshalConfig unmarshals configuration data based on the specified format.
func unmarshalConfig(data []byte, config *Config, format configFormat) error {
	switch format {
	case configFormatYAML:
		if err := yaml.Unmarshal(data, config); err != nil {
			return fmt.Errorf("failed to parse YAML config file: %w", err)
		}
	default:
		if err := json.Unmarshal(data, config); err != nil {
			return fmt.Errorf("failed to parse JSON config file: %w", err)
		}
	}
	return nil
}

// Load reads the configuration from configPath, or applies defaults.
//
// Parameters:
//   - configPath: Path to the configuration file (optional, can be empty)
//     Supported formats: .json, .yaml, .yml
//
// Returns:
//   - *Config: The loaded configuration with defaults applied
//   - error: An error if the configuration file cannot be read or parsed
//
// Configuration Priority:
//  1. Default values are set
//  2. X509_BUNDLE_CONFIG environment variable is checked if configPath is empty
//  3. Config file values override defaults; invalid values fall back to defaults
//  4. X509_BUNDLE_OPENSSL overrides the openssl binary
func Load(configPath string) (*Config, error) {
	config := Default()

	if configPath == "" {
		configPath = os.Getenv(EnvConfigFile)
	}

	if configPath != "" {
		data, err := os.ReadFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}

		format := detectConfigFormat(configPath)
		if err := unmarshalConfig(data, config, format); err != nil {
			return nil, err
		}

		config.sanitize()
	}

	if path := os.Getenv(EnvOpenSSL); path != "" {
		config.Decoder.OpenSSLPath = path
	}

	return config, nil
}

// sanitize resets invalid values to their defaults.
func (c *Config) sanitize() {
	def := Default()

	switch c.Decoder.Engine {
	case x509certs.EngineNative, x509certs.EngineOpenSSL:
	default:
		c.Decoder.Engine = def.Decoder.Engine
	}
	if c.Decoder.OpenSSLPath == "" {
		c.Decoder.OpenSSLPath = def.Decoder.OpenSSLPath
	}
	if c.Backup.Suffix == "" || strings.ContainsAny(c.Backup.Suffix, `/\`) {
		c.Backup.Suffix = def.Backup.Suffix
	}
	if c.Report.Format != ReportText && c.Report.Format != ReportTable {
		c.Report.Format = def.Report.Format
	}
	if c.Log.Format != LogText && c.Log.Format != LogJSON {
		c.Log.Format = def.Log.Format
	}
}

// NewDecoder returns the certificate decoder selected by c.
func (c *Config) NewDecoder() (x509certs.Decoder, error) {
	return x509certs.NewDecoder(c.Decoder.Engine, c.Decoder.OpenSSLPath, c.Decoder.TempDir)
}
