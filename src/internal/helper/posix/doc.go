// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package posix provides [POSIX]-compliant helper functions for cross-platform compatibility.
//
// Key functions:
//   - GetExecutableName: Returns the executable name without extension for CLI usage
//   - DisplayPath: Returns the path shown in reports, optionally resolved to a full pathname
//   - Owner: Returns the numeric owner and group of a file (-1 where unsupported)
//   - UserName, GroupName: Resolve numeric ids to account names for listings
//
// # Usage Examples
//
//	rootCmd := &cobra.Command{
//	    Use:   posix.GetExecutableName("deletecert") + " [flags] FILE...",
//	    Short: "Remove certificates from PEM bundles",
//	}
//
// Cross-Platform Behavior:
//
//   - Linux/macOS: "/usr/bin/deletecert" → "deletecert"
//   - Windows: "C:\bin\deletecert.exe" → "deletecert"
//   - Fallback: Empty args → the fallback name given by the caller
//
// [POSIX]: https://grokipedia.com/page/POSIX
package posix
