// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package rewrite removes certificates from a bundle file in place.
//
// A rewrite never leaves the original content without a readable copy. The
// original is first renamed to its backup path, the kept certificates are
// written to a temporary file next to it, and the temporary file is renamed
// onto the original path. Any failure between the two renames moves the backup
// back to the original name.
//
// After a successful swap the backup loses its write bits and the new file
// carries the permission bits and ownership the original had before the edit.
//
// Example usage:
//
//	plan, err := rewrite.NewPlan("ca-bundle.pem", rewrite.DefaultSuffix, mask, false)
//	if err != nil {
//		return err
//	}
//	res, err := plan.Execute()
package rewrite
