// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package report

import (
	"fmt"
	"os"

	"github.com/dustin/go-humanize"

	"github.com/H0llyW00dzZ/x509-bundle-editor/src/internal/helper/posix"
)

// ListingTimeLayout formats modification times in file listings.
const ListingTimeLayout = "Jan _2 15:04"

// Listing describes path in the style of "ls -l": mode, owner, group, size,
// modification time and the display name. When path cannot be examined the
// display name is returned alone.
func Listing(path, display string) string {
	fi, err := os.Stat(path)
	if err != nil {
		return display
	}

	owner, group := "-", "-"
	if uid, gid, err := posix.Owner(path); err == nil {
		owner, group = posix.UserName(uid), posix.GroupName(gid)
	}

	return fmt.Sprintf("%s %s %s %s %s %s",
		fi.Mode(),
		owner,
		group,
		humanize.Bytes(uint64(fi.Size())),
		fi.ModTime().Format(ListingTimeLayout),
		display,
	)
}
