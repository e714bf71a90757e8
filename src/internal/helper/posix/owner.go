// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package posix

import (
	"os/user"
	"strconv"
)

// UserName returns the login name for uid, or the number itself when the
// account database has no entry. A negative uid yields "-".
func UserName(uid int) string {
	if uid < 0 {
		return "-"
	}

	id := strconv.Itoa(uid)
	if u, err := user.LookupId(id); err == nil {
		return u.Username
	}
	return id
}

// GroupName returns the group name for gid, or the number itself when the
// group database has no entry. A negative gid yields "-".
func GroupName(gid int) string {
	if gid < 0 {
		return "-"
	}

	id := strconv.Itoa(gid)
	if g, err := user.LookupGroupId(id); err == nil {
		return g.Name
	}
	return id
}
