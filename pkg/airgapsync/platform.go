// Copyright (c) 2026 AirGapSync Authors
//
// This file is part of airgapsync.
//
// airgapsync is licensed under the GNU Affero General Public License v3.0.
// See LICENSE file or visit https://www.gnu.org/licenses/agpl-3.0.html

package airgapsync

import (
	"strconv"
	"strings"
)

// minDarwinProductVersion is the oldest macOS release with the Keychain
// and APFS behavior the sync engine relies on (Catalina).
const minDarwinProductVersion = "10.15"

// darwinVersionAtLeast reports whether a dotted product version string
// such as "14.5" meets the given minimum. Unparseable input reports
// false so callers fail closed.
func darwinVersionAtLeast(version, minimum string) bool {
	have, ok := parseDottedVersion(version)
	if !ok {
		return false
	}
	want, ok := parseDottedVersion(minimum)
	if !ok {
		return false
	}
	for i := 0; i < len(want); i++ {
		h := 0
		if i < len(have) {
			h = have[i]
		}
		if h != want[i] {
			return h > want[i]
		}
	}
	return true
}

func parseDottedVersion(s string) ([]int, bool) {
	parts := strings.Split(strings.TrimSpace(s), ".")
	if len(parts) == 0 {
		return nil, false
	}
	nums := make([]int, 0, len(parts))
	for _, part := range parts {
		n, err := strconv.Atoi(part)
		if err != nil || n < 0 {
			return nil, false
		}
		nums = append(nums, n)
	}
	return nums, true
}
