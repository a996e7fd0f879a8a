// Copyright (c) 2026 AirGapSync Authors
//
// This file is part of airgapsync.
//
// airgapsync is licensed under the GNU Affero General Public License v3.0.
// See LICENSE file or visit https://www.gnu.org/licenses/agpl-3.0.html

// Package secure provides secret-handling primitives: buffer wiping and
// constant-time comparison.
package secure

import (
	"crypto/subtle"

	"github.com/awnumar/memguard"
)

// Wipe overwrites every byte of b before the buffer is released.
// Key objects call this from their destructors; callers holding raw
// secrets should defer it.
func Wipe(b []byte) {
	if len(b) == 0 {
		return
	}
	memguard.WipeBytes(b)
}

// Compare reports whether a and b are equal without leaking the position
// of the first mismatch. Length is checked first; for equal-length inputs
// the comparison is a full-width XOR accumulate with no early return.
func Compare(a, b []byte) bool {
	if len(a) != len(b) {
		return false
	}
	return subtle.ConstantTimeCompare(a, b) == 1
}
