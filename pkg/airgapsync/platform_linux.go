// Copyright (c) 2026 AirGapSync Authors
//
// This file is part of airgapsync.
//
// airgapsync is licensed under the GNU Affero General Public License v3.0.
// See LICENSE file or visit https://www.gnu.org/licenses/agpl-3.0.html

//go:build linux

package airgapsync

import (
	"fmt"

	"golang.org/x/sys/unix"
)

// checkPlatform confirms the kernel identifies itself. Linux carries no
// single version floor; secure-store availability is checked by the
// keystore package when it opens a backend.
func checkPlatform() error {
	var name unix.Utsname
	if err := unix.Uname(&name); err != nil {
		return fmt.Errorf("airgapsync: platform identification failed: %w", err)
	}
	return nil
}
