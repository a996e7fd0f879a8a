// Copyright (c) 2026 AirGapSync Authors
//
// This file is part of airgapsync.
//
// airgapsync is licensed under the GNU Affero General Public License v3.0.
// See LICENSE file or visit https://www.gnu.org/licenses/agpl-3.0.html

//go:build darwin

package airgapsync

import (
	"fmt"

	"golang.org/x/sys/unix"
)

// checkPlatform enforces the macOS version floor. The Keychain access
// semantics and APFS snapshot support the sync engine depends on
// require Catalina or newer.
func checkPlatform() error {
	version, err := unix.Sysctl("kern.osproductversion")
	if err != nil {
		return fmt.Errorf("airgapsync: platform identification failed: %w", err)
	}
	if !darwinVersionAtLeast(version, minDarwinProductVersion) {
		return fmt.Errorf("airgapsync: macOS %s or newer required, running %s",
			minDarwinProductVersion, version)
	}
	return nil
}
