// Copyright (c) 2026 AirGapSync Authors
//
// This file is part of airgapsync.
//
// airgapsync is licensed under the GNU Affero General Public License v3.0.
// See LICENSE file or visit https://www.gnu.org/licenses/agpl-3.0.html

package airgapsync

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// ============================================================================
// Version floor comparison
// ============================================================================

func TestDarwinVersionAtLeast(t *testing.T) {
	tests := []struct {
		name    string
		version string
		minimum string
		want    bool
	}{
		{"ExactFloor", "10.15", "10.15", true},
		{"PatchAboveFloor", "10.15.7", "10.15", true},
		{"BelowFloor", "10.14", "10.15", false},
		{"BelowFloorPatch", "10.14.6", "10.15", false},
		{"BigSur", "11.0", "10.15", true},
		{"Sonoma", "14.5", "10.15", true},
		{"SingleComponentAbove", "11", "10.15", true},
		{"SingleComponentBelow", "10", "10.15", false},
		{"TrailingWhitespace", " 13.2 ", "10.15", true},
		{"Empty", "", "10.15", false},
		{"Garbage", "catalina", "10.15", false},
		{"MixedGarbage", "10.x", "10.15", false},
		{"NegativeComponent", "10.-1", "10.15", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := darwinVersionAtLeast(tt.version, tt.minimum)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDarwinVersionAtLeast_BadMinimumFailsClosed(t *testing.T) {
	assert.False(t, darwinVersionAtLeast("14.5", "not-a-version"))
}

func TestMinDarwinProductVersion(t *testing.T) {
	assert.Equal(t, "10.15", minDarwinProductVersion)
}
