// Copyright (c) 2026 AirGapSync Authors
//
// This file is part of airgapsync.
//
// airgapsync is licensed under the GNU Affero General Public License v3.0.
// See LICENSE file or visit https://www.gnu.org/licenses/agpl-3.0.html

package types

import "errors"

var (
	// ErrUnsupportedAlgorithm is returned when an algorithm name is not a
	// member of the catalog. The requested operation fails rather than
	// substituting another algorithm.
	ErrUnsupportedAlgorithm = errors.New("types: unsupported algorithm")
)
