// Copyright (c) 2026 AirGapSync Authors
//
// This file is part of airgapsync.
//
// airgapsync is licensed under the GNU Affero General Public License v3.0.
// See LICENSE file or visit https://www.gnu.org/licenses/agpl-3.0.html

package config

import "errors"

var (
	// ErrValidation is the sentinel wrapped by every validation
	// failure.
	ErrValidation = errors.New("config: validation error")

	// ErrParse is returned when the TOML document cannot be decoded.
	ErrParse = errors.New("config: parse error")
)
