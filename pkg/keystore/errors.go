// Copyright (c) 2026 AirGapSync Authors
//
// This file is part of airgapsync.
//
// airgapsync is licensed under the GNU Affero General Public License v3.0.
// See LICENSE file or visit https://www.gnu.org/licenses/agpl-3.0.html

package keystore

import "errors"

var (
	// ErrNotFound is returned when no key exists for a device. This is
	// expected control flow for Get after deletion and for first-run
	// provisioning checks.
	ErrNotFound = errors.New("keystore: key not found")

	// ErrAccessDenied is returned when the host secure store refuses
	// access. Not retryable without user action.
	ErrAccessDenied = errors.New("keystore: access denied")

	// ErrBackend is returned for any other secure-store failure.
	ErrBackend = errors.New("keystore: backend error")

	// ErrInvalidFormat is returned when a stored envelope fails to
	// parse or base64-decode.
	ErrInvalidFormat = errors.New("keystore: invalid key format")

	// ErrExists is returned when generating a key for a device that
	// already has one. Callers should rotate instead.
	ErrExists = errors.New("keystore: key already exists")

	// ErrClosed is returned when operations are attempted on a closed
	// store.
	ErrClosed = errors.New("keystore: store is closed")
)
