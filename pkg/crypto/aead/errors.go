// Copyright (c) 2026 AirGapSync Authors
//
// This file is part of airgapsync.
//
// airgapsync is licensed under the GNU Affero General Public License v3.0.
// See LICENSE file or visit https://www.gnu.org/licenses/agpl-3.0.html

package aead

import "errors"

var (
	// ErrEncryptionFailed is returned when the seal operation refused.
	ErrEncryptionFailed = errors.New("aead: encryption failed")

	// ErrDecryptionFailed is returned on any decryption failure: input
	// shorter than nonce+tag, tag mismatch, wrong key, or wrong
	// associated data. The cause is deliberately not distinguished.
	ErrDecryptionFailed = errors.New("aead: decryption failed")

	// ErrNonceExhausted is returned when a sealing context is asked for
	// a second nonce. Each context seals exactly once.
	ErrNonceExhausted = errors.New("aead: nonce sequence exhausted")
)
