// Copyright (c) 2026 AirGapSync Authors
//
// This file is part of airgapsync.
//
// airgapsync is licensed under the GNU Affero General Public License v3.0.
// See LICENSE file or visit https://www.gnu.org/licenses/agpl-3.0.html

package keys

import "errors"

var (
	// ErrInvalidKeyLength is returned when key material does not match
	// the algorithm's key size.
	ErrInvalidKeyLength = errors.New("keys: invalid key length")

	// ErrInvalidFormat is returned when key bytes fail to parse as the
	// expected encoding (PKCS#8, SPKI, or SEC1).
	ErrInvalidFormat = errors.New("keys: invalid key format")

	// ErrGenerationFailed is returned when the underlying primitive
	// refused to generate a key pair.
	ErrGenerationFailed = errors.New("keys: key generation failed")

	// ErrKeyDerivationFailed is returned when password-based derivation
	// was rejected, including a zero iteration count.
	ErrKeyDerivationFailed = errors.New("keys: key derivation failed")

	// ErrVerificationFailed is returned on signature mismatch. The error
	// does not reveal which internal check failed.
	ErrVerificationFailed = errors.New("keys: signature verification failed")

	// ErrSigningFailed is returned when the signing primitive refused
	// to produce a signature.
	ErrSigningFailed = errors.New("keys: signing failed")

	// ErrKeyDestroyed is returned when an operation is attempted on a
	// key whose material has been wiped.
	ErrKeyDestroyed = errors.New("keys: key has been destroyed")
)
