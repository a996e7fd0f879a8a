// Copyright (c) 2026 AirGapSync Authors
//
// This file is part of airgapsync.
//
// airgapsync is licensed under the GNU Affero General Public License v3.0.
// See LICENSE file or visit https://www.gnu.org/licenses/agpl-3.0.html

// Package types defines the closed algorithm catalog for airgapsync.
//
// Every component reads parameter sizes (key, nonce, tag, hash) from this
// package rather than hard-coding them. Unknown algorithm strings are
// rejected with ErrUnsupportedAlgorithm; there is no fallback substitution.
package types

import (
	"crypto"
	"crypto/elliptic"
	"fmt"
)

// SymmetricAlgorithm identifies an AEAD cipher used on the data path.
// The string form is the kebab-case identifier used in configuration
// files and stored key metadata.
type SymmetricAlgorithm string

const (
	// AES256GCM is AES-256 in Galois/Counter Mode.
	AES256GCM SymmetricAlgorithm = "aes-256-gcm"

	// ChaCha20Poly1305 is the ChaCha20 stream cipher with Poly1305 MAC.
	ChaCha20Poly1305 SymmetricAlgorithm = "chacha20-poly1305"
)

// String returns the kebab-case identifier.
func (a SymmetricAlgorithm) String() string {
	return string(a)
}

// Valid reports whether the algorithm is a member of the catalog.
func (a SymmetricAlgorithm) Valid() bool {
	switch a {
	case AES256GCM, ChaCha20Poly1305:
		return true
	}
	return false
}

// KeySize returns the key size in bytes.
func (a SymmetricAlgorithm) KeySize() int {
	switch a {
	case AES256GCM, ChaCha20Poly1305:
		return 32
	}
	return 0
}

// NonceSize returns the nonce size in bytes.
func (a SymmetricAlgorithm) NonceSize() int {
	switch a {
	case AES256GCM, ChaCha20Poly1305:
		return 12
	}
	return 0
}

// TagSize returns the authentication tag size in bytes.
func (a SymmetricAlgorithm) TagSize() int {
	switch a {
	case AES256GCM, ChaCha20Poly1305:
		return 16
	}
	return 0
}

// ParseSymmetricAlgorithm resolves a kebab-case algorithm name.
// Unknown names return ErrUnsupportedAlgorithm wrapped with the name.
func ParseSymmetricAlgorithm(name string) (SymmetricAlgorithm, error) {
	a := SymmetricAlgorithm(name)
	if !a.Valid() {
		return "", fmt.Errorf("%w: %s", ErrUnsupportedAlgorithm, name)
	}
	return a, nil
}

// AsymmetricAlgorithm identifies a signature / key-agreement algorithm
// used on the control path.
type AsymmetricAlgorithm string

const (
	// RSA2048 is RSA with a 2048-bit modulus, paired with SHA-256.
	RSA2048 AsymmetricAlgorithm = "RSA-2048"

	// RSA4096 is RSA with a 4096-bit modulus, paired with SHA-384.
	RSA4096 AsymmetricAlgorithm = "RSA-4096"

	// ECDSAP256 is ECDSA over NIST P-256, paired with SHA-256.
	ECDSAP256 AsymmetricAlgorithm = "ECDSA-P256"

	// ECDSAP384 is ECDSA over NIST P-384, paired with SHA-384.
	ECDSAP384 AsymmetricAlgorithm = "ECDSA-P384"
)

// String returns the algorithm identifier.
func (a AsymmetricAlgorithm) String() string {
	return string(a)
}

// Valid reports whether the algorithm is a member of the catalog.
func (a AsymmetricAlgorithm) Valid() bool {
	switch a {
	case RSA2048, RSA4096, ECDSAP256, ECDSAP384:
		return true
	}
	return false
}

// IsRSA reports whether this is an RSA algorithm.
func (a AsymmetricAlgorithm) IsRSA() bool {
	return a == RSA2048 || a == RSA4096
}

// IsECDSA reports whether this is an ECDSA algorithm.
func (a AsymmetricAlgorithm) IsECDSA() bool {
	return a == ECDSAP256 || a == ECDSAP384
}

// Hash returns the hash function paired with this algorithm.
// RSA-2048 and ECDSA-P256 pair with SHA-256; RSA-4096 and
// ECDSA-P384 pair with SHA-384.
func (a AsymmetricAlgorithm) Hash() crypto.Hash {
	switch a {
	case RSA2048, ECDSAP256:
		return crypto.SHA256
	case RSA4096, ECDSAP384:
		return crypto.SHA384
	}
	return 0
}

// HashName returns the paired hash identifier ("SHA-256" or "SHA-384").
func (a AsymmetricAlgorithm) HashName() string {
	switch a.Hash() {
	case crypto.SHA256:
		return "SHA-256"
	case crypto.SHA384:
		return "SHA-384"
	}
	return ""
}

// RSABits returns the modulus size for RSA algorithms, 0 otherwise.
func (a AsymmetricAlgorithm) RSABits() int {
	switch a {
	case RSA2048:
		return 2048
	case RSA4096:
		return 4096
	}
	return 0
}

// Curve returns the elliptic curve for ECDSA algorithms, nil otherwise.
func (a AsymmetricAlgorithm) Curve() elliptic.Curve {
	switch a {
	case ECDSAP256:
		return elliptic.P256()
	case ECDSAP384:
		return elliptic.P384()
	}
	return nil
}

// SharedSecretSize returns the ECDH shared-secret size in bytes for
// ECDSA algorithms (32 for P-256, 48 for P-384), 0 otherwise.
func (a AsymmetricAlgorithm) SharedSecretSize() int {
	switch a {
	case ECDSAP256:
		return 32
	case ECDSAP384:
		return 48
	}
	return 0
}

// ParseAsymmetricAlgorithm resolves an asymmetric algorithm name.
// Unknown names return ErrUnsupportedAlgorithm wrapped with the name.
func ParseAsymmetricAlgorithm(name string) (AsymmetricAlgorithm, error) {
	a := AsymmetricAlgorithm(name)
	if !a.Valid() {
		return "", fmt.Errorf("%w: %s", ErrUnsupportedAlgorithm, name)
	}
	return a, nil
}

// KDFAlgorithm identifies a key derivation function.
type KDFAlgorithm string

const (
	// PBKDF2HMACSHA256 is PBKDF2 with HMAC-SHA256 (RFC 2898).
	// This is the implemented default.
	PBKDF2HMACSHA256 KDFAlgorithm = "PBKDF2-HMAC-SHA256"

	// Argon2id is the hybrid Argon2 variant (RFC 9106).
	Argon2id KDFAlgorithm = "Argon2id"
)

// String returns the KDF identifier.
func (a KDFAlgorithm) String() string {
	return string(a)
}

// Valid reports whether the KDF is a member of the catalog.
func (a KDFAlgorithm) Valid() bool {
	switch a {
	case PBKDF2HMACSHA256, Argon2id:
		return true
	}
	return false
}
