// Copyright (c) 2026 AirGapSync Authors
//
// This file is part of airgapsync.
//
// airgapsync is licensed under the GNU Affero General Public License v3.0.
// See LICENSE file or visit https://www.gnu.org/licenses/agpl-3.0.html

// Package kdf provides key derivation adapters for stretching passwords
// into symmetric key material.
//
// PBKDF2-HMAC-SHA256 is the implemented default; Argon2id is available
// for deployments that prefer a memory-hard function. Derivation is
// deterministic: identical (password, salt, parameters) always yield
// byte-identical output.
package kdf

import (
	"crypto"
	_ "crypto/sha256" // register SHA-256 for crypto.Hash.New
	"errors"

	"github.com/airgapsync/airgapsync/pkg/types"
)

// Params contains parameters for a key derivation operation.
type Params struct {
	// Algorithm selects the KDF.
	Algorithm types.KDFAlgorithm

	// Salt is the derivation salt. It should be random and unique per
	// derived key; rand.Salt produces a suitable value.
	Salt []byte

	// Iterations is the PBKDF2 iteration count. Must be at least 1.
	Iterations int

	// Memory is the Argon2id memory cost in KiB.
	Memory uint32

	// Threads is the Argon2id parallelism degree.
	Threads uint8

	// Time is the Argon2id time cost.
	Time uint32

	// KeyLength is the desired output length in bytes.
	KeyLength int

	// Hash is the PRF hash for PBKDF2.
	Hash crypto.Hash
}

// Adapter is the interface implemented by key derivation functions.
type Adapter interface {
	// DeriveKey derives KeyLength bytes from the input key material.
	DeriveKey(ikm []byte, params *Params) ([]byte, error)

	// Algorithm returns the KDF this adapter implements.
	Algorithm() types.KDFAlgorithm

	// ValidateParams checks params for this algorithm.
	ValidateParams(params *Params) error
}

var (
	// ErrInvalidSalt indicates the salt is missing.
	ErrInvalidSalt = errors.New("kdf: invalid salt")

	// ErrInvalidIterations indicates the iteration count is not positive.
	ErrInvalidIterations = errors.New("kdf: invalid iterations")

	// ErrInvalidKeyLength indicates the requested output length is invalid.
	ErrInvalidKeyLength = errors.New("kdf: invalid key length")

	// ErrInvalidHash indicates the hash function is unavailable.
	ErrInvalidHash = errors.New("kdf: invalid or unsupported hash function")

	// ErrInvalidIKM indicates the input key material is empty.
	ErrInvalidIKM = errors.New("kdf: invalid input key material")

	// ErrInvalidMemory indicates the Argon2id memory cost is invalid.
	ErrInvalidMemory = errors.New("kdf: invalid memory cost")

	// ErrUnsupportedAlgorithm indicates the adapter does not implement
	// the requested algorithm.
	ErrUnsupportedAlgorithm = errors.New("kdf: unsupported algorithm")
)

// ForAlgorithm returns the adapter implementing the given KDF.
func ForAlgorithm(algorithm types.KDFAlgorithm) (Adapter, error) {
	switch algorithm {
	case types.PBKDF2HMACSHA256:
		return NewPBKDF2Adapter(), nil
	case types.Argon2id:
		return NewArgon2idAdapter(), nil
	default:
		return nil, ErrUnsupportedAlgorithm
	}
}
