// Copyright (c) 2026 AirGapSync Authors
//
// This file is part of airgapsync.
//
// airgapsync is licensed under the GNU Affero General Public License v3.0.
// See LICENSE file or visit https://www.gnu.org/licenses/agpl-3.0.html

// Package keys implements the symmetric and asymmetric key objects used
// by the airgapsync data and control paths.
//
// Key objects exclusively own their material. On Destroy the backing
// buffer is overwritten before release; there is no implicit cloning,
// and Duplicate allocates fresh backing memory. Key objects are not safe for
// concurrent use; callers sharing a key across goroutines must provide
// their own synchronization.
package keys

import (
	"crypto"
	"fmt"

	"github.com/airgapsync/airgapsync/pkg/crypto/kdf"
	"github.com/airgapsync/airgapsync/pkg/crypto/rand"
	"github.com/airgapsync/airgapsync/pkg/crypto/secure"
	"github.com/airgapsync/airgapsync/pkg/types"
)

// SymmetricKey holds AEAD key material bound to one algorithm.
type SymmetricKey struct {
	material  []byte
	algorithm types.SymmetricAlgorithm
	destroyed bool
}

// NewSymmetricKey creates a key from existing material. The material
// length must match the algorithm's key size. The key takes ownership
// of a copy; the caller should wipe its own buffer.
func NewSymmetricKey(material []byte, algorithm types.SymmetricAlgorithm) (*SymmetricKey, error) {
	if !algorithm.Valid() {
		return nil, fmt.Errorf("%w: %s", types.ErrUnsupportedAlgorithm, algorithm)
	}
	if len(material) != algorithm.KeySize() {
		return nil, fmt.Errorf("%w: got %d bytes, %s requires %d",
			ErrInvalidKeyLength, len(material), algorithm, algorithm.KeySize())
	}

	data := make([]byte, len(material))
	copy(data, material)
	return &SymmetricKey{material: data, algorithm: algorithm}, nil
}

// GenerateSymmetricKey fills a fresh key from the process random source.
func GenerateSymmetricKey(algorithm types.SymmetricAlgorithm) (*SymmetricKey, error) {
	if !algorithm.Valid() {
		return nil, fmt.Errorf("%w: %s", types.ErrUnsupportedAlgorithm, algorithm)
	}

	material := make([]byte, algorithm.KeySize())
	if err := rand.Fill(material); err != nil {
		return nil, err
	}
	return &SymmetricKey{material: material, algorithm: algorithm}, nil
}

// DeriveSymmetricKey derives a key from a password using
// PBKDF2-HMAC-SHA256. Derivation is deterministic for identical inputs.
// A zero iteration count fails with ErrKeyDerivationFailed.
func DeriveSymmetricKey(password, salt []byte, iterations int, algorithm types.SymmetricAlgorithm) (*SymmetricKey, error) {
	if !algorithm.Valid() {
		return nil, fmt.Errorf("%w: %s", types.ErrUnsupportedAlgorithm, algorithm)
	}

	adapter := kdf.NewPBKDF2Adapter()
	material, err := adapter.DeriveKey(password, &kdf.Params{
		Algorithm:  types.PBKDF2HMACSHA256,
		Salt:       salt,
		Iterations: iterations,
		KeyLength:  algorithm.KeySize(),
		Hash:       crypto.SHA256,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrKeyDerivationFailed, err)
	}
	return &SymmetricKey{material: material, algorithm: algorithm}, nil
}

// Algorithm returns the algorithm this key is bound to.
func (k *SymmetricKey) Algorithm() types.SymmetricAlgorithm {
	return k.algorithm
}

// Len returns the key size in bytes.
func (k *SymmetricKey) Len() int {
	return len(k.material)
}

// Material returns a copy of the raw key bytes. The caller owns the copy
// and should wipe it with secure.Wipe when done.
func (k *SymmetricKey) Material() ([]byte, error) {
	if k.destroyed {
		return nil, ErrKeyDestroyed
	}
	out := make([]byte, len(k.material))
	copy(out, k.material)
	return out, nil
}

// Equal compares two keys' material in constant time.
func (k *SymmetricKey) Equal(other *SymmetricKey) bool {
	if k.destroyed || other == nil || other.destroyed {
		return false
	}
	return k.algorithm == other.algorithm && secure.Compare(k.material, other.material)
}

// Duplicate returns a new key with freshly allocated backing memory.
// This is the only sanctioned way to copy a key.
func (k *SymmetricKey) Duplicate() (*SymmetricKey, error) {
	if k.destroyed {
		return nil, ErrKeyDestroyed
	}
	return NewSymmetricKey(k.material, k.algorithm)
}

// Destroy overwrites the key material. The key is unusable afterwards;
// further operations return ErrKeyDestroyed. Destroy is idempotent.
func (k *SymmetricKey) Destroy() {
	secure.Wipe(k.material)
	k.destroyed = true
}
