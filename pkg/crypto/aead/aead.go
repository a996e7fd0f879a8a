// Copyright (c) 2026 AirGapSync Authors
//
// This file is part of airgapsync.
//
// airgapsync is licensed under the GNU Affero General Public License v3.0.
// See LICENSE file or visit https://www.gnu.org/licenses/agpl-3.0.html

// Package aead is the authenticated-encryption engine for the data path.
//
// Ciphertext envelope: nonce || ciphertext || tag, one contiguous byte
// stream with no framing header. The algorithm is determined out of band
// from the key's metadata. Nonces are sampled fresh from the CSPRNG per
// call; with 96-bit nonces the collision birthday bound governs key
// lifetime, which the rotation policy accounts for.
//
// The associated data is authenticated but not encrypted. Decryption
// must be given the same associated data or it fails.
package aead

import (
	"crypto/aes"
	"crypto/cipher"
	"fmt"

	"github.com/airgapsync/airgapsync/pkg/crypto/secure"
	"github.com/airgapsync/airgapsync/pkg/keys"
	"github.com/airgapsync/airgapsync/pkg/types"
	"golang.org/x/crypto/chacha20poly1305"
)

// cipherFor builds the AEAD primitive for the key's algorithm.
// The raw key copy is wiped by the caller.
func cipherFor(algorithm types.SymmetricAlgorithm, raw []byte) (cipher.AEAD, error) {
	switch algorithm {
	case types.AES256GCM:
		block, err := aes.NewCipher(raw)
		if err != nil {
			return nil, err
		}
		return cipher.NewGCM(block)
	case types.ChaCha20Poly1305:
		return chacha20poly1305.New(raw)
	default:
		return nil, fmt.Errorf("%w: %s", types.ErrUnsupportedAlgorithm, algorithm)
	}
}

// Encrypt seals plaintext under the key with the given associated data
// and returns nonce || ciphertext || tag.
func Encrypt(key *keys.SymmetricKey, plaintext, additionalData []byte) ([]byte, error) {
	algorithm := key.Algorithm()

	raw, err := key.Material()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEncryptionFailed, err)
	}
	defer secure.Wipe(raw)

	primitive, err := cipherFor(algorithm, raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEncryptionFailed, err)
	}

	nonce, err := NewNonceSequence(algorithm).Next()
	if err != nil {
		return nil, err
	}

	// Seal appends to the nonce buffer, producing the final envelope in
	// one allocation.
	out := make([]byte, len(nonce), len(nonce)+len(plaintext)+algorithm.TagSize())
	copy(out, nonce)
	return primitive.Seal(out, nonce, plaintext, additionalData), nil
}

// Decrypt opens an envelope produced by Encrypt. The same associated
// data must be supplied. Any failure (truncated input, tag mismatch,
// wrong key, wrong associated data) is reported uniformly as
// ErrDecryptionFailed so the cause is not distinguishable.
func Decrypt(key *keys.SymmetricKey, input, additionalData []byte) ([]byte, error) {
	algorithm := key.Algorithm()

	if len(input) < algorithm.NonceSize()+algorithm.TagSize() {
		return nil, ErrDecryptionFailed
	}
	nonce := input[:algorithm.NonceSize()]
	body := input[algorithm.NonceSize():]

	raw, err := key.Material()
	if err != nil {
		return nil, ErrDecryptionFailed
	}
	defer secure.Wipe(raw)

	primitive, err := cipherFor(algorithm, raw)
	if err != nil {
		return nil, ErrDecryptionFailed
	}

	plaintext, err := primitive.Open(nil, nonce, body, additionalData)
	if err != nil {
		return nil, ErrDecryptionFailed
	}
	return plaintext, nil
}
