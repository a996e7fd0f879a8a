// Copyright (c) 2026 AirGapSync Authors
//
// This file is part of airgapsync.
//
// airgapsync is licensed under the GNU Affero General Public License v3.0.
// See LICENSE file or visit https://www.gnu.org/licenses/agpl-3.0.html

package kdf

import (
	"github.com/airgapsync/airgapsync/pkg/types"
	"golang.org/x/crypto/argon2"
)

// Argon2id cost defaults follow the RFC 9106 second recommended option,
// suitable for memory-constrained environments.
const (
	DefaultArgon2Memory  uint32 = 64 * 1024 // 64 MiB in KiB
	DefaultArgon2Time    uint32 = 1
	DefaultArgon2Threads uint8  = 4
)

// Argon2idAdapter implements Adapter using Argon2id (RFC 9106).
type Argon2idAdapter struct{}

// NewArgon2idAdapter creates a new Argon2id adapter.
func NewArgon2idAdapter() *Argon2idAdapter {
	return &Argon2idAdapter{}
}

// DeriveKey derives a key using Argon2id. Zero cost parameters fall back
// to the package defaults.
func (a *Argon2idAdapter) DeriveKey(ikm []byte, params *Params) ([]byte, error) {
	if err := a.ValidateParams(params); err != nil {
		return nil, err
	}
	if len(ikm) == 0 {
		return nil, ErrInvalidIKM
	}

	memory := params.Memory
	if memory == 0 {
		memory = DefaultArgon2Memory
	}
	time := params.Time
	if time == 0 {
		time = DefaultArgon2Time
	}
	threads := params.Threads
	if threads == 0 {
		threads = DefaultArgon2Threads
	}

	// #nosec G115 - KeyLength is validated positive and bounded by callers
	return argon2.IDKey(ikm, params.Salt, time, memory, threads, uint32(params.KeyLength)), nil
}

// Algorithm returns the KDF algorithm.
func (a *Argon2idAdapter) Algorithm() types.KDFAlgorithm {
	return types.Argon2id
}

// ValidateParams validates Argon2id parameters.
func (a *Argon2idAdapter) ValidateParams(params *Params) error {
	if params == nil {
		return ErrInvalidKeyLength
	}
	if params.Algorithm != types.Argon2id {
		return ErrUnsupportedAlgorithm
	}
	if params.KeyLength <= 0 {
		return ErrInvalidKeyLength
	}
	if len(params.Salt) == 0 {
		return ErrInvalidSalt
	}
	return nil
}
