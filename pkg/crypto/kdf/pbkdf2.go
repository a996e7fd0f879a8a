// Copyright (c) 2026 AirGapSync Authors
//
// This file is part of airgapsync.
//
// airgapsync is licensed under the GNU Affero General Public License v3.0.
// See LICENSE file or visit https://www.gnu.org/licenses/agpl-3.0.html

package kdf

import (
	"crypto"

	"github.com/airgapsync/airgapsync/pkg/types"
	"golang.org/x/crypto/pbkdf2"
)

// RecommendedPBKDF2Iterations is the default iteration count used by the
// configuration model. Lower counts are accepted (the contract only
// requires iterations >= 1) but weaken the derived key.
const RecommendedPBKDF2Iterations = 100000

// PBKDF2Adapter implements Adapter using PBKDF2 (RFC 2898).
type PBKDF2Adapter struct{}

// NewPBKDF2Adapter creates a new PBKDF2 adapter.
func NewPBKDF2Adapter() *PBKDF2Adapter {
	return &PBKDF2Adapter{}
}

// DeriveKey derives a key using PBKDF2.
func (p *PBKDF2Adapter) DeriveKey(ikm []byte, params *Params) ([]byte, error) {
	if err := p.ValidateParams(params); err != nil {
		return nil, err
	}
	if len(ikm) == 0 {
		return nil, ErrInvalidIKM
	}
	return pbkdf2.Key(ikm, params.Salt, params.Iterations, params.KeyLength, params.Hash.New), nil
}

// Algorithm returns the KDF algorithm.
func (p *PBKDF2Adapter) Algorithm() types.KDFAlgorithm {
	return types.PBKDF2HMACSHA256
}

// ValidateParams validates PBKDF2 parameters.
func (p *PBKDF2Adapter) ValidateParams(params *Params) error {
	if params == nil {
		return ErrInvalidKeyLength
	}
	if params.Algorithm != types.PBKDF2HMACSHA256 {
		return ErrUnsupportedAlgorithm
	}
	if params.KeyLength <= 0 {
		return ErrInvalidKeyLength
	}
	if len(params.Salt) == 0 {
		return ErrInvalidSalt
	}
	if params.Iterations < 1 {
		return ErrInvalidIterations
	}
	if params.Hash == 0 || !params.Hash.Available() {
		return ErrInvalidHash
	}
	return nil
}

// DefaultParams returns PBKDF2 parameters for the given salt and output
// length using the recommended iteration count and SHA-256 PRF.
func DefaultParams(salt []byte, keyLength int) *Params {
	return &Params{
		Algorithm:  types.PBKDF2HMACSHA256,
		Salt:       salt,
		Iterations: RecommendedPBKDF2Iterations,
		KeyLength:  keyLength,
		Hash:       crypto.SHA256,
	}
}
