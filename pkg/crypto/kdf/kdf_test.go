// Copyright (c) 2026 AirGapSync Authors
//
// This file is part of airgapsync.
//
// airgapsync is licensed under the GNU Affero General Public License v3.0.
// See LICENSE file or visit https://www.gnu.org/licenses/agpl-3.0.html

package kdf

import (
	"crypto"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/airgapsync/airgapsync/pkg/types"
)

// =============================================================================
// PBKDF2 Tests
// =============================================================================

func TestPBKDF2_Deterministic(t *testing.T) {
	adapter := NewPBKDF2Adapter()
	salt := []byte("0123456789abcdef0123456789abcdef")
	params := &Params{
		Algorithm:  types.PBKDF2HMACSHA256,
		Salt:       salt,
		Iterations: 1000,
		KeyLength:  32,
		Hash:       crypto.SHA256,
	}

	a, err := adapter.DeriveKey([]byte("password"), params)
	require.NoError(t, err)
	require.Len(t, a, 32)

	b, err := adapter.DeriveKey([]byte("password"), params)
	require.NoError(t, err)
	assert.Equal(t, a, b, "same inputs must derive identical keys")
}

func TestPBKDF2_InputsChangeOutput(t *testing.T) {
	adapter := NewPBKDF2Adapter()
	base := func() *Params {
		return &Params{
			Algorithm:  types.PBKDF2HMACSHA256,
			Salt:       []byte("0123456789abcdef0123456789abcdef"),
			Iterations: 1000,
			KeyLength:  32,
			Hash:       crypto.SHA256,
		}
	}

	ref, err := adapter.DeriveKey([]byte("password"), base())
	require.NoError(t, err)

	otherPassword, err := adapter.DeriveKey([]byte("passworD"), base())
	require.NoError(t, err)
	assert.NotEqual(t, ref, otherPassword)

	p := base()
	p.Salt = []byte("fedcba9876543210fedcba9876543210")
	otherSalt, err := adapter.DeriveKey([]byte("password"), p)
	require.NoError(t, err)
	assert.NotEqual(t, ref, otherSalt)

	p = base()
	p.Iterations = 1001
	otherIterations, err := adapter.DeriveKey([]byte("password"), p)
	require.NoError(t, err)
	assert.NotEqual(t, ref, otherIterations)
}

func TestPBKDF2_ValidateParams(t *testing.T) {
	adapter := NewPBKDF2Adapter()
	salt := []byte("0123456789abcdef0123456789abcdef")

	tests := []struct {
		name    string
		params  *Params
		wantErr error
	}{
		{
			name:    "NilParams",
			params:  nil,
			wantErr: ErrInvalidKeyLength,
		},
		{
			name: "ZeroIterations",
			params: &Params{
				Algorithm:  types.PBKDF2HMACSHA256,
				Salt:       salt,
				Iterations: 0,
				KeyLength:  32,
				Hash:       crypto.SHA256,
			},
			wantErr: ErrInvalidIterations,
		},
		{
			name: "OneIteration",
			params: &Params{
				Algorithm:  types.PBKDF2HMACSHA256,
				Salt:       salt,
				Iterations: 1,
				KeyLength:  32,
				Hash:       crypto.SHA256,
			},
			wantErr: nil,
		},
		{
			name: "EmptySalt",
			params: &Params{
				Algorithm:  types.PBKDF2HMACSHA256,
				Iterations: 1000,
				KeyLength:  32,
				Hash:       crypto.SHA256,
			},
			wantErr: ErrInvalidSalt,
		},
		{
			name: "ZeroKeyLength",
			params: &Params{
				Algorithm:  types.PBKDF2HMACSHA256,
				Salt:       salt,
				Iterations: 1000,
				Hash:       crypto.SHA256,
			},
			wantErr: ErrInvalidKeyLength,
		},
		{
			name: "WrongAlgorithm",
			params: &Params{
				Algorithm:  types.Argon2id,
				Salt:       salt,
				Iterations: 1000,
				KeyLength:  32,
				Hash:       crypto.SHA256,
			},
			wantErr: ErrUnsupportedAlgorithm,
		},
		{
			name: "MissingHash",
			params: &Params{
				Algorithm:  types.PBKDF2HMACSHA256,
				Salt:       salt,
				Iterations: 1000,
				KeyLength:  32,
			},
			wantErr: ErrInvalidHash,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := adapter.ValidateParams(tt.params)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestPBKDF2_EmptyIKM(t *testing.T) {
	adapter := NewPBKDF2Adapter()
	_, err := adapter.DeriveKey(nil, DefaultParams([]byte("0123456789abcdef0123456789abcdef"), 32))
	assert.ErrorIs(t, err, ErrInvalidIKM)
}

func TestDefaultParams(t *testing.T) {
	params := DefaultParams([]byte("salt-bytes"), 32)
	assert.Equal(t, types.PBKDF2HMACSHA256, params.Algorithm)
	assert.Equal(t, RecommendedPBKDF2Iterations, params.Iterations)
	assert.Equal(t, 32, params.KeyLength)
	assert.Equal(t, crypto.SHA256, params.Hash)
	require.NoError(t, NewPBKDF2Adapter().ValidateParams(params))
}

// =============================================================================
// Argon2id Tests
// =============================================================================

func TestArgon2id_Deterministic(t *testing.T) {
	adapter := NewArgon2idAdapter()
	params := &Params{
		Algorithm: types.Argon2id,
		Salt:      []byte("0123456789abcdef0123456789abcdef"),
		Memory:    8 * 1024,
		Time:      1,
		Threads:   1,
		KeyLength: 32,
	}

	a, err := adapter.DeriveKey([]byte("password"), params)
	require.NoError(t, err)
	require.Len(t, a, 32)

	b, err := adapter.DeriveKey([]byte("password"), params)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

// =============================================================================
// Dispatch Tests
// =============================================================================

func TestForAlgorithm(t *testing.T) {
	pbkdf2Adapter, err := ForAlgorithm(types.PBKDF2HMACSHA256)
	require.NoError(t, err)
	assert.Equal(t, types.PBKDF2HMACSHA256, pbkdf2Adapter.Algorithm())

	argon2Adapter, err := ForAlgorithm(types.Argon2id)
	require.NoError(t, err)
	assert.Equal(t, types.Argon2id, argon2Adapter.Algorithm())

	_, err = ForAlgorithm(types.KDFAlgorithm("scrypt"))
	assert.ErrorIs(t, err, ErrUnsupportedAlgorithm)
}
