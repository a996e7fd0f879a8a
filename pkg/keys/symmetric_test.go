// Copyright (c) 2026 AirGapSync Authors
//
// This file is part of airgapsync.
//
// airgapsync is licensed under the GNU Affero General Public License v3.0.
// See LICENSE file or visit https://www.gnu.org/licenses/agpl-3.0.html

package keys

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/airgapsync/airgapsync/pkg/types"
)

func TestGenerateSymmetricKey(t *testing.T) {
	tests := []struct {
		name string
		algo types.SymmetricAlgorithm
	}{
		{"AES256GCM", types.AES256GCM},
		{"ChaCha20Poly1305", types.ChaCha20Poly1305},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			key, err := GenerateSymmetricKey(tt.algo)
			require.NoError(t, err)
			defer key.Destroy()

			assert.Equal(t, tt.algo, key.Algorithm())
			assert.Equal(t, tt.algo.KeySize(), key.Len())

			material, err := key.Material()
			require.NoError(t, err)
			assert.Len(t, material, tt.algo.KeySize())
			assert.NotEqual(t, make([]byte, tt.algo.KeySize()), material)
		})
	}
}

func TestGenerateSymmetricKey_Distinct(t *testing.T) {
	a, err := GenerateSymmetricKey(types.AES256GCM)
	require.NoError(t, err)
	defer a.Destroy()

	b, err := GenerateSymmetricKey(types.AES256GCM)
	require.NoError(t, err)
	defer b.Destroy()

	assert.False(t, a.Equal(b), "independent keys should differ")
}

func TestNewSymmetricKey_LengthValidation(t *testing.T) {
	tests := []struct {
		name    string
		length  int
		wantErr bool
	}{
		{"Correct", 32, false},
		{"Short", 16, true},
		{"Long", 33, true},
		{"Empty", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			key, err := NewSymmetricKey(make([]byte, tt.length), types.AES256GCM)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidKeyLength)
				return
			}
			require.NoError(t, err)
			key.Destroy()
		})
	}
}

func TestNewSymmetricKey_UnknownAlgorithm(t *testing.T) {
	_, err := NewSymmetricKey(make([]byte, 32), types.SymmetricAlgorithm("des"))
	assert.Error(t, err)
}

func TestNewSymmetricKey_OwnsCopy(t *testing.T) {
	material := make([]byte, 32)
	for i := range material {
		material[i] = byte(i)
	}
	key, err := NewSymmetricKey(material, types.AES256GCM)
	require.NoError(t, err)
	defer key.Destroy()

	// Mutating the caller's slice must not affect the key.
	material[0] = 0xff
	got, err := key.Material()
	require.NoError(t, err)
	assert.Equal(t, byte(0), got[0])
}

func TestDeriveSymmetricKey(t *testing.T) {
	salt := []byte("0123456789abcdef0123456789abcdef")

	a, err := DeriveSymmetricKey([]byte("password"), salt, 1000, types.AES256GCM)
	require.NoError(t, err)
	defer a.Destroy()

	b, err := DeriveSymmetricKey([]byte("password"), salt, 1000, types.AES256GCM)
	require.NoError(t, err)
	defer b.Destroy()

	assert.True(t, a.Equal(b), "derivation must be deterministic")

	c, err := DeriveSymmetricKey([]byte("other"), salt, 1000, types.AES256GCM)
	require.NoError(t, err)
	defer c.Destroy()

	assert.False(t, a.Equal(c))
}

func TestDeriveSymmetricKey_ZeroIterations(t *testing.T) {
	salt := []byte("0123456789abcdef0123456789abcdef")
	_, err := DeriveSymmetricKey([]byte("password"), salt, 0, types.AES256GCM)
	assert.Error(t, err)
}

func TestSymmetricKey_Destroy(t *testing.T) {
	key, err := GenerateSymmetricKey(types.AES256GCM)
	require.NoError(t, err)

	key.Destroy()

	_, err = key.Material()
	assert.ErrorIs(t, err, ErrKeyDestroyed)

	// Idempotent.
	key.Destroy()
}

func TestSymmetricKey_DestroyWipesMaterial(t *testing.T) {
	key, err := GenerateSymmetricKey(types.AES256GCM)
	require.NoError(t, err)

	// Keep a handle on the internal buffer through a pre-destroy copy
	// reference check: the internal slice must be zero after Destroy.
	internal := key.material
	key.Destroy()
	assert.Equal(t, make([]byte, len(internal)), internal)
}

func TestSymmetricKey_Duplicate(t *testing.T) {
	key, err := GenerateSymmetricKey(types.ChaCha20Poly1305)
	require.NoError(t, err)
	defer key.Destroy()

	dup, err := key.Duplicate()
	require.NoError(t, err)
	defer dup.Destroy()

	assert.True(t, key.Equal(dup))

	// Destroying the original must not affect the duplicate.
	key.Destroy()
	material, err := dup.Material()
	require.NoError(t, err)
	assert.Len(t, material, 32)
}
