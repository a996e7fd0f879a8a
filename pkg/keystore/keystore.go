// Copyright (c) 2026 AirGapSync Authors
//
// This file is part of airgapsync.
//
// airgapsync is licensed under the GNU Affero General Public License v3.0.
// See LICENSE file or visit https://www.gnu.org/licenses/agpl-3.0.html

package keystore

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"time"

	"github.com/airgapsync/airgapsync/pkg/crypto/rand"
	"github.com/airgapsync/airgapsync/pkg/crypto/secure"
	"github.com/airgapsync/airgapsync/pkg/types"
)

// ServiceName is the secure-store service under which all device keys
// are filed. Entries are keyed by device ID within this service.
const ServiceName = "com.airgapsync.keys"

// KeyMetadata describes a stored encryption key. It travels with the
// key material inside the stored envelope and is the authoritative
// record of the key's lifecycle.
type KeyMetadata struct {
	// Algorithm is the symmetric algorithm identifier, for example
	// "aes-256-gcm".
	Algorithm string `json:"algorithm"`

	// CreatedAt is when the key record was first created. It is
	// preserved across rotations.
	CreatedAt time.Time `json:"created_at"`

	// RotatedAt is when the key material was last rotated, or nil if
	// the key has never been rotated.
	RotatedAt *time.Time `json:"rotated_at"`

	// Version starts at 1 and increments by exactly one on each
	// rotation.
	Version uint32 `json:"version"`

	// DeviceID identifies the removable device this key protects.
	DeviceID string `json:"device_id"`
}

// EncryptionKey pairs raw symmetric key material with its metadata.
type EncryptionKey struct {
	Material []byte
	Metadata KeyMetadata
}

// Destroy wipes the key material. The key must not be used afterwards.
func (k *EncryptionKey) Destroy() {
	secure.Wipe(k.Material)
	k.Material = nil
}

// SymmetricAlgorithm resolves the metadata algorithm identifier to a
// typed algorithm, or an error if the identifier is unknown.
func (k *EncryptionKey) SymmetricAlgorithm() (types.SymmetricAlgorithm, error) {
	return types.ParseSymmetricAlgorithm(k.Metadata.Algorithm)
}

// envelope is the serialized form persisted in the secure store: the
// key material as standard base64 alongside its metadata.
type envelope struct {
	Material string      `json:"material"`
	Metadata KeyMetadata `json:"metadata"`
}

// Store is the secure-store abstraction for device encryption keys.
// Implementations must treat device IDs as opaque entry names and must
// never log or otherwise expose key material.
type Store interface {
	// Store persists key material and metadata for a device,
	// overwriting any existing entry.
	Store(deviceID string, material []byte, metadata KeyMetadata) error

	// Get retrieves the key for a device. Returns ErrNotFound if no
	// entry exists.
	Get(deviceID string) (*EncryptionKey, error)

	// Exists reports whether a key entry exists for a device. It never
	// returns an error; backend failures report false.
	Exists(deviceID string) bool

	// Delete removes the key entry for a device. Returns ErrNotFound
	// if no entry exists.
	Delete(deviceID string) error

	// ListDevices enumerates the device IDs that have stored keys.
	ListDevices() ([]string, error)

	// UpdateMetadata replaces the metadata for a device without
	// touching the key material. Returns ErrNotFound if no entry
	// exists.
	UpdateMetadata(deviceID string, metadata KeyMetadata) error

	// Close releases backend resources. Subsequent operations return
	// ErrClosed.
	Close() error
}

// Encode serializes key material and metadata into the stored envelope
// form.
func Encode(material []byte, metadata KeyMetadata) ([]byte, error) {
	env := envelope{
		Material: base64.StdEncoding.EncodeToString(material),
		Metadata: metadata,
	}
	data, err := json.Marshal(env)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
	}
	return data, nil
}

// Decode parses a stored envelope back into key material and metadata.
func Decode(data []byte) (*EncryptionKey, error) {
	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
	}
	material, err := base64.StdEncoding.DecodeString(env.Material)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
	}
	return &EncryptionKey{
		Material: material,
		Metadata: env.Metadata,
	}, nil
}

// Generate creates fresh key material for a device at version 1. The
// result is not persisted; pass it to Store.Store.
func Generate(algorithm types.SymmetricAlgorithm, deviceID string) (*EncryptionKey, error) {
	if !algorithm.Valid() {
		return nil, types.ErrUnsupportedAlgorithm
	}
	material, err := rand.Bytes(algorithm.KeySize())
	if err != nil {
		return nil, err
	}
	return &EncryptionKey{
		Material: material,
		Metadata: KeyMetadata{
			Algorithm: algorithm.String(),
			CreatedAt: time.Now().UTC(),
			RotatedAt: nil,
			Version:   1,
			DeviceID:  deviceID,
		},
	}, nil
}

// Rotate replaces the key material for a device with fresh random
// bytes, increments the version, records the rotation time, and
// persists the result. The original creation time is preserved. The
// returned key is the new version.
func Rotate(store Store, deviceID string) (*EncryptionKey, error) {
	current, err := store.Get(deviceID)
	if err != nil {
		return nil, err
	}
	defer current.Destroy()

	algorithm, err := current.SymmetricAlgorithm()
	if err != nil {
		return nil, err
	}
	material, err := rand.Bytes(algorithm.KeySize())
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	next := &EncryptionKey{
		Material: material,
		Metadata: KeyMetadata{
			Algorithm: current.Metadata.Algorithm,
			CreatedAt: current.Metadata.CreatedAt,
			RotatedAt: &now,
			Version:   current.Metadata.Version + 1,
			DeviceID:  deviceID,
		},
	}
	if err := store.Store(deviceID, next.Material, next.Metadata); err != nil {
		next.Destroy()
		return nil, err
	}
	return next, nil
}
