// Copyright (c) 2026 AirGapSync Authors
//
// This file is part of airgapsync.
//
// airgapsync is licensed under the GNU Affero General Public License v3.0.
// See LICENSE file or visit https://www.gnu.org/licenses/agpl-3.0.html

package keystore

import (
	"sort"
	"sync"

	"github.com/airgapsync/airgapsync/pkg/crypto/secure"
)

// MemoryStore is an in-memory Store for tests and ephemeral use. It is
// safe for concurrent access. Entries are wiped on delete and close.
type MemoryStore struct {
	mu      sync.RWMutex
	entries map[string][]byte
	closed  bool
}

var _ Store = (*MemoryStore)(nil)

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		entries: make(map[string][]byte),
	}
}

func (s *MemoryStore) Store(deviceID string, material []byte, metadata KeyMetadata) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return ErrClosed
	}
	data, err := Encode(material, metadata)
	if err != nil {
		return err
	}
	if prev, ok := s.entries[deviceID]; ok {
		secure.Wipe(prev)
	}
	s.entries[deviceID] = data
	return nil
}

func (s *MemoryStore) Get(deviceID string) (*EncryptionKey, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed {
		return nil, ErrClosed
	}
	data, ok := s.entries[deviceID]
	if !ok {
		return nil, ErrNotFound
	}
	return Decode(data)
}

func (s *MemoryStore) Exists(deviceID string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed {
		return false
	}
	_, ok := s.entries[deviceID]
	return ok
}

func (s *MemoryStore) Delete(deviceID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return ErrClosed
	}
	data, ok := s.entries[deviceID]
	if !ok {
		return ErrNotFound
	}
	secure.Wipe(data)
	delete(s.entries, deviceID)
	return nil
}

func (s *MemoryStore) ListDevices() ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed {
		return nil, ErrClosed
	}
	devices := make([]string, 0, len(s.entries))
	for deviceID := range s.entries {
		devices = append(devices, deviceID)
	}
	sort.Strings(devices)
	return devices, nil
}

func (s *MemoryStore) UpdateMetadata(deviceID string, metadata KeyMetadata) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return ErrClosed
	}
	data, ok := s.entries[deviceID]
	if !ok {
		return ErrNotFound
	}
	key, err := Decode(data)
	if err != nil {
		return err
	}
	defer key.Destroy()
	next, err := Encode(key.Material, metadata)
	if err != nil {
		return err
	}
	secure.Wipe(data)
	s.entries[deviceID] = next
	return nil
}

func (s *MemoryStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil
	}
	for deviceID, data := range s.entries {
		secure.Wipe(data)
		delete(s.entries, deviceID)
	}
	s.closed = true
	return nil
}
