// Copyright (c) 2026 AirGapSync Authors
//
// This file is part of airgapsync.
//
// airgapsync is licensed under the GNU Affero General Public License v3.0.
// See LICENSE file or visit https://www.gnu.org/licenses/agpl-3.0.html

package keystore

import (
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"
	"sync"

	"github.com/99designs/keyring"
)

// denialPhrases are the access-denial messages the host secure stores
// are known to produce: macOS Keychain (errSecAuthFailed and locked
// keychains), the freedesktop Secret Service, and Windows Credential
// Manager respectively.
var denialPhrases = []string{
	"errsecauthfailed",
	"user interaction is not allowed",
	"access denied",
	"permission denied",
	"not authorized",
	"prompt dismissed",
}

// backendError maps a secure-store failure onto the package sentinels.
// Denial phrasing is backend-specific, so the match is textual; anything
// unrecognized stays ErrBackend.
func backendError(err error) error {
	if errors.Is(err, os.ErrPermission) {
		return fmt.Errorf("%w: %v", ErrAccessDenied, err)
	}
	msg := strings.ToLower(err.Error())
	for _, phrase := range denialPhrases {
		if strings.Contains(msg, phrase) {
			return fmt.Errorf("%w: %v", ErrAccessDenied, err)
		}
	}
	return fmt.Errorf("%w: %v", ErrBackend, err)
}

// KeyringStore persists device keys in the host secure store (macOS
// Keychain, Windows Credential Manager, or the freedesktop Secret
// Service) under the airgapsync service name.
type KeyringStore struct {
	mu     sync.Mutex
	ring   keyring.Keyring
	closed bool
}

var _ Store = (*KeyringStore)(nil)

// OpenKeyring opens the host secure store under ServiceName.
func OpenKeyring() (*KeyringStore, error) {
	return OpenKeyringService(ServiceName)
}

// OpenKeyringService opens the host secure store under a custom
// service name. Used by tests and by installations that need to keep
// several key sets apart.
func OpenKeyringService(service string) (*KeyringStore, error) {
	ring, err := keyring.Open(keyring.Config{
		ServiceName: service,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBackend, err)
	}
	return &KeyringStore{ring: ring}, nil
}

func (s *KeyringStore) Store(deviceID string, material []byte, metadata KeyMetadata) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return ErrClosed
	}
	data, err := Encode(material, metadata)
	if err != nil {
		return err
	}
	item := keyring.Item{
		Key:   deviceID,
		Data:  data,
		Label: fmt.Sprintf("airgapsync key for %s", deviceID),
	}
	if err := s.ring.Set(item); err != nil {
		return backendError(err)
	}
	return nil
}

func (s *KeyringStore) Get(deviceID string) (*EncryptionKey, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil, ErrClosed
	}
	item, err := s.ring.Get(deviceID)
	if err != nil {
		if errors.Is(err, keyring.ErrKeyNotFound) {
			return nil, ErrNotFound
		}
		return nil, backendError(err)
	}
	return Decode(item.Data)
}

func (s *KeyringStore) Exists(deviceID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return false
	}
	_, err := s.ring.Get(deviceID)
	return err == nil
}

func (s *KeyringStore) Delete(deviceID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return ErrClosed
	}
	if err := s.ring.Remove(deviceID); err != nil {
		if errors.Is(err, keyring.ErrKeyNotFound) {
			return ErrNotFound
		}
		return backendError(err)
	}
	return nil
}

func (s *KeyringStore) ListDevices() ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil, ErrClosed
	}
	devices, err := s.ring.Keys()
	if err != nil {
		return nil, backendError(err)
	}
	sort.Strings(devices)
	return devices, nil
}

func (s *KeyringStore) UpdateMetadata(deviceID string, metadata KeyMetadata) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return ErrClosed
	}
	item, err := s.ring.Get(deviceID)
	if err != nil {
		if errors.Is(err, keyring.ErrKeyNotFound) {
			return ErrNotFound
		}
		return backendError(err)
	}
	key, err := Decode(item.Data)
	if err != nil {
		return err
	}
	defer key.Destroy()
	data, err := Encode(key.Material, metadata)
	if err != nil {
		return err
	}
	item.Data = data
	if err := s.ring.Set(item); err != nil {
		return backendError(err)
	}
	return nil
}

func (s *KeyringStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	return nil
}
