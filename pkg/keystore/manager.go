// Copyright (c) 2026 AirGapSync Authors
//
// This file is part of airgapsync.
//
// airgapsync is licensed under the GNU Affero General Public License v3.0.
// See LICENSE file or visit https://www.gnu.org/licenses/agpl-3.0.html

package keystore

import (
	"time"

	"github.com/airgapsync/airgapsync/pkg/adapters/audit"
	"github.com/airgapsync/airgapsync/pkg/adapters/logger"
	"github.com/airgapsync/airgapsync/pkg/metrics"
	"github.com/airgapsync/airgapsync/pkg/types"
)

// Manager runs the key lifecycle over a Store, emitting audit events,
// metrics, and structured logs for every operation.
type Manager struct {
	store Store
	audit audit.Logger
	log   logger.Logger
}

// ManagerOption configures a Manager.
type ManagerOption func(*Manager)

// WithAudit sets the audit sink. Defaults to a no-op logger.
func WithAudit(a audit.Logger) ManagerOption {
	return func(m *Manager) { m.audit = a }
}

// WithLogger sets the structured logger. Defaults to the process
// logger.
func WithLogger(l logger.Logger) ManagerOption {
	return func(m *Manager) { m.log = l }
}

// NewManager wraps a Store with lifecycle orchestration.
func NewManager(store Store, opts ...ManagerOption) *Manager {
	m := &Manager{
		store: store,
		audit: audit.NoopLogger{},
		log:   logger.Default().With(logger.String("component", "keystore")),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Store exposes the underlying store.
func (m *Manager) Store() Store {
	return m.store
}

func (m *Manager) emit(eventType audit.EventType, severity audit.Severity, deviceID string, err error) {
	outcome := audit.OutcomeSuccess
	if err != nil {
		outcome = audit.OutcomeFailure
	}
	event := audit.NewEvent(eventType, severity, outcome, deviceID)
	if err != nil {
		event.Error = err.Error()
	}
	m.audit.Log(event)
}

// Generate creates and persists a fresh version-1 key for a device.
// Fails if a key already exists; rotate instead.
func (m *Manager) Generate(algorithm types.SymmetricAlgorithm, deviceID string) (key *EncryptionKey, err error) {
	start := time.Now()
	defer func() {
		metrics.RecordOperation("key_generate", start, err)
		m.emit(audit.EventKeyGenerate, audit.SeverityNotice, deviceID, err)
	}()

	if m.store.Exists(deviceID) {
		err = ErrExists
		return nil, err
	}
	key, err = Generate(algorithm, deviceID)
	if err != nil {
		return nil, err
	}
	if err = m.store.Store(deviceID, key.Material, key.Metadata); err != nil {
		key.Destroy()
		return nil, err
	}
	m.log.Info("generated device key",
		logger.String("device_id", deviceID),
		logger.String("algorithm", algorithm.String()))
	return key, nil
}

// Get retrieves the current key for a device.
func (m *Manager) Get(deviceID string) (key *EncryptionKey, err error) {
	start := time.Now()
	defer func() {
		metrics.RecordOperation("key_get", start, err)
		m.emit(audit.EventKeyGet, audit.SeverityInfo, deviceID, err)
	}()
	return m.store.Get(deviceID)
}

// Rotate replaces the device key material and bumps the version.
func (m *Manager) Rotate(deviceID string) (key *EncryptionKey, err error) {
	start := time.Now()
	defer func() {
		metrics.RecordOperation("key_rotate", start, err)
		m.emit(audit.EventKeyRotate, audit.SeverityNotice, deviceID, err)
	}()

	key, err = Rotate(m.store, deviceID)
	if err != nil {
		return nil, err
	}
	m.log.Info("rotated device key",
		logger.String("device_id", deviceID),
		logger.Uint32("version", key.Metadata.Version))
	return key, nil
}

// Delete removes the device key from the store.
func (m *Manager) Delete(deviceID string) (err error) {
	start := time.Now()
	defer func() {
		metrics.RecordOperation("key_delete", start, err)
		m.emit(audit.EventKeyDelete, audit.SeverityNotice, deviceID, err)
	}()

	if err = m.store.Delete(deviceID); err != nil {
		return err
	}
	m.log.Info("deleted device key", logger.String("device_id", deviceID))
	return nil
}

// ListDevices enumerates devices with stored keys.
func (m *Manager) ListDevices() (devices []string, err error) {
	start := time.Now()
	defer func() {
		metrics.RecordOperation("key_list", start, err)
		m.emit(audit.EventKeyList, audit.SeverityInfo, "", err)
	}()
	return m.store.ListDevices()
}

// NeedsRotation reports whether the device key is older than the
// rotation interval. The age is measured from the last rotation, or
// from creation for a never-rotated key.
func (m *Manager) NeedsRotation(deviceID string, rotationDays int) (bool, error) {
	key, err := m.store.Get(deviceID)
	if err != nil {
		return false, err
	}
	defer key.Destroy()

	if rotationDays <= 0 {
		return false, nil
	}
	last := key.Metadata.CreatedAt
	if key.Metadata.RotatedAt != nil {
		last = *key.Metadata.RotatedAt
	}
	return time.Since(last) > time.Duration(rotationDays)*24*time.Hour, nil
}
