// Copyright (c) 2026 AirGapSync Authors
//
// This file is part of airgapsync.
//
// airgapsync is licensed under the GNU Affero General Public License v3.0.
// See LICENSE file or visit https://www.gnu.org/licenses/agpl-3.0.html

package keystore

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/airgapsync/airgapsync/pkg/adapters/audit"
	"github.com/airgapsync/airgapsync/pkg/types"
)

func testManager(t *testing.T) (*Manager, *audit.MemoryLogger) {
	t.Helper()
	store := NewMemoryStore()
	t.Cleanup(func() { _ = store.Close() })
	sink := audit.NewMemoryLogger()
	return NewManager(store, WithAudit(sink)), sink
}

func TestManager_Lifecycle(t *testing.T) {
	manager, _ := testManager(t)

	key, err := manager.Generate(types.AES256GCM, "usb-01")
	require.NoError(t, err)
	key.Destroy()

	got, err := manager.Get("usb-01")
	require.NoError(t, err)
	assert.Equal(t, uint32(1), got.Metadata.Version)
	got.Destroy()

	rotated, err := manager.Rotate("usb-01")
	require.NoError(t, err)
	assert.Equal(t, uint32(2), rotated.Metadata.Version)
	rotated.Destroy()

	devices, err := manager.ListDevices()
	require.NoError(t, err)
	assert.Equal(t, []string{"usb-01"}, devices)

	require.NoError(t, manager.Delete("usb-01"))
	_, err = manager.Get("usb-01")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestManager_GenerateRejectsExisting(t *testing.T) {
	manager, _ := testManager(t)

	key, err := manager.Generate(types.AES256GCM, "usb-01")
	require.NoError(t, err)
	key.Destroy()

	_, err = manager.Generate(types.AES256GCM, "usb-01")
	assert.ErrorIs(t, err, ErrExists)
}

func TestManager_AuditEvents(t *testing.T) {
	manager, sink := testManager(t)

	key, err := manager.Generate(types.AES256GCM, "usb-01")
	require.NoError(t, err)
	key.Destroy()

	rotated, err := manager.Rotate("usb-01")
	require.NoError(t, err)
	rotated.Destroy()

	require.NoError(t, manager.Delete("usb-01"))

	events := sink.Events()
	require.Len(t, events, 3)
	assert.Equal(t, audit.EventKeyGenerate, events[0].Type)
	assert.Equal(t, audit.EventKeyRotate, events[1].Type)
	assert.Equal(t, audit.EventKeyDelete, events[2].Type)
	for _, event := range events {
		assert.Equal(t, audit.OutcomeSuccess, event.Outcome)
		assert.Equal(t, "usb-01", event.DeviceID)
		assert.NotEmpty(t, event.ID)
	}
}

func TestManager_AuditFailureOutcome(t *testing.T) {
	manager, sink := testManager(t)

	_, err := manager.Rotate("absent")
	require.Error(t, err)

	events := sink.Events()
	require.Len(t, events, 1)
	assert.Equal(t, audit.EventKeyRotate, events[0].Type)
	assert.Equal(t, audit.OutcomeFailure, events[0].Outcome)
	assert.NotEmpty(t, events[0].Error)
}

func TestManager_AuditLevelFiltering(t *testing.T) {
	store := NewMemoryStore()
	defer func() { _ = store.Close() }()
	sink := audit.NewMemoryLogger()
	manager := NewManager(store, WithAudit(audit.Filtered(sink, audit.LevelBasic)))

	key, err := manager.Generate(types.AES256GCM, "usb-01")
	require.NoError(t, err)
	key.Destroy()

	// Get is informational and filtered out at basic level.
	got, err := manager.Get("usb-01")
	require.NoError(t, err)
	got.Destroy()

	events := sink.Events()
	require.Len(t, events, 1)
	assert.Equal(t, audit.EventKeyGenerate, events[0].Type)
}

func TestManager_NeedsRotation(t *testing.T) {
	manager, _ := testManager(t)

	key, err := manager.Generate(types.AES256GCM, "usb-01")
	require.NoError(t, err)
	key.Destroy()

	fresh, err := manager.NeedsRotation("usb-01", 90)
	require.NoError(t, err)
	assert.False(t, fresh)

	// Age the record past the rotation window.
	got, err := manager.Store().Get("usb-01")
	require.NoError(t, err)
	aged := got.Metadata
	aged.CreatedAt = time.Now().UTC().Add(-91 * 24 * time.Hour)
	got.Destroy()
	require.NoError(t, manager.Store().UpdateMetadata("usb-01", aged))

	stale, err := manager.NeedsRotation("usb-01", 90)
	require.NoError(t, err)
	assert.True(t, stale)

	// Zero interval disables rotation.
	never, err := manager.NeedsRotation("usb-01", 0)
	require.NoError(t, err)
	assert.False(t, never)
}
