// Copyright (c) 2026 AirGapSync Authors
//
// This file is part of airgapsync.
//
// airgapsync is licensed under the GNU Affero General Public License v3.0.
// See LICENSE file or visit https://www.gnu.org/licenses/agpl-3.0.html

package audit

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLevel_Valid(t *testing.T) {
	assert.True(t, LevelNone.Valid())
	assert.True(t, LevelBasic.Valid())
	assert.True(t, LevelFull.Valid())
	assert.False(t, Level("verbose").Valid())
	assert.False(t, Level("").Valid())
}

func TestLevel_ShouldLog(t *testing.T) {
	tests := []struct {
		name     string
		level    Level
		severity Severity
		want     bool
	}{
		{"NoneInfo", LevelNone, SeverityInfo, false},
		{"NoneWarning", LevelNone, SeverityWarning, false},
		{"BasicInfo", LevelBasic, SeverityInfo, false},
		{"BasicNotice", LevelBasic, SeverityNotice, true},
		{"BasicWarning", LevelBasic, SeverityWarning, true},
		{"FullInfo", LevelFull, SeverityInfo, true},
		{"FullWarning", LevelFull, SeverityWarning, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.level.ShouldLog(tt.severity))
		})
	}
}

func TestNewEvent(t *testing.T) {
	event := NewEvent(EventKeyRotate, SeverityNotice, OutcomeSuccess, "usb-01")
	assert.NotEmpty(t, event.ID)
	assert.Equal(t, EventKeyRotate, event.Type)
	assert.Equal(t, OutcomeSuccess, event.Outcome)
	assert.Equal(t, "usb-01", event.DeviceID)
	assert.False(t, event.Timestamp.IsZero())

	other := NewEvent(EventKeyRotate, SeverityNotice, OutcomeSuccess, "usb-01")
	assert.NotEqual(t, event.ID, other.ID, "event IDs must be unique")
}

func TestMemoryLogger(t *testing.T) {
	sink := NewMemoryLogger()
	sink.Log(NewEvent(EventEncrypt, SeverityInfo, OutcomeSuccess, "usb-01"))
	sink.Log(NewEvent(EventDecrypt, SeverityInfo, OutcomeFailure, "usb-01"))

	events := sink.Events()
	require.Len(t, events, 2)
	assert.Equal(t, EventEncrypt, events[0].Type)
	assert.Equal(t, EventDecrypt, events[1].Type)

	sink.Reset()
	assert.Empty(t, sink.Events())
}

func TestFiltered(t *testing.T) {
	sink := NewMemoryLogger()
	filtered := Filtered(sink, LevelBasic)

	filtered.Log(NewEvent(EventKeyGet, SeverityInfo, OutcomeSuccess, "usb-01"))
	filtered.Log(NewEvent(EventKeyRotate, SeverityNotice, OutcomeSuccess, "usb-01"))

	events := sink.Events()
	require.Len(t, events, 1)
	assert.Equal(t, EventKeyRotate, events[0].Type)
}
