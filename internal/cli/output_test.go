// Copyright (c) 2026 AirGapSync Authors
//
// This file is part of airgapsync.
//
// airgapsync is licensed under the GNU Affero General Public License v3.0.
// See LICENSE file or visit https://www.gnu.org/licenses/agpl-3.0.html

package cli

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/airgapsync/airgapsync/pkg/keystore"
)

func TestPrinter_KeyMetadataText(t *testing.T) {
	var buf bytes.Buffer
	printer := NewPrinter("text", &buf)

	rotated := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	require.NoError(t, printer.PrintKeyMetadata(keystore.KeyMetadata{
		Algorithm: "aes-256-gcm",
		CreatedAt: time.Date(2026, 1, 15, 10, 30, 0, 0, time.UTC),
		RotatedAt: &rotated,
		Version:   2,
		DeviceID:  "usb-01",
	}))

	out := buf.String()
	assert.Contains(t, out, "usb-01")
	assert.Contains(t, out, "aes-256-gcm")
	assert.Contains(t, out, "2026-03-01T12:00:00Z")
}

func TestPrinter_KeyMetadataJSON(t *testing.T) {
	var buf bytes.Buffer
	printer := NewPrinter("json", &buf)

	require.NoError(t, printer.PrintKeyMetadata(keystore.KeyMetadata{
		Algorithm: "aes-256-gcm",
		CreatedAt: time.Date(2026, 1, 15, 10, 30, 0, 0, time.UTC),
		Version:   1,
		DeviceID:  "usb-01",
	}))

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, "usb-01", decoded["device_id"])
	assert.Equal(t, float64(1), decoded["version"])
	assert.Nil(t, decoded["rotated_at"])
}

func TestPrinter_DeviceList(t *testing.T) {
	var buf bytes.Buffer
	printer := NewPrinter("text", &buf)

	require.NoError(t, printer.PrintDeviceList(nil))
	assert.Contains(t, buf.String(), "No device keys")

	buf.Reset()
	require.NoError(t, printer.PrintDeviceList([]string{"usb-01", "usb-02"}))
	assert.Contains(t, buf.String(), "usb-01")
	assert.Contains(t, buf.String(), "usb-02")
}

func TestPrinter_Error(t *testing.T) {
	var buf bytes.Buffer
	printer := NewPrinter("json", &buf)
	require.NoError(t, printer.PrintError(errors.New("boom")))

	var decoded map[string]string
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, "boom", decoded["error"])
}
