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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ============================================================================
// Backend error mapping
// ============================================================================

func TestBackendError_PermissionErrno(t *testing.T) {
	mapped := backendError(fmt.Errorf("keyring set: %w", os.ErrPermission))
	require.Error(t, mapped)
	assert.True(t, errors.Is(mapped, ErrAccessDenied))
	assert.False(t, errors.Is(mapped, ErrBackend))
}

func TestBackendError_DenialPhrases(t *testing.T) {
	tests := []struct {
		name    string
		message string
	}{
		{"MacOSAuthFailed", "keychain error: errSecAuthFailed (-25293)"},
		{"MacOSLockedKeychain", "User interaction is not allowed."},
		{"SecretServiceDenied", "org.freedesktop.Secret.Error: access denied"},
		{"FilePermission", "open /root/.keys: permission denied"},
		{"NotAuthorized", "caller is not authorized to access the item"},
		{"PromptDismissed", "prompt dismissed by user"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mapped := backendError(errors.New(tt.message))
			require.Error(t, mapped)
			assert.True(t, errors.Is(mapped, ErrAccessDenied),
				"expected %q to map to ErrAccessDenied", tt.message)
		})
	}
}

func TestBackendError_UnrecognizedStaysBackend(t *testing.T) {
	tests := []struct {
		name    string
		message string
	}{
		{"DBusUnavailable", "failed to connect to session bus"},
		{"CorruptItem", "unexpected end of JSON input"},
		{"Timeout", "operation timed out"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mapped := backendError(errors.New(tt.message))
			require.Error(t, mapped)
			assert.True(t, errors.Is(mapped, ErrBackend))
			assert.False(t, errors.Is(mapped, ErrAccessDenied))
		})
	}
}

func TestBackendError_PreservesCause(t *testing.T) {
	cause := errors.New("errSecAuthFailed")
	mapped := backendError(cause)
	assert.Contains(t, mapped.Error(), "errSecAuthFailed")
	assert.Contains(t, mapped.Error(), ErrAccessDenied.Error())
}
