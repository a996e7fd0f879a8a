// Copyright (c) 2026 AirGapSync Authors
//
// This file is part of airgapsync.
//
// airgapsync is licensed under the GNU Affero General Public License v3.0.
// See LICENSE file or visit https://www.gnu.org/licenses/agpl-3.0.html

// Package airgapsync is the top-level entry point: process
// initialization, version information, and the composition helpers
// that wire a key manager from a validated configuration.
package airgapsync

import (
	"fmt"
	"sync"

	"github.com/airgapsync/airgapsync/pkg/adapters/audit"
	"github.com/airgapsync/airgapsync/pkg/adapters/logger"
	"github.com/airgapsync/airgapsync/pkg/keystore"
)

// Version is the library version.
const Version = "0.1.0"

var (
	initOnce sync.Once
	initErr  error
)

// Initialize prepares the process for cryptographic operation: it
// installs the default logger and verifies the platform floor. Safe to
// call more than once; later calls return the first result.
func Initialize() error {
	initOnce.Do(func() {
		log := logger.Default().With(logger.String("component", "airgapsync"))
		if err := checkPlatform(); err != nil {
			initErr = err
			log.Error("platform check failed", logger.Err(err))
			return
		}
		log.Debug("initialized", logger.String("version", Version))
	})
	return initErr
}

// Info returns a human-readable description of the library.
func Info() string {
	return fmt.Sprintf("AirGapSync Core v%s - Encrypted sync to removable media", Version)
}

// NewManager opens the host secure store and wraps it in a Manager
// with audit filtering at the given level.
func NewManager(auditLevel audit.Level, sink audit.Logger) (*keystore.Manager, error) {
	if err := Initialize(); err != nil {
		return nil, err
	}
	store, err := keystore.OpenKeyring()
	if err != nil {
		return nil, err
	}
	if sink == nil {
		sink = audit.NoopLogger{}
	}
	return keystore.NewManager(store,
		keystore.WithAudit(audit.Filtered(sink, auditLevel)),
	), nil
}
