// Copyright (c) 2026 AirGapSync Authors
//
// This file is part of airgapsync.
//
// airgapsync is licensed under the GNU Affero General Public License v3.0.
// See LICENSE file or visit https://www.gnu.org/licenses/agpl-3.0.html

// Package config models the airgapsync TOML configuration: the sync
// source, target devices with per-device encryption settings, the
// retention and performance policy, and the security posture.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"github.com/airgapsync/airgapsync/pkg/adapters/audit"
	"github.com/airgapsync/airgapsync/pkg/crypto/kdf"
	"github.com/airgapsync/airgapsync/pkg/types"
)

// Config is the root of the TOML document.
type Config struct {
	General       General        `toml:"general" json:"general"`
	Source        Source         `toml:"source" json:"source"`
	Devices       []Device       `toml:"devices" json:"devices"`
	Policy        Policy         `toml:"policy" json:"policy"`
	Security      Security       `toml:"security" json:"security"`
	Schedule      *Schedule      `toml:"schedule,omitempty" json:"schedule,omitempty"`
	Notifications *Notifications `toml:"notifications,omitempty" json:"notifications,omitempty"`
	Advanced      *Advanced      `toml:"advanced,omitempty" json:"advanced,omitempty"`
}

// General holds process-level settings.
type General struct {
	Verbose bool   `toml:"verbose" json:"verbose"`
	LogFile string `toml:"log_file,omitempty" json:"log_file,omitempty"`
	Threads int    `toml:"threads" json:"threads"`
}

// Source describes the directory tree to synchronize.
type Source struct {
	Path            string   `toml:"path" json:"path"`
	ExcludePatterns []string `toml:"exclude_patterns,omitempty" json:"exclude_patterns,omitempty"`
	FollowSymlinks  bool     `toml:"follow_symlinks" json:"follow_symlinks"`
	IncludeHidden   bool     `toml:"include_hidden" json:"include_hidden"`
}

// Device is one removable sync target.
type Device struct {
	ID         string     `toml:"id" json:"id"`
	Name       string     `toml:"name" json:"name"`
	MountPoint string     `toml:"mount_point" json:"mount_point"`
	Encryption Encryption `toml:"encryption" json:"encryption"`
}

// Encryption selects the cipher and key derivation for a device.
type Encryption struct {
	Algorithm  string `toml:"algorithm" json:"algorithm"`
	KDF        string `toml:"kdf" json:"kdf"`
	Iterations uint32 `toml:"iterations" json:"iterations"`
}

// Policy governs retention and transfer performance.
type Policy struct {
	RetainSnapshots  int  `toml:"retain_snapshots" json:"retain_snapshots"`
	RetainDays       int  `toml:"retain_days" json:"retain_days"`
	GCIntervalHours  int  `toml:"gc_interval_hours" json:"gc_interval_hours"`
	VerifyAfterWrite bool `toml:"verify_after_write" json:"verify_after_write"`
	CompressionLevel int  `toml:"compression_level" json:"compression_level"`
	ChunkSizeMB      int  `toml:"chunk_size_mb" json:"chunk_size_mb"`
	ParallelFiles    int  `toml:"parallel_files" json:"parallel_files"`
	BufferSizeKB     int  `toml:"buffer_size_kb" json:"buffer_size_kb"`
}

// Security governs the key lifecycle and audit posture.
type Security struct {
	KeyRotationDays       int    `toml:"key_rotation_days" json:"key_rotation_days"`
	RequireAuthentication bool   `toml:"require_authentication" json:"require_authentication"`
	AuditLevel            string `toml:"audit_level" json:"audit_level"`
	AuditRetentionDays    int    `toml:"audit_retention_days" json:"audit_retention_days"`
}

// Schedule optionally runs syncs on a timer.
type Schedule struct {
	Enabled       bool   `toml:"enabled" json:"enabled"`
	IntervalHours int    `toml:"interval_hours" json:"interval_hours"`
	OnMount       bool   `toml:"on_mount" json:"on_mount"`
	QuietStart    string `toml:"quiet_start,omitempty" json:"quiet_start,omitempty"`
	QuietEnd      string `toml:"quiet_end,omitempty" json:"quiet_end,omitempty"`
}

// Notifications optionally reports sync outcomes.
type Notifications struct {
	Enabled   bool `toml:"enabled" json:"enabled"`
	OnSuccess bool `toml:"on_success" json:"on_success"`
	OnFailure bool `toml:"on_failure" json:"on_failure"`
}

// Advanced holds feature flags that are off by default.
type Advanced struct {
	Flags map[string]bool `toml:"flags,omitempty" json:"flags,omitempty"`
}

// Default returns a configuration with every defaulted field set. The
// device list is empty; callers add devices before validating.
func Default() *Config {
	return &Config{
		General: General{
			Threads: 4,
		},
		Source: Source{
			FollowSymlinks: false,
			IncludeHidden:  false,
		},
		Policy: Policy{
			RetainSnapshots:  7,
			RetainDays:       30,
			GCIntervalHours:  24,
			VerifyAfterWrite: true,
			CompressionLevel: 3,
			ChunkSizeMB:      1,
			ParallelFiles:    4,
			BufferSizeKB:     1024,
		},
		Security: Security{
			KeyRotationDays:       90,
			RequireAuthentication: true,
			AuditLevel:            string(audit.LevelFull),
			AuditRetentionDays:    365,
		},
	}
}

// DefaultEncryption returns the per-device encryption defaults.
func DefaultEncryption() Encryption {
	return Encryption{
		Algorithm:  types.AES256GCM.String(),
		KDF:        string(types.PBKDF2HMACSHA256),
		Iterations: kdf.RecommendedPBKDF2Iterations,
	}
}

// Parse decodes a TOML document over the defaults.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}
	for i := range cfg.Devices {
		applyEncryptionDefaults(&cfg.Devices[i].Encryption)
	}
	return cfg, nil
}

func applyEncryptionDefaults(e *Encryption) {
	defaults := DefaultEncryption()
	if e.Algorithm == "" {
		e.Algorithm = defaults.Algorithm
	}
	if e.KDF == "" {
		e.KDF = defaults.KDF
	}
	if e.Iterations == 0 {
		e.Iterations = defaults.Iterations
	}
}

// Load reads and parses a configuration file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}
	return Parse(data)
}

// Save writes the configuration as TOML, creating parent directories
// as needed.
func (c *Config) Save(path string) error {
	data, err := toml.Marshal(c)
	if err != nil {
		return err
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	return os.WriteFile(path, data, 0o600)
}

// Validate checks the configuration. Checks run in a fixed order and
// the first failure is returned: empty device list, missing source
// path, duplicate device IDs, compression level out of range, zero
// chunk size. Further checks cover algorithm names and the audit
// level.
func (c *Config) Validate() error {
	if len(c.Devices) == 0 {
		return fmt.Errorf("%w: no devices configured", ErrValidation)
	}
	if _, err := os.Stat(c.Source.Path); err != nil {
		return fmt.Errorf("%w: source path does not exist: %s", ErrValidation, c.Source.Path)
	}
	seen := make(map[string]struct{}, len(c.Devices))
	for _, device := range c.Devices {
		if _, dup := seen[device.ID]; dup {
			return fmt.Errorf("%w: duplicate device id: %s", ErrValidation, device.ID)
		}
		seen[device.ID] = struct{}{}
	}
	if c.Policy.CompressionLevel > 9 {
		return fmt.Errorf("%w: compression_level must be 0-9, got %d", ErrValidation, c.Policy.CompressionLevel)
	}
	if c.Policy.ChunkSizeMB <= 0 {
		return fmt.Errorf("%w: chunk_size_mb must be greater than zero", ErrValidation)
	}
	if c.Policy.CompressionLevel < 0 {
		return fmt.Errorf("%w: compression_level must be 0-9, got %d", ErrValidation, c.Policy.CompressionLevel)
	}
	// These counts are unsigned quantities; a negative value can only
	// come from a hand-edited document and is always a mistake.
	counts := []struct {
		name  string
		value int
	}{
		{"retain_snapshots", c.Policy.RetainSnapshots},
		{"retain_days", c.Policy.RetainDays},
		{"gc_interval_hours", c.Policy.GCIntervalHours},
		{"parallel_files", c.Policy.ParallelFiles},
		{"buffer_size_kb", c.Policy.BufferSizeKB},
		{"key_rotation_days", c.Security.KeyRotationDays},
		{"audit_retention_days", c.Security.AuditRetentionDays},
		{"threads", c.General.Threads},
	}
	for _, count := range counts {
		if count.value < 0 {
			return fmt.Errorf("%w: %s must not be negative, got %d", ErrValidation, count.name, count.value)
		}
	}
	for _, device := range c.Devices {
		if _, err := types.ParseSymmetricAlgorithm(device.Encryption.Algorithm); err != nil {
			return fmt.Errorf("%w: device %s: unknown algorithm %q", ErrValidation, device.ID, device.Encryption.Algorithm)
		}
		if device.Encryption.Iterations == 0 {
			return fmt.Errorf("%w: device %s: iterations must be at least 1", ErrValidation, device.ID)
		}
	}
	if !audit.Level(c.Security.AuditLevel).Valid() {
		return fmt.Errorf("%w: audit_level must be none, basic, or full, got %q", ErrValidation, c.Security.AuditLevel)
	}
	return nil
}

// Device returns the device with the given ID, or nil.
func (c *Config) Device(id string) *Device {
	for i := range c.Devices {
		if c.Devices[i].ID == id {
			return &c.Devices[i]
		}
	}
	return nil
}
