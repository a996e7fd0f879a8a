// Copyright (c) 2026 AirGapSync Authors
//
// This file is part of airgapsync.
//
// airgapsync is licensed under the GNU Affero General Public License v3.0.
// See LICENSE file or visit https://www.gnu.org/licenses/agpl-3.0.html

package config

import (
	"encoding/json"

	"github.com/invopop/jsonschema"
)

// Schema returns the JSON-schema document describing the
// configuration shape, for external validators and editors.
func Schema() ([]byte, error) {
	reflector := jsonschema.Reflector{
		ExpandedStruct: true,
	}
	schema := reflector.Reflect(&Config{})
	schema.Title = "AirGapSync Configuration"
	schema.Description = "Configuration for encrypted removable-media synchronization."
	return json.MarshalIndent(schema, "", "  ")
}

// ExampleJSON renders the example configuration as indented JSON, for
// tooling that consumes the schema rather than TOML.
func ExampleJSON() ([]byte, error) {
	cfg, err := Parse([]byte(ExampleTOML))
	if err != nil {
		return nil, err
	}
	return json.MarshalIndent(cfg, "", "  ")
}

// ExampleTOML is a complete annotated configuration that parses and
// validates once the source path exists.
const ExampleTOML = `# AirGapSync configuration

[general]
verbose = false
threads = 4

[source]
path = "/home/user/Documents"
exclude_patterns = ["*.tmp", ".cache/**"]
follow_symlinks = false
include_hidden = false

[[devices]]
id = "usb-backup-01"
name = "Backup Drive"
mount_point = "/media/backup"

[devices.encryption]
algorithm = "aes-256-gcm"
kdf = "PBKDF2-HMAC-SHA256"
iterations = 100000

[policy]
retain_snapshots = 7
retain_days = 30
gc_interval_hours = 24
verify_after_write = true
compression_level = 3
chunk_size_mb = 1
parallel_files = 4
buffer_size_kb = 1024

[security]
key_rotation_days = 90
require_authentication = true
audit_level = "full"
audit_retention_days = 365
`
