// Copyright (c) 2026 AirGapSync Authors
//
// This file is part of airgapsync.
//
// airgapsync is licensed under the GNU Affero General Public License v3.0.
// See LICENSE file or visit https://www.gnu.org/licenses/agpl-3.0.html

package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/airgapsync/airgapsync/pkg/keystore"
)

// OutputFormat defines the output format type
type OutputFormat string

const (
	OutputFormatText OutputFormat = "text"
	OutputFormatJSON OutputFormat = "json"
)

// Printer handles formatted output
type Printer struct {
	format OutputFormat
	writer io.Writer
}

// NewPrinter creates a new Printer
func NewPrinter(format string, writer io.Writer) *Printer {
	return &Printer{
		format: OutputFormat(format),
		writer: writer,
	}
}

func (p *Printer) printJSON(data interface{}) error {
	encoder := json.NewEncoder(p.writer)
	encoder.SetIndent("", "  ")
	return encoder.Encode(data)
}

// PrintError prints an error
func (p *Printer) PrintError(err error) error {
	switch p.format {
	case OutputFormatJSON:
		return p.printJSON(map[string]interface{}{
			"error": err.Error(),
		})
	default:
		_, werr := fmt.Fprintf(p.writer, "Error: %s\n", err.Error())
		return werr
	}
}

// PrintMessage prints a plain status message
func (p *Printer) PrintMessage(msg string) error {
	switch p.format {
	case OutputFormatJSON:
		return p.printJSON(map[string]interface{}{
			"message": msg,
		})
	default:
		_, err := fmt.Fprintln(p.writer, msg)
		return err
	}
}

// PrintKeyMetadata prints key metadata for a device
func (p *Printer) PrintKeyMetadata(meta keystore.KeyMetadata) error {
	switch p.format {
	case OutputFormatJSON:
		return p.printJSON(meta)
	case OutputFormatText:
		fmt.Fprintf(p.writer, "Device:     %s\n", meta.DeviceID)
		fmt.Fprintf(p.writer, "Algorithm:  %s\n", meta.Algorithm)
		fmt.Fprintf(p.writer, "Version:    %d\n", meta.Version)
		fmt.Fprintf(p.writer, "Created:    %s\n", meta.CreatedAt.Format(time.RFC3339))
		if meta.RotatedAt != nil {
			fmt.Fprintf(p.writer, "Rotated:    %s\n", meta.RotatedAt.Format(time.RFC3339))
		} else {
			fmt.Fprintf(p.writer, "Rotated:    never\n")
		}
		return nil
	default:
		return fmt.Errorf("unknown output format: %s", p.format)
	}
}

// PrintDeviceList prints device IDs that have stored keys
func (p *Printer) PrintDeviceList(devices []string) error {
	switch p.format {
	case OutputFormatJSON:
		return p.printJSON(map[string]interface{}{
			"devices": devices,
		})
	case OutputFormatText:
		if len(devices) == 0 {
			fmt.Fprintln(p.writer, "No device keys stored.")
			return nil
		}
		fmt.Fprintln(p.writer, "Devices with stored keys:")
		for _, d := range devices {
			fmt.Fprintf(p.writer, "  - %s\n", d)
		}
		return nil
	default:
		return fmt.Errorf("unknown output format: %s", p.format)
	}
}
