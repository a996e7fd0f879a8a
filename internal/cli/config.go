// Copyright (c) 2026 AirGapSync Authors
//
// This file is part of airgapsync.
//
// airgapsync is licensed under the GNU Affero General Public License v3.0.
// See LICENSE file or visit https://www.gnu.org/licenses/agpl-3.0.html

package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/airgapsync/airgapsync/pkg/config"
)

// configCmd represents the config command
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect and validate configuration",
}

// configValidateCmd parses and validates the configuration file
var configValidateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate the configuration file",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		printer := NewPrinter(outputFormat, os.Stdout)

		cfg, err := loadConfig()
		if err != nil {
			handleError(err)
			return
		}
		if err := cfg.Validate(); err != nil {
			handleError(err)
			return
		}
		if err := printer.PrintMessage(fmt.Sprintf("Configuration valid: %d device(s)", len(cfg.Devices))); err != nil {
			handleError(err)
		}
	},
}

// configSchemaCmd emits the JSON schema for the configuration
var configSchemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the configuration JSON schema",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		schema, err := config.Schema()
		if err != nil {
			handleError(err)
			return
		}
		fmt.Println(string(schema))
	},
}

// configExampleCmd prints an annotated example configuration
var configExampleCmd = &cobra.Command{
	Use:   "example",
	Short: "Print an example configuration",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Print(config.ExampleTOML)
	},
}

// configInitCmd writes the example configuration to the default path
var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write an example configuration to the config path",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		printer := NewPrinter(outputFormat, os.Stdout)

		path, err := configPath()
		if err != nil {
			handleError(err)
			return
		}
		if _, err := os.Stat(path); err == nil {
			handleError(fmt.Errorf("config file already exists: %s", path))
			return
		}
		cfg, err := config.Parse([]byte(config.ExampleTOML))
		if err != nil {
			handleError(err)
			return
		}
		if err := cfg.Save(path); err != nil {
			handleError(err)
			return
		}
		if err := printer.PrintMessage(fmt.Sprintf("Wrote %s", path)); err != nil {
			handleError(err)
		}
	},
}

func init() {
	configCmd.AddCommand(configValidateCmd)
	configCmd.AddCommand(configSchemaCmd)
	configCmd.AddCommand(configExampleCmd)
	configCmd.AddCommand(configInitCmd)
}
