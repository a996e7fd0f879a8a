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
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/airgapsync/airgapsync/pkg/airgapsync"
	"github.com/airgapsync/airgapsync/pkg/config"
)

// Global CLI state, populated by persistent flags.
var (
	configFile   string
	serviceName  string
	outputFormat string
	verbose      bool
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "airgapsync",
	Short: "AirGapSync - encrypted sync to removable media",
	Long: `AirGapSync manages encrypted synchronization to removable media.

Each target device gets its own AEAD key, kept in the host secure
store (macOS Keychain, Windows Credential Manager, or the freedesktop
Secret Service) and rotated on a configurable schedule. File payloads
are sealed with AES-256-GCM or ChaCha20-Poly1305.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return airgapsync.Initialize()
	},
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "",
		"config file (default is $HOME/.config/airgapsync/config.toml)")
	rootCmd.PersistentFlags().StringVar(&serviceName, "service", "",
		"secure-store service name override")
	rootCmd.PersistentFlags().StringVarP(&outputFormat, "output", "o", "text",
		"output format (text, json)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false,
		"verbose output")

	viper.SetEnvPrefix("AIRGAPSYNC")
	viper.AutomaticEnv()
	_ = viper.BindPFlag("config", rootCmd.PersistentFlags().Lookup("config"))
	_ = viper.BindPFlag("service", rootCmd.PersistentFlags().Lookup("service"))
	_ = viper.BindPFlag("output", rootCmd.PersistentFlags().Lookup("output"))
	_ = viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(keyCmd)
	rootCmd.AddCommand(configCmd)
}

// configPath resolves the configuration file path: flag, then
// AIRGAPSYNC_CONFIG, then the default location.
func configPath() (string, error) {
	if path := viper.GetString("config"); path != "" {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot resolve home directory: %w", err)
	}
	return filepath.Join(home, ".config", "airgapsync", "config.toml"), nil
}

// loadConfig loads and parses the configuration file.
func loadConfig() (*config.Config, error) {
	path, err := configPath()
	if err != nil {
		return nil, err
	}
	printVerbose("Loading configuration from %s", path)
	return config.Load(path)
}

// storeService resolves the secure-store service name.
func storeService() string {
	if svc := viper.GetString("service"); svc != "" {
		return svc
	}
	return ""
}

// handleError prints an error and exits with code 1
func handleError(err error) {
	printer := NewPrinter(viper.GetString("output"), os.Stderr)
	_ = printer.PrintError(err)
	os.Exit(1)
}

// printVerbose prints a message if verbose mode is enabled
func printVerbose(format string, args ...interface{}) {
	if viper.GetBool("verbose") {
		fmt.Fprintf(os.Stderr, "[VERBOSE] "+format+"\n", args...)
	}
}
