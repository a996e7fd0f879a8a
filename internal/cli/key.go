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

	"github.com/airgapsync/airgapsync/pkg/keys"
	"github.com/airgapsync/airgapsync/pkg/keystore"
	"github.com/airgapsync/airgapsync/pkg/types"
)

// keyCmd represents the key command
var keyCmd = &cobra.Command{
	Use:   "key",
	Short: "Manage device encryption keys",
	Long:  `Generate, rotate, list, and delete per-device encryption keys in the host secure store`,
}

func openStore() (keystore.Store, error) {
	if svc := storeService(); svc != "" {
		printVerbose("Opening secure store service %s", svc)
		return keystore.OpenKeyringService(svc)
	}
	return keystore.OpenKeyring()
}

func openManager() (*keystore.Manager, error) {
	store, err := openStore()
	if err != nil {
		return nil, err
	}
	return keystore.NewManager(store), nil
}

// keyGenerateCmd creates a fresh version-1 key for a device
var keyGenerateCmd = &cobra.Command{
	Use:   "generate <device-id>",
	Short: "Generate a new encryption key for a device",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		deviceID := args[0]
		printer := NewPrinter(outputFormat, os.Stdout)

		algorithmName, _ := cmd.Flags().GetString("algorithm")
		algorithm, err := types.ParseSymmetricAlgorithm(algorithmName)
		if err != nil {
			handleError(fmt.Errorf("unknown algorithm %q", algorithmName))
			return
		}

		manager, err := openManager()
		if err != nil {
			handleError(err)
			return
		}
		defer func() { _ = manager.Store().Close() }()

		key, err := manager.Generate(algorithm, deviceID)
		if err != nil {
			handleError(err)
			return
		}
		defer key.Destroy()

		if err := printer.PrintKeyMetadata(key.Metadata); err != nil {
			handleError(err)
		}
	},
}

// keyRotateCmd replaces the key material and bumps the version
var keyRotateCmd = &cobra.Command{
	Use:   "rotate <device-id>",
	Short: "Rotate the encryption key for a device",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		deviceID := args[0]
		printer := NewPrinter(outputFormat, os.Stdout)

		manager, err := openManager()
		if err != nil {
			handleError(err)
			return
		}
		defer func() { _ = manager.Store().Close() }()

		key, err := manager.Rotate(deviceID)
		if err != nil {
			handleError(err)
			return
		}
		defer key.Destroy()

		if err := printer.PrintKeyMetadata(key.Metadata); err != nil {
			handleError(err)
		}
	},
}

// keyListCmd enumerates devices with stored keys
var keyListCmd = &cobra.Command{
	Use:   "list",
	Short: "List devices with stored encryption keys",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		printer := NewPrinter(outputFormat, os.Stdout)

		manager, err := openManager()
		if err != nil {
			handleError(err)
			return
		}
		defer func() { _ = manager.Store().Close() }()

		devices, err := manager.ListDevices()
		if err != nil {
			handleError(err)
			return
		}
		if err := printer.PrintDeviceList(devices); err != nil {
			handleError(err)
		}
	},
}

// keyDeleteCmd removes the key for a device
var keyDeleteCmd = &cobra.Command{
	Use:   "delete <device-id>",
	Short: "Delete the encryption key for a device",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		deviceID := args[0]
		printer := NewPrinter(outputFormat, os.Stdout)

		force, _ := cmd.Flags().GetBool("force")
		if !force {
			handleError(fmt.Errorf("refusing to delete key for %s without --force; data encrypted under it becomes unrecoverable", deviceID))
			return
		}

		manager, err := openManager()
		if err != nil {
			handleError(err)
			return
		}
		defer func() { _ = manager.Store().Close() }()

		if err := manager.Delete(deviceID); err != nil {
			handleError(err)
			return
		}
		if err := printer.PrintMessage(fmt.Sprintf("Deleted key for device %s", deviceID)); err != nil {
			handleError(err)
		}
	},
}

// keyInfoCmd shows metadata for a device key
var keyInfoCmd = &cobra.Command{
	Use:   "info <device-id>",
	Short: "Show metadata for a device key",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		deviceID := args[0]
		printer := NewPrinter(outputFormat, os.Stdout)

		manager, err := openManager()
		if err != nil {
			handleError(err)
			return
		}
		defer func() { _ = manager.Store().Close() }()

		key, err := manager.Get(deviceID)
		if err != nil {
			handleError(err)
			return
		}
		key.Destroy()

		if err := printer.PrintKeyMetadata(key.Metadata); err != nil {
			handleError(err)
		}
	},
}

// keyKeypairCmd generates a signing keypair on disk
var keyKeypairCmd = &cobra.Command{
	Use:   "keypair <out-prefix>",
	Short: "Generate a signing keypair",
	Long: `Generate an asymmetric signing keypair. The private key is written as
PKCS#8 DER to <out-prefix>.key and the public key as PEM to
<out-prefix>.pub.pem`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		prefix := args[0]
		printer := NewPrinter(outputFormat, os.Stdout)

		algorithmName, _ := cmd.Flags().GetString("algorithm")
		algorithm, err := types.ParseAsymmetricAlgorithm(algorithmName)
		if err != nil {
			handleError(fmt.Errorf("unknown algorithm %q", algorithmName))
			return
		}

		key, err := keys.GenerateAsymmetricKey(algorithm)
		if err != nil {
			handleError(err)
			return
		}
		defer key.Destroy()

		privateDER, err := key.PrivateKeyDER()
		if err != nil {
			handleError(err)
			return
		}
		if err := os.WriteFile(prefix+".key", privateDER, 0o600); err != nil {
			handleError(err)
			return
		}
		pem := key.PublicKeyPEM()
		if err := os.WriteFile(prefix+".pub.pem", []byte(pem+"\n"), 0o644); err != nil {
			handleError(err)
			return
		}
		if err := printer.PrintMessage(fmt.Sprintf("Wrote %s.key and %s.pub.pem", prefix, prefix)); err != nil {
			handleError(err)
		}
	},
}

// keyExportPubCmd prints the public half of a stored private key
var keyExportPubCmd = &cobra.Command{
	Use:   "export-pub <private-key-file>",
	Short: "Export the public key from a PKCS#8 private key file as PEM",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		path := args[0]

		algorithmName, _ := cmd.Flags().GetString("algorithm")
		algorithm, err := types.ParseAsymmetricAlgorithm(algorithmName)
		if err != nil {
			handleError(fmt.Errorf("unknown algorithm %q", algorithmName))
			return
		}

		der, err := os.ReadFile(path)
		if err != nil {
			handleError(err)
			return
		}
		key, err := keys.NewAsymmetricKeyFromPrivateDER(algorithm, der)
		if err != nil {
			handleError(err)
			return
		}
		defer key.Destroy()

		fmt.Println(key.PublicKeyPEM())
	},
}

func init() {
	keyGenerateCmd.Flags().String("algorithm", types.AES256GCM.String(),
		"symmetric algorithm (aes-256-gcm, chacha20-poly1305)")
	keyDeleteCmd.Flags().Bool("force", false, "confirm deletion")
	keyKeypairCmd.Flags().String("algorithm", string(types.ECDSAP256),
		"asymmetric algorithm (RSA-2048, RSA-4096, ECDSA-P256, ECDSA-P384)")
	keyExportPubCmd.Flags().String("algorithm", string(types.ECDSAP256),
		"asymmetric algorithm of the private key")

	keyCmd.AddCommand(keyGenerateCmd)
	keyCmd.AddCommand(keyRotateCmd)
	keyCmd.AddCommand(keyListCmd)
	keyCmd.AddCommand(keyDeleteCmd)
	keyCmd.AddCommand(keyInfoCmd)
	keyCmd.AddCommand(keyKeypairCmd)
	keyCmd.AddCommand(keyExportPubCmd)
}
