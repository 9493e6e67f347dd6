// Seals (or with --unseal, opens) every secret in a wallet file in place.
// Usage: go run ./cmd/seal_wallets [--file path] [--unseal]
package main

import (
	"fmt"
	"os"

	"github.com/AlexZinkM/sui-wallet/internal/config"
	"github.com/AlexZinkM/sui-wallet/internal/crypto"
	"github.com/AlexZinkM/sui-wallet/internal/logger"
	"github.com/AlexZinkM/sui-wallet/internal/persistence"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	filePath string
	unseal   bool
)

var rootCmd = &cobra.Command{
	Use:   "seal_wallets",
	Short: "Seal or unseal the secrets of a wallet file with a passphrase",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		log := logger.New("info", "console")
		defer log.Sync()

		if err := config.PromptForPassphrase(); err != nil {
			return err
		}
		defer config.ClearPassphrase()
		passphrase, err := config.GetPassphraseBytes()
		if err != nil {
			return err
		}
		defer clear(passphrase)

		sealed, err := persistence.NewFileProvider(filePath, log, persistence.WithPassphrase(passphrase, crypto.DefaultParams))
		if err != nil {
			return err
		}
		if !sealed.Exists() {
			return fmt.Errorf("wallet file %s does not exist", sealed.Path())
		}

		// Sealed values that fail to open are kept verbatim, so a wrong passphrase never destroys data
		snapshot, err := sealed.LoadWallets()
		if err != nil {
			return err
		}

		target := sealed
		if unseal {
			if target, err = persistence.NewFileProvider(filePath, log); err != nil {
				return err
			}
		}
		if err := target.SaveWallets(snapshot); err != nil {
			return err
		}

		remaining := 0
		for _, e := range snapshot.Wallets {
			if crypto.IsSealed(e.PrivateKey) || crypto.IsSealed(e.Mnemonic) {
				remaining++
			}
		}
		if remaining > 0 {
			log.Warn("some secrets could not be opened with this passphrase and were left as they were", zap.Int("wallets", remaining))
		}
		log.Info("wallet file rewritten", zap.String("path", target.Path()), zap.Int("wallets", len(snapshot.Wallets)), zap.Bool("sealed", !unseal))
		return nil
	},
}

func main() {
	rootCmd.Flags().StringVar(&filePath, "file", persistence.DefaultFilePath, "wallet file to rewrite")
	rootCmd.Flags().BoolVar(&unseal, "unseal", false, "write secrets back in plain text")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
