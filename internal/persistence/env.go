package persistence

import (
	"fmt"
	"os"
	"strings"

	"github.com/kelseyhightower/envconfig"
)

const envAddressesKey = "WALLET_ADDRESSES"

// envWallets holds the index-aligned wallet lists read from the environment
type envWallets struct {
	Addresses     []string `envconfig:"WALLET_ADDRESSES"`
	Names         []string `envconfig:"WALLET_NAMES"`
	PrivateKeys   []string `envconfig:"WALLET_PRIVATE_KEYS"`
	Mnemonics     []string `envconfig:"WALLET_MNEMONICS"`
	DefaultWallet string   `envconfig:"DEFAULT_WALLET"`
}

// EnvProvider reads wallets from environment variables. It is always read-only.
type EnvProvider struct{}

// NewEnvProvider creates an environment-backed provider
func NewEnvProvider() *EnvProvider {
	return &EnvProvider{}
}

func (*EnvProvider) Name() string {
	return "env"
}

// Exists is true iff WALLET_ADDRESSES is set and non-blank
func (*EnvProvider) Exists() bool {
	return strings.TrimSpace(os.Getenv(envAddressesKey)) != ""
}

func (*EnvProvider) IsReadOnly() bool {
	return true
}

// LoadWallets builds a snapshot from the parallel lists; blank addresses are skipped
func (*EnvProvider) LoadWallets() (Snapshot, error) {
	var w envWallets
	if err := envconfig.Process("", &w); err != nil {
		return Snapshot{}, fmt.Errorf("failed to process wallet environment: %w", err)
	}

	snapshot := Snapshot{DefaultWallet: strings.TrimSpace(w.DefaultWallet)}
	for i, addr := range w.Addresses {
		addr = strings.TrimSpace(addr)
		if addr == "" {
			continue
		}
		snapshot.Wallets = append(snapshot.Wallets, Entry{
			Address:    addr,
			Name:       at(w.Names, i),
			PrivateKey: at(w.PrivateKeys, i),
			Mnemonic:   at(w.Mnemonics, i),
		})
	}
	return snapshot, nil
}

// SaveWallets always fails with ErrReadOnly
func (*EnvProvider) SaveWallets(Snapshot) error {
	return ErrReadOnly
}

// at returns the trimmed i-th element or "" when the list is shorter
func at(list []string, i int) string {
	if i >= len(list) {
		return ""
	}
	return strings.TrimSpace(list[i])
}
