package persistence

import (
	"errors"

	"github.com/AlexZinkM/sui-wallet/internal/model"
	"go.uber.org/zap"
)

var (
	// ErrReadOnly is returned by SaveWallets on a provider that cannot be written
	ErrReadOnly = errors.New("provider is read-only")

	// ErrPersistenceWrite wraps any failure to write a snapshot
	ErrPersistenceWrite = errors.New("failed to persist wallets")
)

// Snapshot is the ordered wallet list plus optional default wallet identifier
type Snapshot = model.WalletFile

// Entry is one wallet of a snapshot
type Entry = model.WalletEntry

// Provider is a backing store for wallet records
type Provider interface {
	// Name identifies the provider in logs
	Name() string

	// LoadWallets returns the stored snapshot
	LoadWallets() (Snapshot, error)

	// SaveWallets replaces the stored snapshot wholesale
	SaveWallets(snapshot Snapshot) error

	// Exists reports whether the backing store is present
	Exists() bool

	// IsReadOnly reports whether SaveWallets can ever succeed
	IsReadOnly() bool
}

// DefaultProviders applies the selection policy used when no explicit provider list is given:
// the environment provider alone if WALLET_ADDRESSES is set, otherwise the file provider.
func DefaultProviders(filePath string, logger *zap.Logger, opts ...FileOption) ([]Provider, error) {
	env := NewEnvProvider()
	if env.Exists() {
		logger.Info("using wallets from environment, wallet file is not consulted")
		return []Provider{env}, nil
	}

	file, err := NewFileProvider(filePath, logger, opts...)
	if err != nil {
		return nil, err
	}
	return []Provider{file}, nil
}
