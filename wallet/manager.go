package wallet

import (
	"context"
	"errors"
	"fmt"

	"github.com/AlexZinkM/sui-wallet/internal/common"
	"github.com/AlexZinkM/sui-wallet/internal/crypto"
	"github.com/AlexZinkM/sui-wallet/internal/keys"
	"github.com/AlexZinkM/sui-wallet/internal/model"
	"github.com/AlexZinkM/sui-wallet/internal/persistence"
	"github.com/AlexZinkM/sui-wallet/internal/signer"
	"github.com/AlexZinkM/sui-wallet/internal/store"

	"go.uber.org/zap"
)

// ErrLedgerNotConfigured is returned by ledger operations when no ledger client was given
var ErrLedgerNotConfigured = errors.New("ledger client not configured")

// Ledger is the subset of the ledger client the manager uses
type Ledger interface {
	GetBalance(ctx context.Context, owner, coinType string) (*model.Balance, error)
	GetOwnedObjects(ctx context.Context, owner string, cursor *string, limit int) (*model.OwnedObjectsPage, error)
	ExecuteTransactionBlock(ctx context.Context, txBytes string, signatures []string) (*model.TransactionBlockResponse, error)
}

// Options configure a Manager
type Options struct {
	// Providers are consulted in order. When empty the environment provider is used
	// if WALLET_ADDRESSES is set, otherwise the wallet file at FilePath.
	Providers []persistence.Provider
	FilePath  string

	// Passphrase seals secrets in the wallet file. Only used when Providers is empty.
	Passphrase []byte
	SealParams crypto.Params

	Ledger Ledger
	Relay  Relay
	Logger *zap.Logger
}

// Manager is the entry point for wallet operations.
// It is not safe for concurrent use; callers serialize access.
type Manager struct {
	store  *store.Store
	ledger Ledger
	relay  Relay
	logger *zap.Logger
}

// NewManager creates a manager. Call Load before use.
func NewManager(opts Options) (*Manager, error) {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	providers := opts.Providers
	if len(providers) == 0 {
		var fileOpts []persistence.FileOption
		if len(opts.Passphrase) > 0 {
			params := opts.SealParams
			if params.N == 0 {
				params = crypto.DefaultParams
			}
			fileOpts = append(fileOpts, persistence.WithPassphrase(opts.Passphrase, params))
		}

		var err error
		providers, err = persistence.DefaultProviders(opts.FilePath, logger, fileOpts...)
		if err != nil {
			return nil, fmt.Errorf("failed to set up wallet providers: %w", err)
		}
	}

	return &Manager{
		store:  store.New(providers, logger),
		ledger: opts.Ledger,
		relay:  opts.Relay,
		logger: logger.Named("wallet"),
	}, nil
}

// Load reads all providers. Provider failures are returned but do not prevent the others from loading.
func (m *Manager) Load() error {
	return m.store.Load()
}

// AddWallet imports a wallet. creds may be nil for a watch-only wallet.
func (m *Manager) AddWallet(address, name string, creds *keys.Credentials) (*store.Record, error) {
	rec, err := m.store.Add(address, name, creds)
	if err != nil {
		return nil, err
	}
	m.logger.Info("wallet added", zap.String("address", rec.Address), zap.String("name", rec.Name), zap.Bool("canSign", rec.CanSign()))
	return rec, nil
}

// RemoveWallet deletes a wallet by exact address or name; false if not found
func (m *Manager) RemoveWallet(identifier string) bool {
	return m.store.Remove(identifier)
}

// GetWallet resolves identifier, or the default wallet when it is empty. Nil if nothing matches.
func (m *Manager) GetWallet(identifier string, opts store.MatchOptions) *store.Record {
	return m.store.Get(identifier, opts)
}

// SetDefaultWallet makes an existing wallet the default; false if identifier does not resolve
func (m *Manager) SetDefaultWallet(identifier string) bool {
	return m.store.SetDefault(identifier)
}

// ListWallets returns every wallet in insertion order
func (m *Manager) ListWallets() []*store.Record {
	return m.store.List()
}

// DefaultWallet returns the default wallet or nil
func (m *Manager) DefaultWallet() *store.Record {
	return m.store.Get("", store.MatchOptions{})
}

// IsDefault reports whether rec is the default wallet
func (m *Manager) IsDefault(rec *store.Record) bool {
	return m.store.IsDefault(rec)
}

// SearchWallets returns all wallets whose name or address contains query
func (m *Manager) SearchWallets(query string, opts store.SearchOptions) []*store.Record {
	return m.store.Search(query, opts)
}

// GenerateWallet creates a new mnemonic wallet and returns it with its mnemonic.
// The mnemonic cannot be recovered later if no writable provider is configured.
func (m *Manager) GenerateWallet(name string) (*store.Record, string, error) {
	mnemonic, err := keys.GenerateMnemonic()
	if err != nil {
		return nil, "", err
	}

	kp, err := keys.KeypairFromMnemonic(mnemonic)
	if err != nil {
		return nil, "", err
	}
	address := kp.Address()

	if name == "" {
		name = "Wallet-" + address[:6]
		if m.store.Get(name, store.MatchOptions{}) != nil {
			name += "-" + address[len(address)-4:]
		}
	}

	rec, err := m.store.Add(address, name, &keys.Credentials{Mnemonic: mnemonic})
	if err != nil {
		return nil, "", err
	}

	if !m.store.Writable() {
		m.logger.Warn("generated wallet is not persisted, back up the mnemonic now", zap.String("address", address))
	}
	m.logger.Info("wallet generated", zap.String("address", address), zap.String("name", rec.Name))
	return rec, mnemonic, nil
}

// ExportMnemonic returns the wallet's mnemonic if one is stored
func (m *Manager) ExportMnemonic(identifier string) (string, bool) {
	rec := m.store.Get(identifier, store.MatchOptions{})
	if rec == nil || rec.Credentials == nil || rec.Credentials.Mnemonic == "" {
		return "", false
	}
	return rec.Credentials.Mnemonic, true
}

// ExportPrivateKey returns the private key in the requested format.
// A stored key already in that format is returned as is; otherwise it is re-encoded
// from the keypair when the format supports the wallet's scheme.
func (m *Manager) ExportPrivateKey(identifier string, format keys.KeyFormat) (string, bool) {
	rec := m.store.Get(identifier, store.MatchOptions{})
	if rec == nil {
		return "", false
	}

	if rec.Credentials != nil && rec.Credentials.PrivateKey != "" && keys.FormatOf(rec.Credentials.PrivateKey) == format {
		return rec.Credentials.PrivateKey, true
	}
	if rec.Keypair == nil {
		return "", false
	}
	return keys.ExportPrivateKey(rec.Keypair, format)
}

// SignTransaction signs txBytes with the resolved wallet
func (m *Manager) SignTransaction(identifier string, txBytes []byte) (*signer.SignedTransaction, error) {
	rec, err := m.signingRecord(identifier)
	if err != nil {
		return nil, err
	}
	return signer.SignTransaction(rec.Keypair, txBytes)
}

// SignAndSubmit signs txBytes and executes them on the ledger.
// Ledger failures are returned wrapped, unchanged otherwise.
func (m *Manager) SignAndSubmit(ctx context.Context, identifier string, txBytes []byte) (*model.TransactionBlockResponse, error) {
	if m.ledger == nil {
		return nil, ErrLedgerNotConfigured
	}

	signed, err := m.SignTransaction(identifier, txBytes)
	if err != nil {
		return nil, err
	}

	resp, err := m.ledger.ExecuteTransactionBlock(ctx, signed.Bytes, []string{signed.Signature})
	if err != nil {
		return resp, fmt.Errorf("failed to submit transaction: %w", err)
	}
	m.logger.Info("transaction submitted", zap.String("digest", resp.Digest))
	return resp, nil
}

// GetBalance returns the wallet's balance of coinType (SUI when empty)
func (m *Manager) GetBalance(ctx context.Context, identifier, coinType string) (*model.BalanceResponse, error) {
	if m.ledger == nil {
		return nil, ErrLedgerNotConfigured
	}

	rec := m.store.Get(identifier, store.MatchOptions{})
	if rec == nil {
		return nil, fmt.Errorf("%w: %q", store.ErrWalletNotFound, identifier)
	}

	balance, err := m.ledger.GetBalance(ctx, rec.Address, coinType)
	if err != nil {
		return nil, err
	}

	formatted, err := common.FormatBalance(balance.TotalBalance, balance.CoinType)
	if err != nil {
		return nil, err
	}

	return &model.BalanceResponse{
		Address:  rec.Address,
		CoinType: balance.CoinType,
		Balance:  formatted,
		Raw:      balance.TotalBalance,
	}, nil
}

// VerifyAddress reports whether address owns at least one object on the ledger
func (m *Manager) VerifyAddress(ctx context.Context, address string) (bool, error) {
	if m.ledger == nil {
		return false, ErrLedgerNotConfigured
	}

	addr, err := keys.NormalizeAddress(address)
	if err != nil {
		return false, err
	}

	page, err := m.ledger.GetOwnedObjects(ctx, addr, nil, 1)
	if err != nil {
		return false, err
	}
	return len(page.Data) > 0, nil
}

// signingRecord resolves identifier exactly and requires a keypair
func (m *Manager) signingRecord(identifier string) (*store.Record, error) {
	rec := m.store.Get(identifier, store.MatchOptions{})
	if rec == nil {
		return nil, fmt.Errorf("%w: %q", store.ErrWalletNotFound, identifier)
	}
	if !rec.CanSign() {
		return nil, fmt.Errorf("%w: %s", store.ErrNoSigningKey, rec.Address)
	}
	return rec, nil
}
