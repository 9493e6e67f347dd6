package persistence

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/AlexZinkM/sui-wallet/internal/crypto"
	"github.com/mitchellh/go-homedir"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// DefaultFilePath is the per-user wallet file location
const DefaultFilePath = "~/.sui-wallet/wallets.yaml"

const (
	fileMode = 0o600
	dirMode  = 0o700
)

// FileProvider stores wallets in a YAML document on disk
type FileProvider struct {
	path       string
	passphrase []byte
	params     crypto.Params
	logger     *zap.Logger

	// sealed maps a secret to the sealed form last read or written,
	// so unchanged secrets are not re-derived on every save
	mu     sync.Mutex
	sealed map[string]string
}

// FileOption configures a FileProvider
type FileOption func(*FileProvider)

// WithPassphrase seals private keys and mnemonics written to the file.
// The provider keeps its own copy of passphrase.
func WithPassphrase(passphrase []byte, params crypto.Params) FileOption {
	return func(p *FileProvider) {
		if len(passphrase) == 0 {
			return
		}
		p.passphrase = append([]byte(nil), passphrase...)
		p.params = params
	}
}

// NewFileProvider creates a file-backed provider. An empty path selects DefaultFilePath.
func NewFileProvider(path string, logger *zap.Logger, opts ...FileOption) (*FileProvider, error) {
	if path == "" {
		path = DefaultFilePath
	}
	expanded, err := homedir.Expand(path)
	if err != nil {
		return nil, fmt.Errorf("failed to expand wallet file path: %w", err)
	}

	p := &FileProvider{
		path:   expanded,
		params: crypto.DefaultParams,
		logger: logger.Named("file-provider"),
		sealed: make(map[string]string),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p, nil
}

func (p *FileProvider) Name() string {
	return "file:" + p.path
}

// Path returns the expanded file path
func (p *FileProvider) Path() string {
	return p.path
}

func (p *FileProvider) Exists() bool {
	_, err := os.Stat(p.path)
	return err == nil
}

func (*FileProvider) IsReadOnly() bool {
	return false
}

// LoadWallets reads the file. A missing file is created empty and yields an empty snapshot.
func (p *FileProvider) LoadWallets() (Snapshot, error) {
	data, err := os.ReadFile(p.path)
	if errors.Is(err, os.ErrNotExist) {
		p.logger.Info("wallet file not found, creating empty one", zap.String("path", p.path))
		if err := p.SaveWallets(Snapshot{}); err != nil {
			return Snapshot{}, err
		}
		return Snapshot{}, nil
	}
	if err != nil {
		return Snapshot{}, fmt.Errorf("failed to read wallet file: %w", err)
	}

	var snapshot Snapshot
	if err := yaml.Unmarshal(data, &snapshot); err != nil {
		return Snapshot{}, fmt.Errorf("failed to parse wallet file: %w", err)
	}

	for i := range snapshot.Wallets {
		e := &snapshot.Wallets[i]
		e.PrivateKey = p.open(e.Address, e.PrivateKey)
		e.Mnemonic = p.open(e.Address, e.Mnemonic)
	}
	return snapshot, nil
}

// SaveWallets rewrites the whole file atomically with mode 0600
func (p *FileProvider) SaveWallets(snapshot Snapshot) error {
	out := Snapshot{
		Wallets:       make([]Entry, 0, len(snapshot.Wallets)),
		DefaultWallet: snapshot.DefaultWallet,
	}
	for _, e := range snapshot.Wallets {
		privateKey, err := p.seal(e.PrivateKey)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrPersistenceWrite, err)
		}
		mnemonic, err := p.seal(e.Mnemonic)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrPersistenceWrite, err)
		}
		e.PrivateKey, e.Mnemonic = privateKey, mnemonic
		out.Wallets = append(out.Wallets, e)
	}

	data, err := yaml.Marshal(&out)
	if err != nil {
		return fmt.Errorf("%w: failed to encode wallet file: %v", ErrPersistenceWrite, err)
	}

	if err := writeFileAtomic(p.path, data); err != nil {
		return fmt.Errorf("%w: %v", ErrPersistenceWrite, err)
	}
	return nil
}

// seal encrypts a secret when a passphrase is configured
func (p *FileProvider) seal(secret string) (string, error) {
	if secret == "" || len(p.passphrase) == 0 || crypto.IsSealed(secret) {
		return secret, nil
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	if sealed, ok := p.sealed[secret]; ok {
		return sealed, nil
	}

	sealed, err := crypto.Seal(secret, p.passphrase, p.params)
	if err != nil {
		return "", err
	}
	p.sealed[secret] = sealed
	return sealed, nil
}

// open decrypts a sealed secret. Failures are logged and the value is kept verbatim.
func (p *FileProvider) open(address, secret string) string {
	if !crypto.IsSealed(secret) {
		return secret
	}
	if len(p.passphrase) == 0 {
		p.logger.Warn("sealed secret found but no passphrase configured", zap.String("address", address))
		return secret
	}

	plain, err := crypto.Open(secret, p.passphrase)
	if err != nil {
		p.logger.Warn("failed to open sealed secret", zap.String("address", address), zap.Error(err))
		return secret
	}

	p.mu.Lock()
	p.sealed[plain] = secret
	p.mu.Unlock()
	return plain
}

// writeFileAtomic writes data to a temp file in the same directory and renames it over path
func writeFileAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, dirMode); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName) // no-op after successful rename

	if err := tmp.Chmod(fileMode); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to set file mode: %w", err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write file: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to sync file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close file: %w", err)
	}

	if err := os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("failed to replace file: %w", err)
	}
	return nil
}
