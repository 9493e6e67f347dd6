package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/kelseyhightower/envconfig"
	"golang.org/x/term"
)

// Config contains all configuration parameters for the application.
// Note: the wallet passphrase is prompted at runtime and stored in memory - use GetPassphraseBytes()
type Config struct {
	Port               string        `envconfig:"PORT" default:"8080"`
	WalletFilePath     string        `envconfig:"WALLET_FILE_PATH" default:"~/.sui-wallet/wallets.yaml"`
	WalletSealSecrets  bool          `envconfig:"WALLET_SEAL_SECRETS" default:"false"`
	SuiRPCURL          string        `envconfig:"SUI_RPC_URL" default:"https://fullnode.mainnet.sui.io:443"`
	RPCTimeout         time.Duration `envconfig:"RPC_TIMEOUT" default:"15s"`
	RelayURL           string        `envconfig:"RELAY_URL" default:"http://localhost:8080"`
	RelayDataDir       string        `envconfig:"RELAY_DATA_DIR" default:"~/.sui-wallet/relay"`
	RelayRetention     time.Duration `envconfig:"RELAY_RETENTION" default:"30m"`
	RelaySweepInterval time.Duration `envconfig:"RELAY_SWEEP_INTERVAL" default:"5m"`
	LogLevel           string        `envconfig:"LOG_LEVEL" default:"info"`
	LogFormat          string        `envconfig:"LOG_FORMAT" default:"console"`
}

// cfg is the global configuration instance
var cfg *Config

// Init loads configuration from environment variables.
func Init() error {
	cfg = &Config{}
	if err := envconfig.Process("", cfg); err != nil {
		return fmt.Errorf("failed to process config: %w", err)
	}
	return nil
}

// Get returns the global configuration instance.
// Panics if Init() was not called.
func Get() *Config {
	if cfg == nil {
		panic("config not initialized, call Init() first")
	}
	return cfg
}

// GetPort returns port from configuration
func GetPort() string {
	return Get().Port
}

// GetWalletFilePath returns path to the wallet file from configuration
func GetWalletFilePath() string {
	return Get().WalletFilePath
}

// GetSuiRPCURL returns Sui RPC URL from configuration
func GetSuiRPCURL() string {
	return Get().SuiRPCURL
}

// GetRPCTimeout returns timeout for ledger and relay calls
func GetRPCTimeout() time.Duration {
	return Get().RPCTimeout
}

// GetRelayURL returns the public base URL of the signing relay
func GetRelayURL() string {
	return Get().RelayURL
}

var passphraseBytes []byte

// PromptForPassphrase prompts the user for the wallet passphrase in the terminal.
// The passphrase is read without echoing (hidden input) and stored in memory.
// Call this at startup before the server begins handling requests.
func PromptForPassphrase() error {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return errors.New("stdin is not a terminal: run the app interactively to enter passphrase")
	}
	fmt.Fprint(os.Stderr, "Enter wallet passphrase: ")
	defer fmt.Fprintln(os.Stderr)

	raw, err := term.ReadPassword(int(os.Stdin.Fd()))
	if err != nil {
		return fmt.Errorf("failed to read passphrase: %w", err)
	}
	if len(raw) == 0 {
		return errors.New("passphrase cannot be empty")
	}

	passphraseBytes = make([]byte, len(raw))
	copy(passphraseBytes, raw)
	clear(raw)
	return nil
}

// GetPassphraseBytes returns the passphrase stored in memory (from PromptForPassphrase).
// Returns an error if the passphrase was not set.
// Caller must zero the returned slice after use for security.
func GetPassphraseBytes() ([]byte, error) {
	if len(passphraseBytes) == 0 {
		return nil, errors.New("passphrase not set: call PromptForPassphrase at startup")
	}
	out := make([]byte, len(passphraseBytes))
	copy(out, passphraseBytes)
	return out, nil
}

// ClearPassphrase wipes the in-memory passphrase
func ClearPassphrase() {
	clear(passphraseBytes)
	passphraseBytes = nil
}
