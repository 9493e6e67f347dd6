package store

import (
	"errors"

	"github.com/AlexZinkM/sui-wallet/internal/keys"
)

var (
	// ErrWalletNotFound is returned when an identifier resolves to no wallet
	ErrWalletNotFound = errors.New("wallet not found")

	// ErrNoSigningKey is returned when a wallet exists but holds no usable keypair
	ErrNoSigningKey = errors.New("wallet has no signing key")

	// ErrNameInUse is returned when a name already belongs to a different address
	ErrNameInUse = errors.New("wallet name already in use")
)

// Record is one wallet held by the store
type Record struct {
	Address     string
	Name        string
	Credentials *keys.Credentials // nil when imported watch-only
	Keypair     keys.Keypair      // nil when credentials are absent or failed to decode
}

// CanSign reports whether the record holds a keypair
func (r *Record) CanSign() bool {
	return r.Keypair != nil
}

// MatchOptions control GetWallet resolution
type MatchOptions struct {
	// AllowPartialMatch falls back to substring search over names and addresses
	AllowPartialMatch bool

	// CaseSensitive makes partial matching case-sensitive
	CaseSensitive bool
}

// SearchOptions control Search
type SearchOptions struct {
	SkipName      bool
	SkipAddress   bool
	CaseSensitive bool
	Limit         int // 0 = unlimited
}

// shortName derives a display name from an address: first 6 + "..." + last 4
func shortName(address string) string {
	if len(address) <= 10 {
		return address
	}
	return address[:6] + "..." + address[len(address)-4:]
}
