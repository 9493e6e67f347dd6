package model

// WalletFile represents the wallet file structure
type WalletFile struct {
	Wallets       []WalletEntry `yaml:"wallets" json:"wallets"`
	DefaultWallet string        `yaml:"defaultWallet,omitempty" json:"defaultWallet,omitempty"`
}

// WalletEntry is one persisted wallet.
// PrivateKey and Mnemonic may be sealed (see internal/crypto).
type WalletEntry struct {
	Address    string `yaml:"address" json:"address"`
	Name       string `yaml:"name,omitempty" json:"name,omitempty"`
	PrivateKey string `yaml:"privateKey,omitempty" json:"privateKey,omitempty"`
	Mnemonic   string `yaml:"mnemonic,omitempty" json:"mnemonic,omitempty"`
}

// WalletResponse is the public view of a wallet. Secrets are never included.
type WalletResponse struct {
	Address   string `json:"address"`
	Name      string `json:"name"`
	Scheme    string `json:"scheme,omitempty"`
	CanSign   bool   `json:"canSign"`
	IsDefault bool   `json:"isDefault"`
}

// WalletListResponse represents response for GET /wallets
type WalletListResponse struct {
	Wallets []WalletResponse `json:"wallets"`
	Default string           `json:"default,omitempty"`
}

// AddWalletRequest represents request for POST /wallets
type AddWalletRequest struct {
	Address    string `json:"address"`
	Name       string `json:"name,omitempty"`
	PrivateKey string `json:"privateKey,omitempty"`
	Mnemonic   string `json:"mnemonic,omitempty"`
}

// SetDefaultRequest represents request for PUT /wallets/default
type SetDefaultRequest struct {
	ID string `json:"id"`
}

// GenerateRequest represents request for POST /wallets/generate
type GenerateRequest struct {
	Name string `json:"name,omitempty"`
}

// GenerateResponse represents response for POST /wallets/generate.
// The mnemonic is returned once and must be backed up by the caller.
type GenerateResponse struct {
	Wallet   WalletResponse `json:"wallet"`
	Mnemonic string         `json:"mnemonic"`
}
