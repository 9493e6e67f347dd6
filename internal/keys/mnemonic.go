package keys

import (
	"crypto/hmac"
	"crypto/sha512"
	"encoding/binary"
	"fmt"
	"strings"

	bip39 "github.com/tyler-smith/go-bip39"
)

const (
	mnemonicEntropyBits = 128 // 12 words

	hardenedOffset uint32 = 0x80000000
)

// ed25519DerivationPath is m/44'/784'/0'/0'/0'; SLIP-0010 only allows hardened steps for Ed25519
var ed25519DerivationPath = []uint32{44, 784, 0, 0, 0}

// GenerateMnemonic draws 128 bits of entropy from crypto/rand and encodes it as a BIP-39 phrase
func GenerateMnemonic() (string, error) {
	entropy, err := bip39.NewEntropy(mnemonicEntropyBits)
	if err != nil {
		return "", fmt.Errorf("failed to generate entropy: %w", err)
	}
	defer clear(entropy)

	mnemonic, err := bip39.NewMnemonic(entropy)
	if err != nil {
		return "", fmt.Errorf("failed to generate mnemonic: %w", err)
	}
	return mnemonic, nil
}

// NormalizeMnemonic collapses whitespace and lowercases the phrase
func NormalizeMnemonic(mnemonic string) string {
	return strings.ToLower(strings.Join(strings.Fields(mnemonic), " "))
}

// KeypairFromMnemonic derives the default-scheme keypair of a mnemonic
func KeypairFromMnemonic(mnemonic string) (Keypair, error) {
	seed, err := bip39.NewSeedWithErrorChecking(NormalizeMnemonic(mnemonic), "")
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidCredentialFormat, err)
	}
	defer clear(seed)

	secret := deriveEd25519(seed, ed25519DerivationPath)
	defer clear(secret)

	return NewEd25519Keypair(secret)
}

// deriveEd25519 walks a fully hardened SLIP-0010 path and returns the child key
func deriveEd25519(seed []byte, path []uint32) []byte {
	mac := hmac.New(sha512.New, []byte("ed25519 seed"))
	mac.Write(seed)
	sum := mac.Sum(nil)
	key, chainCode := sum[:32], sum[32:]

	for _, index := range path {
		data := make([]byte, 0, 1+32+4)
		data = append(data, 0x00)
		data = append(data, key...)
		data = binary.BigEndian.AppendUint32(data, index|hardenedOffset)

		mac = hmac.New(sha512.New, chainCode)
		mac.Write(data)
		sum = mac.Sum(nil)
		key, chainCode = sum[:32], sum[32:]
	}

	out := make([]byte, 32)
	copy(out, key)
	return out
}
