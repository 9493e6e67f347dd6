package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"golang.org/x/crypto/scrypt"
)

const (
	// SealedPrefix marks a sealed secret inside the wallet file
	SealedPrefix = "sealed:v1:"

	saltLen      = 32
	nonceLen     = 12
	scryptKeyLen = 32
)

// Params are the scrypt cost parameters
type Params struct {
	N int
	R int
	P int
}

// DefaultParams favour security over speed.
//
// N=2^18 (~256MB RAM, 0.5-2s per secret) keeps brute force expensive while
// still fitting in the memory limits of small machines.
var DefaultParams = Params{N: 1 << 18, R: 8, P: 1}

// IsSealed reports whether value was produced by Seal
func IsSealed(value string) bool {
	return strings.HasPrefix(value, SealedPrefix)
}

// Seal encrypts one secret string with a passphrase.
// Output: sealed:v1:<N>:<r>:<p>:<salt>:<nonce>:<ciphertext>, binary parts base64.
// passphrase must be []byte for security (caller should zero it after use)
func Seal(plaintext string, passphrase []byte, params Params) (string, error) {
	if len(passphrase) == 0 {
		return "", errors.New("passphrase cannot be empty")
	}

	// Generate salt and nonce
	salt := make([]byte, saltLen)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return "", fmt.Errorf("failed to generate salt: %w", err)
	}

	nonce := make([]byte, nonceLen)
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return "", fmt.Errorf("failed to generate nonce: %w", err)
	}

	aesGCM, err := newGCM(passphrase, salt, params)
	if err != nil {
		return "", err
	}

	data := []byte(plaintext)
	defer clear(data) // wipe plaintext bytes from memory

	ciphertext := aesGCM.Seal(nil, nonce, data, nil)

	return SealedPrefix + strings.Join([]string{
		strconv.Itoa(params.N),
		strconv.Itoa(params.R),
		strconv.Itoa(params.P),
		base64.StdEncoding.EncodeToString(salt),
		base64.StdEncoding.EncodeToString(nonce),
		base64.StdEncoding.EncodeToString(ciphertext),
	}, ":"), nil
}

// newGCM derives the AES key from the passphrase and builds the AEAD
func newGCM(passphrase, salt []byte, params Params) (cipher.AEAD, error) {
	key, err := scrypt.Key(passphrase, salt, params.N, params.R, params.P, scryptKeyLen)
	if err != nil {
		return nil, fmt.Errorf("failed to derive key: %w", err)
	}
	defer clear(key)

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("failed to create cipher: %w", err)
	}

	aesGCM, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("failed to create GCM: %w", err)
	}
	return aesGCM, nil
}
