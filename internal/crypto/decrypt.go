package crypto

import (
	"encoding/base64"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidPassphrase is returned when authentication of a sealed secret fails
var ErrInvalidPassphrase = errors.New("invalid passphrase")

// Open decrypts a value produced by Seal.
// passphrase must be []byte for security (caller should zero it after use)
func Open(sealed string, passphrase []byte) (string, error) {
	if !IsSealed(sealed) {
		return "", errors.New("value is not sealed")
	}

	parts := strings.Split(strings.TrimPrefix(sealed, SealedPrefix), ":")
	if len(parts) != 6 {
		return "", fmt.Errorf("malformed sealed value: expected 6 fields, got %d", len(parts))
	}

	var params Params
	var err error
	if params.N, err = strconv.Atoi(parts[0]); err != nil {
		return "", fmt.Errorf("failed to parse scrypt N: %w", err)
	}
	if params.R, err = strconv.Atoi(parts[1]); err != nil {
		return "", fmt.Errorf("failed to parse scrypt r: %w", err)
	}
	if params.P, err = strconv.Atoi(parts[2]); err != nil {
		return "", fmt.Errorf("failed to parse scrypt p: %w", err)
	}

	// Decode salt, nonce and ciphertext
	salt, err := base64.StdEncoding.DecodeString(parts[3])
	if err != nil {
		return "", fmt.Errorf("failed to decode salt: %w", err)
	}

	nonce, err := base64.StdEncoding.DecodeString(parts[4])
	if err != nil {
		return "", fmt.Errorf("failed to decode nonce: %w", err)
	}

	ciphertext, err := base64.StdEncoding.DecodeString(parts[5])
	if err != nil {
		return "", fmt.Errorf("failed to decode ciphertext: %w", err)
	}

	aesGCM, err := newGCM(passphrase, salt, params)
	if err != nil {
		return "", err
	}
	if len(nonce) != aesGCM.NonceSize() {
		return "", fmt.Errorf("invalid nonce length %d", len(nonce))
	}

	plaintext, err := aesGCM.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return "", ErrInvalidPassphrase
	}
	defer clear(plaintext) // wipe decrypted bytes from memory

	return string(plaintext), nil
}
