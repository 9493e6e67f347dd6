package keys

import (
	"encoding/hex"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/blake2b"
)

const (
	// AddressLength is the address size in bytes
	AddressLength = 32

	addressHexLen = AddressLength * 2
)

// ErrAddressFormatInvalid is returned for a malformed address string
var ErrAddressFormatInvalid = errors.New("invalid address format")

// NormalizeAddress returns the canonical form of an address:
// lowercase, 0x-prefixed, left-padded with zeros to 32 bytes.
// Applying it to its own output returns the same string.
func NormalizeAddress(address string) (string, error) {
	s := strings.ToLower(strings.TrimSpace(address))
	s = strings.TrimPrefix(s, "0x")

	if s == "" || len(s) > addressHexLen {
		return "", fmt.Errorf("%w: %q", ErrAddressFormatInvalid, address)
	}
	for _, c := range s {
		if !(c >= '0' && c <= '9' || c >= 'a' && c <= 'f') {
			return "", fmt.Errorf("%w: %q", ErrAddressFormatInvalid, address)
		}
	}

	return "0x" + strings.Repeat("0", addressHexLen-len(s)) + s, nil
}

// IsAddressShaped reports whether an identifier should be looked up as an address
// rather than as a wallet name
func IsAddressShaped(identifier string) bool {
	return strings.HasPrefix(strings.ToLower(strings.TrimSpace(identifier)), "0x")
}

// AddressFromPublicKey derives the account address: blake2b-256(flag || publicKey)
func AddressFromPublicKey(scheme Scheme, publicKey []byte) string {
	buf := make([]byte, 0, 1+len(publicKey))
	buf = append(buf, scheme.Flag())
	buf = append(buf, publicKey...)

	sum := blake2b.Sum256(buf)
	return "0x" + hex.EncodeToString(sum[:])
}
