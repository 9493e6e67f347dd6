package keys

import (
	"errors"
	"fmt"
)

// Scheme is a signature scheme, identified on the wire by a one-byte flag
type Scheme byte

const (
	SchemeEd25519   Scheme = 0x00
	SchemeSecp256k1 Scheme = 0x01
	SchemeSecp256r1 Scheme = 0x02
)

// DefaultScheme is used for mnemonic-derived and legacy base64 keys
const DefaultScheme = SchemeEd25519

var (
	// ErrInvalidCredentialFormat marks a credential that could not be turned into a keypair.
	// It is a soft failure: the wallet loads without signing capability.
	ErrInvalidCredentialFormat = errors.New("invalid credential format")

	// ErrUnknownScheme is returned for an unrecognized scheme flag
	ErrUnknownScheme = fmt.Errorf("%w: unknown signature scheme", ErrInvalidCredentialFormat)
)

// String returns the string representation of the Scheme
func (s Scheme) String() string {
	switch s {
	case SchemeEd25519:
		return "ED25519"
	case SchemeSecp256k1:
		return "Secp256k1"
	case SchemeSecp256r1:
		return "Secp256r1"
	default:
		return fmt.Sprintf("Unknown(0x%02x)", byte(s))
	}
}

// Flag returns the one-byte scheme tag
func (s Scheme) Flag() byte {
	return byte(s)
}

// SchemeFromFlag maps a scheme tag back to a Scheme
func SchemeFromFlag(flag byte) (Scheme, error) {
	switch s := Scheme(flag); s {
	case SchemeEd25519, SchemeSecp256k1, SchemeSecp256r1:
		return s, nil
	default:
		return 0, fmt.Errorf("%w: flag 0x%02x", ErrUnknownScheme, flag)
	}
}
