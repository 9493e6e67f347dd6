package keys

import "fmt"

// Keypair is a private/public key pair for one signature scheme
type Keypair interface {
	// Scheme returns the signature scheme of the key
	Scheme() Scheme

	// PublicKey returns the public key bytes (32 bytes Ed25519, 33 bytes compressed ECDSA)
	PublicKey() []byte

	// Secret returns a copy of the 32-byte secret key
	Secret() []byte

	// Sign signs msg. ECDSA schemes sign sha256(msg) and return 64-byte r||s with low S.
	Sign(msg []byte) ([]byte, error)

	// Verify checks a signature produced by Sign
	Verify(msg, signature []byte) bool

	// Address returns the canonical account address
	Address() string
}

// FromSecret instantiates the keypair type matching the scheme
func FromSecret(scheme Scheme, secret []byte) (Keypair, error) {
	switch scheme {
	case SchemeEd25519:
		return NewEd25519Keypair(secret)
	case SchemeSecp256k1:
		return NewSecp256k1Keypair(secret)
	case SchemeSecp256r1:
		return NewSecp256r1Keypair(secret)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownScheme, scheme)
	}
}
