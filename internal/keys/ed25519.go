package keys

import (
	"crypto/ed25519"
	"fmt"

	"github.com/gagliardetto/solana-go"
)

// Ed25519Keypair wraps a full 64-byte Ed25519 private key
type Ed25519Keypair struct {
	key solana.PrivateKey
}

// NewEd25519Keypair builds a keypair from a 32-byte seed.
// A 64-byte seed||public key is also accepted; the public half must match.
func NewEd25519Keypair(secret []byte) (*Ed25519Keypair, error) {
	switch len(secret) {
	case ed25519.SeedSize:
	case ed25519.PrivateKeySize:
		full := ed25519.NewKeyFromSeed(secret[:ed25519.SeedSize])
		if string(full[ed25519.SeedSize:]) != string(secret[ed25519.SeedSize:]) {
			return nil, fmt.Errorf("%w: ed25519 public key does not match seed", ErrInvalidCredentialFormat)
		}
	default:
		return nil, fmt.Errorf("%w: ed25519 secret must be %d bytes, got %d",
			ErrInvalidCredentialFormat, ed25519.SeedSize, len(secret))
	}

	return &Ed25519Keypair{
		key: solana.PrivateKey(ed25519.NewKeyFromSeed(secret[:ed25519.SeedSize])),
	}, nil
}

func (*Ed25519Keypair) Scheme() Scheme {
	return SchemeEd25519
}

func (k *Ed25519Keypair) PublicKey() []byte {
	pub := k.key.PublicKey()
	return pub[:]
}

func (k *Ed25519Keypair) Secret() []byte {
	out := make([]byte, ed25519.SeedSize)
	copy(out, k.key[:ed25519.SeedSize])
	return out
}

func (k *Ed25519Keypair) Sign(msg []byte) ([]byte, error) {
	sig, err := k.key.Sign(msg)
	if err != nil {
		return nil, fmt.Errorf("failed to sign: %w", err)
	}
	return sig[:], nil
}

func (k *Ed25519Keypair) Verify(msg, signature []byte) bool {
	return ed25519.Verify(ed25519.PublicKey(k.PublicKey()), msg, signature)
}

func (k *Ed25519Keypair) Address() string {
	return AddressFromPublicKey(SchemeEd25519, k.PublicKey())
}
