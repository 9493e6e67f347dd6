package keys

import (
	"crypto/ecdsa"
	"crypto/sha256"
	"fmt"

	"github.com/ethereum/go-ethereum/crypto"
)

// Secp256k1Keypair is an ECDSA key on the secp256k1 curve
type Secp256k1Keypair struct {
	key *ecdsa.PrivateKey
}

// NewSecp256k1Keypair builds a keypair from a 32-byte scalar
func NewSecp256k1Keypair(secret []byte) (*Secp256k1Keypair, error) {
	if len(secret) != 32 {
		return nil, fmt.Errorf("%w: secp256k1 secret must be 32 bytes, got %d",
			ErrInvalidCredentialFormat, len(secret))
	}

	key, err := crypto.ToECDSA(secret)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidCredentialFormat, err)
	}

	return &Secp256k1Keypair{key: key}, nil
}

func (*Secp256k1Keypair) Scheme() Scheme {
	return SchemeSecp256k1
}

func (k *Secp256k1Keypair) PublicKey() []byte {
	return crypto.CompressPubkey(&k.key.PublicKey)
}

func (k *Secp256k1Keypair) Secret() []byte {
	return crypto.FromECDSA(k.key)
}

func (k *Secp256k1Keypair) Sign(msg []byte) ([]byte, error) {
	digest := sha256.Sum256(msg)

	// [R || S || V], S already normalized to the lower half
	sig, err := crypto.Sign(digest[:], k.key)
	if err != nil {
		return nil, fmt.Errorf("failed to sign: %w", err)
	}
	return sig[:64], nil
}

func (k *Secp256k1Keypair) Verify(msg, signature []byte) bool {
	if len(signature) != 64 {
		return false
	}
	digest := sha256.Sum256(msg)
	return crypto.VerifySignature(k.PublicKey(), digest[:], signature)
}

func (k *Secp256k1Keypair) Address() string {
	return AddressFromPublicKey(SchemeSecp256k1, k.PublicKey())
}
