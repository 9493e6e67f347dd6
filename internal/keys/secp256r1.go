package keys

import (
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"crypto/sha256"
	"fmt"
	"math/big"
)

// Secp256r1Keypair is an ECDSA key on NIST P-256
type Secp256r1Keypair struct {
	key *ecdsa.PrivateKey
}

// NewSecp256r1Keypair builds a keypair from a 32-byte scalar
func NewSecp256r1Keypair(secret []byte) (*Secp256r1Keypair, error) {
	if len(secret) != 32 {
		return nil, fmt.Errorf("%w: secp256r1 secret must be 32 bytes, got %d",
			ErrInvalidCredentialFormat, len(secret))
	}

	curve := elliptic.P256()
	d := new(big.Int).SetBytes(secret)
	if d.Sign() == 0 || d.Cmp(curve.Params().N) >= 0 {
		return nil, fmt.Errorf("%w: secp256r1 scalar out of range", ErrInvalidCredentialFormat)
	}

	key := &ecdsa.PrivateKey{
		PublicKey: ecdsa.PublicKey{Curve: curve},
		D:         d,
	}
	key.PublicKey.X, key.PublicKey.Y = curve.ScalarBaseMult(secret)

	return &Secp256r1Keypair{key: key}, nil
}

func (*Secp256r1Keypair) Scheme() Scheme {
	return SchemeSecp256r1
}

func (k *Secp256r1Keypair) PublicKey() []byte {
	return elliptic.MarshalCompressed(k.key.Curve, k.key.X, k.key.Y)
}

func (k *Secp256r1Keypair) Secret() []byte {
	return k.key.D.FillBytes(make([]byte, 32))
}

func (k *Secp256r1Keypair) Sign(msg []byte) ([]byte, error) {
	digest := sha256.Sum256(msg)

	r, s, err := ecdsa.Sign(rand.Reader, k.key, digest[:])
	if err != nil {
		return nil, fmt.Errorf("failed to sign: %w", err)
	}

	// low-S form
	n := k.key.Curve.Params().N
	if s.Cmp(new(big.Int).Rsh(n, 1)) > 0 {
		s = new(big.Int).Sub(n, s)
	}

	sig := make([]byte, 64)
	r.FillBytes(sig[:32])
	s.FillBytes(sig[32:])
	return sig, nil
}

func (k *Secp256r1Keypair) Verify(msg, signature []byte) bool {
	if len(signature) != 64 {
		return false
	}
	digest := sha256.Sum256(msg)
	r := new(big.Int).SetBytes(signature[:32])
	s := new(big.Int).SetBytes(signature[32:])
	return ecdsa.Verify(&k.key.PublicKey, digest[:], r, s)
}

func (k *Secp256r1Keypair) Address() string {
	return AddressFromPublicKey(SchemeSecp256r1, k.PublicKey())
}
