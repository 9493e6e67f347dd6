package keys

import (
	"crypto/ecdsa"
	"crypto/ed25519"
	"crypto/elliptic"
	"crypto/sha256"
	"math/big"

	"github.com/ethereum/go-ethereum/crypto"
)

// VerifyWithPublicKey checks a 64-byte signature made by Keypair.Sign
// against a bare public key of the given scheme
func VerifyWithPublicKey(scheme Scheme, publicKey, msg, signature []byte) bool {
	if len(signature) != 64 {
		return false
	}

	switch scheme {
	case SchemeEd25519:
		if len(publicKey) != ed25519.PublicKeySize {
			return false
		}
		return ed25519.Verify(ed25519.PublicKey(publicKey), msg, signature)
	case SchemeSecp256k1:
		digest := sha256.Sum256(msg)
		return crypto.VerifySignature(publicKey, digest[:], signature)
	case SchemeSecp256r1:
		x, y := elliptic.UnmarshalCompressed(elliptic.P256(), publicKey)
		if x == nil {
			return false
		}
		digest := sha256.Sum256(msg)
		pub := &ecdsa.PublicKey{Curve: elliptic.P256(), X: x, Y: y}
		r := new(big.Int).SetBytes(signature[:32])
		s := new(big.Int).SetBytes(signature[32:])
		return ecdsa.Verify(pub, digest[:], r, s)
	default:
		return false
	}
}
