package signer

import (
	"encoding/base64"
	"errors"
	"fmt"

	"github.com/AlexZinkM/sui-wallet/internal/keys"
	"golang.org/x/crypto/blake2b"
)

// intentTransactionData is the intent prefix for transaction data: scope 0, version 0, app id 0
var intentTransactionData = [3]byte{0, 0, 0}

// SignedTransaction is a signature together with the bytes it covers, both base64
type SignedTransaction struct {
	Signature string `json:"signature"`
	Bytes     string `json:"bytes"`
}

// IntentDigest returns blake2b-256(intent || txBytes), the message actually signed
func IntentDigest(txBytes []byte) [32]byte {
	msg := make([]byte, 0, len(intentTransactionData)+len(txBytes))
	msg = append(msg, intentTransactionData[:]...)
	msg = append(msg, txBytes...)
	return blake2b.Sum256(msg)
}

// SignTransaction signs raw transaction bytes with kp.
// The signature is serialized as base64(flag || signature || public key).
func SignTransaction(kp keys.Keypair, txBytes []byte) (*SignedTransaction, error) {
	if kp == nil {
		return nil, errors.New("keypair is nil")
	}
	if len(txBytes) == 0 {
		return nil, errors.New("transaction bytes are empty")
	}

	digest := IntentDigest(txBytes)
	sig, err := kp.Sign(digest[:])
	if err != nil {
		return nil, fmt.Errorf("failed to sign transaction: %w", err)
	}

	pub := kp.PublicKey()
	serialized := make([]byte, 0, 1+len(sig)+len(pub))
	serialized = append(serialized, kp.Scheme().Flag())
	serialized = append(serialized, sig...)
	serialized = append(serialized, pub...)

	return &SignedTransaction{
		Signature: base64.StdEncoding.EncodeToString(serialized),
		Bytes:     base64.StdEncoding.EncodeToString(txBytes),
	}, nil
}

// VerifySignature checks a serialized signature over txBytes and returns the signer address
func VerifySignature(txBytes []byte, signature string) (string, error) {
	raw, err := base64.StdEncoding.DecodeString(signature)
	if err != nil {
		return "", fmt.Errorf("failed to decode signature: %w", err)
	}
	if len(raw) < 1+64 {
		return "", fmt.Errorf("signature too short: %d bytes", len(raw))
	}

	scheme, err := keys.SchemeFromFlag(raw[0])
	if err != nil {
		return "", err
	}
	sig, pub := raw[1:65], raw[65:]

	digest := IntentDigest(txBytes)
	if !keys.VerifyWithPublicKey(scheme, pub, digest[:], sig) {
		return "", errors.New("signature does not verify")
	}
	return keys.AddressFromPublicKey(scheme, pub), nil
}
