package relay

import (
	"github.com/mr-tron/base58"
	"golang.org/x/crypto/blake2b"
)

const digestDomain = "TransactionData::"

// TxDigest returns the content id of transaction bytes: base58(blake2b-256(domain || bytes)).
// Identical bytes always yield the same id.
func TxDigest(txBytes []byte) string {
	msg := make([]byte, 0, len(digestDomain)+len(txBytes))
	msg = append(msg, digestDomain...)
	msg = append(msg, txBytes...)

	sum := blake2b.Sum256(msg)
	return base58.Encode(sum[:])
}
