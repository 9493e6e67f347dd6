package signer

import (
	"crypto/rand"
	"encoding/base64"
	"testing"

	"github.com/AlexZinkM/sui-wallet/internal/keys"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignTransaction(t *testing.T) {
	txBytes := []byte("opaque transaction data")

	for _, scheme := range []keys.Scheme{keys.SchemeEd25519, keys.SchemeSecp256k1, keys.SchemeSecp256r1} {
		t.Run(scheme.String(), func(t *testing.T) {
			secret := make([]byte, 32)
			_, err := rand.Read(secret)
			require.NoError(t, err)
			kp, err := keys.FromSecret(scheme, secret)
			require.NoError(t, err)

			signed, err := SignTransaction(kp, txBytes)
			require.NoError(t, err)
			assert.Equal(t, base64.StdEncoding.EncodeToString(txBytes), signed.Bytes)

			raw, err := base64.StdEncoding.DecodeString(signed.Signature)
			require.NoError(t, err)
			assert.Equal(t, scheme.Flag(), raw[0])
			assert.Len(t, raw, 1+64+len(kp.PublicKey()))

			signer, err := VerifySignature(txBytes, signed.Signature)
			require.NoError(t, err)
			assert.Equal(t, kp.Address(), signer)

			_, err = VerifySignature([]byte("tampered"), signed.Signature)
			assert.Error(t, err)
		})
	}
}

func TestSignTransactionRejectsBadInput(t *testing.T) {
	_, err := SignTransaction(nil, []byte{1})
	assert.Error(t, err)

	kp, err := keys.FromSecret(keys.SchemeEd25519, make([]byte, 32))
	require.NoError(t, err)
	_, err = SignTransaction(kp, nil)
	assert.Error(t, err)
}

func TestIntentDigestIsDeterministic(t *testing.T) {
	assert.Equal(t, IntentDigest([]byte{1, 2, 3}), IntentDigest([]byte{1, 2, 3}))
	assert.NotEqual(t, IntentDigest([]byte{1, 2, 3}), IntentDigest([]byte{1, 2, 4}))
}
