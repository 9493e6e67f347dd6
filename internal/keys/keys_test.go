package keys

import (
	"crypto/rand"
	"encoding/base64"
	"encoding/hex"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func randomSecret(t *testing.T) []byte {
	t.Helper()
	secret := make([]byte, 32)
	_, err := rand.Read(secret)
	require.NoError(t, err)
	return secret
}

func TestNormalizeAddress(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"0x2", "0x" + strings.Repeat("0", 63) + "2"},
		{"2", "0x" + strings.Repeat("0", 63) + "2"},
		{"  0XABCDEF ", "0x" + strings.Repeat("0", 58) + "abcdef"},
		{"0x" + strings.Repeat("f", 64), "0x" + strings.Repeat("f", 64)},
	}
	for _, tc := range cases {
		got, err := NormalizeAddress(tc.in)
		require.NoError(t, err, tc.in)
		assert.Equal(t, tc.want, got)

		again, err := NormalizeAddress(got)
		require.NoError(t, err)
		assert.Equal(t, got, again, "normalize must be idempotent")
	}
}

func TestNormalizeAddressRejectsMalformed(t *testing.T) {
	for _, in := range []string{"", "0x", "0xzz", "hello", "0x" + strings.Repeat("a", 65)} {
		_, err := NormalizeAddress(in)
		assert.ErrorIs(t, err, ErrAddressFormatInvalid, in)
	}
}

func TestIsAddressShaped(t *testing.T) {
	assert.True(t, IsAddressShaped("0x1"))
	assert.True(t, IsAddressShaped(" 0XAB"))
	assert.False(t, IsAddressShaped("cafe"))
	assert.False(t, IsAddressShaped("main"))
}

func TestPrivateKeyRoundTrip(t *testing.T) {
	for _, scheme := range []Scheme{SchemeEd25519, SchemeSecp256k1, SchemeSecp256r1} {
		t.Run(scheme.String(), func(t *testing.T) {
			secret := randomSecret(t)

			encoded, err := EncodePrivateKey(scheme, secret)
			require.NoError(t, err)
			assert.True(t, strings.HasPrefix(encoded, PrivateKeyPrefix+"1"))

			gotScheme, gotSecret, err := DecodePrivateKey(encoded)
			require.NoError(t, err)
			assert.Equal(t, scheme, gotScheme)
			assert.Equal(t, secret, gotSecret)

			kp, err := Decode(&Credentials{PrivateKey: encoded})
			require.NoError(t, err)
			assert.Equal(t, scheme, kp.Scheme())
			assert.Equal(t, secret, kp.Secret())

			exported, ok := ExportPrivateKey(kp, FormatBech32)
			require.True(t, ok)
			assert.Equal(t, encoded, exported)
		})
	}
}

func TestDecodeUnknownSchemeIsSoftFailure(t *testing.T) {
	encoded, err := EncodePrivateKey(Scheme(0x07), randomSecret(t))
	require.NoError(t, err)

	_, err = Decode(&Credentials{PrivateKey: encoded})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidCredentialFormat)
	assert.ErrorIs(t, err, ErrUnknownScheme)
}

func TestDecodeLegacyBase64(t *testing.T) {
	secret := randomSecret(t)

	kp, err := Decode(&Credentials{PrivateKey: base64.StdEncoding.EncodeToString(secret)})
	require.NoError(t, err)
	assert.Equal(t, SchemeEd25519, kp.Scheme())
	assert.Equal(t, secret, kp.Secret())

	exported, ok := ExportPrivateKey(kp, FormatBase64)
	require.True(t, ok)
	assert.Equal(t, base64.StdEncoding.EncodeToString(secret), exported)
}

func TestDecodeMalformedPrivateKey(t *testing.T) {
	for _, in := range []string{"not base64!!", base64.StdEncoding.EncodeToString([]byte("short")), "suiprivkey1broken"} {
		_, err := Decode(&Credentials{PrivateKey: in})
		assert.True(t, errors.Is(err, ErrInvalidCredentialFormat), in)
	}
}

func TestBase64ExportOnlyForDefaultScheme(t *testing.T) {
	kp, err := NewSecp256k1Keypair(randomSecret(t))
	require.NoError(t, err)

	_, ok := ExportPrivateKey(kp, FormatBase64)
	assert.False(t, ok)
}

func TestMnemonicDerivationIsDeterministic(t *testing.T) {
	mnemonic, err := GenerateMnemonic()
	require.NoError(t, err)
	assert.Len(t, strings.Fields(mnemonic), 12)

	first, err := KeypairFromMnemonic(mnemonic)
	require.NoError(t, err)
	second, err := Decode(&Credentials{Mnemonic: "  " + strings.ToUpper(mnemonic) + " "})
	require.NoError(t, err)

	assert.Equal(t, SchemeEd25519, first.Scheme())
	assert.Equal(t, first.Address(), second.Address())
}

func TestMnemonicTakesPrecedence(t *testing.T) {
	mnemonic, err := GenerateMnemonic()
	require.NoError(t, err)
	other, err := EncodePrivateKey(SchemeSecp256k1, randomSecret(t))
	require.NoError(t, err)

	fromMnemonic, err := KeypairFromMnemonic(mnemonic)
	require.NoError(t, err)
	kp, err := Decode(&Credentials{Mnemonic: mnemonic, PrivateKey: other})
	require.NoError(t, err)
	assert.Equal(t, fromMnemonic.Address(), kp.Address())
}

func TestInvalidMnemonic(t *testing.T) {
	_, err := KeypairFromMnemonic("abandon abandon abandon")
	assert.ErrorIs(t, err, ErrInvalidCredentialFormat)
}

func TestSLIP10Ed25519Vector(t *testing.T) {
	seed, err := hex.DecodeString("000102030405060708090a0b0c0d0e0f")
	require.NoError(t, err)

	assert.Equal(t, "2b4be7f19ee27bbf30c667b642d5f4aa69fd169872f8fc3059c08ebae2eb19e7",
		hex.EncodeToString(deriveEd25519(seed, nil)))
	assert.Equal(t, "68e0fe46dfb67e368c75379acec591dad19df3cde26e63b93a8e704f1dade7a3",
		hex.EncodeToString(deriveEd25519(seed, []uint32{0})))
}

func TestSignVerify(t *testing.T) {
	msg := []byte("transaction digest")
	for _, scheme := range []Scheme{SchemeEd25519, SchemeSecp256k1, SchemeSecp256r1} {
		t.Run(scheme.String(), func(t *testing.T) {
			kp, err := FromSecret(scheme, randomSecret(t))
			require.NoError(t, err)

			sig, err := kp.Sign(msg)
			require.NoError(t, err)
			assert.Len(t, sig, 64)
			assert.True(t, kp.Verify(msg, sig))
			assert.False(t, kp.Verify([]byte("other"), sig))

			addr, err := NormalizeAddress(kp.Address())
			require.NoError(t, err)
			assert.Equal(t, kp.Address(), addr)
		})
	}
}

func TestPublicKeySizes(t *testing.T) {
	ed, err := NewEd25519Keypair(randomSecret(t))
	require.NoError(t, err)
	assert.Len(t, ed.PublicKey(), 32)

	k1, err := NewSecp256k1Keypair(randomSecret(t))
	require.NoError(t, err)
	assert.Len(t, k1.PublicKey(), 33)

	r1, err := NewSecp256r1Keypair(randomSecret(t))
	require.NoError(t, err)
	assert.Len(t, r1.PublicKey(), 33)
}
