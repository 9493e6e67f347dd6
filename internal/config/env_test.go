package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// unsetEnv clears keys for the duration of the test
func unsetEnv(t *testing.T, keys ...string) {
	t.Helper()
	for _, key := range keys {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
}

func TestInitDefaults(t *testing.T) {
	unsetEnv(t, "PORT", "WALLET_FILE_PATH", "WALLET_SEAL_SECRETS", "RPC_TIMEOUT", "RELAY_RETENTION", "RELAY_SWEEP_INTERVAL")

	require.NoError(t, Init())
	assert.Equal(t, "8080", GetPort())
	assert.Equal(t, "~/.sui-wallet/wallets.yaml", GetWalletFilePath())
	assert.Equal(t, 15*time.Second, GetRPCTimeout())
	assert.Equal(t, 30*time.Minute, Get().RelayRetention)
	assert.Equal(t, 5*time.Minute, Get().RelaySweepInterval)
	assert.False(t, Get().WalletSealSecrets)
}

func TestInitFromEnvironment(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("SUI_RPC_URL", "http://127.0.0.1:9000")
	t.Setenv("RPC_TIMEOUT", "3s")
	t.Setenv("WALLET_SEAL_SECRETS", "true")

	require.NoError(t, Init())
	assert.Equal(t, "9090", GetPort())
	assert.Equal(t, "http://127.0.0.1:9000", GetSuiRPCURL())
	assert.Equal(t, 3*time.Second, GetRPCTimeout())
	assert.True(t, Get().WalletSealSecrets)
}

func TestInitRejectsBadDuration(t *testing.T) {
	t.Setenv("RPC_TIMEOUT", "soon")
	assert.Error(t, Init())
}

func TestPassphraseNotSet(t *testing.T) {
	ClearPassphrase()
	_, err := GetPassphraseBytes()
	assert.Error(t, err)
}
