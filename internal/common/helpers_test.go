package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMistToSUI(t *testing.T) {
	assert.Equal(t, "0.000000001", MistToSUI(1))
	assert.Equal(t, "0.024981836", MistToSUI(24981836))
	assert.Equal(t, "12.500000000", MistToSUI(12_500_000_000))
}

func TestFormatBalance(t *testing.T) {
	got, err := FormatBalance("1500000000", NativeCoinType)
	require.NoError(t, err)
	assert.Equal(t, "1.500000000", got)

	got, err = FormatBalance("42", "0xabc::usdc::USDC")
	require.NoError(t, err)
	assert.Equal(t, "42", got)

	_, err = FormatBalance("nope", NativeCoinType)
	assert.Error(t, err)
}
