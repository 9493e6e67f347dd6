package common

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	SUIDecimals = 9 // SUI has 9 decimals (MIST)

	// NativeCoinType is the coin type of the native SUI coin
	NativeCoinType = "0x2::sui::SUI"
)

// MistToSUI converts MIST to SUI string without float precision loss
func MistToSUI(mist uint64) string {
	return formatWithDecimals(mist, SUIDecimals)
}

// FormatBalance converts a raw integer balance string as returned by the ledger
// into a decimal string for the given coin type.
// Non-native coins are returned raw since their decimals are not known locally.
func FormatBalance(raw, coinType string) (string, error) {
	value, err := strconv.ParseUint(strings.TrimSpace(raw), 10, 64)
	if err != nil {
		return "", fmt.Errorf("failed to parse balance '%s': %w", raw, err)
	}
	if coinType == "" || coinType == NativeCoinType {
		return MistToSUI(value), nil
	}
	return strconv.FormatUint(value, 10), nil
}

// formatWithDecimals converts integer to decimal string by inserting decimal point
// Example: formatWithDecimals(24981836, 9) = "0.024981836"
func formatWithDecimals(value uint64, decimals int) string {
	s := fmt.Sprintf("%d", value)

	// Pad with leading zeros if needed
	for len(s) <= decimals {
		s = "0" + s
	}

	// Insert decimal point
	pos := len(s) - decimals
	return s[:pos] + "." + s[pos:]
}
