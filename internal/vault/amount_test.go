package vault

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseETH_WholeNumber(t *testing.T) {
	wei, err := ParseETH("1")
	require.NoError(t, err)
	assert.Equal(t, "1000000000000000000", wei.String())
}

func TestParseETH_Fraction(t *testing.T) {
	wei, err := ParseETH("0.5")
	require.NoError(t, err)
	assert.Equal(t, "500000000000000000", wei.String())
}

func TestParseETH_LeadingDot(t *testing.T) {
	wei, err := ParseETH(".5")
	require.NoError(t, err)
	assert.Equal(t, "500000000000000000", wei.String())
}

func TestParseETH_Exact18Decimals(t *testing.T) {
	wei, err := ParseETH("0.000000000000000001")
	require.NoError(t, err)
	assert.Equal(t, "1", wei.String())
}

func TestParseETH_MixedAmount(t *testing.T) {
	wei, err := ParseETH("2.25")
	require.NoError(t, err)
	assert.Equal(t, "2250000000000000000", wei.String())
}

func TestParseETH_RejectsTooManyDecimals(t *testing.T) {
	// 19 fractional digits cannot be represented in wei; must never be
	// silently truncated.
	_, err := ParseETH("0.0000000000000000001")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "18 decimal places")
}

func TestParseETH_RejectsNonNumeric(t *testing.T) {
	for _, bad := range []string{"abc", "1.2.3", "1e18", "-1", "0x10", "1,5", ""} {
		_, err := ParseETH(bad)
		assert.Error(t, err, "input %q", bad)
	}
}

func TestParseETH_RejectsZero(t *testing.T) {
	for _, zero := range []string{"0", "0.0", "0.000"} {
		_, err := ParseETH(zero)
		assert.Error(t, err, "input %q", zero)
	}
}

func TestFormatWei_Whole(t *testing.T) {
	assert.Equal(t, "1", FormatWei(WeiPerETH))
}

func TestFormatWei_TrimsTrailingZeros(t *testing.T) {
	wei, _ := new(big.Int).SetString("990000000000000000", 10)
	assert.Equal(t, "0.99", FormatWei(wei))
}

func TestFormatWei_SmallestUnit(t *testing.T) {
	assert.Equal(t, "0.000000000000000001", FormatWei(big.NewInt(1)))
}

func TestFormatWei_Zero(t *testing.T) {
	assert.Equal(t, "0", FormatWei(big.NewInt(0)))
	assert.Equal(t, "0", FormatWei(nil))
}

func TestFormatWei_RoundTrip(t *testing.T) {
	wei, err := ParseETH("12.345")
	require.NoError(t, err)
	assert.Equal(t, "12.345", FormatWei(wei))
}

func TestIsValidAddress(t *testing.T) {
	assert.True(t, IsValidAddress(ContractAddress))
	assert.True(t, IsValidAddress("0x0000000000000000000000000000000000000000"))

	assert.False(t, IsValidAddress("F917CBB2568917115E35bDe29059b62e8baC8c02"))    // no prefix
	assert.False(t, IsValidAddress("0xF917CBB2568917115E35bDe29059b62e8baC8c0"))   // 39 digits
	assert.False(t, IsValidAddress("0xF917CBB2568917115E35bDe29059b62e8baC8c021")) // 41 digits
	assert.False(t, IsValidAddress("0xG917CBB2568917115E35bDe29059b62e8baC8c02"))  // bad hex
	assert.False(t, IsValidAddress(""))
}

func TestShortAddr(t *testing.T) {
	assert.Equal(t, "0xF917...8c02", ShortAddr(ContractAddress))
	assert.Equal(t, "0xabc", ShortAddr("0xabc"))
}

func TestSidebarAddr(t *testing.T) {
	assert.Equal(t, "0xF917CB...aC8c02", SidebarAddr(ContractAddress))
}

func TestContractAddr(t *testing.T) {
	assert.Equal(t, "0xF917CBB2...8baC8c02", ContractAddr(ContractAddress))
}

func TestPaymentURI(t *testing.T) {
	wei, err := ParseETH("0.01")
	require.NoError(t, err)
	assert.Equal(t,
		"ethereum:0xF917CBB2568917115E35bDe29059b62e8baC8c02@84532?value=10000000000000000",
		PaymentURI(wei))
}
