package vault

import (
	"fmt"
	"math/big"
	"regexp"
	"strings"
)

// WeiPerETH is the base-unit scale of the native currency.
var WeiPerETH = new(big.Int).Exp(big.NewInt(10), big.NewInt(18), nil)

var addressRe = regexp.MustCompile(`^0x[0-9a-fA-F]{40}$`)

// IsValidAddress reports whether s is a 0x-prefixed 40-hex-digit address.
func IsValidAddress(s string) bool {
	return addressRe.MatchString(s)
}

// ParseETH converts a decimal ETH string to wei exactly. Non-numeric input,
// non-positive amounts, and fractions finer than 18 decimal places are
// rejected — an amount is never silently truncated.
func ParseETH(s string) (*big.Int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, fmt.Errorf("amount is required")
	}

	intPart, fracPart, hasFrac := strings.Cut(s, ".")
	if intPart == "" && fracPart == "" {
		return nil, fmt.Errorf("invalid amount: %q", s)
	}
	if !isDigits(intPart) || (hasFrac && !isDigits(fracPart)) {
		return nil, fmt.Errorf("invalid amount: %q", s)
	}
	if len(fracPart) > 18 {
		return nil, fmt.Errorf("amount %q has more than 18 decimal places", s)
	}

	wei := new(big.Int)
	if intPart != "" {
		n, ok := new(big.Int).SetString(intPart, 10)
		if !ok {
			return nil, fmt.Errorf("invalid amount: %q", s)
		}
		wei.Mul(n, WeiPerETH)
	}
	if fracPart != "" {
		// Right-pad the fraction to 18 digits so "0.5" is 5e17 wei.
		padded := fracPart + strings.Repeat("0", 18-len(fracPart))
		f, ok := new(big.Int).SetString(padded, 10)
		if !ok {
			return nil, fmt.Errorf("invalid amount: %q", s)
		}
		wei.Add(wei, f)
	}

	if wei.Sign() <= 0 {
		return nil, fmt.Errorf("amount must be greater than zero")
	}
	return wei, nil
}

// FormatWei renders a wei amount as a trimmed decimal ETH string:
// 1e18 → "1", 99e16 → "0.99", 1 → "0.000000000000000001".
func FormatWei(wei *big.Int) string {
	if wei == nil {
		return "0"
	}
	quo, rem := new(big.Int).QuoRem(wei, WeiPerETH, new(big.Int))

	if rem.Sign() == 0 {
		return quo.String()
	}

	frac := fmt.Sprintf("%018s", rem.String())
	frac = strings.TrimRight(frac, "0")
	return quo.String() + "." + frac
}

// ShortAddr is the notification display form: first 6 + "..." + last 4.
func ShortAddr(addr string) string {
	if len(addr) <= 10 {
		return addr
	}
	return addr[:6] + "..." + addr[len(addr)-4:]
}

// SidebarAddr is the connected-account display form: first 8 + "..." + last 6.
func SidebarAddr(addr string) string {
	if len(addr) <= 14 {
		return addr
	}
	return addr[:8] + "..." + addr[len(addr)-6:]
}

// ContractAddr is the footer display form: first 10 + "..." + last 8.
func ContractAddr(addr string) string {
	if len(addr) <= 18 {
		return addr
	}
	return addr[:10] + "..." + addr[len(addr)-8:]
}

// PaymentURI builds the EIP-681 request URI for paying wei into the vault,
// e.g. "ethereum:0xF917...@84532?value=10000000000000000".
func PaymentURI(wei *big.Int) string {
	return fmt.Sprintf("ethereum:%s@%d?value=%s", ContractAddress, ChainID, wei.String())
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
