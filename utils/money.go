package utils

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// FormatAmount renders an amount with exactly two decimals (e.g., "115.97").
// Rounds half away from zero.
func FormatAmount(amount decimal.Decimal) string {
	return amount.StringFixed(2)
}

// FormatUSD formats an amount as a catalog price string like "$49.99".
func FormatUSD(amount decimal.Decimal) string {
	if amount.IsNegative() {
		return "-$" + FormatAmount(amount.Neg())
	}
	return "$" + FormatAmount(amount)
}

// ParseUSD parses a catalog price string ("$49.99", "49.99", "$1,049.99") into a decimal amount.
func ParseUSD(price string) (decimal.Decimal, error) {
	s := strings.TrimSpace(price)
	neg := strings.HasPrefix(s, "-")
	s = strings.TrimPrefix(s, "-")
	s = strings.TrimPrefix(s, "$")
	s = strings.ReplaceAll(s, ",", "")
	if s == "" {
		return decimal.Zero, fmt.Errorf("empty price")
	}

	amount, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid price %q: %w", price, err)
	}
	if neg {
		amount = amount.Neg()
	}
	return amount, nil
}
