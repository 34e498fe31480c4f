package utils

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatUSD(t *testing.T) {
	assert.Equal(t, "$49.99", FormatUSD(decimal.RequireFromString("49.99")))
	assert.Equal(t, "$22.50", FormatUSD(decimal.RequireFromString("22.5")))
	assert.Equal(t, "$0.00", FormatUSD(decimal.Zero))
	assert.Equal(t, "-$5.99", FormatUSD(decimal.RequireFromString("-5.99")))
}

func TestFormatAmountRoundsHalfAwayFromZero(t *testing.T) {
	assert.Equal(t, "10.00", FormatAmount(decimal.RequireFromString("9.998")))
	assert.Equal(t, "115.97", FormatAmount(decimal.RequireFromString("115.968")))
	assert.Equal(t, "0.13", FormatAmount(decimal.RequireFromString("0.125")))
}

func TestParseUSD(t *testing.T) {
	cases := map[string]string{
		"$49.99":    "49.99",
		"49.99":     "49.99",
		" $19.99 ":  "19.99",
		"$1,049.99": "1049.99",
		"-$5.00":    "-5",
	}
	for in, want := range cases {
		got, err := ParseUSD(in)
		require.NoError(t, err, in)
		assert.True(t, decimal.RequireFromString(want).Equal(got), "%s: got %s", in, got)
	}
}

func TestParseUSDRejectsGarbage(t *testing.T) {
	_, err := ParseUSD("$")
	assert.Error(t, err)

	_, err = ParseUSD("forty dollars")
	assert.Error(t, err)
}
