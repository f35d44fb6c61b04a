package utils

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestFormatAmount(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"500", "500"},
		{"3500", "3,500"},
		{"1234.5", "1,234.5"},
		{"1000000", "1,000,000"},
		{"1234567.89", "1,234,567.89"},
		{"-3500", "-3,500"},
		{"0", "0"},
	}

	for _, tt := range tests {
		got := FormatAmount(decimal.RequireFromString(tt.in))
		assert.Equal(t, tt.want, got, "FormatAmount(%s)", tt.in)
	}
}

func TestFormatAmountWithCurrency(t *testing.T) {
	assert.Equal(t, "3,500 AFN", FormatAmountWithCurrency(decimal.RequireFromString("3500"), "AFN"))
	assert.Equal(t, "1,234.5 USD", FormatAmountWithCurrency(decimal.RequireFromString("1234.5"), "USD"))
}
