package money

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAmount(t *testing.T) {
	tests := []struct {
		name        string
		raw         string
		currency    string
		expected    string
		expectedErr error
	}{
		{name: "Whole rupees", raw: "500", currency: "INR", expected: "500"},
		{name: "Paise", raw: "0.01", currency: "INR", expected: "0.01"},
		{name: "Exponent notation", raw: "1e2", currency: "INR", expected: "100"},
		{name: "Surrounding spaces", raw: " 12.50 ", currency: "INR", expected: "12.5"},
		{name: "Zero", raw: "0", currency: "INR", expectedErr: ErrNotPositive},
		{name: "Negative", raw: "-10", currency: "INR", expectedErr: ErrNotPositive},
		{name: "Not a number", raw: "ten", currency: "INR", expectedErr: ErrNotANumber},
		{name: "Empty", raw: "", currency: "INR", expectedErr: ErrNotANumber},
		{name: "Infinity", raw: "Infinity", currency: "INR", expectedErr: ErrNotANumber},
		{name: "Too precise for INR", raw: "10.005", currency: "INR", expectedErr: ErrTooPrecise},
		{name: "Fraction of yen", raw: "0.5", currency: "JPY", expectedErr: ErrTooPrecise},
		{name: "Three decimals for KWD", raw: "1.125", currency: "KWD", expected: "1.125"},
		{name: "Unknown currency", raw: "10", currency: "XXX", expectedErr: ErrUnsupportedCurrency},
		{name: "Largest storable amount", raw: "999999999999.99", currency: "INR", expected: "999999999999.99"},
		{name: "Column limit", raw: "1e12", currency: "INR", expectedErr: ErrTooLarge},
		{name: "Beyond int64 minor units", raw: "1e17", currency: "INR", expectedErr: ErrTooLarge},
		{name: "Int64 boundary in paise", raw: "92233720368547758.08", currency: "INR", expectedErr: ErrTooLarge},
		{name: "Huge exponent", raw: "1e30", currency: "INR", expectedErr: ErrTooLarge},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			amount, err := ParseAmount(tt.raw, tt.currency)
			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				return
			}
			require.NoError(t, err)
			assert.True(t, decimal.RequireFromString(tt.expected).Equal(amount), "got %s", amount)
		})
	}
}

func TestToMinorUnits(t *testing.T) {
	tests := []struct {
		amount   string
		currency string
		expected int64
	}{
		{"500", "INR", 50000},
		{"0.01", "INR", 1},
		{"1234.56", "USD", 123456},
		{"1500", "JPY", 1500},
		{"2.345", "BHD", 2345},
	}

	for _, tt := range tests {
		t.Run(tt.amount+" "+tt.currency, func(t *testing.T) {
			minor, err := ToMinorUnits(decimal.RequireFromString(tt.amount), tt.currency)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, minor)

			back, err := FromMinorUnits(minor, tt.currency)
			require.NoError(t, err)
			assert.True(t, back.Equal(decimal.RequireFromString(tt.amount)))
		})
	}
}

func TestToMinorUnits_TooLarge(t *testing.T) {
	for _, raw := range []string{"1e12", "1e17", "1e30"} {
		t.Run(raw, func(t *testing.T) {
			minor, err := ToMinorUnits(decimal.RequireFromString(raw), "INR")
			assert.ErrorIs(t, err, ErrTooLarge)
			assert.Zero(t, minor)
		})
	}
}

func TestSupported(t *testing.T) {
	assert.True(t, Supported(DefaultCurrency))
	assert.False(t, Supported("inr"))
	assert.False(t, Supported(""))
}
