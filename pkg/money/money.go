package money

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

const DefaultCurrency = "INR"

var (
	ErrNotANumber          = errors.New("amount must be a number")
	ErrNotPositive         = errors.New("amount must be greater than zero")
	ErrTooPrecise          = errors.New("amount has more decimal places than the currency allows")
	ErrUnsupportedCurrency = errors.New("unsupported currency")
	ErrTooLarge            = errors.New("amount is too large")
)

// MaxAmount is the exclusive upper bound, matching the NUMERIC(15,3) amount column.
var MaxAmount = decimal.New(1, 12)

// exponents maps ISO 4217 codes to the number of minor-unit digits.
var exponents = map[string]int32{
	"INR": 2,
	"USD": 2,
	"EUR": 2,
	"GBP": 2,
	"AED": 2,
	"SGD": 2,
	"AUD": 2,
	"CAD": 2,
	"JPY": 0,
	"KWD": 3,
	"BHD": 3,
	"OMR": 3,
}

func Supported(currency string) bool {
	_, ok := exponents[currency]
	return ok
}

func Exponent(currency string) (int32, error) {
	exp, ok := exponents[currency]
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrUnsupportedCurrency, currency)
	}
	return exp, nil
}

// ParseAmount turns a client supplied amount into a positive decimal that is
// representable in whole minor units of currency.
func ParseAmount(raw, currency string) (decimal.Decimal, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return decimal.Zero, ErrNotANumber
	}
	amount, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, ErrNotANumber
	}
	if _, err := ToMinorUnits(amount, currency); err != nil {
		return decimal.Zero, err
	}
	return amount, nil
}

// ToMinorUnits converts amount to the smallest currency unit, e.g. rupees to paise.
func ToMinorUnits(amount decimal.Decimal, currency string) (int64, error) {
	exp, err := Exponent(currency)
	if err != nil {
		return 0, err
	}
	if !amount.IsPositive() {
		return 0, ErrNotPositive
	}
	if amount.GreaterThanOrEqual(MaxAmount) {
		return 0, ErrTooLarge
	}
	scaled := amount.Shift(exp)
	// Amounts finer than the minor unit are rejected, never rounded.
	if !scaled.Equal(scaled.Truncate(0)) {
		return 0, ErrTooPrecise
	}
	if !scaled.BigInt().IsInt64() {
		return 0, ErrTooLarge
	}
	return scaled.IntPart(), nil
}

func FromMinorUnits(minor int64, currency string) (decimal.Decimal, error) {
	exp, err := Exponent(currency)
	if err != nil {
		return decimal.Zero, err
	}
	return decimal.New(minor, -exp), nil
}
