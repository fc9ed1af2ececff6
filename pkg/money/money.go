// Package money provides the monetary primitives shared across the credit
// engine: a validated ISO 4217 currency code and the single rounding function
// every monetary figure must pass through before it is stored or returned.
package money

import (
	"fmt"
	"regexp"

	"github.com/shopspring/decimal"
)

var currencyCodeRe = regexp.MustCompile(`^[A-Z]{3}$`)

// Currency is an ISO 4217 currency code.
type Currency struct {
	code string
}

// NewCurrency creates a Currency after validating the code is exactly 3 uppercase letters.
func NewCurrency(code string) (Currency, error) {
	if !currencyCodeRe.MatchString(code) {
		return Currency{}, fmt.Errorf("invalid currency code %q: must be exactly 3 uppercase letters", code)
	}
	return Currency{code: code}, nil
}

// MustCurrency creates a Currency and panics on error. Intended for package-level
// variable initialization only.
func MustCurrency(code string) Currency {
	c, err := NewCurrency(code)
	if err != nil {
		panic(err)
	}
	return c
}

// Code returns the ISO 4217 currency code.
func (c Currency) Code() string {
	return c.code
}

// String returns the currency code.
func (c Currency) String() string {
	return c.code
}

// IsZero returns true if the currency has not been initialised.
func (c Currency) IsZero() bool {
	return c.code == ""
}

// Common currencies. BOB is the baseline used when a caller omits the code.
var (
	BOB = MustCurrency("BOB")
	USD = MustCurrency("USD")
)

// Round2 quantizes d to exactly 2 fractional digits using round-half-up:
// ties round away from zero, so 0.005 becomes 0.01. Every monetary amount
// the engine produces goes through this function.
func Round2(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}

// Zero2 is 0.00, the canonical zero for rounded monetary amounts.
func Zero2() decimal.Decimal {
	return decimal.Zero.Round(2)
}
