package utils

import (
	"github.com/shopspring/decimal"
)

// zeroDecimalCurrencies are supported currencies whose minor unit is 0 (ISO 4217).
var zeroDecimalCurrencies = map[string]bool{
	"ISK": true,
	"JPY": true,
	"KRW": true,
}

// CurrencyPrecision returns the number of fraction digits used to display amounts in code.
func CurrencyPrecision(code string) int32 {
	if zeroDecimalCurrencies[code] {
		return 0
	}
	return 2
}

// RoundForCurrency rounds amount to the display precision of code.
// Example: 12.3456 EUR returns 12.35, 12.3456 JPY returns 12
func RoundForCurrency(amount decimal.Decimal, code string) decimal.Decimal {
	return amount.Round(CurrencyPrecision(code))
}

// FormatWithCurrencyPrecision formats an amount with the display precision of code.
func FormatWithCurrencyPrecision(amount decimal.Decimal, code string) string {
	return amount.StringFixed(CurrencyPrecision(code))
}
