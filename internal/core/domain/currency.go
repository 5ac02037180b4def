package domain

import (
	"slices"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// ReferenceCurrency is the currency every Trip budget and ledger amount is denominated in.
const ReferenceCurrency = "EUR"

// ReferencePrecision is the number of fraction digits a ReferenceCurrency
// amount may carry. Stored amounts never need rounding.
const ReferencePrecision int32 = 2

// fitsReferencePrecision reports whether d has no digits beyond ReferencePrecision.
func fitsReferencePrecision(d decimal.Decimal) bool {
	return d.Equal(d.Round(ReferencePrecision))
}

// SupportedCurrencyCodes is the single, server-owned list of currencies the
// application converts between. Clients fetch it from the API.
var SupportedCurrencyCodes = []string{
	"AUD", "BGN", "BRL", "CAD", "CHF", "CNY", "CZK", "DKK", "EUR", "GBP",
	"HKD", "HUF", "IDR", "ILS", "INR", "ISK", "JPY", "KRW", "MXN", "MYR",
	"NOK", "NZD", "PHP", "PLN", "RON", "SEK", "SGD", "THB", "TRY", "USD",
	"ZAR",
}

// NormalizeCurrencyCode trims and upper-cases a currency code.
func NormalizeCurrencyCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// IsSupportedCurrency reports whether code (already normalized) is in SupportedCurrencyCodes.
func IsSupportedCurrency(code string) bool {
	_, found := slices.BinarySearch(SupportedCurrencyCodes, code)
	return found
}

// RateSource tells where a conversion rate came from.
type RateSource string

const (
	RateSourceIdentity RateSource = "identity"
	RateSourceLive     RateSource = "live"
	RateSourceFallback RateSource = "fallback"
)

// ExchangeRates is a snapshot of quotes against one base currency.
type ExchangeRates struct {
	Base  string                     `json:"base"`
	Date  string                     `json:"date"`
	Rates map[string]decimal.Decimal `json:"rates"`
}

// Conversion is the outcome of converting an amount between two currencies.
type Conversion struct {
	Amount          decimal.Decimal
	From            string
	To              string
	ConvertedAmount decimal.Decimal
	Rate            decimal.Decimal
	Source          RateSource
	AsOf            time.Time
}
