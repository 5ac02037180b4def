package services

import (
	"context"
	"time"

	"github.com/SscSPs/travel_planner_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CurrencyReaderSvc exposes the supported currency set
type CurrencyReaderSvc interface {
	SupportedCurrencies() []string
	IsSupported(code string) bool
}

// ExchangeRateReaderSvc reads exchange rates from the upstream source
type ExchangeRateReaderSvc interface {
	LatestRates(ctx context.Context, base string) (*domain.ExchangeRates, error)
	HistoricalRates(ctx context.Context, day time.Time, base string) (*domain.ExchangeRates, error)
}

// CurrencyConverterSvc converts amounts between supported currencies
type CurrencyConverterSvc interface {
	// Convert uses live rates only.
	Convert(ctx context.Context, amount decimal.Decimal, from, to string) (*domain.Conversion, error)

	// ConvertWithFallback falls back to a static rate table when live rates
	// cannot be obtained.
	ConvertWithFallback(ctx context.Context, amount decimal.Decimal, from, to string) (*domain.Conversion, error)
}

// CurrencySvcFacade combines all currency-related service interfaces
type CurrencySvcFacade interface {
	CurrencyReaderSvc
	ExchangeRateReaderSvc
	CurrencyConverterSvc
}
