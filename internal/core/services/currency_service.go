package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"maps"
	"time"

	"github.com/SscSPs/travel_planner_app/internal/apperrors"
	"github.com/SscSPs/travel_planner_app/internal/core/domain"
	portsrepo "github.com/SscSPs/travel_planner_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/travel_planner_app/internal/core/ports/services"
	"github.com/hashicorp/golang-lru/v2/expirable"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/singleflight"
)

const (
	defaultRateCacheSize = 256
	defaultRateCacheTTL  = 10 * time.Minute
)

// fallbackRates are used when live rates cannot be fetched. Pairs missing
// here are derived from their inverse.
var fallbackRates = map[string]map[string]decimal.Decimal{
	"EUR": {
		"USD": decimal.RequireFromString("1.07"),
		"JPY": decimal.RequireFromString("167.5"),
		"GBP": decimal.RequireFromString("0.85"),
		"CHF": decimal.RequireFromString("0.97"),
		"CAD": decimal.RequireFromString("1.46"),
		"AUD": decimal.RequireFromString("1.63"),
		"CNY": decimal.RequireFromString("7.85"),
	},
	"USD": {
		"EUR": decimal.RequireFromString("0.93"),
		"JPY": decimal.RequireFromString("156.5"),
		"GBP": decimal.RequireFromString("0.79"),
		"CHF": decimal.RequireFromString("0.91"),
		"CAD": decimal.RequireFromString("1.36"),
		"AUD": decimal.RequireFromString("1.52"),
		"CNY": decimal.RequireFromString("7.23"),
	},
}

// currencyService implements the CurrencySvcFacade interface
type currencyService struct {
	BaseService
	provider portsrepo.ExchangeRateProvider
	cache    *expirable.LRU[string, *domain.ExchangeRates]
	group    singleflight.Group
	now      func() time.Time
}

// CurrencyServiceOption is a functional option for configuring the currency service
type CurrencyServiceOption func(*currencyService)

// WithRateCache sizes the read-through cache of live rates.
func WithRateCache(size int, ttl time.Duration) CurrencyServiceOption {
	return func(s *currencyService) {
		s.cache = expirable.NewLRU[string, *domain.ExchangeRates](size, nil, ttl)
	}
}

// WithClock overrides the time source.
func WithClock(now func() time.Time) CurrencyServiceOption {
	return func(s *currencyService) {
		s.now = now
	}
}

// NewCurrencyService creates a currency service reading rates from provider.
func NewCurrencyService(provider portsrepo.ExchangeRateProvider, options ...CurrencyServiceOption) portssvc.CurrencySvcFacade {
	svc := &currencyService{
		provider: provider,
		now:      time.Now,
	}
	for _, option := range options {
		option(svc)
	}
	if svc.cache == nil {
		svc.cache = expirable.NewLRU[string, *domain.ExchangeRates](defaultRateCacheSize, nil, defaultRateCacheTTL)
	}
	return svc
}

var _ portssvc.CurrencySvcFacade = (*currencyService)(nil)

func (s *currencyService) SupportedCurrencies() []string {
	return append([]string(nil), domain.SupportedCurrencyCodes...)
}

func (s *currencyService) IsSupported(code string) bool {
	return domain.IsSupportedCurrency(domain.NormalizeCurrencyCode(code))
}

func (s *currencyService) LatestRates(ctx context.Context, base string) (*domain.ExchangeRates, error) {
	base = domain.NormalizeCurrencyCode(base)
	if !domain.IsSupportedCurrency(base) {
		return nil, apperrors.NewUnsupportedCurrencyError(base)
	}
	rates, err := s.cachedRates(ctx, base, "latest", func(ctx context.Context) (*domain.ExchangeRates, error) {
		return s.provider.LatestRates(ctx, base)
	})
	if err != nil {
		return nil, err
	}
	return cloneRates(rates), nil
}

func (s *currencyService) HistoricalRates(ctx context.Context, day time.Time, base string) (*domain.ExchangeRates, error) {
	base = domain.NormalizeCurrencyCode(base)
	if !domain.IsSupportedCurrency(base) {
		return nil, apperrors.NewUnsupportedCurrencyError(base)
	}
	if day.After(s.now()) {
		return nil, apperrors.NewValidationError("date must not be in the future")
	}
	key := day.Format(time.DateOnly)
	rates, err := s.cachedRates(ctx, base, key, func(ctx context.Context) (*domain.ExchangeRates, error) {
		return s.provider.HistoricalRates(ctx, day, base)
	})
	if err != nil {
		return nil, err
	}
	return cloneRates(rates), nil
}

func (s *currencyService) Convert(ctx context.Context, amount decimal.Decimal, from, to string) (*domain.Conversion, error) {
	from = domain.NormalizeCurrencyCode(from)
	to = domain.NormalizeCurrencyCode(to)
	if err := checkPair(from, to); err != nil {
		return nil, err
	}

	if from == to {
		return &domain.Conversion{
			Amount:          amount,
			From:            from,
			To:              to,
			ConvertedAmount: amount,
			Rate:            decimal.NewFromInt(1),
			Source:          domain.RateSourceIdentity,
			AsOf:            s.now(),
		}, nil
	}

	rates, err := s.cachedRates(ctx, from, "latest", func(ctx context.Context) (*domain.ExchangeRates, error) {
		return s.provider.LatestRates(ctx, from)
	})
	if err != nil {
		return nil, err
	}
	rate, ok := rates.Rates[to]
	if !ok || !rate.IsPositive() {
		return nil, apperrors.NewConversionError(fmt.Sprintf("no %s quote in %s rates", to, from), nil)
	}

	asOf, err := time.Parse(time.DateOnly, rates.Date)
	if err != nil {
		asOf = s.now()
	}
	return &domain.Conversion{
		Amount:          amount,
		From:            from,
		To:              to,
		ConvertedAmount: amount.Mul(rate),
		Rate:            rate,
		Source:          domain.RateSourceLive,
		AsOf:            asOf,
	}, nil
}

func (s *currencyService) ConvertWithFallback(ctx context.Context, amount decimal.Decimal, from, to string) (*domain.Conversion, error) {
	conversion, err := s.Convert(ctx, amount, from, to)
	if err == nil || !errors.Is(err, apperrors.ErrConversion) {
		return conversion, err
	}

	from = domain.NormalizeCurrencyCode(from)
	to = domain.NormalizeCurrencyCode(to)
	rate, ok := fallbackRate(from, to)
	if !ok {
		s.LogWarn(ctx, err, "Live rate unavailable and no fallback rate known",
			slog.String("from", from), slog.String("to", to))
		return nil, err
	}

	s.LogWarn(ctx, err, "Live rate unavailable, using fallback rate",
		slog.String("from", from), slog.String("to", to), slog.String("rate", rate.String()))
	return &domain.Conversion{
		Amount:          amount,
		From:            from,
		To:              to,
		ConvertedAmount: amount.Mul(rate),
		Rate:            rate,
		Source:          domain.RateSourceFallback,
		AsOf:            s.now(),
	}, nil
}

// cachedRates serves base's rates for key from the cache, collapsing
// concurrent misses into a single upstream call. The upstream call is
// detached from ctx so one caller giving up does not fail the others; the
// provider's own timeout still bounds it.
func (s *currencyService) cachedRates(ctx context.Context, base, key string, fetch func(context.Context) (*domain.ExchangeRates, error)) (*domain.ExchangeRates, error) {
	cacheKey := base + "@" + key
	if rates, ok := s.cache.Get(cacheKey); ok {
		return rates, nil
	}

	ch := s.group.DoChan(cacheKey, func() (any, error) {
		rates, err := fetch(context.WithoutCancel(ctx))
		if err != nil {
			return nil, err
		}
		s.cache.Add(cacheKey, rates)
		return rates, nil
	})

	select {
	case <-ctx.Done():
		return nil, apperrors.NewConversionError("exchange rate lookup cancelled", ctx.Err())
	case res := <-ch:
		if res.Err != nil {
			if errors.Is(res.Err, apperrors.ErrConversion) {
				return nil, res.Err
			}
			return nil, apperrors.NewConversionError("exchange rate lookup failed", res.Err)
		}
		return res.Val.(*domain.ExchangeRates), nil
	}
}

func checkPair(from, to string) error {
	if !domain.IsSupportedCurrency(from) {
		return apperrors.NewUnsupportedCurrencyError(from)
	}
	if !domain.IsSupportedCurrency(to) {
		return apperrors.NewUnsupportedCurrencyError(to)
	}
	return nil
}

func fallbackRate(from, to string) (decimal.Decimal, bool) {
	if from == to {
		return decimal.NewFromInt(1), true
	}
	if rate, ok := fallbackRates[from][to]; ok {
		return rate, true
	}
	if inverse, ok := fallbackRates[to][from]; ok {
		return decimal.NewFromInt(1).Div(inverse), true
	}
	return decimal.Decimal{}, false
}

func cloneRates(r *domain.ExchangeRates) *domain.ExchangeRates {
	return &domain.ExchangeRates{Base: r.Base, Date: r.Date, Rates: maps.Clone(r.Rates)}
}
