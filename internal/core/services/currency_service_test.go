package services_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/SscSPs/travel_planner_app/internal/apperrors"
	"github.com/SscSPs/travel_planner_app/internal/core/domain"
	portssvc "github.com/SscSPs/travel_planner_app/internal/core/ports/services"
	"github.com/SscSPs/travel_planner_app/internal/core/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type CurrencyServiceTestSuite struct {
	suite.Suite
	provider *MockExchangeRateProvider
	service  portssvc.CurrencySvcFacade
	now      time.Time
}

func (suite *CurrencyServiceTestSuite) SetupTest() {
	suite.provider = new(MockExchangeRateProvider)
	suite.now = time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC)
	suite.service = services.NewCurrencyService(suite.provider,
		services.WithRateCache(16, time.Minute),
		services.WithClock(func() time.Time { return suite.now }),
	)
}

func eurRates() *domain.ExchangeRates {
	return &domain.ExchangeRates{
		Base: "EUR",
		Date: "2025-06-13",
		Rates: map[string]decimal.Decimal{
			"USD": decimal.RequireFromString("1.1512"),
			"JPY": decimal.RequireFromString("166.31"),
		},
	}
}

func (suite *CurrencyServiceTestSuite) TestSupportedCurrencies() {
	codes := suite.service.SupportedCurrencies()

	suite.Contains(codes, "EUR")
	suite.Contains(codes, "USD")
	suite.Contains(codes, "JPY")
	suite.True(suite.service.IsSupported(" gbp "))
	suite.False(suite.service.IsSupported("XXX"))

	codes[0] = "ZZZ"
	suite.NotEqual("ZZZ", suite.service.SupportedCurrencies()[0], "callers must not be able to mutate the supported set")
}

func (suite *CurrencyServiceTestSuite) TestConvert_SameCurrencyNeedsNoLookup() {
	amount := decimal.RequireFromString("123.45")

	conv, err := suite.service.Convert(context.Background(), amount, "eur", "EUR")

	suite.Require().NoError(err)
	suite.True(amount.Equal(conv.ConvertedAmount))
	suite.Equal(domain.RateSourceIdentity, conv.Source)
	suite.provider.AssertNotCalled(suite.T(), "LatestRates", mock.Anything, mock.Anything)
}

func (suite *CurrencyServiceTestSuite) TestConvert_UnsupportedCurrency() {
	_, err := suite.service.Convert(context.Background(), decimal.NewFromInt(1), "EUR", "XXX")
	suite.ErrorIs(err, apperrors.ErrUnsupportedCurrency)

	_, err = suite.service.ConvertWithFallback(context.Background(), decimal.NewFromInt(1), "XXX", "EUR")
	suite.ErrorIs(err, apperrors.ErrUnsupportedCurrency)

	suite.provider.AssertNotCalled(suite.T(), "LatestRates", mock.Anything, mock.Anything)
}

func (suite *CurrencyServiceTestSuite) TestConvert_LiveRateIsCached() {
	suite.provider.On("LatestRates", mock.Anything, "EUR").Return(eurRates(), nil).Once()

	first, err := suite.service.Convert(context.Background(), decimal.NewFromInt(100), "EUR", "USD")
	suite.Require().NoError(err)
	second, err := suite.service.Convert(context.Background(), decimal.NewFromInt(2), "EUR", "JPY")
	suite.Require().NoError(err)

	suite.Equal(domain.RateSourceLive, first.Source)
	suite.True(decimal.RequireFromString("115.12").Equal(first.ConvertedAmount))
	suite.Equal("2025-06-13", first.AsOf.Format(time.DateOnly))
	suite.True(decimal.RequireFromString("332.62").Equal(second.ConvertedAmount))
	suite.provider.AssertExpectations(suite.T())
}

func (suite *CurrencyServiceTestSuite) TestConvert_ConcurrentLookupsShareOneUpstreamCall() {
	release := make(chan time.Time)
	suite.provider.On("LatestRates", mock.Anything, "EUR").
		WaitUntil(release).
		Return(eurRates(), nil).Once()

	var wg sync.WaitGroup
	errs := make(chan error, 5)
	for i := 0; i < 5; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := suite.service.Convert(context.Background(), decimal.NewFromInt(1), "EUR", "USD")
			errs <- err
		}()
	}
	time.Sleep(50 * time.Millisecond)
	close(release)
	wg.Wait()
	close(errs)

	for err := range errs {
		suite.NoError(err)
	}
	suite.provider.AssertNumberOfCalls(suite.T(), "LatestRates", 1)
}

func (suite *CurrencyServiceTestSuite) TestConvert_MissingQuoteIsConversionError() {
	suite.provider.On("LatestRates", mock.Anything, "EUR").Return(eurRates(), nil).Once()

	_, err := suite.service.Convert(context.Background(), decimal.NewFromInt(1), "EUR", "GBP")

	suite.ErrorIs(err, apperrors.ErrConversion)
}

func (suite *CurrencyServiceTestSuite) TestConvert_UpstreamFailure() {
	suite.provider.On("LatestRates", mock.Anything, "EUR").
		Return(nil, apperrors.NewConversionError("status 503", nil)).Once()

	_, err := suite.service.Convert(context.Background(), decimal.NewFromInt(1), "EUR", "USD")

	suite.ErrorIs(err, apperrors.ErrConversion)
}

func (suite *CurrencyServiceTestSuite) TestConvertWithFallback() {
	down := apperrors.NewConversionError("status 503", nil)
	suite.provider.On("LatestRates", mock.Anything, mock.Anything).Return(nil, down)

	tests := []struct {
		name     string
		from, to string
		wantRate string
	}{
		{"direct EUR pair", "EUR", "JPY", "167.5"},
		{"direct USD pair", "USD", "GBP", "0.79"},
		{"EUR to USD uses its own entry", "EUR", "USD", "1.07"},
		{"inverse pair", "GBP", "EUR", "1.1764705882352941"},
	}
	for _, tt := range tests {
		suite.Run(tt.name, func() {
			conv, err := suite.service.ConvertWithFallback(context.Background(), decimal.NewFromInt(10), tt.from, tt.to)

			suite.Require().NoError(err)
			suite.Equal(domain.RateSourceFallback, conv.Source)
			suite.True(decimal.RequireFromString(tt.wantRate).Equal(conv.Rate), "rate %s", conv.Rate)
			suite.True(conv.Rate.Mul(decimal.NewFromInt(10)).Equal(conv.ConvertedAmount))
		})
	}
}

func (suite *CurrencyServiceTestSuite) TestConvertWithFallback_NoFallbackForPair() {
	suite.provider.On("LatestRates", mock.Anything, "GBP").
		Return(nil, apperrors.NewConversionError("status 503", nil)).Once()

	conv, err := suite.service.ConvertWithFallback(context.Background(), decimal.NewFromInt(1), "GBP", "SEK")

	suite.Nil(conv)
	suite.ErrorIs(err, apperrors.ErrConversion)
}

func (suite *CurrencyServiceTestSuite) TestConvertWithFallback_PrefersLiveRate() {
	suite.provider.On("LatestRates", mock.Anything, "EUR").Return(eurRates(), nil).Once()

	conv, err := suite.service.ConvertWithFallback(context.Background(), decimal.NewFromInt(1), "EUR", "USD")

	suite.Require().NoError(err)
	suite.Equal(domain.RateSourceLive, conv.Source)
	suite.True(decimal.RequireFromString("1.1512").Equal(conv.Rate))
}

func (suite *CurrencyServiceTestSuite) TestLatestRates() {
	suite.provider.On("LatestRates", mock.Anything, "EUR").Return(eurRates(), nil).Once()

	rates, err := suite.service.LatestRates(context.Background(), "eur")
	suite.Require().NoError(err)
	suite.Equal("EUR", rates.Base)
	delete(rates.Rates, "USD")

	again, err := suite.service.LatestRates(context.Background(), "EUR")
	suite.Require().NoError(err)
	suite.Contains(again.Rates, "USD", "cached rates must not be mutated through a returned value")

	_, err = suite.service.LatestRates(context.Background(), "ABC")
	suite.ErrorIs(err, apperrors.ErrUnsupportedCurrency)
}

func (suite *CurrencyServiceTestSuite) TestHistoricalRates() {
	day := time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)
	suite.provider.On("HistoricalRates", mock.Anything, day, "USD").
		Return(&domain.ExchangeRates{Base: "USD", Date: "2024-01-02", Rates: map[string]decimal.Decimal{"EUR": decimal.RequireFromString("0.91")}}, nil).Once()

	rates, err := suite.service.HistoricalRates(context.Background(), day, "USD")
	suite.Require().NoError(err)
	suite.Equal("2024-01-02", rates.Date)

	_, err = suite.service.HistoricalRates(context.Background(), suite.now.Add(48*time.Hour), "USD")
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func TestCurrencyServiceTestSuite(t *testing.T) {
	suite.Run(t, new(CurrencyServiceTestSuite))
}
