package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/SscSPs/travel_planner_app/internal/apperrors"
	"github.com/SscSPs/travel_planner_app/internal/core/domain"
	portssvc "github.com/SscSPs/travel_planner_app/internal/core/ports/services"
	"github.com/SscSPs/travel_planner_app/internal/core/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type BudgetSummaryServiceTestSuite struct {
	suite.Suite
	tripRepo   *MockTripRepository
	budgetRepo *MockBudgetRepository
	currency   *MockCurrencyService
	service    portssvc.BudgetSummarySvc
}

func (suite *BudgetSummaryServiceTestSuite) SetupTest() {
	suite.tripRepo = new(MockTripRepository)
	suite.budgetRepo = new(MockBudgetRepository)
	suite.currency = new(MockCurrencyService)
	suite.service = services.NewBudgetSummaryService(suite.tripRepo, suite.budgetRepo, suite.currency)
}

func ledgerEntry(category domain.BudgetCategory, amount string) domain.BudgetEntry {
	return domain.BudgetEntry{
		BudgetID: string(category) + amount,
		TripID:   "t-1",
		Category: category,
		Amount:   decimal.RequireFromString(amount),
		Date:     time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC),
	}
}

func (suite *BudgetSummaryServiceTestSuite) givenTrip(budget string, entries ...domain.BudgetEntry) {
	trip := &domain.Trip{TripID: "t-1", Name: "Kyoto", Budget: decimal.RequireFromString(budget)}
	suite.tripRepo.On("FindTripByID", mock.Anything, "t-1").Return(trip, nil)
	if entries == nil {
		entries = []domain.BudgetEntry{}
	}
	suite.budgetRepo.On("ListBudgetEntriesByTrip", mock.Anything, "t-1").Return(entries, nil)
}

func (suite *BudgetSummaryServiceTestSuite) TestSummarize_ReferenceCurrency() {
	suite.givenTrip("1000",
		ledgerEntry(domain.CategoryFood, "150"),
		ledgerEntry(domain.CategoryFood, "50"),
		ledgerEntry(domain.CategoryTransportation, "300"))

	for _, currency := range []string{"", "EUR", "eur"} {
		summary, err := suite.service.Summarize(context.Background(), "t-1", currency)

		suite.Require().NoError(err)
		suite.True(decimal.NewFromInt(500).Equal(summary.TotalSpent))
		suite.True(decimal.NewFromInt(500).Equal(summary.Remaining))
		suite.Len(summary.ByCategory, 2)
		suite.Nil(summary.ConvertedValues)
		suite.Empty(summary.Warning)
	}
	suite.currency.AssertNotCalled(suite.T(), "ConvertWithFallback", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *BudgetSummaryServiceTestSuite) TestSummarize_OverBudget() {
	suite.givenTrip("1000",
		ledgerEntry(domain.CategoryFood, "150"),
		ledgerEntry(domain.CategoryFood, "50"),
		ledgerEntry(domain.CategoryTransportation, "300"),
		ledgerEntry(domain.CategoryShopping, "700"))

	summary, err := suite.service.Summarize(context.Background(), "t-1", "")

	suite.Require().NoError(err)
	suite.True(decimal.NewFromInt(-200).Equal(summary.Remaining))
}

func (suite *BudgetSummaryServiceTestSuite) TestSummarize_EmptyLedgerZeroBudget() {
	suite.givenTrip("0")

	summary, err := suite.service.Summarize(context.Background(), "t-1", "")

	suite.Require().NoError(err)
	suite.True(summary.Budget.IsZero())
	suite.True(summary.TotalSpent.IsZero())
	suite.True(summary.Remaining.IsZero())
	suite.Empty(summary.ByCategory)
}

func (suite *BudgetSummaryServiceTestSuite) TestSummarize_Converted() {
	suite.givenTrip("1000", ledgerEntry(domain.CategoryFood, "200"))
	rate := decimal.RequireFromString("166.31")
	suite.currency.On("ConvertWithFallback", mock.Anything, decimal.NewFromInt(1), "EUR", "JPY").
		Return(&domain.Conversion{Rate: rate, Source: domain.RateSourceLive}, nil).Once()

	summary, err := suite.service.Summarize(context.Background(), "t-1", "jpy")

	suite.Require().NoError(err)
	suite.Require().NotNil(summary.ConvertedValues)
	suite.Equal("JPY", summary.ConvertedValues.Currency)
	suite.Equal(domain.RateSourceLive, summary.ConvertedValues.Source)
	suite.True(decimal.RequireFromString("166310").Equal(summary.ConvertedValues.Budget))
	suite.True(decimal.RequireFromString("33262").Equal(summary.ConvertedValues.TotalSpent))
	suite.True(decimal.RequireFromString("133048").Equal(summary.ConvertedValues.Remaining))
	suite.Empty(summary.Warning)
	suite.Equal("EUR", summary.Currency)
}

func (suite *BudgetSummaryServiceTestSuite) TestSummarize_FallbackRateAddsWarning() {
	suite.givenTrip("100")
	suite.currency.On("ConvertWithFallback", mock.Anything, decimal.NewFromInt(1), "EUR", "USD").
		Return(&domain.Conversion{Rate: decimal.RequireFromString("1.07"), Source: domain.RateSourceFallback}, nil).Once()

	summary, err := suite.service.Summarize(context.Background(), "t-1", "USD")

	suite.Require().NoError(err)
	suite.Require().NotNil(summary.ConvertedValues)
	suite.Equal(domain.RateSourceFallback, summary.ConvertedValues.Source)
	suite.NotEmpty(summary.Warning)
}

func (suite *BudgetSummaryServiceTestSuite) TestSummarize_ConversionFailureIsSoft() {
	suite.givenTrip("100", ledgerEntry(domain.CategoryOther, "10"))
	suite.currency.On("ConvertWithFallback", mock.Anything, mock.Anything, "EUR", "SEK").
		Return(nil, apperrors.NewConversionError("status 503", nil)).Once()

	summary, err := suite.service.Summarize(context.Background(), "t-1", "SEK")

	suite.Require().NoError(err)
	suite.Nil(summary.ConvertedValues)
	suite.Contains(summary.Warning, "SEK")
	suite.True(decimal.NewFromInt(90).Equal(summary.Remaining))
}

func (suite *BudgetSummaryServiceTestSuite) TestSummarize_UnsupportedCurrency() {
	suite.givenTrip("100", ledgerEntry(domain.CategoryFood, "10"))

	summary, err := suite.service.Summarize(context.Background(), "t-1", "XXX")

	suite.Nil(summary)
	suite.ErrorIs(err, apperrors.ErrUnsupportedCurrency)
	suite.currency.AssertNotCalled(suite.T(), "ConvertWithFallback", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *BudgetSummaryServiceTestSuite) TestSummarize_UnknownTripBeforeCurrency() {
	tests := []struct {
		name     string
		currency string
	}{
		{"unsupported currency", "XXX"},
		{"malformed currency", "euro"},
		{"supported currency", "JPY"},
	}
	for _, tc := range tests {
		suite.Run(tc.name, func() {
			suite.SetupTest()
			suite.tripRepo.On("FindTripByID", mock.Anything, "nope").Return(nil, apperrors.ErrNotFound).Once()
			suite.budgetRepo.On("ListBudgetEntriesByTrip", mock.Anything, "nope").Return([]domain.BudgetEntry{}, nil).Once()

			_, err := suite.service.Summarize(context.Background(), "nope", tc.currency)

			suite.ErrorIs(err, apperrors.ErrNotFound)
			suite.NotErrorIs(err, apperrors.ErrUnsupportedCurrency)
		})
	}
}

func (suite *BudgetSummaryServiceTestSuite) TestSummarize_TripErrorWins() {
	suite.tripRepo.On("FindTripByID", mock.Anything, "nope").Return(nil, apperrors.ErrNotFound).Once()
	suite.budgetRepo.On("ListBudgetEntriesByTrip", mock.Anything, "nope").Return(nil, assert.AnError).Once()

	_, err := suite.service.Summarize(context.Background(), "nope", "")

	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *BudgetSummaryServiceTestSuite) TestSummarize_LedgerError() {
	suite.tripRepo.On("FindTripByID", mock.Anything, "t-1").Return(&domain.Trip{TripID: "t-1"}, nil).Once()
	suite.budgetRepo.On("ListBudgetEntriesByTrip", mock.Anything, "t-1").Return(nil, assert.AnError).Once()

	_, err := suite.service.Summarize(context.Background(), "t-1", "")

	suite.ErrorIs(err, assert.AnError)
	suite.NotErrorIs(err, apperrors.ErrNotFound)
}

func (suite *BudgetSummaryServiceTestSuite) TestConvertTripBudget() {
	suite.tripRepo.On("FindTripByID", mock.Anything, "t-1").Return(&domain.Trip{TripID: "t-1", Budget: decimal.NewFromInt(1000)}, nil).Once()
	suite.currency.On("ConvertWithFallback", mock.Anything, decimal.NewFromInt(1000), "EUR", "JPY").
		Return(&domain.Conversion{ConvertedAmount: decimal.NewFromInt(167500), Rate: decimal.RequireFromString("167.5"), Source: domain.RateSourceFallback}, nil).Once()

	result, err := suite.service.ConvertTripBudget(context.Background(), "t-1", "JPY")

	suite.Require().NoError(err)
	suite.Require().NotNil(result.Conversion)
	suite.True(decimal.NewFromInt(167500).Equal(result.Conversion.ConvertedAmount))
	suite.NotEmpty(result.Warning)
}

func (suite *BudgetSummaryServiceTestSuite) TestConvertTripBudget_UnknownTrip() {
	suite.tripRepo.On("FindTripByID", mock.Anything, "nope").Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.ConvertTripBudget(context.Background(), "nope", "JPY")

	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *BudgetSummaryServiceTestSuite) TestConvertTripBudget_UnknownTripWithUnsupportedCurrency() {
	suite.tripRepo.On("FindTripByID", mock.Anything, "nope").Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.ConvertTripBudget(context.Background(), "nope", "XXX")

	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func TestBudgetSummaryServiceTestSuite(t *testing.T) {
	suite.Run(t, new(BudgetSummaryServiceTestSuite))
}
