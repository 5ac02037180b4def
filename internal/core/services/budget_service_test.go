package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/SscSPs/travel_planner_app/internal/apperrors"
	"github.com/SscSPs/travel_planner_app/internal/core/domain"
	portssvc "github.com/SscSPs/travel_planner_app/internal/core/ports/services"
	"github.com/SscSPs/travel_planner_app/internal/core/services"
	"github.com/SscSPs/travel_planner_app/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type BudgetServiceTestSuite struct {
	suite.Suite
	budgetRepo *MockBudgetRepository
	tripRepo   *MockTripRepository
	service    portssvc.BudgetSvcFacade
}

func (suite *BudgetServiceTestSuite) SetupTest() {
	suite.budgetRepo = new(MockBudgetRepository)
	suite.tripRepo = new(MockTripRepository)
	suite.service = services.NewBudgetService(suite.budgetRepo, suite.tripRepo)
}

func amountPtr(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func (suite *BudgetServiceTestSuite) TestCreateBudgetEntry_Success() {
	ctx := context.Background()
	trip := &domain.Trip{TripID: "trip-1", Name: "Rome", Budget: decimal.NewFromInt(100)}
	suite.tripRepo.On("FindTripByID", ctx, "trip-1").Return(trip, nil).Once()
	suite.budgetRepo.On("SaveBudgetEntry", ctx, mock.AnythingOfType("domain.BudgetEntry")).Return(nil).Once()

	allow := false
	entry, err := suite.service.CreateBudgetEntry(ctx, "trip-1", dto.CreateBudgetRequest{
		Category:      domain.CategoryShopping,
		Amount:        amountPtr("700"),
		Description:   "leather jacket",
		AllowNegative: &allow,
	})

	suite.Require().NoError(err)
	suite.NotEmpty(entry.BudgetID)
	suite.Equal("trip-1", entry.TripID)
	suite.True(decimal.NewFromInt(700).Equal(entry.Amount), "over-budget entries are accepted regardless of allowNegative")
	suite.WithinDuration(time.Now(), entry.Date, time.Second)
	suite.budgetRepo.AssertExpectations(suite.T())
}

func (suite *BudgetServiceTestSuite) TestCreateBudgetEntry_UsesSuppliedDate() {
	ctx := context.Background()
	suite.tripRepo.On("FindTripByID", ctx, "trip-1").Return(&domain.Trip{TripID: "trip-1", Name: "Rome"}, nil).Once()
	suite.budgetRepo.On("SaveBudgetEntry", ctx, mock.AnythingOfType("domain.BudgetEntry")).Return(nil).Once()

	when := time.Date(2025, 3, 4, 0, 0, 0, 0, time.UTC)
	entry, err := suite.service.CreateBudgetEntry(ctx, "trip-1", dto.CreateBudgetRequest{
		Category: domain.CategoryFood,
		Amount:   amountPtr("12.5"),
		Date:     &dto.Date{Time: when},
	})

	suite.Require().NoError(err)
	suite.Equal(when, entry.Date)
}

func (suite *BudgetServiceTestSuite) TestCreateBudgetEntry_InvalidInputLeavesLedgerUnchanged() {
	tests := []struct {
		name string
		req  dto.CreateBudgetRequest
	}{
		{"zero amount", dto.CreateBudgetRequest{Category: domain.CategoryFood, Amount: amountPtr("0")}},
		{"negative amount", dto.CreateBudgetRequest{Category: domain.CategoryFood, Amount: amountPtr("-5")}},
		{"missing amount", dto.CreateBudgetRequest{Category: domain.CategoryFood}},
		{"unknown category", dto.CreateBudgetRequest{Category: "Souvenirs", Amount: amountPtr("5")}},
	}
	for _, tt := range tests {
		suite.Run(tt.name, func() {
			entry, err := suite.service.CreateBudgetEntry(context.Background(), "trip-1", tt.req)

			suite.Nil(entry)
			suite.ErrorIs(err, apperrors.ErrValidation)
		})
	}
	suite.budgetRepo.AssertNotCalled(suite.T(), "SaveBudgetEntry", mock.Anything, mock.Anything)
}

func (suite *BudgetServiceTestSuite) TestCreateBudgetEntry_UnknownTrip() {
	ctx := context.Background()
	suite.tripRepo.On("FindTripByID", ctx, "missing").Return(nil, apperrors.ErrNotFound).Once()

	entry, err := suite.service.CreateBudgetEntry(ctx, "missing", dto.CreateBudgetRequest{
		Category: domain.CategoryFood,
		Amount:   amountPtr("10"),
	})

	suite.Nil(entry)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.budgetRepo.AssertNotCalled(suite.T(), "SaveBudgetEntry", mock.Anything, mock.Anything)
}

func (suite *BudgetServiceTestSuite) TestListBudgetEntries_EmptyIsNotAnError() {
	ctx := context.Background()
	suite.budgetRepo.On("ListBudgetEntriesByTrip", ctx, "trip-1").Return(nil, nil).Once()

	entries, err := suite.service.ListBudgetEntries(ctx, "trip-1")

	suite.NoError(err)
	suite.NotNil(entries)
	suite.Empty(entries)
}

func (suite *BudgetServiceTestSuite) TestListBudgetEntries_RepositoryError() {
	ctx := context.Background()
	suite.budgetRepo.On("ListBudgetEntriesByTrip", ctx, "trip-1").Return(nil, assert.AnError).Once()

	_, err := suite.service.ListBudgetEntries(ctx, "trip-1")

	suite.ErrorIs(err, assert.AnError)
}

func (suite *BudgetServiceTestSuite) TestDeleteBudgetEntry_Success() {
	ctx := context.Background()
	entry := &domain.BudgetEntry{BudgetID: "b-1", TripID: "trip-1", Category: domain.CategoryFood, Amount: decimal.NewFromInt(3)}
	suite.budgetRepo.On("FindBudgetEntryByID", ctx, "b-1").Return(entry, nil).Once()
	suite.budgetRepo.On("DeleteBudgetEntry", ctx, "b-1").Return(entry, nil).Once()

	deleted, err := suite.service.DeleteBudgetEntry(ctx, "trip-1", "b-1")

	suite.Require().NoError(err)
	suite.Equal("b-1", deleted.BudgetID)
	suite.budgetRepo.AssertExpectations(suite.T())
}

func (suite *BudgetServiceTestSuite) TestDeleteBudgetEntry_UnknownEntry() {
	ctx := context.Background()
	suite.budgetRepo.On("FindBudgetEntryByID", ctx, "nope").Return(nil, apperrors.ErrNotFound).Once()

	deleted, err := suite.service.DeleteBudgetEntry(ctx, "trip-1", "nope")

	suite.Nil(deleted)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.budgetRepo.AssertNotCalled(suite.T(), "DeleteBudgetEntry", mock.Anything, mock.Anything)
}

func (suite *BudgetServiceTestSuite) TestDeleteBudgetEntry_EntryOfAnotherTrip() {
	ctx := context.Background()
	entry := &domain.BudgetEntry{BudgetID: "b-1", TripID: "trip-2"}
	suite.budgetRepo.On("FindBudgetEntryByID", ctx, "b-1").Return(entry, nil).Once()

	deleted, err := suite.service.DeleteBudgetEntry(ctx, "trip-1", "b-1")

	suite.Nil(deleted)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.budgetRepo.AssertNotCalled(suite.T(), "DeleteBudgetEntry", mock.Anything, mock.Anything)
}

func TestBudgetServiceTestSuite(t *testing.T) {
	suite.Run(t, new(BudgetServiceTestSuite))
}
