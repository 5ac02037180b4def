package services_test

import (
	"context"
	"time"

	"github.com/SscSPs/travel_planner_app/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

// MockTripRepository is a mock type for the TripRepositoryFacade interface
type MockTripRepository struct {
	mock.Mock
}

func (m *MockTripRepository) FindTripByID(ctx context.Context, tripID string) (*domain.Trip, error) {
	args := m.Called(ctx, tripID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Trip), args.Error(1)
}

func (m *MockTripRepository) ListTrips(ctx context.Context, filter domain.TripFilter) ([]domain.Trip, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Trip), args.Error(1)
}

func (m *MockTripRepository) ListTripsByDestination(ctx context.Context, destinationID string) ([]domain.Trip, error) {
	args := m.Called(ctx, destinationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Trip), args.Error(1)
}

func (m *MockTripRepository) SaveTrip(ctx context.Context, trip domain.Trip) error {
	return m.Called(ctx, trip).Error(0)
}

func (m *MockTripRepository) UpdateTrip(ctx context.Context, trip domain.Trip) error {
	return m.Called(ctx, trip).Error(0)
}

func (m *MockTripRepository) DeleteTrip(ctx context.Context, tripID string) error {
	return m.Called(ctx, tripID).Error(0)
}

func (m *MockTripRepository) AddDestination(ctx context.Context, tripID, destinationID string) (*domain.Trip, error) {
	args := m.Called(ctx, tripID, destinationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Trip), args.Error(1)
}

func (m *MockTripRepository) RemoveDestination(ctx context.Context, tripID, destinationID string) (*domain.Trip, error) {
	args := m.Called(ctx, tripID, destinationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Trip), args.Error(1)
}

func (m *MockTripRepository) RemoveDestinationFromAllTrips(ctx context.Context, destinationID string) (int64, error) {
	args := m.Called(ctx, destinationID)
	return args.Get(0).(int64), args.Error(1)
}

// MockDestinationRepository is a mock type for the DestinationRepositoryFacade interface
type MockDestinationRepository struct {
	mock.Mock
}

func (m *MockDestinationRepository) FindDestinationByID(ctx context.Context, destinationID string) (*domain.Destination, error) {
	args := m.Called(ctx, destinationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Destination), args.Error(1)
}

func (m *MockDestinationRepository) FindDestinationsByIDs(ctx context.Context, destinationIDs []string) (map[string]domain.Destination, error) {
	args := m.Called(ctx, destinationIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]domain.Destination), args.Error(1)
}

func (m *MockDestinationRepository) ListDestinations(ctx context.Context) ([]domain.Destination, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Destination), args.Error(1)
}

func (m *MockDestinationRepository) SaveDestination(ctx context.Context, destination domain.Destination) error {
	return m.Called(ctx, destination).Error(0)
}

func (m *MockDestinationRepository) UpdateDestination(ctx context.Context, destination domain.Destination) error {
	return m.Called(ctx, destination).Error(0)
}

func (m *MockDestinationRepository) DeleteDestination(ctx context.Context, destinationID string) error {
	return m.Called(ctx, destinationID).Error(0)
}

// MockBudgetRepository is a mock type for the BudgetRepositoryFacade interface
type MockBudgetRepository struct {
	mock.Mock
}

func (m *MockBudgetRepository) ListBudgetEntriesByTrip(ctx context.Context, tripID string) ([]domain.BudgetEntry, error) {
	args := m.Called(ctx, tripID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.BudgetEntry), args.Error(1)
}

func (m *MockBudgetRepository) FindBudgetEntryByID(ctx context.Context, budgetID string) (*domain.BudgetEntry, error) {
	args := m.Called(ctx, budgetID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BudgetEntry), args.Error(1)
}

func (m *MockBudgetRepository) SaveBudgetEntry(ctx context.Context, entry domain.BudgetEntry) error {
	return m.Called(ctx, entry).Error(0)
}

func (m *MockBudgetRepository) DeleteBudgetEntry(ctx context.Context, budgetID string) (*domain.BudgetEntry, error) {
	args := m.Called(ctx, budgetID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BudgetEntry), args.Error(1)
}

func (m *MockBudgetRepository) DeleteBudgetEntriesByTrip(ctx context.Context, tripID string) (int64, error) {
	args := m.Called(ctx, tripID)
	return args.Get(0).(int64), args.Error(1)
}

// MockExchangeRateProvider is a mock type for the ExchangeRateProvider interface
type MockExchangeRateProvider struct {
	mock.Mock
}

func (m *MockExchangeRateProvider) LatestRates(ctx context.Context, base string, symbols ...string) (*domain.ExchangeRates, error) {
	args := m.Called(ctx, base)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ExchangeRates), args.Error(1)
}

func (m *MockExchangeRateProvider) HistoricalRates(ctx context.Context, day time.Time, base string, symbols ...string) (*domain.ExchangeRates, error) {
	args := m.Called(ctx, day, base)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ExchangeRates), args.Error(1)
}

// MockCurrencyService is a mock type for the CurrencySvcFacade interface
type MockCurrencyService struct {
	mock.Mock
}

func (m *MockCurrencyService) SupportedCurrencies() []string {
	return domain.SupportedCurrencyCodes
}

func (m *MockCurrencyService) IsSupported(code string) bool {
	return domain.IsSupportedCurrency(domain.NormalizeCurrencyCode(code))
}

func (m *MockCurrencyService) LatestRates(ctx context.Context, base string) (*domain.ExchangeRates, error) {
	args := m.Called(ctx, base)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ExchangeRates), args.Error(1)
}

func (m *MockCurrencyService) HistoricalRates(ctx context.Context, day time.Time, base string) (*domain.ExchangeRates, error) {
	args := m.Called(ctx, day, base)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ExchangeRates), args.Error(1)
}

func (m *MockCurrencyService) Convert(ctx context.Context, amount decimal.Decimal, from, to string) (*domain.Conversion, error) {
	args := m.Called(ctx, amount, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Conversion), args.Error(1)
}

func (m *MockCurrencyService) ConvertWithFallback(ctx context.Context, amount decimal.Decimal, from, to string) (*domain.Conversion, error) {
	args := m.Called(ctx, amount, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Conversion), args.Error(1)
}
