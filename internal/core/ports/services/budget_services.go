package services

import (
	"context"

	"github.com/SscSPs/travel_planner_app/internal/core/domain"
	"github.com/SscSPs/travel_planner_app/internal/dto"
)

// BudgetReaderSvc defines read operations on a trip's ledger
type BudgetReaderSvc interface {
	// ListBudgetEntries returns the ledger of a trip, possibly empty.
	ListBudgetEntries(ctx context.Context, tripID string) ([]domain.BudgetEntry, error)
}

// BudgetWriterSvc defines write operations on a trip's ledger
type BudgetWriterSvc interface {
	// CreateBudgetEntry appends an entry to the ledger of an existing trip.
	CreateBudgetEntry(ctx context.Context, tripID string, req dto.CreateBudgetRequest) (*domain.BudgetEntry, error)

	// DeleteBudgetEntry removes an entry of the given trip and returns it.
	DeleteBudgetEntry(ctx context.Context, tripID, budgetID string) (*domain.BudgetEntry, error)
}

// BudgetSvcFacade combines all ledger service interfaces
type BudgetSvcFacade interface {
	BudgetReaderSvc
	BudgetWriterSvc
}

// BudgetSummarySvc computes the spend-vs-budget view of a trip.
type BudgetSummarySvc interface {
	TripBudgetConverterSvc

	// Summarize aggregates the ledger of tripID against its budget. When
	// targetCurrency is set and differs from the reference currency the
	// figures are also converted; a failed conversion is reported in the
	// summary's warning instead of as an error.
	Summarize(ctx context.Context, tripID, targetCurrency string) (*domain.BudgetSummary, error)
}

// TripBudgetConverterSvc re-expresses a trip budget in another currency.
type TripBudgetConverterSvc interface {
	// ConvertTripBudget converts the budget of tripID into currency. Like
	// Summarize, a failed conversion is reported as a warning.
	ConvertTripBudget(ctx context.Context, tripID, currency string) (*domain.TripBudgetConversion, error)
}
