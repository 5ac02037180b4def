package repositories

import (
	"context"

	"github.com/SscSPs/travel_planner_app/internal/core/domain"
)

// BudgetReader defines read operations on the budget ledger
type BudgetReader interface {
	// ListBudgetEntriesByTrip returns the entries of a trip ordered by date.
	// A trip without entries yields an empty slice and no error.
	ListBudgetEntriesByTrip(ctx context.Context, tripID string) ([]domain.BudgetEntry, error)

	// FindBudgetEntryByID retrieves one entry. Returns apperrors.ErrNotFound when absent.
	FindBudgetEntryByID(ctx context.Context, budgetID string) (*domain.BudgetEntry, error)
}

// BudgetWriter defines write operations on the budget ledger. Entries are
// append-only: there is no update.
type BudgetWriter interface {
	// SaveBudgetEntry appends an entry to the ledger.
	SaveBudgetEntry(ctx context.Context, entry domain.BudgetEntry) error

	// DeleteBudgetEntry removes an entry and returns what was removed.
	DeleteBudgetEntry(ctx context.Context, budgetID string) (*domain.BudgetEntry, error)

	// DeleteBudgetEntriesByTrip removes every entry of a trip and returns how many were removed.
	DeleteBudgetEntriesByTrip(ctx context.Context, tripID string) (int64, error)
}

// BudgetRepositoryFacade combines all ledger repository interfaces
type BudgetRepositoryFacade interface {
	BudgetReader
	BudgetWriter
}
