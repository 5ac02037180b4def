package memory

import (
	"context"
	"slices"
	"sort"
	"sync"

	"github.com/SscSPs/travel_planner_app/internal/apperrors"
	"github.com/SscSPs/travel_planner_app/internal/core/domain"
	portsrepo "github.com/SscSPs/travel_planner_app/internal/core/ports/repositories"
)

// inMemoryBudgetRepository is an append-only ledger. byTrip keeps entry ids
// in insertion order so entries sharing a date list in the order they were added.
type inMemoryBudgetRepository struct {
	entries map[string]domain.BudgetEntry
	byTrip  map[string][]string
	mu      sync.RWMutex
}

func newInMemoryBudgetRepository() *inMemoryBudgetRepository {
	return &inMemoryBudgetRepository{
		entries: make(map[string]domain.BudgetEntry),
		byTrip:  make(map[string][]string),
	}
}

var _ portsrepo.BudgetRepositoryFacade = (*inMemoryBudgetRepository)(nil)

func (r *inMemoryBudgetRepository) SaveBudgetEntry(_ context.Context, entry domain.BudgetEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.entries[entry.BudgetID]; exists {
		return apperrors.NewAppError(409, "budget ID "+entry.BudgetID+" already exists", apperrors.ErrDuplicate)
	}
	r.entries[entry.BudgetID] = entry
	r.byTrip[entry.TripID] = append(r.byTrip[entry.TripID], entry.BudgetID)
	return nil
}

func (r *inMemoryBudgetRepository) ListBudgetEntriesByTrip(_ context.Context, tripID string) ([]domain.BudgetEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ids := r.byTrip[tripID]
	entries := make([]domain.BudgetEntry, 0, len(ids))
	for _, id := range ids {
		entries = append(entries, r.entries[id])
	}
	sort.SliceStable(entries, func(i, j int) bool { return entries[i].Date.Before(entries[j].Date) })
	return entries, nil
}

func (r *inMemoryBudgetRepository) FindBudgetEntryByID(_ context.Context, budgetID string) (*domain.BudgetEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entry, ok := r.entries[budgetID]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return &entry, nil
}

func (r *inMemoryBudgetRepository) DeleteBudgetEntry(_ context.Context, budgetID string) (*domain.BudgetEntry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	entry, ok := r.entries[budgetID]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	delete(r.entries, budgetID)
	r.byTrip[entry.TripID] = slices.DeleteFunc(r.byTrip[entry.TripID], func(id string) bool { return id == budgetID })
	if len(r.byTrip[entry.TripID]) == 0 {
		delete(r.byTrip, entry.TripID)
	}
	return &entry, nil
}

func (r *inMemoryBudgetRepository) DeleteBudgetEntriesByTrip(_ context.Context, tripID string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	ids := r.byTrip[tripID]
	for _, id := range ids {
		delete(r.entries, id)
	}
	delete(r.byTrip, tripID)
	return int64(len(ids)), nil
}
