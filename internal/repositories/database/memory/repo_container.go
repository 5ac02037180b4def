// Package memory is a process-local store for development and tests. Data
// does not survive a restart.
package memory

import portsrepo "github.com/SscSPs/travel_planner_app/internal/core/ports/repositories"

// NewRepositoryProvider creates empty in-memory stores.
func NewRepositoryProvider(rates portsrepo.ExchangeRateProvider) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		TripRepo:         newInMemoryTripRepository(),
		DestinationRepo:  newInMemoryDestinationRepository(),
		BudgetRepo:       newInMemoryBudgetRepository(),
		ExchangeRateRepo: rates,
	}
}
