package pgsql

import (
	portsrepo "github.com/SscSPs/travel_planner_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NewRepositoryProvider wires the postgres stores. Rates are not stored; the
// caller supplies the upstream provider.
func NewRepositoryProvider(dbPool *pgxpool.Pool, rates portsrepo.ExchangeRateProvider) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		TripRepo:         newPgxTripRepository(dbPool),
		DestinationRepo:  newPgxDestinationRepository(dbPool),
		BudgetRepo:       newPgxBudgetRepository(dbPool),
		ExchangeRateRepo: rates,
	}
}
