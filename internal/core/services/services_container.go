package services

import (
	portsrepo "github.com/SscSPs/travel_planner_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/travel_planner_app/internal/core/ports/services"
	"github.com/SscSPs/travel_planner_app/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	// Currency first: the budget summary converts through it.
	container.Currency = NewCurrencyService(
		repos.ExchangeRateRepo,
		WithRateCache(cfg.ExchangeRateCacheSize, cfg.ExchangeRateCacheTTL),
	)

	container.Trip = NewTripService(repos.TripRepo, repos.DestinationRepo, repos.BudgetRepo)
	container.Destination = NewDestinationService(repos.DestinationRepo, repos.TripRepo)
	container.Budget = NewBudgetService(repos.BudgetRepo, repos.TripRepo)
	container.BudgetSummary = NewBudgetSummaryService(repos.TripRepo, repos.BudgetRepo, container.Currency)

	return container
}

var (
	_ portssvc.TripSvcFacade        = (*tripService)(nil)
	_ portssvc.DestinationSvcFacade = (*destinationService)(nil)
	_ portssvc.BudgetSvcFacade      = (*budgetService)(nil)
	_ portssvc.CurrencySvcFacade    = (*currencyService)(nil)
)
