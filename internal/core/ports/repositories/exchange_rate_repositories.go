package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/travel_planner_app/internal/core/domain"
)

// ExchangeRateProvider is the read-only upstream source of exchange rates.
// Implementations return apperrors.ErrConversion wrapped errors when the
// upstream is unreachable or answers with something unusable.
type ExchangeRateProvider interface {
	// LatestRates returns the most recent quotes for base against the given
	// symbols. An empty symbols slice asks for every quote the upstream has.
	LatestRates(ctx context.Context, base string, symbols ...string) (*domain.ExchangeRates, error)

	// HistoricalRates returns the quotes for base published on day.
	HistoricalRates(ctx context.Context, day time.Time, base string, symbols ...string) (*domain.ExchangeRates, error)
}
