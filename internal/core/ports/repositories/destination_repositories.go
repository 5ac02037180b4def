package repositories

import (
	"context"

	"github.com/SscSPs/travel_planner_app/internal/core/domain"
)

// DestinationReader defines read operations for destination data
type DestinationReader interface {
	// FindDestinationByID retrieves a destination by its id. Returns apperrors.ErrNotFound when absent.
	FindDestinationByID(ctx context.Context, destinationID string) (*domain.Destination, error)

	// FindDestinationsByIDs retrieves the destinations with the given ids keyed by id.
	// Unknown ids are skipped.
	FindDestinationsByIDs(ctx context.Context, destinationIDs []string) (map[string]domain.Destination, error)

	// ListDestinations returns every destination ordered by name.
	ListDestinations(ctx context.Context) ([]domain.Destination, error)
}

// DestinationWriter defines write operations for destination data
type DestinationWriter interface {
	SaveDestination(ctx context.Context, destination domain.Destination) error
	UpdateDestination(ctx context.Context, destination domain.Destination) error
	DeleteDestination(ctx context.Context, destinationID string) error
}

// DestinationRepositoryFacade combines all destination-related repository interfaces
type DestinationRepositoryFacade interface {
	DestinationReader
	DestinationWriter
}
