package repositories

import (
	"context"

	"github.com/SscSPs/travel_planner_app/internal/core/domain"
)

// TripReader defines read operations for trip data
type TripReader interface {
	// FindTripByID retrieves a trip by its id. Returns apperrors.ErrNotFound when absent.
	FindTripByID(ctx context.Context, tripID string) (*domain.Trip, error)

	// ListTrips returns every trip matching filter, newest first.
	ListTrips(ctx context.Context, filter domain.TripFilter) ([]domain.Trip, error)

	// ListTripsByDestination returns the trips that reference destinationID.
	ListTripsByDestination(ctx context.Context, destinationID string) ([]domain.Trip, error)
}

// TripWriter defines write operations for trip data
type TripWriter interface {
	// SaveTrip persists a new trip.
	SaveTrip(ctx context.Context, trip domain.Trip) error

	// UpdateTrip replaces the stored trip with the same id.
	UpdateTrip(ctx context.Context, trip domain.Trip) error

	// DeleteTrip removes a trip. Returns apperrors.ErrNotFound when absent.
	DeleteTrip(ctx context.Context, tripID string) error
}

// TripDestinationLinker maintains the ordered destination list of trips.
type TripDestinationLinker interface {
	// AddDestination appends destinationID to the trip unless already present.
	AddDestination(ctx context.Context, tripID, destinationID string) (*domain.Trip, error)

	// RemoveDestination drops destinationID from the trip.
	RemoveDestination(ctx context.Context, tripID, destinationID string) (*domain.Trip, error)

	// RemoveDestinationFromAllTrips drops destinationID from every trip and
	// returns the number of trips touched.
	RemoveDestinationFromAllTrips(ctx context.Context, destinationID string) (int64, error)
}

// TripRepositoryFacade combines all trip-related repository interfaces
type TripRepositoryFacade interface {
	TripReader
	TripWriter
	TripDestinationLinker
}
