package services

import (
	"context"

	"github.com/SscSPs/travel_planner_app/internal/core/domain"
	"github.com/SscSPs/travel_planner_app/internal/dto"
)

// TripReaderSvc defines read operations for trips
type TripReaderSvc interface {
	// GetTrip returns a trip with its destinations resolved.
	GetTrip(ctx context.Context, tripID string) (*domain.TripDetails, error)

	// ListTrips returns every trip.
	ListTrips(ctx context.Context) ([]domain.Trip, error)

	// SearchTrips returns the trips matching the given name and date bounds.
	SearchTrips(ctx context.Context, params dto.SearchTripsParams) ([]domain.Trip, error)

	// ListTripsByDestination returns the trips that include destinationID.
	ListTripsByDestination(ctx context.Context, destinationID string) ([]domain.Trip, error)
}

// TripWriterSvc defines write operations for trips
type TripWriterSvc interface {
	CreateTrip(ctx context.Context, req dto.CreateTripRequest) (*domain.Trip, error)

	// UpdateTrip replaces every editable field of the trip, budget included.
	UpdateTrip(ctx context.Context, tripID string, req dto.UpdateTripRequest) (*domain.Trip, error)

	// DeleteTrip removes the trip and its ledger entries.
	DeleteTrip(ctx context.Context, tripID string) error
}

// TripDestinationSvc links destinations to trips
type TripDestinationSvc interface {
	AddDestinationToTrip(ctx context.Context, tripID, destinationID string) (*domain.Trip, error)
	RemoveDestinationFromTrip(ctx context.Context, tripID, destinationID string) (*domain.Trip, error)
}

// TripSvcFacade combines all trip-related service interfaces
type TripSvcFacade interface {
	TripReaderSvc
	TripWriterSvc
	TripDestinationSvc
}
