package services

import (
	"context"

	"github.com/SscSPs/travel_planner_app/internal/core/domain"
	"github.com/SscSPs/travel_planner_app/internal/dto"
)

// DestinationReaderSvc defines read operations for destinations
type DestinationReaderSvc interface {
	GetDestination(ctx context.Context, destinationID string) (*domain.Destination, error)
	ListDestinations(ctx context.Context) ([]domain.Destination, error)
}

// DestinationWriterSvc defines write operations for destinations
type DestinationWriterSvc interface {
	CreateDestination(ctx context.Context, req dto.CreateDestinationRequest) (*domain.Destination, error)

	// UpdateDestination changes only the fields present in req.
	UpdateDestination(ctx context.Context, destinationID string, req dto.UpdateDestinationRequest) (*domain.Destination, error)

	// DeleteDestination removes the destination and unlinks it from every trip.
	DeleteDestination(ctx context.Context, destinationID string) error
}

// DestinationSvcFacade combines all destination-related service interfaces
type DestinationSvcFacade interface {
	DestinationReaderSvc
	DestinationWriterSvc
}
