package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/SscSPs/travel_planner_app/internal/apperrors"
	"github.com/SscSPs/travel_planner_app/internal/core/domain"
	portsrepo "github.com/SscSPs/travel_planner_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/travel_planner_app/internal/core/ports/services"
	"github.com/SscSPs/travel_planner_app/internal/dto"
	"github.com/google/uuid"
)

// destinationService implements the DestinationSvcFacade interface
type destinationService struct {
	BaseService
	destinationRepo portsrepo.DestinationRepositoryFacade
	tripLinker      portsrepo.TripDestinationLinker
	now             func() time.Time
}

// NewDestinationService creates a destination service. tripLinker is used to
// unlink deleted destinations from trips.
func NewDestinationService(destinationRepo portsrepo.DestinationRepositoryFacade, tripLinker portsrepo.TripDestinationLinker) portssvc.DestinationSvcFacade {
	return &destinationService{
		destinationRepo: destinationRepo,
		tripLinker:      tripLinker,
		now:             time.Now,
	}
}

var _ portssvc.DestinationSvcFacade = (*destinationService)(nil)

func (s *destinationService) CreateDestination(ctx context.Context, req dto.CreateDestinationRequest) (*domain.Destination, error) {
	now := s.now().UTC()
	destination := domain.Destination{
		DestinationID: uuid.NewString(),
		Name:          strings.TrimSpace(req.Name),
		Description:   req.Description,
		Activities:    nonNilStrings(req.Activities),
		StartDate:     req.StartDate.Ptr(),
		EndDate:       req.EndDate.Ptr(),
		Photos:        nonNilStrings(req.Photos),
		Timestamps:    domain.Timestamps{CreatedAt: now, UpdatedAt: now},
	}
	if err := destination.Validate(); err != nil {
		return nil, err
	}

	if err := s.destinationRepo.SaveDestination(ctx, destination); err != nil {
		s.LogError(ctx, err, "Failed to save destination", slog.String("destination_id", destination.DestinationID))
		return nil, fmt.Errorf("failed to save destination: %w", err)
	}

	s.LogInfo(ctx, "Destination created", slog.String("destination_id", destination.DestinationID))
	return &destination, nil
}

func (s *destinationService) GetDestination(ctx context.Context, destinationID string) (*domain.Destination, error) {
	destination, err := s.destinationRepo.FindDestinationByID(ctx, destinationID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewNotFoundError("destination not found")
		}
		return nil, fmt.Errorf("failed to load destination %s: %w", destinationID, err)
	}
	return destination, nil
}

func (s *destinationService) ListDestinations(ctx context.Context) ([]domain.Destination, error) {
	destinations, err := s.destinationRepo.ListDestinations(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list destinations")
		return nil, fmt.Errorf("failed to list destinations: %w", err)
	}
	if destinations == nil {
		return []domain.Destination{}, nil
	}
	return destinations, nil
}

func (s *destinationService) UpdateDestination(ctx context.Context, destinationID string, req dto.UpdateDestinationRequest) (*domain.Destination, error) {
	existing, err := s.GetDestination(ctx, destinationID)
	if err != nil {
		return nil, err
	}

	updated := *existing
	if req.Name != nil {
		updated.Name = strings.TrimSpace(*req.Name)
	}
	if req.Description != nil {
		updated.Description = *req.Description
	}
	if req.Activities != nil {
		updated.Activities = nonNilStrings(*req.Activities)
	}
	if req.StartDate != nil {
		updated.StartDate = req.StartDate.Ptr()
	}
	if req.EndDate != nil {
		updated.EndDate = req.EndDate.Ptr()
	}
	if req.Photos != nil {
		updated.Photos = nonNilStrings(*req.Photos)
	}
	updated.UpdatedAt = s.now().UTC()

	if err := updated.Validate(); err != nil {
		return nil, err
	}

	if err := s.destinationRepo.UpdateDestination(ctx, updated); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewNotFoundError("destination not found")
		}
		s.LogError(ctx, err, "Failed to update destination", slog.String("destination_id", destinationID))
		return nil, fmt.Errorf("failed to update destination: %w", err)
	}
	return &updated, nil
}

func (s *destinationService) DeleteDestination(ctx context.Context, destinationID string) error {
	if _, err := s.GetDestination(ctx, destinationID); err != nil {
		return err
	}

	unlinked, err := s.tripLinker.RemoveDestinationFromAllTrips(ctx, destinationID)
	if err != nil {
		s.LogError(ctx, err, "Failed to unlink destination from trips", slog.String("destination_id", destinationID))
		return fmt.Errorf("failed to unlink destination from trips: %w", err)
	}

	if err := s.destinationRepo.DeleteDestination(ctx, destinationID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return apperrors.NewNotFoundError("destination not found")
		}
		s.LogError(ctx, err, "Failed to delete destination", slog.String("destination_id", destinationID))
		return fmt.Errorf("failed to delete destination: %w", err)
	}

	s.LogInfo(ctx, "Destination deleted", slog.String("destination_id", destinationID), slog.Int64("trips_unlinked", unlinked))
	return nil
}
