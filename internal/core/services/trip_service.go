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
	"github.com/r3labs/diff/v3"
	"github.com/shopspring/decimal"
)

// tripService implements the TripSvcFacade interface
type tripService struct {
	BaseService
	tripRepo        portsrepo.TripRepositoryFacade
	destinationRepo portsrepo.DestinationReader
	budgetRepo      portsrepo.BudgetWriter
	now             func() time.Time
}

// NewTripService creates a trip service. budgetRepo is used to remove the
// ledger of deleted trips.
func NewTripService(tripRepo portsrepo.TripRepositoryFacade, destinationRepo portsrepo.DestinationReader, budgetRepo portsrepo.BudgetWriter) portssvc.TripSvcFacade {
	return &tripService{
		tripRepo:        tripRepo,
		destinationRepo: destinationRepo,
		budgetRepo:      budgetRepo,
		now:             time.Now,
	}
}

var _ portssvc.TripSvcFacade = (*tripService)(nil)

func (s *tripService) CreateTrip(ctx context.Context, req dto.CreateTripRequest) (*domain.Trip, error) {
	now := s.now().UTC()
	trip := domain.Trip{
		TripID:     uuid.NewString(),
		Timestamps: domain.Timestamps{CreatedAt: now, UpdatedAt: now},
	}
	applyTripRequest(&trip, dto.UpdateTripRequest(req))

	if err := trip.Validate(); err != nil {
		return nil, err
	}
	if err := s.checkDestinationsExist(ctx, trip.DestinationIDs); err != nil {
		return nil, err
	}

	if err := s.tripRepo.SaveTrip(ctx, trip); err != nil {
		s.LogError(ctx, err, "Failed to save trip", slog.String("trip_id", trip.TripID))
		return nil, fmt.Errorf("failed to save trip: %w", err)
	}

	s.LogInfo(ctx, "Trip created", slog.String("trip_id", trip.TripID), slog.String("budget", trip.Budget.String()))
	return &trip, nil
}

func (s *tripService) GetTrip(ctx context.Context, tripID string) (*domain.TripDetails, error) {
	trip, err := s.findTrip(ctx, tripID)
	if err != nil {
		return nil, err
	}

	details := &domain.TripDetails{Trip: *trip, Destinations: []domain.Destination{}}
	if len(trip.DestinationIDs) == 0 {
		return details, nil
	}

	byID, err := s.destinationRepo.FindDestinationsByIDs(ctx, trip.DestinationIDs)
	if err != nil {
		s.LogError(ctx, err, "Failed to load trip destinations", slog.String("trip_id", tripID))
		return nil, fmt.Errorf("failed to load destinations of trip %s: %w", tripID, err)
	}
	for _, id := range trip.DestinationIDs {
		if d, ok := byID[id]; ok {
			details.Destinations = append(details.Destinations, d)
		}
	}
	return details, nil
}

func (s *tripService) ListTrips(ctx context.Context) ([]domain.Trip, error) {
	return s.listTrips(ctx, domain.TripFilter{})
}

func (s *tripService) SearchTrips(ctx context.Context, params dto.SearchTripsParams) ([]domain.Trip, error) {
	filter := domain.TripFilter{NameContains: strings.TrimSpace(params.Name)}
	if params.StartDate != "" {
		start, err := dto.ParseDate(params.StartDate)
		if err != nil {
			return nil, apperrors.NewValidationError("startDate: " + err.Error())
		}
		filter.StartFrom = &start
	}
	if params.EndDate != "" {
		end, err := dto.ParseDate(params.EndDate)
		if err != nil {
			return nil, apperrors.NewValidationError("endDate: " + err.Error())
		}
		filter.EndUntil = &end
	}
	return s.listTrips(ctx, filter)
}

func (s *tripService) ListTripsByDestination(ctx context.Context, destinationID string) ([]domain.Trip, error) {
	if _, err := s.destinationRepo.FindDestinationByID(ctx, destinationID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewNotFoundError("destination not found")
		}
		return nil, fmt.Errorf("failed to load destination %s: %w", destinationID, err)
	}
	trips, err := s.tripRepo.ListTripsByDestination(ctx, destinationID)
	if err != nil {
		return nil, fmt.Errorf("failed to list trips of destination %s: %w", destinationID, err)
	}
	if trips == nil {
		return []domain.Trip{}, nil
	}
	return trips, nil
}

func (s *tripService) UpdateTrip(ctx context.Context, tripID string, req dto.UpdateTripRequest) (*domain.Trip, error) {
	existing, err := s.findTrip(ctx, tripID)
	if err != nil {
		return nil, err
	}

	updated := *existing
	applyTripRequest(&updated, req)
	updated.UpdatedAt = s.now().UTC()

	if err := updated.Validate(); err != nil {
		return nil, err
	}
	if err := s.checkDestinationsExist(ctx, updated.DestinationIDs); err != nil {
		return nil, err
	}

	if err := s.tripRepo.UpdateTrip(ctx, updated); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewNotFoundError("trip not found")
		}
		s.LogError(ctx, err, "Failed to update trip", slog.String("trip_id", tripID))
		return nil, fmt.Errorf("failed to update trip: %w", err)
	}

	s.logTripChanges(ctx, *existing, updated)
	return &updated, nil
}

// DeleteTrip removes the trip first and its ledger second. If the second
// step fails the entries are left unreachable and the failure is logged; the
// caller still sees a successful delete.
func (s *tripService) DeleteTrip(ctx context.Context, tripID string) error {
	if err := s.tripRepo.DeleteTrip(ctx, tripID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return apperrors.NewNotFoundError("trip not found")
		}
		s.LogError(ctx, err, "Failed to delete trip", slog.String("trip_id", tripID))
		return fmt.Errorf("failed to delete trip: %w", err)
	}

	removed, err := s.budgetRepo.DeleteBudgetEntriesByTrip(ctx, tripID)
	if err != nil {
		s.LogError(ctx, err, "Trip deleted but its budget entries could not be removed", slog.String("trip_id", tripID))
		return nil
	}

	s.LogInfo(ctx, "Trip deleted", slog.String("trip_id", tripID), slog.Int64("budget_entries_removed", removed))
	return nil
}

func (s *tripService) AddDestinationToTrip(ctx context.Context, tripID, destinationID string) (*domain.Trip, error) {
	if _, err := s.destinationRepo.FindDestinationByID(ctx, destinationID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewNotFoundError("destination not found")
		}
		return nil, fmt.Errorf("failed to load destination %s: %w", destinationID, err)
	}

	trip, err := s.tripRepo.AddDestination(ctx, tripID, destinationID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewNotFoundError("trip not found")
		}
		s.LogError(ctx, err, "Failed to add destination to trip",
			slog.String("trip_id", tripID), slog.String("destination_id", destinationID))
		return nil, fmt.Errorf("failed to add destination to trip: %w", err)
	}
	return trip, nil
}

func (s *tripService) RemoveDestinationFromTrip(ctx context.Context, tripID, destinationID string) (*domain.Trip, error) {
	trip, err := s.tripRepo.RemoveDestination(ctx, tripID, destinationID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewNotFoundError("trip not found")
		}
		s.LogError(ctx, err, "Failed to remove destination from trip",
			slog.String("trip_id", tripID), slog.String("destination_id", destinationID))
		return nil, fmt.Errorf("failed to remove destination from trip: %w", err)
	}
	return trip, nil
}

func (s *tripService) findTrip(ctx context.Context, tripID string) (*domain.Trip, error) {
	trip, err := s.tripRepo.FindTripByID(ctx, tripID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewNotFoundError("trip not found")
		}
		s.LogError(ctx, err, "Failed to load trip", slog.String("trip_id", tripID))
		return nil, fmt.Errorf("failed to load trip %s: %w", tripID, err)
	}
	return trip, nil
}

func (s *tripService) listTrips(ctx context.Context, filter domain.TripFilter) ([]domain.Trip, error) {
	trips, err := s.tripRepo.ListTrips(ctx, filter)
	if err != nil {
		s.LogError(ctx, err, "Failed to list trips")
		return nil, fmt.Errorf("failed to list trips: %w", err)
	}
	if trips == nil {
		return []domain.Trip{}, nil
	}
	return trips, nil
}

func (s *tripService) checkDestinationsExist(ctx context.Context, ids []string) error {
	if len(ids) == 0 {
		return nil
	}
	found, err := s.destinationRepo.FindDestinationsByIDs(ctx, ids)
	if err != nil {
		return fmt.Errorf("failed to load destinations: %w", err)
	}
	for _, id := range ids {
		if _, ok := found[id]; !ok {
			return apperrors.NewValidationError(fmt.Sprintf("unknown destination '%s'", id))
		}
	}
	return nil
}

// tripSnapshot is the diffable view of a trip's editable fields.
type tripSnapshot struct {
	Name         string   `diff:"name"`
	Description  string   `diff:"description"`
	Image        string   `diff:"image"`
	Participants []string `diff:"participants"`
	StartDate    string   `diff:"startDate"`
	EndDate      string   `diff:"endDate"`
	Destinations []string `diff:"destinations"`
	Budget       string   `diff:"budget"`
}

func snapshotOf(t domain.Trip) tripSnapshot {
	return tripSnapshot{
		Name:         t.Name,
		Description:  t.Description,
		Image:        t.Image,
		Participants: t.Participants,
		StartDate:    formatOptionalDate(t.StartDate),
		EndDate:      formatOptionalDate(t.EndDate),
		Destinations: t.DestinationIDs,
		Budget:       t.Budget.String(),
	}
}

// logTripChanges logs which fields an update touched. A diff failure only
// costs the log line.
func (s *tripService) logTripChanges(ctx context.Context, before, after domain.Trip) {
	changelog, err := diff.Diff(snapshotOf(before), snapshotOf(after))
	if err != nil {
		s.LogWarn(ctx, err, "Could not compute trip changes", slog.String("trip_id", after.TripID))
		return
	}

	fields := make([]string, 0, len(changelog))
	seen := make(map[string]bool, len(changelog))
	for _, change := range changelog {
		if len(change.Path) == 0 || seen[change.Path[0]] {
			continue
		}
		seen[change.Path[0]] = true
		fields = append(fields, change.Path[0])
	}

	attrs := []any{slog.String("trip_id", after.TripID), slog.Any("changed_fields", fields)}
	if seen["budget"] {
		attrs = append(attrs, slog.String("budget_from", before.Budget.String()), slog.String("budget_to", after.Budget.String()))
	}
	s.LogInfo(ctx, "Trip updated", attrs...)
}

func applyTripRequest(t *domain.Trip, req dto.UpdateTripRequest) {
	t.Name = strings.TrimSpace(req.Name)
	t.Description = req.Description
	t.Image = req.Image
	t.Participants = nonNilStrings(req.Participants)
	t.StartDate = req.StartDate.Ptr()
	t.EndDate = req.EndDate.Ptr()
	t.DestinationIDs = dedupe(req.Destinations)
	t.Budget = decimal.Zero
	if req.Budget != nil {
		t.Budget = *req.Budget
	}
}

func formatOptionalDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(time.DateOnly)
}

func nonNilStrings(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

func dedupe(ids []string) []string {
	out := make([]string, 0, len(ids))
	seen := make(map[string]bool, len(ids))
	for _, id := range ids {
		if id == "" || seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, id)
	}
	return out
}
