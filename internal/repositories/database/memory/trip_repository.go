package memory

import (
	"context"
	"slices"
	"sort"
	"sync"
	"time"

	"github.com/SscSPs/travel_planner_app/internal/apperrors"
	"github.com/SscSPs/travel_planner_app/internal/core/domain"
	portsrepo "github.com/SscSPs/travel_planner_app/internal/core/ports/repositories"
)

// inMemoryTripRepository keeps trips in a map guarded by an RWMutex.
// Values are copied on the way in and out.
type inMemoryTripRepository struct {
	trips map[string]domain.Trip
	mu    sync.RWMutex
	now   func() time.Time
}

func newInMemoryTripRepository() *inMemoryTripRepository {
	return &inMemoryTripRepository{
		trips: make(map[string]domain.Trip),
		now:   func() time.Time { return time.Now().UTC() },
	}
}

var _ portsrepo.TripRepositoryFacade = (*inMemoryTripRepository)(nil)

func copyTrip(t domain.Trip) domain.Trip {
	t.Participants = slices.Clone(t.Participants)
	t.DestinationIDs = slices.Clone(t.DestinationIDs)
	if t.Participants == nil {
		t.Participants = []string{}
	}
	if t.DestinationIDs == nil {
		t.DestinationIDs = []string{}
	}
	return t
}

func (r *inMemoryTripRepository) FindTripByID(_ context.Context, tripID string) (*domain.Trip, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	trip, ok := r.trips[tripID]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	trip = copyTrip(trip)
	return &trip, nil
}

func (r *inMemoryTripRepository) collect(match func(domain.Trip) bool) []domain.Trip {
	r.mu.RLock()
	defer r.mu.RUnlock()

	trips := make([]domain.Trip, 0, len(r.trips))
	for _, trip := range r.trips {
		if match(trip) {
			trips = append(trips, copyTrip(trip))
		}
	}
	sort.Slice(trips, func(i, j int) bool {
		if !trips[i].CreatedAt.Equal(trips[j].CreatedAt) {
			return trips[i].CreatedAt.After(trips[j].CreatedAt)
		}
		return trips[i].TripID < trips[j].TripID
	})
	return trips
}

func (r *inMemoryTripRepository) ListTrips(_ context.Context, filter domain.TripFilter) ([]domain.Trip, error) {
	return r.collect(filter.Matches), nil
}

func (r *inMemoryTripRepository) ListTripsByDestination(_ context.Context, destinationID string) ([]domain.Trip, error) {
	return r.collect(func(t domain.Trip) bool { return t.HasDestination(destinationID) }), nil
}

func (r *inMemoryTripRepository) SaveTrip(_ context.Context, trip domain.Trip) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.trips[trip.TripID]; exists {
		return apperrors.NewAppError(409, "trip ID "+trip.TripID+" already exists", apperrors.ErrDuplicate)
	}
	r.trips[trip.TripID] = copyTrip(trip)
	return nil
}

func (r *inMemoryTripRepository) UpdateTrip(_ context.Context, trip domain.Trip) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.trips[trip.TripID]; !exists {
		return apperrors.ErrNotFound
	}
	r.trips[trip.TripID] = copyTrip(trip)
	return nil
}

func (r *inMemoryTripRepository) DeleteTrip(_ context.Context, tripID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.trips[tripID]; !exists {
		return apperrors.ErrNotFound
	}
	delete(r.trips, tripID)
	return nil
}

// mutate applies fn to a stored trip under the write lock and returns a copy of the result.
func (r *inMemoryTripRepository) mutate(tripID string, fn func(*domain.Trip)) (*domain.Trip, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	trip, ok := r.trips[tripID]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	trip = copyTrip(trip)
	fn(&trip)
	trip.UpdatedAt = r.now()
	r.trips[tripID] = trip

	out := copyTrip(trip)
	return &out, nil
}

func (r *inMemoryTripRepository) AddDestination(_ context.Context, tripID, destinationID string) (*domain.Trip, error) {
	return r.mutate(tripID, func(t *domain.Trip) {
		if !t.HasDestination(destinationID) {
			t.DestinationIDs = append(t.DestinationIDs, destinationID)
		}
	})
}

func (r *inMemoryTripRepository) RemoveDestination(_ context.Context, tripID, destinationID string) (*domain.Trip, error) {
	return r.mutate(tripID, func(t *domain.Trip) {
		t.DestinationIDs = slices.DeleteFunc(t.DestinationIDs, func(id string) bool { return id == destinationID })
	})
}

func (r *inMemoryTripRepository) RemoveDestinationFromAllTrips(_ context.Context, destinationID string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var touched int64
	for id, trip := range r.trips {
		if !trip.HasDestination(destinationID) {
			continue
		}
		trip = copyTrip(trip)
		trip.DestinationIDs = slices.DeleteFunc(trip.DestinationIDs, func(d string) bool { return d == destinationID })
		trip.UpdatedAt = r.now()
		r.trips[id] = trip
		touched++
	}
	return touched, nil
}
