package memory

import (
	"context"
	"slices"
	"sort"
	"sync"

	"github.com/SscSPs/travel_planner_app/internal/apperrors"
	"github.com/SscSPs/travel_planner_app/internal/core/domain"
	portsrepo "github.com/SscSPs/travel_planner_app/internal/core/ports/repositories"
)

type inMemoryDestinationRepository struct {
	destinations map[string]domain.Destination
	mu           sync.RWMutex
}

func newInMemoryDestinationRepository() *inMemoryDestinationRepository {
	return &inMemoryDestinationRepository{destinations: make(map[string]domain.Destination)}
}

var _ portsrepo.DestinationRepositoryFacade = (*inMemoryDestinationRepository)(nil)

func copyDestination(d domain.Destination) domain.Destination {
	d.Activities = slices.Clone(d.Activities)
	d.Photos = slices.Clone(d.Photos)
	if d.Activities == nil {
		d.Activities = []string{}
	}
	if d.Photos == nil {
		d.Photos = []string{}
	}
	return d
}

func (r *inMemoryDestinationRepository) FindDestinationByID(_ context.Context, destinationID string) (*domain.Destination, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	d, ok := r.destinations[destinationID]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	d = copyDestination(d)
	return &d, nil
}

func (r *inMemoryDestinationRepository) FindDestinationsByIDs(_ context.Context, destinationIDs []string) (map[string]domain.Destination, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	found := make(map[string]domain.Destination, len(destinationIDs))
	for _, id := range destinationIDs {
		if d, ok := r.destinations[id]; ok {
			found[id] = copyDestination(d)
		}
	}
	return found, nil
}

func (r *inMemoryDestinationRepository) ListDestinations(_ context.Context) ([]domain.Destination, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	destinations := make([]domain.Destination, 0, len(r.destinations))
	for _, d := range r.destinations {
		destinations = append(destinations, copyDestination(d))
	}
	sort.Slice(destinations, func(i, j int) bool {
		if destinations[i].Name != destinations[j].Name {
			return destinations[i].Name < destinations[j].Name
		}
		return destinations[i].DestinationID < destinations[j].DestinationID
	})
	return destinations, nil
}

func (r *inMemoryDestinationRepository) SaveDestination(_ context.Context, destination domain.Destination) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.destinations[destination.DestinationID]; exists {
		return apperrors.NewAppError(409, "destination ID "+destination.DestinationID+" already exists", apperrors.ErrDuplicate)
	}
	r.destinations[destination.DestinationID] = copyDestination(destination)
	return nil
}

func (r *inMemoryDestinationRepository) UpdateDestination(_ context.Context, destination domain.Destination) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.destinations[destination.DestinationID]; !exists {
		return apperrors.ErrNotFound
	}
	r.destinations[destination.DestinationID] = copyDestination(destination)
	return nil
}

func (r *inMemoryDestinationRepository) DeleteDestination(_ context.Context, destinationID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.destinations[destinationID]; !exists {
		return apperrors.ErrNotFound
	}
	delete(r.destinations, destinationID)
	return nil
}
