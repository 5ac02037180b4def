package mapping

import (
	"github.com/SscSPs/travel_planner_app/internal/core/domain"
	"github.com/SscSPs/travel_planner_app/internal/models"
)

// ToModelTrip converts a domain Trip to a model Trip
func ToModelTrip(d domain.Trip) models.Trip {
	return models.Trip{
		TripID:         d.TripID,
		Name:           d.Name,
		Description:    d.Description,
		Image:          d.Image,
		Participants:   nonNil(d.Participants),
		StartDate:      d.StartDate,
		EndDate:        d.EndDate,
		DestinationIDs: nonNil(d.DestinationIDs),
		Budget:         d.Budget,
		Timestamps:     ToModelTimestamps(d.Timestamps),
	}
}

// ToDomainTrip converts a model Trip to a domain Trip
func ToDomainTrip(m models.Trip) domain.Trip {
	return domain.Trip{
		TripID:         m.TripID,
		Name:           m.Name,
		Description:    m.Description,
		Image:          m.Image,
		Participants:   nonNil(m.Participants),
		StartDate:      m.StartDate,
		EndDate:        m.EndDate,
		DestinationIDs: nonNil(m.DestinationIDs),
		Budget:         m.Budget,
		Timestamps:     ToDomainTimestamps(m.Timestamps),
	}
}

// ToDomainTripSlice converts a slice of model Trips to a slice of domain Trips
func ToDomainTripSlice(ms []models.Trip) []domain.Trip {
	ds := make([]domain.Trip, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainTrip(m)
	}
	return ds
}
