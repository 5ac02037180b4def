package mapping

import (
	"github.com/SscSPs/travel_planner_app/internal/core/domain"
	"github.com/SscSPs/travel_planner_app/internal/models"
)

// ToModelDestination converts a domain Destination to a model Destination
func ToModelDestination(d domain.Destination) models.Destination {
	return models.Destination{
		DestinationID: d.DestinationID,
		Name:          d.Name,
		Description:   d.Description,
		Activities:    nonNil(d.Activities),
		StartDate:     d.StartDate,
		EndDate:       d.EndDate,
		Photos:        nonNil(d.Photos),
		Timestamps:    ToModelTimestamps(d.Timestamps),
	}
}

// ToDomainDestination converts a model Destination to a domain Destination
func ToDomainDestination(m models.Destination) domain.Destination {
	return domain.Destination{
		DestinationID: m.DestinationID,
		Name:          m.Name,
		Description:   m.Description,
		Activities:    nonNil(m.Activities),
		StartDate:     m.StartDate,
		EndDate:       m.EndDate,
		Photos:        nonNil(m.Photos),
		Timestamps:    ToDomainTimestamps(m.Timestamps),
	}
}

// ToDomainDestinationSlice converts a slice of model Destinations to a slice of domain Destinations
func ToDomainDestinationSlice(ms []models.Destination) []domain.Destination {
	ds := make([]domain.Destination, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainDestination(m)
	}
	return ds
}
