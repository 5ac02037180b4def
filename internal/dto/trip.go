package dto

import (
	"time"

	"github.com/SscSPs/travel_planner_app/internal/core/domain"
	"github.com/SscSPs/travel_planner_app/internal/utils"
	"github.com/shopspring/decimal"
)

// CreateTripRequest defines the data needed to create a trip.
// Budget is expressed in the reference currency and defaults to 0.
type CreateTripRequest struct {
	Name         string           `json:"name" binding:"required"`
	Description  string           `json:"description"`
	Image        string           `json:"image"`
	Participants []string         `json:"participants"`
	StartDate    *Date            `json:"startDate" swaggertype:"string" example:"2025-07-01"`
	EndDate      *Date            `json:"endDate" swaggertype:"string" example:"2025-07-14"`
	Destinations []string         `json:"destinations"`
	Budget       *decimal.Decimal `json:"budget" swaggertype:"number" example:"1000"`
}

// UpdateTripRequest replaces every editable field of a trip, budget included.
type UpdateTripRequest CreateTripRequest

// SearchTripsParams defines the query parameters of the trip search.
type SearchTripsParams struct {
	Name      string `form:"name"`
	StartDate string `form:"startDate"`
	EndDate   string `form:"endDate"`
}

// TripResponse defines the data returned for a trip.
type TripResponse struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	Description  string          `json:"description,omitempty"`
	Image        string          `json:"image,omitempty"`
	Participants []string        `json:"participants"`
	StartDate    *time.Time      `json:"startDate,omitempty"`
	EndDate      *time.Time      `json:"endDate,omitempty"`
	Destinations []string        `json:"destinations"`
	Budget       decimal.Decimal `json:"budget" swaggertype:"number"`
	CreatedAt    time.Time       `json:"createdAt"`
	UpdatedAt    time.Time       `json:"updatedAt"`
}

// TripDetailsResponse is a trip with its destinations resolved.
type TripDetailsResponse struct {
	TripResponse
	Destinations []DestinationResponse `json:"destinations"`
}

// ToTripResponse converts a domain.Trip to TripResponse DTO
func ToTripResponse(t *domain.Trip) TripResponse {
	return TripResponse{
		ID:           t.TripID,
		Name:         t.Name,
		Description:  t.Description,
		Image:        t.Image,
		Participants: nonNil(t.Participants),
		StartDate:    t.StartDate,
		EndDate:      t.EndDate,
		Destinations: nonNil(t.DestinationIDs),
		Budget:       utils.RoundForCurrency(t.Budget, domain.ReferenceCurrency),
		CreatedAt:    t.CreatedAt,
		UpdatedAt:    t.UpdatedAt,
	}
}

// ToListTripResponse converts a slice of domain.Trip to a slice of TripResponse DTOs
func ToListTripResponse(trips []domain.Trip) []TripResponse {
	res := make([]TripResponse, len(trips))
	for i, t := range trips {
		res[i] = ToTripResponse(&t)
	}
	return res
}

// ToTripDetailsResponse converts a domain.TripDetails to TripDetailsResponse DTO
func ToTripDetailsResponse(d *domain.TripDetails) TripDetailsResponse {
	return TripDetailsResponse{
		TripResponse: ToTripResponse(&d.Trip),
		Destinations: ToListDestinationResponse(d.Destinations),
	}
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
