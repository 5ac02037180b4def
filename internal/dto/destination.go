package dto

import (
	"time"

	"github.com/SscSPs/travel_planner_app/internal/core/domain"
)

// CreateDestinationRequest defines the data needed to create a destination.
type CreateDestinationRequest struct {
	Name        string   `json:"name" binding:"required"`
	Description string   `json:"description"`
	Activities  []string `json:"activities"`
	StartDate   *Date    `json:"startDate" swaggertype:"string" example:"2025-07-02"`
	EndDate     *Date    `json:"endDate" swaggertype:"string" example:"2025-07-05"`
	Photos      []string `json:"photos"`
}

// UpdateDestinationRequest defines the fields allowed when updating a destination.
// Nil fields are left untouched.
type UpdateDestinationRequest struct {
	Name        *string   `json:"name"`
	Description *string   `json:"description"`
	Activities  *[]string `json:"activities"`
	StartDate   *Date     `json:"startDate" swaggertype:"string"`
	EndDate     *Date     `json:"endDate" swaggertype:"string"`
	Photos      *[]string `json:"photos"`
}

// DestinationResponse defines the data returned for a destination.
type DestinationResponse struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description,omitempty"`
	Activities  []string   `json:"activities"`
	StartDate   *time.Time `json:"startDate,omitempty"`
	EndDate     *time.Time `json:"endDate,omitempty"`
	Photos      []string   `json:"photos"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

// ToDestinationResponse converts a domain.Destination to DestinationResponse DTO
func ToDestinationResponse(d *domain.Destination) DestinationResponse {
	return DestinationResponse{
		ID:          d.DestinationID,
		Name:        d.Name,
		Description: d.Description,
		Activities:  nonNil(d.Activities),
		StartDate:   d.StartDate,
		EndDate:     d.EndDate,
		Photos:      nonNil(d.Photos),
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
	}
}

// ToListDestinationResponse converts a slice of domain.Destination to a slice of DestinationResponse DTOs
func ToListDestinationResponse(destinations []domain.Destination) []DestinationResponse {
	res := make([]DestinationResponse, len(destinations))
	for i, d := range destinations {
		res[i] = ToDestinationResponse(&d)
	}
	return res
}
