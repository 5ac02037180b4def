package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Trip is a planned journey with a total budget expressed in ReferenceCurrency.
type Trip struct {
	TripID         string          `json:"id"`
	Name           string          `json:"name"`
	Description    string          `json:"description,omitempty"`
	Image          string          `json:"image,omitempty"`
	Participants   []string        `json:"participants"`
	StartDate      *time.Time      `json:"startDate,omitempty"`
	EndDate        *time.Time      `json:"endDate,omitempty"`
	DestinationIDs []string        `json:"destinations"`
	Budget         decimal.Decimal `json:"budget"`
	Timestamps
}

// Validate checks the invariants a stored Trip must satisfy.
func (t Trip) Validate() error {
	if t.Name == "" {
		return errString("trip name is required")
	}
	if t.Budget.IsNegative() {
		return errString("budget must be greater than or equal to 0")
	}
	if !fitsReferencePrecision(t.Budget) {
		return errString("budget must have at most 2 decimal places")
	}
	if t.StartDate != nil && t.EndDate != nil && t.StartDate.After(*t.EndDate) {
		return errString("startDate must be before or equal to endDate")
	}
	return nil
}

// HasDestination reports whether destinationID is already attached to the trip.
func (t Trip) HasDestination(destinationID string) bool {
	for _, id := range t.DestinationIDs {
		if id == destinationID {
			return true
		}
	}
	return false
}

// TripFilter narrows a trip listing. Zero values mean "no constraint".
type TripFilter struct {
	NameContains string
	StartFrom    *time.Time
	EndUntil     *time.Time
}

// Matches applies the filter to a single trip. Stores that cannot push the
// filter down to the database use it directly.
func (f TripFilter) Matches(t Trip) bool {
	if f.NameContains != "" && !containsFold(t.Name, f.NameContains) {
		return false
	}
	if f.StartFrom != nil && (t.StartDate == nil || t.StartDate.Before(*f.StartFrom)) {
		return false
	}
	if f.EndUntil != nil && (t.EndDate == nil || t.EndDate.After(*f.EndUntil)) {
		return false
	}
	return true
}

// TripDetails is a Trip with its destinations resolved.
type TripDetails struct {
	Trip
	Destinations []Destination
}
