package domain

import "time"

// Destination is a place that can be attached to any number of trips.
type Destination struct {
	DestinationID string     `json:"id"`
	Name          string     `json:"name"`
	Description   string     `json:"description,omitempty"`
	Activities    []string   `json:"activities"`
	StartDate     *time.Time `json:"startDate,omitempty"`
	EndDate       *time.Time `json:"endDate,omitempty"`
	Photos        []string   `json:"photos"`
	Timestamps
}

// Validate checks the invariants a stored Destination must satisfy.
func (d Destination) Validate() error {
	if d.Name == "" {
		return errString("destination name is required")
	}
	if d.StartDate != nil && d.EndDate != nil && d.StartDate.After(*d.EndDate) {
		return errString("startDate must be before or equal to endDate")
	}
	return nil
}
