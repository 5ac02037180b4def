package models

import "time"

// Destination is a row of the destinations table.
type Destination struct {
	DestinationID string     `json:"id" db:"destination_id"`
	Name          string     `json:"name" db:"name"`
	Description   string     `json:"description" db:"description"`
	Activities    []string   `json:"activities" db:"activities"`
	StartDate     *time.Time `json:"startDate,omitempty" db:"start_date"`
	EndDate       *time.Time `json:"endDate,omitempty" db:"end_date"`
	Photos        []string   `json:"photos" db:"photos"`
	Timestamps
}
