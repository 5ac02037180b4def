package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Trip is a row of the trips table. Destination order is the order of the
// destination_ids array.
type Trip struct {
	TripID         string          `json:"id" db:"trip_id"`
	Name           string          `json:"name" db:"name"`
	Description    string          `json:"description" db:"description"`
	Image          string          `json:"image" db:"image"`
	Participants   []string        `json:"participants" db:"participants"`
	StartDate      *time.Time      `json:"startDate,omitempty" db:"start_date"`
	EndDate        *time.Time      `json:"endDate,omitempty" db:"end_date"`
	DestinationIDs []string        `json:"destinations" db:"destination_ids"`
	Budget         decimal.Decimal `json:"budget" db:"budget"` // numeric(14,4), EUR
	Timestamps
}
