package models

import "time"

// Timestamps mirrors the created_at/updated_at columns shared by the trip and destination tables.
type Timestamps struct {
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`
}
