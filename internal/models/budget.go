package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// BudgetEntry is a row of the budgets table. Rows are never updated.
type BudgetEntry struct {
	BudgetID    string          `json:"id" db:"budget_id"`
	TripID      string          `json:"tripId" db:"trip_id"` // FK -> trips.trip_id
	Category    string          `json:"category" db:"category"`
	Amount      decimal.Decimal `json:"amount" db:"amount"`
	Description string          `json:"description" db:"description"`
	EntryDate   time.Time       `json:"date" db:"entry_date"`
}
