package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// BudgetCategory classifies a ledger entry.
type BudgetCategory string

const (
	CategoryTransportation BudgetCategory = "Transportation"
	CategoryAccommodation  BudgetCategory = "Accommodation"
	CategoryFood           BudgetCategory = "Food"
	CategoryActivities     BudgetCategory = "Activities"
	CategoryShopping       BudgetCategory = "Shopping"
	CategoryOther          BudgetCategory = "Other"
)

// BudgetCategories lists every valid category in display order.
var BudgetCategories = []BudgetCategory{
	CategoryTransportation,
	CategoryAccommodation,
	CategoryFood,
	CategoryActivities,
	CategoryShopping,
	CategoryOther,
}

// IsValid reports whether c is one of BudgetCategories.
func (c BudgetCategory) IsValid() bool {
	for _, known := range BudgetCategories {
		if c == known {
			return true
		}
	}
	return false
}

// BudgetEntry is one recorded expense against a trip. Amount is in ReferenceCurrency.
// Entries are immutable once stored.
type BudgetEntry struct {
	BudgetID    string          `json:"id"`
	TripID      string          `json:"tripId"`
	Category    BudgetCategory  `json:"category"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description,omitempty"`
	Date        time.Time       `json:"date"`
}

// Validate checks the creation-time invariants of an entry.
func (e BudgetEntry) Validate() error {
	if e.TripID == "" {
		return errString("tripId is required")
	}
	if !e.Category.IsValid() {
		return errString("category must be one of Transportation, Accommodation, Food, Activities, Shopping, Other")
	}
	if !e.Amount.IsPositive() {
		return errString("amount must be greater than 0")
	}
	if !fitsReferencePrecision(e.Amount) {
		return errString("amount must have at most 2 decimal places")
	}
	return nil
}
