package domain

import "github.com/shopspring/decimal"

// BudgetSummary is the derived spend-vs-budget view of one trip. It is
// recomputed on every request and never stored.
type BudgetSummary struct {
	TripID          string
	Budget          decimal.Decimal
	TotalSpent      decimal.Decimal
	Remaining       decimal.Decimal
	ByCategory      map[BudgetCategory]decimal.Decimal
	Currency        string
	EntryCount      int
	ConvertedValues *ConvertedValues
	Warning         string
}

// ConvertedValues re-expresses a summary's figures in another currency.
type ConvertedValues struct {
	Budget     decimal.Decimal
	TotalSpent decimal.Decimal
	Remaining  decimal.Decimal
	ByCategory map[BudgetCategory]decimal.Decimal
	Currency   string
	Rate       decimal.Decimal
	Source     RateSource
}

// SummarizeLedger aggregates entries against a trip budget. Sums are exact
// decimal sums; nothing is rounded here. Entries with an unknown category are
// counted under CategoryOther.
func SummarizeLedger(trip Trip, entries []BudgetEntry) BudgetSummary {
	total := decimal.Zero
	byCategory := make(map[BudgetCategory]decimal.Decimal)

	for _, entry := range entries {
		category := entry.Category
		if !category.IsValid() {
			category = CategoryOther
		}
		total = total.Add(entry.Amount)
		byCategory[category] = byCategory[category].Add(entry.Amount)
	}

	return BudgetSummary{
		TripID:     trip.TripID,
		Budget:     trip.Budget,
		TotalSpent: total,
		Remaining:  trip.Budget.Sub(total),
		ByCategory: byCategory,
		Currency:   ReferenceCurrency,
		EntryCount: len(entries),
	}
}

// Convert applies rate uniformly to every figure of the summary.
func (s BudgetSummary) Convert(currency string, rate decimal.Decimal, source RateSource) *ConvertedValues {
	byCategory := make(map[BudgetCategory]decimal.Decimal, len(s.ByCategory))
	for category, sum := range s.ByCategory {
		byCategory[category] = sum.Mul(rate)
	}
	return &ConvertedValues{
		Budget:     s.Budget.Mul(rate),
		TotalSpent: s.TotalSpent.Mul(rate),
		Remaining:  s.Remaining.Mul(rate),
		ByCategory: byCategory,
		Currency:   currency,
		Rate:       rate,
		Source:     source,
	}
}

// TripBudgetConversion is a trip's budget re-expressed in another currency.
// Conversion is nil when no rate could be obtained; Warning then says why.
type TripBudgetConversion struct {
	TripID     string
	Budget     decimal.Decimal
	Currency   string
	Conversion *Conversion
	Warning    string
}
