package mapping

import (
	"github.com/SscSPs/travel_planner_app/internal/core/domain"
	"github.com/SscSPs/travel_planner_app/internal/models"
)

// ToModelBudgetEntry converts a domain BudgetEntry to a model BudgetEntry
func ToModelBudgetEntry(d domain.BudgetEntry) models.BudgetEntry {
	return models.BudgetEntry{
		BudgetID:    d.BudgetID,
		TripID:      d.TripID,
		Category:    string(d.Category),
		Amount:      d.Amount,
		Description: d.Description,
		EntryDate:   d.Date,
	}
}

// ToDomainBudgetEntry converts a model BudgetEntry to a domain BudgetEntry
func ToDomainBudgetEntry(m models.BudgetEntry) domain.BudgetEntry {
	return domain.BudgetEntry{
		BudgetID:    m.BudgetID,
		TripID:      m.TripID,
		Category:    domain.BudgetCategory(m.Category),
		Amount:      m.Amount,
		Description: m.Description,
		Date:        m.EntryDate,
	}
}

// ToDomainBudgetEntrySlice converts a slice of model BudgetEntries to a slice of domain BudgetEntries
func ToDomainBudgetEntrySlice(ms []models.BudgetEntry) []domain.BudgetEntry {
	ds := make([]domain.BudgetEntry, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainBudgetEntry(m)
	}
	return ds
}
