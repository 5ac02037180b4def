package mapping_test

import (
	"testing"
	"time"

	"github.com/SscSPs/travel_planner_app/internal/core/domain"
	"github.com/SscSPs/travel_planner_app/internal/utils/mapping"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestToModelTrip_NilSlicesBecomeEmpty(t *testing.T) {
	m := mapping.ToModelTrip(domain.Trip{TripID: "t-1", Name: "Oslo"})

	assert.NotNil(t, m.Participants)
	assert.NotNil(t, m.DestinationIDs)
	assert.Empty(t, m.DestinationIDs)
}

func TestBudgetEntryMapping_KeepsAmountAndDate(t *testing.T) {
	when := time.Date(2025, 3, 9, 0, 0, 0, 0, time.UTC)
	d := domain.BudgetEntry{BudgetID: "b-1", TripID: "t-1", Category: domain.CategoryFood, Amount: decimal.RequireFromString("12.3456"), Date: when}

	m := mapping.ToModelBudgetEntry(d)
	assert.Equal(t, "Food", m.Category)
	assert.Equal(t, when, m.EntryDate)

	back := mapping.ToDomainBudgetEntry(m)
	assert.True(t, d.Amount.Equal(back.Amount))
	assert.Equal(t, domain.CategoryFood, back.Category)
}
