package dto_test

import (
	"testing"
	"time"

	"github.com/SscSPs/travel_planner_app/internal/core/domain"
	"github.com/SscSPs/travel_planner_app/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ledger(amounts map[domain.BudgetCategory][]string) []domain.BudgetEntry {
	var entries []domain.BudgetEntry
	for category, values := range amounts {
		for _, v := range values {
			entries = append(entries, domain.BudgetEntry{
				TripID:   "trip-1",
				Category: category,
				Amount:   decimal.RequireFromString(v),
				Date:     time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
			})
		}
	}
	return entries
}

func sumOf(byCategory map[string]decimal.Decimal) decimal.Decimal {
	total := decimal.Zero
	for _, v := range byCategory {
		total = total.Add(v)
	}
	return total
}

func TestToBudgetSummaryResponse_ReferenceFiguresAreExact(t *testing.T) {
	trip := domain.Trip{TripID: "trip-1", Budget: decimal.RequireFromString("10")}
	summary := domain.SummarizeLedger(trip, ledger(map[domain.BudgetCategory][]string{
		domain.CategoryFood:     {"0.01", "0.10"},
		domain.CategoryShopping: {"0.01"},
	}))

	res := dto.ToBudgetSummaryResponse(&summary)

	assert.True(t, decimal.RequireFromString("0.12").Equal(res.TotalSpent), "totalSpent %s", res.TotalSpent)
	assert.True(t, decimal.RequireFromString("9.88").Equal(res.Remaining), "remaining %s", res.Remaining)
	assert.True(t, sumOf(res.ByCategory).Equal(res.TotalSpent))
	assert.True(t, decimal.RequireFromString("0.11").Equal(res.ByCategory["Food"]))
	assert.True(t, decimal.RequireFromString("0.01").Equal(res.ByCategory["Shopping"]))
}

func TestToBudgetSummaryResponse_ConvertedBlockStaysConsistent(t *testing.T) {
	trip := domain.Trip{TripID: "trip-1", Budget: decimal.RequireFromString("10")}
	summary := domain.SummarizeLedger(trip, ledger(map[domain.BudgetCategory][]string{
		domain.CategoryFood:     {"0.30"},
		domain.CategoryShopping: {"0.30"},
	}))
	summary.ConvertedValues = summary.Convert("JPY", decimal.RequireFromString("167.5"), domain.RateSourceFallback)

	res := dto.ToBudgetSummaryResponse(&summary)

	require.NotNil(t, res.ConvertedValues)
	cv := res.ConvertedValues
	assert.True(t, decimal.NewFromInt(50).Equal(cv.ByCategory["Food"]), "food %s", cv.ByCategory["Food"])
	assert.True(t, decimal.NewFromInt(50).Equal(cv.ByCategory["Shopping"]), "shopping %s", cv.ByCategory["Shopping"])
	assert.True(t, sumOf(cv.ByCategory).Equal(cv.TotalSpent), "totalSpent %s", cv.TotalSpent)
	assert.True(t, decimal.NewFromInt(1675).Equal(cv.Budget))
	assert.True(t, cv.Budget.Sub(cv.TotalSpent).Equal(cv.Remaining), "remaining %s", cv.Remaining)
	assert.True(t, decimal.RequireFromString("167.5").Equal(cv.Rate))
}

func TestToBudgetSummaryResponse_DropsCategoriesRoundingToZero(t *testing.T) {
	trip := domain.Trip{TripID: "trip-1", Budget: decimal.RequireFromString("5")}
	summary := domain.SummarizeLedger(trip, ledger(map[domain.BudgetCategory][]string{
		domain.CategoryFood:  {"0.01"},
		domain.CategoryOther: {"3"},
	}))
	summary.ConvertedValues = summary.Convert("GBP", decimal.RequireFromString("0.4"), domain.RateSourceLive)

	res := dto.ToBudgetSummaryResponse(&summary)

	require.NotNil(t, res.ConvertedValues)
	assert.NotContains(t, res.ConvertedValues.ByCategory, "Food")
	assert.True(t, decimal.RequireFromString("1.2").Equal(res.ConvertedValues.TotalSpent))
	assert.Len(t, res.ByCategory, 2)
}
