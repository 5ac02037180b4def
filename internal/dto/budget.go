package dto

import (
	"time"

	"github.com/SscSPs/travel_planner_app/internal/core/domain"
	"github.com/SscSPs/travel_planner_app/internal/utils"
	"github.com/shopspring/decimal"
)

// CreateBudgetRequest defines the data needed to append a ledger entry to a trip.
// AllowNegative is still sent by older clients; it has no effect since
// over-budget entries are always accepted.
type CreateBudgetRequest struct {
	Category      domain.BudgetCategory `json:"category" binding:"required,budget_category" example:"Food"`
	Amount        *decimal.Decimal      `json:"amount" binding:"required" swaggertype:"number" example:"42.5"`
	Description   string                `json:"description"`
	Date          *Date                 `json:"date" swaggertype:"string" example:"2025-07-02"`
	AllowNegative *bool                 `json:"allowNegative"`
}

// BudgetEntryResponse defines the data returned for a ledger entry.
type BudgetEntryResponse struct {
	ID          string                `json:"id"`
	TripID      string                `json:"tripId"`
	Category    domain.BudgetCategory `json:"category"`
	Amount      decimal.Decimal       `json:"amount" swaggertype:"number"`
	Description string                `json:"description,omitempty"`
	Date        time.Time             `json:"date"`
}

// CreateBudgetResponse is returned after a ledger entry was appended.
type CreateBudgetResponse struct {
	Message string              `json:"message"`
	Budget  BudgetEntryResponse `json:"budget"`
}

// ListBudgetsResponse is returned when listing the ledger of a trip.
type ListBudgetsResponse struct {
	Message string                `json:"message"`
	Count   int                   `json:"count"`
	Budgets []BudgetEntryResponse `json:"budgets"`
}

// DeleteBudgetResponse is returned after a ledger entry was removed.
type DeleteBudgetResponse struct {
	Message       string              `json:"message"`
	DeletedBudget BudgetEntryResponse `json:"deletedBudget"`
}

// BudgetSummaryParams defines the query parameters of the summary endpoint.
type BudgetSummaryParams struct {
	Currency string `form:"currency"`
}

// BudgetSummaryResponse is the spend-vs-budget view of a trip.
type BudgetSummaryResponse struct {
	TripID          string                     `json:"tripId"`
	Budget          decimal.Decimal            `json:"budget" swaggertype:"number"`
	TotalSpent      decimal.Decimal            `json:"totalSpent" swaggertype:"number"`
	Remaining       decimal.Decimal            `json:"remaining" swaggertype:"number"`
	ByCategory      map[string]decimal.Decimal `json:"byCategory" swaggertype:"object,number"`
	Currency        string                     `json:"currency"`
	EntryCount      int                        `json:"entryCount"`
	ConvertedValues *ConvertedValuesResponse   `json:"convertedValues,omitempty"`
	Warning         string                     `json:"warning,omitempty"`
}

// ConvertedValuesResponse re-expresses the summary figures in the requested currency.
type ConvertedValuesResponse struct {
	Budget     decimal.Decimal            `json:"budget" swaggertype:"number"`
	TotalSpent decimal.Decimal            `json:"totalSpent" swaggertype:"number"`
	Remaining  decimal.Decimal            `json:"remaining" swaggertype:"number"`
	ByCategory map[string]decimal.Decimal `json:"byCategory" swaggertype:"object,number"`
	Currency   string                     `json:"currency"`
	Rate       decimal.Decimal            `json:"rate" swaggertype:"number"`
	Source     domain.RateSource          `json:"source"`
}

// ToBudgetEntryResponse converts a domain.BudgetEntry to BudgetEntryResponse DTO
func ToBudgetEntryResponse(e *domain.BudgetEntry) BudgetEntryResponse {
	return BudgetEntryResponse{
		ID:          e.BudgetID,
		TripID:      e.TripID,
		Category:    e.Category,
		Amount:      utils.RoundForCurrency(e.Amount, domain.ReferenceCurrency),
		Description: e.Description,
		Date:        e.Date,
	}
}

// ToListBudgetEntryResponse converts a slice of domain.BudgetEntry to a slice of BudgetEntryResponse DTOs
func ToListBudgetEntryResponse(entries []domain.BudgetEntry) []BudgetEntryResponse {
	res := make([]BudgetEntryResponse, len(entries))
	for i, e := range entries {
		res[i] = ToBudgetEntryResponse(&e)
	}
	return res
}

// ToBudgetSummaryResponse converts a domain.BudgetSummary to its DTO. This is
// the only place the summary figures get rounded. Each block stays internally
// consistent after rounding: totalSpent is the sum of the rounded categories
// and remaining is the rounded budget minus that total.
func ToBudgetSummaryResponse(s *domain.BudgetSummary) BudgetSummaryResponse {
	figures := roundFigures(s.Budget, s.ByCategory, s.Currency)
	res := BudgetSummaryResponse{
		TripID:     s.TripID,
		Budget:     figures.budget,
		TotalSpent: figures.totalSpent,
		Remaining:  figures.remaining,
		ByCategory: figures.byCategory,
		Currency:   s.Currency,
		EntryCount: s.EntryCount,
		Warning:    s.Warning,
	}
	if cv := s.ConvertedValues; cv != nil {
		converted := roundFigures(cv.Budget, cv.ByCategory, cv.Currency)
		res.ConvertedValues = &ConvertedValuesResponse{
			Budget:     converted.budget,
			TotalSpent: converted.totalSpent,
			Remaining:  converted.remaining,
			ByCategory: converted.byCategory,
			Currency:   cv.Currency,
			Rate:       cv.Rate,
			Source:     cv.Source,
		}
	}
	return res
}

type roundedFigures struct {
	budget     decimal.Decimal
	totalSpent decimal.Decimal
	remaining  decimal.Decimal
	byCategory map[string]decimal.Decimal
}

// roundFigures rounds budget and every category to the display precision of
// currency and derives the totals from the rounded values. Categories that
// round to zero are left out.
func roundFigures(budget decimal.Decimal, byCategory map[domain.BudgetCategory]decimal.Decimal, currency string) roundedFigures {
	res := roundedFigures{
		budget:     utils.RoundForCurrency(budget, currency),
		totalSpent: decimal.Zero,
		byCategory: make(map[string]decimal.Decimal, len(byCategory)),
	}
	for category, sum := range byCategory {
		rounded := utils.RoundForCurrency(sum, currency)
		if rounded.IsZero() {
			continue
		}
		res.byCategory[string(category)] = rounded
		res.totalSpent = res.totalSpent.Add(rounded)
	}
	res.remaining = res.budget.Sub(res.totalSpent)
	return res
}
