package dto

import (
	"github.com/SscSPs/travel_planner_app/internal/core/domain"
	"github.com/SscSPs/travel_planner_app/internal/utils"
	"github.com/shopspring/decimal"
)

// SupportedCurrenciesResponse lists the currencies the server converts between.
type SupportedCurrenciesResponse struct {
	Currencies      []string `json:"currencies"`
	DefaultCurrency string   `json:"defaultCurrency"`
}

// ConvertParams defines the query parameters of the convert endpoint.
type ConvertParams struct {
	Amount string `form:"amount" binding:"required"`
	From   string `form:"from,default=EUR"`
	To     string `form:"to" binding:"required"`
}

// ConversionResponse defines the data returned for a conversion.
type ConversionResponse struct {
	Amount          decimal.Decimal   `json:"amount" swaggertype:"number"`
	From            string            `json:"from"`
	To              string            `json:"to"`
	ConvertedAmount decimal.Decimal   `json:"convertedAmount" swaggertype:"number"`
	Rate            decimal.Decimal   `json:"rate" swaggertype:"number"`
	Source          domain.RateSource `json:"source"`
}

// RatesParams defines the query parameters of the rates endpoint.
type RatesParams struct {
	Base string `form:"base,default=EUR"`
	Date string `form:"date"`
}

// ExchangeRatesResponse defines the data returned for a rates lookup.
type ExchangeRatesResponse struct {
	Base  string                     `json:"base"`
	Date  string                     `json:"date"`
	Rates map[string]decimal.Decimal `json:"rates" swaggertype:"object,number"`
}

// TripBudgetInCurrencyResponse is a trip budget re-expressed in another currency.
type TripBudgetInCurrencyResponse struct {
	TripID           string            `json:"tripId"`
	OriginalBudget   decimal.Decimal   `json:"originalBudget" swaggertype:"number"`
	OriginalCurrency string            `json:"originalCurrency"`
	ConvertedBudget  *decimal.Decimal  `json:"convertedBudget,omitempty" swaggertype:"number"`
	Currency         string            `json:"currency"`
	Rate             *decimal.Decimal  `json:"rate,omitempty" swaggertype:"number"`
	Source           domain.RateSource `json:"source,omitempty"`
	Warning          string            `json:"warning,omitempty"`
}

// ToConversionResponse converts a domain.Conversion to ConversionResponse DTO
func ToConversionResponse(c *domain.Conversion) ConversionResponse {
	return ConversionResponse{
		Amount:          c.Amount,
		From:            c.From,
		To:              c.To,
		ConvertedAmount: utils.RoundForCurrency(c.ConvertedAmount, c.To),
		Rate:            c.Rate,
		Source:          c.Source,
	}
}

// ToExchangeRatesResponse converts a domain.ExchangeRates to ExchangeRatesResponse DTO
func ToExchangeRatesResponse(r *domain.ExchangeRates) ExchangeRatesResponse {
	return ExchangeRatesResponse{Base: r.Base, Date: r.Date, Rates: r.Rates}
}

// ToTripBudgetInCurrencyResponse converts a domain.TripBudgetConversion to its DTO.
// The converted figures are omitted when no rate could be obtained.
func ToTripBudgetInCurrencyResponse(t *domain.TripBudgetConversion) TripBudgetInCurrencyResponse {
	res := TripBudgetInCurrencyResponse{
		TripID:           t.TripID,
		OriginalBudget:   utils.RoundForCurrency(t.Budget, domain.ReferenceCurrency),
		OriginalCurrency: domain.ReferenceCurrency,
		Currency:         t.Currency,
		Warning:          t.Warning,
	}
	if c := t.Conversion; c != nil {
		converted := utils.RoundForCurrency(c.ConvertedAmount, t.Currency)
		rate := c.Rate
		res.ConvertedBudget = &converted
		res.Rate = &rate
		res.Source = c.Source
	}
	return res
}
