package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/SscSPs/travel_planner_app/internal/apperrors"
	"github.com/SscSPs/travel_planner_app/internal/core/domain"
	portssvc "github.com/SscSPs/travel_planner_app/internal/core/ports/services"
	"github.com/SscSPs/travel_planner_app/internal/dto"
	"github.com/SscSPs/travel_planner_app/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

const defaultTripBudgetCurrency = "JPY"

// currencyHandler handles HTTP requests related to currencies and exchange rates.
type currencyHandler struct {
	currencyService portssvc.CurrencySvcFacade
	tripBudgets     portssvc.TripBudgetConverterSvc
}

func newCurrencyHandler(cs portssvc.CurrencySvcFacade, tb portssvc.TripBudgetConverterSvc) *currencyHandler {
	return &currencyHandler{currencyService: cs, tripBudgets: tb}
}

// registerCurrencyRoutes registers routes related to currencies.
func registerCurrencyRoutes(rg *gin.RouterGroup, currencyService portssvc.CurrencySvcFacade, tripBudgets portssvc.TripBudgetConverterSvc) {
	h := newCurrencyHandler(currencyService, tripBudgets)

	currency := rg.Group("/currency")
	{
		currency.GET("/currencies", h.listCurrencies)
		currency.GET("/rates", h.getRates)
		currency.GET("/convert", h.convert)
		currency.GET("/trips/:tripId/budget", h.getTripBudgetInCurrency)
	}
}

// listCurrencies godoc
// @Summary List supported currencies
// @Description The fixed set of currencies the server can convert between
// @Tags currency
// @Produce json
// @Success 200 {object} dto.SupportedCurrenciesResponse
// @Router /currency/currencies [get]
func (h *currencyHandler) listCurrencies(c *gin.Context) {
	c.JSON(http.StatusOK, dto.SupportedCurrenciesResponse{
		Currencies:      h.currencyService.SupportedCurrencies(),
		DefaultCurrency: domain.ReferenceCurrency,
	})
}

// getRates godoc
// @Summary Exchange rates
// @Description Latest rates for a base currency, or the rates published on date
// @Tags currency
// @Produce json
// @Param base query string false "Base currency" default(EUR)
// @Param date query string false "Publication date (YYYY-MM-DD)"
// @Success 200 {object} dto.ExchangeRatesResponse
// @Failure 400 {object} map[string]interface{} "Unsupported base currency or invalid date"
// @Failure 502 {object} map[string]string "Error fetching exchange rates"
// @Router /currency/rates [get]
func (h *currencyHandler) getRates(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.RatesParams
	if err := c.ShouldBindQuery(&params); err != nil {
		bindError(c, logger, err)
		return
	}

	base := domain.NormalizeCurrencyCode(params.Base)
	if !h.currencyService.IsSupported(base) {
		logger.Warn("Unsupported base currency", slog.String("base", base))
		c.JSON(http.StatusBadRequest, gin.H{
			"error":               "Unsupported base currency",
			"supportedCurrencies": h.currencyService.SupportedCurrencies(),
		})
		return
	}

	var (
		rates *domain.ExchangeRates
		err   error
	)
	if params.Date != "" {
		day, parseErr := dto.ParseDate(params.Date)
		if parseErr != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date, expected YYYY-MM-DD"})
			return
		}
		rates, err = h.currencyService.HistoricalRates(c.Request.Context(), day, base)
	} else {
		rates, err = h.currencyService.LatestRates(c.Request.Context(), base)
	}
	if err != nil {
		writeServiceError(c, logger, err, "Error fetching exchange rates")
		return
	}
	c.JSON(http.StatusOK, dto.ToExchangeRatesResponse(rates))
}

// convert godoc
// @Summary Convert an amount
// @Description Converts using live rates, falling back to approximate static rates when the upstream is unavailable
// @Tags currency
// @Produce json
// @Param amount query number true "Amount to convert"
// @Param from query string false "Source currency" default(EUR)
// @Param to query string true "Target currency"
// @Success 200 {object} dto.ConversionResponse
// @Failure 400 {object} map[string]string "Missing or invalid parameters"
// @Failure 500 {object} map[string]interface{} "Conversion not possible"
// @Router /currency/convert [get]
func (h *currencyHandler) convert(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.ConvertParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Missing conversion parameters", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Amount and to parameters are required"})
		return
	}

	amount, err := decimal.NewFromString(params.Amount)
	if err != nil || !amount.IsPositive() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Amount must be a positive number"})
		return
	}

	conversion, err := h.currencyService.ConvertWithFallback(c.Request.Context(), amount, params.From, params.To)
	if err != nil {
		if errors.Is(err, apperrors.ErrUnsupportedCurrency) {
			logger.Warn("Conversion between unsupported currencies", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{
				"error":               "Conversion from " + params.From + " to " + params.To + " is not supported",
				"supportedCurrencies": h.currencyService.SupportedCurrencies(),
			})
			return
		}
		logger.Error("Conversion failed", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error converting currency"})
		return
	}
	c.JSON(http.StatusOK, dto.ToConversionResponse(conversion))
}

// getTripBudgetInCurrency godoc
// @Summary Trip budget in another currency
// @Tags currency
// @Produce json
// @Param tripId path string true "Trip ID"
// @Param currency query string false "Target currency" default(JPY)
// @Success 200 {object} dto.TripBudgetInCurrencyResponse
// @Failure 400 {object} map[string]string "Unsupported currency"
// @Failure 404 {object} map[string]string "Trip not found"
// @Failure 500 {object} map[string]string "Error converting trip budget"
// @Router /currency/trips/{tripId}/budget [get]
func (h *currencyHandler) getTripBudgetInCurrency(c *gin.Context) {
	tripID := c.Param("tripId")
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("trip_id", tripID))
	currency := c.DefaultQuery("currency", defaultTripBudgetCurrency)

	result, err := h.tripBudgets.ConvertTripBudget(c.Request.Context(), tripID, currency)
	if err != nil {
		writeServiceError(c, logger, err, "Error converting trip budget")
		return
	}
	c.JSON(http.StatusOK, dto.ToTripBudgetInCurrencyResponse(result))
}
