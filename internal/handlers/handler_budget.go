package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/travel_planner_app/internal/core/ports/services"
	"github.com/SscSPs/travel_planner_app/internal/dto"
	"github.com/SscSPs/travel_planner_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// budgetHandler handles HTTP requests on the budget ledger of a trip.
type budgetHandler struct {
	budgetService  portssvc.BudgetSvcFacade
	summaryService portssvc.BudgetSummarySvc
}

func newBudgetHandler(bs portssvc.BudgetSvcFacade, ss portssvc.BudgetSummarySvc) *budgetHandler {
	return &budgetHandler{budgetService: bs, summaryService: ss}
}

// registerBudgetRoutes registers the ledger routes below /trips/:tripId.
func registerBudgetRoutes(trips *gin.RouterGroup, budgetService portssvc.BudgetSvcFacade, summaryService portssvc.BudgetSummarySvc) {
	h := newBudgetHandler(budgetService, summaryService)

	budgets := trips.Group("/:tripId/budgets")
	{
		budgets.POST("", h.createBudget)
		budgets.GET("", h.listBudgets)
		budgets.GET("/summary", h.getBudgetSummary)
		budgets.DELETE("/:budgetId", h.deleteBudget)
	}
}

// createBudget godoc
// @Summary Record an expense
// @Description Appends a ledger entry (amount in EUR) to a trip. Entries that push the trip over budget are accepted.
// @Tags budgets
// @Accept json
// @Produce json
// @Param tripId path string true "Trip ID"
// @Param budget body dto.CreateBudgetRequest true "Expense details"
// @Success 201 {object} dto.CreateBudgetResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Trip not found"
// @Failure 500 {object} map[string]string "Error creating budget"
// @Router /trips/{tripId}/budgets [post]
func (h *budgetHandler) createBudget(c *gin.Context) {
	tripID := c.Param("tripId")
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("trip_id", tripID))
	var req dto.CreateBudgetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, logger, err)
		return
	}

	entry, err := h.budgetService.CreateBudgetEntry(c.Request.Context(), tripID, req)
	if err != nil {
		writeServiceError(c, logger, err, "Error creating budget")
		return
	}

	logger.Info("Budget entry created", slog.String("budget_id", entry.BudgetID), slog.String("category", string(entry.Category)))
	c.JSON(http.StatusCreated, dto.CreateBudgetResponse{
		Message: "Budget successfully created",
		Budget:  dto.ToBudgetEntryResponse(entry),
	})
}

// listBudgets godoc
// @Summary List the expenses of a trip
// @Description Returns the ledger ordered by date. A trip without entries answers 404.
// @Tags budgets
// @Produce json
// @Param tripId path string true "Trip ID"
// @Success 200 {object} dto.ListBudgetsResponse
// @Failure 404 {object} map[string]string "No budgets found for this trip"
// @Failure 500 {object} map[string]string "Error fetching budgets"
// @Router /trips/{tripId}/budgets [get]
func (h *budgetHandler) listBudgets(c *gin.Context) {
	tripID := c.Param("tripId")
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("trip_id", tripID))

	entries, err := h.budgetService.ListBudgetEntries(c.Request.Context(), tripID)
	if err != nil {
		writeServiceError(c, logger, err, "Error fetching budgets")
		return
	}
	// Existing clients treat an empty ledger as 404.
	if len(entries) == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "No budgets found for this trip"})
		return
	}

	c.JSON(http.StatusOK, dto.ListBudgetsResponse{
		Message: "Budgets successfully fetched",
		Count:   len(entries),
		Budgets: dto.ToListBudgetEntryResponse(entries),
	})
}

// getBudgetSummary godoc
// @Summary Budget summary of a trip
// @Description Totals, remaining budget and per-category sums in EUR. With currency set the figures are also converted; if no rate is available the response carries a warning instead. Figures are rounded to the currency's minor unit per category; totalSpent is the sum of the rounded categories and remaining is budget minus totalSpent, so converted figures may differ from converting the exact total by a few minor units.
// @Tags budgets
// @Produce json
// @Param tripId path string true "Trip ID"
// @Param currency query string false "Target currency (ISO 4217)"
// @Success 200 {object} dto.BudgetSummaryResponse
// @Failure 400 {object} map[string]string "Unsupported currency"
// @Failure 404 {object} map[string]string "Trip not found"
// @Failure 500 {object} map[string]string "Error generating budget summary"
// @Router /trips/{tripId}/budgets/summary [get]
func (h *budgetHandler) getBudgetSummary(c *gin.Context) {
	tripID := c.Param("tripId")
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("trip_id", tripID))
	var params dto.BudgetSummaryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		bindError(c, logger, err)
		return
	}

	summary, err := h.summaryService.Summarize(c.Request.Context(), tripID, params.Currency)
	if err != nil {
		writeServiceError(c, logger, err, "Error generating budget summary")
		return
	}
	c.JSON(http.StatusOK, dto.ToBudgetSummaryResponse(summary))
}

// deleteBudget godoc
// @Summary Remove an expense
// @Tags budgets
// @Produce json
// @Param tripId path string true "Trip ID"
// @Param budgetId path string true "Budget entry ID"
// @Success 200 {object} dto.DeleteBudgetResponse
// @Failure 404 {object} map[string]string "Budget not found"
// @Failure 500 {object} map[string]string "Error deleting budget"
// @Router /trips/{tripId}/budgets/{budgetId} [delete]
func (h *budgetHandler) deleteBudget(c *gin.Context) {
	tripID, budgetID := c.Param("tripId"), c.Param("budgetId")
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(
		slog.String("trip_id", tripID),
		slog.String("budget_id", budgetID),
	)

	removed, err := h.budgetService.DeleteBudgetEntry(c.Request.Context(), tripID, budgetID)
	if err != nil {
		writeServiceError(c, logger, err, "Error deleting budget")
		return
	}

	logger.Info("Budget entry deleted")
	c.JSON(http.StatusOK, dto.DeleteBudgetResponse{
		Message:       "Budget deleted successfully",
		DeletedBudget: dto.ToBudgetEntryResponse(removed),
	})
}
