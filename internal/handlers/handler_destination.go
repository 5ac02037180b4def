package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/travel_planner_app/internal/core/ports/services"
	"github.com/SscSPs/travel_planner_app/internal/dto"
	"github.com/SscSPs/travel_planner_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// destinationHandler handles HTTP requests related to destinations.
type destinationHandler struct {
	destinationService portssvc.DestinationSvcFacade
}

func newDestinationHandler(ds portssvc.DestinationSvcFacade) *destinationHandler {
	return &destinationHandler{destinationService: ds}
}

// registerDestinationRoutes registers routes related to destinations.
func registerDestinationRoutes(rg *gin.RouterGroup, destinationService portssvc.DestinationSvcFacade) {
	h := newDestinationHandler(destinationService)

	destinations := rg.Group("/destinations")
	{
		destinations.GET("", h.listDestinations)
		destinations.POST("", h.createDestination)
		destinations.GET("/:destinationId", h.getDestination)
		destinations.PUT("/:destinationId", h.updateDestination)
		destinations.DELETE("/:destinationId", h.deleteDestination)
	}
}

// listDestinations godoc
// @Summary List destinations
// @Tags destinations
// @Produce json
// @Success 200 {array} dto.DestinationResponse
// @Failure 500 {object} map[string]string "Failed to list destinations"
// @Router /destinations [get]
func (h *destinationHandler) listDestinations(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	destinations, err := h.destinationService.ListDestinations(c.Request.Context())
	if err != nil {
		writeServiceError(c, logger, err, "Failed to list destinations")
		return
	}
	c.JSON(http.StatusOK, dto.ToListDestinationResponse(destinations))
}

// createDestination godoc
// @Summary Create a destination
// @Tags destinations
// @Accept json
// @Produce json
// @Param destination body dto.CreateDestinationRequest true "Destination details"
// @Success 201 {object} dto.DestinationResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 500 {object} map[string]string "Failed to create destination"
// @Router /destinations [post]
func (h *destinationHandler) createDestination(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateDestinationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, logger, err)
		return
	}

	destination, err := h.destinationService.CreateDestination(c.Request.Context(), req)
	if err != nil {
		writeServiceError(c, logger, err, "Failed to create destination")
		return
	}

	logger.Info("Destination created successfully", slog.String("destination_id", destination.DestinationID))
	c.JSON(http.StatusCreated, dto.ToDestinationResponse(destination))
}

// getDestination godoc
// @Summary Get a destination
// @Tags destinations
// @Produce json
// @Param destinationId path string true "Destination ID"
// @Success 200 {object} dto.DestinationResponse
// @Failure 404 {object} map[string]string "Destination not found"
// @Failure 500 {object} map[string]string "Failed to retrieve destination"
// @Router /destinations/{destinationId} [get]
func (h *destinationHandler) getDestination(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("destination_id", c.Param("destinationId")))

	destination, err := h.destinationService.GetDestination(c.Request.Context(), c.Param("destinationId"))
	if err != nil {
		writeServiceError(c, logger, err, "Failed to retrieve destination")
		return
	}
	c.JSON(http.StatusOK, dto.ToDestinationResponse(destination))
}

// updateDestination godoc
// @Summary Update a destination
// @Description Changes only the fields present in the body
// @Tags destinations
// @Accept json
// @Produce json
// @Param destinationId path string true "Destination ID"
// @Param destination body dto.UpdateDestinationRequest true "Fields to change"
// @Success 200 {object} dto.DestinationResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Destination not found"
// @Failure 500 {object} map[string]string "Failed to update destination"
// @Router /destinations/{destinationId} [put]
func (h *destinationHandler) updateDestination(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("destination_id", c.Param("destinationId")))
	var req dto.UpdateDestinationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, logger, err)
		return
	}

	destination, err := h.destinationService.UpdateDestination(c.Request.Context(), c.Param("destinationId"), req)
	if err != nil {
		writeServiceError(c, logger, err, "Failed to update destination")
		return
	}
	c.JSON(http.StatusOK, dto.ToDestinationResponse(destination))
}

// deleteDestination godoc
// @Summary Delete a destination
// @Description Deletes a destination and removes it from every trip
// @Tags destinations
// @Produce json
// @Param destinationId path string true "Destination ID"
// @Success 200 {object} map[string]string "Destination deleted successfully"
// @Failure 404 {object} map[string]string "Destination not found"
// @Failure 500 {object} map[string]string "Failed to delete destination"
// @Router /destinations/{destinationId} [delete]
func (h *destinationHandler) deleteDestination(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("destination_id", c.Param("destinationId")))

	if err := h.destinationService.DeleteDestination(c.Request.Context(), c.Param("destinationId")); err != nil {
		writeServiceError(c, logger, err, "Failed to delete destination")
		return
	}

	logger.Info("Destination deleted successfully")
	c.JSON(http.StatusOK, gin.H{"message": "Destination deleted successfully"})
}
