package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/travel_planner_app/internal/core/ports/services"
	"github.com/SscSPs/travel_planner_app/internal/dto"
	"github.com/SscSPs/travel_planner_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// tripHandler handles HTTP requests related to trips.
type tripHandler struct {
	tripService portssvc.TripSvcFacade
}

func newTripHandler(ts portssvc.TripSvcFacade) *tripHandler {
	return &tripHandler{tripService: ts}
}

// registerTripRoutes registers routes related to trips and their destinations.
func registerTripRoutes(trips *gin.RouterGroup, tripService portssvc.TripSvcFacade) {
	h := newTripHandler(tripService)

	trips.GET("", h.listTrips)
	trips.POST("", h.createTrip)
	trips.GET("/search", h.searchTrips)
	trips.GET("/destination/:destinationId/trips", h.listTripsByDestination)
	trips.GET("/:tripId", h.getTrip)
	trips.PUT("/:tripId", h.updateTrip)
	trips.DELETE("/:tripId", h.deleteTrip)
	trips.POST("/:tripId/destinations/:destinationId", h.addDestination)
	trips.DELETE("/:tripId/destinations/:destinationId", h.removeDestination)
}

// listTrips godoc
// @Summary List trips
// @Description Retrieves every trip, newest first
// @Tags trips
// @Produce json
// @Success 200 {array} dto.TripResponse
// @Failure 500 {object} map[string]string "Failed to list trips"
// @Router /trips [get]
func (h *tripHandler) listTrips(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	trips, err := h.tripService.ListTrips(c.Request.Context())
	if err != nil {
		writeServiceError(c, logger, err, "Failed to list trips")
		return
	}

	logger.Info("Trips listed successfully", slog.Int("count", len(trips)))
	c.JSON(http.StatusOK, dto.ToListTripResponse(trips))
}

// createTrip godoc
// @Summary Create a trip
// @Description Creates a trip. The budget is in EUR and defaults to 0.
// @Tags trips
// @Accept json
// @Produce json
// @Param trip body dto.CreateTripRequest true "Trip details"
// @Success 201 {object} dto.TripResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 500 {object} map[string]string "Failed to create trip"
// @Router /trips [post]
func (h *tripHandler) createTrip(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateTripRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, logger, err)
		return
	}

	trip, err := h.tripService.CreateTrip(c.Request.Context(), req)
	if err != nil {
		writeServiceError(c, logger, err, "Failed to create trip")
		return
	}

	logger.Info("Trip created successfully", slog.String("trip_id", trip.TripID))
	c.JSON(http.StatusCreated, dto.ToTripResponse(trip))
}

// searchTrips godoc
// @Summary Search trips
// @Description Finds trips by name (case-insensitive substring) and date bounds
// @Tags trips
// @Produce json
// @Param name query string false "Part of the trip name"
// @Param startDate query string false "Earliest start date (YYYY-MM-DD)"
// @Param endDate query string false "Latest end date (YYYY-MM-DD)"
// @Success 200 {array} dto.TripResponse
// @Failure 400 {object} map[string]string "Invalid date"
// @Failure 500 {object} map[string]string "Failed to search trips"
// @Router /trips/search [get]
func (h *tripHandler) searchTrips(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.SearchTripsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		bindError(c, logger, err)
		return
	}

	trips, err := h.tripService.SearchTrips(c.Request.Context(), params)
	if err != nil {
		writeServiceError(c, logger, err, "Failed to search trips")
		return
	}
	c.JSON(http.StatusOK, dto.ToListTripResponse(trips))
}

// getTrip godoc
// @Summary Get a trip
// @Description Retrieves a trip with its destinations
// @Tags trips
// @Produce json
// @Param tripId path string true "Trip ID"
// @Success 200 {object} dto.TripDetailsResponse
// @Failure 404 {object} map[string]string "Trip not found"
// @Failure 500 {object} map[string]string "Failed to retrieve trip"
// @Router /trips/{tripId} [get]
func (h *tripHandler) getTrip(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("trip_id", c.Param("tripId")))

	details, err := h.tripService.GetTrip(c.Request.Context(), c.Param("tripId"))
	if err != nil {
		writeServiceError(c, logger, err, "Failed to retrieve trip")
		return
	}
	c.JSON(http.StatusOK, dto.ToTripDetailsResponse(details))
}

// updateTrip godoc
// @Summary Update a trip
// @Description Replaces every editable field of a trip, budget included
// @Tags trips
// @Accept json
// @Produce json
// @Param tripId path string true "Trip ID"
// @Param trip body dto.UpdateTripRequest true "Trip details"
// @Success 200 {object} dto.TripResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Trip not found"
// @Failure 500 {object} map[string]string "Failed to update trip"
// @Router /trips/{tripId} [put]
func (h *tripHandler) updateTrip(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("trip_id", c.Param("tripId")))
	var req dto.UpdateTripRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, logger, err)
		return
	}

	trip, err := h.tripService.UpdateTrip(c.Request.Context(), c.Param("tripId"), req)
	if err != nil {
		writeServiceError(c, logger, err, "Failed to update trip")
		return
	}
	c.JSON(http.StatusOK, dto.ToTripResponse(trip))
}

// deleteTrip godoc
// @Summary Delete a trip
// @Description Deletes a trip together with its budget entries
// @Tags trips
// @Produce json
// @Param tripId path string true "Trip ID"
// @Success 200 {object} map[string]string "Trip deleted successfully"
// @Failure 404 {object} map[string]string "Trip not found"
// @Failure 500 {object} map[string]string "Failed to delete trip"
// @Router /trips/{tripId} [delete]
func (h *tripHandler) deleteTrip(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("trip_id", c.Param("tripId")))

	if err := h.tripService.DeleteTrip(c.Request.Context(), c.Param("tripId")); err != nil {
		writeServiceError(c, logger, err, "Failed to delete trip")
		return
	}

	logger.Info("Trip deleted successfully")
	c.JSON(http.StatusOK, gin.H{"message": "Trip deleted successfully"})
}

// addDestination godoc
// @Summary Add a destination to a trip
// @Tags trips
// @Produce json
// @Param tripId path string true "Trip ID"
// @Param destinationId path string true "Destination ID"
// @Success 200 {object} dto.TripResponse
// @Failure 404 {object} map[string]string "Trip or destination not found"
// @Failure 500 {object} map[string]string "Failed to add destination"
// @Router /trips/{tripId}/destinations/{destinationId} [post]
func (h *tripHandler) addDestination(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(
		slog.String("trip_id", c.Param("tripId")),
		slog.String("destination_id", c.Param("destinationId")),
	)

	trip, err := h.tripService.AddDestinationToTrip(c.Request.Context(), c.Param("tripId"), c.Param("destinationId"))
	if err != nil {
		writeServiceError(c, logger, err, "Failed to add destination")
		return
	}
	c.JSON(http.StatusOK, dto.ToTripResponse(trip))
}

// removeDestination godoc
// @Summary Remove a destination from a trip
// @Tags trips
// @Produce json
// @Param tripId path string true "Trip ID"
// @Param destinationId path string true "Destination ID"
// @Success 200 {object} dto.TripResponse
// @Failure 404 {object} map[string]string "Trip not found"
// @Failure 500 {object} map[string]string "Failed to remove destination"
// @Router /trips/{tripId}/destinations/{destinationId} [delete]
func (h *tripHandler) removeDestination(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(
		slog.String("trip_id", c.Param("tripId")),
		slog.String("destination_id", c.Param("destinationId")),
	)

	trip, err := h.tripService.RemoveDestinationFromTrip(c.Request.Context(), c.Param("tripId"), c.Param("destinationId"))
	if err != nil {
		writeServiceError(c, logger, err, "Failed to remove destination")
		return
	}
	c.JSON(http.StatusOK, dto.ToTripResponse(trip))
}

// listTripsByDestination godoc
// @Summary List trips visiting a destination
// @Tags trips
// @Produce json
// @Param destinationId path string true "Destination ID"
// @Success 200 {array} dto.TripResponse
// @Failure 404 {object} map[string]string "Destination not found"
// @Failure 500 {object} map[string]string "Failed to list trips"
// @Router /trips/destination/{destinationId}/trips [get]
func (h *tripHandler) listTripsByDestination(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("destination_id", c.Param("destinationId")))

	trips, err := h.tripService.ListTripsByDestination(c.Request.Context(), c.Param("destinationId"))
	if err != nil {
		writeServiceError(c, logger, err, "Failed to list trips")
		return
	}
	c.JSON(http.StatusOK, dto.ToListTripResponse(trips))
}
