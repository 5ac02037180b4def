package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/SscSPs/travel_planner_app/internal/apperrors"
	"github.com/gin-gonic/gin"
)

// writeServiceError maps a service error onto a status code and a JSON error
// body. Unexpected errors are logged and answered with fallbackMsg so internals
// never reach the client.
func writeServiceError(c *gin.Context, logger *slog.Logger, err error, fallbackMsg string) {
	var appErr *apperrors.AppError
	message := err.Error()
	if errors.As(err, &appErr) && appErr.Message != "" {
		message = appErr.Message
	}

	switch {
	case errors.Is(err, apperrors.ErrNotFound):
		logger.Warn("Resource not found", slog.String("error", err.Error()))
		c.JSON(http.StatusNotFound, gin.H{"error": capitalize(message)})
	case errors.Is(err, apperrors.ErrUnsupportedCurrency):
		logger.Warn("Unsupported currency", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unsupported " + message})
	case errors.Is(err, apperrors.ErrValidation):
		logger.Warn("Validation error", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": capitalize(message)})
	case errors.Is(err, apperrors.ErrDuplicate):
		logger.Warn("Duplicate resource", slog.String("error", err.Error()))
		c.JSON(http.StatusConflict, gin.H{"error": capitalize(message)})
	case errors.Is(err, apperrors.ErrConversion):
		logger.Error("Exchange rate lookup failed", slog.String("error", err.Error()))
		c.JSON(http.StatusBadGateway, gin.H{"error": fallbackMsg})
	default:
		logger.Error(fallbackMsg, slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": fallbackMsg})
	}
}

// bindError answers a request whose body or query could not be bound.
func bindError(c *gin.Context, logger *slog.Logger, err error) {
	logger.Warn("Failed to bind request", slog.String("error", err.Error()))
	c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
}

func capitalize(s string) string {
	if s == "" || s[0] < 'a' || s[0] > 'z' {
		return s
	}
	return string(s[0]-'a'+'A') + s[1:]
}
