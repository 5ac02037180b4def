package handlers

import (
	"io/fs"
	"log/slog"
	"net/http"

	"github.com/SscSPs/travel_planner_app/cmd/docs"
	portssvc "github.com/SscSPs/travel_planner_app/internal/core/ports/services"
	"github.com/SscSPs/travel_planner_app/internal/platform/config"
	"github.com/SscSPs/travel_planner_app/web"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {
	registerValidators()

	// Add health check route
	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})

	setupAPIV1Routes(r, services)

	// Swagger routes (typically public or conditionally available)
	setupSwaggerRoutes(r, cfg)

	if cfg.ServeClient {
		setupClientRoutes(r)
	}
}

// setupAPIV1Routes configures the /api/v1 group and delegates to specific entity route registrations
func setupAPIV1Routes(r *gin.Engine, service *portssvc.ServiceContainer) {
	v1 := r.Group("/api/v1")

	trips := v1.Group("/trips")
	registerTripRoutes(trips, service.Trip)
	registerBudgetRoutes(trips, service.Budget, service.BudgetSummary)

	registerDestinationRoutes(v1, service.Destination)
	registerCurrencyRoutes(v1, service.Currency, service.BudgetSummary)
}

// setupSwaggerRoutes configures the swagger documentation routes
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/api/v1"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}

// setupClientRoutes serves the embedded budget view at / and its assets under /static.
func setupClientRoutes(r *gin.Engine) {
	static, err := fs.Sub(web.StaticFS, "static")
	if err != nil {
		slog.Error("Embedded client assets missing", slog.String("error", err.Error()))
		return
	}
	r.StaticFS("/static", http.FS(static))
	r.GET("/", func(c *gin.Context) {
		c.FileFromFS("/", http.FS(static))
	})
}
