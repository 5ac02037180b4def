package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/SscSPs/travel_planner_app/internal/adapters/exchangerate/frankfurter"
	portsrepo "github.com/SscSPs/travel_planner_app/internal/core/ports/repositories"
	"github.com/SscSPs/travel_planner_app/internal/core/services"
	"github.com/SscSPs/travel_planner_app/internal/handlers"
	"github.com/SscSPs/travel_planner_app/internal/middleware"
	"github.com/SscSPs/travel_planner_app/internal/platform/config"
	"github.com/SscSPs/travel_planner_app/internal/repositories/database/memory"
	"github.com/SscSPs/travel_planner_app/internal/repositories/database/mongodb"
	"github.com/SscSPs/travel_planner_app/internal/repositories/database/pgsql"
	"github.com/SscSPs/travel_planner_app/pkg/database"
	"github.com/gin-gonic/gin"
)

func runServe(ctx context.Context) error {
	cfg, logger := bootstrap()
	if ctx == nil {
		ctx = context.Background()
	}

	rates := frankfurter.NewClient(cfg.ExchangeRateAPIURL, cfg.ExchangeRateAPITimeout)

	repos, closeStore, err := openStore(ctx, cfg, rates)
	if err != nil {
		return err
	}
	defer closeStore()

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	rateLimiter, err := middleware.NewRateLimiter(cfg.RateLimit)
	if err != nil {
		return fmt.Errorf("invalid RATE_LIMIT: %w", err)
	}

	// Global middleware (logging, recovery, hardening)
	r.Use(
		middleware.StructuredLoggingMiddleware(logger),
		gin.Recovery(),
		middleware.SecurityHeaders(cfg.IsProduction),
		middleware.Cors(cfg.CORSAllowedOrigins),
		middleware.Compression(),
		middleware.RateLimit(rateLimiter),
	)

	if err := r.SetTrustedProxies(nil); err != nil {
		return fmt.Errorf("set trusted proxies: %w", err)
	}

	handlers.RegisterRoutes(r, cfg, services.NewServiceContainer(cfg, repos))

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	serveErr := make(chan error, 1)
	go func() {
		logger.Info("Server starting", slog.String("port", cfg.Port), slog.String("store", cfg.StoreDriver))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	sigCtx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	select {
	case err, ok := <-serveErr:
		if ok {
			return fmt.Errorf("server failed to run: %w", err)
		}
		return nil
	case <-sigCtx.Done():
	}

	logger.Info("Shutting down server", slog.Duration("timeout", cfg.ShutdownTimeout))
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown: %w", err)
	}
	logger.Info("Server stopped")
	return nil
}

// openStore builds the repository provider selected by STORE_DRIVER and
// returns a function releasing its connections.
func openStore(ctx context.Context, cfg *config.Config, rates portsrepo.ExchangeRateProvider) (portsrepo.RepositoryProvider, func(), error) {
	switch cfg.StoreDriver {
	case config.StoreDriverMemory:
		slog.Warn("Using the in-memory store; data is lost on restart.")
		return memory.NewRepositoryProvider(rates), func() {}, nil

	case config.StoreDriverMongo:
		client, err := database.NewMongoClient(ctx, cfg.MongoURL)
		if err != nil {
			return portsrepo.RepositoryProvider{}, nil, fmt.Errorf("initialize mongo client: %w", err)
		}
		db := client.Database(cfg.MongoDatabase)
		if err := mongodb.EnsureIndexes(ctx, db); err != nil {
			database.CloseMongoClient(context.Background(), client)
			return portsrepo.RepositoryProvider{}, nil, fmt.Errorf("ensure mongo indexes: %w", err)
		}
		return mongodb.NewRepositoryProvider(db, rates), func() {
			database.CloseMongoClient(context.Background(), client)
		}, nil

	default:
		if cfg.RunMigrations {
			slog.Info("Running database migrations...")
			if err := database.RunMigrations(cfg.DatabaseURL, false); err != nil {
				return portsrepo.RepositoryProvider{}, nil, err
			}
		}
		pool, err := database.NewPgxPool(ctx, cfg.DatabaseURL, cfg.EnableDBCheck)
		if err != nil {
			return portsrepo.RepositoryProvider{}, nil, fmt.Errorf("initialize database pool: %w", err)
		}
		return pgsql.NewRepositoryProvider(pool, rates), func() {
			database.ClosePgxPool(pool)
		}, nil
	}
}
