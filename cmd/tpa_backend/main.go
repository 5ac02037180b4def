package main

import (
	"log/slog"
	"os"
)

// @title Travel Planner API
// @version 1.0
// @description Trips, destinations and per-trip expense ledgers with multi-currency budget reporting.

// @host localhost:8080
// @BasePath /api/v1
func main() {
	if err := rootCommand().Execute(); err != nil {
		slog.Error("Command failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
