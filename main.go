// ABOUTME: Entry point for the hydronic sizing service
// ABOUTME: Provides HTTP API for pipe sizing, chiller search, and plant analysis

package main

import (
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/mfreeman/hydronic-sizer/cache"
	"github.com/mfreeman/hydronic-sizer/config"
	"github.com/mfreeman/hydronic-sizer/handlers"
	"github.com/mfreeman/hydronic-sizer/logger"
	"github.com/mfreeman/hydronic-sizer/middleware"
)

func main() {
	// Initialize structured logging
	logger.Init()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	slog.Info("Starting hydronic sizing service")
	slog.Info("Sizing defaults",
		"fluid", cfg.DefaultFluid,
		"delta_t_f", cfg.DefaultDeltaTF,
		"max_velocity_ft_s", cfg.DefaultMaxVelocity,
		"max_dp_psi", cfg.DefaultMaxDPPsi,
	)

	// Initialize cache
	cacheTTL := time.Duration(cfg.CacheTTL) * time.Second
	c := cache.New(cacheTTL)
	slog.Info("Cache initialized", "ttl", cacheTTL)

	// Initialize handlers
	h := handlers.NewHandler(cfg, c)

	// Register routes with CORS and logging middleware. Method-qualified
	// patterns need a separate OPTIONS registration for preflight.
	mux := http.NewServeMux()
	for _, rt := range h.Routes() {
		wrapped := middleware.CORS(middleware.LogRequest(rt.Handler))
		mux.HandleFunc(rt.Method+" "+rt.Path, wrapped)
		mux.HandleFunc(http.MethodOptions+" "+rt.Path, wrapped)
	}

	// Start server
	addr := ":" + cfg.Port
	slog.Info("Server listening", "addr", addr)
	if err := http.ListenAndServe(addr, mux); err != nil {
		slog.Error("Server failed", "error", err)
		os.Exit(1)
	}
}
