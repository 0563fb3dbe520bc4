// ABOUTME: Configuration loader for the plant sizing service
// ABOUTME: Loads settings from environment variables (and .env) with defaults

package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	// Server
	Port     string
	CacheTTL int // seconds, for plant analysis responses

	// Sizing defaults applied when requests omit them
	DefaultFluid       string
	DefaultDeltaTF     float64 // °F
	DefaultMaxVelocity float64 // ft/s
	DefaultMaxDPPsi    float64 // psi over the 100 ft reference length

	// Economics
	ElectricityRate float64 // $/kWh
}

func Load() (*Config, error) {
	// .env is optional; real environments set variables directly
	_ = godotenv.Load()

	cfg := &Config{
		Port:     getEnv("PORT", "8080"),
		CacheTTL: getEnvInt("CACHE_TTL", 300),

		DefaultFluid:       getEnv("DEFAULT_FLUID", "water"),
		DefaultDeltaTF:     getEnvFloat("DEFAULT_DELTA_T_F", 15),
		DefaultMaxVelocity: getEnvFloat("DEFAULT_MAX_VELOCITY_FPS", 12),
		DefaultMaxDPPsi:    getEnvFloat("DEFAULT_MAX_DP_PSI", 20),

		ElectricityRate: getEnvFloat("ELECTRICITY_RATE", 0.12),
	}

	if cfg.CacheTTL < 1 || cfg.CacheTTL > 86400 {
		return nil, fmt.Errorf("CACHE_TTL must be between 1 and 86400 seconds, got %d", cfg.CacheTTL)
	}
	for _, check := range []struct {
		name  string
		value float64
	}{
		{"DEFAULT_DELTA_T_F", cfg.DefaultDeltaTF},
		{"DEFAULT_MAX_VELOCITY_FPS", cfg.DefaultMaxVelocity},
		{"DEFAULT_MAX_DP_PSI", cfg.DefaultMaxDPPsi},
		{"ELECTRICITY_RATE", cfg.ElectricityRate},
	} {
		if check.value <= 0 {
			return nil, fmt.Errorf("%s must be positive, got %g", check.name, check.value)
		}
	}

	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatVal, err := strconv.ParseFloat(value, 64); err == nil {
			return floatVal
		}
	}
	return defaultValue
}
