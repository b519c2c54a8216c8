package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type AppConfig struct {
	// GeminiAPIKey is read once here and never validated; a bad key shows up
	// as a provider failure on the first search.
	GeminiAPIKey  string
	GeminiModel   string
	GeminiBaseURL string

	// HTTPTimeout bounds each outbound provider call.
	HTTPTimeout time.Duration
	// SearchTimeout bounds a whole dashboard search.
	SearchTimeout time.Duration

	// FallbackLocation is searched when the browser gives no coordinates.
	FallbackLocation string

	// RefreshInterval re-runs each live dashboard's query (0 = off).
	RefreshInterval time.Duration

	// Session retention.
	SessionMax    int           // max number of live dashboards
	SessionMaxAge time.Duration // idle sessions older than this are dropped

	LogLevel string
	Port     string
}

// Load reads configuration from environment with sensible defaults.
func Load() (*AppConfig, error) {
	if err := godotenv.Load(); err != nil {
		log.Printf("INFO: No .env file found or error loading it: %v", err)
	}
	cfg := &AppConfig{}

	cfg.GeminiAPIKey = os.Getenv("GEMINI_API_KEY")
	if cfg.GeminiAPIKey == "" {
		cfg.GeminiAPIKey = os.Getenv("API_KEY")
	}
	cfg.GeminiModel = getenvDefault("GEMINI_MODEL", "gemini-2.5-flash")
	cfg.GeminiBaseURL = getenvDefault("GEMINI_BASE_URL", "https://generativelanguage.googleapis.com")

	var err error
	if cfg.HTTPTimeout, err = getenvDuration("HTTP_TIMEOUT", "60s"); err != nil {
		return nil, err
	}
	if cfg.SearchTimeout, err = getenvDuration("SEARCH_TIMEOUT", "90s"); err != nil {
		return nil, err
	}
	if cfg.RefreshInterval, err = getenvDuration("REFRESH_INTERVAL", "0"); err != nil {
		return nil, err
	}
	if cfg.SessionMaxAge, err = getenvDuration("SESSION_MAX_AGE", "24h"); err != nil {
		return nil, err
	}

	cfg.FallbackLocation = getenvDefault("FALLBACK_LOCATION", "London, UK")
	cfg.SessionMax = getenvInt("SESSION_MAX", 1000)
	cfg.LogLevel = getenvDefault("LOG_LEVEL", "info")
	cfg.Port = getenvDefault("PORT", "8080")

	return cfg, nil
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		n, err := strconv.Atoi(v)
		if err == nil {
			return n
		}
	}
	return def
}

func getenvDuration(key, def string) (time.Duration, error) {
	d, err := time.ParseDuration(getenvDefault(key, def))
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return d, nil
}
