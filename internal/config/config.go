package config

import (
	"fmt"
	"os"
)

type AppConfig struct {
	// Server
	HTTPAddr string

	// Hosted account/data service
	AccountServiceURL string
	AccountAnonKey    string
	ProfileTable      string

	// Redis (optional; empty addr disables the login rate limiter)
	RedisAddr string
	RedisPass string

	// External lookups
	ViaCEPBaseURL    string
	NominatimBaseURL string
	DefaultLocation  string
}

// Load reads environment variables into AppConfig. The account service
// endpoint and its anonymous key have no sane defaults; startup fails
// without them.
func Load() (AppConfig, error) {
	cfg := AppConfig{
		HTTPAddr: getEnv("HTTP_ADDR", ":8000"),

		AccountServiceURL: os.Getenv("ACCOUNT_SERVICE_URL"),
		AccountAnonKey:    os.Getenv("ACCOUNT_SERVICE_ANON_KEY"),
		ProfileTable:      getEnv("ACCOUNT_PROFILE_TABLE", "user_profiles"),

		RedisAddr: os.Getenv("REDIS_ADDR"),
		RedisPass: os.Getenv("REDIS_PASS"),

		ViaCEPBaseURL:    getEnv("VIACEP_BASE_URL", "https://viacep.com.br"),
		NominatimBaseURL: getEnv("NOMINATIM_BASE_URL", "https://nominatim.openstreetmap.org"),
		DefaultLocation:  getEnv("DEFAULT_LOCATION", "Brasília DF"),
	}

	if cfg.AccountServiceURL == "" {
		return cfg, fmt.Errorf("ACCOUNT_SERVICE_URL is required")
	}
	if cfg.AccountAnonKey == "" {
		return cfg, fmt.Errorf("ACCOUNT_SERVICE_ANON_KEY is required")
	}

	return cfg, nil
}

// --- Helper functions ---

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
