// Package config loads process configuration from environment variables.
package config

import (
	"fmt"
	"os"
)

type Config struct {
	Env            string
	ListenAddr     string
	GoogleAPIKey   string
	GoogleSearchCX string
	FetchWorkers   int
	FetchTimeoutS  int
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		var out int
		if _, err := fmt.Sscanf(v, "%d", &out); err == nil {
			return out
		}
	}
	return def
}

// Load reads the environment. Missing search credentials are not fatal: the
// primary provider reports them as a provider-level failure and the fallback
// cascade takes over.
func Load() Config {
	return Config{
		Env:            getenv("APP_ENV", "development"),
		ListenAddr:     getenv("LISTEN_ADDR", ":8080"),
		GoogleAPIKey:   os.Getenv("GOOGLE_API_KEY"),
		GoogleSearchCX: os.Getenv("GOOGLE_SEARCH_CX"),
		FetchWorkers:   getenvInt("FETCH_WORKERS", 0),
		FetchTimeoutS:  getenvInt("FETCH_TIMEOUT_SECS", 0),
	}
}
