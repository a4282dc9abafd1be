// Package env reads the small set of typed settings the scheduling server
// needs from the process environment.
package env

import (
	"os"
	"strconv"
)

// Env identifies the deployment environment, mirroring the ENV=dev check
// the teacher's main.go uses to gate CORS.
type Env string

const (
	Dev  Env = "dev"
	Prod Env = "prod"
)

// Config holds the server's environment-derived settings.
type Config struct {
	// Addr is the HTTP listen address.
	Addr string
	// Environment gates dev-only middleware (CORS).
	Environment Env
	// RedisAddr, when non-empty, enables /compare memoization.
	RedisAddr string
	// CacheTTLSeconds controls how long a /compare result is memoized.
	CacheTTLSeconds int
}

// Load reads Config from the environment, applying the same defaults the
// teacher's main.go hardcodes inline.
func Load() Config {
	return Config{
		Addr:            getString("ADDR", "127.0.0.1:8080"),
		Environment:     Env(getString("ENV", "prod")),
		RedisAddr:       os.Getenv("REDIS_ADDR"),
		CacheTTLSeconds: getInt("COMPARE_CACHE_TTL_SECONDS", 30),
	}
}

func (c Config) IsDev() bool {
	return c.Environment == Dev
}

func getString(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}
