package config

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	Port        string
	Env         string
	DatabaseDSN string

	// CookieTTLDays is the lifetime of persistent session cookies
	// (stayLoggedIn=true). Non-persistent cookies are session-scoped.
	CookieTTLDays int

	// PollInterval is how often the client SDK re-verifies its session
	// token against the server. There is no push channel, so polling is
	// the only way to notice an externally invalidated session.
	PollInterval time.Duration

	// ClientStorePath is where the client SDK keeps its durable copy of
	// the last-fetched user profile.
	ClientStorePath string
}

func Load() Config {
	return Config{
		Port:            getEnv("PORT", "5000"),
		Env:             getEnv("ENV", "development"),
		DatabaseDSN:     getEnv("DATABASE_DSN", "root:password@tcp(127.0.0.1:3306)/movieweb?parseTime=true"),
		CookieTTLDays:   getEnvInt("SESSION_COOKIE_TTL_DAYS", 30),
		PollInterval:    getEnvDuration("SESSION_POLL_INTERVAL", time.Second),
		ClientStorePath: getEnv("CLIENT_STORE_PATH", "movieweb-client.db"),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}
