package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// dotenvFiles are loaded, when present, before the process environment is
// read. Variables already set in the environment are not overridden.
var dotenvFiles = []string{".env"}

// parseEnv overlays Config with PAWSOME_* environment variables.
//
//	PAWSOME_HTTP_ADDR             bind address
//	PAWSOME_DB_DRIVER             pgx | sqlite
//	PAWSOME_DB_DSN                database DSN
//	PAWSOME_BCRYPT_COST           integer
//	PAWSOME_SESSION_TTL           Go duration, e.g. "12h"
//	PAWSOME_REMEMBER_TTL          Go duration, e.g. "720h"
//	PAWSOME_CORS_ORIGINS          comma separated list
//	PAWSOME_LOG_LEVEL             debug | info | warn | error
//	PAWSOME_SHUTDOWN_TIMEOUT      Go duration
//
// Malformed numbers and durations are ignored and the previous value kept.
func parseEnv(cfg *Config) {
	for _, f := range dotenvFiles {
		if _, err := os.Stat(f); err == nil {
			_ = godotenv.Load(f)
		}
	}

	setString(&cfg.HTTPAddr, "PAWSOME_HTTP_ADDR")
	setString(&cfg.DatabaseDriver, "PAWSOME_DB_DRIVER")
	setString(&cfg.DatabaseDSN, "PAWSOME_DB_DSN")
	setString(&cfg.LogLevel, "PAWSOME_LOG_LEVEL")

	if v, ok := os.LookupEnv("PAWSOME_BCRYPT_COST"); ok {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.BcryptCost = n
		}
	}

	setDuration(&cfg.SessionTTL, "PAWSOME_SESSION_TTL")
	setDuration(&cfg.RememberTokenTTL, "PAWSOME_REMEMBER_TTL")
	setDuration(&cfg.ShutdownTimeout, "PAWSOME_SHUTDOWN_TIMEOUT")

	if v, ok := os.LookupEnv("PAWSOME_CORS_ORIGINS"); ok && v != "" {
		cfg.CORSAllowedOrigins = splitList(v)
	}
}

func setString(dst *string, key string) {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		*dst = v
	}
}

func setDuration(dst *time.Duration, key string) {
	if v, ok := os.LookupEnv(key); ok {
		if d, err := time.ParseDuration(v); err == nil {
			*dst = d
		}
	}
}

func splitList(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
