package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/pawsome/internal/flagx"
	"github.com/dmitrijs2005/pawsome/internal/timex"
)

// JsonConfig is the on-disk shape of the optional JSON config file.
// Durations accept both "30m" style strings and integer nanoseconds.
type JsonConfig struct {
	HTTPAddr           string         `json:"http_addr"`
	DatabaseDriver     string         `json:"database_driver"`
	DatabaseDSN        string         `json:"database_dsn"`
	BcryptCost         int            `json:"bcrypt_cost"`
	SessionTTL         timex.Duration `json:"session_ttl"`
	RememberTokenTTL   timex.Duration `json:"remember_token_ttl"`
	CORSAllowedOrigins []string       `json:"cors_allowed_origins"`
	LogLevel           string         `json:"log_level"`
	ShutdownTimeout    timex.Duration `json:"shutdown_timeout"`
}

// parseJson loads the file named by -c / -config, if any, and copies every
// field that is set in the file into config. It panics when the file cannot
// be read or is not valid JSON.
func parseJson(config *Config) {
	path := flagx.ConfigFileFlag()
	if path == "" {
		return
	}

	file, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	c := &JsonConfig{}
	if err := json.Unmarshal(file, c); err != nil {
		panic(err)
	}

	if c.HTTPAddr != "" {
		config.HTTPAddr = c.HTTPAddr
	}
	if c.DatabaseDriver != "" {
		config.DatabaseDriver = c.DatabaseDriver
	}
	if c.DatabaseDSN != "" {
		config.DatabaseDSN = c.DatabaseDSN
	}
	if c.BcryptCost != 0 {
		config.BcryptCost = c.BcryptCost
	}
	if c.SessionTTL.Duration != 0 {
		config.SessionTTL = c.SessionTTL.Duration
	}
	if c.RememberTokenTTL.Duration != 0 {
		config.RememberTokenTTL = c.RememberTokenTTL.Duration
	}
	if len(c.CORSAllowedOrigins) > 0 {
		config.CORSAllowedOrigins = c.CORSAllowedOrigins
	}
	if c.LogLevel != "" {
		config.LogLevel = c.LogLevel
	}
	if c.ShutdownTimeout.Duration != 0 {
		config.ShutdownTimeout = c.ShutdownTimeout.Duration
	}
}
