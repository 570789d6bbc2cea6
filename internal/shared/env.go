package shared

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Environment variables recognised by [ApplyEnv].
const (
	EnvBaseURL   = "LRCX_LRCLIB_URL"
	EnvUserAgent = "LRCX_USER_AGENT"
	EnvRateLimit = "LRCX_RATE_LIMIT"
	EnvWorkers   = "LRCX_WORKERS"
	EnvRomanize  = "LRCX_ROMANIZE"
	EnvEmbed     = "LRCX_EMBED"
	EnvLogLevel  = "LRCX_LOG_LEVEL"
)

// LoadEnv loads the given .env files into the process environment.
//
// With no arguments godotenv reads ./.env. A missing file is not an error;
// existing variables are never overwritten.
func LoadEnv(files ...string) {
	_ = godotenv.Load(files...)
}

// ApplyEnv overrides config values with any LRCX_* variables that are set.
func ApplyEnv(c *Config) error {
	if v, ok := os.LookupEnv(EnvBaseURL); ok && v != "" {
		c.LRCLib.BaseURL = v
	}
	if v, ok := os.LookupEnv(EnvUserAgent); ok && v != "" {
		c.LRCLib.UserAgent = v
	}
	if v, ok := os.LookupEnv(EnvRateLimit); ok && v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("%w: %s=%q", ErrInvalidConfig, EnvRateLimit, v)
		}
		c.LRCLib.RateLimit = f
	}
	if v, ok := os.LookupEnv(EnvWorkers); ok && v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%w: %s=%q", ErrInvalidConfig, EnvWorkers, v)
		}
		c.Fetch.Workers = n
	}
	if v, ok := os.LookupEnv(EnvRomanize); ok && v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%w: %s=%q", ErrInvalidConfig, EnvRomanize, v)
		}
		c.Fetch.Romanize = b
	}
	if v, ok := os.LookupEnv(EnvEmbed); ok && v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%w: %s=%q", ErrInvalidConfig, EnvEmbed, v)
		}
		c.Fetch.Embed = b
	}
	if v, ok := os.LookupEnv(EnvLogLevel); ok && v != "" {
		c.Log.Level = v
	}
	return nil
}
