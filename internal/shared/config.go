package shared

import (
	_ "embed"
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"
)

//go:embed config.example.toml
var exampleConf []byte

// Config represents the application configuration loaded from a TOML file.
type Config struct {
	LRCLib LRCLibConfig `toml:"lrclib" json:"lrclib"`
	Fetch  FetchConfig  `toml:"fetch" json:"fetch"`
	Log    LogConfig    `toml:"log" json:"log"`
}

// LRCLibConfig contains settings for the lyrics lookup service.
type LRCLibConfig struct {
	BaseURL        string  `toml:"base_url" json:"base_url"`
	UserAgent      string  `toml:"user_agent" json:"user_agent"`
	TimeoutSeconds int     `toml:"timeout_seconds" json:"timeout_seconds"`
	RateLimit      float64 `toml:"rate_limit" json:"rate_limit"`
}

// FetchConfig contains defaults for a library run.
type FetchConfig struct {
	Workers           int  `toml:"workers" json:"workers"`
	DurationTolerance int  `toml:"duration_tolerance" json:"duration_tolerance"`
	Romanize          bool `toml:"romanize" json:"romanize"`
	Embed             bool `toml:"embed" json:"embed"`
}

// LogConfig contains logger settings.
type LogConfig struct {
	Level string `toml:"level" json:"level"`
	File  string `toml:"file" json:"file"`
}

// Timeout returns the per-request timeout, falling back to ten seconds.
func (c LRCLibConfig) Timeout() time.Duration {
	if c.TimeoutSeconds <= 0 {
		return 10 * time.Second
	}
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// Validate reports the first invalid value in the configuration.
func (c *Config) Validate() error {
	if c.LRCLib.BaseURL == "" {
		return fmt.Errorf("%w: lrclib.base_url is empty", ErrInvalidConfig)
	}
	if c.Fetch.Workers < 1 {
		return fmt.Errorf("%w: fetch.workers must be at least 1, got %d", ErrInvalidConfig, c.Fetch.Workers)
	}
	if c.Fetch.DurationTolerance < 0 {
		return fmt.Errorf("%w: fetch.duration_tolerance must not be negative", ErrInvalidConfig)
	}
	if c.LRCLib.RateLimit < 0 {
		return fmt.Errorf("%w: lrclib.rate_limit must not be negative", ErrInvalidConfig)
	}
	if _, err := ParseLogLevel(c.Log.Level); err != nil {
		return err
	}
	return nil
}

// LoadConfig reads and parses a TOML configuration file from the specified path.
//
// Keys absent from the file keep the values of [DefaultConfig].
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := DefaultConfig()
	if err := toml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("%w: failed to parse config: %v", ErrInvalidConfig, err)
	}

	return config, nil
}

// DefaultConfig returns a Config with sensible defaults loaded from the embedded example config.
func DefaultConfig() *Config {
	var config Config
	if err := toml.Unmarshal(exampleConf, &config); err != nil {
		panic(fmt.Sprintf("failed to parse embedded default config: %v", err))
	}
	return &config
}

// CreateConfigFile creates a config.toml file at the specified path using the embedded example config.
func CreateConfigFile(path string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("config file already exists at %s", path)
	}

	if err := os.WriteFile(path, exampleConf, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}
