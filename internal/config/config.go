package config

import (
	"time"

	"github.com/spf13/viper"
)

// Config stores all configuration for the application.
type Config struct {
	PlaylistPath   string `mapstructure:"PLAYLIST_PATH"`
	ProbeTimeoutMS int    `mapstructure:"PROBE_TIMEOUT_MS"`
	MaxRetries     int    `mapstructure:"MAX_RETRIES"`
	RetryBackoffMS int    `mapstructure:"RETRY_BACKOFF_MS"`
	ProbeDelayMS   int    `mapstructure:"PROBE_DELAY_MS"`
	UserAgent      string `mapstructure:"USER_AGENT"`
	SortLocale     string `mapstructure:"SORT_LOCALE"`
	FailOnDead     bool   `mapstructure:"FAIL_ON_DEAD"`
	CheckInterval  int    `mapstructure:"CHECK_INTERVAL"`
	ServerPort     string `mapstructure:"SERVER_PORT"`
	LogLevel       string `mapstructure:"LOG_LEVEL"`
}

// Load reads configuration from file or environment variables.
func Load() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.SetConfigType("env")
	viper.AutomaticEnv()

	// Attempt to read the .env file, but don't fail if it's not present
	// This allows configuration purely through environment variables in CI
	_ = viper.ReadInConfig()

	// Set default values
	viper.SetDefault("PLAYLIST_PATH", "playlist.m3u")
	viper.SetDefault("PROBE_TIMEOUT_MS", 10000)
	viper.SetDefault("MAX_RETRIES", 2)
	viper.SetDefault("RETRY_BACKOFF_MS", 1000)
	viper.SetDefault("PROBE_DELAY_MS", 1000)
	viper.SetDefault("USER_AGENT", "playlist-checker/1.0")
	viper.SetDefault("SORT_LOCALE", "en")
	viper.SetDefault("FAIL_ON_DEAD", false)
	viper.SetDefault("CHECK_INTERVAL", 3600) // in seconds
	viper.SetDefault("SERVER_PORT", "8080")
	viper.SetDefault("LOG_LEVEL", "info")

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// ProbeTimeout is the per-request timeout for a single probe attempt.
func (c *Config) ProbeTimeout() time.Duration {
	return time.Duration(c.ProbeTimeoutMS) * time.Millisecond
}

// RetryBackoff is the base delay between failed probe attempts; the
// actual wait grows linearly with the attempt number.
func (c *Config) RetryBackoff() time.Duration {
	return time.Duration(c.RetryBackoffMS) * time.Millisecond
}

// ProbeDelay is the pause between two consecutive entries of a run.
func (c *Config) ProbeDelay() time.Duration {
	return time.Duration(c.ProbeDelayMS) * time.Millisecond
}
