// =================================
// File: internal/config/config.go
// =================================
package config

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds the settings client configuration loaded from config.json.
type Config struct {
	AddTokensURL     string        `mapstructure:"add_tokens_url"`
	RequestTimeout   time.Duration `mapstructure:"-"`
	RequestTimeoutMS int           `mapstructure:"request_timeout_ms"`
	Retries          int           `mapstructure:"retries"`
	DebugLogging     bool          `mapstructure:"debug_logging"`
	WalletsFile      string        `mapstructure:"wallets_file"`
	Wallet           string        `mapstructure:"wallet"`
	LogBufferSize    int           `mapstructure:"log_buffer_size"`
	LogSpillFile     string        `mapstructure:"log_spill_file"`
}

const (
	DefaultAddTokensURL  = "http://localhost:8000/add_tokens"
	DefaultWalletsFile   = "configs/wallets.csv"
	DefaultLogBufferSize = 500
	DefaultLogSpillFile  = "logs/settings.log"

	envPrefix = "TOKEN_SETTINGS"
)

// LoadConfig reads configuration from path and validates it. An empty path
// yields the defaults with environment overrides applied.
func LoadConfig(path string) (*Config, error) {
	v := viper.New()

	defaults := map[string]interface{}{
		"add_tokens_url":     DefaultAddTokensURL,
		"request_timeout_ms": 0,
		"retries":            0,
		"debug_logging":      true,
		"wallets_file":       DefaultWalletsFile,
		"wallet":             "",
		"log_buffer_size":    DefaultLogBufferSize,
		"log_spill_file":     DefaultLogSpillFile,
	}
	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config error: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal error: %w", err)
	}

	cfg.RequestTimeout = time.Duration(cfg.RequestTimeoutMS) * time.Millisecond

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	if err := validateURL(c.AddTokensURL); err != nil {
		return fmt.Errorf("add_tokens_url: %w", err)
	}
	if c.RequestTimeoutMS < 0 {
		return errors.New("invalid request_timeout_ms")
	}
	if c.Retries < 0 {
		return errors.New("invalid retries count")
	}
	if c.LogBufferSize <= 0 {
		return errors.New("invalid log_buffer_size")
	}
	return nil
}

func validateURL(rawURL string) error {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return errors.New("invalid URL format")
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return errors.New("invalid URL protocol")
	}
	if parsed.Host == "" {
		return errors.New("missing URL host")
	}
	return nil
}
