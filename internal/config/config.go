// Package config handles application configuration management.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Config holds all application configuration.
// Values come from an optional YAML file first, then environment variables.
type Config struct {
	Server ServerConfig `yaml:"server"`
	Store  StoreConfig  `yaml:"store"`
	Site   SiteConfig   `yaml:"site"`
	// LogLevel is a zerolog level name ("info", "debug", ...)
	LogLevel    string      `yaml:"log_level" validate:"required,oneof=trace debug info warn error"`
	Environment Environment `yaml:"environment" validate:"required,oneof=development production"`
}

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Address string `yaml:"address" validate:"required"`
}

// StoreConfig holds the location of the transmission store and the refresh driver period.
type StoreConfig struct {
	// Path is the JSON document holding the transmission log
	Path string `yaml:"path" validate:"required"`
	// RefreshTick is how often the background driver checks whether regeneration is due
	RefreshTick time.Duration `yaml:"refresh_tick" validate:"required,min=1s"`
}

// SiteConfig holds public site settings used by the page and SEO handlers.
type SiteConfig struct {
	// URL is the public base URL used in robots.txt and sitemap.xml
	URL        string `yaml:"url" validate:"required,url"`
	StaticPath string `yaml:"static_path" validate:"required"`
}

// Defaults returns the configuration used when nothing is overridden.
func Defaults() *Config {
	return &Config{
		Server: ServerConfig{
			Address: "127.0.0.1:3000",
		},
		Store: StoreConfig{
			Path:        "data/recent_transmissions.json",
			RefreshTick: 5 * time.Minute,
		},
		Site: SiteConfig{
			URL:        "http://localhost:3000",
			StaticPath: "static",
		},
		LogLevel:    "info",
		Environment: EnvDevelopment,
	}
}

// Load reads configuration from BEACON_CONFIG_FILE (if set) and environment variables.
func Load() (*Config, error) {
	cfg := Defaults()

	if path := os.Getenv("BEACON_CONFIG_FILE"); path != "" {
		if err := cfg.loadFile(path); err != nil {
			return nil, err
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// loadFile merges a YAML document over the current values.
func (c *Config) loadFile(path string) error {
	// #nosec G304 - path comes from operator-controlled environment
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	return nil
}

func (c *Config) applyEnv() error {
	c.Server.Address = getEnv("BEACON_SERVER_ADDRESS", c.Server.Address)
	c.Store.Path = getEnv("BEACON_STORE_PATH", c.Store.Path)
	c.Site.URL = getEnv("BEACON_SITE_URL", c.Site.URL)
	c.Site.StaticPath = getEnv("BEACON_STATIC_PATH", c.Site.StaticPath)
	c.LogLevel = getEnv("BEACON_LOG_LEVEL", c.LogLevel)
	c.Environment = Environment(getEnv("BEACON_ENV", string(c.Environment)))

	if tick := os.Getenv("BEACON_REFRESH_TICK"); tick != "" {
		d, err := time.ParseDuration(tick)
		if err != nil {
			return fmt.Errorf("invalid BEACON_REFRESH_TICK %q: %w", tick, err)
		}
		c.Store.RefreshTick = d
	}
	return nil
}

// Validate checks struct constraints and reports the first offending field.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			return fmt.Errorf("invalid configuration: %s failed %q", verrs[0].Namespace(), verrs[0].Tag())
		}
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}

// getEnv returns the value of the environment variable key, or defaultValue if unset.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
