// Package config handles configuration loading and validation for notifbadge.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/colonyops/notifbadge/internal/core/badge"
	"github.com/colonyops/notifbadge/internal/core/notify"
	"github.com/colonyops/notifbadge/internal/core/styles"
)

// Config holds the application configuration.
type Config struct {
	Endpoint EndpointConfig `yaml:"endpoint"`
	Poll     PollConfig     `yaml:"poll"`
	Badge    BadgeConfig    `yaml:"badge"`
	TUI      TUIConfig      `yaml:"tui"`
}

// EndpointConfig describes where the notification list is served.
type EndpointConfig struct {
	BaseURL string        `yaml:"base_url"`
	Path    string        `yaml:"path"`
	Timeout time.Duration `yaml:"timeout"` // per request
}

// PollConfig controls the poll schedule.
type PollConfig struct {
	Interval time.Duration `yaml:"interval"`
}

// BadgeConfig selects the element the count is rendered on.
type BadgeConfig struct {
	ID string `yaml:"id"`
}

// TUIConfig holds terminal UI settings.
type TUIConfig struct {
	Theme string `yaml:"theme"`
}

// Overrides are values set from the command line. Zero values are ignored.
type Overrides struct {
	BaseURL  string
	Interval time.Duration
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Endpoint: EndpointConfig{
			BaseURL: "http://localhost:5000",
			Path:    notify.DefaultPath,
			Timeout: 5 * time.Second,
		},
		Poll: PollConfig{
			Interval: 10 * time.Second,
		},
		Badge: BadgeConfig{
			ID: badge.SidebarID,
		},
		TUI: TUIConfig{
			Theme: styles.DefaultTheme,
		},
	}
}

// Load reads configuration from the given path, applies overrides and
// validates the result. If configPath is empty or doesn't exist, defaults are
// used.
func Load(configPath string, overrides Overrides) (*Config, error) {
	cfg := DefaultConfig()

	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			data, err := os.ReadFile(configPath)
			if err != nil {
				return nil, fmt.Errorf("read config file: %w", err)
			}

			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return nil, fmt.Errorf("parse config file: %w", err)
			}
		}
	}

	cfg.applyOverrides(overrides)
	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}

func (c *Config) applyOverrides(o Overrides) {
	if o.BaseURL != "" {
		c.Endpoint.BaseURL = o.BaseURL
	}
	if o.Interval != 0 {
		c.Poll.Interval = o.Interval
	}
}

// applyDefaults sets default values for any unset configuration options.
func (c *Config) applyDefaults() {
	defaults := DefaultConfig()
	if c.Endpoint.BaseURL == "" {
		c.Endpoint.BaseURL = defaults.Endpoint.BaseURL
	}
	if c.Endpoint.Path == "" {
		c.Endpoint.Path = defaults.Endpoint.Path
	}
	if c.Endpoint.Timeout == 0 {
		c.Endpoint.Timeout = defaults.Endpoint.Timeout
	}
	if c.Poll.Interval == 0 {
		c.Poll.Interval = defaults.Poll.Interval
	}
	if c.Badge.ID == "" {
		c.Badge.ID = defaults.Badge.ID
	}
	if c.TUI.Theme == "" {
		c.TUI.Theme = defaults.TUI.Theme
	}
}
