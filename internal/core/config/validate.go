package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/hay-kot/criterio"

	"github.com/colonyops/notifbadge/internal/core/styles"
)

// Validate checks that the configuration is usable. All field problems are
// reported together as criterio.FieldErrors.
func (c *Config) Validate() error {
	return criterio.ValidateStruct(
		criterio.Run("endpoint.base_url", c.Endpoint.BaseURL, isHTTPURL),
		criterio.Run("endpoint.path", c.Endpoint.Path, isAbsolutePath),
		criterio.Run("endpoint.timeout", c.Endpoint.Timeout, isPositive),
		criterio.Run("poll.interval", c.Poll.Interval, isPositive),
		criterio.Run("badge.id", c.Badge.ID, notBlank),
		criterio.Run("tui.theme", c.TUI.Theme, isKnownTheme),
	)
}

func isHTTPURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("invalid url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("scheme must be http or https, got %q", u.Scheme)
	}
	if u.Host == "" {
		return fmt.Errorf("host is required")
	}
	return nil
}

func isAbsolutePath(p string) error {
	if !strings.HasPrefix(p, "/") {
		return fmt.Errorf("must start with /")
	}
	return nil
}

func isPositive(d time.Duration) error {
	if d <= 0 {
		return fmt.Errorf("must be greater than zero")
	}
	return nil
}

func notBlank(s string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("cannot be empty")
	}
	return nil
}

func isKnownTheme(name string) error {
	if _, ok := styles.GetPalette(name); !ok {
		return fmt.Errorf("unknown theme %q (available: %s)", name, strings.Join(styles.ThemeNames(), ", "))
	}
	return nil
}
