package commands

import (
	"os"
	"path/filepath"
	"runtime"
	"time"

	"github.com/colonyops/notifbadge/internal/core/config"
	"github.com/colonyops/notifbadge/internal/core/notify"
	"github.com/colonyops/notifbadge/internal/tui"
)

type Flags struct {
	LogLevel   string
	LogFile    string
	ConfigPath string
	BaseURL    string
	Interval   time.Duration
}

// App holds what the Before hook builds for the subcommands.
type App struct {
	Config *config.Config
	Client *notify.Client
	Build  tui.BuildInfo
}

// DefaultConfigPath returns the default config file path using XDG_CONFIG_HOME.
func DefaultConfigPath() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, _ := os.UserHomeDir()
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "notifbadge", "config.yaml")
}

// DefaultLogFile returns the default log file path using the system's state directory.
// On macOS: ~/Library/Logs/notifbadge/notifbadge.log
// On Linux: $XDG_STATE_HOME/notifbadge/notifbadge.log (defaults to ~/.local/state/notifbadge/notifbadge.log)
func DefaultLogFile() string {
	stateHome := os.Getenv("XDG_STATE_HOME")
	if stateHome != "" {
		return filepath.Join(stateHome, "notifbadge", "notifbadge.log")
	}

	home, _ := os.UserHomeDir()

	if runtime.GOOS == "darwin" {
		return filepath.Join(home, "Library", "Logs", "notifbadge", "notifbadge.log")
	}

	return filepath.Join(home, ".local", "state", "notifbadge", "notifbadge.log")
}
