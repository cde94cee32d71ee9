package main

import (
	"context"
	"fmt"
	"os"
	"runtime/debug"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"

	"github.com/colonyops/notifbadge/internal/commands"
	"github.com/colonyops/notifbadge/internal/core/config"
	"github.com/colonyops/notifbadge/internal/core/notify"
	"github.com/colonyops/notifbadge/internal/core/styles"
	"github.com/colonyops/notifbadge/internal/tui"
	"github.com/colonyops/notifbadge/pkg/logutils"
)

var (
	// Build information. Populated at build-time via -ldflags flag.
	// When installed via `go install module@version`, buildInfo populates
	// these from runtime/debug.BuildInfo instead.
	version = "dev"
	commit  = "HEAD"
	date    = "now"
)

func buildInfo() tui.BuildInfo {
	v, c, d := version, commit, date

	// ldflags aren't set by `go install module@version`, so fall back to the
	// module version and VCS metadata Go records in the binary.
	if v == "dev" {
		if info, ok := debug.ReadBuildInfo(); ok {
			if mv := info.Main.Version; mv != "" && mv != "(devel)" {
				v = mv
			}
			for _, s := range info.Settings {
				switch s.Key {
				case "vcs.revision":
					c = s.Value
				case "vcs.time":
					d = s.Value
				}
			}
		}
	}

	if len(c) > 7 {
		c = c[:7]
	}

	return tui.BuildInfo{Version: v, Commit: c, Date: d}
}

func main() {
	ctx := context.Background()

	// NOTIFBADGE_* variables may come from a .env file in the working
	// directory. A missing file is fine.
	_ = godotenv.Load()

	var (
		logCloser func()
		bi        = buildInfo()
		flags     = &commands.Flags{}
		badgeApp  = &commands.App{Build: bi}
	)

	app := &cli.Command{
		Name:      "notifbadge",
		Usage:     "Show the pending notification count from a notifications API",
		UsageText: "notifbadge [global options] command [command options]",
		Description: `notifbadge polls a notifications endpoint and keeps a badge in sync with
the number of pending notifications.

Run 'notifbadge' with no arguments to open the sidebar.
Run 'notifbadge watch' to print badge changes to the terminal.`,
		Version: fmt.Sprintf("%s (%s) %s", bi.Version, bi.Commit, bi.Date),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "log-level",
				Usage:       "log level (debug, info, warn, error, fatal, panic)",
				Sources:     cli.EnvVars("NOTIFBADGE_LOG_LEVEL"),
				Value:       "info",
				Destination: &flags.LogLevel,
			},
			&cli.StringFlag{
				Name:        "log-file",
				Usage:       "path to log file",
				Sources:     cli.EnvVars("NOTIFBADGE_LOG_FILE"),
				Value:       commands.DefaultLogFile(),
				Destination: &flags.LogFile,
			},
			&cli.StringFlag{
				Name:        "config",
				Aliases:     []string{"c"},
				Usage:       "path to config file",
				Sources:     cli.EnvVars("NOTIFBADGE_CONFIG"),
				Value:       commands.DefaultConfigPath(),
				Destination: &flags.ConfigPath,
			},
			&cli.StringFlag{
				Name:        "base-url",
				Usage:       "base URL of the notifications API (overrides config)",
				Sources:     cli.EnvVars("NOTIFBADGE_BASE_URL"),
				Destination: &flags.BaseURL,
			},
			&cli.DurationFlag{
				Name:        "interval",
				Usage:       "time between polls (overrides config)",
				Sources:     cli.EnvVars("NOTIFBADGE_INTERVAL"),
				Destination: &flags.Interval,
			},
		},
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			logger, closer, err := logutils.New(flags.LogLevel, flags.LogFile)
			if err != nil {
				return ctx, fmt.Errorf("setup logger: %w", err)
			}
			// Every invocation appends to the same file; tag lines per process.
			log.Logger = logger.With().Str("run", uuid.NewString()).Logger()
			logCloser = closer

			cfg, err := config.Load(flags.ConfigPath, config.Overrides{
				BaseURL:  flags.BaseURL,
				Interval: flags.Interval,
			})
			if err != nil {
				return ctx, fmt.Errorf("load config: %w", err)
			}

			// Validation guarantees the theme exists.
			palette, _ := styles.GetPalette(cfg.TUI.Theme)
			styles.SetTheme(palette)

			client, err := notify.NewClient(cfg.Endpoint.BaseURL,
				notify.WithPath(cfg.Endpoint.Path),
				notify.WithTimeout(cfg.Endpoint.Timeout),
				notify.WithUserAgent("notifbadge/"+bi.Version),
			)
			if err != nil {
				return ctx, fmt.Errorf("create client: %w", err)
			}

			badgeApp.Config = cfg
			badgeApp.Client = client

			log.Debug().
				Str("endpoint", client.Endpoint()).
				Dur("interval", cfg.Poll.Interval).
				Msg("configuration loaded")

			return ctx, nil
		},
		After: func(ctx context.Context, c *cli.Command) error {
			if logCloser != nil {
				logCloser()
			}
			return nil
		},
	}

	tuiCmd := commands.NewTuiCmd(flags, badgeApp)

	app = tuiCmd.Register(app)
	app = commands.NewWatchCmd(flags, badgeApp).Register(app)
	app = commands.NewLsCmd(flags, badgeApp).Register(app)
	app = commands.NewReadCmd(flags, badgeApp).Register(app)
	app = commands.NewConfigCmd(flags, badgeApp).Register(app)
	app = commands.NewDoctorCmd(flags, badgeApp).Register(app)

	// The sidebar is the default when no subcommand is provided.
	app.Action = func(ctx context.Context, c *cli.Command) error {
		if c.Args().Len() > 0 {
			return fmt.Errorf("unknown command %q. Run 'notifbadge --help' for usage", c.Args().First())
		}
		return tuiCmd.Run(ctx, c)
	}

	exitCode := 0
	runErr := app.Run(ctx, os.Args)
	if runErr != nil {
		fmt.Println()
		fmt.Println(runErr.Error())
		exitCode = 1
	}

	os.Exit(exitCode)
}
