package commands

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"

	"github.com/colonyops/notifbadge/internal/core/badge"
	"github.com/colonyops/notifbadge/internal/core/logging"
	"github.com/colonyops/notifbadge/internal/poller"
)

type WatchCmd struct {
	flags      *Flags
	app        *App
	timestamps bool
	once       bool
}

func NewWatchCmd(flags *Flags, app *App) *WatchCmd {
	return &WatchCmd{flags: flags, app: app}
}

func (cmd *WatchCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "watch",
		Usage:     "Print the badge to stdout whenever it changes",
		UsageText: "notifbadge watch [options]",
		Description: `Polls the notification endpoint and prints one line each time the badge
changes. Runs until interrupted. Failed polls are written to the log file and
leave the last printed state in place.`,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:        "timestamps",
				Aliases:     []string{"t"},
				Usage:       "prefix each line with the local time",
				Destination: &cmd.timestamps,
			},
			&cli.BoolFlag{
				Name:        "once",
				Usage:       "poll a single time and exit; failures set a non-zero exit code",
				Destination: &cmd.once,
			},
		},
		Action: cmd.run,
	})
	return app
}

func (cmd *WatchCmd) run(ctx context.Context, c *cli.Command) error {
	cfg := cmd.app.Config

	doc := badge.NewDocument()
	doc.Register(badge.SidebarID, badge.NewWriterElement(c.Root().Writer, cmd.timestamps))

	p := poller.New(cmd.app.Client, doc, poller.Options{
		BadgeID:  cfg.Badge.ID,
		Interval: cfg.Poll.Interval,
		Endpoint: cmd.app.Client.Endpoint(),
		Logger:   logging.Component("poller"),
	})

	if cmd.once {
		return p.FetchAndRender(ctx)
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.Info().
		Str("endpoint", cmd.app.Client.Endpoint()).
		Dur("interval", p.Interval()).
		Msg("watching notifications")

	handle := p.Start(ctx)
	<-ctx.Done()
	handle.Stop()

	return nil
}
