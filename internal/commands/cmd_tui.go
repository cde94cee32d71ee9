package commands

import (
	"context"
	"fmt"

	tea "charm.land/bubbletea/v2"
	"github.com/urfave/cli/v3"

	"github.com/colonyops/notifbadge/internal/core/badge"
	"github.com/colonyops/notifbadge/internal/core/logging"
	"github.com/colonyops/notifbadge/internal/poller"
	"github.com/colonyops/notifbadge/internal/tui"
)

type TuiCmd struct {
	flags *Flags
	app   *App
}

// NewTuiCmd creates a new tui command
func NewTuiCmd(flags *Flags, app *App) *TuiCmd {
	return &TuiCmd{
		flags: flags,
		app:   app,
	}
}

// Register adds the tui command to the application.
func (cmd *TuiCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:        "tui",
		Usage:       "Open the sidebar with the live notification badge",
		UsageText:   "notifbadge tui",
		Description: "Runs the terminal sidebar. This is also the default when no command is given.",
		Action:      cmd.Run,
	})
	return app
}

// Run executes the TUI. Exported for use as default command.
func (cmd *TuiCmd) Run(ctx context.Context, _ *cli.Command) error {
	cfg := cmd.app.Config

	doc := badge.NewDocument()
	sidebarBadge := tui.NewBadge()
	doc.Register(badge.SidebarID, sidebarBadge)

	p := poller.New(cmd.app.Client, doc, poller.Options{
		BadgeID:  cfg.Badge.ID,
		Interval: cfg.Poll.Interval,
		Endpoint: cmd.app.Client.Endpoint(),
		Logger:   logging.Component("poller"),
	})

	m := tui.New(tui.Deps{
		Refresher: p,
		Endpoint:  cmd.app.Client.Endpoint(),
		Interval:  p.Interval(),
		BuildInfo: cmd.app.Build,
	})
	program := tea.NewProgram(m)
	sidebarBadge.Attach(program)

	handle := p.Start(ctx)
	defer handle.Stop()

	if _, err := program.Run(); err != nil {
		return fmt.Errorf("run tui: %w", err)
	}
	return nil
}
