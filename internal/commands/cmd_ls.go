package commands

import (
	"context"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/urfave/cli/v3"

	"github.com/colonyops/notifbadge/internal/core/badge"
	"github.com/colonyops/notifbadge/internal/core/notify"
	"github.com/colonyops/notifbadge/internal/core/styles"
	"github.com/colonyops/notifbadge/pkg/iojson"
)

type LsCmd struct {
	flags  *Flags
	app    *App
	format string
}

// NewLsCmd creates a new ls command
func NewLsCmd(flags *Flags, app *App) *LsCmd {
	return &LsCmd{flags: flags, app: app}
}

// Register adds the ls command to the application
func (cmd *LsCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "ls",
		Usage:     "List pending notifications",
		UsageText: "notifbadge ls [options]",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "format",
				Usage:       "output format (text, json)",
				Value:       "text",
				Destination: &cmd.format,
			},
		},
		Action: cmd.run,
	})
	return app
}

type lsJSON struct {
	Count         int                   `json:"count"`
	Badge         string                `json:"badge"`
	Notifications []notify.Notification `json:"notifications"`
}

func (cmd *LsCmd) run(ctx context.Context, c *cli.Command) error {
	list, err := cmd.app.Client.Fetch(ctx)
	if err != nil {
		return fmt.Errorf("fetch notifications: %w", err)
	}

	notifications, err := list.Notifications()
	if err != nil {
		return fmt.Errorf("fetch notifications: %w", err)
	}

	state := badge.StateFor(list.Len())
	w := c.Root().Writer

	switch cmd.format {
	case "json":
		return iojson.WriteWith(w, os.Stderr, lsJSON{
			Count:         list.Len(),
			Badge:         state.Text,
			Notifications: notifications,
		})
	case "text", "":
		return printNotifications(w, state, notifications)
	default:
		return fmt.Errorf("unknown format %q (use text or json)", cmd.format)
	}
}

func printNotifications(w io.Writer, state badge.State, notifications []notify.Notification) error {
	if !state.Visible {
		_, err := fmt.Fprintln(w, styles.BadgeHiddenStyle.Render(styles.IconCircle+" no pending notifications"))
		return err
	}

	if _, err := fmt.Fprintln(w, styles.BadgeStyle.Render(styles.IconDot+" "+state.Text)); err != nil {
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for _, n := range notifications {
		if _, err := fmt.Fprintf(tw, "%s\t%s\t%s\n", n.ID, n.Message, n.Timestamp); err != nil {
			return err
		}
	}
	return tw.Flush()
}
