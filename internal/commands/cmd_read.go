package commands

import (
	"context"
	"errors"
	"fmt"

	"github.com/urfave/cli/v3"
)

type ReadCmd struct {
	flags *Flags
	app   *App
}

func NewReadCmd(flags *Flags, app *App) *ReadCmd {
	return &ReadCmd{flags: flags, app: app}
}

func (cmd *ReadCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "read",
		Usage:     "Mark notifications as read",
		UsageText: "notifbadge read <id> [id...]",
		Action:    cmd.run,
	})
	return app
}

func (cmd *ReadCmd) run(ctx context.Context, c *cli.Command) error {
	ids := c.Args().Slice()
	if len(ids) == 0 {
		return errors.New("at least one notification id is required")
	}

	var errs []error
	for _, id := range ids {
		if err := cmd.app.Client.MarkRead(ctx, id); err != nil {
			errs = append(errs, fmt.Errorf("mark %s read: %w", id, err))
			continue
		}
		_, _ = fmt.Fprintf(c.Root().Writer, "marked %s as read\n", id)
	}
	return errors.Join(errs...)
}
