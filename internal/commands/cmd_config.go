package commands

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"
	"gopkg.in/yaml.v3"
)

type ConfigCmd struct {
	flags *Flags
	app   *App
}

// NewConfigCmd creates a new config command.
func NewConfigCmd(flags *Flags, app *App) *ConfigCmd {
	return &ConfigCmd{flags: flags, app: app}
}

// Register adds the config command to the application.
func (cmd *ConfigCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:        "config",
		Usage:       "Print the effective configuration",
		UsageText:   "notifbadge config",
		Description: "Prints the configuration after defaults, the config file and flags are merged. Loading already validated it.",
		Action:      cmd.run,
	})
	return app
}

func (cmd *ConfigCmd) run(_ context.Context, c *cli.Command) error {
	out, err := yaml.Marshal(cmd.app.Config)
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}

	_, err = fmt.Fprintf(c.Root().Writer, "# %s\n%s", cmd.flags.ConfigPath, out)
	return err
}
