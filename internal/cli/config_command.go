package cli

import (
	"context"

	"ac-tracker/internal/errors"
)

// ConfigCommand prints the effective configuration as TOML
type ConfigCommand struct {
	app *App
}

// NewConfigCommand creates a new config command handler
func NewConfigCommand(app *App) *ConfigCommand {
	return &ConfigCommand{app: app}
}

// Execute runs the config command
func (c *ConfigCommand) Execute(ctx context.Context, args []string) error {
	if len(args) != 0 {
		return errors.NewInvalidInputError("command", "config", "usage: ac config")
	}
	return c.app.config.WriteTOML(c.app.out)
}
