package cli

import (
	"context"

	"ac-tracker/internal/errors"
)

// InitCommand handles the init command
type InitCommand struct {
	app          *App
	force        bool
	errorHandler *ErrorHandler
}

// NewInitCommand creates a new init command handler
func NewInitCommand(app *App, force bool) *InitCommand {
	return &InitCommand{app: app, force: force, errorHandler: NewErrorHandler()}
}

// Execute runs the init command
func (c *InitCommand) Execute(ctx context.Context, args []string) error {
	if len(args) != 0 {
		return errors.NewInvalidInputError("command", "init", "usage: ac init [--force]")
	}
	if err := c.app.config.EnsureDataDir(); err != nil {
		return c.errorHandler.Handle("create data directory", errors.NewIOError("mkdir", c.app.config.Storage.Dir, err))
	}

	status, err := c.app.api.Init(c.force)
	if err != nil {
		return c.errorHandler.Handle("initialize instance", err)
	}

	c.app.printf("Initialized instance at %s (multiplier %d, threshold %d)\n",
		status.Path, status.Settings.Multiplier, status.Settings.Threshold)
	return nil
}

// StatusCommand handles the status command
type StatusCommand struct {
	app          *App
	errorHandler *ErrorHandler
}

// NewStatusCommand creates a new status command handler
func NewStatusCommand(app *App) *StatusCommand {
	return &StatusCommand{app: app, errorHandler: NewErrorHandler()}
}

// Execute runs the status command
func (c *StatusCommand) Execute(ctx context.Context, args []string) error {
	status, err := c.app.api.Status()
	if err != nil {
		return c.errorHandler.Handle("read instance", err)
	}

	c.app.printf("Instance:   %s\n", status.Path)
	c.app.printf("Points:     %d\n", status.Points)
	c.app.printf("Groups:     %d\n", status.GroupCount)
	c.app.printf("Tasks:      %d\n", status.TaskCount)
	c.app.printf("Multiplier: %d\n", status.Settings.Multiplier)
	c.app.printf("Threshold:  %d\n", status.Settings.Threshold)
	return nil
}
