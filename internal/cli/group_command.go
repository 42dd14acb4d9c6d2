package cli

import (
	"context"
	"strings"

	"ac-tracker/internal/errors"
)

// GroupAddCommand handles the group add command
type GroupAddCommand struct {
	app          *App
	errorHandler *ErrorHandler
}

// NewGroupAddCommand creates a new group add command handler
func NewGroupAddCommand(app *App) *GroupAddCommand {
	return &GroupAddCommand{app: app, errorHandler: NewErrorHandler()}
}

// Execute runs the group add command. The first argument is the title, the
// rest form the description.
func (c *GroupAddCommand) Execute(ctx context.Context, args []string) error {
	if len(args) < 1 {
		return errors.NewInvalidInputError("command", "group add", "usage: ac group add <title> [description]")
	}
	title := args[0]
	description := strings.Join(args[1:], " ")

	group, err := c.app.api.AddGroup(title, description)
	if err != nil {
		return c.errorHandler.Handle("add group", err)
	}

	c.app.printf("Added group %d: %s\n", group.ID, group.Title)
	return nil
}
