package cli

import (
	"context"

	"ac-tracker/internal/errors"
)

// ScoreCommand handles the score command
type ScoreCommand struct {
	app          *App
	errorHandler *ErrorHandler
}

// NewScoreCommand creates a new score command handler
func NewScoreCommand(app *App) *ScoreCommand {
	return &ScoreCommand{app: app, errorHandler: NewErrorHandler()}
}

// Execute runs the score command
func (c *ScoreCommand) Execute(ctx context.Context, args []string) error {
	if len(args) != 0 {
		return errors.NewInvalidInputError("command", "score", "usage: ac score")
	}

	summary, err := c.app.api.Score()
	if err != nil {
		return c.errorHandler.Handle("calculate points", err)
	}

	c.app.printf("Scored %d tasks (%d skipped), change %+d\n", summary.Evaluated, summary.Skipped, summary.Delta)
	c.app.printf("User Points: %d\n", summary.Points)
	return nil
}
