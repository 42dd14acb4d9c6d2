package cli

import (
	"context"

	"ac-tracker/internal/errors"
	"ac-tracker/internal/instance"
	"ac-tracker/internal/services"
)

// DemoCommand replays a fixed sample session on a throwaway instance.
type DemoCommand struct {
	app          *App
	savePath     string
	errorHandler *ErrorHandler
}

// NewDemoCommand creates a new demo command handler. A non-empty savePath
// keeps the resulting instance on disk.
func NewDemoCommand(app *App, savePath string) *DemoCommand {
	return &DemoCommand{app: app, savePath: savePath, errorHandler: NewErrorHandler()}
}

var demoTasks = []string{
	"Hello World!",
	"This is a test",
	"This is a another test",
	"This is a boom boom shake the room test",
}

// Execute runs the demo command
func (c *DemoCommand) Execute(ctx context.Context, args []string) error {
	if len(args) != 0 {
		return errors.NewInvalidInputError("command", "demo", "usage: ac demo [--save path]")
	}

	inst := instance.New(10, 3)
	defer inst.Destroy()

	if err := c.run(inst); err != nil {
		return c.errorHandler.Handle("run demo", err)
	}

	s, err := inst.Snapshot()
	if err != nil {
		return c.errorHandler.Handle("run demo", err)
	}
	reporting := services.NewReportingService(reportOptions(c.app.config))
	if err := reporting.Render(c.app.out, reporting.Build(s)); err != nil {
		return err
	}

	if c.savePath != "" {
		if err := inst.Save(c.savePath); err != nil {
			return c.errorHandler.Handle("save demo", err)
		}
		c.app.printf("Saved demo instance to %s\n", c.savePath)
	}
	return nil
}

func (c *DemoCommand) run(inst *instance.Instance) error {
	if _, err := inst.AppendGroup("Work", "Work group"); err != nil {
		return err
	}
	for _, text := range demoTasks {
		if _, err := inst.AppendTask(text); err != nil {
			return err
		}
	}

	if _, err := inst.SetComplete(0, true); err != nil {
		return err
	}
	if _, err := inst.AssignGroup(0, 1); err != nil {
		return err
	}
	if _, err := inst.SetComplete(1, true); err != nil {
		return err
	}

	if err := inst.DeleteTask(2); err != nil {
		return err
	}

	result, err := inst.CalculatePoints()
	if err != nil {
		return err
	}
	c.app.verbosef("Scored %d tasks, change %+d\n", result.Evaluated, result.Delta)
	return nil
}
