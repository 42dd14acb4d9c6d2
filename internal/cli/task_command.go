package cli

import (
	"context"
	"strings"

	"ac-tracker/internal/domain"
	"ac-tracker/internal/errors"
)

// TaskAddCommand handles the task add command
type TaskAddCommand struct {
	app          *App
	group        *uint32
	errorHandler *ErrorHandler
}

// NewTaskAddCommand creates a new task add command handler. A non-nil group
// is assigned right after the task is created.
func NewTaskAddCommand(app *App, group *uint32) *TaskAddCommand {
	return &TaskAddCommand{app: app, group: group, errorHandler: NewErrorHandler()}
}

// Execute runs the task add command
func (c *TaskAddCommand) Execute(ctx context.Context, args []string) error {
	if len(args) < 1 {
		return errors.NewInvalidInputError("command", "task add", "usage: ac task add \"task text\"")
	}
	text := strings.Join(args, " ")

	task, err := c.app.api.AddTask(text)
	if err != nil {
		return c.errorHandler.Handle("add task", err)
	}

	if c.group != nil {
		task, err = c.app.api.AssignGroup(task.ID, *c.group)
		if err != nil {
			return c.errorHandler.Handle("assign group", err)
		}
	}

	c.app.printf("Added task %d: %s\n", task.ID, task.Text)
	c.app.verbosef("Group: %d\n", task.Group)
	return nil
}

// TaskFlagCommand sets or clears one flag of a task.
type TaskFlagCommand struct {
	app          *App
	flag         string
	value        bool
	errorHandler *ErrorHandler
}

// NewTaskCompleteCommand creates a handler marking a task complete, or not complete when undo is set.
func NewTaskCompleteCommand(app *App, undo bool) *TaskFlagCommand {
	return &TaskFlagCommand{app: app, flag: "complete", value: !undo, errorHandler: NewErrorHandler()}
}

// NewTaskOngoingCommand creates a handler marking a task ongoing, or clearing it.
func NewTaskOngoingCommand(app *App, unset bool) *TaskFlagCommand {
	return &TaskFlagCommand{app: app, flag: "ongoing", value: !unset, errorHandler: NewErrorHandler()}
}

// Execute runs the flag command
func (c *TaskFlagCommand) Execute(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return errors.NewInvalidInputError("command", "task "+c.flag, "usage: ac task "+c.flag+" <task id>")
	}
	id, err := c.app.parseID("task_id", args[0])
	if err != nil {
		return c.errorHandler.HandleSimple(err)
	}

	var task *domain.Task
	switch c.flag {
	case "complete":
		task, err = c.app.api.CompleteTask(id, c.value)
	default:
		task, err = c.app.api.SetOngoing(id, c.value)
	}
	if err != nil {
		return c.errorHandler.Handle("update task", err)
	}

	state := "set"
	if !c.value {
		state = "cleared"
	}
	c.app.printf("Task %d: %s %s\n", task.ID, c.flag, state)
	return nil
}

// TaskAssignCommand handles the task assign command
type TaskAssignCommand struct {
	app          *App
	errorHandler *ErrorHandler
}

// NewTaskAssignCommand creates a new task assign command handler
func NewTaskAssignCommand(app *App) *TaskAssignCommand {
	return &TaskAssignCommand{app: app, errorHandler: NewErrorHandler()}
}

// Execute runs the task assign command
func (c *TaskAssignCommand) Execute(ctx context.Context, args []string) error {
	if len(args) != 2 {
		return errors.NewInvalidInputError("command", "task assign", "usage: ac task assign <task id> <group id>")
	}
	taskID, err := c.app.parseID("task_id", args[0])
	if err != nil {
		return c.errorHandler.HandleSimple(err)
	}
	groupID, err := c.app.parseID("group_id", args[1])
	if err != nil {
		return c.errorHandler.HandleSimple(err)
	}

	task, err := c.app.api.AssignGroup(taskID, groupID)
	if err != nil {
		return c.errorHandler.Handle("assign group", err)
	}

	c.app.printf("Task %d moved to group %d\n", task.ID, task.Group)
	return nil
}

// TaskDeleteCommand handles the task delete command
type TaskDeleteCommand struct {
	app          *App
	errorHandler *ErrorHandler
}

// NewTaskDeleteCommand creates a new task delete command handler
func NewTaskDeleteCommand(app *App) *TaskDeleteCommand {
	return &TaskDeleteCommand{app: app, errorHandler: NewErrorHandler()}
}

// Execute runs the task delete command
func (c *TaskDeleteCommand) Execute(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return errors.NewInvalidInputError("command", "task delete", "usage: ac task delete <task id>")
	}
	id, err := c.app.parseID("task_id", args[0])
	if err != nil {
		return c.errorHandler.HandleSimple(err)
	}

	if err := c.app.api.DeleteTask(id); err != nil {
		return c.errorHandler.Handle("delete task", err)
	}

	c.app.printf("Deleted task %d\n", id)
	return nil
}
