package cli

import (
	"context"

	"ac-tracker/internal/config"
	"ac-tracker/internal/errors"
	"ac-tracker/internal/repository/sqlite"
)

// RepositoryOpener opens the snapshot database at path, or the default
// location when path is empty.
type RepositoryOpener func(path string) (sqlite.Repository, error)

// DefaultRepositoryOpener picks the location from AC_ENV and the configuration.
func DefaultRepositoryOpener(cfg *config.Config) RepositoryOpener {
	return config.NewRepositoryFactory(config.GetEnvironment(), cfg).CreateRepository
}

// SnapshotCommand handles the export and import commands
type SnapshotCommand struct {
	app          *App
	open         RepositoryOpener
	export       bool
	errorHandler *ErrorHandler
}

// NewExportCommand creates a handler copying the instance into the snapshot database
func NewExportCommand(app *App, open RepositoryOpener) *SnapshotCommand {
	return &SnapshotCommand{app: app, open: open, export: true, errorHandler: NewErrorHandler()}
}

// NewImportCommand creates a handler replacing the instance with the stored snapshot
func NewImportCommand(app *App, open RepositoryOpener) *SnapshotCommand {
	return &SnapshotCommand{app: app, open: open, errorHandler: NewErrorHandler()}
}

// Execute runs the export or import command with an optional database path
func (c *SnapshotCommand) Execute(ctx context.Context, args []string) error {
	name := "import"
	if c.export {
		name = "export"
	}
	if len(args) > 1 {
		return errors.NewInvalidInputError("command", name, "usage: ac "+name+" [database path]")
	}
	var path string
	if len(args) == 1 {
		path = args[0]
	}

	repo, err := c.open(path)
	if err != nil {
		return c.errorHandler.Handle("open snapshot database", err)
	}
	defer repo.Close()

	if c.export {
		status, err := c.app.api.ExportSnapshot(ctx, repo)
		if err != nil {
			return c.errorHandler.Handle("export snapshot", err)
		}
		c.app.printf("Exported %d groups and %d tasks\n", status.GroupCount, status.TaskCount)
		return nil
	}

	status, err := c.app.api.ImportSnapshot(ctx, repo)
	if err != nil {
		return c.errorHandler.Handle("import snapshot", err)
	}
	c.app.printf("Imported %d groups and %d tasks into %s\n", status.GroupCount, status.TaskCount, status.Path)
	return nil
}
