package cli

import (
	"context"
	"encoding/csv"
	"fmt"
	"strconv"
	"time"

	"ac-tracker/internal/errors"
	"ac-tracker/internal/services"
)

// DumpCommand handles the dump command
type DumpCommand struct {
	app          *App
	format       string
	errorHandler *ErrorHandler
}

// NewDumpCommand creates a new dump command handler. format is "text" or "csv".
func NewDumpCommand(app *App, format string) *DumpCommand {
	return &DumpCommand{app: app, format: format, errorHandler: NewErrorHandler()}
}

// Execute runs the dump command
func (c *DumpCommand) Execute(ctx context.Context, args []string) error {
	if len(args) != 0 {
		return errors.NewInvalidInputError("command", "dump", "usage: ac dump [--format text|csv]")
	}

	report, err := c.app.api.Report()
	if err != nil {
		return c.errorHandler.Handle("read instance", err)
	}

	switch c.format {
	case "", "text":
		return services.NewReportingService(reportOptions(c.app.config)).Render(c.app.out, report)
	case "csv":
		return c.outputCSV(report)
	default:
		return errors.NewInvalidInputError("format", c.format, "unsupported format")
	}
}

// outputCSV writes one row per task
func (c *DumpCommand) outputCSV(report *services.Report) error {
	writer := csv.NewWriter(c.app.out)
	defer writer.Flush()

	header := []string{"ID", "Text", "Group ID", "Group", "Complete", "Processed", "Ongoing", "Created"}
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	for _, line := range report.Lines {
		record := []string{
			strconv.FormatUint(uint64(line.TaskID), 10),
			line.Text,
			strconv.FormatUint(uint64(line.GroupID), 10),
			line.GroupTitle,
			strconv.FormatBool(line.Complete),
			strconv.FormatBool(line.Processed),
			strconv.FormatBool(line.Ongoing),
			line.Created.UTC().Format(time.RFC3339),
		}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("failed to write CSV record: %w", err)
		}
	}

	writer.Flush()
	return writer.Error()
}
