package services

import (
	"fmt"
	"io"
	"time"

	"github.com/dustin/go-humanize"

	"ac-tracker/internal/domain"
)

// DefaultUnknownGroup is shown for tasks whose group id resolves to nothing.
const DefaultUnknownGroup = "unknown group"

// ReportingService turns an instance snapshot into the console dump.
type ReportingService struct {
	options ReportOptions
	timeNow func() time.Time
}

// NewReportingService creates a reporting service with the given options.
func NewReportingService(options ReportOptions) *ReportingService {
	if options.UnknownGroup == "" {
		options.UnknownGroup = DefaultUnknownGroup
	}
	if options.TimeFormat == "" {
		options.TimeFormat = time.DateTime
	}
	return &ReportingService{options: options, timeNow: time.Now}
}

// Build resolves every task's group and collects the report lines.
// A group id that does not resolve is reported, never treated as a failure.
func (s *ReportingService) Build(snapshot domain.Snapshot) *Report {
	titles := make(map[uint32]string, len(snapshot.Groups))
	for _, g := range snapshot.Groups {
		titles[g.ID] = g.Title
	}

	report := &Report{
		Points: snapshot.User.Points,
		Lines:  make([]ReportLine, 0, len(snapshot.Tasks)),
	}
	for _, task := range snapshot.Tasks {
		title, known := titles[task.Group]
		if !known {
			title = s.options.UnknownGroup
		}
		report.Lines = append(report.Lines, ReportLine{
			TaskID:     task.ID,
			Text:       task.Text,
			GroupID:    task.Group,
			GroupTitle: title,
			GroupKnown: known,
			Complete:   task.Complete,
			Processed:  task.Processed,
			Ongoing:    task.Ongoing,
			Created:    task.Created(),
		})
	}
	return report
}

// Render writes the report: the point total, then one line per task.
func (s *ReportingService) Render(w io.Writer, report *Report) error {
	if _, err := fmt.Fprintf(w, "User Points: %d\n", report.Points); err != nil {
		return err
	}

	for _, line := range report.Lines {
		out := fmt.Sprintf("Task: %s Group: %s", line.Text, line.GroupTitle)
		if s.options.ShowFlags {
			out = fmt.Sprintf("[%d] %s %s (created %s)", line.TaskID, out, flagString(line), s.formatCreated(line.Created))
		}
		if _, err := fmt.Fprintln(w, out); err != nil {
			return err
		}
	}
	return nil
}

func (s *ReportingService) formatCreated(created time.Time) string {
	if s.options.RelativeTimes {
		return humanize.RelTime(created, s.timeNow(), "ago", "from now")
	}
	return created.Format(s.options.TimeFormat)
}

func flagString(line ReportLine) string {
	flags := []byte("---")
	if line.Complete {
		flags[0] = 'C'
	}
	if line.Processed {
		flags[1] = 'P'
	}
	if line.Ongoing {
		flags[2] = 'O'
	}
	return string(flags)
}
