package services

import (
	"time"
)

// ScoreResult summarises one scoring pass.
type ScoreResult struct {
	Evaluated int   `json:"evaluated"`
	Skipped   int   `json:"skipped"`
	Delta     int64 `json:"delta"`
}

// ReportLine is one task as seen by the console dump.
type ReportLine struct {
	TaskID     uint32    `json:"task_id"`
	Text       string    `json:"text"`
	GroupID    uint32    `json:"group_id"`
	GroupTitle string    `json:"group_title"`
	GroupKnown bool      `json:"group_known"`
	Complete   bool      `json:"complete"`
	Processed  bool      `json:"processed"`
	Ongoing    bool      `json:"ongoing"`
	Created    time.Time `json:"created"`
}

// Report is the user's point total followed by every task in list order.
type Report struct {
	Points int32        `json:"points"`
	Lines  []ReportLine `json:"lines"`
}

// ReportOptions controls how a Report is rendered.
type ReportOptions struct {
	UnknownGroup  string
	TimeFormat    string
	RelativeTimes bool
	ShowFlags     bool
}
