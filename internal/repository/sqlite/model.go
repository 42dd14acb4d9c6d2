package sqlite

import "time"

// Snapshot is the row-level form of a saved instance.
type Snapshot struct {
	SavedAt      time.Time
	Points       int64
	Multiplier   int64
	Threshold    int64
	Achievements []*Achievement
	Groups       []*Group
	Tasks        []*Task
}

// Achievement is one non-zero achievement slot of the user.
type Achievement struct {
	Slot  int64
	Value int64
}

// Group is a row of the groups table. Position keeps list order.
type Group struct {
	ID          int64
	Position    int64
	Title       string
	Description string
}

// Task is a row of the tasks table. Position keeps list order.
type Task struct {
	ID        int64
	Position  int64
	CreatedAt int64
	Priority  int64
	Tag       int64
	GroupID   int64
	Complete  bool
	Processed bool
	Ongoing   bool
	Text      string
}
