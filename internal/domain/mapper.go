package domain

import (
	"ac-tracker/internal/repository/sqlite"
)

// SnapshotMapper handles conversion between domain snapshots and their SQLite rows.
type SnapshotMapper struct{}

// NewSnapshotMapper creates a new SnapshotMapper instance.
func NewSnapshotMapper() *SnapshotMapper {
	return &SnapshotMapper{}
}

// ToDatabase converts a domain Snapshot to its row form. List order becomes the
// position column and only non-zero achievement slots are kept.
func (m *SnapshotMapper) ToDatabase(s Snapshot) *sqlite.Snapshot {
	db := &sqlite.Snapshot{
		Points:     int64(s.User.Points),
		Multiplier: int64(s.Settings.Multiplier),
		Threshold:  int64(s.Settings.Threshold),
		Groups:     make([]*sqlite.Group, len(s.Groups)),
		Tasks:      make([]*sqlite.Task, len(s.Tasks)),
	}

	for slot, value := range s.User.Achievements {
		if value != 0 {
			db.Achievements = append(db.Achievements, &sqlite.Achievement{Slot: int64(slot), Value: int64(value)})
		}
	}

	for i, g := range s.Groups {
		db.Groups[i] = &sqlite.Group{
			ID:          int64(g.ID),
			Position:    int64(i),
			Title:       g.Title,
			Description: g.Description,
		}
	}

	for i, t := range s.Tasks {
		db.Tasks[i] = &sqlite.Task{
			ID:        int64(t.ID),
			Position:  int64(i),
			CreatedAt: int64(t.CreatedAt),
			Priority:  int64(t.Priority),
			Tag:       int64(t.Tag),
			GroupID:   int64(t.Group),
			Complete:  t.Complete,
			Processed: t.Processed,
			Ongoing:   t.Ongoing,
			Text:      t.Text,
		}
	}

	return db
}

// FromDatabase converts stored rows back to a domain Snapshot. Rows are expected
// in position order; achievement slots outside the array are ignored.
func (m *SnapshotMapper) FromDatabase(db *sqlite.Snapshot) Snapshot {
	s := Snapshot{
		User: User{Points: int32(db.Points)},
		Settings: Settings{
			Multiplier: uint32(db.Multiplier),
			Threshold:  uint32(db.Threshold),
		},
		Groups: make([]Group, len(db.Groups)),
		Tasks:  make([]Task, len(db.Tasks)),
	}

	for _, a := range db.Achievements {
		if a.Slot >= 0 && a.Slot < AchievementSlots {
			s.User.Achievements[a.Slot] = int32(a.Value)
		}
	}

	for i, g := range db.Groups {
		s.Groups[i] = Group{
			ID:          uint32(g.ID),
			Title:       g.Title,
			Description: g.Description,
		}
	}

	for i, t := range db.Tasks {
		s.Tasks[i] = Task{
			ID:        uint32(t.ID),
			CreatedAt: uint32(t.CreatedAt),
			Priority:  uint32(t.Priority),
			Tag:       uint32(t.Tag),
			Group:     uint32(t.GroupID),
			Complete:  t.Complete,
			Processed: t.Processed,
			Ongoing:   t.Ongoing,
			Text:      t.Text,
		}
	}

	return s
}
