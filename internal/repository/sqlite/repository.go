package sqlite

import (
	"context"
	"database/sql"
	"time"

	"ac-tracker/internal/errors"
	"ac-tracker/internal/repository/sqlite/migrations"

	_ "modernc.org/sqlite"
)

// Repository stores one instance snapshot in SQLite.
type Repository interface {
	// SaveSnapshot replaces the stored snapshot.
	SaveSnapshot(ctx context.Context, snapshot *Snapshot) error
	// LoadSnapshot returns the stored snapshot, or a not found error if none was saved.
	LoadSnapshot(ctx context.Context) (*Snapshot, error)

	ListGroups(ctx context.Context) ([]*Group, error)
	ListTasks(ctx context.Context) ([]*Task, error)

	Close() error
}

// SQLiteRepository implements the Repository interface
type SQLiteRepository struct {
	db      *sql.DB
	timeNow func() time.Time
}

// New creates a new SQLite repository instance
func New(dbPath string) (*SQLiteRepository, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, errors.NewDatabaseError("open database", err)
	}
	// An in-memory database exists per connection.
	db.SetMaxOpenConns(1)

	if err := migrations.RunMigrations(db); err != nil {
		db.Close()
		return nil, errors.NewDatabaseError("run migrations", err)
	}

	return &SQLiteRepository{db: db, timeNow: time.Now}, nil
}

// Close closes the database connection
func (r *SQLiteRepository) Close() error {
	return r.db.Close()
}

// SaveSnapshot replaces every stored row with the given snapshot in one transaction.
func (r *SQLiteRepository) SaveSnapshot(ctx context.Context, snapshot *Snapshot) error {
	savedAt := r.timeNow()

	err := WithTx(ctx, r.db, func(tx *sql.Tx) error {
		for _, table := range []string{"tasks", "task_groups", "achievements", "snapshot"} {
			if err := Execute(ctx, tx, "clear "+table, "DELETE FROM "+table); err != nil {
				return err
			}
		}

		if err := Execute(ctx, tx, "insert snapshot",
			`INSERT INTO snapshot (id, points, multiplier, threshold, saved_at) VALUES (1, ?, ?, ?, ?)`,
			snapshot.Points, snapshot.Multiplier, snapshot.Threshold, FormatTimeForDB(savedAt)); err != nil {
			return err
		}

		for _, a := range snapshot.Achievements {
			if err := Execute(ctx, tx, "insert achievement",
				`INSERT INTO achievements (slot, value) VALUES (?, ?)`, a.Slot, a.Value); err != nil {
				return err
			}
		}

		for _, g := range snapshot.Groups {
			if err := Execute(ctx, tx, "insert group",
				`INSERT INTO task_groups (id, position, title, description) VALUES (?, ?, ?, ?)`,
				g.ID, g.Position, g.Title, g.Description); err != nil {
				return err
			}
		}

		for _, t := range snapshot.Tasks {
			if err := Execute(ctx, tx, "insert task",
				`INSERT INTO tasks (id, position, created_at, priority, tag, group_id, complete, processed, ongoing, text)
				VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
				t.ID, t.Position, t.CreatedAt, t.Priority, t.Tag, t.GroupID,
				t.Complete, t.Processed, t.Ongoing, t.Text); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	snapshot.SavedAt = savedAt
	return nil
}

// LoadSnapshot reads the stored snapshot back, groups and tasks in list order.
func (r *SQLiteRepository) LoadSnapshot(ctx context.Context) (*Snapshot, error) {
	snapshot := &Snapshot{}
	var savedAt string

	row := r.db.QueryRowContext(ctx, `SELECT points, multiplier, threshold, saved_at FROM snapshot WHERE id = 1`)
	if err := row.Scan(&snapshot.Points, &snapshot.Multiplier, &snapshot.Threshold, &savedAt); err != nil {
		if err == sql.ErrNoRows {
			return nil, HandleNoRowsError(err, "snapshot", "1")
		}
		return nil, HandleDatabaseError("scan snapshot", err)
	}

	ts, err := ParseTimeFromDB(savedAt)
	if err != nil {
		return nil, HandleDatabaseError("parse saved_at", err)
	}
	snapshot.SavedAt = ts

	snapshot.Achievements, err = QueryMultiple(ctx, r.db,
		`SELECT slot, value FROM achievements ORDER BY slot ASC`, ScanAchievements, "achievements")
	if err != nil {
		return nil, err
	}

	if snapshot.Groups, err = r.ListGroups(ctx); err != nil {
		return nil, err
	}
	if snapshot.Tasks, err = r.ListTasks(ctx); err != nil {
		return nil, err
	}

	return snapshot, nil
}

// ListGroups retrieves all groups in list order
func (r *SQLiteRepository) ListGroups(ctx context.Context) ([]*Group, error) {
	query := `SELECT id, position, title, description FROM task_groups ORDER BY position ASC`
	return QueryMultiple(ctx, r.db, query, ScanGroups, "groups")
}

// ListTasks retrieves all tasks in list order
func (r *SQLiteRepository) ListTasks(ctx context.Context) ([]*Task, error) {
	query := `
	SELECT id, position, created_at, priority, tag, group_id, complete, processed, ongoing, text
	FROM tasks
	ORDER BY position ASC`
	return QueryMultiple(ctx, r.db, query, ScanTasks, "tasks")
}
