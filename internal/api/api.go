package api

import (
	"context"
	stderrors "errors"
	"io/fs"
	"os"
	"time"

	"ac-tracker/internal/domain"
	"ac-tracker/internal/errors"
	"ac-tracker/internal/instance"
	"ac-tracker/internal/logging"
	"ac-tracker/internal/repository/sqlite"
	"ac-tracker/internal/services"
)

// API defines every operation the command line performs on the stored instance.
// Each call loads the instance file, applies one change and saves it back.
type API interface {
	// Instance operations
	Init(force bool) (*Status, error)
	Status() (*Status, error)

	// Group and task operations
	AddGroup(title, description string) (*domain.Group, error)
	AddTask(text string) (*domain.Task, error)
	CompleteTask(id uint32, complete bool) (*domain.Task, error)
	SetOngoing(id uint32, ongoing bool) (*domain.Task, error)
	AssignGroup(taskID, groupID uint32) (*domain.Task, error)
	DeleteTask(id uint32) error

	// Scoring and reporting
	Score() (*ScoreSummary, error)
	Report() (*services.Report, error)

	// SQLite snapshot exchange
	ExportSnapshot(ctx context.Context, repo sqlite.Repository) (*Status, error)
	ImportSnapshot(ctx context.Context, repo sqlite.Repository) (*Status, error)
}

// Status describes the stored instance after an operation.
type Status struct {
	Path       string          `json:"path"`
	Settings   domain.Settings `json:"settings"`
	Points     int32           `json:"points"`
	GroupCount int             `json:"group_count"`
	TaskCount  int             `json:"task_count"`
}

// ScoreSummary is the outcome of one scoring pass.
type ScoreSummary struct {
	services.ScoreResult
	Points int32 `json:"points"`
}

// Options configure an API.
type Options struct {
	// Path is the binary instance file.
	Path string
	// Settings are used by Init for a new instance.
	Settings domain.Settings
	// Report controls Report output.
	Report services.ReportOptions
	// Now overrides the clock, mainly for tests.
	Now func() time.Time
}

type apiImpl struct {
	path      string
	settings  domain.Settings
	mapper    *domain.SnapshotMapper
	reporting *services.ReportingService
	opts      []instance.Option
}

// New creates a new API instance.
func New(options Options) API {
	a := &apiImpl{
		path:      options.Path,
		settings:  options.Settings,
		mapper:    domain.NewSnapshotMapper(),
		reporting: services.NewReportingService(options.Report),
	}
	if options.Now != nil {
		a.opts = append(a.opts, instance.WithClock(options.Now))
	}
	return a
}

// load opens the stored instance. A missing file means no instance has been
// initialized yet.
func (a *apiImpl) load(operation string) (*instance.Instance, error) {
	inst, err := instance.Load(a.path, a.opts...)
	if errors.IsNotFound(err) {
		invalid := errors.NewInvalidInstanceError(operation).WithContext("path", a.path)
		invalid.Cause = err
		return nil, invalid
	}
	return inst, err
}

// update loads the instance, applies fn and saves the result when fn succeeds.
func (a *apiImpl) update(operation string, fn func(*instance.Instance) error) error {
	inst, err := a.load(operation)
	if err != nil {
		return err
	}
	defer inst.Destroy()

	if err := fn(inst); err != nil {
		return err
	}
	return inst.Save(a.path)
}

func (a *apiImpl) status(inst *instance.Instance) (*Status, error) {
	s, err := inst.Snapshot()
	if err != nil {
		return nil, err
	}
	return &Status{
		Path:       a.path,
		Settings:   s.Settings,
		Points:     s.User.Points,
		GroupCount: len(s.Groups),
		TaskCount:  len(s.Tasks),
	}, nil
}

func (a *apiImpl) Init(force bool) (*Status, error) {
	if _, err := os.Stat(a.path); err == nil && !force {
		return nil, errors.NewInvalidInputError("path", a.path, "an instance already exists; use --force to replace it")
	} else if err != nil && !stderrors.Is(err, fs.ErrNotExist) {
		return nil, errors.NewIOError("stat", a.path, err)
	}

	inst := instance.New(a.settings.Multiplier, a.settings.Threshold, a.opts...)
	defer inst.Destroy()

	if err := inst.Save(a.path); err != nil {
		return nil, err
	}
	logging.Debug("instance initialized", "path", a.path)
	return a.status(inst)
}

func (a *apiImpl) Status() (*Status, error) {
	inst, err := a.load("status")
	if err != nil {
		return nil, err
	}
	defer inst.Destroy()
	return a.status(inst)
}

func (a *apiImpl) AddGroup(title, description string) (*domain.Group, error) {
	var group domain.Group
	err := a.update("add group", func(inst *instance.Instance) error {
		g, err := inst.AppendGroup(title, description)
		if err != nil {
			return err
		}
		group = *g
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &group, nil
}

func (a *apiImpl) AddTask(text string) (*domain.Task, error) {
	return a.updateTask("add task", func(inst *instance.Instance) (*domain.Task, error) {
		return inst.AppendTask(text)
	})
}

func (a *apiImpl) CompleteTask(id uint32, complete bool) (*domain.Task, error) {
	return a.updateTask("complete task", func(inst *instance.Instance) (*domain.Task, error) {
		return inst.SetComplete(id, complete)
	})
}

func (a *apiImpl) SetOngoing(id uint32, ongoing bool) (*domain.Task, error) {
	return a.updateTask("set ongoing", func(inst *instance.Instance) (*domain.Task, error) {
		return inst.SetOngoing(id, ongoing)
	})
}

func (a *apiImpl) AssignGroup(taskID, groupID uint32) (*domain.Task, error) {
	return a.updateTask("assign group", func(inst *instance.Instance) (*domain.Task, error) {
		return inst.AssignGroup(taskID, groupID)
	})
}

// updateTask runs a task mutation and returns a copy of the changed task.
func (a *apiImpl) updateTask(operation string, fn func(*instance.Instance) (*domain.Task, error)) (*domain.Task, error) {
	var task domain.Task
	err := a.update(operation, func(inst *instance.Instance) error {
		t, err := fn(inst)
		if err != nil {
			return err
		}
		task = *t
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &task, nil
}

func (a *apiImpl) DeleteTask(id uint32) error {
	return a.update("delete task", func(inst *instance.Instance) error {
		return inst.DeleteTask(id)
	})
}

func (a *apiImpl) Score() (*ScoreSummary, error) {
	var summary ScoreSummary
	err := a.update("score", func(inst *instance.Instance) error {
		result, err := inst.CalculatePoints()
		if err != nil {
			return err
		}
		user, err := inst.User()
		if err != nil {
			return err
		}
		summary = ScoreSummary{ScoreResult: result, Points: user.Points}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &summary, nil
}

func (a *apiImpl) Report() (*services.Report, error) {
	inst, err := a.load("report")
	if err != nil {
		return nil, err
	}
	defer inst.Destroy()

	s, err := inst.Snapshot()
	if err != nil {
		return nil, err
	}
	return a.reporting.Build(s), nil
}

func (a *apiImpl) ExportSnapshot(ctx context.Context, repo sqlite.Repository) (*Status, error) {
	inst, err := a.load("export")
	if err != nil {
		return nil, err
	}
	defer inst.Destroy()

	s, err := inst.Snapshot()
	if err != nil {
		return nil, err
	}
	if err := repo.SaveSnapshot(ctx, a.mapper.ToDatabase(s)); err != nil {
		return nil, err
	}
	logging.Debug("snapshot exported", "groups", len(s.Groups), "tasks", len(s.Tasks))
	return a.status(inst)
}

// ImportSnapshot replaces the instance file with the snapshot stored in repo.
func (a *apiImpl) ImportSnapshot(ctx context.Context, repo sqlite.Repository) (*Status, error) {
	stored, err := repo.LoadSnapshot(ctx)
	if err != nil {
		return nil, err
	}

	inst, err := instance.FromSnapshot(a.mapper.FromDatabase(stored), a.opts...)
	if err != nil {
		return nil, err
	}
	defer inst.Destroy()

	if err := inst.Save(a.path); err != nil {
		return nil, err
	}
	logging.Debug("snapshot imported", "saved_at", stored.SavedAt)
	return a.status(inst)
}
