// Package instance owns one tracker instance: its settings, user record and
// the group and task stores, plus scoring and binary persistence.
//
// An Instance has a single owner. Callers sharing one across goroutines must
// serialize access themselves.
package instance

import (
	"strconv"
	"time"

	"ac-tracker/internal/domain"
	"ac-tracker/internal/errors"
	"ac-tracker/internal/logging"
	"ac-tracker/internal/repository/binfile"
	"ac-tracker/internal/services"
	"ac-tracker/internal/store"
)

// Instance aggregates the scoring settings, the user and both stores.
type Instance struct {
	settings domain.Settings
	user     *domain.User
	groups   *store.GroupStore
	tasks    *store.TaskStore
	scoring  *services.ScoringService
	timeNow  func() time.Time
}

// Option configures an Instance at construction.
type Option func(*Instance)

// WithClock sets the clock used for task creation times and scoring.
func WithClock(now func() time.Time) Option {
	return func(i *Instance) {
		i.timeNow = now
		i.scoring = services.NewScoringServiceWithClock(now)
	}
}

func newEmpty(settings domain.Settings, opts ...Option) *Instance {
	i := &Instance{
		settings: settings,
		user:     &domain.User{},
		groups:   store.NewGroupStore(),
		tasks:    store.NewTaskStore(),
		scoring:  services.NewScoringService(),
		timeNow:  time.Now,
	}
	for _, opt := range opts {
		opt(i)
	}
	return i
}

// New creates an instance with a zeroed user, the given scoring settings, the
// default group installed as group 0 and no tasks.
func New(multiplier, threshold uint32, opts ...Option) *Instance {
	i := newEmpty(domain.Settings{Multiplier: multiplier, Threshold: threshold}, opts...)
	if _, err := i.groups.Append(domain.DefaultGroupTitle, domain.DefaultGroupDescription); err != nil {
		// The default group is a valid constant on an empty store.
		panic(err)
	}
	logging.Debug("instance created", "multiplier", multiplier, "threshold", threshold)
	return i
}

// FromSnapshot rebuilds an instance from a detached snapshot. Groups and tasks
// are linked in slice order and keep their ids, which must be strictly increasing.
func FromSnapshot(s domain.Snapshot, opts ...Option) (*Instance, error) {
	i := newEmpty(s.Settings, opts...)
	*i.user = s.User

	for _, g := range s.Groups {
		if _, err := i.groups.Restore(g); err != nil {
			return nil, err
		}
	}
	for _, t := range s.Tasks {
		if _, err := i.tasks.Restore(t); err != nil {
			return nil, err
		}
	}
	return i, nil
}

// Load reads an instance saved with Save. A missing file is a not found error;
// any other read or format failure is an IO error.
func Load(path string, opts ...Option) (*Instance, error) {
	s, err := binfile.ReadFile(path)
	if err != nil {
		return nil, err
	}
	i, err := FromSnapshot(*s, opts...)
	if err != nil {
		return nil, errors.NewIOError("load", path, err)
	}
	logging.Debug("instance loaded", "path", path, "groups", len(s.Groups), "tasks", len(s.Tasks))
	return i, nil
}

func (i *Instance) valid(operation string) error {
	if i == nil || i.user == nil {
		return errors.NewInvalidInstanceError(operation)
	}
	return nil
}

// Destroy releases every group and task and the user. Any later call,
// including a second Destroy, reports an invalid instance.
func (i *Instance) Destroy() error {
	if err := i.valid("destroy"); err != nil {
		return err
	}
	i.tasks.Clear()
	i.groups.Clear()
	i.user = nil
	logging.Debug("instance destroyed")
	return nil
}

// Settings returns the scoring settings.
func (i *Instance) Settings() (domain.Settings, error) {
	if err := i.valid("settings"); err != nil {
		return domain.Settings{}, err
	}
	return i.settings, nil
}

// User returns the live user record.
func (i *Instance) User() (*domain.User, error) {
	if err := i.valid("user"); err != nil {
		return nil, err
	}
	return i.user, nil
}

// Save writes the instance to path in the binary layout.
func (i *Instance) Save(path string) error {
	s, err := i.Snapshot()
	if err != nil {
		return err
	}
	if err := binfile.WriteFile(path, &s); err != nil {
		return err
	}
	logging.Debug("instance saved", "path", path, "groups", len(s.Groups), "tasks", len(s.Tasks))
	return nil
}

// Snapshot copies the instance into a detached value.
func (i *Instance) Snapshot() (domain.Snapshot, error) {
	if err := i.valid("snapshot"); err != nil {
		return domain.Snapshot{}, err
	}

	s := domain.Snapshot{
		User:     *i.user,
		Settings: i.settings,
		Groups:   make([]domain.Group, 0, i.groups.Len()),
		Tasks:    make([]domain.Task, 0, i.tasks.Len()),
	}
	for g := range i.groups.All() {
		s.Groups = append(s.Groups, *g)
	}
	for t := range i.tasks.All() {
		s.Tasks = append(s.Tasks, *t)
	}
	return s, nil
}

func idString(id uint32) string {
	return strconv.FormatUint(uint64(id), 10)
}
