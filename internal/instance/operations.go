package instance

import (
	"iter"

	"ac-tracker/internal/domain"
	"ac-tracker/internal/errors"
	"ac-tracker/internal/services"
)

// AppendGroup adds a group at the tail of the group list.
func (i *Instance) AppendGroup(title, description string) (*domain.Group, error) {
	if err := i.valid("append group"); err != nil {
		return nil, err
	}
	return i.groups.Append(title, description)
}

// AppendTask adds a task created now at the tail of the task list.
func (i *Instance) AppendTask(text string) (*domain.Task, error) {
	if err := i.valid("append task"); err != nil {
		return nil, err
	}
	return i.tasks.Append(text, i.timeNow())
}

// FindTask returns the live task with the given id.
func (i *Instance) FindTask(id uint32) (*domain.Task, error) {
	if err := i.valid("find task"); err != nil {
		return nil, err
	}
	t, ok := i.tasks.Find(id)
	if !ok {
		return nil, errors.NewNotFoundError("task", idString(id))
	}
	return t, nil
}

// FindGroup returns the live group with the given id.
func (i *Instance) FindGroup(id uint32) (*domain.Group, error) {
	if err := i.valid("find group"); err != nil {
		return nil, err
	}
	g, ok := i.groups.Find(id)
	if !ok {
		return nil, errors.NewNotFoundError("group", idString(id))
	}
	return g, nil
}

// GroupTitle resolves a group reference. ok is false when the group does not exist.
func (i *Instance) GroupTitle(id uint32) (title string, ok bool, err error) {
	g, err := i.FindGroup(id)
	if errors.IsNotFound(err) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return g.Title, true, nil
}

// DeleteTask unlinks and releases the task with the given id.
func (i *Instance) DeleteTask(id uint32) error {
	if err := i.valid("delete task"); err != nil {
		return err
	}
	return i.tasks.Delete(id)
}

// SetComplete marks a task complete or not.
func (i *Instance) SetComplete(id uint32, complete bool) (*domain.Task, error) {
	t, err := i.FindTask(id)
	if err != nil {
		return nil, err
	}
	t.Complete = complete
	return t, nil
}

// SetOngoing sets or clears the flag excluding a task from scoring.
func (i *Instance) SetOngoing(id uint32, ongoing bool) (*domain.Task, error) {
	t, err := i.FindTask(id)
	if err != nil {
		return nil, err
	}
	t.Ongoing = ongoing
	return t, nil
}

// AssignGroup points a task at a group. The group does not have to exist.
func (i *Instance) AssignGroup(taskID, groupID uint32) (*domain.Task, error) {
	t, err := i.FindTask(taskID)
	if err != nil {
		return nil, err
	}
	t.Group = groupID
	return t, nil
}

// CalculatePoints settles every unprocessed, non-ongoing task into the user's points.
func (i *Instance) CalculatePoints() (services.ScoreResult, error) {
	if err := i.valid("calculate points"); err != nil {
		return services.ScoreResult{}, err
	}
	return i.scoring.Calculate(i.settings, i.user, i.tasks.All()), nil
}

// Tasks yields the live tasks in list order.
func (i *Instance) Tasks() (iter.Seq[*domain.Task], error) {
	if err := i.valid("tasks"); err != nil {
		return nil, err
	}
	return i.tasks.All(), nil
}

// Groups yields the live groups in list order.
func (i *Instance) Groups() (iter.Seq[*domain.Group], error) {
	if err := i.valid("groups"); err != nil {
		return nil, err
	}
	return i.groups.All(), nil
}

// TaskCount returns the number of live tasks.
func (i *Instance) TaskCount() (int, error) {
	if err := i.valid("task count"); err != nil {
		return 0, err
	}
	return i.tasks.Len(), nil
}

// GroupCount returns the number of groups.
func (i *Instance) GroupCount() (int, error) {
	if err := i.valid("group count"); err != nil {
		return 0, err
	}
	return i.groups.Len(), nil
}
