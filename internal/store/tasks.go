package store

import (
	"iter"
	"strconv"
	"time"

	"ac-tracker/internal/domain"
	"ac-tracker/internal/errors"
	"ac-tracker/internal/validation"
)

// TaskStore is the ordered collection of tasks.
//
// Ids follow the tail: a new task gets the current tail's id plus one, so an
// emptied store hands out id 0 again and deleting the tail makes its id reusable.
type TaskStore struct {
	list      *List[domain.Task]
	validator *validation.TextValidator
}

// NewTaskStore creates an empty task store.
func NewTaskStore() *TaskStore {
	return &TaskStore{
		list:      NewList(func(t *domain.Task) uint32 { return t.ID }),
		validator: validation.NewTextValidator(),
	}
}

// Append validates text and links a new task at the tail. The task starts in
// the default group with every flag cleared.
func (s *TaskStore) Append(text string, createdAt time.Time) (*domain.Task, error) {
	if err := s.validator.ValidateTaskText(text); err != nil {
		return nil, err
	}

	id, err := nextID(s.list, "task")
	if err != nil {
		return nil, err
	}

	t := domain.NewTask(text, createdAt)
	t.ID = id
	return s.list.Append(t), nil
}

// Restore appends a previously persisted task, keeping its id and flags.
func (s *TaskStore) Restore(t domain.Task) (*domain.Task, error) {
	if err := s.validator.ValidateTaskText(t.Text); err != nil {
		return nil, err
	}
	if err := checkRestoredID(s.list, t.ID, "task"); err != nil {
		return nil, err
	}
	return s.list.Append(t), nil
}

// Find returns the task with the given id.
func (s *TaskStore) Find(id uint32) (*domain.Task, bool) {
	return s.list.Find(id)
}

// Delete unlinks the task with the given id.
func (s *TaskStore) Delete(id uint32) error {
	if !s.list.Remove(id) {
		return errors.NewNotFoundError("task", strconv.FormatUint(uint64(id), 10))
	}
	return nil
}

// Len returns the number of tasks.
func (s *TaskStore) Len() int {
	return s.list.Len()
}

// All yields tasks in list order.
func (s *TaskStore) All() iter.Seq[*domain.Task] {
	return s.list.All()
}

// Clear releases every task.
func (s *TaskStore) Clear() {
	s.list.Clear()
}
