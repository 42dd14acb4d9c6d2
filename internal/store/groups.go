package store

import (
	"fmt"
	"iter"
	"math"

	"ac-tracker/internal/domain"
	"ac-tracker/internal/errors"
	"ac-tracker/internal/validation"
)

// GroupStore is the ordered collection of groups. Groups cannot be deleted.
type GroupStore struct {
	list      *List[domain.Group]
	validator *validation.TextValidator
}

// NewGroupStore creates an empty group store.
func NewGroupStore() *GroupStore {
	return &GroupStore{
		list:      NewList(func(g *domain.Group) uint32 { return g.ID }),
		validator: validation.NewTextValidator(),
	}
}

// Append validates title and description, assigns the next id and links the
// group at the tail.
func (s *GroupStore) Append(title, description string) (*domain.Group, error) {
	if err := s.validator.ValidateGroup(title, description); err != nil {
		return nil, err
	}

	id, err := nextID(s.list, "group")
	if err != nil {
		return nil, err
	}

	g := domain.NewGroup(title, description)
	g.ID = id
	return s.list.Append(g), nil
}

// Restore appends a previously persisted group, keeping its id.
func (s *GroupStore) Restore(g domain.Group) (*domain.Group, error) {
	if err := s.validator.ValidateGroup(g.Title, g.Description); err != nil {
		return nil, err
	}
	if err := checkRestoredID(s.list, g.ID, "group"); err != nil {
		return nil, err
	}
	return s.list.Append(g), nil
}

// Find returns the group with the given id.
func (s *GroupStore) Find(id uint32) (*domain.Group, bool) {
	return s.list.Find(id)
}

// Len returns the number of groups.
func (s *GroupStore) Len() int {
	return s.list.Len()
}

// All yields groups in list order.
func (s *GroupStore) All() iter.Seq[*domain.Group] {
	return s.list.All()
}

// Clear releases every group.
func (s *GroupStore) Clear() {
	s.list.Clear()
}

// nextID derives the id of a record about to be appended: one past the
// tail's id, or zero for an empty list.
func nextID[T any](l *List[T], resource string) (uint32, error) {
	last, ok := l.Last()
	if !ok {
		return 0, nil
	}
	id := l.key(last)
	if id == math.MaxUint32 {
		return 0, errors.NewAllocationError(resource, "id space exhausted")
	}
	return id + 1, nil
}

func checkRestoredID[T any](l *List[T], id uint32, resource string) error {
	last, ok := l.Last()
	if ok && l.key(last) >= id {
		return errors.NewInvalidInputError(resource+"_id", id,
			fmt.Sprintf("must be greater than %d to keep ids increasing", l.key(last)))
	}
	return nil
}
