package store

import (
	"math"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ac-tracker/internal/domain"
	"ac-tracker/internal/errors"
	"ac-tracker/internal/validation"
)

var created = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

func taskIDs(s *TaskStore) []uint32 {
	var ids []uint32
	for task := range s.All() {
		ids = append(ids, task.ID)
	}
	return ids
}

func TestTaskStore_AppendAssignsSequentialIDs(t *testing.T) {
	s := NewTaskStore()

	for want := uint32(0); want < 5; want++ {
		task, err := s.Append("task", created)
		require.NoError(t, err)
		assert.Equal(t, want, task.ID)
	}
	assert.Equal(t, 5, s.Len())
}

func TestTaskStore_AppendDefaults(t *testing.T) {
	s := NewTaskStore()
	task, err := s.Append("Hello World!", created)
	require.NoError(t, err)

	assert.Equal(t, "Hello World!", task.Text)
	assert.Equal(t, uint32(created.Unix()), task.CreatedAt)
	assert.Equal(t, domain.DefaultGroupID, task.Group)
	assert.False(t, task.Complete)
	assert.False(t, task.Processed)
	assert.False(t, task.Ongoing)
	assert.Zero(t, task.Priority)
	assert.Zero(t, task.Tag)
}

func TestTaskStore_IDsFollowTail(t *testing.T) {
	s := NewTaskStore()
	for i := 0; i < 3; i++ {
		_, err := s.Append("t", created)
		require.NoError(t, err)
	}

	// Deleting the tail frees its id for the next append.
	require.NoError(t, s.Delete(2))
	task, err := s.Append("again", created)
	require.NoError(t, err)
	assert.Equal(t, uint32(2), task.ID)

	// An emptied store starts over at zero.
	for _, id := range taskIDs(s) {
		require.NoError(t, s.Delete(id))
	}
	task, err = s.Append("fresh", created)
	require.NoError(t, err)
	assert.Equal(t, uint32(0), task.ID)
}

func TestTaskStore_Delete(t *testing.T) {
	tests := []struct {
		name   string
		count  int
		remove uint32
		want   []uint32
	}{
		{"only task", 1, 0, nil},
		{"head", 4, 0, []uint32{1, 2, 3}},
		{"middle", 4, 2, []uint32{0, 1, 3}},
		{"tail", 4, 3, []uint32{0, 1, 2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewTaskStore()
			for i := 0; i < tt.count; i++ {
				_, err := s.Append("t", created)
				require.NoError(t, err)
			}

			require.NoError(t, s.Delete(tt.remove))
			assert.Equal(t, tt.count-1, s.Len())
			assert.Equal(t, tt.want, taskIDs(s))

			_, ok := s.Find(tt.remove)
			assert.False(t, ok)
		})
	}
}

func TestTaskStore_DeleteMissing(t *testing.T) {
	s := NewTaskStore()
	_, err := s.Append("t", created)
	require.NoError(t, err)

	err = s.Delete(9)
	require.Error(t, err)
	assert.True(t, errors.IsNotFound(err))
	assert.Equal(t, 1, s.Len())
}

func TestTaskStore_RejectsOversizedText(t *testing.T) {
	s := NewTaskStore()
	_, err := s.Append(strings.Repeat("x", domain.MaxTextLength+1), created)
	require.Error(t, err)
	assert.True(t, validation.IsValidationError(err))
	assert.Equal(t, 0, s.Len())
}

func TestTaskStore_IDExhaustion(t *testing.T) {
	s := NewTaskStore()
	_, err := s.Restore(domain.Task{ID: math.MaxUint32, Text: "last"})
	require.NoError(t, err)

	_, err = s.Append("overflow", created)
	require.Error(t, err)
	assert.True(t, errors.IsErrorType(err, errors.ErrorTypeAllocation))
}

func TestTaskStore_Restore(t *testing.T) {
	s := NewTaskStore()
	_, err := s.Restore(domain.Task{ID: 4, Text: "a", Processed: true})
	require.NoError(t, err)

	_, err = s.Restore(domain.Task{ID: 4, Text: "dup"})
	assert.True(t, errors.IsErrorType(err, errors.ErrorTypeInvalidInput))

	task, err := s.Append("next", created)
	require.NoError(t, err)
	assert.Equal(t, uint32(5), task.ID)

	restored, ok := s.Find(4)
	require.True(t, ok)
	assert.True(t, restored.Processed)
}

func TestGroupStore_Append(t *testing.T) {
	s := NewGroupStore()

	g0, err := s.Append(domain.DefaultGroupTitle, domain.DefaultGroupDescription)
	require.NoError(t, err)
	g1, err := s.Append("Work", "Work group")
	require.NoError(t, err)

	assert.Equal(t, uint32(0), g0.ID)
	assert.Equal(t, uint32(1), g1.ID)
	assert.Equal(t, 2, s.Len())

	found, ok := s.Find(1)
	require.True(t, ok)
	assert.Equal(t, "Work", found.Title)
	assert.Equal(t, "Work group", found.Description)

	_, ok = s.Find(2)
	assert.False(t, ok)
}

func TestGroupStore_RejectsOversizedDescription(t *testing.T) {
	s := NewGroupStore()
	_, err := s.Append("ok", strings.Repeat("d", 255))
	require.Error(t, err)
	assert.Equal(t, 0, s.Len())
}
