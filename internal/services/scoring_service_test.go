package services

import (
	"slices"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ac-tracker/internal/domain"
)

var fixedNow = time.Date(2024, 6, 10, 12, 0, 0, 0, time.UTC)

func daysAgo(days int) uint32 {
	return uint32(fixedNow.Add(-time.Duration(days) * 24 * time.Hour).Unix())
}

func newTestScoring() *ScoringService {
	return NewScoringServiceWithClock(func() time.Time { return fixedNow })
}

var defaultSettings = domain.Settings{Multiplier: 10, Threshold: 3}

func TestAgeInDays(t *testing.T) {
	now := fixedNow
	base := uint32(now.Unix())

	tests := []struct {
		name    string
		created uint32
		want    int64
	}{
		{"same instant", base, 0},
		{"just under a day", base - SecondsPerDay + 1, 0},
		{"exactly one day", base - SecondsPerDay, 1},
		{"ten days", base - 10*SecondsPerDay, 10},
		{"one second in the future floors to -1", base + 1, -1},
		{"exactly one day in the future", base + SecondsPerDay, -1},
		{"a day and a second in the future", base + SecondsPerDay + 1, -2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, AgeInDays(now, tt.created))
		})
	}
}

func TestCalculate(t *testing.T) {
	tests := []struct {
		name          string
		task          domain.Task
		wantDelta     int64
		wantProcessed bool
	}{
		{"complete same day earns one multiplier", domain.Task{Complete: true, CreatedAt: daysAgo(0)}, 10, true},
		{"complete after two days", domain.Task{Complete: true, CreatedAt: daysAgo(2)}, 20, true},
		{"complete exactly at threshold", domain.Task{Complete: true, CreatedAt: daysAgo(3)}, 30, true},
		{"complete past threshold earns nothing", domain.Task{Complete: true, CreatedAt: daysAgo(4)}, 0, true},
		{"incomplete within threshold", domain.Task{CreatedAt: daysAgo(1)}, 0, true},
		{"incomplete exactly at threshold", domain.Task{CreatedAt: daysAgo(3)}, 0, true},
		// Overdue incomplete tasks raise points: points -= (3 - 5) * 10.
		{"incomplete overdue gains points (inverted sign kept)", domain.Task{CreatedAt: daysAgo(5)}, 20, true},
		{"ongoing is skipped", domain.Task{Ongoing: true, Complete: true, CreatedAt: daysAgo(0)}, 0, false},
		{"ongoing overdue is skipped", domain.Task{Ongoing: true, CreatedAt: daysAgo(30)}, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			user := &domain.User{}
			task := tt.task
			newTestScoring().Calculate(defaultSettings, user, slices.Values([]*domain.Task{&task}))

			assert.Equal(t, int32(tt.wantDelta), user.Points)
			assert.Equal(t, tt.wantProcessed, task.Processed)
		})
	}
}

func TestCalculate_Idempotent(t *testing.T) {
	tasks := []*domain.Task{
		{ID: 0, Complete: true, CreatedAt: daysAgo(0)},
		{ID: 1, Complete: true, CreatedAt: daysAgo(1)},
		{ID: 2, CreatedAt: daysAgo(7)},
		{ID: 3, Ongoing: true, CreatedAt: daysAgo(7)},
	}
	user := &domain.User{}
	scoring := newTestScoring()

	first := scoring.Calculate(defaultSettings, user, slices.Values(tasks))
	afterFirst := user.Points

	second := scoring.Calculate(defaultSettings, user, slices.Values(tasks))

	assert.Equal(t, afterFirst, user.Points)
	assert.Equal(t, 3, first.Evaluated)
	assert.Equal(t, 1, first.Skipped)
	assert.Equal(t, int64(10+10+40), first.Delta)
	assert.Equal(t, 0, second.Evaluated)
	assert.Equal(t, 4, second.Skipped)
	assert.Zero(t, second.Delta)
}

func TestCalculate_ProcessedTaskNeverRescored(t *testing.T) {
	task := &domain.Task{Complete: true, Processed: true, CreatedAt: daysAgo(0)}
	user := &domain.User{Points: 5}

	newTestScoring().Calculate(defaultSettings, user, slices.Values([]*domain.Task{task}))
	assert.Equal(t, int32(5), user.Points)
}

func TestCalculate_FutureDatedCompleteTask(t *testing.T) {
	// Floor division gives a negative age, which counts as within the
	// threshold and is not the zero-day case, so points drop.
	task := &domain.Task{Complete: true, CreatedAt: uint32(fixedNow.Unix()) + 10}
	user := &domain.User{}

	newTestScoring().Calculate(defaultSettings, user, slices.Values([]*domain.Task{task}))
	assert.Equal(t, int32(-10), user.Points)
	assert.True(t, task.Processed)
}

func TestCalculate_PointsCanGoNegative(t *testing.T) {
	user := &domain.User{Points: -50}
	task := &domain.Task{Complete: true, CreatedAt: daysAgo(1)}

	newTestScoring().Calculate(defaultSettings, user, slices.Values([]*domain.Task{task}))
	require.Equal(t, int32(-40), user.Points)
}
