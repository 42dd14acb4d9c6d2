package services

import (
	"iter"
	"time"

	"ac-tracker/internal/domain"
	"ac-tracker/internal/logging"
)

// SecondsPerDay is the length of a scoring day.
const SecondsPerDay = 86400

// ScoringService settles user points from task ages.
type ScoringService struct {
	timeNow func() time.Time
}

// NewScoringService creates a scoring service using the wall clock.
func NewScoringService() *ScoringService {
	return &ScoringService{timeNow: time.Now}
}

// NewScoringServiceWithClock creates a scoring service reading time from now.
func NewScoringServiceWithClock(now func() time.Time) *ScoringService {
	return &ScoringService{timeNow: now}
}

// AgeInDays returns floor((now - createdAt) / 86400) in whole seconds.
// Tasks dated in the future get a negative age.
func AgeInDays(now time.Time, createdAt uint32) int64 {
	diff := now.Unix() - int64(createdAt)
	days := diff / SecondsPerDay
	if diff%SecondsPerDay != 0 && diff < 0 {
		days--
	}
	return days
}

// Calculate walks tasks once and adjusts user points.
//
// Ongoing and already processed tasks are skipped untouched. Every other task
// is latched as processed after evaluation, whether or not it moved points:
//
//   - incomplete with age >= threshold: points -= (threshold - age) * multiplier
//   - complete with age <= threshold:   points += max(age, 1) * multiplier
//
// The first rule subtracts a non-positive amount, so overdue tasks raise the
// total.
func (s *ScoringService) Calculate(settings domain.Settings, user *domain.User, tasks iter.Seq[*domain.Task]) ScoreResult {
	var result ScoreResult
	now := s.timeNow()
	threshold := int64(settings.Threshold)
	multiplier := int64(settings.Multiplier)

	for task := range tasks {
		if task.Ongoing || task.Processed {
			result.Skipped++
			continue
		}

		age := AgeInDays(now, task.CreatedAt)
		var delta int64

		if !task.Complete && age >= threshold {
			delta = -((threshold - age) * multiplier)
		}

		if task.Complete && age <= threshold {
			days := age
			if days == 0 {
				days = 1
			}
			delta = days * multiplier
		}

		user.AddPoints(delta)
		task.Processed = true

		result.Evaluated++
		result.Delta += delta
		logging.Debug("task scored", "task_id", task.ID, "age_days", age, "complete", task.Complete, "delta", delta)
	}

	return result
}
