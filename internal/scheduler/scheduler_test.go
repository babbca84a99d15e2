package scheduler

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNextRunAfter(t *testing.T) {
	base := time.Date(2025, 6, 1, 2, 30, 0, 0, time.UTC)

	// hour still ahead today
	assert.Equal(t, time.Date(2025, 6, 1, 4, 0, 0, 0, time.UTC), nextRunAfter(base, 4))

	// hour already passed, rolls to tomorrow
	assert.Equal(t, time.Date(2025, 6, 2, 1, 0, 0, 0, time.UTC), nextRunAfter(base, 1))

	// exactly at the hour counts as passed
	atHour := time.Date(2025, 6, 1, 4, 0, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2025, 6, 2, 4, 0, 0, 0, time.UTC), nextRunAfter(atHour, 4))
}

func TestTick_RunsDueTasksAndReschedules(t *testing.T) {
	s := New()
	ran := 0
	s.RegisterDaily("sweep", 4, func(ctx context.Context) error {
		ran++
		return nil
	})

	task := s.tasks[0]
	due := task.NextRun.Add(time.Minute)
	s.tick(due)

	assert.Equal(t, 1, ran)
	assert.Equal(t, due, task.LastRun)
	assert.True(t, task.NextRun.After(due))

	// not due again until the next day
	s.tick(due.Add(time.Minute))
	assert.Equal(t, 1, ran)
}

func TestTick_SkipsTasksNotYetDue(t *testing.T) {
	s := New()
	ran := 0
	s.RegisterDaily("sweep", 4, func(ctx context.Context) error {
		ran++
		return nil
	})

	s.tick(s.tasks[0].NextRun.Add(-time.Hour))
	assert.Equal(t, 0, ran)
}
