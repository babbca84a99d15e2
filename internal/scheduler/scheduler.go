package scheduler

import (
	"context"
	"sync"
	"time"

	"github.com/thinkribbon/backend/pkg/logger"
)

// DailyTask runs once per day at a fixed UTC hour
type DailyTask struct {
	Name    string
	HourUTC int
	Handler func(ctx context.Context) error
	LastRun time.Time
	NextRun time.Time
}

// Scheduler is an in-process runner for daily maintenance tasks. The
// same handlers stay reachable through the cron HTTP endpoints, so a
// missed in-process run can be triggered externally.
type Scheduler struct {
	tasks []*DailyTask
	mu    sync.RWMutex
	stop  chan struct{}
	wg    sync.WaitGroup
	now   func() time.Time
}

// New creates a scheduler
func New() *Scheduler {
	return &Scheduler{
		stop: make(chan struct{}),
		now:  time.Now,
	}
}

// RegisterDaily schedules a task at the given UTC hour
func (s *Scheduler) RegisterDaily(name string, hourUTC int, handler func(ctx context.Context) error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	task := &DailyTask{
		Name:    name,
		HourUTC: hourUTC,
		Handler: handler,
	}
	task.NextRun = nextRunAfter(s.now().UTC(), hourUTC)
	s.tasks = append(s.tasks, task)

	logger.Get().Info().Str("task", name).Int("hour_utc", hourUTC).Time("next_run", task.NextRun).Msg("daily task registered")
}

// Start launches the background tick loop
func (s *Scheduler) Start() {
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		ticker := time.NewTicker(time.Minute)
		defer ticker.Stop()

		for {
			select {
			case <-s.stop:
				return
			case now := <-ticker.C:
				s.tick(now.UTC())
			}
		}
	}()
	logger.Get().Info().Msg("scheduler started")
}

// Stop halts the tick loop and waits for it to exit
func (s *Scheduler) Stop() {
	close(s.stop)
	s.wg.Wait()
	logger.Get().Info().Msg("scheduler stopped")
}

func (s *Scheduler) tick(now time.Time) {
	s.mu.RLock()
	tasks := make([]*DailyTask, len(s.tasks))
	copy(tasks, s.tasks)
	s.mu.RUnlock()

	for _, task := range tasks {
		if now.Before(task.NextRun) {
			continue
		}

		log := logger.Get().With().Str("task", task.Name).Logger()
		log.Info().Msg("running daily task")

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
		if err := task.Handler(ctx); err != nil {
			log.Error().Err(err).Msg("daily task failed")
		}
		cancel()

		task.LastRun = now
		task.NextRun = nextRunAfter(now, task.HourUTC)
	}
}

// nextRunAfter returns the next occurrence of hourUTC strictly after now
func nextRunAfter(now time.Time, hourUTC int) time.Time {
	next := time.Date(now.Year(), now.Month(), now.Day(), hourUTC, 0, 0, 0, time.UTC)
	if !next.After(now) {
		next = next.Add(24 * time.Hour)
	}
	return next
}
