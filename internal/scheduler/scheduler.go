// Package scheduler runs library scans on a cron schedule.
package scheduler

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"
)

// Job is run at every tick. ctx is cancelled when the scheduler stops.
type Job func(ctx context.Context)

// Scheduler runs a Job on a standard five-field cron schedule.
// A tick is skipped while the previous run is still going.
type Scheduler struct {
	spec     string
	schedule cron.Schedule
	job      Job
	log      *slog.Logger
}

// New parses spec and creates a Scheduler.
func New(spec string, job Job, log *slog.Logger) (*Scheduler, error) {
	schedule, err := cron.ParseStandard(spec)
	if err != nil {
		return nil, fmt.Errorf("invalid schedule %q: %w", spec, err)
	}
	if log == nil {
		log = slog.Default()
	}
	return &Scheduler{
		spec:     spec,
		schedule: schedule,
		job:      job,
		log:      log.With("component", "scheduler"),
	}, nil
}

// Next returns the first activation after t.
func (s *Scheduler) Next(t time.Time) time.Time {
	return s.schedule.Next(t)
}

// Run blocks until ctx is done, then waits for a running job to return.
func (s *Scheduler) Run(ctx context.Context) error {
	logger := cronLogger{s.log}
	c := cron.New(
		cron.WithLogger(logger),
		cron.WithChain(cron.Recover(logger), cron.SkipIfStillRunning(logger)),
	)
	c.Schedule(s.schedule, cron.FuncJob(func() {
		start := time.Now()
		s.log.Info("scheduled scan started")
		s.job(ctx)
		s.log.Info("scheduled scan finished", "duration_ms", time.Since(start).Milliseconds())
	}))

	c.Start()
	s.log.Info("scheduler started", "schedule", s.spec, "next", s.Next(time.Now()))

	<-ctx.Done()
	<-c.Stop().Done()
	s.log.Info("scheduler stopped")
	return nil
}

// cronLogger adapts slog to the cron logger interface.
type cronLogger struct {
	log *slog.Logger
}

func (l cronLogger) Info(msg string, keysAndValues ...any) {
	l.log.Debug(msg, keysAndValues...)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...any) {
	l.log.Error(msg, append([]any{"error", err}, keysAndValues...)...)
}
