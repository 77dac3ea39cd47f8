package cron

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// runTimeout bounds a single job execution. The sweep and the accrual
// iterate every active employee; a wedged database connection must not
// pin a job goroutine past the next tick.
const runTimeout = 10 * time.Minute

// Job is a registered batch job. Jobs tick on their interval and carry
// their own run-window guards (sweep hour, first of month), so firing
// one outside its window is a cheap no-op.
type Job struct {
	Name     string
	Interval time.Duration
	Run      func(ctx context.Context) error
}

// Scheduler drives the batch jobs on interval tickers, one goroutine
// per job.
type Scheduler struct {
	mu     sync.Mutex
	jobs   []Job
	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

func NewScheduler() *Scheduler {
	ctx, cancel := context.WithCancel(context.Background())
	return &Scheduler{ctx: ctx, cancel: cancel}
}

func (s *Scheduler) AddJob(name string, interval time.Duration, run func(ctx context.Context) error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.jobs = append(s.jobs, Job{Name: name, Interval: interval, Run: run})
	slog.Info("Cron job registered", "name", name, "interval", interval)
}

// Start launches every registered job. Each job fires once immediately
// so a restart inside a run window does not wait a full interval, then
// settles onto its ticker.
func (s *Scheduler) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, job := range s.jobs {
		s.wg.Add(1)
		go s.loop(job)
	}

	slog.Info("Cron scheduler started", "job_count", len(s.jobs))
}

// Stop cancels the run context and waits for in-flight executions.
func (s *Scheduler) Stop() {
	slog.Info("Stopping cron scheduler...")
	s.cancel()
	s.wg.Wait()
	slog.Info("Cron scheduler stopped")
}

func (s *Scheduler) loop(job Job) {
	defer s.wg.Done()

	ticker := time.NewTicker(job.Interval)
	defer ticker.Stop()

	s.execute(job)

	for {
		select {
		case <-s.ctx.Done():
			slog.Info("Cron job stopping", "name", job.Name)
			return
		case <-ticker.C:
			s.execute(job)
		}
	}
}

func (s *Scheduler) execute(job Job) {
	ctx, cancel := context.WithTimeout(s.ctx, runTimeout)
	defer cancel()

	start := time.Now()
	if err := job.Run(ctx); err != nil {
		slog.Error("Cron job failed", "name", job.Name, "error", err, "duration", time.Since(start))
		return
	}
	slog.Debug("Cron job completed", "name", job.Name, "duration", time.Since(start))
}

// RunOnce fires every job a single time on the caller's context,
// bypassing the tickers.
func (s *Scheduler) RunOnce(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, job := range s.jobs {
		if err := job.Run(ctx); err != nil {
			slog.Error("Cron job failed", "name", job.Name, "error", err)
		}
	}
}
