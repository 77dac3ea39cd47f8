package cron

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestScheduler_RunOnce(t *testing.T) {
	s := NewScheduler()

	var ran int64
	s.AddJob("counter", time.Hour, func(ctx context.Context) error {
		atomic.AddInt64(&ran, 1)
		return nil
	})
	s.AddJob("failing", time.Hour, func(ctx context.Context) error {
		return errors.New("boom")
	})
	s.AddJob("counter_again", time.Hour, func(ctx context.Context) error {
		atomic.AddInt64(&ran, 1)
		return nil
	})

	// a failing job must not stop the others
	s.RunOnce(context.Background())
	assert.Equal(t, int64(2), atomic.LoadInt64(&ran))

	s.RunOnce(context.Background())
	assert.Equal(t, int64(4), atomic.LoadInt64(&ran))
}

func TestScheduler_StartRunsImmediatelyAndStops(t *testing.T) {
	s := NewScheduler()

	done := make(chan struct{})
	var once int64
	s.AddJob("immediate", time.Hour, func(ctx context.Context) error {
		if atomic.CompareAndSwapInt64(&once, 0, 1) {
			close(done)
		}
		return nil
	})

	s.Start()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("job did not run on start")
	}
	s.Stop()
}
