// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package surface

import (
	"context"
	"sync"
	"time"
)

// Scheduler defers callbacks to the next frame boundary.
//
// Callbacks run in FIFO order, each exactly once, and never from inside
// Schedule. A callback scheduled while a frame is being flushed runs in the
// following frame. There is no cancellation; callers that change their mind
// must make the callback a no-op.
//
// The zero value is ready to use.
type Scheduler struct {
	mu      sync.Mutex
	queue   []func()
	running []func()
}

// Scheduled is implemented by surfaces that carry their own frame queue.
// Callbacks queued on such a surface survive a hand-over to another backend.
type Scheduled interface {
	Scheduler() *Scheduler
}

// Schedule queues fn for the next frame.
func (s *Scheduler) Schedule(fn func()) {
	s.mu.Lock()
	s.queue = append(s.queue, fn)
	s.mu.Unlock()
}

// Pending returns the number of callbacks waiting for the next frame.
func (s *Scheduler) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.queue)
}

// Flush runs the callbacks queued so far and returns how many ran.
// Flush must not be called concurrently with itself.
func (s *Scheduler) Flush() int {
	s.mu.Lock()
	s.queue, s.running = s.running[:0], s.queue
	s.mu.Unlock()

	batch := s.running
	for i, fn := range batch {
		batch[i] = nil
		fn()
	}
	return len(batch)
}

// Run flushes a frame every interval until ctx is done.
func (s *Scheduler) Run(ctx context.Context, interval time.Duration) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			s.Flush()
		}
	}
}
