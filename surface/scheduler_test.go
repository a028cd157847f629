// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package surface

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestSchedulerDefersAndOrders(t *testing.T) {
	var s Scheduler
	var got []int

	for i := 0; i < 3; i++ {
		s.Schedule(func() { got = append(got, i) })
	}
	if len(got) != 0 {
		t.Fatal("Schedule must not run callbacks synchronously")
	}
	if s.Pending() != 3 {
		t.Errorf("Pending() = %d, want 3", s.Pending())
	}

	if n := s.Flush(); n != 3 {
		t.Errorf("Flush() = %d, want 3", n)
	}
	if len(got) != 3 || got[0] != 0 || got[1] != 1 || got[2] != 2 {
		t.Errorf("callbacks ran as %v, want [0 1 2]", got)
	}

	if n := s.Flush(); n != 0 {
		t.Errorf("second Flush() = %d, want 0 (each callback runs once)", n)
	}
}

func TestSchedulerNestedGoesToNextFrame(t *testing.T) {
	var s Scheduler
	inner := false
	s.Schedule(func() {
		s.Schedule(func() { inner = true })
	})

	s.Flush()
	if inner {
		t.Fatal("callback scheduled during a frame ran in the same frame")
	}
	s.Flush()
	if !inner {
		t.Error("callback scheduled during a frame did not run in the next frame")
	}
}

func TestSchedulerRun(t *testing.T) {
	var s Scheduler
	ctx, cancel := context.WithCancel(context.Background())

	s.Schedule(cancel)

	done := make(chan error, 1)
	go func() { done <- s.Run(ctx, time.Millisecond) }()

	select {
	case err := <-done:
		if !errors.Is(err, context.Canceled) {
			t.Errorf("Run() error = %v, want context.Canceled", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Run() did not return after the scheduled cancel ran")
	}
}
