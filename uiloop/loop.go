// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package uiloop provides an explicit, single-threaded UI task queue.
//
// Path construction, rasterization and painting all happen synchronously on
// one goroutine. Instead of relying on process-wide main-thread state, the
// owner of that goroutine creates a Loop and hands it to whatever needs to
// schedule UI work:
//
//	loop := uiloop.New()
//	go watchSomething(func() { loop.Post(redraw) })
//	loop.Run(ctx) // tasks execute here, one at a time
//
// Tests can skip Run entirely and drain the queue with RunPending.
package uiloop

import (
	"context"
	"sync"
)

// Loop is a FIFO queue of tasks executed on the goroutine that calls Run or
// RunPending. Tasks never run concurrently with each other.
//
// Post and Stop are safe for concurrent use. Run and RunPending must be
// called from a single goroutine at a time.
type Loop struct {
	mu      sync.Mutex
	tasks   []func()
	stopped bool

	// wake has capacity one; a pending token means the queue may be
	// non-empty or the loop was stopped.
	wake chan struct{}
}

// New returns an empty, running loop.
func New() *Loop {
	return &Loop{wake: make(chan struct{}, 1)}
}

// Post queues task for execution. It returns false, dropping the task, if
// the loop has been stopped. Nil tasks are ignored.
func (l *Loop) Post(task func()) bool {
	if task == nil {
		return true
	}
	l.mu.Lock()
	if l.stopped {
		l.mu.Unlock()
		return false
	}
	l.tasks = append(l.tasks, task)
	l.mu.Unlock()
	l.signal()
	return true
}

// RunPending runs every task queued before the call, plus any those tasks
// post, and returns how many ran. It does not block waiting for new work.
func (l *Loop) RunPending() int {
	n := 0
	for {
		batch := l.take()
		if len(batch) == 0 {
			return n
		}
		for _, task := range batch {
			task()
			n++
		}
	}
}

// Run executes tasks as they are posted until ctx is done or Stop is
// called. Tasks already queued when Stop is called still run. Run returns
// ctx.Err() on cancellation and nil after Stop.
func (l *Loop) Run(ctx context.Context) error {
	for {
		l.RunPending()
		if l.isStopped() {
			l.RunPending()
			return nil
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-l.wake:
		}
	}
}

// Stop makes further Post calls fail and lets Run return once the queue is
// drained. Stop is idempotent.
func (l *Loop) Stop() {
	l.mu.Lock()
	l.stopped = true
	l.mu.Unlock()
	l.signal()
}

// Len returns the number of queued tasks.
func (l *Loop) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.tasks)
}

func (l *Loop) take() []func() {
	l.mu.Lock()
	defer l.mu.Unlock()
	batch := l.tasks
	l.tasks = nil
	return batch
}

func (l *Loop) isStopped() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.stopped
}

func (l *Loop) signal() {
	select {
	case l.wake <- struct{}{}:
	default:
	}
}
