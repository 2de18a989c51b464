package uiloop

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"
)

func TestRunPendingOrder(t *testing.T) {
	l := New()
	var got []int
	for i := range 5 {
		l.Post(func() { got = append(got, i) })
	}
	if l.Len() != 5 {
		t.Fatalf("Len() = %d, want 5", l.Len())
	}
	if n := l.RunPending(); n != 5 {
		t.Errorf("RunPending() = %d, want 5", n)
	}
	for i, v := range got {
		if v != i {
			t.Fatalf("tasks ran out of order: %v", got)
		}
	}
	if n := l.RunPending(); n != 0 {
		t.Errorf("second RunPending() = %d, want 0", n)
	}
}

func TestRunPendingNestedPosts(t *testing.T) {
	l := New()
	var order []string
	l.Post(func() {
		order = append(order, "outer")
		l.Post(func() { order = append(order, "inner") })
	})
	l.Post(func() { order = append(order, "second") })

	if n := l.RunPending(); n != 3 {
		t.Errorf("RunPending() = %d, want 3", n)
	}
	want := []string{"outer", "second", "inner"}
	if len(order) != len(want) {
		t.Fatalf("order = %v, want %v", order, want)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("order = %v, want %v", order, want)
		}
	}
}

func TestPostNil(t *testing.T) {
	l := New()
	if !l.Post(nil) {
		t.Error("Post(nil) = false, want true")
	}
	if l.Len() != 0 {
		t.Errorf("Len() = %d after Post(nil), want 0", l.Len())
	}
}

func TestPostAfterStop(t *testing.T) {
	l := New()
	l.Stop()
	l.Stop()
	if l.Post(func() {}) {
		t.Error("Post after Stop = true, want false")
	}
	if l.Len() != 0 {
		t.Errorf("Len() = %d, want 0", l.Len())
	}
}

func TestRunStopDrainsQueue(t *testing.T) {
	l := New()
	ran := 0
	l.Post(func() { ran++ })
	l.Post(func() {
		ran++
		l.Stop()
	})
	l.Post(func() { ran++ })

	if err := l.Run(context.Background()); err != nil {
		t.Fatalf("Run() = %v, want nil", err)
	}
	if ran != 3 {
		t.Errorf("ran %d tasks, want 3", ran)
	}
}

func TestRunContextCancel(t *testing.T) {
	l := New()
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	if err := l.Run(ctx); !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("Run() = %v, want DeadlineExceeded", err)
	}
}

func TestRunConcurrentPosts(t *testing.T) {
	const workers, perWorker = 8, 50

	l := New()
	var (
		ran int
		wg  sync.WaitGroup
	)
	// ran is only touched by tasks, which all run on the Run goroutine.
	task := func() { ran++ }

	done := make(chan error, 1)
	go func() { done <- l.Run(context.Background()) }()

	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range perWorker {
				l.Post(task)
			}
		}()
	}
	wg.Wait()
	l.Stop()

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Run() = %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after Stop")
	}
	if ran != workers*perWorker {
		t.Errorf("ran %d tasks, want %d", ran, workers*perWorker)
	}
}
