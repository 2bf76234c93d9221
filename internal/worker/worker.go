package worker

import (
	"context"
	"sync"

	"golang.org/x/sync/semaphore"
)

// Scheduler owns the cancellation scope shared by every wave of a run.
// The first task error cancels the scope and is the error reported by Err.
type Scheduler struct {
	ctx    context.Context
	cancel context.CancelFunc
	mu     sync.Mutex
	err    error
}

func NewScheduler(ctx context.Context) *Scheduler {
	ctx, cancel := context.WithCancel(ctx)
	return &Scheduler{ctx: ctx, cancel: cancel}
}

func (s *Scheduler) Context() context.Context {
	return s.ctx
}

// Err returns the first task error, or the parent context error if the run was cancelled from outside.
func (s *Scheduler) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return s.err
	}
	return s.ctx.Err()
}

func (s *Scheduler) Close() {
	s.cancel()
}

func (s *Scheduler) fail(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err == nil {
		s.err = err
		s.cancel()
	}
}

type Handle int

type Completion[K any, T any] struct {
	Handle Handle
	Key    K
	Value  T
}

type Task[K any, T any] func(ctx context.Context, key K) (T, error)

// Wave runs independent tasks concurrently and yields their results in completion order.
// Each completion carries the key it was submitted with.
type Wave[K any, T any] struct {
	scheduler *Scheduler
	sem       *semaphore.Weighted
	wg        sync.WaitGroup
	results   chan Completion[K, T]
	sealOnce  sync.Once
	submitted int
}

// NewWave creates a wave bound to the scheduler. maxParallel <= 0 means no limit.
func NewWave[K any, T any](scheduler *Scheduler, maxParallel int) *Wave[K, T] {
	w := &Wave[K, T]{
		scheduler: scheduler,
		results:   make(chan Completion[K, T]),
	}
	if maxParallel > 0 {
		w.sem = semaphore.NewWeighted(int64(maxParallel))
	}
	return w
}

// Submit starts task for key without waiting for it. Submit must not be called after Seal.
// Tasks submitted after the scheduler failed are dropped.
func (w *Wave[K, T]) Submit(key K, task Task[K, T]) Handle {
	handle := Handle(w.submitted)
	w.submitted++

	ctx := w.scheduler.ctx
	if ctx.Err() != nil {
		return handle
	}

	w.wg.Add(1)
	go func() {
		defer w.wg.Done()

		if w.sem != nil {
			if err := w.sem.Acquire(ctx, 1); err != nil {
				return
			}
		}
		value, err := task(ctx, key)
		if w.sem != nil {
			w.sem.Release(1)
		}
		if err != nil {
			w.scheduler.fail(err)
			return
		}

		select {
		case w.results <- Completion[K, T]{Handle: handle, Key: key, Value: value}:
		case <-ctx.Done():
		}
	}()
	return handle
}

// Seal marks the end of submissions. AsCompleted is closed once every submitted task has finished.
func (w *Wave[K, T]) Seal() {
	w.sealOnce.Do(func() {
		go func() {
			w.wg.Wait()
			close(w.results)
		}()
	})
}

// AsCompleted yields results as tasks finish, irrespective of submission order.
// Once the scheduler failed, pending results may be dropped.
func (w *Wave[K, T]) AsCompleted() <-chan Completion[K, T] {
	return w.results
}

func (w *Wave[K, T]) Submitted() int {
	return w.submitted
}
