package service

import (
	"context"
	"sync"

	"golang.org/x/sync/semaphore"
)

// WorkerPool bounds the number of background tasks running at once. Go blocks
// when the pool is saturated, so producers exert backpressure instead of
// spawning unbounded goroutines.
type WorkerPool struct {
	sem *semaphore.Weighted
	wg  sync.WaitGroup
}

// NewWorkerPool creates a pool allowing size concurrent tasks.
func NewWorkerPool(size int64) *WorkerPool {
	if size <= 0 {
		size = 1
	}
	return &WorkerPool{sem: semaphore.NewWeighted(size)}
}

// Go runs fn on a pool slot, blocking until one frees up or ctx is cancelled.
func (p *WorkerPool) Go(ctx context.Context, fn func()) error {
	if err := p.sem.Acquire(ctx, 1); err != nil {
		return err
	}
	p.wg.Add(1)
	go func() {
		defer p.wg.Done()
		defer p.sem.Release(1)
		fn()
	}()
	return nil
}

// Wait blocks until every dispatched task has returned.
func (p *WorkerPool) Wait() {
	p.wg.Wait()
}
