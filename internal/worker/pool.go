// Package worker runs independent games on a fixed set of goroutines.
package worker

import (
	"context"
	stderrors "errors"
	"sync"
)

// ErrNotStarted is returned by Submit before Start.
var ErrNotStarted = stderrors.New("worker: pool not started")

// WorkItem identifies one game to play.
type WorkItem struct {
	Index int    // Position in the batch
	Seed  uint64 // Dice seed for the game
}

// ProcessResult is the outcome of one game.
type ProcessResult struct {
	Index    int
	Winner   int // Seat of the winner, -1 when the game hit its turn limit
	Turns    int
	Captures int
	Err      error
}

// ProcessFunc plays a work item. It runs on a worker goroutine and must
// only touch state it owns. ctx is cancelled when the pool is stopped.
type ProcessFunc func(ctx context.Context, item WorkItem) ProcessResult

// Pool feeds work items to a fixed number of goroutines and collects one
// result per played item. Items still queued after Stop are discarded.
type Pool struct {
	size    int
	backlog int
	play    ProcessFunc

	queue   chan WorkItem
	results chan ProcessResult
	running sync.WaitGroup

	ctx    context.Context
	cancel context.CancelFunc
}

// PoolOption configures a Pool.
type PoolOption func(*Pool)

// WithWorkers sets the number of worker goroutines.
func WithWorkers(n int) PoolOption {
	return func(p *Pool) {
		if n >= 1 {
			p.size = n
		}
	}
}

// WithBufferSize sets how many items and results may wait in the queues.
func WithBufferSize(size int) PoolOption {
	return func(p *Pool) {
		if size >= 1 {
			p.backlog = size
		}
	}
}

// NewPool creates a pool that plays items with play.
// Default: 1 worker, buffer size of 10.
func NewPool(play ProcessFunc, opts ...PoolOption) *Pool {
	p := &Pool{size: 1, backlog: 10, play: play}
	for _, opt := range opts {
		opt(p)
	}
	p.queue = make(chan WorkItem, p.backlog)
	p.results = make(chan ProcessResult, p.backlog)
	return p
}

// Start launches the workers. Cancelling ctx has the same effect as Stop.
// Start must be called once, before Submit.
func (p *Pool) Start(ctx context.Context) {
	p.ctx, p.cancel = context.WithCancel(ctx)
	p.running.Add(p.size)
	for i := 0; i < p.size; i++ {
		go p.work()
	}
}

func (p *Pool) work() {
	defer p.running.Done()
	for item := range p.queue {
		if p.ctx.Err() != nil {
			continue
		}
		p.results <- p.play(p.ctx, item)
	}
}

// Submit queues an item, blocking while the queue is full. It fails once
// ctx is done or the pool has been stopped.
func (p *Pool) Submit(ctx context.Context, item WorkItem) error {
	if p.ctx == nil {
		return ErrNotStarted
	}
	if err := p.ctx.Err(); err != nil {
		return err
	}
	select {
	case p.queue <- item:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	case <-p.ctx.Done():
		return p.ctx.Err()
	}
}

// Stop cancels the context handed to running games and discards queued
// items. Submit must still be followed by Close.
func (p *Pool) Stop() {
	if p.cancel != nil {
		p.cancel()
	}
}

// Stopped reports whether Stop was called or the Start context ended.
func (p *Pool) Stopped() bool {
	return p.ctx != nil && p.ctx.Err() != nil
}

// Close ends submission and waits for the workers, then closes Results.
func (p *Pool) Close() {
	close(p.queue)
	p.running.Wait()
	close(p.results)
	p.Stop()
}

// Results returns the channel of played items, closed by Close.
func (p *Pool) Results() <-chan ProcessResult {
	return p.results
}

// NumWorkers returns the number of workers in the pool.
func (p *Pool) NumWorkers() int {
	return p.size
}
