package repository

import (
	"context"
	"errors"
	"sync"
)

// ErrClosed is returned for writes submitted after the collection was closed.
var ErrClosed = errors.New("collection closed")

// writeQueue runs submitted jobs one at a time, in submission order.
// A single worker goroutine drains a buffered channel, so two writes issued
// back to back against the same document can never be reordered or interleaved.
type writeQueue struct {
	mu     sync.RWMutex
	closed bool
	jobs   chan writeJob
	done   chan struct{}
	exited chan struct{}
}

type writeJob struct {
	ctx    context.Context
	fn     func(ctx context.Context) error
	result chan error
}

func newWriteQueue() *writeQueue {
	q := &writeQueue{
		jobs:   make(chan writeJob, 64),
		done:   make(chan struct{}),
		exited: make(chan struct{}),
	}
	go q.run()
	return q
}

func (q *writeQueue) run() {
	defer close(q.exited)
	for {
		select {
		case j := <-q.jobs:
			j.result <- j.execute()
		case <-q.done:
			for {
				select {
				case j := <-q.jobs:
					j.result <- ErrClosed
				default:
					return
				}
			}
		}
	}
}

func (j writeJob) execute() error {
	if err := j.ctx.Err(); err != nil {
		return err
	}
	return j.fn(j.ctx)
}

// submit enqueues fn and returns a channel that receives its result.
// Jobs submitted by one goroutine run in the order submit was called.
func (q *writeQueue) submit(ctx context.Context, fn func(ctx context.Context) error) <-chan error {
	result := make(chan error, 1)

	q.mu.RLock()
	defer q.mu.RUnlock()
	if q.closed {
		result <- ErrClosed
		return result
	}

	select {
	case q.jobs <- writeJob{ctx: ctx, fn: fn, result: result}:
	case <-ctx.Done():
		result <- ctx.Err()
	}
	return result
}

// do submits fn and waits for it to finish.
func (q *writeQueue) do(ctx context.Context, fn func(ctx context.Context) error) error {
	result := q.submit(ctx, fn)
	select {
	case err := <-result:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}

// close stops the worker. Jobs still queued fail with ErrClosed.
func (q *writeQueue) close() {
	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		return
	}
	q.closed = true
	close(q.done)
	q.mu.Unlock()
	<-q.exited
}
