// Package syncqueue provides queues for concurrent use.
package syncqueue

import (
	"context"
	"errors"
	"slices"
	"sync"
)

var ErrEmpty = errors.New("empty queue")

// SyncQueue is an unbounded FIFO queue safe for concurrent use.
type SyncQueue[T any] struct {
	cond *sync.Cond

	mu sync.RWMutex
	s  []T // new items are inserted at the front
}

// New returns a new [SyncQueue].
func New[T any]() *SyncQueue[T] {
	q := &SyncQueue[T]{s: make([]T, 0)}
	q.cond = sync.NewCond(&sync.Mutex{})
	return q
}

// Put adds an item to the queue and wakes one waiting consumer.
func (q *SyncQueue[T]) Put(v T) {
	q.mu.Lock()
	q.s = slices.Insert(q.s, 0, v)
	q.mu.Unlock()
	q.cond.Signal()
}

// GetNoWait returns the oldest item or [ErrEmpty].
func (q *SyncQueue[T]) GetNoWait() (T, error) {
	q.mu.Lock()
	defer q.mu.Unlock()
	var v T
	if len(q.s) == 0 {
		return v, ErrEmpty
	}
	v = q.s[len(q.s)-1]
	q.s = q.s[:len(q.s)-1]
	return v, nil
}

// Get returns the oldest item, waiting for one when the queue is empty.
// Waiting is aborted when the context is canceled.
//
// With multiple waiting goroutines it is undefined which one gets a new item.
func (q *SyncQueue[T]) Get(ctx context.Context) (T, error) {
	stop := context.AfterFunc(ctx, func() {
		q.cond.L.Lock()
		defer q.cond.L.Unlock()
		q.cond.Broadcast()
	})
	defer stop()

	q.cond.L.Lock()
	defer q.cond.L.Unlock()
	for {
		v, err := q.GetNoWait()
		if err == nil {
			return v, nil
		}
		q.cond.Wait()
		if ctx.Err() != nil {
			var zero T
			return zero, ctx.Err()
		}
	}
}

// Size returns the number of queued items.
func (q *SyncQueue[T]) Size() int {
	q.mu.RLock()
	defer q.mu.RUnlock()
	return len(q.s)
}

// IsEmpty reports whether the queue is empty.
func (q *SyncQueue[T]) IsEmpty() bool {
	return q.Size() == 0
}
