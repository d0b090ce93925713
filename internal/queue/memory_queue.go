// Package queue provides a bounded in-memory queue for background
// delivery of outbound email.
package queue

import (
	"context"
	"sync"
)

// EmailJob is one outbound message awaiting delivery.
type EmailJob struct {
	To         string
	Subject    string
	Body       string
	RetryCount int
}

// Queue defines the interface for email queue operations.
type Queue interface {
	// Enqueue adds a job to the queue.
	Enqueue(job EmailJob) error
	// Dequeue removes and returns the next job from the queue.
	Dequeue(ctx context.Context) (EmailJob, error)
	// Close closes the queue.
	Close()
	// Len returns the current number of jobs in the queue.
	Len() int
	// Capacity returns the queue capacity.
	Capacity() int
}

// Ensure MemoryQueue implements Queue interface
var _ Queue = (*MemoryQueue)(nil)

// MemoryQueue is an in-memory email queue.
type MemoryQueue struct {
	jobs     chan EmailJob
	capacity int
	mu       sync.RWMutex
	closed   bool
}

// NewMemoryQueue creates a new in-memory queue with the given capacity.
func NewMemoryQueue(capacity int) *MemoryQueue {
	return &MemoryQueue{
		jobs:     make(chan EmailJob, capacity),
		capacity: capacity,
	}
}

// Enqueue adds a job to the queue. Returns error if queue is full or closed.
// Lock is held during the entire operation to prevent race condition with Close().
func (q *MemoryQueue) Enqueue(job EmailJob) error {
	q.mu.RLock()
	defer q.mu.RUnlock()

	if q.closed {
		return ErrQueueClosed
	}

	select {
	case q.jobs <- job:
		return nil
	default:
		return ErrQueueFull
	}
}

// Dequeue returns the next job from the queue, blocking until one is available.
// Returns error if context is cancelled or queue is closed.
func (q *MemoryQueue) Dequeue(ctx context.Context) (EmailJob, error) {
	select {
	case <-ctx.Done():
		return EmailJob{}, ctx.Err()
	case job, ok := <-q.jobs:
		if !ok {
			return EmailJob{}, ErrQueueClosed
		}
		return job, nil
	}
}

// Close closes the queue. No more jobs can be enqueued after closing.
func (q *MemoryQueue) Close() {
	q.mu.Lock()
	defer q.mu.Unlock()
	if !q.closed {
		q.closed = true
		close(q.jobs)
	}
}

// Len returns the current number of jobs in the queue.
func (q *MemoryQueue) Len() int {
	return len(q.jobs)
}

// Capacity returns the queue capacity.
func (q *MemoryQueue) Capacity() int {
	return q.capacity
}
