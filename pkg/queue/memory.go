// queue package

package queue

import (
	"context"
	"sync"
)

const (
	// DefaultQueueSize is the capacity used when a non-positive size is requested
	DefaultQueueSize = 1024
)

// InMemoryQueue implements a bounded in-memory queue.
type InMemoryQueue struct {
	ch   chan interface{}
	lock sync.RWMutex
}

var _ Queue = &InMemoryQueue{}

// NewInMemoryQueue creates a new queue holding at most size items.
func NewInMemoryQueue(size int) *InMemoryQueue {
	if size <= 0 {
		size = DefaultQueueSize
	}
	return &InMemoryQueue{
		ch: make(chan interface{}, size),
	}
}

// Enqueue adds an item to the end of the queue, or returns ErrQueueFull
// without waiting if there is no room.
func (q *InMemoryQueue) Enqueue(item interface{}) error {
	q.lock.RLock()
	defer q.lock.RUnlock()
	select {
	case q.ch <- item:
		return nil
	default:
		return ErrQueueFull
	}
}

// Dequeue removes and returns the item from the front of the queue,
// waiting until one is available or ctx is done.
func (q *InMemoryQueue) Dequeue(ctx context.Context) (interface{}, error) {
	select {
	case item := <-q.ch:
		return item, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// Size returns the current size of the queue.
func (q *InMemoryQueue) Size() int {
	return len(q.ch)
}

// ReadAllMessages reads all pending messages in the queue
func (q *InMemoryQueue) ReadAllMessages() ([]interface{}, error) {
	q.lock.Lock()
	defer q.lock.Unlock()

	var messages []interface{}
	for {
		select {
		case item := <-q.ch:
			messages = append(messages, item)
		default:
			return messages, nil
		}
	}
}

// ClearQueue clears all messages from the queue.
func (q *InMemoryQueue) ClearQueue() {
	q.lock.Lock()
	defer q.lock.Unlock()

	for {
		select {
		case <-q.ch:
		default:
			return
		}
	}
}
