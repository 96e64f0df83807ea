package queue

import (
	"context"
	"errors"
)

// ErrQueueFull is returned by Enqueue when the queue has no free slot.
var ErrQueueFull = errors.New("queue is full")

// Queue represents a bounded queue. Enqueue never blocks.
type Queue interface {
	Enqueue(item interface{}) error
	Dequeue(ctx context.Context) (interface{}, error)
	Size() int
	ReadAllMessages() ([]interface{}, error)
	ClearQueue()
}
