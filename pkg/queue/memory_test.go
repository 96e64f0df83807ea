package queue

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInMemoryQueue_EnqueueFull(t *testing.T) {
	q := NewInMemoryQueue(2)

	require.NoError(t, q.Enqueue(1))
	require.NoError(t, q.Enqueue(2))
	assert.ErrorIs(t, q.Enqueue(3), ErrQueueFull)
	assert.Equal(t, 2, q.Size())
}

func TestInMemoryQueue_ReadAllMessages(t *testing.T) {
	q := NewInMemoryQueue(8)
	for i := 0; i < 5; i++ {
		require.NoError(t, q.Enqueue(i))
	}

	messages, err := q.ReadAllMessages()
	require.NoError(t, err)
	assert.Equal(t, []interface{}{0, 1, 2, 3, 4}, messages)
	assert.Equal(t, 0, q.Size())

	messages, err = q.ReadAllMessages()
	require.NoError(t, err)
	assert.Empty(t, messages)
}

func TestInMemoryQueue_Dequeue(t *testing.T) {
	q := NewInMemoryQueue(1)
	require.NoError(t, q.Enqueue("a"))

	item, err := q.Dequeue(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "a", item)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	_, err = q.Dequeue(ctx)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestInMemoryQueue_ClearQueue(t *testing.T) {
	q := NewInMemoryQueue(4)
	require.NoError(t, q.Enqueue(1))
	require.NoError(t, q.Enqueue(2))

	q.ClearQueue()

	assert.Equal(t, 0, q.Size())
}

func TestInMemoryQueue_DefaultSize(t *testing.T) {
	q := NewInMemoryQueue(0)
	assert.Equal(t, DefaultQueueSize, cap(q.ch))
}

func TestInMemoryQueue_ConcurrentEnqueue(t *testing.T) {
	q := NewInMemoryQueue(100)

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 10; j++ {
				assert.NoError(t, q.Enqueue(j))
			}
		}()
	}
	wg.Wait()

	messages, err := q.ReadAllMessages()
	require.NoError(t, err)
	assert.Len(t, messages, 100)
}
