package log

import (
	"context"
	"io"
	"sync/atomic"

	"github.com/cbodonnell/pong/pkg/queue"
)

// AsyncWriter hands log entries to a background goroutine so that callers
// such as the game loop never wait on the real output. When the queue is
// full the entry is dropped.
type AsyncWriter struct {
	out     io.Writer
	queue   queue.Queue
	dropped atomic.Uint64
}

var _ io.Writer = &AsyncWriter{}

// NewAsyncWriter creates a writer that buffers entries in q and writes them
// to out once Start is running.
func NewAsyncWriter(out io.Writer, q queue.Queue) *AsyncWriter {
	return &AsyncWriter{
		out:   out,
		queue: q,
	}
}

// Write queues a copy of p. It always reports success: a dropped entry is
// counted, not returned as an error, so the standard logger keeps going.
func (w *AsyncWriter) Write(p []byte) (int, error) {
	entry := make([]byte, len(p))
	copy(entry, p)
	if err := w.queue.Enqueue(entry); err != nil {
		w.dropped.Add(1)
	}
	return len(p), nil
}

// Dropped returns how many entries were discarded because the queue was full.
func (w *AsyncWriter) Dropped() uint64 {
	return w.dropped.Load()
}

// Start drains queued entries to the output until ctx is done, then
// flushes whatever is still queued.
func (w *AsyncWriter) Start(ctx context.Context) {
	for {
		item, err := w.queue.Dequeue(ctx)
		if err != nil {
			w.Flush()
			return
		}
		w.writeEntry(item)
	}
}

// Flush writes every queued entry to the output.
func (w *AsyncWriter) Flush() {
	items, err := w.queue.ReadAllMessages()
	if err != nil {
		return
	}
	for _, item := range items {
		w.writeEntry(item)
	}
}

func (w *AsyncWriter) writeEntry(item interface{}) {
	entry, ok := item.([]byte)
	if !ok {
		return
	}
	// the output has nowhere to report its own failures
	_, _ = w.out.Write(entry)
}
