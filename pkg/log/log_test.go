package log

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/cbodonnell/pong/pkg/queue"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		input   string
		want    LogLevel
		wantErr bool
	}{
		{input: "error", want: LogLevelError},
		{input: "warn", want: LogLevelWarn},
		{input: "info", want: LogLevelInfo},
		{input: "debug", want: LogLevelDebug},
		{input: "trace", want: LogLevelTrace},
		{input: "loud", want: LogLevelError, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseLogLevel(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLogger_Level(t *testing.T) {
	buf := &bytes.Buffer{}
	logger := New(buf, "", 0, LogLevelInfo)

	logger.Debug("hidden %d", 1)
	logger.Info("shown %d", 2)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1)

	entry := map[string]string{}
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	assert.Equal(t, "info", entry["level"])
	assert.Equal(t, "shown 2", entry["msg"])
}

// lockedBuffer is a bytes.Buffer safe for the drain goroutine and the test.
type lockedBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *lockedBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *lockedBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func TestAsyncWriter_DrainsInBackground(t *testing.T) {
	out := &lockedBuffer{}
	w := NewAsyncWriter(out, queue.NewInMemoryQueue(16))
	logger := New(w, "", 0, LogLevelTrace)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		w.Start(ctx)
		close(done)
	}()

	logger.Info("first")
	logger.Warn("second")

	assert.Eventually(t, func() bool {
		return strings.Count(out.String(), "\n") == 2
	}, time.Second, 5*time.Millisecond)

	cancel()
	<-done
	assert.Contains(t, out.String(), `"msg":"first"`)
	assert.Contains(t, out.String(), `"msg":"second"`)
	assert.Equal(t, uint64(0), w.Dropped())
}

func TestAsyncWriter_DropsWhenFull(t *testing.T) {
	out := &lockedBuffer{}
	w := NewAsyncWriter(out, queue.NewInMemoryQueue(2))

	// nothing drains the queue yet, so the third write must not block
	for i := 0; i < 3; i++ {
		n, err := w.Write([]byte("entry\n"))
		require.NoError(t, err)
		assert.Equal(t, 6, n)
	}
	assert.Equal(t, uint64(1), w.Dropped())
	assert.Empty(t, out.String())

	w.Flush()
	assert.Equal(t, "entry\nentry\n", out.String())
}

func TestAsyncWriter_CopiesInput(t *testing.T) {
	out := &lockedBuffer{}
	w := NewAsyncWriter(out, queue.NewInMemoryQueue(2))

	p := []byte("abc\n")
	_, err := w.Write(p)
	require.NoError(t, err)
	p[0] = 'x'

	w.Flush()
	assert.Equal(t, "abc\n", out.String())
}
