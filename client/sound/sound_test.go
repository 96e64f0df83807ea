package sound

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/cbodonnell/pong/pkg/game/types"
	"github.com/gopxl/beep"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func drain(s beep.Streamer) int {
	buf := make([][2]float64, 512)
	total := 0
	for {
		n, ok := s.Stream(buf)
		total += n
		if !ok {
			return total
		}
	}
}

func TestTone(t *testing.T) {
	rate := beep.SampleRate(1000)
	tn := newTone(100, 100*time.Millisecond, 0.5, rate)

	buf := make([][2]float64, 200)
	n, ok := tn.Stream(buf)
	require.True(t, ok)
	assert.Equal(t, 100, n)
	for i := 0; i < n; i++ {
		assert.LessOrEqual(t, buf[i][0], 0.5)
		assert.GreaterOrEqual(t, buf[i][0], -0.5)
		assert.Equal(t, buf[i][0], buf[i][1])
	}

	n, ok = tn.Stream(buf)
	assert.Equal(t, 0, n)
	assert.False(t, ok)
	assert.NoError(t, tn.Err())
}

func TestStreamerFor(t *testing.T) {
	rate := beep.SampleRate(1000)
	tests := []struct {
		name    string
		events  types.Events
		samples int
	}{
		{name: "silent", events: types.EventStallRecovered, samples: 0},
		{name: "wall", events: types.EventWallBounce, samples: 40},
		{name: "paddle outranks wall", events: types.EventPaddleHit | types.EventWallBounce, samples: 60},
		{name: "point", events: types.EventLeftScored, samples: 270},
		{name: "point outranks paddle", events: types.EventRightScored | types.EventPaddleHit, samples: 270},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := streamerFor(newEventSet(tt.events), rate)
			if tt.samples == 0 {
				assert.Nil(t, s)
				return
			}
			require.NotNil(t, s)
			assert.Equal(t, tt.samples, drain(s))
		})
	}
}

func TestPlayer_NotifyNeverBlocks(t *testing.T) {
	p := NewPlayer(NewPlayerOptions{Play: func(beep.Streamer) {}})

	done := make(chan struct{})
	go func() {
		for i := 0; i < pendingSize*4; i++ {
			p.Notify(types.EventPaddleHit)
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Notify blocked")
	}
	assert.Len(t, p.pending, pendingSize)
}

func TestPlayer_Start(t *testing.T) {
	var mu sync.Mutex
	played := 0
	p := NewPlayer(NewPlayerOptions{Play: func(beep.Streamer) {
		mu.Lock()
		played++
		mu.Unlock()
	}})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go p.Start(ctx)

	p.Notify(0)
	p.Notify(types.EventStallRecovered)
	p.Notify(types.EventWallBounce)
	p.Notify(types.EventLeftScored)

	assert.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return played == 2
	}, time.Second, time.Millisecond)
}
