package sound

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/cbodonnell/pong/pkg/game/types"
	"github.com/cbodonnell/pong/pkg/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const (
	sampleRate = beep.SampleRate(44100)
	// pendingSize bounds the events waiting to be played
	pendingSize = 16
)

type eventSet struct {
	scored     bool
	paddleHit  bool
	wallBounce bool
}

func newEventSet(events types.Events) eventSet {
	return eventSet{
		scored:     events.Scored(),
		paddleHit:  events.Has(types.EventPaddleHit),
		wallBounce: events.Has(types.EventWallBounce),
	}
}

// Player turns game events into short tones. Notify never blocks the game
// loop; events that arrive while the backlog is full are dropped.
type Player struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	play        func(beep.Streamer)
	pending     chan types.Events
	initialized bool
}

type NewPlayerOptions struct {
	// Play, if set, receives every streamer instead of the speaker. Used in tests.
	Play func(beep.Streamer)
}

func NewPlayer(opts NewPlayerOptions) *Player {
	p := &Player{
		mixer:   &beep.Mixer{},
		play:    opts.Play,
		pending: make(chan types.Events, pendingSize),
	}
	if p.play == nil {
		p.play = p.playOnSpeaker
	}
	return p
}

// Initialize opens the audio device. It is not needed when Play was given.
func (p *Player) Initialize() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(50*time.Millisecond)); err != nil {
		return fmt.Errorf("failed to initialize speaker: %v", err)
	}
	speaker.Play(p.mixer)
	p.initialized = true
	return nil
}

// Cleanup silences anything still playing and closes the audio device.
func (p *Player) Cleanup() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	speaker.Clear()
	speaker.Close()
	p.initialized = false
}

// Notify queues the sound for events, if any.
func (p *Player) Notify(events types.Events) {
	if events == 0 {
		return
	}
	select {
	case p.pending <- events:
	default:
		log.Trace("Dropping sound for %s", events)
	}
}

// Start plays queued events until ctx is done.
func (p *Player) Start(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return nil
		case events := <-p.pending:
			if s := streamerFor(newEventSet(events), sampleRate); s != nil {
				p.play(s)
			}
		}
	}
}

func (p *Player) playOnSpeaker(s beep.Streamer) {
	p.mu.Lock()
	initialized := p.initialized
	p.mu.Unlock()
	if !initialized {
		return
	}
	speaker.Lock()
	p.mixer.Add(s)
	speaker.Unlock()
}
