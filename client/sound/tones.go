package sound

import (
	"math"
	"time"

	"github.com/gopxl/beep"
)

// tone is a sine wave of fixed length with a linear release so it ends
// without a click.
type tone struct {
	freq     float64
	rate     beep.SampleRate
	total    int
	release  int
	position int
	volume   float64
}

func newTone(freq float64, duration time.Duration, volume float64, rate beep.SampleRate) *tone {
	total := rate.N(duration)
	return &tone{
		freq:    freq,
		rate:    rate,
		total:   total,
		release: total / 4,
		volume:  volume,
	}
}

func (t *tone) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if t.position >= t.total {
			return i, i > 0
		}
		vol := t.volume
		if remaining := t.total - t.position; remaining < t.release {
			vol *= float64(remaining) / float64(t.release)
		}
		s := float64(t.position) / float64(t.rate)
		val := vol * math.Sin(2*math.Pi*t.freq*s)
		samples[i][0] = val
		samples[i][1] = val
		t.position++
	}
	return len(samples), true
}

func (t *tone) Err() error { return nil }

// streamerFor returns the sound for a tick's events, or nil if it is silent.
// A point outranks a paddle hit, which outranks a wall bounce.
func streamerFor(events eventSet, rate beep.SampleRate) beep.Streamer {
	switch {
	case events.scored:
		return beep.Seq(
			newTone(523.25, 90*time.Millisecond, 0.3, rate),
			newTone(392.00, 180*time.Millisecond, 0.3, rate),
		)
	case events.paddleHit:
		return newTone(440, 60*time.Millisecond, 0.3, rate)
	case events.wallBounce:
		return newTone(220, 40*time.Millisecond, 0.2, rate)
	}
	return nil
}
