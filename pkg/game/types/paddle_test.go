package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPaddle_MoveClamp(t *testing.T) {
	p := NewRightPaddle()

	for i := 0; i < 1000; i++ {
		p.MoveUp()
		assert.GreaterOrEqual(t, p.Y, 50.0)
	}
	assert.Equal(t, 50.0, p.Y)

	for i := 0; i < 1000; i++ {
		p.MoveDown()
		assert.LessOrEqual(t, p.Y, 550.0)
	}
	assert.Equal(t, 550.0, p.Y)
}

func TestPaddle_MoveSequence(t *testing.T) {
	p := NewLeftPaddle()
	// a fixed pseudo random walk that repeatedly runs into both bounds
	seq := uint32(7)
	for i := 0; i < 20000; i++ {
		seq = seq*1664525 + 1013904223
		if seq>>31 == 0 {
			p.MoveUp()
		} else {
			p.MoveDown()
		}
		if p.Y < 50 || p.Y > 550 {
			t.Fatalf("paddle left its range at step %d: y=%v", i, p.Y)
		}
	}
}

func TestPaddle_Apply(t *testing.T) {
	tests := []struct {
		name string
		move Move
		want float64
	}{
		{name: "stationary", move: MoveStationary, want: 300},
		{name: "up", move: MoveUp, want: 299},
		{name: "down", move: MoveDown, want: 301},
		{name: "unknown", move: Move(9), want: 300},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewRightPaddle()
			p.Apply(tt.move)
			assert.Equal(t, tt.want, p.Y)
			assert.Equal(t, 750.0, p.X)
		})
	}
}

func TestPaddle_IsAtPaddleLevel(t *testing.T) {
	p := Paddle{X: 25, Y: 300}

	tests := []struct {
		targetY float64
		want    bool
	}{
		{targetY: 300, want: true},
		{targetY: 354.9, want: true},
		{targetY: 355, want: false},
		{targetY: 360, want: false},
		{targetY: 245.1, want: true},
		{targetY: 245, want: false},
		{targetY: 240, want: false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, p.IsAtPaddleLevel(tt.targetY), "targetY=%v", tt.targetY)
	}
}
