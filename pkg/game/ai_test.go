package game

import (
	"math"
	"testing"

	"github.com/cbodonnell/pong/pkg/game/types"
	"github.com/stretchr/testify/assert"
)

func TestPredictInterceptY(t *testing.T) {
	tests := []struct {
		name string
		ball types.Ball
		want float64
	}{
		{
			name: "moving away tracks current y",
			ball: types.Ball{X: 300, Y: 120, XSpeed: 1, YSpeed: 0.5},
			want: 120,
		},
		{
			name: "approaching projects to the paddle plane",
			ball: types.Ball{X: 250, Y: 200, XSpeed: -2, YSpeed: 0.5},
			want: 250, // 100 ticks to x=50
		},
		{
			name: "projection ignores walls",
			ball: types.Ball{X: 450, Y: 500, XSpeed: -1, YSpeed: 1},
			want: 900,
		},
		{
			name: "no horizontal speed tracks current y",
			ball: types.Ball{X: 300, Y: 410, XSpeed: 0, YSpeed: 0.3},
			want: 410,
		},
		{
			name: "behind the plane projects backwards",
			ball: types.Ball{X: 40, Y: 300, XSpeed: -1, YSpeed: 2},
			want: 280,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := PredictInterceptY(tt.ball)
			assert.False(t, math.IsNaN(got) || math.IsInf(got, 0))
			assert.InDelta(t, tt.want, got, 1e-9)
		})
	}
}

func TestMakeAIMove(t *testing.T) {
	tests := []struct {
		name   string
		ball   types.Ball
		paddle types.Paddle
		want   float64
	}{
		{
			name:   "target below",
			ball:   types.Ball{X: 400, Y: 400, XSpeed: 1},
			paddle: types.Paddle{X: 25, Y: 300},
			want:   301,
		},
		{
			name:   "target above",
			ball:   types.Ball{X: 400, Y: 100, XSpeed: 1},
			paddle: types.Paddle{X: 25, Y: 300},
			want:   299,
		},
		{
			name:   "on target",
			ball:   types.Ball{X: 400, Y: 300, XSpeed: 1},
			paddle: types.Paddle{X: 25, Y: 300},
			want:   300,
		},
		{
			name:   "clamped at the bottom",
			ball:   types.Ball{X: 400, Y: 590, XSpeed: 1},
			paddle: types.Paddle{X: 25, Y: 550},
			want:   550,
		},
		{
			name:   "stationary ball does not divide by zero",
			ball:   types.Ball{X: 400, Y: 200, XSpeed: 0, YSpeed: 1},
			paddle: types.Paddle{X: 25, Y: 300},
			want:   299,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before := tt.paddle
			got := MakeAIMove(tt.ball, tt.paddle)
			assert.Equal(t, tt.want, got.Y)
			assert.Equal(t, before.X, got.X)
			assert.Equal(t, before, tt.paddle)
		})
	}
}

func TestMakeAIMove_Converges(t *testing.T) {
	// straight approach with no wall contact before the paddle plane
	ball := types.Ball{X: 650, Y: 300, XSpeed: -1, YSpeed: 0.25}
	paddle := types.Paddle{X: 25, Y: 300}
	target := PredictInterceptY(ball)
	assert.Equal(t, 450.0, target)

	for i := 0; i < 600; i++ {
		before := paddle.Y
		paddle = MakeAIMove(ball, paddle)
		assert.LessOrEqual(t, math.Abs(paddle.Y-before), 1.0)
		assert.GreaterOrEqual(t, paddle.Y, before, "paddle moved away from the target")
		assert.LessOrEqual(t, paddle.Y, target+1, "paddle overshot by more than one unit")

		ball.Update()
		assert.Equal(t, target, PredictInterceptY(ball))
	}
	assert.Equal(t, target, paddle.Y)
}
