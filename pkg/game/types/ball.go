package types

import (
	"github.com/cbodonnell/pong/pkg/game/constants"
	"github.com/cbodonnell/pong/pkg/kinematic"
)

// RandomSource supplies the vertical speed of freshly served balls.
// *math/rand/v2.Rand satisfies it.
type RandomSource interface {
	// Float64 returns a value in [0, 1).
	Float64() float64
}

type Ball struct {
	X      float64 `json:"xpos"`
	Y      float64 `json:"ypos"`
	XSpeed float64 `json:"xspeed"`
	YSpeed float64 `json:"yspeed"`
}

// NewBall returns a ball at the center of the court moving right,
// with a random yspeed in [0, 1).
func NewBall(rng RandomSource) Ball {
	return Ball{
		X:      constants.BallStartingX,
		Y:      constants.BallStartingY,
		XSpeed: constants.BallStartingXSpeed,
		YSpeed: rng.Float64(),
	}
}

// IsAtTopOrBottom reports whether the ball touches the top or bottom wall.
func (b Ball) IsAtTopOrBottom() bool {
	return b.Y-constants.BallHalfSize < constants.CourtTop || b.Y+constants.BallHalfSize > constants.CourtBottom
}

// ScoresOnRight reports whether the ball is past the right goal line.
func (b Ball) ScoresOnRight() bool {
	return b.X > constants.RightGoalX
}

// ScoresOnLeft reports whether the ball is past the left goal line.
func (b Ball) ScoresOnLeft() bool {
	return b.X < constants.LeftGoalX
}

// DoesHitPaddle reports whether the ball's leading edge is past either
// paddle's plane while at that paddle's level. The checks are independent.
func (b Ball) DoesHitPaddle(left, right Paddle) bool {
	return b.hitsLeft(left) || b.hitsRight(right)
}

func (b Ball) hitsLeft(left Paddle) bool {
	return b.X-constants.BallHalfSize < constants.LeftPaddlePlaneX && left.IsAtPaddleLevel(b.Y)
}

func (b Ball) hitsRight(right Paddle) bool {
	return b.X+constants.BallHalfSize > constants.RightPaddlePlaneX && right.IsAtPaddleLevel(b.Y)
}

// IsStalled reports whether the ball has no velocity at all.
func (b Ball) IsStalled() bool {
	return b.XSpeed == 0 && b.YSpeed == 0
}

// Update advances the ball by one tick.
func (b *Ball) Update() {
	b.X += kinematic.Displacement(b.XSpeed, 1, 0)
	b.Y += kinematic.Displacement(b.YSpeed, 1, 0)
}
