package types

import "github.com/cbodonnell/pong/pkg/game/constants"

// Paddle is a vertical bat with a fixed x. Y is only changed through
// MoveUp and MoveDown, which keep it within [PaddleMinY, PaddleMaxY].
type Paddle struct {
	X float64 `json:"xpos"`
	Y float64 `json:"ypos"`
}

// NewLeftPaddle returns the AI paddle at its starting position.
func NewLeftPaddle() Paddle {
	return Paddle{X: constants.LeftPaddleX, Y: constants.PaddleStartingY}
}

// NewRightPaddle returns the human paddle at its starting position.
func NewRightPaddle() Paddle {
	return Paddle{X: constants.RightPaddleX, Y: constants.PaddleStartingY}
}

// MoveUp moves the paddle one step up unless it is already at the top.
func (p *Paddle) MoveUp() {
	if p.Y > constants.PaddleMinY {
		p.Y -= constants.PaddleStep
	}
}

// MoveDown moves the paddle one step down unless it is already at the bottom.
func (p *Paddle) MoveDown() {
	if p.Y < constants.PaddleMaxY {
		p.Y += constants.PaddleStep
	}
}

// Apply moves the paddle according to a move command.
func (p *Paddle) Apply(move Move) {
	switch move {
	case MoveUp:
		p.MoveUp()
	case MoveDown:
		p.MoveDown()
	}
}

// IsAtPaddleLevel reports whether something centered at targetY with the
// ball's half size overlaps the paddle's vertical extent. Both bounds are exclusive.
func (p Paddle) IsAtPaddleLevel(targetY float64) bool {
	return targetY-constants.BallHalfSize < p.Y+constants.PaddleHalfHeight &&
		targetY+constants.BallHalfSize > p.Y-constants.PaddleHalfHeight
}
