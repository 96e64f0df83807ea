package game

import (
	"github.com/cbodonnell/pong/pkg/game/constants"
	"github.com/cbodonnell/pong/pkg/game/types"
	"github.com/cbodonnell/pong/pkg/kinematic"
)

// PredictInterceptY returns the y the AI paddle should aim for. While the
// ball travels left its heading is projected in a straight line to the left
// paddle plane, ignoring wall bounces. Otherwise, including when the ball has
// no horizontal speed, the ball's current y is returned.
func PredictInterceptY(ball types.Ball) float64 {
	if ball.XSpeed >= 0 {
		return ball.Y
	}
	turns, ok := kinematic.TimeToReach(constants.LeftPaddlePlaneX-ball.X, ball.XSpeed)
	if !ok {
		return ball.Y
	}
	return ball.Y + kinematic.Displacement(ball.YSpeed, turns, 0)
}

// MakeAIMove returns the paddle moved at most one step toward the
// predicted intercept.
func MakeAIMove(ball types.Ball, paddle types.Paddle) types.Paddle {
	idealY := PredictInterceptY(ball)
	if idealY > paddle.Y {
		paddle.MoveDown()
	}
	if idealY < paddle.Y {
		paddle.MoveUp()
	}
	return paddle
}
