package game

import (
	"math/rand/v2"

	"github.com/cbodonnell/pong/pkg/game/constants"
	"github.com/cbodonnell/pong/pkg/game/types"
)

// Surface is the drawing area a renderer provides for a session.
type Surface interface {
	// Prepare is called once per session with the logical court size.
	Prepare(width, height int)
}

// Engine advances game states. It holds no per-session state: everything a
// tick needs is in the GameState passed to it.
type Engine struct {
	rng     types.RandomSource
	surface Surface
}

// NewEngineOptions contains options for creating a new Engine.
type NewEngineOptions struct {
	// Rand serves new balls. Defaults to a PCG source seeded with Seed.
	Rand types.RandomSource
	// Seed is used when Rand is nil.
	Seed uint64
	// Surface, if set, is prepared on every CreateSession.
	Surface Surface
}

func NewEngine(opts NewEngineOptions) *Engine {
	rng := opts.Rand
	if rng == nil {
		rng = rand.New(rand.NewPCG(opts.Seed, opts.Seed^0x9e3779b97f4a7c15))
	}
	return &Engine{
		rng:     rng,
		surface: opts.Surface,
	}
}

// CreateSession returns the initial state for a new session named name.
func (e *Engine) CreateSession(name string) types.GameState {
	if e.surface != nil {
		e.surface.Prepare(constants.CourtWidth, constants.CourtHeight)
	}
	return types.NewGameState(name, e.rng)
}

// Step returns the state one tick after state, with move applied to the
// human paddle. state is not modified.
func (e *Engine) Step(state types.GameState, move types.Move) types.GameState {
	next, _ := e.StepEvents(state, move)
	return next
}

// StepEvents is Step that also reports what happened during the tick.
func (e *Engine) StepEvents(state types.GameState, move types.Move) (types.GameState, types.Events) {
	state.Move = move
	return updatePosition(state, e.rng)
}

// UpdatePosition advances state by one tick using the move stored in it.
func UpdatePosition(state types.GameState, rng types.RandomSource) types.GameState {
	next, _ := updatePosition(state, rng)
	return next
}

// updatePosition works on its own copy of the state; the caller's value is
// never touched.
func updatePosition(state types.GameState, rng types.RandomSource) (types.GameState, types.Events) {
	var events types.Events

	if state.Ball.IsStalled() {
		state.Ball.XSpeed = constants.BallStartingXSpeed
		events |= types.EventStallRecovered
	}

	state.Right.Apply(state.Move)

	// the AI sees the ball before this tick's bounces are resolved
	state.Left = MakeAIMove(state.Ball, state.Left)

	if state.Ball.IsAtTopOrBottom() {
		state.Ball.YSpeed = -state.Ball.YSpeed
		events |= types.EventWallBounce
	}

	if state.Ball.DoesHitPaddle(state.Left, state.Right) {
		state.Ball.XSpeed = -state.Ball.XSpeed * constants.BallSpeedUp
		state.Ball.YSpeed += reflectionFactor(state.Ball, state.Left, state.Right)
		events |= types.EventPaddleHit
	}

	// both goal lines are checked in turn; a served ball is inside both,
	// so at most one of them fires per tick
	if state.Ball.ScoresOnRight() {
		state.Ball = types.NewBall(rng)
		state.LeftScore++
		events |= types.EventLeftScored
	}
	if state.Ball.ScoresOnLeft() {
		state.Ball = types.NewBall(rng)
		state.RightScore++
		events |= types.EventRightScored
	}

	state.Ball.Update()

	return state, events
}

// reflectionFactor is the yspeed change from a paddle hit. The paddle is
// picked by the half of the court the ball is in, not by which paddle's
// collision check fired.
func reflectionFactor(ball types.Ball, left, right types.Paddle) float64 {
	paddle := left
	if ball.X > constants.CourtCenterX {
		paddle = right
	}
	return (ball.Y - paddle.Y) / constants.ReflectionDivisor
}
