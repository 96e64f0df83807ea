package types

// GameState is a complete snapshot of a session. It holds only values, so
// assigning or passing it copies everything and snapshots never alias.
type GameState struct {
	// Name identifies the session
	Name string `json:"name"`
	// Ball is the single ball in play
	Ball Ball `json:"ball"`
	// Left is the AI controlled paddle
	Left Paddle `json:"left"`
	// Right is the human controlled paddle
	Right Paddle `json:"right"`
	// Move is the human command applied on the next tick
	Move Move `json:"move"`
	// LeftScore counts balls that went past the right goal line
	LeftScore int `json:"leftScore"`
	// RightScore counts balls that went past the left goal line
	RightScore int `json:"rightScore"`
}

// NewGameState returns the initial state of a session: ball served from the
// center, paddles centered, scores zero.
func NewGameState(name string, rng RandomSource) GameState {
	return GameState{
		Name:  name,
		Ball:  NewBall(rng),
		Left:  NewLeftPaddle(),
		Right: NewRightPaddle(),
		Move:  MoveStationary,
	}
}
