package types

import "fmt"

// Move is the discrete command applied to the human paddle for one tick.
type Move int32

const (
	MoveStationary Move = iota
	MoveUp
	MoveDown
)

func (m Move) String() string {
	switch m {
	case MoveStationary:
		return "STATIONARY"
	case MoveUp:
		return "UP"
	case MoveDown:
		return "DOWN"
	default:
		return "UNKNOWN"
	}
}

// ParseMove parses a move name as returned by String.
func ParseMove(s string) (Move, error) {
	switch s {
	case "STATIONARY":
		return MoveStationary, nil
	case "UP":
		return MoveUp, nil
	case "DOWN":
		return MoveDown, nil
	default:
		return MoveStationary, fmt.Errorf("unknown move: %s", s)
	}
}

// Valid reports whether m is one of the defined moves.
func (m Move) Valid() bool {
	return m >= MoveStationary && m <= MoveDown
}

// MoveFromDirections turns the state of the up and down controls into a move.
// Holding both or neither keeps the paddle still.
func MoveFromDirections(up, down bool) Move {
	switch {
	case up && !down:
		return MoveUp
	case down && !up:
		return MoveDown
	default:
		return MoveStationary
	}
}
