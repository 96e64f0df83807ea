package bridge

import (
	"encoding/json"
	"fmt"

	"github.com/cbodonnell/pong/pkg/game"
	"github.com/cbodonnell/pong/pkg/game/types"
)

// Bridge exposes session creation and stepping to a host that exchanges
// game states as JSON.
type Bridge struct {
	engine *game.Engine
}

func New(engine *game.Engine) *Bridge {
	return &Bridge{
		engine: engine,
	}
}

// CreateInitialGameState returns the encoded initial state of a session named name.
func (b *Bridge) CreateInitialGameState(name string) ([]byte, error) {
	out, err := json.Marshal(b.engine.CreateSession(name))
	if err != nil {
		return nil, fmt.Errorf("failed to marshal game state: %v", err)
	}
	return out, nil
}

// UpdatePosition decodes a game state, advances it one tick and returns the
// encoded result. An empty move name keeps the move stored in the state.
func (b *Bridge) UpdatePosition(stateJSON []byte, moveName string) ([]byte, error) {
	var state types.GameState
	if err := json.Unmarshal(stateJSON, &state); err != nil {
		return nil, fmt.Errorf("failed to unmarshal game state: %v", err)
	}

	move := state.Move
	if moveName != "" {
		parsed, err := types.ParseMove(moveName)
		if err != nil {
			return nil, err
		}
		move = parsed
	}
	if !move.Valid() {
		return nil, fmt.Errorf("unknown move: %d", move)
	}

	out, err := json.Marshal(b.engine.Step(state, move))
	if err != nil {
		return nil, fmt.Errorf("failed to marshal game state: %v", err)
	}
	return out, nil
}
