package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMove_String(t *testing.T) {
	for _, m := range []Move{MoveStationary, MoveUp, MoveDown} {
		parsed, err := ParseMove(m.String())
		require.NoError(t, err)
		assert.Equal(t, m, parsed)
		assert.True(t, m.Valid())
	}

	_, err := ParseMove("LEFT")
	assert.Error(t, err)
	assert.False(t, Move(3).Valid())
	assert.Equal(t, "UNKNOWN", Move(-1).String())
}

func TestGameState_FieldNames(t *testing.T) {
	state := NewGameState("names", fixedRand(0))

	b, err := json.Marshal(state)
	require.NoError(t, err)

	fields := map[string]json.RawMessage{}
	require.NoError(t, json.Unmarshal(b, &fields))
	for _, name := range []string{"name", "ball", "left", "right", "move", "leftScore", "rightScore"} {
		assert.Contains(t, fields, name)
	}
	assert.JSONEq(t, `{"xpos":395,"ypos":295,"xspeed":1,"yspeed":0}`, string(fields["ball"]))
	assert.JSONEq(t, `{"xpos":25,"ypos":300}`, string(fields["left"]))
	assert.JSONEq(t, `{"xpos":750,"ypos":300}`, string(fields["right"]))
	assert.Equal(t, "0", string(fields["move"]))
}

func TestEvents_String(t *testing.T) {
	assert.Equal(t, "none", Events(0).String())
	assert.Equal(t, "wall-bounce|paddle-hit", (EventPaddleHit | EventWallBounce).String())
	assert.True(t, (EventLeftScored | EventWallBounce).Scored())
	assert.False(t, EventPaddleHit.Scored())
}

func TestMoveFromDirections(t *testing.T) {
	assert.Equal(t, MoveUp, MoveFromDirections(true, false))
	assert.Equal(t, MoveDown, MoveFromDirections(false, true))
	assert.Equal(t, MoveStationary, MoveFromDirections(true, true))
	assert.Equal(t, MoveStationary, MoveFromDirections(false, false))
}
