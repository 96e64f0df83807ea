package state

import (
	"context"
	"testing"

	gametypes "github.com/cbodonnell/pong/pkg/game/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixedRand float64

func (r fixedRand) Float64() float64 { return float64(r) }

func TestInMemoryStateManager_GetReturnsCopy(t *testing.T) {
	ctx := context.Background()
	m := NewInMemoryStateManager(gametypes.NewGameState("copy", fixedRand(0.5)))

	got, err := m.Get(ctx)
	require.NoError(t, err)
	got.LeftScore = 10
	got.Ball.X = 0

	again, err := m.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, again.LeftScore)
	assert.Equal(t, 395.0, again.Ball.X)
}

func TestInMemoryStateManager_Set(t *testing.T) {
	ctx := context.Background()
	m := NewInMemoryStateManager(gametypes.GameState{})

	want := gametypes.NewGameState("set", fixedRand(0.25))
	want.RightScore = 3
	require.NoError(t, m.Set(ctx, want))

	got, err := m.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}
