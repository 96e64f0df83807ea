package state

import (
	"context"
	"sync"

	gametypes "github.com/cbodonnell/pong/pkg/game/types"
)

type InMemoryStateManager struct {
	lock      sync.RWMutex
	gameState gametypes.GameState
}

var _ StateManager = &InMemoryStateManager{}

func NewInMemoryStateManager(initial gametypes.GameState) *InMemoryStateManager {
	return &InMemoryStateManager{
		gameState: initial,
	}
}

// Get returns the stored snapshot. GameState holds only values, so the
// returned copy shares nothing with the manager.
func (m *InMemoryStateManager) Get(ctx context.Context) (gametypes.GameState, error) {
	m.lock.RLock()
	defer m.lock.RUnlock()
	return m.gameState, nil
}

func (m *InMemoryStateManager) Set(ctx context.Context, gameState gametypes.GameState) error {
	m.lock.Lock()
	defer m.lock.Unlock()
	m.gameState = gameState
	return nil
}
