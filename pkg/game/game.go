package game

import (
	"context"
	"fmt"
	"time"

	"github.com/cbodonnell/pong/pkg/game/types"
	"github.com/cbodonnell/pong/pkg/log"
	"github.com/cbodonnell/pong/pkg/queue"
	"github.com/cbodonnell/pong/pkg/state"
)

// GameManager runs a session on its own ticker for renderers that do not
// own a frame callback.
type GameManager struct {
	engine           *Engine
	moveQueue        queue.Queue
	stateManager     state.StateManager
	eventHandler     func(types.GameState, types.Events)
	gameLoopInterval time.Duration
	moveHoldTicks    int

	gameState types.GameState
	move      types.Move
	moveHold  int
}

// NewGameManagerOptions contains options for creating a new GameManager.
type NewGameManagerOptions struct {
	Engine *Engine
	// MoveQueue receives types.Move values from the input side
	MoveQueue    queue.Queue
	StateManager state.StateManager
	// EventHandler, if set, is called after every tick that produced events
	EventHandler func(types.GameState, types.Events)
	// GameState is the state the session starts from
	GameState        types.GameState
	GameLoopInterval time.Duration
	// MoveHoldTicks is how many ticks a move stays active without new input
	MoveHoldTicks int
}

func NewGameManager(opts NewGameManagerOptions) *GameManager {
	return &GameManager{
		engine:           opts.Engine,
		moveQueue:        opts.MoveQueue,
		stateManager:     opts.StateManager,
		eventHandler:     opts.EventHandler,
		gameState:        opts.GameState,
		gameLoopInterval: opts.GameLoopInterval,
		moveHoldTicks:    opts.MoveHoldTicks,
	}
}

// Start starts the game loop and blocks until ctx is done.
func (gm *GameManager) Start(ctx context.Context) error {
	if err := gm.stateManager.Set(ctx, gm.gameState); err != nil {
		return fmt.Errorf("failed to publish initial game state: %v", err)
	}
	log.Info("Session %s started", gm.gameState.Name)

	ticker := time.NewTicker(gm.gameLoopInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Info("Session %s ended %d-%d", gm.gameState.Name, gm.gameState.LeftScore, gm.gameState.RightScore)
			return nil
		case <-ticker.C:
			if err := gm.gameTick(ctx); err != nil {
				log.Error("Failed to run game tick: %v", err)
			}
		}
	}
}

// gameTick runs one iteration of the game loop.
func (gm *GameManager) gameTick(ctx context.Context) error {
	gm.processMoves()

	next, events := gm.engine.StepEvents(gm.gameState, gm.move)
	gm.gameState = next

	if err := gm.stateManager.Set(ctx, gm.gameState); err != nil {
		return fmt.Errorf("failed to publish game state: %v", err)
	}

	gm.handleEvents(events)
	return nil
}

// processMoves drains pending input. The newest valid move wins and is held
// for moveHoldTicks ticks; without input the paddle stops once the hold runs out.
func (gm *GameManager) processMoves() {
	pending, err := gm.moveQueue.ReadAllMessages()
	if err != nil {
		log.Error("Failed to read moves: %v", err)
	}

	received := false
	for _, item := range pending {
		move, ok := item.(types.Move)
		if !ok || !move.Valid() {
			log.Warn("Ignoring unexpected move input: %v", item)
			continue
		}
		gm.move = move
		received = true
	}

	if received {
		gm.moveHold = gm.moveHoldTicks
		return
	}
	if gm.moveHold > 0 {
		gm.moveHold--
		return
	}
	gm.move = types.MoveStationary
}

func (gm *GameManager) handleEvents(events types.Events) {
	if events == 0 {
		return
	}
	log.Trace("Tick events: %s", events)
	if events.Has(types.EventStallRecovered) {
		log.Warn("Ball stalled and was served again")
	}
	if events.Scored() {
		log.Debug("Score %d-%d", gm.gameState.LeftScore, gm.gameState.RightScore)
	}
	if gm.eventHandler != nil {
		gm.eventHandler(gm.gameState, events)
	}
}

// GameState returns the manager's current state. Only safe to call when the
// loop is not running; renderers should read the StateManager instead.
func (gm *GameManager) GameState() types.GameState {
	return gm.gameState
}
