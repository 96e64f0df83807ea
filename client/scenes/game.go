package scenes

import (
	"fmt"
	"image/color"

	"github.com/cbodonnell/pong/client/input"
	"github.com/cbodonnell/pong/client/objects"
	"github.com/cbodonnell/pong/pkg/game"
	"github.com/cbodonnell/pong/pkg/game/constants"
	"github.com/cbodonnell/pong/pkg/game/types"
	"github.com/cbodonnell/pong/pkg/log"
	"github.com/google/uuid"
)

const (
	zIndexCourt   = 0
	zIndexPaddles = 10
	zIndexBall    = 20
	zIndexScore   = 30
	zIndexEffects = 40
	zIndexOverlay = 100

	pausedOverlayID = "paused-overlay"
)

// GameScene owns a session and advances it once per ebiten tick.
type GameScene struct {
	*BaseScene

	engine *game.Engine
	// state is the latest snapshot; objects read it through closures.
	state    types.GameState
	paused   bool
	onEvents func(types.GameState, types.Events)
}

type GameSceneOptions struct {
	Engine *game.Engine
	// Name is the session name.
	Name string
	// OnEvents, if set, is called after every tick that produced events.
	OnEvents func(types.GameState, types.Events)
}

var _ Scene = &GameScene{}

func NewGameScene(opts GameSceneOptions) (*GameScene, error) {
	if opts.Engine == nil {
		return nil, fmt.Errorf("engine is required")
	}
	return &GameScene{
		BaseScene: NewBaseScene(objects.NewSortedZIndexObject("game-root")),
		engine:    opts.Engine,
		state:     opts.Engine.CreateSession(opts.Name),
		onEvents:  opts.OnEvents,
	}, nil
}

func (g *GameScene) Init() error {
	if err := g.BaseScene.Init(); err != nil {
		return fmt.Errorf("failed to initialize base scene: %v", err)
	}

	root := g.GetRoot()
	children := []objects.GameObject{
		objects.NewCourtObject("court", objects.NewCourtObjectOptions{
			W:      float32(constants.CourtWidth),
			H:      float32(constants.CourtHeight),
			ZIndex: zIndexCourt,
		}),
		objects.NewPaddleObject("paddle-left", objects.NewPaddleObjectOptions{
			Paddle: func() types.Paddle { return g.state.Left },
			ZIndex: zIndexPaddles,
		}),
		objects.NewPaddleObject("paddle-right", objects.NewPaddleObjectOptions{
			Paddle: func() types.Paddle { return g.state.Right },
			ZIndex: zIndexPaddles,
		}),
		objects.NewBallObject("ball", func() types.Ball { return g.state.Ball }, zIndexBall),
		objects.NewScoreObject("score", func() types.GameState { return g.state }, zIndexScore),
	}
	for _, child := range children {
		if err := root.AddChild(child.GetID(), child); err != nil {
			return fmt.Errorf("failed to add %s: %v", child.GetID(), err)
		}
	}

	log.Info("Session %s started", g.state.Name)
	return nil
}

func (g *GameScene) Destroy() error {
	log.Info("Session %s ended %d-%d", g.state.Name, g.state.LeftScore, g.state.RightScore)
	return g.BaseScene.Destroy()
}

func (g *GameScene) Update() error {
	if input.IsPauseJustPressed() {
		if err := g.togglePause(); err != nil {
			return fmt.Errorf("failed to toggle pause: %v", err)
		}
	}

	if !g.paused {
		if err := g.step(input.Move()); err != nil {
			return err
		}
	}

	if err := g.BaseScene.Update(); err != nil {
		return fmt.Errorf("failed to update base scene: %v", err)
	}
	return nil
}

// step advances the session by one tick with move applied to the human paddle.
func (g *GameScene) step(move types.Move) error {
	next, events := g.engine.StepEvents(g.state, move)
	g.state = next
	if events == 0 {
		return nil
	}

	log.Trace("Tick events: %s", events)
	if events.Has(types.EventStallRecovered) {
		log.Warn("Ball stalled and was served again")
	}
	if events.Scored() {
		log.Debug("Score %d-%d", g.state.LeftScore, g.state.RightScore)
		if err := g.addScoreEffect(events); err != nil {
			return fmt.Errorf("failed to add score effect: %v", err)
		}
	}
	if g.onEvents != nil {
		g.onEvents(g.state, events)
	}
	return nil
}

func (g *GameScene) addScoreEffect(events types.Events) error {
	x := float64(constants.CourtWidth) / 4
	clr := color.RGBA{0xff, 0x45, 0x45, 0xff}
	if events.Has(types.EventRightScored) {
		x *= 3
		clr = color.RGBA{0x45, 0xff, 0x45, 0xff}
	}
	id := fmt.Sprintf("score-effect-%d", uuid.New().ID())
	effect := objects.NewTextEffect(id, objects.NewTextEffectOptions{
		Text:   "+1",
		X:      x,
		Y:      140,
		Color:  clr,
		Scroll: true,
		TTL:    1000,
		ZIndex: zIndexEffects,
	})
	return g.GetRoot().AddChild(id, effect)
}

func (g *GameScene) togglePause() error {
	g.paused = !g.paused
	if g.paused {
		log.Debug("Session %s paused", g.state.Name)
		return g.GetRoot().AddChild(pausedOverlayID, objects.NewTextOverlayObject(pausedOverlayID, "Paused", zIndexOverlay))
	}
	log.Debug("Session %s resumed", g.state.Name)
	return g.GetRoot().RemoveChild(pausedOverlayID)
}

// State returns the scene's current snapshot.
func (g *GameScene) State() types.GameState {
	return g.state
}
