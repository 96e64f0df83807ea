package game

import (
	"fmt"

	"github.com/cbodonnell/pong/client/input"
	"github.com/cbodonnell/pong/client/scenes"
	"github.com/cbodonnell/pong/client/ui"
	pong "github.com/cbodonnell/pong/pkg/game"
	"github.com/cbodonnell/pong/pkg/game/types"
	"github.com/cbodonnell/pong/pkg/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// Game implements ebiten.Game interface, which has Update, Draw and Layout methods.
type Game struct {
	// debug is a boolean value indicating whether debug mode is enabled.
	debug bool
	// engine advances the sessions started from the menu.
	engine *pong.Engine
	// sessionName prefills the menu.
	sessionName string
	// onEvents is passed on to every game scene.
	onEvents func(types.GameState, types.Events)
	// mode is the current game mode.
	mode GameMode
	// scene is the current scene.
	scene scenes.Scene
}

type GameMode int

const (
	GameModeMenu GameMode = iota
	GameModePlay
)

func (m GameMode) String() string {
	switch m {
	case GameModeMenu:
		return "Menu"
	case GameModePlay:
		return "Play"
	}
	return "Unknown"
}

type NewGameOptions struct {
	Debug bool
	// Seed seeds the engine's serve randomness.
	Seed uint64
	// SessionName prefills the menu's name input.
	SessionName string
	// OnEvents, if set, is called after every tick that produced events.
	OnEvents func(types.GameState, types.Events)
}

func NewGame(opts NewGameOptions) (ebiten.Game, error) {
	g := &Game{
		debug: opts.Debug,
		engine: pong.NewEngine(pong.NewEngineOptions{
			Seed:    opts.Seed,
			Surface: &windowSurface{},
		}),
		sessionName: opts.SessionName,
		onEvents:    opts.OnEvents,
	}

	if err := g.loadMenu(); err != nil {
		return nil, fmt.Errorf("failed to load menu scene: %v", err)
	}

	return g, nil
}

func (g *Game) SetScene(scene scenes.Scene) error {
	if g.scene != nil {
		if err := g.scene.Destroy(); err != nil {
			return fmt.Errorf("failed to destroy previous scene: %v", err)
		}
	}

	g.scene = scene
	if err := g.scene.Init(); err != nil {
		return fmt.Errorf("failed to initialize scene: %v", err)
	}

	return nil
}

func (g *Game) loadMenu() error {
	menu, err := scenes.NewMenuScene(scenes.MenuSceneOptions{
		Name:    g.sessionName,
		OnStart: g.start,
	})
	if err != nil {
		return fmt.Errorf("failed to create menu scene: %v", err)
	}
	if err := g.SetScene(menu); err != nil {
		return fmt.Errorf("failed to set menu scene: %v", err)
	}
	g.mode = GameModeMenu
	return nil
}

func (g *Game) start(name string) error {
	sessionName, err := pong.SessionName(name)
	if err != nil {
		return &ui.ActionableError{Message: err.Error()}
	}
	g.sessionName = sessionName
	if err := g.loadGame(); err != nil {
		return fmt.Errorf("failed to load game scene: %v", err)
	}
	return nil
}

func (g *Game) loadGame() error {
	gameScene, err := scenes.NewGameScene(scenes.GameSceneOptions{
		Engine:   g.engine,
		Name:     g.sessionName,
		OnEvents: g.onEvents,
	})
	if err != nil {
		return fmt.Errorf("failed to create game scene: %v", err)
	}
	if err := g.SetScene(gameScene); err != nil {
		return fmt.Errorf("failed to set game scene: %v", err)
	}
	g.mode = GameModePlay
	return nil
}

func (g *Game) Update() error {
	if err := g.handleInput(); err != nil {
		return fmt.Errorf("failed to handle input: %v", err)
	}

	if err := g.scene.Update(); err != nil {
		return fmt.Errorf("failed to update scene: %v", err)
	}

	return nil
}

func (g *Game) handleInput() error {
	switch g.mode {
	case GameModePlay:
		if input.IsNegativeJustPressed() {
			if err := g.loadMenu(); err != nil {
				return fmt.Errorf("failed to load menu scene: %v", err)
			}
		}
	case GameModeMenu:
		if input.IsNegativeJustPressed() {
			log.Debug("Exit requested from menu")
			return ebiten.Termination
		}
	}

	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
	if g.debug {
		g.drawDebugOverlay(screen)
	}
}

func (g *Game) drawDebugOverlay(screen *ebiten.Image) {
	ebitenutil.DebugPrint(screen, fmt.Sprintf("\n   FPS: %0.1f", ebiten.ActualFPS()))
	ebitenutil.DebugPrint(screen, fmt.Sprintf("\n\n   TPS: %0.1f", ebiten.ActualTPS()))
	ebitenutil.DebugPrint(screen, fmt.Sprintf("\n\n\n   Mode: %s", g.mode))

	gameScene, ok := g.scene.(*scenes.GameScene)
	if !ok {
		return
	}
	s := gameScene.State()
	ebitenutil.DebugPrint(screen, fmt.Sprintf("\n\n\n\n   Session: %s", s.Name))
	ebitenutil.DebugPrint(screen, fmt.Sprintf("\n\n\n\n\n   Ball: (%0.1f, %0.1f) v=(%0.2f, %0.2f)", s.Ball.X, s.Ball.Y, s.Ball.XSpeed, s.Ball.YSpeed))
	ebitenutil.DebugPrint(screen, fmt.Sprintf("\n\n\n\n\n\n   Move: %s", s.Move))
}

const (
	DefaultScreenWidth  = 800
	DefaultScreenHeight = 600
)

func (g *Game) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	return DefaultScreenWidth, DefaultScreenHeight
}

// windowSurface sizes the window to the court when a session is created.
type windowSurface struct{}

func (s *windowSurface) Prepare(width, height int) {
	w, h := ebiten.WindowSize()
	if w == width && h == height {
		return
	}
	log.Debug("Resizing window to %dx%d", width, height)
	ebiten.SetWindowSize(width, height)
}
