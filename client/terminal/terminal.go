package terminal

import (
	"context"
	"fmt"
	"time"

	"github.com/cbodonnell/pong/pkg/game/constants"
	"github.com/cbodonnell/pong/pkg/game/types"
	"github.com/cbodonnell/pong/pkg/log"
	"github.com/cbodonnell/pong/pkg/queue"
	"github.com/cbodonnell/pong/pkg/state"
	"github.com/gdamore/tcell/v2"
)

const (
	DefaultFrameInterval = time.Second / 30

	// eventBufferSize bounds terminal events waiting to be handled
	eventBufferSize = 100
)

var (
	courtStyle  = tcell.StyleDefault.Foreground(tcell.ColorGray)
	paddleStyle = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	ballStyle   = tcell.StyleDefault.Foreground(tcell.ColorYellow)
	scoreStyle  = tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true)
	pausedStyle = tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorWhite)
)

// canvas is the part of tcell.Screen the renderer draws with.
type canvas interface {
	Clear()
	SetContent(x, y int, primary rune, combining []rune, style tcell.Style)
	Size() (width, height int)
	Show()
}

// Renderer draws the published game state to a terminal and forwards key
// presses as moves. It never touches the simulation directly.
type Renderer struct {
	screen        tcell.Screen
	stateManager  state.StateManager
	moveQueue     queue.Queue
	frameInterval time.Duration

	paused bool
}

type NewRendererOptions struct {
	Screen       tcell.Screen
	StateManager state.StateManager
	// MoveQueue receives a types.Move for every paddle key press
	MoveQueue     queue.Queue
	FrameInterval time.Duration
}

func NewRenderer(opts NewRendererOptions) *Renderer {
	frameInterval := opts.FrameInterval
	if frameInterval <= 0 {
		frameInterval = DefaultFrameInterval
	}
	return &Renderer{
		screen:        opts.Screen,
		stateManager:  opts.StateManager,
		moveQueue:     opts.MoveQueue,
		frameInterval: frameInterval,
	}
}

// Start draws frames and handles input until ctx is done or the player quits.
// The screen must already be initialized; Start does not finalize it.
func (r *Renderer) Start(ctx context.Context) error {
	events := make(chan tcell.Event, eventBufferSize)
	go func() {
		for {
			ev := r.screen.PollEvent()
			if ev == nil {
				// screen was finalized
				close(events)
				return
			}
			select {
			case events <- ev:
			case <-ctx.Done():
				return
			}
		}
	}()

	ticker := time.NewTicker(r.frameInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if quit := r.handleEvent(ev); quit {
				log.Info("Quit requested")
				return nil
			}
		case <-ticker.C:
			gameState, err := r.stateManager.Get(ctx)
			if err != nil {
				return fmt.Errorf("failed to get game state: %v", err)
			}
			r.draw(r.screen, gameState)
		}
	}
}

func (r *Renderer) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return r.handleKey(ev.Key(), ev.Rune())
	case *tcell.EventResize:
		r.screen.Sync()
	}
	return false
}

// handleKey reports whether the key asks to quit.
func (r *Renderer) handleKey(key tcell.Key, ch rune) bool {
	if isQuitKey(key, ch) {
		return true
	}
	if key == tcell.KeyRune && (ch == 'p' || ch == 'P') {
		r.paused = !r.paused
		log.Debug("Rendering paused: %t", r.paused)
		return false
	}
	move, ok := moveForKey(key, ch)
	if !ok || r.paused {
		return false
	}
	if err := r.moveQueue.Enqueue(move); err != nil {
		log.Warn("Failed to enqueue move %s: %v", move, err)
	}
	return false
}

func isQuitKey(key tcell.Key, ch rune) bool {
	switch key {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyRune:
		return ch == 'q' || ch == 'Q'
	}
	return false
}

func moveForKey(key tcell.Key, ch rune) (types.Move, bool) {
	switch key {
	case tcell.KeyUp:
		return types.MoveUp, true
	case tcell.KeyDown:
		return types.MoveDown, true
	case tcell.KeyRune:
		switch ch {
		case 'w', 'W', 'k':
			return types.MoveUp, true
		case 's', 'S', 'j':
			return types.MoveDown, true
		case ' ':
			return types.MoveStationary, true
		}
	}
	return types.MoveStationary, false
}

func (r *Renderer) draw(c canvas, s types.GameState) {
	c.Clear()
	g := newGrid(c.Size())

	for y := 0; y < g.height; y += 2 {
		c.SetContent(g.col(constants.CourtCenterX), y, '┊', nil, courtStyle)
	}

	drawPaddle(c, g, s.Left)
	drawPaddle(c, g, s.Right)

	c.SetContent(g.col(s.Ball.X), g.row(s.Ball.Y), '●', nil, ballStyle)

	quarter := float64(constants.CourtWidth) / 4
	drawText(c, g.col(quarter), 1, fmt.Sprintf("%d", s.LeftScore), scoreStyle)
	drawText(c, g.col(3*quarter), 1, fmt.Sprintf("%d", s.RightScore), scoreStyle)
	drawText(c, 0, g.height-1, s.Name, courtStyle)

	if r.paused {
		drawText(c, g.width/2-3, g.height/2, "PAUSED", pausedStyle)
	}

	c.Show()
}

func drawPaddle(c canvas, g grid, p types.Paddle) {
	x := g.col(p.X + constants.PaddleWidth/2)
	top := g.row(p.Y - constants.PaddleHalfHeight)
	bottom := g.row(p.Y + constants.PaddleHalfHeight)
	for y := top; y <= bottom; y++ {
		c.SetContent(x, y, '█', nil, paddleStyle)
	}
}

func drawText(c canvas, x, y int, text string, style tcell.Style) {
	for i, ch := range []rune(text) {
		c.SetContent(x+i, y, ch, nil, style)
	}
}

// grid maps court coordinates onto terminal cells.
type grid struct {
	width, height int
}

func newGrid(width, height int) grid {
	return grid{width: max(width, 1), height: max(height, 1)}
}

func (g grid) col(x float64) int {
	return clamp(int(x*float64(g.width)/float64(constants.CourtWidth)), 0, g.width-1)
}

func (g grid) row(y float64) int {
	return clamp(int(y*float64(g.height)/float64(constants.CourtHeight)), 0, g.height-1)
}

func clamp(v, lo, hi int) int {
	return min(max(v, lo), hi)
}
