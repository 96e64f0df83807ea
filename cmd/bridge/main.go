//go:build js && wasm

package main

import (
	"math/rand/v2"
	"syscall/js"

	"github.com/cbodonnell/pong/pkg/bridge"
	"github.com/cbodonnell/pong/pkg/game"
	"github.com/cbodonnell/pong/pkg/log"
	"github.com/cbodonnell/pong/pkg/version"
)

// canvasSurface sizes the page's canvas element to the court.
type canvasSurface struct {
	id string
}

func (s *canvasSurface) Prepare(width, height int) {
	canvas := js.Global().Get("document").Call("getElementById", s.id)
	if canvas.IsNull() || canvas.IsUndefined() {
		log.Warn("Canvas element %s not found", s.id)
		return
	}
	canvas.Set("width", width)
	canvas.Set("height", height)
}

func main() {
	log.Info("Starting bridge version %s", version.Get())

	b := bridge.New(game.NewEngine(game.NewEngineOptions{
		Seed:    rand.Uint64(),
		Surface: &canvasSurface{id: "canvas"},
	}))

	js.Global().Set("createInitialGameState", js.FuncOf(func(_ js.Value, args []js.Value) any {
		name := ""
		if len(args) > 0 {
			name = args[0].String()
		}
		out, err := b.CreateInitialGameState(name)
		if err != nil {
			log.Error("Failed to create game state: %v", err)
			return js.Null()
		}
		return js.Global().Get("JSON").Call("parse", string(out))
	}))

	js.Global().Set("updatePosition", js.FuncOf(func(_ js.Value, args []js.Value) any {
		if len(args) == 0 {
			log.Error("updatePosition called without a game state")
			return js.Null()
		}
		stateJSON := js.Global().Get("JSON").Call("stringify", args[0]).String()
		move := ""
		if len(args) > 1 && args[1].Type() == js.TypeString {
			move = args[1].String()
		}
		out, err := b.UpdatePosition([]byte(stateJSON), move)
		if err != nil {
			log.Error("Failed to update position: %v", err)
			return js.Null()
		}
		return js.Global().Get("JSON").Call("parse", string(out))
	}))

	// keep the exported functions alive
	select {}
}
