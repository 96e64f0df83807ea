package main

import (
	"context"
	"flag"
	"fmt"
	"math/rand/v2"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/cbodonnell/pong/client/sound"
	"github.com/cbodonnell/pong/client/terminal"
	"github.com/cbodonnell/pong/pkg/config"
	"github.com/cbodonnell/pong/pkg/game"
	"github.com/cbodonnell/pong/pkg/game/types"
	"github.com/cbodonnell/pong/pkg/log"
	"github.com/cbodonnell/pong/pkg/queue"
	"github.com/cbodonnell/pong/pkg/state"
	"github.com/cbodonnell/pong/pkg/version"
	"github.com/gdamore/tcell/v2"
)

func main() {
	configPath := flag.String("config", "", "Path to a TOML config file (defaults to $"+config.ConfigPathEnv+")")
	logLevel := flag.String("log-level", "info", "Log level")
	logFile := flag.String("log-file", "pong.log", "File to write logs to")
	seed := flag.Uint64("seed", 0, "Seed for ball serves (0 picks one at random)")
	name := flag.String("name", "", "Session name (generated when empty)")
	tps := flag.Int("tps", 60, "Simulation ticks per second")
	withSound := flag.Bool("sound", false, "Play sound effects")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "log-level":
			cfg.LogLevel = *logLevel
		case "seed":
			cfg.Seed = *seed
		case "name":
			cfg.SessionName = *name
		case "tps":
			cfg.TPS = *tps
		case "sound":
			cfg.Sound = *withSound
		}
	})
	if err := cfg.Validate(); err != nil {
		panic(fmt.Sprintf("Invalid configuration: %v", err))
	}

	parsedLogLevel, err := log.ParseLogLevel(cfg.LogLevel)
	if err != nil {
		panic(fmt.Sprintf("Failed to parse log level: %v", err))
	}

	// the terminal belongs to the renderer, so logs go to a file
	f, err := os.OpenFile(*logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		panic(fmt.Sprintf("Failed to open log file: %v", err))
	}
	defer f.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx, cancel := context.WithCancel(ctx)

	var wg sync.WaitGroup
	defer wg.Wait()
	defer cancel()

	logWriter := log.NewAsyncWriter(f, queue.NewInMemoryQueue(queue.DefaultQueueSize))
	wg.Add(1)
	go func() {
		defer wg.Done()
		logWriter.Start(ctx)
	}()

	logger := log.New(logWriter, "", log.DefaultLoggerFlag, parsedLogLevel)
	log.SetDefaultLogger(logger)
	log.Info("Log level set to %s", parsedLogLevel)
	log.Info("Starting terminal client version %s", version.Get())

	sessionName, err := game.SessionName(cfg.SessionName)
	if err != nil {
		panic(fmt.Sprintf("Invalid session name: %v", err))
	}
	if cfg.Seed == 0 {
		cfg.Seed = rand.Uint64()
	}
	log.Info("Using seed %d", cfg.Seed)

	var onEvents func(types.GameState, types.Events)
	if cfg.Sound {
		player := sound.NewPlayer(sound.NewPlayerOptions{})
		if err := player.Initialize(); err != nil {
			log.Error("Failed to initialize sound, continuing without it: %v", err)
		} else {
			wg.Add(1)
			go func() {
				defer wg.Done()
				defer player.Cleanup()
				if err := player.Start(ctx); err != nil {
					log.Error("Sound player stopped: %v", err)
				}
			}()
			onEvents = func(_ types.GameState, events types.Events) {
				player.Notify(events)
			}
		}
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		panic(fmt.Sprintf("Failed to create screen: %v", err))
	}
	if err := screen.Init(); err != nil {
		panic(fmt.Sprintf("Failed to initialize screen: %v", err))
	}
	defer screen.Fini()
	screen.HideCursor()

	engine := game.NewEngine(game.NewEngineOptions{Seed: cfg.Seed})
	moveQueue := queue.NewInMemoryQueue(queue.DefaultQueueSize)
	initial := engine.CreateSession(sessionName)
	stateManager := state.NewInMemoryStateManager(initial)

	gameManager := game.NewGameManager(game.NewGameManagerOptions{
		Engine:           engine,
		MoveQueue:        moveQueue,
		StateManager:     stateManager,
		EventHandler:     onEvents,
		GameState:        initial,
		GameLoopInterval: time.Second / time.Duration(cfg.TPS),
		MoveHoldTicks:    cfg.MoveHoldTicks,
	})
	wg.Add(1)
	go func() {
		defer wg.Done()
		if err := gameManager.Start(ctx); err != nil {
			log.Error("Game manager stopped: %v", err)
		}
		cancel()
	}()

	renderer := terminal.NewRenderer(terminal.NewRendererOptions{
		Screen:       screen,
		StateManager: stateManager,
		MoveQueue:    moveQueue,
	})
	if err := renderer.Start(ctx); err != nil {
		log.Error("Renderer stopped: %v", err)
	}
}
