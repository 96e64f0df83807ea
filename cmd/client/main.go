package main

import (
	"context"
	"flag"
	"fmt"
	"math/rand/v2"
	"os"

	"github.com/cbodonnell/pong/client/game"
	"github.com/cbodonnell/pong/pkg/config"
	"github.com/cbodonnell/pong/pkg/game/types"
	"github.com/cbodonnell/pong/pkg/log"
	"github.com/cbodonnell/pong/pkg/queue"
	"github.com/cbodonnell/pong/pkg/version"
	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	configPath := flag.String("config", "", "Path to a TOML config file (defaults to $"+config.ConfigPathEnv+")")
	logLevel := flag.String("log-level", "info", "Log level")
	seed := flag.Uint64("seed", 0, "Seed for ball serves (0 picks one at random)")
	debug := flag.Bool("debug", false, "Draw the debug overlay")
	name := flag.String("name", "", "Session name to prefill in the menu")
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
		case "debug":
			cfg.Debug = *debug
		case "name":
			cfg.SessionName = *name
		}
	})
	if err := cfg.Validate(); err != nil {
		panic(fmt.Sprintf("Invalid configuration: %v", err))
	}

	parsedLogLevel, err := log.ParseLogLevel(cfg.LogLevel)
	if err != nil {
		panic(fmt.Sprintf("Failed to parse log level: %v", err))
	}

	ctx, cancel := context.WithCancel(context.Background())
	logWriter := log.NewAsyncWriter(os.Stdout, queue.NewInMemoryQueue(queue.DefaultQueueSize))
	logDone := make(chan struct{})
	go func() {
		logWriter.Start(ctx)
		close(logDone)
	}()
	defer func() {
		cancel()
		<-logDone
	}()

	logger := log.New(logWriter, "", log.DefaultLoggerFlag, parsedLogLevel)
	log.SetDefaultLogger(logger)
	log.Info("Log level set to %s", parsedLogLevel)

	log.Info("Starting client version %s", version.Get())

	if cfg.Seed == 0 {
		cfg.Seed = rand.Uint64()
	}
	log.Info("Using seed %d", cfg.Seed)
	if cfg.Sound {
		log.Warn("Sound is only supported by the terminal client")
	}

	g, err := game.NewGame(game.NewGameOptions{
		Debug:       cfg.Debug,
		Seed:        cfg.Seed,
		SessionName: cfg.SessionName,
		OnEvents: func(s types.GameState, events types.Events) {
			if events.Scored() {
				log.Info("Session %s score %d-%d", s.Name, s.LeftScore, s.RightScore)
			}
		},
	})
	if err != nil {
		panic(fmt.Sprintf("Failed to create game: %v", err))
	}

	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(game.DefaultScreenWidth, game.DefaultScreenHeight)
	ebiten.SetWindowTitle("Pong")
	if err := ebiten.RunGame(g); err != nil {
		log.Error("Failed to run game: %v", err)
	}

	if dropped := logWriter.Dropped(); dropped > 0 {
		fmt.Fprintf(os.Stderr, "dropped %d log entries\n", dropped)
	}
}
