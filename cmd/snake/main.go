package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"
	"github.com/i582/cfmt/cmd/cfmt"
	"github.com/rs/zerolog/log"

	"github.com/kuredoro/snake/config"
	"github.com/kuredoro/snake/engine/console"
	"github.com/kuredoro/snake/engine/pacer"
	"github.com/kuredoro/snake/engine/sim"
)

func main() {
	if err := run(); err != nil {
		printErr("snake:", err)
		os.Exit(1)
	}
}

func run() error {
	def := config.Default()

	envFile := flag.String("env", ".env", "file with SNAKE_* settings")
	width := flag.Int("width", def.GridWidth, "grid width in cells")
	height := flag.Int("height", def.GridHeight, "grid height in cells")
	cell := flag.Int("cell", def.CellWidth, "terminal columns per cell")
	rate := flag.Int("rate", def.TickRate, "ticks per second")
	seed := flag.Int64("seed", def.Seed, "random seed, 0 for time based")
	reset := flag.String("reset", def.ResetDirection, "direction after a reset: right or random")
	keepFood := flag.Bool("keep-food", def.KeepFoodOnReset, "keep the food in place after a reset")
	logFile := flag.String("log", def.LogFile, "log file")
	level := flag.String("level", def.LogLevel, "log level")
	flag.Parse()

	cfg, err := config.Load(*envFile)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	// Flags given explicitly win over the environment.
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "width":
			cfg.GridWidth = *width
		case "height":
			cfg.GridHeight = *height
		case "cell":
			cfg.CellWidth = *cell
		case "rate":
			cfg.TickRate = *rate
		case "seed":
			cfg.Seed = *seed
		case "reset":
			cfg.ResetDirection = *reset
		case "keep-food":
			cfg.KeepFoodOnReset = *keepFood
		case "log":
			cfg.LogFile = *logFile
		case "level":
			cfg.LogLevel = *level
		}
	})

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	logger, closer, err := cfg.NewLogger(nil)
	if err != nil {
		return err
	}
	defer closer.Close()
	log.Logger = logger

	grid, err := cfg.Grid()
	if err != nil {
		return err
	}

	opts, err := cfg.GameOptions()
	if err != nil {
		return err
	}

	game, err := sim.New(grid, opts)
	if err != nil {
		return fmt.Errorf("new game: %w", err)
	}

	log.Info().
		Int("width", grid.Width).
		Int("height", grid.Height).
		Int("rate", cfg.TickRate).
		Int64("seed", opts.Seed).
		Stringer("reset", opts.ResetPolicy).
		Msg("Game started")

	p, err := pacer.New(cfg.TickInterval())
	if err != nil {
		return err
	}
	defer p.Close()

	s, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("new screen: %w", err)
	}
	if err := s.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer s.Fini()

	s.DisableMouse()
	s.HideCursor()
	s.SetStyle(tcell.StyleDefault.Background(tcell.ColorReset).Foreground(tcell.ColorReset))
	s.Clear()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err = console.Run(ctx, s, game, p, console.NewRenderer(s, grid, cfg.CellWidth))

	snap := game.Snapshot()
	log.Info().
		Uint64("ticks", snap.Tick).
		Int("best", snap.BestLength).
		Msg("Game finished")

	return err
}

func printErr(m string, args ...interface{}) {
	if len(args) == 0 {
		panic("printErr: no arguments passed")
	}

	err := args[len(args)-1]

	header := m
	if len(args) > 1 {
		header = fmt.Sprintf(m, args[:len(args)-1]...)
	}

	cfmt.Printf("{{error:}}::lightRed|bold %s %v\n", header, err)
}
