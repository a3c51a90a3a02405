// Command snake-sim plays the game without a terminal UI, feeding it scripted
// or random input, and reports what happened.
package main

import (
	"errors"
	"flag"
	"fmt"
	"math/rand"
	"os"

	"github.com/i582/cfmt/cmd/cfmt"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/sanity-io/litter"

	"github.com/kuredoro/snake/config"
	"github.com/kuredoro/snake/core"
	"github.com/kuredoro/snake/engine/sim"
)

var scriptDirs = map[rune]core.Direction{
	'.': core.None,
	'u': core.Up,
	'r': core.Right,
	'd': core.Down,
	'l': core.Left,
}

type stats struct {
	eaten  int
	resets int
	full   int
}

func main() {
	if err := run(); err != nil {
		cfmt.Printf("{{error:}}::lightRed|bold %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	envFile := flag.String("env", ".env", "file with SNAKE_* settings")
	ticks := flag.Int("ticks", 1000, "number of ticks to simulate")
	script := flag.String("script", "", "per tick input, one of .urdl per tick; random input afterwards")
	turn := flag.Float64("turn", 0.2, "probability of a random turn request per tick")
	seed := flag.Int64("seed", 0, "random seed, overrides SNAKE_SEED when set")
	dump := flag.Bool("dump", false, "dump the final state")
	flag.Parse()

	cfg, err := config.Load(*envFile)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if *seed != 0 {
		cfg.Seed = *seed
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	logger, closer, err := cfg.NewLogger(zerolog.ConsoleWriter{Out: os.Stderr})
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

	inputs := make([]core.Direction, 0, len(*script))
	for i, r := range *script {
		dir, ok := scriptDirs[r]
		if !ok {
			return fmt.Errorf("script: unknown input %q at %d", r, i)
		}
		inputs = append(inputs, dir)
	}

	rng := rand.New(rand.NewSource(opts.Seed + 1))
	var st stats

	for i := 0; i < *ticks; i++ {
		dir := core.None
		if i < len(inputs) {
			dir = inputs[i]
		} else if rng.Float64() < *turn {
			dir = core.Directions[rng.Intn(len(core.Directions))]
		}

		snap, err := game.Tick(dir)
		if errors.Is(err, core.ErrGridFull) {
			st.full++
			if err := game.Restart(); err != nil {
				return err
			}
			continue
		}
		if err != nil {
			return err
		}

		switch snap.Event {
		case core.Ate:
			st.eaten++
		case core.Reset:
			st.resets++
		}
	}

	final := game.Snapshot()

	cfmt.Printf("{{ticks}}::bold %d  {{eaten}}::lightGreen %d  {{resets}}::lightYellow %d  "+
		"{{board full}}::lightCyan %d  {{best length}}::bold %d\n",
		final.Tick, st.eaten, st.resets, st.full, final.BestLength)

	if *dump {
		litter.Dump(final)
	}

	return nil
}
