package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/hashicorp/go-multierror"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"github.com/kuredoro/snake/core"
	"github.com/kuredoro/snake/engine/sim"
)

const (
	EnvGridWidth       = "SNAKE_GRID_WIDTH"
	EnvGridHeight      = "SNAKE_GRID_HEIGHT"
	EnvCellWidth       = "SNAKE_CELL_WIDTH"
	EnvTickRate        = "SNAKE_TICK_RATE"
	EnvSeed            = "SNAKE_SEED"
	EnvResetDirection  = "SNAKE_RESET_DIRECTION"
	EnvKeepFoodOnReset = "SNAKE_KEEP_FOOD_ON_RESET"
	EnvLogFile         = "SNAKE_LOG_FILE"
	EnvLogLevel        = "SNAKE_LOG_LEVEL"
)

const maxTickRate = 1000

type Config struct {
	GridWidth  int
	GridHeight int
	// CellWidth is the number of terminal columns a grid cell takes.
	CellWidth int
	// TickRate is the number of game ticks per second.
	TickRate int
	// Seed of the food and reset RNG, 0 picks one from the clock.
	Seed            int64
	ResetDirection  string
	KeepFoodOnReset bool
	LogFile         string
	LogLevel        string
}

func Default() Config {
	return Config{
		GridWidth:      32,
		GridHeight:     24,
		CellWidth:      2,
		TickRate:       10,
		ResetDirection: "right",
		LogFile:        "snake.log",
		LogLevel:       "info",
	}
}

// Load builds the configuration from the defaults, the given .env files and
// the process environment, later sources overriding earlier ones. Missing
// .env files are skipped.
func Load(files ...string) (Config, error) {
	cfg := Default()

	dotenv := make(map[string]string)
	for _, file := range files {
		vars, err := godotenv.Read(file)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return cfg, fmt.Errorf("read %s: %w", file, err)
		}

		for k, v := range vars {
			dotenv[k] = v
		}
	}

	lookup := func(key string) (string, bool) {
		if v, ok := os.LookupEnv(key); ok {
			return v, true
		}
		v, ok := dotenv[key]
		return v, ok
	}

	var merr *multierror.Error

	parseInt := func(key string, dst *int) {
		v, ok := lookup(key)
		if !ok {
			return
		}
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			merr = multierror.Append(merr, fmt.Errorf("%s: %w", key, err))
			return
		}
		*dst = n
	}

	parseInt(EnvGridWidth, &cfg.GridWidth)
	parseInt(EnvGridHeight, &cfg.GridHeight)
	parseInt(EnvCellWidth, &cfg.CellWidth)
	parseInt(EnvTickRate, &cfg.TickRate)

	if v, ok := lookup(EnvSeed); ok {
		seed, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64)
		if err != nil {
			merr = multierror.Append(merr, fmt.Errorf("%s: %w", EnvSeed, err))
		} else {
			cfg.Seed = seed
		}
	}

	if v, ok := lookup(EnvKeepFoodOnReset); ok {
		keep, err := strconv.ParseBool(strings.TrimSpace(v))
		if err != nil {
			merr = multierror.Append(merr, fmt.Errorf("%s: %w", EnvKeepFoodOnReset, err))
		} else {
			cfg.KeepFoodOnReset = keep
		}
	}

	if v, ok := lookup(EnvResetDirection); ok {
		cfg.ResetDirection = v
	}
	if v, ok := lookup(EnvLogFile); ok {
		cfg.LogFile = v
	}
	if v, ok := lookup(EnvLogLevel); ok {
		cfg.LogLevel = v
	}

	return cfg, merr.ErrorOrNil()
}

// Validate reports every problem of the configuration at once.
func (c Config) Validate() error {
	var merr *multierror.Error

	if c.GridWidth <= 0 || c.GridHeight <= 0 {
		merr = multierror.Append(merr, fmt.Errorf("grid must have positive dimensions, got %dx%d",
			c.GridWidth, c.GridHeight))
	} else if c.GridWidth*c.GridHeight < 2 {
		merr = multierror.Append(merr, errors.New("grid must have room for the snake and the food"))
	}

	if c.CellWidth < 1 || c.CellWidth > 4 {
		merr = multierror.Append(merr, fmt.Errorf("cell width must be within [1, 4], got %d", c.CellWidth))
	}

	if c.TickRate <= 0 || c.TickRate > maxTickRate {
		merr = multierror.Append(merr, fmt.Errorf("tick rate must be within (0, %d], got %d",
			maxTickRate, c.TickRate))
	}

	if _, err := sim.ParseResetPolicy(c.ResetDirection); err != nil {
		merr = multierror.Append(merr, err)
	}

	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		merr = multierror.Append(merr, fmt.Errorf("log level: %w", err))
	}

	return merr.ErrorOrNil()
}

func (c Config) Grid() (core.Grid, error) {
	return core.NewGrid(c.GridWidth, c.GridHeight)
}

func (c Config) TickInterval() time.Duration {
	return time.Second / time.Duration(c.TickRate)
}

// GameOptions translates the configuration for sim.New. A zero seed is
// replaced with the current time.
func (c Config) GameOptions() (sim.Options, error) {
	policy, err := sim.ParseResetPolicy(c.ResetDirection)
	if err != nil {
		return sim.Options{}, err
	}

	seed := c.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	return sim.Options{
		Seed:            seed,
		ResetPolicy:     policy,
		KeepFoodOnReset: c.KeepFoodOnReset,
	}, nil
}
