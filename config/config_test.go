package config_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/hashicorp/go-multierror"

	"github.com/kuredoro/snake/config"
	"github.com/kuredoro/snake/engine/sim"
)

func writeEnv(t *testing.T, contents string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), ".env")
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("write env file: %v", err)
	}

	return path
}

func TestLoad(t *testing.T) {
	t.Run("defaults without files", func(t *testing.T) {
		cfg, err := config.Load(filepath.Join(t.TempDir(), "missing.env"))
		if err != nil {
			t.Fatalf("load: %v", err)
		}

		if cfg != config.Default() {
			t.Errorf("got %+v, want defaults %+v", cfg, config.Default())
		}

		if err := cfg.Validate(); err != nil {
			t.Errorf("defaults are invalid: %v", err)
		}
	})

	t.Run("env file and environment", func(t *testing.T) {
		path := writeEnv(t, strings.Join([]string{
			"SNAKE_GRID_WIDTH=20",
			"SNAKE_GRID_HEIGHT=10",
			"SNAKE_TICK_RATE=15",
			"SNAKE_RESET_DIRECTION=random",
			"SNAKE_KEEP_FOOD_ON_RESET=true",
		}, "\n"))

		t.Setenv(config.EnvGridWidth, "40")
		t.Setenv(config.EnvSeed, "1234")

		cfg, err := config.Load(path)
		if err != nil {
			t.Fatalf("load: %v", err)
		}

		if cfg.GridWidth != 40 || cfg.GridHeight != 10 || cfg.TickRate != 15 || cfg.Seed != 1234 {
			t.Errorf("got %+v", cfg)
		}

		if cfg.ResetDirection != "random" || !cfg.KeepFoodOnReset {
			t.Errorf("got reset direction %q keep food %v", cfg.ResetDirection, cfg.KeepFoodOnReset)
		}
	})

	t.Run("reports every malformed value", func(t *testing.T) {
		path := writeEnv(t, "SNAKE_GRID_WIDTH=wide\nSNAKE_TICK_RATE=fast\nSNAKE_KEEP_FOOD_ON_RESET=maybe\n")

		_, err := config.Load(path)

		merr, ok := err.(*multierror.Error)
		if !ok {
			t.Fatalf("got error %v (%T), want *multierror.Error", err, err)
		}

		if len(merr.Errors) != 3 {
			t.Errorf("got %d errors, want 3: %v", len(merr.Errors), merr)
		}
	})
}

func TestValidate(t *testing.T) {
	cfg := config.Config{
		GridWidth:      1,
		GridHeight:     1,
		CellWidth:      9,
		TickRate:       0,
		ResetDirection: "backwards",
		LogLevel:       "loud",
	}

	err := cfg.Validate()

	merr, ok := err.(*multierror.Error)
	if !ok {
		t.Fatalf("got error %v (%T), want *multierror.Error", err, err)
	}

	if len(merr.Errors) != 5 {
		t.Errorf("got %d errors, want 5: %v", len(merr.Errors), merr)
	}
}

func TestDerivedValues(t *testing.T) {
	cfg := config.Default()
	cfg.Seed = 77
	cfg.ResetDirection = "random"

	if cfg.TickInterval() != 100*time.Millisecond {
		t.Errorf("got tick interval %v, want 100ms", cfg.TickInterval())
	}

	grid, err := cfg.Grid()
	if err != nil || grid.Width != 32 || grid.Height != 24 {
		t.Errorf("got grid %+v error %v", grid, err)
	}

	opts, err := cfg.GameOptions()
	if err != nil {
		t.Fatalf("game options: %v", err)
	}

	if opts.Seed != 77 || opts.ResetPolicy != sim.ResetRandom {
		t.Errorf("got options %+v", opts)
	}
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer

	cfg := config.Default()
	cfg.LogLevel = "warn"

	logger, closer, err := cfg.NewLogger(&buf)
	if err != nil {
		t.Fatalf("new logger: %v", err)
	}
	defer closer.Close()

	logger.Info().Msg("hidden")
	logger.Warn().Msg("shown")

	out := buf.String()
	if strings.Contains(out, "hidden") || !strings.Contains(out, "shown") {
		t.Errorf("unexpected log output %q", out)
	}

	if !strings.Contains(out, `"session":"`) {
		t.Errorf("log line has no session id: %q", out)
	}
}
