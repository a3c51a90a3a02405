package sim

import (
	"fmt"
	"math/rand"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/sanity-io/litter"

	"github.com/kuredoro/snake/core"
)

type State int

const (
	Running State = iota
	// Resetting is only observable from inside a tick.
	Resetting
	// Saturated means the snake covers the whole grid and no food can be
	// placed. The game stays here until Restart.
	Saturated
)

func (s State) String() string {
	switch s {
	case Running:
		return "running"
	case Resetting:
		return "resetting"
	case Saturated:
		return "saturated"
	default:
		return "unknown"
	}
}

type Options struct {
	Seed        int64
	ResetPolicy ResetPolicy

	// KeepFoodOnReset leaves the food where it was after a self-collision
	// unless the reset body covers it.
	KeepFoodOnReset bool

	// Logger defaults to the global zerolog logger.
	Logger *zerolog.Logger
}

// Game advances the snake one tick at a time and resolves food consumption
// and self-collision.
type Game struct {
	grid    core.Grid
	snake   *Snake
	spawner *Spawner
	opts    Options
	log     zerolog.Logger

	food    core.Coord
	hasFood bool

	state State
	err   error
	tick  uint64
	best  int
	last  core.Snapshot
}

func New(grid core.Grid, opts Options) (*Game, error) {
	if grid.Width <= 0 || grid.Height <= 0 {
		return nil, fmt.Errorf("new game: invalid grid %dx%d", grid.Width, grid.Height)
	}

	r := rand.New(rand.NewSource(opts.Seed))

	g := &Game{
		grid:    grid,
		snake:   NewSnake(grid, opts.ResetPolicy, r),
		spawner: NewSpawner(grid, r),
		opts:    opts,
		log:     log.Logger,
		best:    1,
	}
	if opts.Logger != nil {
		g.log = *opts.Logger
	}

	if err := g.relocateFood(); err != nil {
		return nil, fmt.Errorf("place initial food: %w", err)
	}

	g.last = g.snapshot(core.Moved, core.Coord{}, false)

	return g, nil
}

func (g *Game) relocateFood() error {
	food, err := g.spawner.Relocate(g.snake.cells)
	if err != nil {
		g.hasFood = false
		return err
	}

	g.food = food
	g.hasFood = true
	return nil
}

// Tick runs one simulation step with an optional direction request (core.None
// for no input) and returns the settled state. The only error is a saturated
// grid, after which every Tick returns the same error until Restart.
func (g *Game) Tick(dir core.Direction) (core.Snapshot, error) {
	if g.state == Saturated {
		return g.last, g.err
	}

	if dir != core.None && !g.snake.SetDirection(dir) {
		g.log.Debug().
			Stringer("requested", dir).
			Stringer("direction", g.snake.Direction()).
			Msg("Turn rejected")
	}

	removed, vacated := g.snake.Advance()
	g.tick++

	event := core.Moved
	head := g.snake.Head()

	if g.hasFood && core.EqualCoord(head, g.food) {
		event = core.Ate
		g.snake.Grow()
		if g.snake.TargetLength() > g.best {
			g.best = g.snake.TargetLength()
		}

		g.log.Info().
			Uint64("tick", g.tick).
			Int("x", head.X).
			Int("y", head.Y).
			Int("length", g.snake.TargetLength()).
			Msg("Food eaten")

		if err := g.relocateFood(); err != nil {
			g.state = Saturated
			g.err = fmt.Errorf("tick %d: %w", g.tick, err)
			g.log.Warn().Err(err).Uint64("tick", g.tick).Msg("Board is full")

			g.last = g.snapshot(event, removed, vacated)
			return g.last, g.err
		}
	} else if g.snake.CollidesWithSelf() {
		event = core.Reset
		g.log.Info().
			Uint64("tick", g.tick).
			Int("x", head.X).
			Int("y", head.Y).
			Int("length", g.snake.Len()).
			Msg("Snake bit itself")

		if err := g.reset(); err != nil {
			g.last = g.snapshot(event, removed, vacated)
			return g.last, g.err
		}
	}

	g.last = g.snapshot(event, removed, vacated)

	if e := g.log.Debug(); e.Enabled() {
		e.Str("state", litter.Sdump(g.last)).Msg("Tick")
	}

	return g.last, nil
}

func (g *Game) reset() error {
	g.state = Resetting
	g.snake.Reset()

	if g.opts.KeepFoodOnReset && g.hasFood && !g.snake.Occupies(g.food) {
		g.state = Running
		return nil
	}

	if err := g.relocateFood(); err != nil {
		g.state = Saturated
		g.err = fmt.Errorf("reset: %w", err)
		return g.err
	}

	g.state = Running
	return nil
}

// Restart puts the snake back to its initial state. It is the way out of
// the Saturated state.
func (g *Game) Restart() error {
	g.err = nil
	if err := g.reset(); err != nil {
		return err
	}

	g.last = g.snapshot(core.Reset, core.Coord{}, false)
	g.log.Info().Uint64("tick", g.tick).Msg("Game restarted")

	return nil
}

func (g *Game) snapshot(event core.Event, removed core.Coord, vacated bool) core.Snapshot {
	return core.Snapshot{
		Tick:         g.tick,
		Event:        event,
		Cells:        g.snake.Cells(),
		Direction:    g.snake.Direction(),
		Food:         g.food,
		HasFood:      g.hasFood,
		Removed:      removed,
		HasRemoved:   vacated,
		Length:       g.snake.Len(),
		TargetLength: g.snake.TargetLength(),
		BestLength:   g.best,
	}
}

// Snapshot returns the state produced by the latest tick.
func (g *Game) Snapshot() core.Snapshot {
	return g.last
}

func (g *Game) State() State {
	return g.state
}

func (g *Game) Grid() core.Grid {
	return g.grid
}
