package console

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog/log"

	"github.com/kuredoro/snake/core"
	"github.com/kuredoro/snake/engine/sim"
)

// Ticker is the frame pacing source, see pacer.Pacer.
type Ticker interface {
	C() <-chan time.Time
}

var key2Dir = map[tcell.Key]core.Direction{
	tcell.KeyLeft:  core.Left,
	tcell.KeyRight: core.Right,
	tcell.KeyUp:    core.Up,
	tcell.KeyDown:  core.Down,
}

var rune2Dir = map[rune]core.Direction{
	'w': core.Up, 'k': core.Up,
	'a': core.Left, 'h': core.Left,
	's': core.Down, 'j': core.Down,
	'd': core.Right, 'l': core.Right,
}

// KeyDirection translates arrow, WASD and hjkl keys.
func KeyDirection(ev *tcell.EventKey) (core.Direction, bool) {
	if ev.Key() == tcell.KeyRune {
		dir, ok := rune2Dir[ev.Rune()]
		return dir, ok
	}

	dir, ok := key2Dir[ev.Key()]
	return dir, ok
}

func isQuit(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyRune:
		return ev.Rune() == 'q' || ev.Rune() == 'Q'
	}

	return false
}

// Run drives the game on s until a quit key is pressed or ctx is done.
// The most recent direction key seen between two ticks is passed to the
// game on the next tick. The caller owns s and finalizes it.
func Run(ctx context.Context, s tcell.Screen, g *sim.Game, ticker Ticker, r *Renderer) error {
	events := make(chan tcell.Event, 16)
	quit := make(chan struct{})
	defer close(quit)
	go s.ChannelEvents(events, quit)

	redraw := func() {
		if g.State() == sim.Saturated {
			r.DrawSaturated(g.Snapshot())
			return
		}
		r.Draw(g.Snapshot())
	}

	redraw()

	next := core.None
	for {
		select {
		case <-ctx.Done():
			log.Info().Msg("Quit signal received")
			return nil
		case <-ticker.C():
			if g.State() == sim.Saturated {
				continue
			}

			snap, err := g.Tick(next)
			next = core.None

			if errors.Is(err, core.ErrGridFull) {
				log.Info().Int("length", snap.TargetLength).Msg("Board cleared")
				r.DrawSaturated(snap)
				continue
			}
			if err != nil {
				return fmt.Errorf("tick: %w", err)
			}

			r.Draw(snap)
		case ev, ok := <-events:
			if !ok {
				return nil
			}

			switch ev := ev.(type) {
			case *tcell.EventResize:
				s.Sync()
				redraw()
			case *tcell.EventKey:
				if isQuit(ev) {
					return nil
				}

				if g.State() == sim.Saturated && ev.Key() == tcell.KeyEnter {
					if err := g.Restart(); err != nil {
						return fmt.Errorf("restart: %w", err)
					}
					redraw()
					continue
				}

				dir, ok := KeyDirection(ev)
				if !ok {
					continue
				}

				log.Debug().Stringer("direction", dir).Msg("Key pressed")
				next = dir
			}
		}
	}
}
