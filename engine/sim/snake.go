package sim

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/kuredoro/snake/core"
)

// ResetPolicy decides which way the snake faces after a reset.
type ResetPolicy int

const (
	ResetRight ResetPolicy = iota
	ResetRandom
)

func ParseResetPolicy(s string) (ResetPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "right":
		return ResetRight, nil
	case "random":
		return ResetRandom, nil
	default:
		return ResetRight, fmt.Errorf("unknown reset direction policy %q", s)
	}
}

func (p ResetPolicy) String() string {
	if p == ResetRandom {
		return "random"
	}
	return "right"
}

// Snake is the body of the player. Cells[0] is the head.
//
// Direction changes are deferred: SetDirection only fills the pending slot
// and Advance applies it, so the direction changes at most once per tick.
type Snake struct {
	grid    core.Grid
	policy  ResetPolicy
	r       *rand.Rand
	cells   []core.Coord
	dir     core.Direction
	pending core.Direction
	target  int
}

// NewSnake places a snake of length 1 in the center of the grid facing
// right. r is only used by the ResetRandom policy and may be nil otherwise.
func NewSnake(grid core.Grid, policy ResetPolicy, r *rand.Rand) *Snake {
	s := &Snake{
		grid:   grid,
		policy: policy,
		r:      r,
	}
	s.place(core.Right)

	return s
}

func (s *Snake) place(dir core.Direction) {
	s.cells = append(s.cells[:0], s.grid.Center())
	s.target = 1
	s.dir = dir
	s.pending = core.None
}

// SetDirection requests a turn for the next Advance. Requests for the
// opposite of the applied direction are dropped.
func (s *Snake) SetDirection(d core.Direction) bool {
	if !d.Valid() || d == s.dir.Opposite() {
		return false
	}

	s.pending = d
	return true
}

// Advance moves the head one cell and returns the vacated tail cell, if any.
// No cell is vacated on the tick following Grow.
func (s *Snake) Advance() (removed core.Coord, ok bool) {
	if s.pending != core.None {
		s.dir = s.pending
		s.pending = core.None
	}

	head := s.grid.Wrap(s.Head().Step(s.dir))

	s.cells = append(s.cells, core.Coord{})
	copy(s.cells[1:], s.cells)
	s.cells[0] = head

	if len(s.cells) > s.target {
		removed = s.cells[len(s.cells)-1]
		s.cells = s.cells[:len(s.cells)-1]
		return removed, true
	}

	return core.Coord{}, false
}

func (s *Snake) Grow() {
	s.target++
}

// CollidesWithSelf reports whether the head overlaps any other segment.
func (s *Snake) CollidesWithSelf() bool {
	head := s.Head()
	for _, c := range s.cells[1:] {
		if core.EqualCoord(head, c) {
			return true
		}
	}

	return false
}

func (s *Snake) Reset() {
	dir := core.Right
	if s.policy == ResetRandom && s.r != nil {
		dir = core.Directions[s.r.Intn(len(core.Directions))]
	}

	s.place(dir)
}

func (s *Snake) Head() core.Coord {
	return s.cells[0]
}

// Cells returns a copy of the body, head first.
func (s *Snake) Cells() []core.Coord {
	cells := make([]core.Coord, len(s.cells))
	copy(cells, s.cells)
	return cells
}

func (s *Snake) Len() int {
	return len(s.cells)
}

func (s *Snake) TargetLength() int {
	return s.target
}

func (s *Snake) Direction() core.Direction {
	return s.dir
}

func (s *Snake) Pending() core.Direction {
	return s.pending
}

// Occupies reports whether c is covered by the body.
func (s *Snake) Occupies(c core.Coord) bool {
	for _, b := range s.cells {
		if core.EqualCoord(b, c) {
			return true
		}
	}

	return false
}
