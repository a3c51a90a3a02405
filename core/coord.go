package core

import "fmt"

// Coord is a cell of the grid, X is the column and Y is the row.
// Y grows downwards.
type Coord struct {
	X, Y int
}

func EqualCoord(a, b Coord) bool {
	return a.X == b.X && a.Y == b.Y
}

func (c Coord) Add(dx, dy int) Coord {
	return Coord{X: c.X + dx, Y: c.Y + dy}
}

// Step returns the neighbour of c in direction d. The result is not wrapped.
func (c Coord) Step(d Direction) Coord {
	dx, dy := d.Delta()
	return c.Add(dx, dy)
}

func (c Coord) String() string {
	return fmt.Sprintf("(%d, %d)", c.X, c.Y)
}

type Direction int

const (
	None Direction = iota
	Up
	Right
	Down
	Left
)

// Directions lists every direction a snake can move in.
var Directions = [...]Direction{Up, Right, Down, Left}

var shiftMap = map[Direction]Coord{
	Up:    {X: 0, Y: -1},
	Right: {X: 1, Y: 0},
	Down:  {X: 0, Y: 1},
	Left:  {X: -1, Y: 0},
}

func (d Direction) Valid() bool {
	_, ok := shiftMap[d]
	return ok
}

// Delta returns the unit shift of d. None and unknown values yield (0, 0).
func (d Direction) Delta() (dx, dy int) {
	shift := shiftMap[d]
	return shift.X, shift.Y
}

func (d Direction) Opposite() Direction {
	switch d {
	case Up:
		return Down
	case Down:
		return Up
	case Left:
		return Right
	case Right:
		return Left
	default:
		return None
	}
}

func (d Direction) String() string {
	switch d {
	case None:
		return "none"
	case Up:
		return "up"
	case Right:
		return "right"
	case Down:
		return "down"
	case Left:
		return "left"
	default:
		return fmt.Sprintf("direction(%d)", int(d))
	}
}
