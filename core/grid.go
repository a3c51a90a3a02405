package core

import "fmt"

// Grid is the toroidal board. Coordinates leaving one edge reappear on the
// opposite one.
type Grid struct {
	Width, Height int
}

func NewGrid(width, height int) (Grid, error) {
	if width <= 0 || height <= 0 {
		return Grid{}, fmt.Errorf("grid dimensions must be positive, got %dx%d", width, height)
	}

	return Grid{Width: width, Height: height}, nil
}

// Wrap maps any coordinate into [0, Width) x [0, Height).
func (g Grid) Wrap(c Coord) Coord {
	return Coord{X: mod(c.X, g.Width), Y: mod(c.Y, g.Height)}
}

func (g Grid) Center() Coord {
	return Coord{X: g.Width / 2, Y: g.Height / 2}
}

func (g Grid) Contains(c Coord) bool {
	return c.X >= 0 && c.X < g.Width && c.Y >= 0 && c.Y < g.Height
}

func (g Grid) Area() int {
	return g.Width * g.Height
}

// Cells enumerates the grid row by row.
func (g Grid) Cells() []Coord {
	cells := make([]Coord, 0, g.Area())
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			cells = append(cells, Coord{X: x, Y: y})
		}
	}

	return cells
}

func mod(a, n int) int {
	r := a % n
	if r < 0 {
		r += n
	}

	return r
}
