package core

import (
	"errors"
	"fmt"
)

// ErrGridFull is returned when food has to be placed but every cell is
// covered by the snake.
var ErrGridFull = errors.New("no free cell left on the grid")

type SpawnError struct {
	Occupied int
	Area     int
	Err      error
}

func (e *SpawnError) Error() string {
	return fmt.Sprintf("spawn food: %d of %d cells occupied: %v", e.Occupied, e.Area, e.Err)
}

func (e *SpawnError) Unwrap() error {
	return e.Err
}
