package sim

import (
	"math/rand"

	"github.com/kuredoro/snake/core"
)

// drawsPerCell bounds the rejection sampling before the spawner falls back
// to picking among the free cells directly.
const drawsPerCell = 4

// Spawner places food uniformly on free cells of the grid.
type Spawner struct {
	grid core.Grid
	r    *rand.Rand
}

func NewSpawner(grid core.Grid, r *rand.Rand) *Spawner {
	return &Spawner{grid: grid, r: r}
}

// Relocate returns a uniformly random cell not listed in occupied. If every
// cell is occupied it returns a *core.SpawnError wrapping core.ErrGridFull.
func (s *Spawner) Relocate(occupied []core.Coord) (core.Coord, error) {
	filled := make(map[core.Coord]struct{}, len(occupied))
	for _, c := range occupied {
		filled[s.grid.Wrap(c)] = struct{}{}
	}

	area := s.grid.Area()
	if len(filled) >= area {
		return core.Coord{}, &core.SpawnError{
			Occupied: len(filled),
			Area:     area,
			Err:      core.ErrGridFull,
		}
	}

	for i := 0; i < drawsPerCell*area; i++ {
		cell := core.Coord{X: s.r.Intn(s.grid.Width), Y: s.r.Intn(s.grid.Height)}
		if _, taken := filled[cell]; !taken {
			return cell, nil
		}
	}

	free := make([]core.Coord, 0, area-len(filled))
	for _, cell := range s.grid.Cells() {
		if _, taken := filled[cell]; !taken {
			free = append(free, cell)
		}
	}

	return free[s.r.Intn(len(free))], nil
}
