package sim

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/kuredoro/snake/core"
)

func TestSpawnerRelocate(t *testing.T) {
	t.Run("never lands on occupied cells", func(t *testing.T) {
		grid := core.Grid{Width: 4, Height: 3}
		sp := NewSpawner(grid, rand.New(rand.NewSource(1)))
		occupied := []core.Coord{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 0}, {X: 3, Y: 0}, {X: 3, Y: 1}}

		for i := 0; i < 500; i++ {
			got, err := sp.Relocate(occupied)
			if err != nil {
				t.Fatalf("relocate: %v", err)
			}

			if !grid.Contains(got) {
				t.Fatalf("food %v is outside of the grid", got)
			}

			for _, c := range occupied {
				if got == c {
					t.Fatalf("food placed on occupied cell %v", got)
				}
			}
		}
	})

	t.Run("single free cell", func(t *testing.T) {
		grid := core.Grid{Width: 10, Height: 10}
		free := core.Coord{X: 7, Y: 2}

		var occupied []core.Coord
		for _, c := range grid.Cells() {
			if c != free {
				occupied = append(occupied, c)
			}
		}

		sp := NewSpawner(grid, rand.New(rand.NewSource(3)))
		for i := 0; i < 20; i++ {
			got, err := sp.Relocate(occupied)
			if err != nil {
				t.Fatalf("relocate: %v", err)
			}

			if got != free {
				t.Fatalf("got %v, want the only free cell %v", got, free)
			}
		}
	})

	t.Run("full grid", func(t *testing.T) {
		grid := core.Grid{Width: 2, Height: 2}
		sp := NewSpawner(grid, rand.New(rand.NewSource(1)))

		_, err := sp.Relocate(grid.Cells())
		if !errors.Is(err, core.ErrGridFull) {
			t.Fatalf("got error %v, want %v", err, core.ErrGridFull)
		}

		var spawnErr *core.SpawnError
		if !errors.As(err, &spawnErr) || spawnErr.Occupied != 4 || spawnErr.Area != 4 {
			t.Errorf("got %#v, want a spawn error for 4 of 4 cells", err)
		}
	})

	t.Run("roughly uniform", func(t *testing.T) {
		grid := core.Grid{Width: 3, Height: 1}
		sp := NewSpawner(grid, rand.New(rand.NewSource(42)))
		occupied := []core.Coord{{X: 1, Y: 0}}

		hits := make(map[core.Coord]int)
		for i := 0; i < 3000; i++ {
			got, err := sp.Relocate(occupied)
			if err != nil {
				t.Fatalf("relocate: %v", err)
			}
			hits[got]++
		}

		for _, c := range []core.Coord{{X: 0, Y: 0}, {X: 2, Y: 0}} {
			if hits[c] < 1200 {
				t.Errorf("cell %v drawn %d times out of 3000", c, hits[c])
			}
		}
	})
}
