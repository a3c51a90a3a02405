package console_test

import (
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"
)

func newScreen(t *testing.T, width, height int) tcell.SimulationScreen {
	t.Helper()

	s := tcell.NewSimulationScreen("UTF-8")
	if err := s.Init(); err != nil {
		t.Fatalf("init simulation screen: %v", err)
	}
	t.Cleanup(s.Fini)

	s.SetSize(width, height)
	return s
}

// ScreenRows returns the screen contents row by row, empty cells read as
// spaces.
func ScreenRows(s tcell.SimulationScreen) []string {
	cells, w, h := s.GetContents()

	rows := make([]string, h)
	for y := 0; y < h; y++ {
		var row strings.Builder
		for x := 0; x < w; x++ {
			runes := cells[y*w+x].Runes
			if len(runes) == 0 {
				row.WriteRune(' ')
				continue
			}
			row.WriteRune(runes[0])
		}
		rows[y] = row.String()
	}

	return rows
}

func AssertSimulationScreen(t *testing.T, got tcell.SimulationScreen, want []string) {
	t.Helper()

	rows := ScreenRows(got)
	if len(rows) != len(want) {
		t.Fatalf("got simulation screen with %d rows, want %d", len(rows), len(want))
	}

	for i := range rows {
		if len([]rune(rows[i])) != len([]rune(want[i])) {
			t.Fatalf("row #%d is %d runes wide, want %d", i+1, len([]rune(rows[i])), len([]rune(want[i])))
		}

		if rows[i] != want[i] {
			t.Errorf("row #%d is %q, want %q", i+1, rows[i], want[i])
		}
	}
}
