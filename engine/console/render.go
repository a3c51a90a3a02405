package console

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/kuredoro/snake/core"
)

type Boundary struct {
	TopLeft     core.Coord
	BottomRight core.Coord
}

type Styles struct {
	Board  tcell.Style
	Snake  tcell.Style
	Head   tcell.Style
	Food   tcell.Style
	Status tcell.Style
	Banner tcell.Style
}

func DefaultStyles() Styles {
	return Styles{
		Board:  tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorBlack),
		Snake:  tcell.StyleDefault.Foreground(tcell.ColorGreen).Background(tcell.ColorBlack),
		Head:   tcell.StyleDefault.Foreground(tcell.ColorDarkGreen).Background(tcell.ColorLightGreen),
		Food:   tcell.StyleDefault.Foreground(tcell.ColorRed).Background(tcell.ColorBlack),
		Status: tcell.StyleDefault.Foreground(tcell.ColorLightCyan),
		Banner: tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorPurple),
	}
}

const (
	bodyRune = tcell.RuneBlock
	headRune = tcell.RuneDiamond
	foodRune = '#'
)

// Renderer draws snapshots on a screen it does not own. Grid cell (x, y)
// occupies cellWidth columns of terminal row y+1, right of the left border.
type Renderer struct {
	s         tcell.Screen
	grid      core.Grid
	cellWidth int
	bound     Boundary
	styles    Styles
}

func NewRenderer(s tcell.Screen, grid core.Grid, cellWidth int) *Renderer {
	if cellWidth < 1 {
		cellWidth = 1
	}

	return &Renderer{
		s:         s,
		grid:      grid,
		cellWidth: cellWidth,
		bound: Boundary{
			TopLeft:     core.Coord{X: 0, Y: 0},
			BottomRight: core.Coord{X: grid.Width*cellWidth + 1, Y: grid.Height + 1},
		},
		styles: DefaultStyles(),
	}
}

func (r *Renderer) SetStyles(styles Styles) {
	r.styles = styles
}

// Size returns the terminal size needed to show the board and status line.
func (r *Renderer) Size() (width, height int) {
	return r.bound.BottomRight.X + 1, r.bound.BottomRight.Y + 2
}

func (r *Renderer) Fits() bool {
	w, h := r.s.Size()
	needW, needH := r.Size()
	return w >= needW && h >= needH
}

// Draw shows a frame. The whole board is repainted, which also erases the
// tail cell vacated during the tick.
func (r *Renderer) Draw(snap core.Snapshot) {
	r.s.Clear()

	if !r.Fits() {
		w, h := r.Size()
		sw, _ := r.s.Size()
		drawText(r.s, 0, 0, sw, 2, r.styles.Status, fmt.Sprintf("Terminal too small, need %dx%d", w, h))
		r.s.Show()
		return
	}

	drawBox(r.s, r.bound, r.styles.Board, ' ')

	if snap.HasFood {
		r.drawCell(snap.Food, foodRune, r.styles.Food)
	}

	for i := len(snap.Cells) - 1; i > 0; i-- {
		r.drawCell(snap.Cells[i], bodyRune, r.styles.Snake)
	}
	if len(snap.Cells) > 0 {
		r.drawCell(snap.Cells[0], headRune, r.styles.Head)
	}

	status := fmt.Sprintf("Length %d  Best %d", snap.Length, snap.BestLength)
	sw, _ := r.s.Size()
	y := r.bound.BottomRight.Y + 1
	drawText(r.s, 0, y, sw, y, r.styles.Status, status)

	r.s.Show()
}

// DrawSaturated shows the final board with a banner on top of it.
func (r *Renderer) DrawSaturated(snap core.Snapshot) {
	r.Draw(snap)
	if !r.Fits() {
		return
	}

	lines := []string{"Board full!", "Enter: again", "Esc: quit"}

	width := 0
	for _, l := range lines {
		if len(l) > width {
			width = len(l)
		}
	}

	x1 := (r.bound.BottomRight.X - width - 1) / 2
	y1 := (r.bound.BottomRight.Y - len(lines) - 1) / 2
	if x1 < 0 {
		x1 = 0
	}
	if y1 < 0 {
		y1 = 0
	}
	box := Boundary{
		TopLeft:     core.Coord{X: x1, Y: y1},
		BottomRight: core.Coord{X: x1 + width + 1, Y: y1 + len(lines) + 1},
	}

	drawBox(r.s, box, r.styles.Banner, ' ')
	for i, l := range lines {
		drawText(r.s, x1+1, y1+1+i, box.BottomRight.X, y1+1+i, r.styles.Banner, l)
	}

	r.s.Show()
}

func (r *Renderer) drawCell(c core.Coord, ch rune, style tcell.Style) {
	col := r.bound.TopLeft.X + 1 + c.X*r.cellWidth
	row := r.bound.TopLeft.Y + 1 + c.Y
	for i := 0; i < r.cellWidth; i++ {
		r.s.SetContent(col+i, row, ch, nil, style)
	}
}

func drawText(s tcell.Screen, x1, y1, x2, y2 int, style tcell.Style, text string) {
	row := y1
	col := x1
	for _, r := range []rune(text) {
		s.SetContent(col, row, r, nil, style)
		col++
		if col >= x2 {
			row++
			col = x1
		}
		if row > y2 {
			break
		}
	}
}

func drawBox(s tcell.Screen, boundary Boundary, style tcell.Style, fill rune) {
	x1, y1 := boundary.TopLeft.X, boundary.TopLeft.Y
	x2, y2 := boundary.BottomRight.X, boundary.BottomRight.Y
	if y2 < y1 {
		y1, y2 = y2, y1
	}
	if x2 < x1 {
		x1, x2 = x2, x1
	}

	for row := y1; row <= y2; row++ {
		for col := x1; col <= x2; col++ {
			s.SetContent(col, row, fill, nil, style)
		}
	}

	for col := x1; col <= x2; col++ {
		s.SetContent(col, y1, tcell.RuneHLine, nil, style)
		s.SetContent(col, y2, tcell.RuneHLine, nil, style)
	}
	for row := y1 + 1; row < y2; row++ {
		s.SetContent(x1, row, tcell.RuneVLine, nil, style)
		s.SetContent(x2, row, tcell.RuneVLine, nil, style)
	}

	// Only draw corners if necessary
	if y1 != y2 && x1 != x2 {
		s.SetContent(x1, y1, tcell.RuneULCorner, nil, style)
		s.SetContent(x2, y1, tcell.RuneURCorner, nil, style)
		s.SetContent(x1, y2, tcell.RuneLLCorner, nil, style)
		s.SetContent(x2, y2, tcell.RuneLRCorner, nil, style)
	}
}
