package core

// Event tells what happened to the snake during a tick.
type Event int

const (
	Moved Event = iota
	Ate
	Reset
)

func (e Event) String() string {
	switch e {
	case Moved:
		return "moved"
	case Ate:
		return "ate"
	case Reset:
		return "reset"
	default:
		return "unknown"
	}
}

// Snapshot is the settled state of the game after a tick. Cells are ordered
// head first and are owned by the snapshot.
type Snapshot struct {
	Tick      uint64
	Event     Event
	Cells     []Coord
	Direction Direction

	Food    Coord
	HasFood bool

	// Removed is the tail cell vacated during the tick, valid if HasRemoved.
	Removed    Coord
	HasRemoved bool

	Length       int
	TargetLength int
	BestLength   int
}

func (s Snapshot) Head() Coord {
	return s.Cells[0]
}
