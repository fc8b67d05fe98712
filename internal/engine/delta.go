package engine

// CellState is the display state of a single corpus position.
type CellState int

const (
	// CellPending has not been typed yet.
	CellPending CellState = iota
	// CellCorrect was typed correctly.
	CellCorrect
	// CellIncorrect was typed incorrectly.
	CellIncorrect
)

// RenderDelta describes exactly the cells changed by one event, never a
// full redraw. Cells holds the new states for positions [From, To), so a
// delta costs the sink a constant amount of work per keystroke.
type RenderDelta struct {
	From   int
	To     int
	Cells  []CellState
	Cursor int
	Phase  Phase
}

// Terminal reports whether the delta announces the end of the session.
func (d RenderDelta) Terminal() bool {
	return d.Phase == PhaseFinished || d.Phase == PhaseAborted
}
