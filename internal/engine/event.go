package engine

import "time"

// EventKind classifies a key event.
type EventKind int

const (
	// KindInsert is a printable character keystroke.
	KindInsert EventKind = iota
	// KindBackspace erases the character before the cursor.
	KindBackspace
	// KindInterrupt ends the session immediately.
	KindInterrupt
)

// KeyEvent is a single timestamped keystroke. Events are immutable and
// must be delivered in strictly increasing timestamp order.
type KeyEvent struct {
	Rune rune
	At   time.Time
	Kind EventKind
}

// Insert builds an insert event for r at time at.
func Insert(r rune, at time.Time) KeyEvent {
	return KeyEvent{Rune: r, At: at, Kind: KindInsert}
}

// Backspace builds a backspace event at time at.
func Backspace(at time.Time) KeyEvent {
	return KeyEvent{At: at, Kind: KindBackspace}
}

// Interrupt builds an interrupt event at time at. Feeding one is the sole
// cancellation mechanism; a wall-clock limit is a caller sending one of
// these, not engine logic.
func Interrupt(at time.Time) KeyEvent {
	return KeyEvent{At: at, Kind: KindInterrupt}
}
