// Package engine implements the typing-session state machine. It consumes
// timestamped key events against an immutable corpus, maintains cursor and
// an append-only keystroke log, and emits minimal render deltas.
package engine

import (
	"errors"
	"time"

	"github.com/treygilliland/zootype/internal/corpus"
	"github.com/treygilliland/zootype/internal/stats"
)

var (
	// ErrInvalidCorpus is returned by Begin for a nil or empty corpus.
	ErrInvalidCorpus = errors.New("invalid corpus")
	// ErrSessionClosed is returned for events delivered after the session
	// reached a terminal phase.
	ErrSessionClosed = errors.New("session closed")
	// ErrSessionNotDone is returned when a report is requested before the
	// session reached a terminal phase.
	ErrSessionNotDone = errors.New("session not done")
)

// Phase is the session lifecycle stage. Transitions are monotonic:
// NotStarted -> Running -> {Finished, Aborted}.
type Phase int

const (
	PhaseNotStarted Phase = iota
	PhaseRunning
	PhaseFinished
	PhaseAborted
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhaseNotStarted:
		return "not-started"
	case PhaseRunning:
		return "running"
	case PhaseFinished:
		return "finished"
	case PhaseAborted:
		return "aborted"
	default:
		return "unknown"
	}
}

// Policy controls cursor advancement on a wrong insert.
type Policy int

const (
	// PolicyStrict holds the cursor on a wrong insert; the mistake must be
	// corrected before the test proceeds.
	PolicyStrict Policy = iota
	// PolicyLenient advances the cursor past a wrong insert, flagging it.
	PolicyLenient
)

// NulRune is the Actual value recorded for backspace audit entries.
const NulRune rune = 0

// TypedChar is one append-only log entry. Corrections never rewrite
// history; a backspace adds a new entry with Actual = NulRune.
type TypedChar struct {
	Expected rune
	Actual   rune
	At       time.Time
	Correct  bool
	Kind     EventKind
}

// Session owns all mutable typing state. A single goroutine must feed it
// events in capture order; nothing here is safe for concurrent use.
type Session struct {
	corpus *corpus.Corpus
	policy Policy

	cursor    int
	cells     []CellState
	log       []TypedChar
	startedAt time.Time
	endedAt   time.Time
	phase     Phase

	// Strict mode only: a wrong insert leaves an uncommitted wrong glyph
	// at the cursor cell. The next backspace erases that glyph instead of
	// stepping back over a committed character.
	pendingWrong bool
}

// Begin constructs a session over the corpus with phase NotStarted.
func Begin(c *corpus.Corpus, policy Policy) (*Session, error) {
	if c == nil || c.Len() == 0 {
		return nil, ErrInvalidCorpus
	}
	return &Session{
		corpus: c,
		policy: policy,
		cells:  make([]CellState, c.Len()),
	}, nil
}

// Phase returns the current lifecycle phase.
func (s *Session) Phase() Phase { return s.phase }

// Cursor returns the current corpus position, in [0, corpus length].
func (s *Session) Cursor() int { return s.cursor }

// StartedAt returns the timestamp of the first insert, zero before it.
func (s *Session) StartedAt() time.Time { return s.startedAt }

// Log returns a copy of the append-only keystroke log.
func (s *Session) Log() []TypedChar {
	out := make([]TypedChar, len(s.log))
	copy(out, s.log)
	return out
}

// HandleEvent applies one key event and returns the resulting render
// delta. Events after a terminal phase fail with ErrSessionClosed; the
// session state is untouched in that case.
func (s *Session) HandleEvent(ev KeyEvent) (RenderDelta, error) {
	if s.phase == PhaseFinished || s.phase == PhaseAborted {
		return RenderDelta{}, ErrSessionClosed
	}
	if ev.Kind == KindInterrupt {
		s.phase = PhaseAborted
		s.endedAt = ev.At
		return s.delta(s.cursor, s.cursor), nil
	}
	if s.phase == PhaseNotStarted {
		if ev.Kind != KindInsert {
			// Nothing typed yet, nothing to erase.
			return s.delta(s.cursor, s.cursor), nil
		}
		s.phase = PhaseRunning
		s.startedAt = ev.At
	}
	switch ev.Kind {
	case KindInsert:
		return s.handleInsert(ev), nil
	case KindBackspace:
		return s.handleBackspace(ev), nil
	default:
		return s.delta(s.cursor, s.cursor), nil
	}
}

func (s *Session) handleInsert(ev KeyEvent) RenderDelta {
	pos := s.cursor
	expected := s.corpus.Rune(pos)
	correct := ev.Rune == expected
	s.log = append(s.log, TypedChar{
		Expected: expected,
		Actual:   ev.Rune,
		At:       ev.At,
		Correct:  correct,
		Kind:     KindInsert,
	})
	if correct {
		s.cells[pos] = CellCorrect
		s.pendingWrong = false
	} else {
		s.cells[pos] = CellIncorrect
		s.pendingWrong = s.policy == PolicyStrict
	}
	if correct || s.policy == PolicyLenient {
		s.cursor++
	}
	if s.cursor == s.corpus.Len() {
		s.phase = PhaseFinished
		s.endedAt = ev.At
	}
	return s.delta(pos, pos+1)
}

func (s *Session) handleBackspace(ev KeyEvent) RenderDelta {
	if s.pendingWrong {
		// Erase the uncommitted wrong glyph; the cursor does not move.
		pos := s.cursor
		s.log = append(s.log, TypedChar{
			Expected: s.corpus.Rune(pos),
			Actual:   NulRune,
			At:       ev.At,
			Correct:  false,
			Kind:     KindBackspace,
		})
		s.cells[pos] = CellPending
		s.pendingWrong = false
		return s.delta(pos, pos+1)
	}
	if s.cursor == 0 {
		return s.delta(0, 0)
	}
	s.cursor--
	pos := s.cursor
	s.log = append(s.log, TypedChar{
		Expected: s.corpus.Rune(pos),
		Actual:   NulRune,
		At:       ev.At,
		Correct:  false,
		Kind:     KindBackspace,
	})
	s.cells[pos] = CellPending
	return s.delta(pos, pos+1)
}

func (s *Session) delta(from, to int) RenderDelta {
	d := RenderDelta{
		From:   from,
		To:     to,
		Cursor: s.cursor,
		Phase:  s.phase,
	}
	if to > from {
		d.Cells = append(d.Cells, s.cells[from:to]...)
	}
	return d
}

// Finish freezes the session into a report. It is valid only in a
// terminal phase and idempotent: repeat calls yield an identical report.
func (s *Session) Finish() (stats.Report, error) {
	if s.phase != PhaseFinished && s.phase != PhaseAborted {
		return stats.Report{}, ErrSessionNotDone
	}
	return stats.Compute(s.tally()), nil
}

func (s *Session) tally() stats.Tally {
	t := stats.Tally{
		StartedAt: s.startedAt,
		EndedAt:   s.endedAt,
	}
	for _, tc := range s.log {
		switch tc.Kind {
		case KindInsert:
			t.Inserts++
			if tc.Correct {
				t.CorrectInserts++
			}
		case KindBackspace:
			t.Backspaces++
		}
	}
	for _, c := range s.cells {
		if c == CellCorrect {
			t.NetCorrect++
		}
	}
	return t
}
