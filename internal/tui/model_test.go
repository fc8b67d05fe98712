package tui

import (
	"strings"
	"testing"
	"time"

	"github.com/treygilliland/zootype/internal/corpus"
	"github.com/treygilliland/zootype/internal/driver"
	"github.com/treygilliland/zootype/internal/engine"
)

func timeZero() time.Time {
	return time.Unix(0, 0)
}

func testModel(t *testing.T, text string) *Model {
	t.Helper()
	c, err := corpus.New(text)
	if err != nil {
		t.Fatalf("new corpus: %v", err)
	}
	m := NewModel(Options{}, func() string { return text })
	m.corpus = c
	m.cells = make([]engine.CellState, c.Len())
	m.sink = driver.NewDropOldest(1)
	return m
}

func TestRenderFooterFormats(t *testing.T) {
	m := testModel(t, "abcd")
	m.cursor = 2
	m.hasLast = true
	m.lastWPM = 72.4
	m.lastAcc = 0.978
	out := m.renderFooter()
	if out == "" {
		t.Fatalf("expected footer output")
	}
	for _, want := range []string{"Progress 50%", "Last 72.4 WPM", "97.8%"} {
		if !strings.Contains(out, want) {
			t.Fatalf("footer missing %q: %s", want, out)
		}
	}
}

func TestApplyDeltaUpdatesCells(t *testing.T) {
	m := testModel(t, "ab")
	_, _ = m.applyDelta(engine.RenderDelta{
		From:   0,
		To:     1,
		Cells:  []engine.CellState{engine.CellCorrect},
		Cursor: 1,
		Phase:  engine.PhaseRunning,
	})
	if m.cells[0] != engine.CellCorrect {
		t.Fatalf("expected first cell correct")
	}
	if m.cursor != 1 {
		t.Fatalf("expected cursor 1, got %d", m.cursor)
	}
	if m.phase != engine.PhaseRunning {
		t.Fatalf("expected running phase, got %v", m.phase)
	}
}

func TestSendEventDropsAfterTerminal(t *testing.T) {
	m := testModel(t, "ab")
	m.events = make(chan engine.KeyEvent, 1)
	m.phase = engine.PhaseFinished
	m.sendEvent(engine.Backspace(timeZero()))
	select {
	case ev := <-m.events:
		t.Fatalf("expected no event after terminal phase, got %+v", ev)
	default:
	}
}

func TestSendEventNeverBlocks(t *testing.T) {
	m := testModel(t, "ab")
	m.events = make(chan engine.KeyEvent, 1)
	m.phase = engine.PhaseRunning
	m.sendEvent(engine.Backspace(timeZero()))
	// Channel full: the second send must drop instead of blocking.
	m.sendEvent(engine.Backspace(timeZero()))
	if len(m.events) != 1 {
		t.Fatalf("expected exactly one buffered event, got %d", len(m.events))
	}
}
