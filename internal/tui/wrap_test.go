package tui

import (
	"testing"

	"github.com/treygilliland/zootype/internal/corpus"
	"github.com/treygilliland/zootype/internal/engine"
)

func mustWords(t *testing.T, text string) []corpus.Word {
	t.Helper()
	c, err := corpus.New(text)
	if err != nil {
		t.Fatalf("new corpus: %v", err)
	}
	return c.Words()
}

func TestBuildStyledCellsCursor(t *testing.T) {
	target := []rune("ab")
	cells := []engine.CellState{engine.CellCorrect, engine.CellPending}

	styled := buildStyledCells(target, cells, 1, mustWords(t, "ab"))
	if len(styled) != 2 {
		t.Fatalf("expected 2 cells, got %d", len(styled))
	}
	if styled[0].s != correctStyle.Render("a") {
		t.Fatalf("expected correct style for first cell")
	}
	if styled[1].s != currentWordStyle.Underline(true).Render("b") {
		t.Fatalf("expected underlined cursor cell")
	}
}

func TestBuildStyledCellsKeepsTargetOnMistype(t *testing.T) {
	target := []rune("ab")
	cells := []engine.CellState{engine.CellCorrect, engine.CellIncorrect}

	styled := buildStyledCells(target, cells, 1, mustWords(t, "ab"))
	if styled[1].s != incorrectStyle.Render("b") {
		t.Fatalf("expected incorrect style to keep target rune")
	}
}

func TestBuildStyledCellsWordHighlighting(t *testing.T) {
	target := []rune("one two")
	cells := make([]engine.CellState, len(target))
	cells[0] = engine.CellCorrect

	styled := buildStyledCells(target, cells, 1, mustWords(t, "one two"))
	if styled[0].s != correctStyle.Render("o") {
		t.Fatalf("expected correct style for typed cell")
	}
	if styled[2].s != currentWordStyle.Render("e") {
		t.Fatalf("expected current word style within first word")
	}
	if styled[4].s != pendingStyle.Render("t") {
		t.Fatalf("expected pending style for next word")
	}
}

func TestBuildStyledCellsWrongSpaceDot(t *testing.T) {
	target := []rune("a b")
	cells := []engine.CellState{engine.CellCorrect, engine.CellIncorrect, engine.CellPending}

	styled := buildStyledCells(target, cells, 1, mustWords(t, "a b"))
	if styled[1].s != incorrectStyle.Render("•") {
		t.Fatalf("expected red dot for wrong space")
	}
}

func TestWrapStyledCellsBreaksAtSpaces(t *testing.T) {
	target := []rune("one two")
	cells := make([]engine.CellState, len(target))
	styled := buildStyledCells(target, cells, 0, mustWords(t, "one two"))

	wrapped := wrapStyledCells(styled, 4)
	lines := 1
	for _, r := range wrapped {
		if r == '\n' {
			lines++
		}
	}
	if lines != 2 {
		t.Fatalf("expected 2 lines at width 4, got %d:\n%s", lines, wrapped)
	}
}

func TestWrapStyledCellsZeroWidth(t *testing.T) {
	target := []rune("abc")
	cells := make([]engine.CellState, len(target))
	styled := buildStyledCells(target, cells, 0, mustWords(t, "abc"))
	if wrapStyledCells(styled, 0) != renderStyledCells(styled) {
		t.Fatalf("expected unwrapped render at width 0")
	}
}
