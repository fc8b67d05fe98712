// Package tui provides the Bubble Tea typing interface.
package tui

import (
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/treygilliland/zootype/internal/corpus"
	"github.com/treygilliland/zootype/internal/engine"
)

type styledCell struct {
	s       string
	width   int
	isSpace bool
}

// buildStyledCells styles each corpus position from its cell state: typed
// cells by correctness, pending cells dimmed with the current word
// highlighted, and the cursor cell underlined.
func buildStyledCells(target []rune, cells []engine.CellState, cursor int, words []corpus.Word) []styledCell {
	current, hasCurrent := wordForCursor(words, cursor)

	out := make([]styledCell, 0, len(target))
	for i, r := range target {
		displayed := r
		style := pendingStyle
		state := engine.CellPending
		if i < len(cells) {
			state = cells[i]
		}
		switch state {
		case engine.CellCorrect:
			style = correctStyle
		case engine.CellIncorrect:
			style = incorrectStyle
			if r == ' ' {
				displayed = '•'
			}
		default:
			if hasCurrent && i >= current.Start && i < current.End {
				style = currentWordStyle
			}
		}
		if i == cursor && state == engine.CellPending {
			style = style.Underline(true)
		}
		out = append(out, styledCell{
			s:       style.Render(string(displayed)),
			width:   runewidth.RuneWidth(displayed),
			isSpace: r == ' ',
		})
	}
	return out
}

func wordForCursor(words []corpus.Word, cursor int) (corpus.Word, bool) {
	if len(words) == 0 {
		return corpus.Word{}, false
	}
	for _, w := range words {
		if cursor < w.End {
			return w, true
		}
	}
	return corpus.Word{}, false
}

func renderStyledCells(cells []styledCell) string {
	var b strings.Builder
	for _, item := range cells {
		b.WriteString(item.s)
	}
	return b.String()
}

// wrapStyledCells soft-wraps styled cells at word boundaries, falling back
// to a hard break when a word is wider than the line.
func wrapStyledCells(cells []styledCell, width int) string {
	if width <= 0 {
		return renderStyledCells(cells)
	}
	var out strings.Builder
	line := make([]styledCell, 0, len(cells))
	lineWidth := 0
	lastSpaceIdx := -1

	for i := 0; i < len(cells); {
		item := cells[i]
		if lineWidth+item.width > width && len(line) > 0 {
			if lastSpaceIdx >= 0 {
				out.WriteString(renderStyledCells(line[:lastSpaceIdx]))
				out.WriteRune('\n')
				line = append([]styledCell{}, line[lastSpaceIdx+1:]...)
				lineWidth = lineWidthOf(line)
				lastSpaceIdx = lastSpaceIndex(line)
			} else {
				out.WriteString(renderStyledCells(line))
				out.WriteRune('\n')
				line = line[:0]
				lineWidth = 0
				lastSpaceIdx = -1
			}
			continue
		}
		line = append(line, item)
		lineWidth += item.width
		if item.isSpace {
			lastSpaceIdx = len(line) - 1
		}
		i++
	}
	out.WriteString(renderStyledCells(line))
	return out.String()
}

func lineWidthOf(line []styledCell) int {
	total := 0
	for _, item := range line {
		total += item.width
	}
	return total
}

func lastSpaceIndex(line []styledCell) int {
	for i := len(line) - 1; i >= 0; i-- {
		if line[i].isSpace {
			return i
		}
	}
	return -1
}
