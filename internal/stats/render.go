package stats

import (
	"fmt"
	"io"
)

// Render writes a plain-text results block for consumers outside the TUI.
func Render(w io.Writer, r Report) error {
	lines := []string{
		fmt.Sprintf("WPM:        %.1f", r.WPM),
		fmt.Sprintf("Raw WPM:    %.1f", r.RawWPM),
		fmt.Sprintf("Accuracy:   %.1f%%", r.Accuracy*100),
		fmt.Sprintf("Errors:     %d", r.ErrorCount),
		fmt.Sprintf("Keystrokes: %d", r.Inserts),
		fmt.Sprintf("Backspaces: %d", r.Backspaces),
		fmt.Sprintf("Duration:   %.1fs", r.Duration.Seconds()),
	}
	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}
