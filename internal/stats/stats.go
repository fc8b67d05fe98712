// Package stats derives typing reports from frozen session data.
package stats

import "time"

// Standard typing-test convention: 5 characters = 1 word.
const charsPerWord = 5.0

// Tally is the frozen outcome of a session, counted from its keystroke
// log. NetCorrect is the number of characters sitting correct in their
// final position when the session ended.
type Tally struct {
	Inserts        int
	CorrectInserts int
	Backspaces     int
	NetCorrect     int
	StartedAt      time.Time
	EndedAt        time.Time
}

// Report is the final statistics for one session. Accuracy is in [0, 1].
type Report struct {
	WPM        float64
	RawWPM     float64
	Accuracy   float64
	ErrorCount int
	Inserts    int
	Backspaces int
	Duration   time.Duration
}

// Compute derives a Report from a tally. It is pure and deterministic:
// the same tally always yields an identical report.
func Compute(t Tally) Report {
	r := Report{
		ErrorCount: t.Inserts - t.CorrectInserts,
		Inserts:    t.Inserts,
		Backspaces: t.Backspaces,
		Accuracy:   1.0,
	}
	if t.Inserts > 0 {
		r.Accuracy = float64(t.CorrectInserts) / float64(t.Inserts)
	}
	// A session aborted before the first insert never started the clock.
	if t.StartedAt.IsZero() {
		return r
	}
	r.Duration = t.EndedAt.Sub(t.StartedAt)
	minutes := r.Duration.Minutes()
	if minutes <= 0 {
		return r
	}
	r.WPM = (float64(t.NetCorrect) / charsPerWord) / minutes
	r.RawWPM = (float64(t.Inserts) / charsPerWord) / minutes
	return r
}
