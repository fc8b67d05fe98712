package stats

import (
	"math"
	"strings"
	"time"
)

const sparkChars = " .:-=+*#%@"

// Sample is one correct-or-not insert keystroke with its timestamp,
// used to plot WPM over the course of a session.
type Sample struct {
	At      time.Time
	Correct bool
}

// WPMSeries buckets samples from start into fixed windows and returns the
// WPM achieved in each. The final partial bucket is scaled by its actual
// length so a short tail does not read as a slowdown.
func WPMSeries(samples []Sample, start time.Time, bucket time.Duration) []float64 {
	if len(samples) == 0 || start.IsZero() || bucket <= 0 {
		return nil
	}
	last := samples[len(samples)-1].At
	total := last.Sub(start)
	if total < 0 {
		return nil
	}
	n := int(total/bucket) + 1
	counts := make([]int, n)
	for _, s := range samples {
		if !s.Correct {
			continue
		}
		idx := int(s.At.Sub(start) / bucket)
		if idx < 0 {
			idx = 0
		}
		if idx >= n {
			idx = n - 1
		}
		counts[idx]++
	}
	out := make([]float64, n)
	for i, c := range counts {
		width := bucket
		if i == n-1 {
			if tail := total - time.Duration(i)*bucket; tail > 0 {
				width = tail
			}
		}
		out[i] = (float64(c) / charsPerWord) / width.Minutes()
	}
	return out
}

// MovingAverage computes a rolling mean over the provided window size.
func MovingAverage(values []float64, window int) []float64 {
	if window <= 1 || len(values) == 0 {
		out := make([]float64, len(values))
		copy(out, values)
		return out
	}
	out := make([]float64, len(values))
	var sum float64
	for i := 0; i < len(values); i++ {
		sum += values[i]
		if i >= window {
			sum -= values[i-window]
		}
		den := float64(i + 1)
		if i >= window {
			den = float64(window)
		}
		out[i] = sum / den
	}
	return out
}

// Sparkline renders a single-line ASCII sparkline for the values.
func Sparkline(values []float64) string {
	if len(values) == 0 {
		return ""
	}
	minVal := values[0]
	maxVal := values[0]
	for _, v := range values[1:] {
		if v < minVal {
			minVal = v
		}
		if v > maxVal {
			maxVal = v
		}
	}
	if math.Abs(maxVal-minVal) < 1e-9 {
		return strings.Repeat(string(sparkChars[len(sparkChars)/2]), len(values))
	}
	var b strings.Builder
	for _, v := range values {
		pos := (v - minVal) / (maxVal - minVal)
		idx := int(math.Round(pos * float64(len(sparkChars)-1)))
		if idx < 0 {
			idx = 0
		}
		if idx >= len(sparkChars) {
			idx = len(sparkChars) - 1
		}
		b.WriteByte(sparkChars[idx])
	}
	return b.String()
}
