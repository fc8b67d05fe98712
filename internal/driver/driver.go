// Package driver pumps key events through a session and fans render
// deltas out to a sink. It is the single goroutine that owns the session,
// so events are applied strictly in channel order.
package driver

import (
	"context"
	"time"

	"github.com/treygilliland/zootype/internal/engine"
	"github.com/treygilliland/zootype/internal/stats"
)

// Sink receives render deltas. Push must not block the driver
// indefinitely; a bounded sink drops stale deltas instead.
type Sink interface {
	Push(engine.RenderDelta)
}

// Run consumes events until the session reaches a terminal phase, then
// returns its report. A closed event channel or a cancelled context feeds
// a synthetic interrupt, so the session always ends in a terminal phase.
func Run(ctx context.Context, s *engine.Session, events <-chan engine.KeyEvent, sink Sink) (stats.Report, error) {
	for {
		select {
		case <-ctx.Done():
			return interrupt(s, sink)
		case ev, ok := <-events:
			if !ok {
				return interrupt(s, sink)
			}
			delta, err := s.HandleEvent(ev)
			if err != nil {
				return stats.Report{}, err
			}
			sink.Push(delta)
			if delta.Terminal() {
				return s.Finish()
			}
		}
	}
}

func interrupt(s *engine.Session, sink Sink) (stats.Report, error) {
	delta, err := s.HandleEvent(engine.Interrupt(time.Now()))
	if err != nil {
		return stats.Report{}, err
	}
	sink.Push(delta)
	return s.Finish()
}
