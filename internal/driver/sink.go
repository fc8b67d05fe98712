package driver

import "github.com/treygilliland/zootype/internal/engine"

// DropOldest is a bounded delta queue. When full, the oldest delta is
// dropped: deltas are visually cumulative, so a dropped intermediate one
// is superseded by the next and session state is unaffected.
type DropOldest struct {
	ch chan engine.RenderDelta
}

// NewDropOldest returns a queue holding at most n deltas. n must be >= 1.
func NewDropOldest(n int) *DropOldest {
	if n < 1 {
		n = 1
	}
	return &DropOldest{ch: make(chan engine.RenderDelta, n)}
}

// Push enqueues a delta, evicting the oldest entry when the queue is full.
// It never blocks the caller.
func (q *DropOldest) Push(d engine.RenderDelta) {
	for {
		select {
		case q.ch <- d:
			return
		default:
		}
		select {
		case <-q.ch:
		default:
		}
	}
}

// Deltas is the consumer side of the queue.
func (q *DropOldest) Deltas() <-chan engine.RenderDelta {
	return q.ch
}
