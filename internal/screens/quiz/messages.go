package quiz

import "time"

// advanceTickMsg fires the deferred auto-advance after feedback. Seq
// identifies the presentation that scheduled it; a stale Seq means the
// user already moved on and the tick is dropped.
type advanceTickMsg struct {
	Seq int
}

// Feedback lingers briefly before auto-advancing, longer when there is
// a correction to read.
const (
	correctAdvanceDelay = 1200 * time.Millisecond
	wrongAdvanceDelay   = 2500 * time.Millisecond
)
