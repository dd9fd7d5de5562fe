// Package review accumulates the questions answered incorrectly during a
// round and serves them back for on-demand review.
package review

import (
	"math/rand/v2"

	"github.com/WaverAndrew/marketing-quiz-app/internal/pool"
)

// Log is the per-round mistake store. Entries keep their first-occurrence
// order and are deduplicated by question id. The zero value is not usable;
// create one with NewLog.
type Log struct {
	rng       *rand.Rand
	questions []pool.Question
	seen      map[string]bool
}

// NewLog creates an empty mistake log. A nil rng gets a fresh PRNG.
func NewLog(rng *rand.Rand) *Log {
	if rng == nil {
		rng = pool.NewRand()
	}
	return &Log{
		rng:  rng,
		seen: make(map[string]bool),
	}
}

// Record appends a question unless one with the same id is already logged.
func (l *Log) Record(q pool.Question) {
	if l.seen[q.ID] {
		return
	}
	l.seen[q.ID] = true
	l.questions = append(l.questions, q)
}

// Len returns the number of distinct mistakes logged.
func (l *Log) Len() int {
	return len(l.questions)
}

// Questions returns a snapshot of the logged mistakes in first-occurrence
// order.
func (l *Log) Questions() []pool.Question {
	out := make([]pool.Question, len(l.questions))
	copy(out, l.questions)
	return out
}

// ReviewCopy returns the i-th mistake with freshly shuffled choices for
// display. The stored original is never mutated, so which choice is marked
// correct stays stable across repeated reviews; only positions change.
func (l *Log) ReviewCopy(i int) (pool.Question, bool) {
	if i < 0 || i >= len(l.questions) {
		return pool.Question{}, false
	}
	q := l.questions[i]
	if len(q.Choices) > 0 {
		q.Choices = pool.Shuffled(l.rng, q.Choices)
	}
	return q, true
}

// Reset clears the log for a new round.
func (l *Log) Reset() {
	l.questions = nil
	l.seen = make(map[string]bool)
}
