// Package quiz implements the round engine: sampling a bounded, randomized
// set of questions from the pool and driving navigation and scoring as the
// user progresses. The engine performs no I/O and is advanced only by
// discrete calls from the presentation layer; invalid calls are no-ops.
package quiz

import (
	"math/rand/v2"
	"strings"

	"github.com/WaverAndrew/marketing-quiz-app/internal/pool"
	"github.com/WaverAndrew/marketing-quiz-app/internal/review"
)

// Phase is the engine's position in the per-round state machine.
type Phase int

const (
	PhaseActive   Phase = iota // a question is pending an answer or skip
	PhaseFeedback              // an outcome is pending display
	PhaseComplete              // terminal until the next StartRound
)

// Outcome reports the result of a submit or skip for feedback rendering.
type Outcome struct {
	Correct      bool
	Skipped      bool
	CorrectLabel string
	Streak       int // streak after applying this outcome
}

// RoundState is the mutable state of one round. It is created fresh by
// StartRound and discarded entirely when a new round starts.
type RoundState struct {
	Config RoundConfig

	// Ordered is the chosen subsequence for this round, fixed at start.
	Ordered []pool.Question

	// Cursor indexes Ordered while the round is active.
	Cursor int

	// Pending is the presented copy of Ordered[Cursor] with freshly
	// shuffled choices, nil once the round is complete.
	Pending *pool.Question

	// Answered latches after a submit or skip for the current
	// presentation; Advance and GoBack clear it.
	Answered bool

	Phase Phase

	Streak     int
	BestStreak int

	// Mistakes collects questions answered incorrectly, deduplicated by id.
	Mistakes *review.Log

	// Running counters for the summary. Revisits via GoBack count again.
	TotalAnswered int
	TotalCorrect  int
	TotalSkipped  int

	// LastOutcome is the outcome pending display, nil in PhaseActive.
	LastOutcome *Outcome

	rng *rand.Rand
}

// StartRound filters, samples and orders a round from the pool. It returns
// nil only when the unfiltered pool is empty (or size < 1); an undersupplied
// topic instead degrades to a small sample from the whole pool.
func StartRound(questions []pool.Question, cfg RoundConfig, rng *rand.Rand) *RoundState {
	if rng == nil {
		rng = pool.NewRand()
	}

	ordered := selectQuestions(questions, cfg, rng)
	if len(ordered) == 0 {
		return nil
	}

	state := &RoundState{
		Config:   cfg,
		Ordered:  ordered,
		Mistakes: review.NewLog(rng),
		rng:      rng,
	}
	state.present()
	return state
}

// SubmitAnswer evaluates chosenLabel against the pending question. It
// returns nil, leaving state untouched, when no question is pending or an
// outcome is already latched for this presentation (double submit).
func SubmitAnswer(state *RoundState, chosenLabel string) *Outcome {
	if state == nil || state.Pending == nil || state.Answered {
		return nil
	}

	correct := strings.EqualFold(chosenLabel, state.Pending.CorrectLabel)

	state.TotalAnswered++
	if correct {
		state.Streak++
		state.TotalCorrect++
		if state.Streak > state.BestStreak {
			state.BestStreak = state.Streak
		}
	} else {
		state.Streak = 0
		// Record the original question, not the reshuffled presentation.
		state.Mistakes.Record(state.Ordered[state.Cursor])
	}

	outcome := &Outcome{
		Correct:      correct,
		CorrectLabel: state.Pending.CorrectLabel,
		Streak:       state.Streak,
	}
	state.Answered = true
	state.Phase = PhaseFeedback
	state.LastOutcome = outcome
	return outcome
}

// Skip marks the current position as skipped: no streak change, no mistake
// entry. Nil when nothing is pending or an outcome is already latched.
func Skip(state *RoundState) *Outcome {
	if state == nil || state.Pending == nil || state.Answered {
		return nil
	}

	state.TotalSkipped++
	outcome := &Outcome{
		Skipped:      true,
		CorrectLabel: state.Pending.CorrectLabel,
		Streak:       state.Streak,
	}
	state.Answered = true
	state.Phase = PhaseFeedback
	state.LastOutcome = outcome
	return outcome
}

// Advance moves to the next question, or to the terminal Complete state
// when the cursor is at the last position. No-op once complete.
func Advance(state *RoundState) {
	if state == nil || state.Phase == PhaseComplete {
		return
	}

	if state.Cursor+1 < len(state.Ordered) {
		state.Cursor++
		state.present()
		return
	}

	state.Pending = nil
	state.Answered = false
	state.LastOutcome = nil
	state.Phase = PhaseComplete
}

// GoBack re-presents the previous question with reshuffled choices so the
// user can reconsider context. Recorded history (streak, counters,
// mistakes) is not rewound. Valid only while active with cursor > 0 and no
// outcome pending display.
func GoBack(state *RoundState) {
	if state == nil || state.Phase != PhaseActive || state.Cursor == 0 {
		return
	}

	state.Cursor--
	state.present()
}

// present installs a fresh presentation of Ordered[Cursor]: a copy with
// independently shuffled choices. Questions without a well-formed choice
// list pass through unshuffled.
func (s *RoundState) present() {
	q := s.Ordered[s.Cursor]
	if len(q.Choices) > 0 {
		q.Choices = pool.Shuffled(s.rng, q.Choices)
	}
	s.Pending = &q
	s.Answered = false
	s.LastOutcome = nil
	s.Phase = PhaseActive
}
