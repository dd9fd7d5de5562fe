// Package telemetry ships per-answer events to an optional collector.
// Delivery is fire-and-forget: failures are ignored, never retried, and
// never surfaced to quiz state.
package telemetry

// Event is one submit or skip observation.
type Event struct {
	ClientID    string `json:"client_id"`
	RoundID     string `json:"round_id"`
	QuestionID  string `json:"question_id"`
	Topic       string `json:"topic"`
	ChosenLabel string `json:"chosen_label,omitempty"`
	IsCorrect   *bool  `json:"is_correct,omitempty"`
	WasSkipped  bool   `json:"was_skipped"`
	StreakAfter int    `json:"streak_after"`
}

// Sink receives events. Implementations must not block the caller.
type Sink interface {
	Emit(Event)
}

// Nop discards every event; it is the default when no collector endpoint
// is configured.
type Nop struct{}

func (Nop) Emit(Event) {}
