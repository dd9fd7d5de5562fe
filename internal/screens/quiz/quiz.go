// Package quiz is the screen that drives one round: presenting
// questions, collecting answers, showing feedback and handing off to
// the summary when the round completes.
package quiz

import (
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/google/uuid"

	"github.com/WaverAndrew/marketing-quiz-app/internal/pool"
	qz "github.com/WaverAndrew/marketing-quiz-app/internal/quiz"
	"github.com/WaverAndrew/marketing-quiz-app/internal/router"
	"github.com/WaverAndrew/marketing-quiz-app/internal/screen"
	"github.com/WaverAndrew/marketing-quiz-app/internal/screens/summary"
	"github.com/WaverAndrew/marketing-quiz-app/internal/telemetry"
	"github.com/WaverAndrew/marketing-quiz-app/internal/ui/components"
	"github.com/WaverAndrew/marketing-quiz-app/internal/ui/layout"
)

// QuizScreen implements screen.Screen for an active round.
type QuizScreen struct {
	state    *qz.RoundState
	choices  components.ChoiceList
	sink     telemetry.Sink
	clientID string
	roundID  string

	// advanceSeq versions the deferred auto-advance; bumping it cancels
	// any tick still in flight.
	advanceSeq int

	showQuitConfirm bool
}

var _ screen.Screen = (*QuizScreen)(nil)
var _ screen.KeyHintProvider = (*QuizScreen)(nil)
var _ screen.EscInterceptor = (*QuizScreen)(nil)
var _ screen.StreakProvider = (*QuizScreen)(nil)

// New starts a round over the given pool. A nil engine state (empty
// pool) renders as an error with any key backing out.
func New(questions []pool.Question, cfg qz.RoundConfig, sink telemetry.Sink, clientID string) *QuizScreen {
	if sink == nil {
		sink = telemetry.Nop{}
	}

	s := &QuizScreen{
		state:    qz.StartRound(questions, cfg, nil),
		sink:     sink,
		clientID: clientID,
		roundID:  uuid.NewString(),
	}
	if s.state != nil {
		s.choices = components.NewChoiceList(s.state.Pending.Choices)
	}
	return s
}

func (s *QuizScreen) Init() tea.Cmd {
	return nil
}

func (s *QuizScreen) Title() string {
	return "Round"
}

func (s *QuizScreen) Streak() int {
	if s.state == nil {
		return 0
	}
	return s.state.Streak
}

func (s *QuizScreen) InterceptEsc() bool {
	return true
}

func (s *QuizScreen) KeyHints() []layout.KeyHint {
	if s.showQuitConfirm {
		return []layout.KeyHint{
			{Key: "Y", Description: "End round"},
			{Key: "N", Description: "Keep going"},
		}
	}
	if s.state != nil && s.state.Phase == qz.PhaseFeedback {
		return []layout.KeyHint{
			{Key: "any key", Description: "Continue"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Select"},
		{Key: "Enter", Description: "Answer"},
		{Key: "S", Description: "Skip"},
		{Key: "←", Description: "Back"},
		{Key: "Esc", Description: "Quit"},
	}
}

func (s *QuizScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case advanceTickMsg:
		if msg.Seq != s.advanceSeq {
			return s, nil
		}
		return s.advance()

	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	return s, nil
}

func (s *QuizScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	if s.state == nil {
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	}

	if s.showQuitConfirm {
		switch key {
		case "y", "Y":
			s.showQuitConfirm = false
			return s.finish()
		case "n", "N", "esc":
			s.showQuitConfirm = false
		}
		return s, nil
	}

	// Feedback: any key cuts the auto-advance short.
	if s.state.Phase == qz.PhaseFeedback {
		s.advanceSeq++
		return s.advance()
	}

	if s.state.Phase != qz.PhaseActive {
		return s, nil
	}

	switch key {
	case "esc":
		s.showQuitConfirm = true
		return s, nil
	case "up", "k":
		s.choices.CursorUp()
		return s, nil
	case "down", "j":
		s.choices.CursorDown()
		return s, nil
	case "enter":
		return s.submit(s.choices.SelectedLabel())
	case "s":
		return s.skip()
	case "left", "b":
		qz.GoBack(s.state)
		s.choices = components.NewChoiceList(s.state.Pending.Choices)
		return s, nil
	}

	// Number keys answer directly.
	if len(key) == 1 && key[0] >= '1' && key[0] <= '9' {
		idx := int(key[0] - '1')
		if idx < len(s.state.Pending.Choices) {
			s.choices.Selected = idx
			return s.submit(s.choices.SelectedLabel())
		}
	}

	return s, nil
}

func (s *QuizScreen) submit(label string) (screen.Screen, tea.Cmd) {
	if label == "" {
		return s, nil
	}

	pending := s.state.Pending
	outcome := qz.SubmitAnswer(s.state, label)
	if outcome == nil {
		return s, nil
	}

	s.choices.Reveal(outcome.CorrectLabel, label)

	isCorrect := outcome.Correct
	s.sink.Emit(telemetry.Event{
		ClientID:    s.clientID,
		RoundID:     s.roundID,
		QuestionID:  pending.ID,
		Topic:       pending.Topic,
		ChosenLabel: label,
		IsCorrect:   &isCorrect,
		StreakAfter: outcome.Streak,
	})

	delay := wrongAdvanceDelay
	if outcome.Correct {
		delay = correctAdvanceDelay
	}
	return s, s.scheduleAdvance(delay)
}

func (s *QuizScreen) skip() (screen.Screen, tea.Cmd) {
	pending := s.state.Pending
	outcome := qz.Skip(s.state)
	if outcome == nil {
		return s, nil
	}

	s.choices.Reveal(outcome.CorrectLabel, "")

	s.sink.Emit(telemetry.Event{
		ClientID:    s.clientID,
		RoundID:     s.roundID,
		QuestionID:  pending.ID,
		Topic:       pending.Topic,
		WasSkipped:  true,
		StreakAfter: outcome.Streak,
	})

	return s, s.scheduleAdvance(wrongAdvanceDelay)
}

// scheduleAdvance arms the deferred auto-advance for the current
// presentation.
func (s *QuizScreen) scheduleAdvance(delay time.Duration) tea.Cmd {
	s.advanceSeq++
	seq := s.advanceSeq
	return tea.Tick(delay, func(time.Time) tea.Msg {
		return advanceTickMsg{Seq: seq}
	})
}

// advance moves the engine forward and hands off to the summary once
// the round is complete.
func (s *QuizScreen) advance() (screen.Screen, tea.Cmd) {
	qz.Advance(s.state)

	if s.state.Phase == qz.PhaseComplete {
		return s.finish()
	}

	s.choices = components.NewChoiceList(s.state.Pending.Choices)
	return s, nil
}

// finish swaps this screen for the summary, so backing out of the
// summary never returns to a finished round.
func (s *QuizScreen) finish() (screen.Screen, tea.Cmd) {
	sum := qz.BuildSummary(s.state)
	log := s.state.Mistakes
	return s, func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: summary.New(sum, log)}
	}
}
