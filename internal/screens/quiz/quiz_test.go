package quiz

import (
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/WaverAndrew/marketing-quiz-app/internal/pool"
	qz "github.com/WaverAndrew/marketing-quiz-app/internal/quiz"
	"github.com/WaverAndrew/marketing-quiz-app/internal/screen"
	"github.com/WaverAndrew/marketing-quiz-app/internal/telemetry"
)

// recordingSink captures emitted events for assertions.
type recordingSink struct {
	events []telemetry.Event
}

func (r *recordingSink) Emit(e telemetry.Event) {
	r.events = append(r.events, e)
}

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func testPool(n int) []pool.Question {
	questions := make([]pool.Question, 0, n)
	for i := 0; i < n; i++ {
		questions = append(questions, pool.Question{
			ID:    string(rune('a' + i)),
			Text:  "What does CPM stand for?",
			Topic: "metrics",
			Choices: []pool.Choice{
				{Label: "A", Text: "Cost per mille"},
				{Label: "B", Text: "Clicks per minute"},
				{Label: "C", Text: "Conversions per month"},
			},
			CorrectLabel: "A",
		})
	}
	return questions
}

func testQuizScreen(n int) (*QuizScreen, *recordingSink) {
	sink := &recordingSink{}
	cfg := qz.RoundConfig{Topic: "metrics", Size: n}
	s := New(testPool(n), cfg, sink, "client-1")
	return s, sink
}

// answerLabel finds the label that is (or is not) the correct one in the
// currently presented choice order.
func answerLabel(s *QuizScreen, correct bool) string {
	for _, c := range s.state.Pending.Choices {
		if (c.Label == s.state.Pending.CorrectLabel) == correct {
			return c.Label
		}
	}
	return ""
}

func TestQuizScreen_Title(t *testing.T) {
	s, _ := testQuizScreen(5)
	if s.Title() != "Round" {
		t.Errorf("Title = %q, want %q", s.Title(), "Round")
	}
}

func TestQuizScreen_EmptyPool(t *testing.T) {
	sink := &recordingSink{}
	s := New(nil, qz.RoundConfig{Topic: "metrics", Size: 5}, sink, "client-1")

	if s.state != nil {
		t.Fatal("expected nil engine state for empty pool")
	}
	view := s.View(80, 24)
	if view == "" {
		t.Error("expected non-empty error view")
	}

	// Any key backs out.
	_, cmd := s.Update(keyPress(' '))
	if cmd == nil {
		t.Error("expected a pop command from the error state")
	}
}

func TestQuizScreen_SubmitCorrect(t *testing.T) {
	s, sink := testQuizScreen(5)

	s.choices.Selected = indexOf(s, answerLabel(s, true))
	var scr screen.Screen = s
	scr, cmd := scr.Update(specialKey(tea.KeyEnter))
	ss := scr.(*QuizScreen)

	if ss.state.Phase != qz.PhaseFeedback {
		t.Errorf("phase = %v, want feedback", ss.state.Phase)
	}
	if !ss.state.LastOutcome.Correct {
		t.Error("expected correct outcome")
	}
	if cmd == nil {
		t.Error("expected an auto-advance command")
	}

	if len(sink.events) != 1 {
		t.Fatalf("events = %d, want 1", len(sink.events))
	}
	ev := sink.events[0]
	if ev.ClientID != "client-1" || ev.Topic != "metrics" {
		t.Errorf("unexpected event fields: %+v", ev)
	}
	if ev.IsCorrect == nil || !*ev.IsCorrect {
		t.Error("expected is_correct = true")
	}
	if ev.WasSkipped {
		t.Error("expected was_skipped = false")
	}
}

func TestQuizScreen_Skip(t *testing.T) {
	s, sink := testQuizScreen(5)

	var scr screen.Screen = s
	scr, _ = scr.Update(keyPress('s'))
	ss := scr.(*QuizScreen)

	if !ss.state.LastOutcome.Skipped {
		t.Error("expected skipped outcome")
	}

	if len(sink.events) != 1 {
		t.Fatalf("events = %d, want 1", len(sink.events))
	}
	ev := sink.events[0]
	if !ev.WasSkipped {
		t.Error("expected was_skipped = true")
	}
	if ev.IsCorrect != nil {
		t.Error("expected is_correct to be omitted for a skip")
	}
	if ev.ChosenLabel != "" {
		t.Errorf("chosen label = %q, want empty", ev.ChosenLabel)
	}
}

func TestQuizScreen_NumberKeySubmits(t *testing.T) {
	s, sink := testQuizScreen(5)

	var scr screen.Screen = s
	scr, _ = scr.Update(keyPress('2'))
	ss := scr.(*QuizScreen)

	if ss.state.Phase != qz.PhaseFeedback {
		t.Error("expected number key to submit")
	}
	if len(sink.events) != 1 {
		t.Fatalf("events = %d, want 1", len(sink.events))
	}
	if sink.events[0].ChosenLabel != s.state.Pending.Choices[1].Label {
		t.Errorf("chosen label = %q, want choice 2", sink.events[0].ChosenLabel)
	}
}

func TestQuizScreen_StaleAdvanceTickIgnored(t *testing.T) {
	s, _ := testQuizScreen(5)

	s.choices.Selected = indexOf(s, answerLabel(s, true))
	var scr screen.Screen = s
	scr, _ = scr.Update(specialKey(tea.KeyEnter))
	ss := scr.(*QuizScreen)

	// The user advances by key before the timer fires.
	scr, _ = ss.Update(keyPress(' '))
	ss = scr.(*QuizScreen)
	cursorAfterKey := ss.state.Cursor

	// The original tick arrives late and must be dropped.
	scr, _ = ss.Update(advanceTickMsg{Seq: 1})
	ss = scr.(*QuizScreen)

	if ss.state.Cursor != cursorAfterKey {
		t.Errorf("cursor = %d, want %d (stale tick must not advance)",
			ss.state.Cursor, cursorAfterKey)
	}
}

func TestQuizScreen_AdvanceTickMovesOn(t *testing.T) {
	s, _ := testQuizScreen(5)

	var scr screen.Screen = s
	scr, _ = scr.Update(keyPress('s'))
	ss := scr.(*QuizScreen)

	scr, _ = ss.Update(advanceTickMsg{Seq: ss.advanceSeq})
	ss = scr.(*QuizScreen)

	if ss.state.Cursor != 1 {
		t.Errorf("cursor = %d, want 1", ss.state.Cursor)
	}
	if ss.state.Phase != qz.PhaseActive {
		t.Errorf("phase = %v, want active", ss.state.Phase)
	}
}

func TestQuizScreen_GoBackReshuffles(t *testing.T) {
	s, _ := testQuizScreen(5)

	// Answer and advance once.
	var scr screen.Screen = s
	scr, _ = scr.Update(keyPress('s'))
	ss := scr.(*QuizScreen)
	scr, _ = ss.Update(keyPress(' '))
	ss = scr.(*QuizScreen)

	scr, _ = ss.Update(keyPress('b'))
	ss = scr.(*QuizScreen)

	if ss.state.Cursor != 0 {
		t.Errorf("cursor = %d, want 0 after go back", ss.state.Cursor)
	}
	if ss.state.Phase != qz.PhaseActive {
		t.Errorf("phase = %v, want active after go back", ss.state.Phase)
	}
	if len(ss.choices.Choices) != len(ss.state.Pending.Choices) {
		t.Error("choice list out of sync with pending question")
	}
}

func TestQuizScreen_QuitConfirm(t *testing.T) {
	s, _ := testQuizScreen(5)

	var scr screen.Screen = s
	scr, _ = scr.Update(specialKey(tea.KeyEscape))
	ss := scr.(*QuizScreen)
	if !ss.showQuitConfirm {
		t.Error("expected quit confirmation dialog")
	}

	scr, _ = ss.Update(keyPress('n'))
	ss = scr.(*QuizScreen)
	if ss.showQuitConfirm {
		t.Error("expected quit confirmation to be dismissed")
	}
}

func TestQuizScreen_QuitConfirm_EndsRound(t *testing.T) {
	s, _ := testQuizScreen(5)

	var scr screen.Screen = s
	scr, _ = scr.Update(specialKey(tea.KeyEscape))
	ss := scr.(*QuizScreen)
	_, cmd := ss.Update(keyPress('y'))

	if cmd == nil {
		t.Fatal("expected a command after quit confirmation")
	}
}

func TestQuizScreen_CompleteRoundHandsOff(t *testing.T) {
	s, _ := testQuizScreen(5)

	var scr screen.Screen = s
	var cmd tea.Cmd
	for i := 0; i < 5; i++ {
		scr, _ = scr.Update(keyPress('s'))
		scr, cmd = scr.Update(keyPress(' '))
	}

	ss := scr.(*QuizScreen)
	if ss.state.Phase != qz.PhaseComplete {
		t.Errorf("phase = %v, want complete", ss.state.Phase)
	}
	if cmd == nil {
		t.Fatal("expected a summary hand-off command")
	}
}

func TestQuizScreen_KeyHints(t *testing.T) {
	s, _ := testQuizScreen(5)
	if len(s.KeyHints()) == 0 {
		t.Error("expected non-empty key hints")
	}
}

func indexOf(s *QuizScreen, label string) int {
	for i, c := range s.state.Pending.Choices {
		if c.Label == label {
			return i
		}
	}
	return 0
}
