package quiz

import (
	"testing"

	"github.com/WaverAndrew/marketing-quiz-app/internal/pool"
)

func startTestRound(t *testing.T, counts map[string]int, cfg RoundConfig) *RoundState {
	t.Helper()
	state := StartRound(makePool(counts), cfg, seededRand(99))
	if state == nil {
		t.Fatal("StartRound returned nil for a non-empty pool")
	}
	return state
}

func TestStartRound_EmptyPool(t *testing.T) {
	if state := StartRound(nil, RoundConfig{Topic: TopicAll, Size: 10}, seededRand(1)); state != nil {
		t.Error("expected nil state for empty pool")
	}
}

func TestStartRound_InitialState(t *testing.T) {
	state := startTestRound(t, map[string]int{"Topic_A": 8}, RoundConfig{Topic: "Topic_A", Size: 5})

	if state.Cursor != 0 {
		t.Errorf("Cursor = %d, want 0", state.Cursor)
	}
	if state.Streak != 0 {
		t.Errorf("Streak = %d, want 0", state.Streak)
	}
	if state.Phase != PhaseActive {
		t.Errorf("Phase = %v, want PhaseActive", state.Phase)
	}
	if state.Pending == nil {
		t.Fatal("expected a pending question at round start")
	}
	if state.Pending.ID != state.Ordered[0].ID {
		t.Errorf("Pending.ID = %s, want %s", state.Pending.ID, state.Ordered[0].ID)
	}
	if state.Mistakes.Len() != 0 {
		t.Errorf("Mistakes.Len = %d, want 0", state.Mistakes.Len())
	}
}

func TestSubmitAnswer_CorrectIncrementsStreak(t *testing.T) {
	state := startTestRound(t, map[string]int{"Topic_A": 5}, RoundConfig{Topic: "Topic_A", Size: 5})

	outcome := SubmitAnswer(state, state.Pending.CorrectLabel)
	if outcome == nil {
		t.Fatal("SubmitAnswer returned nil")
	}
	if !outcome.Correct {
		t.Error("expected a correct outcome")
	}
	if state.Streak != 1 || outcome.Streak != 1 {
		t.Errorf("streak = %d/%d, want 1", state.Streak, outcome.Streak)
	}
	if state.Phase != PhaseFeedback {
		t.Errorf("Phase = %v, want PhaseFeedback", state.Phase)
	}
}

func TestSubmitAnswer_CaseInsensitive(t *testing.T) {
	state := startTestRound(t, map[string]int{"Topic_A": 5}, RoundConfig{Topic: "Topic_A", Size: 5})

	outcome := SubmitAnswer(state, "a") // correct label is "A"
	if outcome == nil || !outcome.Correct {
		t.Error("expected lowercase submission to match uppercase label")
	}
}

func TestSubmitAnswer_IncorrectResetsStreakAndLogsMistake(t *testing.T) {
	state := startTestRound(t, map[string]int{"Topic_A": 5}, RoundConfig{Topic: "Topic_A", Size: 5})

	SubmitAnswer(state, "A")
	Advance(state)
	outcome := SubmitAnswer(state, "B") // correct label is always "A" in makePool

	if outcome == nil || outcome.Correct {
		t.Fatal("expected an incorrect outcome")
	}
	if state.Streak != 0 {
		t.Errorf("Streak = %d, want 0 after incorrect answer", state.Streak)
	}
	if state.BestStreak != 1 {
		t.Errorf("BestStreak = %d, want 1", state.BestStreak)
	}
	if state.Mistakes.Len() != 1 {
		t.Fatalf("Mistakes.Len = %d, want 1", state.Mistakes.Len())
	}
	if got := state.Mistakes.Questions()[0].ID; got != state.Ordered[1].ID {
		t.Errorf("logged mistake %s, want original question %s", got, state.Ordered[1].ID)
	}
}

func TestSubmitAnswer_DoubleSubmitRejected(t *testing.T) {
	state := startTestRound(t, map[string]int{"Topic_A": 5}, RoundConfig{Topic: "Topic_A", Size: 5})

	if SubmitAnswer(state, "A") == nil {
		t.Fatal("first submit rejected")
	}
	if SubmitAnswer(state, "B") != nil {
		t.Error("second submit before advance must be a no-op")
	}
	if state.Streak != 1 {
		t.Errorf("Streak = %d, want 1 (double submit must not double-count)", state.Streak)
	}
}

func TestSkip_LeavesStreakAndMistakes(t *testing.T) {
	state := startTestRound(t, map[string]int{"Topic_A": 5}, RoundConfig{Topic: "Topic_A", Size: 5})

	SubmitAnswer(state, "A")
	Advance(state)

	outcome := Skip(state)
	if outcome == nil || !outcome.Skipped {
		t.Fatal("expected a skipped outcome")
	}
	if outcome.CorrectLabel != "A" {
		t.Errorf("CorrectLabel = %q, want A (UI may reveal it)", outcome.CorrectLabel)
	}
	if state.Streak != 1 {
		t.Errorf("Streak = %d, want 1 (skip must not touch streak)", state.Streak)
	}
	if state.Mistakes.Len() != 0 {
		t.Errorf("Mistakes.Len = %d, want 0 after skip", state.Mistakes.Len())
	}
	if Skip(state) != nil {
		t.Error("skip after a latched outcome must be a no-op")
	}
}

func TestAdvance_ReachesCompleteExactlyAtEnd(t *testing.T) {
	state := startTestRound(t, map[string]int{"Topic_A": 3}, RoundConfig{Topic: "Topic_A", Size: 3})

	for i := 0; i < 2; i++ {
		SubmitAnswer(state, "A")
		Advance(state)
		if state.Phase == PhaseComplete {
			t.Fatalf("round complete after %d advances, want 3", i+1)
		}
	}

	SubmitAnswer(state, "A")
	Advance(state)
	if state.Phase != PhaseComplete {
		t.Fatal("expected PhaseComplete after advancing past the last question")
	}
	if state.Pending != nil {
		t.Error("Pending must be nil in the terminal state")
	}

	// Advancing past terminal stays terminal.
	Advance(state)
	if state.Phase != PhaseComplete || state.Pending != nil {
		t.Error("Advance past Complete must be a no-op")
	}
}

func TestGoBack_ReshufflesSameQuestion(t *testing.T) {
	state := startTestRound(t, map[string]int{"Topic_A": 5}, RoundConfig{Topic: "Topic_A", Size: 5})

	SubmitAnswer(state, "A")
	Advance(state)
	if state.Cursor != 1 {
		t.Fatalf("Cursor = %d, want 1", state.Cursor)
	}

	GoBack(state)
	if state.Cursor != 0 {
		t.Fatalf("Cursor = %d, want 0 after GoBack", state.Cursor)
	}
	if state.Pending.ID != state.Ordered[0].ID {
		t.Errorf("Pending.ID = %s, want %s", state.Pending.ID, state.Ordered[0].ID)
	}

	// Same choice content as a set.
	want := make(map[pool.Choice]bool)
	for _, c := range state.Ordered[0].Choices {
		want[c] = true
	}
	for _, c := range state.Pending.Choices {
		if !want[c] {
			t.Errorf("choice %v not in the original question", c)
		}
	}

	// GoBack then Advance without an intervening answer returns to the
	// exact same cursor.
	Advance(state)
	if state.Cursor != 1 {
		t.Errorf("Cursor = %d, want 1 after GoBack+Advance", state.Cursor)
	}
	if state.Phase != PhaseActive {
		t.Errorf("Phase = %v, want PhaseActive", state.Phase)
	}
}

func TestGoBack_InvalidCalls(t *testing.T) {
	state := startTestRound(t, map[string]int{"Topic_A": 5}, RoundConfig{Topic: "Topic_A", Size: 5})

	GoBack(state) // cursor 0
	if state.Cursor != 0 {
		t.Error("GoBack at cursor 0 must be a no-op")
	}

	SubmitAnswer(state, "A")
	Advance(state)
	SubmitAnswer(state, "A") // outcome pending display
	GoBack(state)
	if state.Cursor != 1 {
		t.Error("GoBack during feedback must be a no-op")
	}
}

func TestMistakes_DedupAcrossGoBackRevisits(t *testing.T) {
	state := startTestRound(t, map[string]int{"Topic_A": 5}, RoundConfig{Topic: "Topic_A", Size: 5})

	SubmitAnswer(state, "B") // wrong
	Advance(state)
	GoBack(state)
	SubmitAnswer(state, "C") // wrong again on the same question

	if state.Mistakes.Len() != 1 {
		t.Errorf("Mistakes.Len = %d, want 1 (dedup by id across revisits)", state.Mistakes.Len())
	}
}

func TestSubmitAnswer_NoPendingQuestion(t *testing.T) {
	state := startTestRound(t, map[string]int{"Topic_A": 1}, RoundConfig{Topic: "Topic_A", Size: 1})

	SubmitAnswer(state, "A")
	Advance(state) // complete

	if SubmitAnswer(state, "A") != nil {
		t.Error("submit with no pending question must be a no-op")
	}
	if Skip(state) != nil {
		t.Error("skip with no pending question must be a no-op")
	}
}

func TestScenario_CorrectIncorrectSkip(t *testing.T) {
	state := startTestRound(t, map[string]int{"Topic_A": 3}, RoundConfig{Topic: "Topic_A", Size: 3})

	o1 := SubmitAnswer(state, "A")
	if !o1.Correct || o1.Streak != 1 {
		t.Fatalf("q1: outcome = %+v, want correct with streak 1", o1)
	}
	Advance(state)

	o2 := SubmitAnswer(state, "B")
	if o2.Correct || o2.Streak != 0 {
		t.Fatalf("q2: outcome = %+v, want incorrect with streak 0", o2)
	}
	Advance(state)

	o3 := Skip(state)
	if !o3.Skipped || o3.Streak != 0 {
		t.Fatalf("q3: outcome = %+v, want skipped with streak 0", o3)
	}
	Advance(state)

	if state.Phase != PhaseComplete {
		t.Error("expected round to be complete")
	}

	summary := BuildSummary(state)
	if summary.FinalStreak != 0 {
		t.Errorf("FinalStreak = %d, want 0", summary.FinalStreak)
	}
	if summary.BestStreak != 1 {
		t.Errorf("BestStreak = %d, want 1", summary.BestStreak)
	}
	if len(summary.Mistakes) != 1 {
		t.Errorf("Mistakes = %d, want 1", len(summary.Mistakes))
	}
	if summary.TotalAnswered != 2 || summary.TotalCorrect != 1 || summary.TotalSkipped != 1 {
		t.Errorf("counters = %d/%d/%d, want 2/1/1",
			summary.TotalAnswered, summary.TotalCorrect, summary.TotalSkipped)
	}
}

func TestStartRound_MalformedChoicesPassThrough(t *testing.T) {
	questions := []pool.Question{{
		ID:           "1",
		Text:         "broken record",
		Topic:        pool.UnknownTopic,
		CorrectLabel: "A",
	}}

	state := StartRound(questions, RoundConfig{Topic: TopicAll, Size: 5}, seededRand(1))
	if state == nil {
		t.Fatal("StartRound returned nil")
	}
	if state.Pending == nil || len(state.Pending.Choices) != 0 {
		t.Error("expected the malformed question to present with its nil choices")
	}
}
