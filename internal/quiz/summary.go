package quiz

import "github.com/WaverAndrew/marketing-quiz-app/internal/pool"

// RoundSummary holds the data displayed on the summary screen.
type RoundSummary struct {
	Topic         string
	RoundLength   int
	TotalAnswered int
	TotalCorrect  int
	TotalSkipped  int
	Accuracy      float64
	FinalStreak   int
	BestStreak    int
	Mistakes      []pool.Question
}

// BuildSummary creates a RoundSummary from a finished (or abandoned) round.
func BuildSummary(state *RoundState) *RoundSummary {
	if state == nil {
		return &RoundSummary{}
	}

	var accuracy float64
	if state.TotalAnswered > 0 {
		accuracy = float64(state.TotalCorrect) / float64(state.TotalAnswered)
	}

	return &RoundSummary{
		Topic:         state.Config.Topic,
		RoundLength:   len(state.Ordered),
		TotalAnswered: state.TotalAnswered,
		TotalCorrect:  state.TotalCorrect,
		TotalSkipped:  state.TotalSkipped,
		Accuracy:      accuracy,
		FinalStreak:   state.Streak,
		BestStreak:    state.BestStreak,
		Mistakes:      state.Mistakes.Questions(),
	}
}
