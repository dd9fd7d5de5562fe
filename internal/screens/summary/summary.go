package summary

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	qz "github.com/WaverAndrew/marketing-quiz-app/internal/quiz"
	reviewlog "github.com/WaverAndrew/marketing-quiz-app/internal/review"
	"github.com/WaverAndrew/marketing-quiz-app/internal/router"
	"github.com/WaverAndrew/marketing-quiz-app/internal/screen"
	"github.com/WaverAndrew/marketing-quiz-app/internal/screens/review"
	"github.com/WaverAndrew/marketing-quiz-app/internal/ui/layout"
	"github.com/WaverAndrew/marketing-quiz-app/internal/ui/theme"
)

// SummaryScreen displays the round summary.
type SummaryScreen struct {
	summary *qz.RoundSummary
	log     *reviewlog.Log
}

var _ screen.Screen = (*SummaryScreen)(nil)
var _ screen.KeyHintProvider = (*SummaryScreen)(nil)

// New creates a new SummaryScreen.
func New(summary *qz.RoundSummary, log *reviewlog.Log) *SummaryScreen {
	return &SummaryScreen{summary: summary, log: log}
}

func (s *SummaryScreen) Init() tea.Cmd {
	return nil
}

func (s *SummaryScreen) Title() string {
	return "Round Summary"
}

func (s *SummaryScreen) KeyHints() []layout.KeyHint {
	hints := []layout.KeyHint{
		{Key: "Enter", Description: "Home"},
	}
	if s.log != nil && s.log.Len() > 0 {
		hints = append(hints, layout.KeyHint{Key: "M", Description: "Review mistakes"})
	}
	return hints
}

func (s *SummaryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	switch kmsg.String() {
	case "enter", "esc":
		return s, func() tea.Msg { return router.PopToRootMsg{} }
	case "m", "M":
		if s.log != nil && s.log.Len() > 0 {
			return s, func() tea.Msg {
				return router.PushScreenMsg{Screen: review.New(s.log)}
			}
		}
	}
	return s, nil
}

func (s *SummaryScreen) View(width, height int) string {
	sum := s.summary
	if sum == nil {
		return ""
	}

	var b strings.Builder

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Bold(true).
		Render("Round complete!"))
	b.WriteString("\n\n")

	topicLabel := sum.Topic
	if topicLabel == qz.TopicAll {
		topicLabel = "All topics"
	}
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("%s · %d questions", topicLabel, sum.RoundLength)))
	b.WriteString("\n\n")

	accuracy := fmt.Sprintf("%.0f%%", sum.Accuracy*100)
	statsLine := fmt.Sprintf("Answered: %d        Correct: %d        Skipped: %d        Accuracy: %s",
		sum.TotalAnswered, sum.TotalCorrect, sum.TotalSkipped, accuracy)
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Render(statsLine))
	b.WriteString("\n\n")

	streakLine := fmt.Sprintf("Best streak: %d        Final streak: %d",
		sum.BestStreak, sum.FinalStreak)
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Accent).
		Render(streakLine))
	b.WriteString("\n\n")

	divider := lipgloss.NewStyle().Foreground(theme.Border).Render(
		strings.Repeat("─", min(width-8, 60)))
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, divider))
	b.WriteString("\n\n")

	if len(sum.Mistakes) == 0 {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Success).
			Render("No mistakes this round."))
	} else {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Text).
			Render(fmt.Sprintf("%d question(s) to review — press M", len(sum.Mistakes))))
	}

	return b.String()
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
