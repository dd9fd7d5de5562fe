package quiz

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	qz "github.com/WaverAndrew/marketing-quiz-app/internal/quiz"
	"github.com/WaverAndrew/marketing-quiz-app/internal/ui/components"
	"github.com/WaverAndrew/marketing-quiz-app/internal/ui/theme"
)

func (s *QuizScreen) View(width, height int) string {
	if s.state == nil {
		return lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Error).
			Render("\n\n\n  No questions available.\n\n  Press any key to go back.")
	}
	if s.showQuitConfirm {
		return renderQuitConfirm(width)
	}
	return s.renderQuestion(width, height)
}

func (s *QuizScreen) renderQuestion(width, height int) string {
	state := s.state
	q := state.Pending
	if q == nil {
		return ""
	}

	var b strings.Builder

	topicLabel := state.Config.Topic
	if topicLabel == qz.TopicAll {
		topicLabel = "All topics"
	}

	infoLeft := lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Render(fmt.Sprintf("  %s", topicLabel))

	infoRight := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("Q %d/%d  %s %d",
			state.Cursor+1,
			len(state.Ordered),
			lipgloss.NewStyle().Foreground(theme.Success).Render("✓"),
			state.TotalCorrect,
		))

	infoLine := infoLeft
	rightPad := width - lipgloss.Width(infoLeft) - lipgloss.Width(infoRight) - 4
	if rightPad > 0 {
		infoLine += strings.Repeat(" ", rightPad) + infoRight
	}

	b.WriteString(infoLine)
	b.WriteString("\n")

	progress := components.NewProgressBar("",
		float64(state.Cursor)/float64(len(state.Ordered)), false, width-4)
	b.WriteString("  " + progress.View())
	b.WriteString("\n\n")

	questionStyle := lipgloss.NewStyle().
		Width(min(width-8, 72)).
		Foreground(theme.Text).
		Bold(true)
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		questionStyle.Render(q.Text)))
	b.WriteString("\n\n")

	if len(q.Choices) == 0 {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render("This question has no answer choices. Press S to skip."))
	} else {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, s.choices.View()))
	}

	if state.Phase == qz.PhaseFeedback && state.LastOutcome != nil {
		b.WriteString("\n")
		b.WriteString(renderVerdict(state.LastOutcome, width))
	}

	return b.String()
}

// renderVerdict renders the outcome line under the revealed choices.
func renderVerdict(outcome *qz.Outcome, width int) string {
	var verdict string
	switch {
	case outcome.Skipped:
		verdict = lipgloss.NewStyle().
			Foreground(theme.Accent).
			Bold(true).
			Render(fmt.Sprintf("Skipped — the answer was %s", outcome.CorrectLabel))
	case outcome.Correct:
		verdict = theme.Correct.Render(fmt.Sprintf("Correct!  Streak: %d", outcome.Streak))
	default:
		verdict = theme.Incorrect.Render(fmt.Sprintf("Not quite — the answer was %s", outcome.CorrectLabel))
	}

	return lipgloss.PlaceHorizontal(width, lipgloss.Center, verdict)
}

// renderQuitConfirm renders the end-round confirmation dialog.
func renderQuitConfirm(width int) string {
	var b strings.Builder
	b.WriteString("\n\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Bold(true).
		Render("End this round early?"))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("You will see the summary for what you answered so far."))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Success).
		Render("[Y] Yes, end round"))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Render("[N] No, keep going"))

	return b.String()
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
