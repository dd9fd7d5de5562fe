// Package review is the screen for stepping through the questions
// missed during the round. Each question is shown with freshly shuffled
// choices and the correct answer highlighted.
package review

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/WaverAndrew/marketing-quiz-app/internal/pool"
	reviewlog "github.com/WaverAndrew/marketing-quiz-app/internal/review"
	"github.com/WaverAndrew/marketing-quiz-app/internal/screen"
	"github.com/WaverAndrew/marketing-quiz-app/internal/ui/components"
	"github.com/WaverAndrew/marketing-quiz-app/internal/ui/layout"
	"github.com/WaverAndrew/marketing-quiz-app/internal/ui/theme"
)

// ReviewScreen pages through the mistake log one question at a time.
type ReviewScreen struct {
	log     *reviewlog.Log
	index   int
	current *pool.Question
	choices components.ChoiceList
}

var _ screen.Screen = (*ReviewScreen)(nil)
var _ screen.KeyHintProvider = (*ReviewScreen)(nil)

// New creates a ReviewScreen over the round's mistake log.
func New(log *reviewlog.Log) *ReviewScreen {
	r := &ReviewScreen{log: log}
	r.present()
	return r
}

// present installs the review copy at the current index with the
// correct choice revealed.
func (r *ReviewScreen) present() {
	if r.log == nil {
		r.current = nil
		r.choices = components.NewChoiceList(nil)
		return
	}
	q, ok := r.log.ReviewCopy(r.index)
	if !ok {
		r.current = nil
		r.choices = components.NewChoiceList(nil)
		return
	}
	r.current = &q
	r.choices = components.NewChoiceList(q.Choices)
	r.choices.Reveal(q.CorrectLabel, "")
}

func (r *ReviewScreen) Init() tea.Cmd {
	return nil
}

func (r *ReviewScreen) Title() string {
	return "Review Mistakes"
}

func (r *ReviewScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "←→", Description: "Question"},
		{Key: "Esc", Description: "Back"},
	}
}

func (r *ReviewScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return r, nil
	}

	switch kmsg.String() {
	case "left", "h", "up", "k":
		if r.index > 0 {
			r.index--
			r.present()
		}
	case "right", "l", "down", "j":
		if r.index < r.log.Len()-1 {
			r.index++
			r.present()
		}
	}
	return r, nil
}

func (r *ReviewScreen) View(width, height int) string {
	if r.log == nil || r.log.Len() == 0 {
		return lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render("\n\n  Nothing to review.")
	}

	if r.current == nil {
		return ""
	}
	q := r.current

	var b strings.Builder

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("Mistake %d of %d · %s", r.index+1, r.log.Len(), q.Topic)))
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
			Render(fmt.Sprintf("Correct answer: %s", q.CorrectLabel)))
	} else {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, r.choices.View()))
	}

	return b.String()
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
