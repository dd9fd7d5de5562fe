package components

import (
	"fmt"

	"charm.land/lipgloss/v2"

	"github.com/WaverAndrew/marketing-quiz-app/internal/pool"
	"github.com/WaverAndrew/marketing-quiz-app/internal/ui/theme"
)

// ChoiceList renders the answer choices of one question. Before the
// outcome is revealed it highlights the cursor; afterwards it colors the
// correct choice green and a wrong pick red.
type ChoiceList struct {
	Choices      []pool.Choice
	Selected     int
	Revealed     bool
	CorrectLabel string
	ChosenLabel  string
}

// NewChoiceList creates a choice list with the cursor on the first entry.
func NewChoiceList(choices []pool.Choice) ChoiceList {
	return ChoiceList{Choices: choices}
}

// CursorUp moves the cursor up one entry.
func (c *ChoiceList) CursorUp() {
	if c.Revealed {
		return
	}
	if c.Selected > 0 {
		c.Selected--
	}
}

// CursorDown moves the cursor down one entry.
func (c *ChoiceList) CursorDown() {
	if c.Revealed {
		return
	}
	if c.Selected < len(c.Choices)-1 {
		c.Selected++
	}
}

// SelectedLabel returns the label under the cursor, or "" for an empty list.
func (c ChoiceList) SelectedLabel() string {
	if c.Selected < 0 || c.Selected >= len(c.Choices) {
		return ""
	}
	return c.Choices[c.Selected].Label
}

// Reveal locks the list and marks the correct and chosen labels for
// feedback rendering. chosenLabel is empty when the question was skipped.
func (c *ChoiceList) Reveal(correctLabel, chosenLabel string) {
	c.Revealed = true
	c.CorrectLabel = correctLabel
	c.ChosenLabel = chosenLabel
}

// View renders the choice list.
func (c ChoiceList) View() string {
	var s string
	for i, choice := range c.Choices {
		prefix := "  "
		if i == c.Selected && !c.Revealed {
			prefix = "▸ "
		}

		line := fmt.Sprintf("%s%s)  %s", prefix, choice.Label, choice.Text)

		if c.Revealed {
			switch choice.Label {
			case c.CorrectLabel:
				s += theme.Correct.Render(line) + "\n"
			case c.ChosenLabel:
				s += theme.Incorrect.Render(line) + "\n"
			default:
				s += lipgloss.NewStyle().Foreground(theme.TextDim).Render(line) + "\n"
			}
		} else {
			if i == c.Selected {
				s += theme.Selected.Render(line) + "\n"
			} else {
				s += theme.Unselected.Render(line) + "\n"
			}
		}
	}
	return s
}
