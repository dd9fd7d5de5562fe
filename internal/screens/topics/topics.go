// Package topics lists the distinct topics in the loaded pool together
// with their question counts.
package topics

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/WaverAndrew/marketing-quiz-app/internal/pool"
	"github.com/WaverAndrew/marketing-quiz-app/internal/screen"
	"github.com/WaverAndrew/marketing-quiz-app/internal/ui/theme"
)

// TopicsScreen shows the topic inventory.
type TopicsScreen struct {
	topics []pool.TopicCount
	offset int
}

var _ screen.Screen = (*TopicsScreen)(nil)

// New creates a new TopicsScreen.
func New(topics []pool.TopicCount) *TopicsScreen {
	return &TopicsScreen{topics: topics}
}

func (t *TopicsScreen) Init() tea.Cmd {
	return nil
}

func (t *TopicsScreen) Title() string {
	return "Topics"
}

func (t *TopicsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return t, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if t.offset > 0 {
			t.offset--
		}
	case "down", "j":
		if t.offset < len(t.topics)-1 {
			t.offset++
		}
	}
	return t, nil
}

func (t *TopicsScreen) View(width, height int) string {
	var b strings.Builder

	total := 0
	for _, tc := range t.topics {
		total += tc.Count
	}

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Bold(true).
		Render(fmt.Sprintf("%d topics, %d questions", len(t.topics), total)))
	b.WriteString("\n\n")

	// Leave room for the heading above.
	visible := height - 3
	if visible < 1 {
		visible = 1
	}

	end := t.offset + visible
	if end > len(t.topics) {
		end = len(t.topics)
	}

	var rows strings.Builder
	for _, tc := range t.topics[t.offset:end] {
		name := lipgloss.NewStyle().Foreground(theme.Text).
			Render(fmt.Sprintf("%-50s", truncate(tc.Topic, 48)))
		count := lipgloss.NewStyle().Foreground(theme.TextDim).
			Render(fmt.Sprintf("%4d", tc.Count))
		rows.WriteString(name + " " + count + "\n")
	}

	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, rows.String()))
	return b.String()
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}
