// Package setup collects the round configuration: a topic and a round
// size within the allowed bounds.
package setup

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/WaverAndrew/marketing-quiz-app/internal/pool"
	"github.com/WaverAndrew/marketing-quiz-app/internal/quiz"
	"github.com/WaverAndrew/marketing-quiz-app/internal/router"
	"github.com/WaverAndrew/marketing-quiz-app/internal/screen"
	quizscreen "github.com/WaverAndrew/marketing-quiz-app/internal/screens/quiz"
	"github.com/WaverAndrew/marketing-quiz-app/internal/telemetry"
	"github.com/WaverAndrew/marketing-quiz-app/internal/ui/components"
	"github.com/WaverAndrew/marketing-quiz-app/internal/ui/layout"
	"github.com/WaverAndrew/marketing-quiz-app/internal/ui/theme"
)

type step int

const (
	stepTopic step = iota
	stepSize
)

// SetupScreen walks through topic and size selection, then replaces
// itself with the running round.
type SetupScreen struct {
	questions []pool.Question
	sink      telemetry.Sink
	clientID  string

	step      step
	topicMenu components.Menu
	topic     string
	sizeInput components.TextInput
	sizeErr   string
}

var _ screen.Screen = (*SetupScreen)(nil)
var _ screen.KeyHintProvider = (*SetupScreen)(nil)
var _ screen.EscInterceptor = (*SetupScreen)(nil)

// New creates a new SetupScreen over the loaded pool.
func New(questions []pool.Question, sink telemetry.Sink, clientID string) *SetupScreen {
	s := &SetupScreen{
		questions: questions,
		sink:      sink,
		clientID:  clientID,
		sizeInput: components.NewTextInput(fmt.Sprintf("%d", quiz.DefaultRoundSize), true, 3),
	}

	items := []components.MenuItem{
		{
			Label:  "All topics",
			Detail: fmt.Sprintf("%d questions", len(questions)),
			Action: s.pickTopic(quiz.TopicAll),
		},
	}
	for _, tc := range pool.Topics(questions) {
		items = append(items, components.MenuItem{
			Label:  tc.Topic,
			Detail: fmt.Sprintf("%d questions", tc.Count),
			Action: s.pickTopic(tc.Topic),
		})
	}
	s.topicMenu = components.NewMenu(items)
	return s
}

func (s *SetupScreen) pickTopic(topic string) func() tea.Cmd {
	return func() tea.Cmd {
		s.topic = topic
		s.step = stepSize
		return s.sizeInput.Init()
	}
}

func (s *SetupScreen) Init() tea.Cmd {
	return nil
}

func (s *SetupScreen) Title() string {
	return "New Round"
}

// InterceptEsc returns true on the size step so esc steps back to the
// topic list instead of leaving setup.
func (s *SetupScreen) InterceptEsc() bool {
	return s.step == stepSize
}

func (s *SetupScreen) KeyHints() []layout.KeyHint {
	if s.step == stepSize {
		return []layout.KeyHint{
			{Key: "Enter", Description: "Start"},
			{Key: "Esc", Description: "Topic"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}
	return nil
}

func (s *SetupScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if s.step == stepTopic {
		var cmd tea.Cmd
		s.topicMenu, cmd = s.topicMenu.Update(msg)
		return s, cmd
	}

	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "esc":
			s.step = stepTopic
			s.sizeErr = ""
			s.sizeInput.Clear()
			return s, nil
		case "enter":
			return s.startRound()
		}
	}

	var cmd tea.Cmd
	s.sizeInput, cmd = s.sizeInput.Update(msg)
	return s, cmd
}

// startRound validates the size and swaps in the round screen.
func (s *SetupScreen) startRound() (screen.Screen, tea.Cmd) {
	size := quiz.DefaultRoundSize
	if s.sizeInput.Value() != "" {
		n, err := s.sizeInput.NumericValue()
		if err != nil {
			s.sizeErr = "Enter a number"
			return s, nil
		}
		if n < quiz.MinRoundSize || n > quiz.MaxRoundSize {
			s.sizeErr = fmt.Sprintf("Size must be between %d and %d",
				quiz.MinRoundSize, quiz.MaxRoundSize)
			return s, nil
		}
		size = n
	}

	cfg := quiz.RoundConfig{Topic: s.topic, Size: size}
	next := quizscreen.New(s.questions, cfg, s.sink, s.clientID)
	return s, func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: next}
	}
}

func (s *SetupScreen) View(width, height int) string {
	var b strings.Builder

	if s.step == stepTopic {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Primary).
			Bold(true).
			Render("Pick a topic"))
		b.WriteString("\n\n")
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, s.topicMenu.View()))
		return b.String()
	}

	topicLabel := s.topic
	if topicLabel == quiz.TopicAll {
		topicLabel = "All topics"
	}

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Bold(true).
		Render("How many questions?"))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("Topic: %s", topicLabel)))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		"Size: "+s.sizeInput.View()))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("%d-%d, blank for %d",
			quiz.MinRoundSize, quiz.MaxRoundSize, quiz.DefaultRoundSize)))

	if s.sizeErr != "" {
		b.WriteString("\n\n")
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Error).
			Render(s.sizeErr))
	}

	return b.String()
}
