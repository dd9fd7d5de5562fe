package home

import (
	"context"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/WaverAndrew/marketing-quiz-app/internal/pool"
	"github.com/WaverAndrew/marketing-quiz-app/internal/router"
	"github.com/WaverAndrew/marketing-quiz-app/internal/screen"
	"github.com/WaverAndrew/marketing-quiz-app/internal/screens/setup"
	"github.com/WaverAndrew/marketing-quiz-app/internal/screens/topics"
	"github.com/WaverAndrew/marketing-quiz-app/internal/telemetry"
	"github.com/WaverAndrew/marketing-quiz-app/internal/ui/components"
	"github.com/WaverAndrew/marketing-quiz-app/internal/ui/layout"
	"github.com/WaverAndrew/marketing-quiz-app/internal/ui/theme"
)

// Deps carries the runtime configuration the home screen hands down to
// the screens it spawns.
type Deps struct {
	Source   string
	Sink     telemetry.Sink
	ClientID string
}

// poolLoadedMsg is sent when the one-time pool fetch finishes.
type poolLoadedMsg struct {
	Questions []pool.Question
	Err       error
}

// HomeScreen is the main menu of the application. The question pool is
// fetched once when the screen initializes; menu entries that need it
// stay disabled until it arrives.
type HomeScreen struct {
	deps      Deps
	menu      components.Menu
	questions []pool.Question
	loading   bool
	loadErr   error
}

var _ screen.Screen = (*HomeScreen)(nil)
var _ screen.KeyHintProvider = (*HomeScreen)(nil)

// New creates a new HomeScreen.
func New(deps Deps) *HomeScreen {
	h := &HomeScreen{
		deps:    deps,
		loading: true,
	}
	h.menu = components.NewMenu(h.menuItems())
	return h
}

func (h *HomeScreen) menuItems() []components.MenuItem {
	ready := len(h.questions) > 0

	return []components.MenuItem{
		{Label: "START QUIZ", Disabled: !ready, Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{
					Screen: setup.New(h.questions, h.deps.Sink, h.deps.ClientID),
				}
			}
		}},
		{Label: "TOPICS", Disabled: !ready, Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{
					Screen: topics.New(pool.Topics(h.questions)),
				}
			}
		}},
		{Label: "EXIT", Action: func() tea.Cmd {
			return tea.Quit
		}},
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return h.loadPool()
}

// loadPool fetches and parses the question pool asynchronously.
func (h *HomeScreen) loadPool() tea.Cmd {
	source := h.deps.Source
	return func() tea.Msg {
		questions, err := pool.Load(context.Background(), source)
		return poolLoadedMsg{Questions: questions, Err: err}
	}
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case poolLoadedMsg:
		h.loading = false
		h.loadErr = msg.Err
		h.questions = msg.Questions
		h.menu = components.NewMenu(h.menuItems())
		return h, nil

	case tea.KeyMsg:
		if h.loadErr != nil && msg.String() == "r" {
			h.loading = true
			h.loadErr = nil
			return h, h.loadPool()
		}
	}

	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	var sections []string

	compact := layout.IsCompactWidth(width) && layout.IsCompactHeight(height+layout.HeaderHeight+layout.FooterHeight)
	if !compact {
		sections = append(sections, renderBanner(width))
	}

	sections = append(sections, lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("Marketing exam practice, one round at a time"))

	switch {
	case h.loading:
		sections = append(sections, lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render("Loading question pool..."))

	case h.loadErr != nil:
		sections = append(sections,
			lipgloss.NewStyle().
				Width(width).
				Align(lipgloss.Center).
				Foreground(theme.Error).
				Render("Could not load the question pool: "+h.loadErr.Error()),
			lipgloss.NewStyle().
				Width(width).
				Align(lipgloss.Center).
				Foreground(theme.TextDim).
				Render("Press R to retry"))

	default:
		sections = append(sections, renderPoolStats(h.questions, width))
	}

	sections = append(sections,
		lipgloss.PlaceHorizontal(width, lipgloss.Center, h.menu.View()))

	content := strings.Join(sections, "\n\n")
	return lipgloss.PlaceVertical(height, lipgloss.Center, content)
}

func (h *HomeScreen) Title() string {
	return "Home"
}

func (h *HomeScreen) KeyHints() []layout.KeyHint {
	if h.loadErr != nil {
		return []layout.KeyHint{
			{Key: "R", Description: "Retry"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}
	return nil
}
