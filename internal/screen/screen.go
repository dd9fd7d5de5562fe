package screen

import (
	tea "charm.land/bubbletea/v2"

	"github.com/WaverAndrew/marketing-quiz-app/internal/ui/layout"
)

// Screen defines the interface for all application screens.
type Screen interface {
	// Init returns an initial command when the screen is first created.
	Init() tea.Cmd

	// Update handles messages and returns updated screen + command.
	Update(msg tea.Msg) (Screen, tea.Cmd)

	// View renders the screen content (excluding header/footer).
	View(width, height int) string

	// Title returns the screen name for the header.
	Title() string
}

// KeyHintProvider is an optional interface that screens can implement
// to provide custom footer key hints.
type KeyHintProvider interface {
	KeyHints() []layout.KeyHint
}

// EscInterceptor is an optional interface for screens that consume the
// esc key themselves instead of the default pop-back navigation.
type EscInterceptor interface {
	InterceptEsc() bool
}

// StreakProvider is an optional interface for screens that have a live
// answer streak to show in the header.
type StreakProvider interface {
	Streak() int
}
