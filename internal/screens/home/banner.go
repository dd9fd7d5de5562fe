package home

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/WaverAndrew/marketing-quiz-app/internal/pool"
	"github.com/WaverAndrew/marketing-quiz-app/internal/ui/theme"
)

var bannerLines = []string{
	`╔╦╗╦╔═╔╦╗  ╔═╗ ╦ ╦╦╔═╗`,
	`║║║╠╩╗ ║   ║═╬╗║ ║║╔═╝`,
	`╩ ╩╩ ╩ ╩   ╚═╝╚╚═╝╩╚═╝`,
}

// renderBanner renders the block-letter title, centered.
func renderBanner(width int) string {
	banner := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true).
		Render(strings.Join(bannerLines, "\n"))
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, banner)
}

// renderPoolStats shows how much material the loaded pool carries.
func renderPoolStats(questions []pool.Question, width int) string {
	topicCount := len(pool.Topics(questions))
	stats := fmt.Sprintf("%d questions across %d topics", len(questions), topicCount)
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Render(stats)
}
