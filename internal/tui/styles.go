package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/Faultbox/cubik/internal/cube"
)

// Styles
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205"))

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	turnStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39"))

	solvedStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("82"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
)

// stickerWidth is the number of cells per sticker.
const stickerWidth = 2

// sticker renders one facelet as a colored block with its letter, so the
// net stays readable on terminals without color.
func sticker(c cube.Color) string {
	return lipgloss.NewStyle().
		Background(lipgloss.Color(c.Hex())).
		Foreground(lipgloss.Color("#000000")).
		Width(stickerWidth).
		Render(c.Letter())
}

// blank is the filler beside U and D in the unfolded net.
func blank() string {
	return lipgloss.NewStyle().Width(3 * stickerWidth).Render("")
}
