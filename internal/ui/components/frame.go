package components

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/quickquiz/internal/ui/theme"
)

// ContentWidth returns the inner width shared by the boxes on a screen so
// they line up.
func ContentWidth(frameWidth int) int {
	return min(max(frameWidth-6, 20), 64)
}

// Panel wraps content in a double border centered in width x height.
func Panel(content string, width, height int) string {
	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.Primary).
		Width(max(width-2, 0)).
		Height(max(height-2, 0)).
		Align(lipgloss.Center, lipgloss.Center).
		Render(content)
}

// Card wraps content in a rounded box cw columns wide.
func Card(content string, cw int) string {
	return theme.Card.
		Width(cw).
		Render(content)
}
