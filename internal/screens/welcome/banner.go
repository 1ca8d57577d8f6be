package welcome

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/quickquiz/internal/ui/theme"
)

const bannerArt = `
  ██████╗ ██╗   ██╗██╗ ██████╗██╗  ██╗ ██████╗ ██╗   ██╗██╗███████╗
 ██╔═══██╗██║   ██║██║██╔════╝██║ ██╔╝██╔═══██╗██║   ██║██║╚══███╔╝
 ██║   ██║██║   ██║██║██║     █████╔╝ ██║   ██║██║   ██║██║  ███╔╝
 ██║▄▄ ██║██║   ██║██║██║     ██╔═██╗ ██║▄▄ ██║██║   ██║██║ ███╔╝
 ╚██████╔╝╚██████╔╝██║╚██████╗██║  ██╗╚██████╔╝╚██████╔╝██║███████╗
  ╚══▀▀═╝  ╚═════╝ ╚═╝ ╚═════╝╚═╝  ╚═╝ ╚══▀▀═╝  ╚═════╝ ╚═╝╚══════╝`

const bannerCompact = "Q U I C K Q U I Z"

// bannerMinWidth is the narrowest terminal that fits the block letters.
const bannerMinWidth = 70

// RenderBanner returns the QUICKQUIZ banner styled in the primary color,
// falling back to spaced letters on narrow terminals.
func RenderBanner(width int) string {
	style := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true)

	if width < bannerMinWidth {
		return style.Render(bannerCompact)
	}
	return style.Render(bannerArt)
}
