package components

import (
	"fmt"
	"strings"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/quickquiz/internal/ui/keys"
	"github.com/abhisek/quickquiz/internal/ui/theme"
)

// MultiChoice renders the options of one question. It only tracks the
// cursor; which option is chosen and whether the answer is revealed come
// from the caller.
type MultiChoice struct {
	Options []string
	Cursor  int

	// Chosen is the highlighted answer, -1 for none.
	Chosen   int
	Revealed bool
	Correct  int
}

// NewMultiChoice creates a selector with nothing chosen.
func NewMultiChoice(options []string, correct int) MultiChoice {
	return MultiChoice{
		Options: options,
		Chosen:  -1,
		Correct: correct,
	}
}

// Move interprets navigation keys. It returns the option the key points
// at, or false when the key is not a navigation key or the answer is
// already revealed.
func (m MultiChoice) Move(msg tea.KeyPressMsg) (int, bool) {
	if m.Revealed || len(m.Options) == 0 {
		return 0, false
	}
	switch {
	case key.Matches(msg, keys.Up):
		if m.Chosen < 0 {
			return m.Cursor, true
		}
		return max(m.Cursor-1, 0), true
	case key.Matches(msg, keys.Down):
		if m.Chosen < 0 {
			return m.Cursor, true
		}
		return min(m.Cursor+1, len(m.Options)-1), true
	}
	if idx, ok := keys.OptionIndex(msg.String()); ok && idx < len(m.Options) {
		return idx, true
	}
	return 0, false
}

// View renders the options as numbered lines.
func (m MultiChoice) View(width int) string {
	lines := make([]string, 0, len(m.Options))
	for i, opt := range m.Options {
		marker := "  "
		if !m.Revealed && i == m.Cursor && m.Chosen >= 0 {
			marker = "▸ "
		}
		line := fmt.Sprintf("%s%d)  %s", marker, i+1, opt)

		var style lipgloss.Style
		switch {
		case m.Revealed && i == m.Correct:
			style = theme.Correct
			line += "  ✓"
		case m.Revealed && i == m.Chosen:
			style = theme.Incorrect
			line += "  ✗"
		case m.Revealed:
			style = theme.Dimmed
		case i == m.Chosen:
			style = theme.Selected
		default:
			style = theme.Unselected
		}
		lines = append(lines, style.Width(width).Render(line))
	}
	return strings.Join(lines, "\n")
}
