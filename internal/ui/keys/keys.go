// Package keys holds the key bindings shared by every screen.
package keys

import (
	"charm.land/bubbles/v2/key"

	"github.com/abhisek/quickquiz/internal/ui/layout"
)

var (
	Up = key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("↑/k", "Up"),
	)
	Down = key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("↓/j", "Down"),
	)
	Enter = key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("Enter", "Select"),
	)
	Back = key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("Esc", "Back"),
	)
	Quit = key.NewBinding(
		key.WithKeys("ctrl+c"),
		key.WithHelp("Ctrl+C", "Quit"),
	)
	Skip = key.NewBinding(
		key.WithKeys("s"),
		key.WithHelp("S", "Skip"),
	)
	Yes = key.NewBinding(
		key.WithKeys("y", "Y"),
		key.WithHelp("Y", "Yes"),
	)
	No = key.NewBinding(
		key.WithKeys("n", "N", "esc"),
		key.WithHelp("N", "No"),
	)
	Toggle = key.NewBinding(
		key.WithKeys("enter", "space"),
		key.WithHelp("Space", "Toggle"),
	)
	Retake = key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("R", "Retake"),
	)
	Reset = key.NewBinding(
		key.WithKeys("x"),
		key.WithHelp("X", "Reset"),
	)
)

// OptionIndex maps the digit keys 1-9 to a zero-based option index.
func OptionIndex(k string) (int, bool) {
	if len(k) != 1 || k[0] < '1' || k[0] > '9' {
		return 0, false
	}
	return int(k[0] - '1'), true
}

// Hint converts a binding to a footer hint, with an optional description
// override.
func Hint(b key.Binding, desc ...string) layout.KeyHint {
	h := b.Help()
	d := h.Desc
	if len(desc) > 0 {
		d = desc[0]
	}
	return layout.KeyHint{Key: h.Key, Description: d}
}
