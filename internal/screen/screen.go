// Package screen defines what the router stacks.
package screen

import (
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/quickquiz/internal/ui/layout"
)

// Screen defines the interface for all application screens.
type Screen interface {
	// Init returns an initial command when the screen becomes active.
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

// BackHandler is implemented by screens that handle Esc themselves
// instead of letting the app pop them.
type BackHandler interface {
	HandlesBack() bool
}

// WarningMsg carries a non-fatal error, such as a failed statistics
// write, up to the app so it can be shown without leaving the screen.
type WarningMsg struct {
	Err error
}

// Warn returns a command that reports err as a warning. It returns nil
// for a nil error.
func Warn(err error) tea.Cmd {
	if err == nil {
		return nil
	}
	return func() tea.Msg { return WarningMsg{Err: err} }
}
