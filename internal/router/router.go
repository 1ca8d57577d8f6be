// Package router keeps the stack of screens the player has navigated
// through: home at the bottom, the quiz or a results page on top.
package router

import (
	"github.com/abhisek/quickquiz/internal/screen"

	tea "charm.land/bubbletea/v2"
)

// PushScreenMsg opens Screen above the current one, e.g. home starting a quiz.
type PushScreenMsg struct {
	Screen screen.Screen
}

// PopScreenMsg closes the top screen and returns to the one below.
type PopScreenMsg struct{}

// ReplaceScreenMsg swaps the top screen for Screen at the same depth, as
// when a finished quiz turns into its results.
type ReplaceScreenMsg struct {
	Screen screen.Screen
}

// Router owns the screen stack. Only the top screen receives messages.
type Router struct {
	stack []screen.Screen
}

// New returns a Router whose bottom screen is initial. It never pops
// below it.
func New(initial screen.Screen) *Router {
	return &Router{
		stack: []screen.Screen{initial},
	}
}

// Push opens s and returns its Init command.
func (r *Router) Push(s screen.Screen) tea.Cmd {
	r.stack = append(r.stack, s)
	return s.Init()
}

// Pop closes the top screen unless it is the last one.
func (r *Router) Pop() tea.Cmd {
	if len(r.stack) <= 1 {
		return nil
	}
	r.stack = r.stack[:len(r.stack)-1]
	return nil
}

// Replace puts s in place of the top screen and returns its Init command.
func (r *Router) Replace(s screen.Screen) tea.Cmd {
	if len(r.stack) == 0 {
		return r.Push(s)
	}
	r.stack[len(r.stack)-1] = s
	return s.Init()
}

// Active is the screen currently shown, or nil for an empty stack.
func (r *Router) Active() screen.Screen {
	if len(r.stack) == 0 {
		return nil
	}
	return r.stack[len(r.stack)-1]
}

// Depth is how many screens are open.
func (r *Router) Depth() int {
	return len(r.stack)
}

// IsNavigation reports whether msg changes the screen stack.
func IsNavigation(msg tea.Msg) bool {
	switch msg.(type) {
	case PushScreenMsg, PopScreenMsg, ReplaceScreenMsg:
		return true
	}
	return false
}

// Update applies navigation messages to the stack and hands everything
// else to the active screen.
func (r *Router) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case PushScreenMsg:
		return r.Push(msg.Screen)
	case PopScreenMsg:
		return r.Pop()
	case ReplaceScreenMsg:
		return r.Replace(msg.Screen)
	}

	active := r.Active()
	if active == nil {
		return nil
	}

	updated, cmd := active.Update(msg)
	r.stack[len(r.stack)-1] = updated
	return cmd
}

// View draws the active screen into width x height.
func (r *Router) View(width, height int) string {
	active := r.Active()
	if active == nil {
		return ""
	}
	return active.View(width, height)
}

// PushCmd returns a command that pushes s.
func PushCmd(s screen.Screen) tea.Cmd {
	return func() tea.Msg { return PushScreenMsg{Screen: s} }
}

// PopCmd returns a command that pops the active screen.
func PopCmd() tea.Cmd {
	return func() tea.Msg { return PopScreenMsg{} }
}

// ReplaceCmd returns a command that replaces the active screen with s.
func ReplaceCmd(s screen.Screen) tea.Cmd {
	return func() tea.Msg { return ReplaceScreenMsg{Screen: s} }
}
