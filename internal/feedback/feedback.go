// Package feedback turns answer events into terminal effects: a bell when
// sound is on and a short border pulse when vibration is on.
package feedback

import (
	"io"
	"time"

	tea "charm.land/bubbletea/v2"
)

// Kind is the strength of a feedback event.
type Kind int

const (
	Light Kind = iota
	Medium
	Success
	Error
)

func (k Kind) String() string {
	switch k {
	case Light:
		return "light"
	case Medium:
		return "medium"
	case Success:
		return "success"
	case Error:
		return "error"
	default:
		return "unknown"
	}
}

// Duration is how long the pulse for k stays visible.
func (k Kind) Duration() time.Duration {
	switch k {
	case Medium:
		return 100 * time.Millisecond
	case Success:
		return 150 * time.Millisecond
	case Error:
		return 200 * time.Millisecond
	default:
		return 50 * time.Millisecond
	}
}

// rings reports whether k is loud enough for the bell.
func (k Kind) rings() bool {
	return k == Success || k == Error
}

// PulseDoneMsg ends the pulse started with the same sequence number.
type PulseDoneMsg struct {
	Seq int
}

// Player decides which effects a feedback event produces.
type Player struct {
	Bell      io.Writer
	Sound     bool
	Vibration bool
}

// Play returns whether a pulse should be shown and the command that ends
// it and rings the bell. seq identifies the pulse so a stale PulseDoneMsg
// can be ignored.
func (p Player) Play(k Kind, seq int) (bool, tea.Cmd) {
	var cmds []tea.Cmd
	if p.Sound && p.Bell != nil && k.rings() {
		bell := p.Bell
		cmds = append(cmds, func() tea.Msg {
			_, _ = bell.Write([]byte{'\a'})
			return nil
		})
	}
	if p.Vibration {
		cmds = append(cmds, tea.Tick(k.Duration(), func(time.Time) tea.Msg {
			return PulseDoneMsg{Seq: seq}
		}))
	}
	switch len(cmds) {
	case 0:
		return p.Vibration, nil
	case 1:
		return p.Vibration, cmds[0]
	}
	return p.Vibration, tea.Batch(cmds...)
}
