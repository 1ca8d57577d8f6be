// Package settings lets the player toggle sound and vibration feedback.
package settings

import (
	"context"
	"fmt"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/quickquiz/internal/screen"
	"github.com/abhisek/quickquiz/internal/stats"
	"github.com/abhisek/quickquiz/internal/ui/components"
	"github.com/abhisek/quickquiz/internal/ui/keys"
	"github.com/abhisek/quickquiz/internal/ui/layout"
	"github.com/abhisek/quickquiz/internal/ui/theme"
)

// Toggle identifies one setting.
type Toggle int

const (
	Sound Toggle = iota
	Vibration
)

func (t Toggle) String() string {
	if t == Vibration {
		return "Vibration"
	}
	return "Sound"
}

type loadedMsg struct {
	Sound     bool
	Vibration bool
	Err       error
}

// savedMsg reports the end of a write started by toggle.
type savedMsg struct {
	Toggle Toggle
	Err    error
}

// SettingsScreen shows the feedback toggles.
type SettingsScreen struct {
	store     stats.Store
	sound     bool
	vibration bool
	loaded    bool
	cursor    int

	// saving is set while a write is in flight; toggles are ignored until
	// it lands so writes reach the store in key order.
	saving bool
}

var _ screen.Screen = (*SettingsScreen)(nil)
var _ screen.KeyHintProvider = (*SettingsScreen)(nil)

// New creates a SettingsScreen backed by st.
func New(st stats.Store) *SettingsScreen {
	return &SettingsScreen{store: st}
}

func (s *SettingsScreen) Init() tea.Cmd {
	st := s.store
	return func() tea.Msg {
		if st == nil {
			return loadedMsg{Sound: stats.DefaultSoundEnabled, Vibration: stats.DefaultVibrationEnabled}
		}
		ctx := context.Background()
		sound, err := st.SoundEnabled(ctx)
		if err != nil {
			return loadedMsg{Err: err}
		}
		vibration, err := st.VibrationEnabled(ctx)
		return loadedMsg{Sound: sound, Vibration: vibration, Err: err}
	}
}

func (s *SettingsScreen) Title() string {
	return "Settings"
}

func (s *SettingsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		keys.Hint(keys.Toggle),
		keys.Hint(keys.Back),
	}
}

// Enabled reports the current value of t.
func (s *SettingsScreen) Enabled(t Toggle) bool {
	if t == Vibration {
		return s.vibration
	}
	return s.sound
}

func (s *SettingsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case loadedMsg:
		s.loaded = true
		if msg.Err != nil {
			s.sound, s.vibration = stats.DefaultSoundEnabled, stats.DefaultVibrationEnabled
			return s, screen.Warn(fmt.Errorf("load settings: %w", msg.Err))
		}
		s.sound, s.vibration = msg.Sound, msg.Vibration
		return s, nil

	case savedMsg:
		s.saving = false
		if msg.Err != nil {
			return s, tea.Batch(
				screen.Warn(fmt.Errorf("save %s setting: %w", msg.Toggle, msg.Err)),
				s.Init(),
			)
		}
		return s, nil

	case tea.KeyPressMsg:
		if !s.loaded {
			return s, nil
		}
		switch {
		case key.Matches(msg, keys.Up):
			s.cursor = 0
		case key.Matches(msg, keys.Down):
			s.cursor = 1
		case key.Matches(msg, keys.Toggle):
			return s, s.toggle(Toggle(s.cursor))
		}
	}
	return s, nil
}

// toggle flips t on screen and persists the new value. A failed write is
// reported and the settings reloaded from the store.
func (s *SettingsScreen) toggle(t Toggle) tea.Cmd {
	if s.saving {
		return nil
	}

	var value bool
	if t == Vibration {
		s.vibration = !s.vibration
		value = s.vibration
	} else {
		s.sound = !s.sound
		value = s.sound
	}
	if s.store == nil {
		return nil
	}

	s.saving = true
	st := s.store
	return func() tea.Msg {
		ctx := context.Background()
		var err error
		if t == Vibration {
			err = st.SetVibrationEnabled(ctx, value)
		} else {
			err = st.SetSoundEnabled(ctx, value)
		}
		return savedMsg{Toggle: t, Err: err}
	}
}

func (s *SettingsScreen) View(width, height int) string {
	cw := components.ContentWidth(width)
	if !s.loaded {
		return components.Panel(theme.Dimmed.Render("Loading..."), width, height)
	}

	items := make([]components.MenuItem, 0, 2)
	for _, t := range []Toggle{Sound, Vibration} {
		items = append(items, components.MenuItem{Label: fmt.Sprintf("%-10s %s", t, onOff(s.Enabled(t)))})
	}
	menu := components.Menu{Items: items, Selected: s.cursor}

	note := theme.Hint.Render("Sound rings the terminal bell. Vibration flashes the question card.")
	return components.Panel(components.Card(menu.View(), cw)+"\n\n"+note, width, height)
}

func onOff(v bool) string {
	if v {
		return "[on] "
	}
	return "[off]"
}
