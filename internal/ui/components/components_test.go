package components

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type pickedMsg string

func press(code rune) tea.KeyPressMsg {
	if code >= 'a' && code <= 'z' || code >= '0' && code <= '9' {
		return tea.KeyPressMsg{Code: code, Text: string(code)}
	}
	return tea.KeyPressMsg{Code: code}
}

func TestMenu_SkipsDisabled(t *testing.T) {
	m := NewMenu([]MenuItem{
		{Label: "off", Disabled: true},
		{Label: "a"},
		{Label: "off2", Disabled: true},
		{Label: "b", Action: func() tea.Cmd { return func() tea.Msg { return pickedMsg("b") } }},
	})
	assert.Equal(t, 1, m.Selected)

	m, _ = m.Update(press(tea.KeyDown))
	assert.Equal(t, 3, m.Selected)

	m, _ = m.Update(press(tea.KeyDown))
	assert.Equal(t, 3, m.Selected, "stays on last item")

	_, cmd := m.Update(press(tea.KeyEnter))
	require.NotNil(t, cmd)
	assert.Equal(t, pickedMsg("b"), cmd())

	m, _ = m.Update(press('k'))
	assert.Equal(t, 1, m.Selected)
}

func TestMenu_View(t *testing.T) {
	m := NewMenu([]MenuItem{{Label: "Play", Detail: "10 questions"}, {Label: "Exit"}})
	v := m.View()
	assert.Contains(t, v, "▸ Play")
	assert.Contains(t, v, "10 questions")
	assert.Contains(t, v, "Exit")
}

func TestMultiChoice_Move(t *testing.T) {
	mc := NewMultiChoice([]string{"a", "b", "c"}, 1)

	idx, ok := mc.Move(press(tea.KeyDown))
	require.True(t, ok)
	assert.Equal(t, 0, idx, "first move picks the cursor row")

	mc.Chosen, mc.Cursor = 0, 0
	idx, _ = mc.Move(press(tea.KeyDown))
	assert.Equal(t, 1, idx)

	mc.Chosen, mc.Cursor = 2, 2
	idx, _ = mc.Move(press(tea.KeyDown))
	assert.Equal(t, 2, idx, "clamped at the last option")

	idx, ok = mc.Move(press('3'))
	require.True(t, ok)
	assert.Equal(t, 2, idx)

	_, ok = mc.Move(press('4'))
	assert.False(t, ok, "digit beyond the options")

	_, ok = mc.Move(press('q'))
	assert.False(t, ok)

	mc.Revealed = true
	_, ok = mc.Move(press(tea.KeyUp))
	assert.False(t, ok, "no movement after reveal")
}

func TestMultiChoice_ViewMarksReveal(t *testing.T) {
	mc := NewMultiChoice([]string{"Paris", "Rome"}, 0)
	mc.Chosen = 1
	mc.Revealed = true
	v := mc.View(40)
	assert.Contains(t, v, "Paris  ✓")
	assert.Contains(t, v, "Rome  ✗")
}

func TestProgressBar_Clamps(t *testing.T) {
	v := NewProgressBar("", 150, true, 30).View()
	assert.Contains(t, v, "100%")
	assert.NotContains(t, v, "░")

	v = NewProgressBar("Q", 0, false, 20).View()
	assert.NotContains(t, v, "█")
}

func TestButton(t *testing.T) {
	pressed := false
	b := NewButton("Next Question", true, func() tea.Cmd { pressed = true; return nil })
	b.Update(press(tea.KeyEnter))
	assert.True(t, pressed)
	assert.True(t, strings.Contains(b.View(), "Next Question"))

	pressed = false
	b.Active = false
	b.Update(press(tea.KeyEnter))
	assert.False(t, pressed)
}
