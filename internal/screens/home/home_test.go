package home

import (
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/quickquiz/internal/content"
	"github.com/abhisek/quickquiz/internal/router"
	"github.com/abhisek/quickquiz/internal/screens/play"
	"github.com/abhisek/quickquiz/internal/screens/settings"
	"github.com/abhisek/quickquiz/internal/screens/statistics"
	"github.com/abhisek/quickquiz/internal/stats"
)

func newHome(t *testing.T) *HomeScreen {
	t.Helper()
	builtin, err := content.Builtin()
	require.NoError(t, err)
	catalog, err := content.NewCatalog(builtin...)
	require.NoError(t, err)
	return New(catalog, play.Deps{Stats: stats.NewMemoryStore()})
}

func press(h *HomeScreen, msgs ...tea.KeyPressMsg) tea.Cmd {
	var cmd tea.Cmd
	for _, m := range msgs {
		_, cmd = h.Update(m)
	}
	return cmd
}

var (
	down  = tea.KeyPressMsg{Code: tea.KeyDown}
	enter = tea.KeyPressMsg{Code: tea.KeyEnter}
)

func TestHomeScreen_ListsQuizzes(t *testing.T) {
	h := newHome(t)
	view := h.View(100, 30)
	assert.Contains(t, view, "General Knowledge")
	assert.Contains(t, view, "10 questions · 15 min")
	assert.Contains(t, view, "Technology")
	assert.Contains(t, view, "5 questions · 10 min")
	assert.Contains(t, view, "Statistics")
	assert.Contains(t, view, "Settings")
	assert.Contains(t, view, "Exit")
	assert.Equal(t, "Home", h.Title())
}

func TestHomeScreen_StartQuiz(t *testing.T) {
	h := newHome(t)
	cmd := press(h, enter)
	require.NotNil(t, cmd)
	msg, ok := cmd().(router.PushScreenMsg)
	require.True(t, ok)
	ps, ok := msg.Screen.(*play.PlayScreen)
	require.True(t, ok)
	assert.Equal(t, "General Knowledge Quiz", ps.Title())
}

func TestHomeScreen_MenuTargets(t *testing.T) {
	h := newHome(t)

	cmd := press(h, down, down, enter)
	require.NotNil(t, cmd)
	msg, ok := cmd().(router.PushScreenMsg)
	require.True(t, ok)
	assert.IsType(t, &statistics.StatisticsScreen{}, msg.Screen)

	cmd = press(h, down, enter)
	require.NotNil(t, cmd)
	msg, ok = cmd().(router.PushScreenMsg)
	require.True(t, ok)
	assert.IsType(t, &settings.SettingsScreen{}, msg.Screen)

	cmd = press(h, down, enter)
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestHomeScreen_NilCatalog(t *testing.T) {
	h := New(nil, play.Deps{})
	assert.Len(t, h.menu.Items, 3)
	assert.Contains(t, h.View(80, 24), "Statistics")
}
