package app

import (
	"context"
	"errors"
	"io"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/quickquiz/internal/content"
	"github.com/abhisek/quickquiz/internal/router"
	"github.com/abhisek/quickquiz/internal/screen"
	"github.com/abhisek/quickquiz/internal/screens/home"
	"github.com/abhisek/quickquiz/internal/screens/play"
	"github.com/abhisek/quickquiz/internal/screens/welcome"
	"github.com/abhisek/quickquiz/internal/stats"
)

func testOptions(t *testing.T) Options {
	t.Helper()
	builtin, err := content.Builtin()
	require.NoError(t, err)
	catalog, err := content.NewCatalog(builtin...)
	require.NoError(t, err)
	return Options{Stats: stats.NewMemoryStore(), Catalog: catalog, Bell: io.Discard}
}

// drain runs cmd and feeds every message it produces back into the model,
// following up to depth levels of commands. Ticks are skipped.
func drain(t *testing.T, m AppModel, cmd tea.Cmd, depth int) AppModel {
	t.Helper()
	if cmd == nil || depth == 0 {
		return m
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		for _, c := range batch {
			m = drain(t, m, c, depth)
		}
		return m
	}
	if msg == nil {
		return m
	}
	if _, ok := msg.(tea.QuitMsg); ok {
		return m
	}
	next, follow := m.Update(msg)
	return drain(t, next.(AppModel), follow, depth-1)
}

func update(m AppModel, msg tea.Msg) (AppModel, tea.Cmd) {
	next, cmd := m.Update(msg)
	return next.(AppModel), cmd
}

func TestApp_StartsOnWelcome(t *testing.T) {
	m := newAppModel(testOptions(t))
	assert.IsType(t, &welcome.WelcomeScreen{}, m.router.Active())

	m, cmd := update(m, tea.KeyPressMsg{Code: 'a', Text: "a"})
	m = drain(t, m, cmd, 2)
	assert.IsType(t, &home.HomeScreen{}, m.router.Active())
	assert.Equal(t, 1, m.router.Depth())
}

func TestApp_StartQuiz(t *testing.T) {
	opts := testOptions(t)
	q, err := opts.Catalog.Get(content.SlugTechnology)
	require.NoError(t, err)
	opts.Start = q

	m := newAppModel(opts)
	m = drain(t, m, m.Init(), 1)
	assert.Equal(t, 2, m.router.Depth())
	assert.IsType(t, &play.PlayScreen{}, m.router.Active())
}

func TestApp_EscDefersToScreen(t *testing.T) {
	opts := testOptions(t)
	opts.Start = opts.Catalog.All()[0]
	m := newAppModel(opts)
	m = drain(t, m, m.Init(), 1)

	m, cmd := update(m, tea.KeyPressMsg{Code: tea.KeyEscape})
	m = drain(t, m, cmd, 2)
	assert.Equal(t, 2, m.router.Depth(), "quiz stays open behind the quit dialog")

	m, cmd = update(m, tea.KeyPressMsg{Code: 'y', Text: "y"})
	m = drain(t, m, cmd, 2)
	assert.Equal(t, 1, m.router.Depth())
}

func TestApp_EscPopsPlainScreens(t *testing.T) {
	opts := testOptions(t)
	opts.SkipWelcome = true
	m := newAppModel(opts)

	m = drain(t, m, router.PushCmd(home.New(nil, play.Deps{})), 1)
	require.Equal(t, 2, m.router.Depth())

	m, cmd := update(m, tea.KeyPressMsg{Code: tea.KeyEscape})
	require.NotNil(t, cmd)
	m = drain(t, m, cmd, 1)
	assert.Equal(t, 1, m.router.Depth())

	_, cmd = update(m, tea.KeyPressMsg{Code: tea.KeyEscape})
	assert.Nil(t, cmd)
}

func TestApp_HeaderRefresh(t *testing.T) {
	opts := testOptions(t)
	opts.SkipWelcome = true
	ctx := context.Background()
	_, err := opts.Stats.SetBestScore(ctx, 75)
	require.NoError(t, err)
	require.NoError(t, opts.Stats.IncrementQuizzesCompleted(ctx))

	m := newAppModel(opts)
	m = drain(t, m, m.Init(), 1)
	assert.Equal(t, 75, m.header.BestScore)
	assert.Equal(t, 1, m.header.QuizzesCompleted)

	m, _ = update(m, tea.WindowSizeMsg{Width: 100, Height: 40})
	view := m.View()
	assert.True(t, view.AltScreen)
}

func TestApp_Warnings(t *testing.T) {
	opts := testOptions(t)
	opts.SkipWelcome = true
	m := newAppModel(opts)
	m, _ = update(m, tea.WindowSizeMsg{Width: 100, Height: 40})

	m, _ = update(m, screen.WarningMsg{Err: errors.New("disk full")})
	require.Len(t, m.Warnings(), 1)
	assert.Equal(t, "disk full", m.warning)
	assert.Equal(t, "⚠", m.footerHints(m.router.Active())[0].Key)

	m, _ = update(m, tea.KeyPressMsg{Code: tea.KeyDown})
	assert.Empty(t, m.warning)
	assert.Len(t, m.Warnings(), 1)
}

func TestApp_CtrlCQuits(t *testing.T) {
	m := newAppModel(testOptions(t))
	_, cmd := update(m, tea.KeyPressMsg{Code: 'c', Mod: tea.ModCtrl})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}
