// Package app wires the screens into the root Bubble Tea model.
package app

import (
	"context"
	"fmt"
	"io"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/quickquiz/internal/content"
	"github.com/abhisek/quickquiz/internal/quiz"
	"github.com/abhisek/quickquiz/internal/router"
	"github.com/abhisek/quickquiz/internal/screen"
	"github.com/abhisek/quickquiz/internal/screens/home"
	"github.com/abhisek/quickquiz/internal/screens/play"
	"github.com/abhisek/quickquiz/internal/screens/welcome"
	"github.com/abhisek/quickquiz/internal/stats"
	"github.com/abhisek/quickquiz/internal/ui/layout"
)

// Options configures the application.
type Options struct {
	Stats   stats.Store
	Catalog *content.Catalog
	// Bell receives the terminal bell. Defaults to os.Stdout.
	Bell io.Writer
	// Start, when set, opens this quiz right away on top of the home screen.
	Start       *quiz.Quiz
	SkipWelcome bool
}

type headerLoadedMsg struct {
	Stats layout.HeaderStats
	Err   error
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router   *router.Router
	store    stats.Store
	start    tea.Cmd
	header   layout.HeaderStats
	warning  string
	warnings []error
	width    int
	height   int
}

// newAppModel creates a new AppModel from opts.
func newAppModel(opts Options) AppModel {
	deps := play.Deps{Stats: opts.Stats, Bell: opts.Bell}
	if deps.Bell == nil {
		deps.Bell = os.Stdout
	}

	homeFactory := func() screen.Screen {
		return home.New(opts.Catalog, deps)
	}

	m := AppModel{store: opts.Stats}
	switch {
	case opts.Start != nil:
		m.router = router.New(homeFactory())
		m.start = router.PushCmd(play.New(opts.Start, deps))
	case opts.SkipWelcome:
		m.router = router.New(homeFactory())
	default:
		m.router = router.New(welcome.New(homeFactory))
	}
	return m
}

func (m AppModel) Init() tea.Cmd {
	var initial tea.Cmd
	if active := m.router.Active(); active != nil {
		initial = active.Init()
	}
	return tea.Batch(m.refreshHeader(), initial, m.start)
}

func (m AppModel) refreshHeader() tea.Cmd {
	st := m.store
	if st == nil {
		return nil
	}
	return func() tea.Msg {
		sum, err := stats.Load(context.Background(), st)
		return headerLoadedMsg{
			Stats: layout.HeaderStats{BestScore: sum.BestScore, QuizzesCompleted: sum.QuizzesCompleted},
			Err:   err,
		}
	}
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case headerLoadedMsg:
		if msg.Err != nil {
			return m.warn(fmt.Errorf("load statistics: %w", msg.Err)), nil
		}
		m.header = msg.Stats
		return m, nil

	case screen.WarningMsg:
		return m.warn(msg.Err), nil

	case tea.KeyPressMsg:
		m.warning = ""
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			if h, ok := m.router.Active().(screen.BackHandler); ok && h.HandlesBack() {
				break
			}
			if m.router.Depth() > 1 {
				return m, router.PopCmd()
			}
			return m, nil
		}
	}

	cmd := m.router.Update(msg)
	if router.IsNavigation(msg) {
		cmd = tea.Batch(cmd, m.refreshHeader())
	}
	return m, cmd
}

func (m AppModel) warn(err error) AppModel {
	if err == nil {
		return m
	}
	m.warning = err.Error()
	m.warnings = append(m.warnings, err)
	return m
}

// Warnings returns every warning reported while the program ran.
func (m AppModel) Warnings() []error {
	return m.warnings
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	header := layout.RenderHeader(title, m.header, m.width)
	footer := layout.RenderFooter(m.footerHints(active), m.width)

	contentHeight := max(m.height-lipgloss.Height(header)-lipgloss.Height(footer), 0)

	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

func (m AppModel) footerHints(active screen.Screen) []layout.KeyHint {
	var hints []layout.KeyHint
	if m.warning != "" {
		hints = append(hints, layout.KeyHint{Key: "⚠", Description: m.warning})
	}

	if p, ok := active.(screen.KeyHintProvider); ok {
		return append(hints, p.KeyHints()...)
	}
	if m.router.Depth() > 1 {
		return append(hints,
			layout.KeyHint{Key: "Esc", Description: "Back"},
			layout.KeyHint{Key: "Ctrl+C", Description: "Quit"},
		)
	}
	return append(hints,
		layout.KeyHint{Key: "↑↓", Description: "Navigate"},
		layout.KeyHint{Key: "Enter", Description: "Select"},
		layout.KeyHint{Key: "Ctrl+C", Description: "Quit"},
	)
}

// Run starts the Bubble Tea program. Warnings collected while it ran are
// printed to stderr once the terminal is restored.
func Run(opts Options) error {
	p := tea.NewProgram(newAppModel(opts))
	final, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	if m, ok := final.(AppModel); ok {
		for _, w := range m.Warnings() {
			fmt.Fprintf(os.Stderr, "warning: %v\n", w)
		}
	}
	return nil
}
