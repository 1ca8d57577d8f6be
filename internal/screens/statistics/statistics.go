// Package statistics shows the running totals and lets the player clear
// them.
package statistics

import (
	"context"
	"fmt"
	"strings"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/quickquiz/internal/screen"
	"github.com/abhisek/quickquiz/internal/stats"
	"github.com/abhisek/quickquiz/internal/ui/components"
	"github.com/abhisek/quickquiz/internal/ui/keys"
	"github.com/abhisek/quickquiz/internal/ui/layout"
	"github.com/abhisek/quickquiz/internal/ui/theme"
)

type loadedMsg struct {
	Summary stats.Summary
	Err     error
}

type resetDoneMsg struct {
	Err error
}

// StatisticsScreen displays aggregate statistics.
type StatisticsScreen struct {
	store        stats.Store
	summary      stats.Summary
	loaded       bool
	confirmReset bool
	errMsg       string
}

var _ screen.Screen = (*StatisticsScreen)(nil)
var _ screen.KeyHintProvider = (*StatisticsScreen)(nil)
var _ screen.BackHandler = (*StatisticsScreen)(nil)

// New creates a StatisticsScreen reading from st.
func New(st stats.Store) *StatisticsScreen {
	return &StatisticsScreen{store: st}
}

func (s *StatisticsScreen) Init() tea.Cmd {
	return s.load()
}

func (s *StatisticsScreen) load() tea.Cmd {
	st := s.store
	return func() tea.Msg {
		if st == nil {
			return loadedMsg{}
		}
		sum, err := stats.Load(context.Background(), st)
		return loadedMsg{Summary: sum, Err: err}
	}
}

func (s *StatisticsScreen) Title() string {
	return "Statistics"
}

// HandlesBack is true while the reset dialog is open.
func (s *StatisticsScreen) HandlesBack() bool {
	return s.confirmReset
}

func (s *StatisticsScreen) KeyHints() []layout.KeyHint {
	if s.confirmReset {
		return []layout.KeyHint{keys.Hint(keys.Yes, "Clear everything"), keys.Hint(keys.No, "Cancel")}
	}
	return []layout.KeyHint{keys.Hint(keys.Reset, "Reset statistics"), keys.Hint(keys.Back)}
}

func (s *StatisticsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case loadedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
			return s, screen.Warn(fmt.Errorf("load statistics: %w", msg.Err))
		}
		s.summary = msg.Summary
		s.loaded = true
		s.errMsg = ""
		return s, nil

	case resetDoneMsg:
		if msg.Err != nil {
			return s, screen.Warn(fmt.Errorf("reset statistics: %w", msg.Err))
		}
		return s, s.load()

	case tea.KeyPressMsg:
		if s.confirmReset {
			switch {
			case key.Matches(msg, keys.Yes):
				s.confirmReset = false
				return s, s.reset()
			case key.Matches(msg, keys.No):
				s.confirmReset = false
			}
			return s, nil
		}
		if key.Matches(msg, keys.Reset) && s.store != nil {
			s.confirmReset = true
		}
	}
	return s, nil
}

func (s *StatisticsScreen) reset() tea.Cmd {
	st := s.store
	return func() tea.Msg {
		return resetDoneMsg{Err: st.Reset(context.Background())}
	}
}

func (s *StatisticsScreen) View(width, height int) string {
	cw := components.ContentWidth(width)

	if s.confirmReset {
		return components.Panel(strings.Join([]string{
			lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render("Clear all statistics?"),
			theme.Dimmed.Render("Best score, totals and settings go back to their defaults."),
			lipgloss.NewStyle().Foreground(theme.Error).Render("[Y] Yes, clear") + "    " +
				lipgloss.NewStyle().Foreground(theme.Primary).Render("[N] Cancel"),
		}, "\n\n"), width, height)
	}

	var body string
	switch {
	case s.errMsg != "":
		body = theme.Incorrect.Render("Could not load statistics: " + s.errMsg)
	case !s.loaded:
		body = theme.Dimmed.Render("Loading...")
	default:
		body = renderSummary(s.summary, cw-6)
	}
	return components.Panel(components.Card(body, cw), width, height)
}

func renderSummary(sum stats.Summary, w int) string {
	rows := []struct {
		label string
		value string
	}{
		{"Best score", fmt.Sprintf("%d%%", sum.BestScore)},
		{"Quizzes completed", fmt.Sprintf("%d", sum.QuizzesCompleted)},
		{"Questions answered", fmt.Sprintf("%d", sum.QuestionsAnswered)},
		{"Correct answers", fmt.Sprintf("%d", sum.CorrectAnswers)},
		{"Overall accuracy", fmt.Sprintf("%.1f%%", sum.Accuracy())},
	}

	label := lipgloss.NewStyle().Foreground(theme.TextDim)
	value := lipgloss.NewStyle().Foreground(theme.Text).Bold(true)

	lines := make([]string, 0, len(rows))
	for _, r := range rows {
		l := label.Render(r.label)
		v := value.Render(r.value)
		gap := max(w-lipgloss.Width(l)-lipgloss.Width(v), 1)
		lines = append(lines, l+strings.Repeat(" ", gap)+v)
	}
	return strings.Join(lines, "\n")
}
