// Package home is the main menu: pick a quiz, view statistics, change
// settings or exit.
package home

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/quickquiz/internal/content"
	"github.com/abhisek/quickquiz/internal/quiz"
	"github.com/abhisek/quickquiz/internal/router"
	"github.com/abhisek/quickquiz/internal/screen"
	"github.com/abhisek/quickquiz/internal/screens/play"
	"github.com/abhisek/quickquiz/internal/screens/settings"
	"github.com/abhisek/quickquiz/internal/screens/statistics"
	"github.com/abhisek/quickquiz/internal/ui/components"
	"github.com/abhisek/quickquiz/internal/ui/layout"
	"github.com/abhisek/quickquiz/internal/ui/theme"
)

// HomeScreen is the main home screen of the application.
type HomeScreen struct {
	menu components.Menu
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates a HomeScreen listing every quiz in catalog.
func New(catalog *content.Catalog, deps play.Deps) *HomeScreen {
	var items []components.MenuItem
	if catalog != nil {
		for _, q := range catalog.All() {
			items = append(items, components.MenuItem{
				Label:  q.Title,
				Detail: describe(q),
				Action: func() tea.Cmd {
					return router.PushCmd(play.New(q, deps))
				},
			})
		}
	}

	items = append(items,
		components.MenuItem{Label: "Statistics", Action: func() tea.Cmd {
			return router.PushCmd(statistics.New(deps.Stats))
		}},
		components.MenuItem{Label: "Settings", Action: func() tea.Cmd {
			return router.PushCmd(settings.New(deps.Stats))
		}},
		components.MenuItem{Label: "Exit", Action: func() tea.Cmd {
			return tea.Quit
		}},
	)

	return &HomeScreen{menu: components.NewMenu(items)}
}

func describe(q *quiz.Quiz) string {
	d := fmt.Sprintf("%d questions", q.TotalQuestions())
	if limit, ok := q.TimeLimit.Get(); ok {
		d += fmt.Sprintf(" · %d min", limit)
	}
	return d
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	cw := components.ContentWidth(width)

	var sections []string
	sections = append(sections, lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Bold(true).
		Render("Q U I C K Q U I Z"))

	if !layout.IsCompact(width, height+layout.HeaderHeight+layout.FooterHeight) {
		sections = append(sections, theme.Subtitle.Width(cw).Render(
			"Pick a quiz and see how much you know."))
	}

	sections = append(sections, components.Card(h.menu.View(), cw))

	return components.Panel(strings.Join(sections, "\n\n"), width, height)
}

func (h *HomeScreen) Title() string {
	return "Home"
}
