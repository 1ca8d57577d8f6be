// Package results shows the score of a finished quiz.
package results

import (
	"fmt"
	"image/color"
	"strings"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/quickquiz/internal/quiz"
	"github.com/abhisek/quickquiz/internal/router"
	"github.com/abhisek/quickquiz/internal/screen"
	"github.com/abhisek/quickquiz/internal/stats"
	"github.com/abhisek/quickquiz/internal/ui/components"
	"github.com/abhisek/quickquiz/internal/ui/keys"
	"github.com/abhisek/quickquiz/internal/ui/layout"
	"github.com/abhisek/quickquiz/internal/ui/theme"
)

// ResultsScreen displays a quiz result.
type ResultsScreen struct {
	result  *quiz.Result
	outcome stats.Outcome
	menu    components.Menu
}

var _ screen.Screen = (*ResultsScreen)(nil)
var _ screen.KeyHintProvider = (*ResultsScreen)(nil)

// New creates a ResultsScreen. retake builds a fresh quiz screen for the
// same quiz. A nil result sends the player straight back.
func New(result *quiz.Result, outcome stats.Outcome, retake func() screen.Screen) *ResultsScreen {
	items := []components.MenuItem{
		{Label: "Retake Quiz", Disabled: retake == nil, Action: func() tea.Cmd {
			return router.ReplaceCmd(retake())
		}},
		{Label: "Back to Home", Action: router.PopCmd},
	}
	return &ResultsScreen{
		result:  result,
		outcome: outcome,
		menu:    components.NewMenu(items),
	}
}

func (s *ResultsScreen) Init() tea.Cmd {
	if s.result == nil {
		return router.PopCmd()
	}
	return nil
}

func (s *ResultsScreen) Title() string {
	return "Results"
}

func (s *ResultsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		keys.Hint(keys.Enter),
		keys.Hint(keys.Retake),
		keys.Hint(keys.Back, "Home"),
	}
}

func (s *ResultsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyPressMsg); ok && key.Matches(kmsg, keys.Retake) {
		if retake := s.menu.Items[0]; !retake.Disabled {
			s.menu.Selected = 0
			return s, retake.Action()
		}
		return s, nil
	}
	var cmd tea.Cmd
	s.menu, cmd = s.menu.Update(msg)
	return s, cmd
}

func (s *ResultsScreen) View(width, height int) string {
	r := s.result
	if r == nil {
		return ""
	}
	cw := components.ContentWidth(width)
	tierColor := TierColor(quiz.TierFor(r.Percentage))

	var sections []string

	sections = append(sections, lipgloss.NewStyle().
		Foreground(tierColor).
		Bold(true).
		Render(r.Grade().Badge()))

	sections = append(sections, lipgloss.NewStyle().
		Foreground(tierColor).
		Bold(true).
		Render(fmt.Sprintf("%d%%", r.Percentage)))

	score := fmt.Sprintf("You got %d out of %d questions correct", r.CorrectAnswers, r.TotalQuestions)
	if skipped := r.Skipped(); skipped > 0 {
		score += fmt.Sprintf(" (%d skipped)", skipped)
	}
	sections = append(sections, theme.Body.Render(score))

	if s.outcome.NewBest {
		sections = append(sections, lipgloss.NewStyle().
			Foreground(theme.Accent).
			Bold(true).
			Render("★ New best score!"))
	}

	// The review is dropped when it would push the menu off screen.
	review := renderReview(r, cw)
	if !layout.IsCompact(width, height+layout.HeaderHeight+layout.FooterHeight) &&
		lipgloss.Height(review)+12 < height {
		sections = append(sections, components.Card(review, cw))
	}

	sections = append(sections, s.menu.View())

	return components.Panel(strings.Join(sections, "\n\n"), width, height)
}

// renderReview lists every question with the player's answer.
func renderReview(r *quiz.Result, cw int) string {
	inner := cw - 6
	lines := make([]string, 0, len(r.QuestionResults))
	for i, qr := range r.QuestionResults {
		mark, style := "✗", theme.Incorrect
		switch {
		case qr.Correct:
			mark, style = "✓", theme.Correct
		case !qr.Selected.IsPresent():
			mark, style = "–", theme.Dimmed
		}
		line := fmt.Sprintf("%s %2d. %s", mark, i+1, qr.Question.Prompt)
		lines = append(lines, style.MaxWidth(inner).Render(line))
	}
	return strings.Join(lines, "\n")
}

// TierColor maps a score band to its display color.
func TierColor(t quiz.Tier) color.Color {
	switch t {
	case quiz.TierStrong:
		return theme.Success
	case quiz.TierFair:
		return theme.Warning
	default:
		return theme.Error
	}
}
