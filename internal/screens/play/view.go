package play

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/quickquiz/internal/session"
	"github.com/abhisek/quickquiz/internal/ui/components"
	"github.com/abhisek/quickquiz/internal/ui/layout"
	"github.com/abhisek/quickquiz/internal/ui/theme"
)

func (s *PlayScreen) View(width, height int) string {
	switch {
	case s.errMsg != "":
		return renderError(width, s.errMsg)
	case s.confirmQuit:
		return renderQuitConfirm(width)
	case s.finishing:
		return lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render("\n\n\n  Saving your results...")
	}
	return s.renderQuestion(width)
}

// renderQuestion renders the info line, progress, question card, verdict
// and action button.
func (s *PlayScreen) renderQuestion(width int) string {
	st := s.state
	q, _ := st.Current()
	cw := components.ContentWidth(width)

	var b strings.Builder

	infoLeft := lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Render(fmt.Sprintf("Question %d of %d", st.Number(), st.Total()))
	infoRight := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("%s %d correct", lipgloss.NewStyle().Foreground(theme.Success).Render("✓"), st.CorrectSoFar()))
	if limit, ok := st.Quiz.TimeLimit.Get(); ok {
		infoRight += lipgloss.NewStyle().Foreground(theme.TextDim).
			Render(fmt.Sprintf("   ⏱ %d min", limit))
	}
	gap := max(cw-lipgloss.Width(infoLeft)-lipgloss.Width(infoRight), 1)
	b.WriteString(layout.Centered(infoLeft+strings.Repeat(" ", gap)+infoRight, width))
	b.WriteString("\n")
	b.WriteString(layout.Centered(components.NewProgressBar("", st.ProgressPercent(), true, cw).View(), width))
	b.WriteString("\n\n")

	inner := cw - 6 // card border + padding
	prompt := lipgloss.NewStyle().
		Width(inner).
		Foreground(theme.Text).
		Bold(true).
		Render(q.Prompt)
	card := theme.Card
	if s.pulsing {
		card = theme.PulseCard
	}
	b.WriteString(layout.Centered(card.Width(cw).Render(prompt+"\n\n"+s.choice.View(inner)), width))
	b.WriteString("\n")

	if st.Phase == session.PhaseRevealed {
		b.WriteString(s.renderVerdict(width, inner))
	}

	b.WriteString("\n")
	b.WriteString(layout.Centered(s.actionButton(), width))

	if s.notice != "" {
		b.WriteString("\n\n")
		b.WriteString(layout.Centered(theme.WarningText.Render(s.notice), width))
	}

	return b.String()
}

func (s *PlayScreen) renderVerdict(width, inner int) string {
	q, _ := s.state.Current()

	var lines []string
	if s.state.LastAnswerCorrect() {
		lines = append(lines, theme.Correct.Render("Correct! 🎉"))
	} else {
		lines = append(lines, theme.Incorrect.Render("Incorrect"))
		if ans := q.CorrectAnswer(); ans != "" {
			lines = append(lines, theme.Dimmed.Render("Correct answer: "+ans))
		}
	}
	if exp, ok := q.Explanation.Get(); ok {
		lines = append(lines, lipgloss.NewStyle().
			Width(inner).
			Foreground(theme.Text).
			Italic(true).
			Render(exp))
	}

	out := make([]string, len(lines))
	for i, l := range lines {
		out[i] = layout.Centered(l, width)
	}
	return "\n" + strings.Join(out, "\n") + "\n"
}

func (s *PlayScreen) actionButton() string {
	if s.state.Phase == session.PhaseRevealed {
		return components.NewButton(s.advanceLabel(), true, nil).View()
	}
	_, chosen := s.state.Pending.Get()
	return components.NewButton("Submit Answer", chosen, nil).View()
}

func renderQuitConfirm(width int) string {
	center := func(style lipgloss.Style, text string) string {
		return style.Width(width).Align(lipgloss.Center).Render(text)
	}

	var b strings.Builder
	b.WriteString("\n\n\n")
	b.WriteString(center(lipgloss.NewStyle().Foreground(theme.Text).Bold(true), "Exit quiz?"))
	b.WriteString("\n")
	b.WriteString(center(lipgloss.NewStyle().Foreground(theme.TextDim), "Your answers so far will not be saved."))
	b.WriteString("\n\n")
	b.WriteString(center(lipgloss.NewStyle().Foreground(theme.Error), "[Y] Yes, exit"))
	b.WriteString("\n")
	b.WriteString(center(lipgloss.NewStyle().Foreground(theme.Primary), "[N] No, continue quiz"))
	return b.String()
}

func renderError(width int, errMsg string) string {
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Error).
		Render(fmt.Sprintf("\n\n\n  Cannot start quiz: %s\n\n  Press any key to go back.", errMsg))
}
