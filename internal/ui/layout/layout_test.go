package layout

import (
	"strings"
	"testing"

	"charm.land/lipgloss/v2"
	"github.com/stretchr/testify/assert"
)

func TestIsTooSmall(t *testing.T) {
	assert.True(t, IsTooSmall(MinWidth-1, MinHeight))
	assert.True(t, IsTooSmall(MinWidth, MinHeight-1))
	assert.False(t, IsTooSmall(MinWidth, MinHeight))
}

func TestContentHeight(t *testing.T) {
	assert.Equal(t, 24-HeaderHeight-FooterHeight, ContentHeight(24))
	assert.Equal(t, 0, ContentHeight(2))
}

func TestRenderHeader(t *testing.T) {
	h := RenderHeader("Statistics", HeaderStats{BestScore: 80, QuizzesCompleted: 3}, 90)
	assert.Contains(t, h, "QuickQuiz")
	assert.Contains(t, h, "Statistics")
	assert.Contains(t, h, "best 80%")
	assert.Contains(t, h, "3 played")
	assert.Equal(t, HeaderHeight, lipgloss.Height(h))
}

func TestRenderFooter(t *testing.T) {
	f := RenderFooter([]KeyHint{{Key: "Enter", Description: "Select"}, {Key: "Esc", Description: "Back"}}, 80)
	assert.Contains(t, f, "Enter")
	assert.Contains(t, f, "Back")
	assert.Equal(t, FooterHeight, lipgloss.Height(f))
}

func TestRenderFrame_FillsHeight(t *testing.T) {
	header := RenderHeader("", HeaderStats{}, 80)
	footer := RenderFooter(nil, 80)
	frame := RenderFrame(header, "body", footer, 80, 24)
	assert.Equal(t, 24, lipgloss.Height(frame))
	assert.True(t, strings.Contains(frame, "body"))
}
