package tui

import (
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/vovakirdan/light-arcade/internal/core"
)

var ansiEscape = regexp.MustCompile("\x1b\\[[0-9;]*m")

func TestRenderScreenKeepsCells(t *testing.T) {
	s := core.NewScreen(12, 3)
	s.DrawText(0, 0, "Level: 1")
	s.DrawTextColored(2, 1, "╱╲", core.ColorBrightYellow)
	s.SetColored(5, 1, '◎', core.ColorBrightGreen)
	s.SetColored(11, 2, '▓', core.ColorGray)

	out := ansiEscape.ReplaceAllString(RenderScreen(s), "")
	assert.Equal(t, s.String(), out)
	assert.Len(t, strings.Split(out, "\n"), 3)
}

func TestStyleForUnknownColor(t *testing.T) {
	assert.Equal(t, "x", ansiEscape.ReplaceAllString(styleFor(core.Color(99)).Render("x"), ""))
	for _, c := range core.Colors() {
		_, ok := cellStyles[c]
		assert.True(t, ok, "missing style for colour %d", c)
	}
}

func TestTickInterval(t *testing.T) {
	assert.Equal(t, time.Second/60, tickInterval(60))
	assert.Equal(t, time.Second/30, tickInterval(30))
	assert.Equal(t, time.Second/defaultTickRate, tickInterval(0))
	assert.Equal(t, time.Second/defaultTickRate, tickInterval(-5))
	assert.Equal(t, time.Second/maxTickRate, tickInterval(10000))
}
