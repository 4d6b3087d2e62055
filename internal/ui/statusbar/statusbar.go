// Package statusbar renders the single-line playback status bar: the
// now/next text, mode badges and a bounded progress gauge.
package statusbar

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/louvel/streamradio/internal/radio"
	"github.com/louvel/streamradio/internal/ui/render"
)

// State holds everything needed to render the status bar.
type State struct {
	Status   string // now/next text from the engine
	Playing  bool
	Paused   bool
	Position float64 // seconds into the video
	End      float64 // current song end bound, 0 when unbounded
	Yap      bool
	Loop     radio.LoopMode
	Shuffle  bool
}

// Height returns the total height of the status bar.
func Height() int {
	return 3 // top border + content + bottom border
}

// Render returns the status bar string for the given width.
func Render(s State, width int) string {
	innerWidth := max(width-6, 0)

	symbol := playSymbol
	if s.Paused {
		symbol = pauseSymbol
	}

	badges := renderBadges(s)
	timeStr := formatTime(s.Position)
	if s.End > 0 {
		timeStr = fmt.Sprintf("%s / %s", formatTime(s.Position), formatTime(s.End))
	}

	right := badges
	if right != "" {
		right += "   "
	}
	right += timeStyle().Render(timeStr)

	statusWidth := innerWidth - lipgloss.Width(right) - lipgloss.Width(symbol) - 3
	left := symbol + "  " + statusStyle().Render(render.Truncate(s.Status, max(statusWidth, 10)))

	return barStyle().Padding(0, 2).Width(width - 2).Render(render.Row(left, right, innerWidth))
}

// renderBadges builds the active-mode indicator cluster.
func renderBadges(s State) string {
	var parts []string
	if s.Yap {
		parts = append(parts, badgeStyle().Render("YAP"))
	}
	switch s.Loop {
	case radio.LoopTrack:
		parts = append(parts, badgeStyle().Render("LOOP:1"))
	case radio.LoopStream:
		parts = append(parts, badgeStyle().Render("LOOP"))
	}
	if s.Shuffle {
		parts = append(parts, badgeStyle().Render("SHUF"))
	}
	return strings.Join(parts, " ")
}

func formatTime(seconds float64) string {
	if seconds < 0 {
		seconds = 0
	}
	total := int(seconds)
	m := total / 60
	sec := total % 60
	return fmt.Sprintf("%d:%02d", m, sec)
}
