// Package ticker renders the rotating message bar shown under the
// status line.
package ticker

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/louvel/streamradio/internal/ui/render"
)

// Model cycles through a fixed set of messages.
type Model struct {
	messages []string
	idx      int
}

// New creates a ticker over the given messages. Empty messages are
// dropped.
func New(messages []string) Model {
	kept := make([]string, 0, len(messages))
	for _, m := range messages {
		if m != "" {
			kept = append(kept, m)
		}
	}
	return Model{messages: kept}
}

// Empty reports whether the ticker has nothing to show.
func (m Model) Empty() bool {
	return len(m.messages) == 0
}

// Current returns the message currently displayed.
func (m Model) Current() string {
	if m.Empty() {
		return ""
	}
	return m.messages[m.idx]
}

// Advance rotates to the next message and returns the updated model.
func (m Model) Advance() Model {
	if len(m.messages) > 1 {
		m.idx = (m.idx + 1) % len(m.messages)
	}
	return m
}

// Render returns the ticker line for the given width, or an empty
// string when there is nothing to show.
func (m Model) Render(width int) string {
	if m.Empty() {
		return ""
	}
	return messageStyle().Render(render.TruncateAndPad(m.Current(), max(width, 0)))
}

func messageStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color("245")).
		Italic(true)
}
