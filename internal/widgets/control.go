package widgets

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/muurk/btautolaunch/internal/theme"
)

// Control is the interaction surface of an interactive widget
type Control interface {
	// Activate handles enter/space. Returns nil when the widget is inert.
	Activate() tea.Cmd

	// Adjust handles left/right with delta -1/+1. Returns nil when the
	// widget has no notion of a value.
	Adjust(delta int) tea.Cmd
}

// Emit returns a command that yields msg
func Emit(msg tea.Msg) tea.Cmd {
	return func() tea.Msg {
		return msg
	}
}

// Focus markers drawn in front of the focused widget
const (
	FocusMarker   = "▸"
	NoFocusMarker = " "
)

// focusPrefix renders the focus column shared by all widgets
func focusPrefix(p theme.Palette, focused bool) string {
	if !focused {
		return NoFocusMarker
	}
	return lipgloss.NewStyle().Foreground(p.Primary).Bold(true).Render(FocusMarker)
}
