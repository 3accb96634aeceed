package widgets

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/muurk/btautolaunch/internal/theme"
)

// Switch labels for the two visual states
const (
	SwitchOnLabel  = " ON ●"
	SwitchOffLabel = "● OFF"
)

// Switch is a two-state toggle
type Switch struct {
	Checked  bool
	OnToggle tea.Cmd
}

// Activate implements Control
func (s Switch) Activate() tea.Cmd {
	return s.OnToggle
}

// Adjust implements Control; a switch is toggled, never adjusted
func (s Switch) Adjust(int) tea.Cmd {
	return nil
}

// Render draws the switch track and knob
func (s Switch) Render(p theme.Palette, focused bool) string {
	var track lipgloss.Style
	label := SwitchOffLabel
	if s.Checked {
		label = SwitchOnLabel
		track = lipgloss.NewStyle().Background(p.Primary).Foreground(p.OnPrimary).Bold(true)
	} else {
		track = lipgloss.NewStyle().Background(p.SurfaceVariant).Foreground(p.Outline)
	}
	return focusPrefix(p, focused) + track.Render(label)
}
