package widgets

import (
	"fmt"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/muurk/btautolaunch/internal/theme"
)

// Slider selects an integer in [0, Max]
type Slider struct {
	Value    int
	Max      int
	Width    int // Total width including the value label
	OnChange func(int) tea.Cmd
}

// Activate implements Control; sliders only react to Adjust
func (s Slider) Activate() tea.Cmd {
	return nil
}

// Adjust moves the value by delta within the slider's own [0, Max] bounds and
// forwards the result. Nothing is emitted when the value does not move.
func (s Slider) Adjust(delta int) tea.Cmd {
	if s.OnChange == nil {
		return nil
	}
	v := s.Value + delta
	if v < 0 {
		v = 0
	}
	if v > s.Max {
		v = s.Max
	}
	if v == s.Value {
		return nil
	}
	return s.OnChange(v)
}

// Fraction returns the filled share of the track
func (s Slider) Fraction() float64 {
	if s.Max <= 0 {
		return 0
	}
	f := float64(s.Value) / float64(s.Max)
	if f < 0 {
		return 0
	}
	if f > 1 {
		return 1
	}
	return f
}

// Render draws the track followed by the value in seconds
func (s Slider) Render(p theme.Palette, focused bool) string {
	label := lipgloss.NewStyle().
		Foreground(p.Primary).
		Bold(true).
		Width(4).
		Align(lipgloss.Right).
		Render(fmt.Sprintf("%ds", s.Value))

	trackWidth := s.Width - 1 - 1 - lipgloss.Width(label) // focus column, gap
	if trackWidth < 4 {
		trackWidth = 4
	}

	bar := progress.New(
		progress.WithSolidFill(string(p.Primary)),
		progress.WithoutPercentage(),
		progress.WithWidth(trackWidth),
	)
	bar.Full = '━'
	bar.Empty = '─'
	bar.EmptyColor = string(p.SurfaceVariant)

	return focusPrefix(p, focused) + bar.ViewAs(s.Fraction()) + " " + label
}
