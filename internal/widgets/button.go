package widgets

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/muurk/btautolaunch/internal/theme"
)

// ButtonVariant selects the emphasis of a button
type ButtonVariant string

const (
	ButtonFilled   ButtonVariant = "filled"
	ButtonTonal    ButtonVariant = "tonal"
	ButtonOutlined ButtonVariant = "outlined"
	ButtonText     ButtonVariant = "text"
)

// ActiveMarker is drawn in front of the label of an active button
const ActiveMarker = "◆"

// Button is a pressable label. It keeps no state of its own.
type Button struct {
	Label   string
	Icon    string // Optional glyph shown before the label
	Variant ButtonVariant
	Active  bool
	Width   int     // 0 fits the label
	OnPress tea.Cmd // nil makes the button inert
}

// Activate implements Control
func (b Button) Activate() tea.Cmd {
	return b.OnPress
}

// Adjust implements Control; buttons have no value
func (b Button) Adjust(int) tea.Cmd {
	return nil
}

func (b Button) style(p theme.Palette) lipgloss.Style {
	s := lipgloss.NewStyle().Bold(true).Padding(0, 1).Align(lipgloss.Center)
	switch b.Variant {
	case ButtonTonal:
		s = s.Background(p.SecondaryContainer).Foreground(p.OnSecondaryContainer)
	case ButtonOutlined:
		s = s.Border(lipgloss.RoundedBorder()).BorderForeground(p.Outline).Foreground(p.Primary)
	case ButtonText:
		s = s.Foreground(p.Primary)
	default:
		s = s.Background(p.Primary).Foreground(p.OnPrimary)
	}
	if b.Active {
		s = s.Underline(true)
	}
	return s
}

// Label text as drawn, including icon and active marker
func (b Button) text() string {
	parts := make([]string, 0, 3)
	if b.Active {
		parts = append(parts, ActiveMarker)
	}
	if b.Icon != "" {
		parts = append(parts, b.Icon)
	}
	parts = append(parts, strings.ToUpper(b.Label))
	return strings.Join(parts, " ")
}

// Render draws the button with the focus column in front of it
func (b Button) Render(p theme.Palette, focused bool) string {
	s := b.style(p)
	if b.Width > 0 {
		w := b.Width - 1 - s.GetHorizontalBorderSize() // focus column
		// Never narrower than the label
		if least := lipgloss.Width(b.text()) + s.GetHorizontalPadding(); w < least {
			w = least
		}
		s = s.Width(w)
	}
	return lipgloss.JoinHorizontal(lipgloss.Center, focusPrefix(p, focused), s.Render(b.text()))
}
