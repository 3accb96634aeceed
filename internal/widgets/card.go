package widgets

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/muurk/btautolaunch/internal/theme"
)

// CardVariant selects the visual treatment of a card
type CardVariant string

const (
	CardFilled   CardVariant = "filled"
	CardOutlined CardVariant = "outlined"
	CardElevated CardVariant = "elevated"
)

// Card is a container. It has no behavior.
type Card struct {
	Variant CardVariant
	Width   int // Outer width including border; 0 lets content decide
}

func (c Card) style(p theme.Palette) lipgloss.Style {
	switch c.Variant {
	case CardOutlined:
		return lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.Outline).
			Padding(0, 1)
	case CardElevated:
		return lipgloss.NewStyle().
			Border(lipgloss.ThickBorder()).
			BorderForeground(p.SurfaceVariant).
			Background(p.ElevatedCard).
			Padding(1, 2)
	default:
		return lipgloss.NewStyle().
			Background(p.FilledCard).
			Padding(1, 2)
	}
}

// ContentWidth returns the width available to content inside the card
func (c Card) ContentWidth(p theme.Palette) int {
	if c.Width == 0 {
		return 0
	}
	w := c.Width - c.style(p).GetHorizontalFrameSize()
	if w < 1 {
		return 1
	}
	return w
}

// TopInset returns the number of lines between the card's top edge and its
// first content line
func (c Card) TopInset(p theme.Palette) int {
	s := c.style(p)
	return s.GetBorderTopSize() + s.GetPaddingTop()
}

// Render wraps content in the card
func (c Card) Render(p theme.Palette, content string) string {
	s := c.style(p)
	if c.Width > 0 {
		// lipgloss widths include padding but not borders
		s = s.Width(c.Width - s.GetHorizontalBorderSize())
	}
	return s.Render(content)
}
