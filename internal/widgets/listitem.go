package widgets

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/muurk/btautolaunch/internal/theme"
)

// SelectedMarker trails a selected list row
const SelectedMarker = "✓"

// ListItem is one row of a single-selection list
type ListItem struct {
	Title    string
	Subtitle string
	Icon     string
	Selected bool
	Width    int
	OnSelect tea.Cmd
}

// Activate implements Control
func (l ListItem) Activate() tea.Cmd {
	return l.OnSelect
}

// Adjust implements Control; rows have no value
func (l ListItem) Adjust(int) tea.Cmd {
	return nil
}

// Render draws the icon badge, the two text lines and the selection check
func (l ListItem) Render(p theme.Palette, focused bool) string {
	badge := lipgloss.NewStyle().Padding(0, 1)
	row := lipgloss.NewStyle()
	title := lipgloss.NewStyle().Foreground(p.OnSurface)
	subtitle := lipgloss.NewStyle().Foreground(p.Muted)

	if l.Selected {
		badge = badge.Background(p.SelectedBadge).Foreground(p.OnPrimary)
		row = row.Background(p.SelectedRow)
		title = title.Bold(true)
	} else {
		badge = badge.Background(p.SurfaceVariant).Foreground(p.OnSurfaceVariant)
	}

	check := " "
	if l.Selected {
		check = lipgloss.NewStyle().Foreground(p.Primary).Bold(true).Render(SelectedMarker)
	}

	icon := badge.Render(l.Icon)
	text := lipgloss.JoinVertical(lipgloss.Left, title.Render(l.Title), subtitle.Render(l.Subtitle))

	textWidth := l.Width - 1 - lipgloss.Width(icon) - 1 - 2 // focus, gap, check column
	if textWidth > 0 {
		text = lipgloss.NewStyle().Width(textWidth).Render(text)
	}

	body := lipgloss.JoinHorizontal(lipgloss.Center, icon, " ", text, " ", check)
	return lipgloss.JoinHorizontal(lipgloss.Center, focusPrefix(p, focused), row.Render(body))
}
