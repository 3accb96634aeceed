package preview

import (
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	"github.com/charmbracelet/lipgloss"

	"github.com/muurk/btautolaunch/internal/automation"
	"github.com/muurk/btautolaunch/internal/screens"
	"github.com/muurk/btautolaunch/internal/theme"
	"github.com/muurk/btautolaunch/internal/widgets"
)

// App chrome copy
const (
	AppTitle    = "BTAUTOLAUNCH"
	AppSubtitle = "INDIGO SYSTEM 4.0"
	ClockText   = "9:41"
	statusIcons = "▂▄▆█ ⌔ ▰▰▰▱"
)

// Bottom navigation, in tab order
var navItems = []struct {
	tab   automation.Tab
	label string
	icon  string
}{
	{automation.TabDashboard, "Status", "◉"},
	{automation.TabSetup, "Rules", "✎"},
	{automation.TabAudit, "Logs", "☰"},
}

// Frame geometry. The bezel has a rounded border and one column of padding
// on each side.
const (
	bezelFrame = 4
	// Caption pill, two bezel borders, status bar, two header lines,
	// divider and navigation
	chromeLines = 8
	minContent  = 4
	frameGap    = "   "
)

func (m AppModel) contentWidth() int {
	return m.FrameWidth - bezelFrame
}

func (m AppModel) contentHeight() int {
	return max(m.FrameHeight-chromeLines, minContent)
}

// navButtons builds the bottom navigation for the active tab
func (m AppModel) navButtons(p theme.Palette) []widgets.Button {
	width := m.contentWidth() / len(navItems)
	buttons := make([]widgets.Button, 0, len(navItems))
	for _, item := range navItems {
		variant := widgets.ButtonText
		if item.tab == m.State.Tab {
			variant = widgets.ButtonFilled
		}
		buttons = append(buttons, widgets.Button{
			Label:   item.label,
			Icon:    item.icon,
			Variant: variant,
			Width:   width,
			OnPress: selectTab(item.tab),
		})
	}
	return buttons
}

// View renders one frame per theme side by side, followed by help
func (m AppModel) View() string {
	frames := make([]string, 0, 2*len(m.Themes))
	for i, name := range m.Themes {
		if i > 0 {
			frames = append(frames, frameGap)
		}
		frames = append(frames, m.frame(name))
	}
	out := lipgloss.JoinHorizontal(lipgloss.Top, frames...)

	if !m.Static {
		out += "\n" + lipgloss.NewStyle().Padding(0, 1).Render(m.Help.View(m.Keys))
	}
	if m.Width > lipgloss.Width(out) {
		out = lipgloss.PlaceHorizontal(m.Width, lipgloss.Center, out)
	}
	return out
}

// frame renders the phone frame for one theme
func (m AppModel) frame(name theme.Name) string {
	p := theme.For(name)
	width := m.contentWidth()
	focus := m.Focus()

	view := m.screen(p, focus)

	vp := viewport.New(width, m.contentHeight())
	vp.SetContent(view.Content)
	vp.SetYOffset(m.scroll())

	body := lipgloss.JoinVertical(lipgloss.Left,
		m.statusBar(p, width),
		m.header(p, width),
		lipgloss.NewStyle().Foreground(p.SurfaceVariant).Render(strings.Repeat("─", width)),
		vp.View(),
		m.navBar(p, width, focus-len(view.Controls)),
	)

	bezel := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(p.FrameBorder).
		Background(p.Surface).
		Foreground(p.OnSurface).
		Padding(0, 1).
		Width(m.FrameWidth - 2).
		Render(body)

	caption := lipgloss.NewStyle().
		Background(p.CaptionSurface).
		Foreground(p.CaptionText).
		Bold(true).
		Padding(0, 1).
		Render(theme.Caption(name))

	return lipgloss.JoinVertical(lipgloss.Center, caption, bezel)
}

func (m AppModel) statusBar(p theme.Palette, width int) string {
	style := lipgloss.NewStyle().Foreground(p.OnSurfaceVariant)
	left := style.Bold(true).Render(ClockText)
	right := style.Render(statusIcons)
	gap := max(width-lipgloss.Width(left)-lipgloss.Width(right), 1)
	return left + strings.Repeat(" ", gap) + right
}

func (m AppModel) header(p theme.Palette, width int) string {
	title := lipgloss.NewStyle().Foreground(p.Primary).Bold(true).Render(AppTitle)
	subtitle := lipgloss.NewStyle().Foreground(p.Muted).Render(AppSubtitle)

	status := m.State.Status
	chip := lipgloss.NewStyle().
		Foreground(screens.RingColor(p, status)).
		Bold(true).
		Render("● " + strings.ToUpper(string(status)))

	gap := max(width-lipgloss.Width(title)-lipgloss.Width(chip), 1)
	return title + strings.Repeat(" ", gap) + chip + "\n" + subtitle
}

// navBar renders the bottom navigation; focus indexes the nav buttons
func (m AppModel) navBar(p theme.Palette, width, focus int) string {
	buttons := m.navButtons(p)
	rendered := make([]string, 0, len(buttons))
	for i, b := range buttons {
		rendered = append(rendered, b.Render(p, i == focus))
	}
	return lipgloss.NewStyle().
		Background(p.NavSurface).
		Width(width).
		Render(lipgloss.JoinHorizontal(lipgloss.Center, rendered...))
}
