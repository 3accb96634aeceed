package screens

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/muurk/btautolaunch/internal/automation"
	"github.com/muurk/btautolaunch/internal/catalog"
	"github.com/muurk/btautolaunch/internal/theme"
	"github.com/muurk/btautolaunch/internal/widgets"
)

// EngineCaption is the line under the status ring
const EngineCaption = "Engine listening for broadcast intents. Monitoring stack."

// DashboardProps is the state slice and callback the Dashboard consumes
type DashboardProps struct {
	Canvas
	Tier    automation.ReliabilityTier
	Status  automation.ConnectionStatus
	Vendors catalog.VendorProvider

	OnSelectTier func(automation.ReliabilityTier) tea.Cmd
}

// Dashboard renders the status ring, the tier selector and the vendor
// advisory. Its controls are the three tier buttons in enumeration order.
func Dashboard(props DashboardProps) View {
	p := props.Palette
	var l layout

	ringCard := widgets.Card{Variant: widgets.CardElevated, Width: props.Width}
	inner := ringCard.ContentWidth(p)
	caption := lipgloss.NewStyle().
		Foreground(p.Muted).
		Italic(true).
		Width(inner).
		Align(lipgloss.Center).
		Render(EngineCaption)
	ring := lipgloss.PlaceHorizontal(inner, lipgloss.Center, StatusRing(p, props.Status))
	l.add(ringCard.Render(p, ring+"\n\n"+caption))
	l.gap()

	l.add(sectionTitle(p, "Performance Tier"))

	tiers := automation.Tiers()
	buttonWidth := props.Width / len(tiers)
	buttons := make([]string, 0, len(tiers))
	for _, t := range tiers {
		variant := widgets.ButtonTonal
		if t == props.Tier {
			variant = widgets.ButtonFilled
		}
		var onPress tea.Cmd
		if props.OnSelectTier != nil {
			onPress = props.OnSelectTier(t)
		}
		b := widgets.Button{
			Label:   string(t),
			Variant: variant,
			Active:  t == props.Tier,
			Width:   buttonWidth,
			OnPress: onPress,
		}
		buttons = append(buttons, b.Render(p, l.focused(props.Focus)))
		l.control(b)
	}
	l.add(lipgloss.JoinHorizontal(lipgloss.Top, buttons...))
	l.gap()

	if props.Vendors != nil {
		if info, ok := props.Vendors.Vendor(catalog.DashboardVendor); ok {
			l.add(VendorPanel(p, info, props.Width))
		}
	}

	return l.view()
}

// VendorPanel renders the advisory for one manufacturer
func VendorPanel(p theme.Palette, info catalog.VendorInfo, width int) string {
	card := widgets.Card{Variant: widgets.CardFilled, Width: width}
	inner := card.ContentWidth(p)

	title := lipgloss.NewStyle().
		Foreground(p.OnSurface).
		Bold(true).
		Render(strings.ToUpper(info.Manufacturer) + " DIAGNOSTICS")
	badge := lipgloss.NewStyle().
		Foreground(restrictionColor(p, info.RestrictionLevel)).
		Bold(true).
		Render("[" + strings.ToUpper(string(info.RestrictionLevel)) + "]")

	body := lipgloss.NewStyle().Foreground(p.OnSurfaceVariant).Width(inner)
	check := lipgloss.NewStyle().Foreground(p.Primary).Render(widgets.SelectedMarker)

	lines := []string{
		spread(inner, title, badge),
		"",
		body.Render(info.Explanation),
		"",
	}
	for _, r := range info.Recommendations {
		lines = append(lines, check+" "+lipgloss.NewStyle().Foreground(p.OnSurface).Width(inner-2).Render(r))
	}
	return card.Render(p, strings.Join(lines, "\n"))
}

func restrictionColor(p theme.Palette, level catalog.RestrictionLevel) lipgloss.Color {
	switch level {
	case catalog.RestrictionAggressive:
		return p.Error
	case catalog.RestrictionModerate:
		return p.Tertiary
	default:
		return p.Primary
	}
}
