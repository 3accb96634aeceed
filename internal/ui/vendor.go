package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/muurk/btautolaunch/internal/catalog"
)

// RestrictionColor returns the border color for a restriction level
func RestrictionColor(level catalog.RestrictionLevel) lipgloss.Color {
	switch level {
	case catalog.RestrictionAggressive:
		return ErrorColor
	case catalog.RestrictionModerate:
		return WarningColor
	default:
		return SuccessColor
	}
}

// RenderVendor renders the background-restriction advisory for one vendor
func RenderVendor(v catalog.VendorInfo, width int) string {
	if width < MinTerminalWidth {
		width = MinTerminalWidth
	}
	color := RestrictionColor(v.RestrictionLevel)
	inner := width - 2 - 2*DefaultPadding

	title := lipgloss.NewStyle().Foreground(TextColor).Bold(true).Render(strings.ToUpper(v.Manufacturer))
	badge := lipgloss.NewStyle().Foreground(color).Bold(true).Render("[" + strings.ToUpper(string(v.RestrictionLevel)) + "]")

	lines := []string{
		title + "  " + badge,
		"",
		lipgloss.NewStyle().Foreground(MutedColor).Width(inner).Render(v.Explanation),
	}
	if len(v.Recommendations) > 0 {
		lines = append(lines, "")
	}
	check := lipgloss.NewStyle().Foreground(SuccessColor).Render(SuccessMarker)
	for _, r := range v.Recommendations {
		lines = append(lines, check+" "+ResultValueStyle.Render(r))
	}

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(color).
		Width(width-2).
		Padding(0, DefaultPadding).
		Render(strings.Join(lines, "\n"))
}
