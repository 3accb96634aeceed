package screens

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/muurk/btautolaunch/internal/automation"
	"github.com/muurk/btautolaunch/internal/theme"
)

// Ring geometry. Terminal cells are roughly twice as tall as they are wide,
// so the horizontal axis is stretched by ringAspect.
const (
	ringRows   = 11
	ringCols   = 23
	ringRadius = 4.5
	ringAspect = 2.0
	ringStroke = 0.55

	ringOn  = "●"
	ringOff = "·"
)

// LinkID is the fixed link label drawn inside the ring
const LinkID = "LINK_ID: 001"

// Connected and error ring colors are fixed across themes
var (
	ringConnected = lipgloss.Color("#34a853")
	ringError     = lipgloss.Color("#ea4335")
)

// RingOffset returns the undrawn share of the status ring
func RingOffset(s automation.ConnectionStatus) float64 {
	switch s {
	case automation.StatusReady:
		return 0.25
	case automation.StatusConnected:
		return 0
	default:
		return 0.75
	}
}

// RingFill returns the drawn share of the status ring
func RingFill(s automation.ConnectionStatus) float64 {
	return 1 - RingOffset(s)
}

// RingColor returns the arc color for a status
func RingColor(p theme.Palette, s automation.ConnectionStatus) lipgloss.Color {
	switch s {
	case automation.StatusReady:
		return p.Primary
	case automation.StatusSearching:
		return p.Tertiary
	case automation.StatusConnected:
		return ringConnected
	default:
		return ringError
	}
}

// StatusIcon returns the glyph drawn at the center of the ring
func StatusIcon(s automation.ConnectionStatus) string {
	switch s {
	case automation.StatusReady:
		return "⛨"
	case automation.StatusSearching:
		return "⌕"
	default:
		return "⬡"
	}
}

// ringCell classifies one grid cell: 0 outside the stroke, 1 on the drawn
// arc, 2 on the track
func ringCell(row, col int, fill float64) int {
	dx := (float64(col) - float64(ringCols-1)/2) / ringAspect
	dy := float64(row) - float64(ringRows-1)/2
	if math.Abs(math.Hypot(dx, dy)-ringRadius) >= ringStroke {
		return 0
	}
	// Clockwise from twelve o'clock
	angle := math.Atan2(dx, -dy)
	if angle < 0 {
		angle += 2 * math.Pi
	}
	if angle/(2*math.Pi) < fill {
		return 1
	}
	return 2
}

// StatusRing draws the connection ring with the status icon, label and link
// id inside it
func StatusRing(p theme.Palette, s automation.ConnectionStatus) string {
	on := lipgloss.NewStyle().Foreground(RingColor(p, s))
	off := lipgloss.NewStyle().Foreground(p.RingTrack)
	fill := RingFill(s)

	overlay := map[int]string{
		ringRows/2 - 1: on.Render(StatusIcon(s)),
		ringRows / 2:   lipgloss.NewStyle().Foreground(p.OnSurface).Bold(true).Render(strings.ToUpper(string(s))),
		ringRows/2 + 1: lipgloss.NewStyle().Foreground(p.Muted).Render(LinkID),
	}

	lines := make([]string, ringRows)
	for row := 0; row < ringRows; row++ {
		text, hasText := overlay[row]
		var b strings.Builder
		col := 0
		for col < ringCols {
			if hasText && col == (ringCols-lipgloss.Width(text))/2 {
				b.WriteString(text)
				col += lipgloss.Width(text)
				continue
			}
			switch ringCell(row, col, fill) {
			case 1:
				b.WriteString(on.Render(ringOn))
			case 2:
				b.WriteString(off.Render(ringOff))
			default:
				b.WriteByte(' ')
			}
			col++
		}
		lines[row] = b.String()
	}
	return strings.Join(lines, "\n")
}
