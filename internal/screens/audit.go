package screens

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/muurk/btautolaunch/internal/catalog"
	"github.com/muurk/btautolaunch/internal/theme"
	"github.com/muurk/btautolaunch/internal/widgets"
)

// Audit screen copy
const (
	TitleAudit  = "System Lifecycle Events"
	LogLevel    = "LOG_LEVEL: VERBOSE"
	ExportLabel = "Export Diagnostic Bundle"
	exportIcon  = "⤓"
)

// AuditProps is what the Audit screen consumes
type AuditProps struct {
	Canvas
	Log catalog.EventLog

	// OnExport is attached to the export button; nil leaves it inert
	OnExport tea.Cmd
}

// Audit renders the event log followed by the export button, its only
// control
func Audit(props AuditProps) View {
	p := props.Palette
	var l layout

	l.add(spread(props.Width,
		sectionTitle(p, TitleAudit),
		lipgloss.NewStyle().Foreground(p.Tertiary).Render(LogLevel)))
	l.gap()

	card := widgets.Card{Variant: widgets.CardOutlined, Width: props.Width}
	inner := card.ContentWidth(p)

	var entries []catalog.LogEntry
	if props.Log != nil {
		entries = props.Log.Entries()
	}
	rows := make([]string, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, EventRow(p, e, inner))
	}
	divider := lipgloss.NewStyle().Foreground(p.SurfaceVariant).Render(strings.Repeat("─", max(inner, 1)))
	l.add(card.Render(p, strings.Join(rows, "\n"+divider+"\n")))
	l.gap()

	export := widgets.Button{
		Label:   ExportLabel,
		Icon:    exportIcon,
		Variant: widgets.ButtonText,
		Width:   props.Width,
		OnPress: props.OnExport,
	}
	rendered := export.Render(p, l.focused(props.Focus))
	l.control(export)
	l.add(rendered)

	return l.view()
}

// EventRow renders one log entry: the tone-colored icon, the event kind and
// timestamp on the first line, the details wrapped below
func EventRow(p theme.Palette, e catalog.LogEntry, width int) string {
	style := catalog.StyleFor(e.Event)
	tone := theme.ToneColor(style.Tone)

	icon := lipgloss.NewStyle().Foreground(tone).Bold(true).Render(style.Icon)
	event := lipgloss.NewStyle().Foreground(tone).Bold(true).Render(strings.ToUpper(string(e.Event)))
	stamp := lipgloss.NewStyle().Foreground(p.Muted).Render(e.Timestamp)

	details := lipgloss.NewStyle().Foreground(p.OnSurfaceVariant).PaddingLeft(2)
	if width > 2 {
		details = details.Width(width)
	}

	return spread(width, icon+" "+event, stamp) + "\n" + details.Render(e.Details)
}
