package screens

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/muurk/btautolaunch/internal/theme"
	"github.com/muurk/btautolaunch/internal/widgets"
)

// NoFocus is the Focus value for a screen without a focused control
const NoFocus = -1

// Canvas carries the props shared by every screen
type Canvas struct {
	Palette theme.Palette
	Width   int // Content width in cells
	Focus   int // Index into View.Controls, or NoFocus
}

// View is a rendered screen
type View struct {
	Content  string
	Controls []widgets.Control

	// ControlLines holds, for each control, the content line it is drawn on
	ControlLines []int
}

// FocusLine returns the line of the control at index focus, or 0
func (v View) FocusLine(focus int) int {
	if focus < 0 || focus >= len(v.ControlLines) {
		return 0
	}
	return v.ControlLines[focus]
}

// layout stacks blocks vertically and remembers where controls land
type layout struct {
	blocks   []string
	lines    int
	controls []widgets.Control
	at       []int
}

func (l *layout) add(block string) {
	l.blocks = append(l.blocks, block)
	l.lines += lipgloss.Height(block)
}

func (l *layout) gap() {
	l.add("")
}

// control records c at the current line; the block is added separately so
// that several controls can share one line
func (l *layout) control(c widgets.Control) {
	l.controls = append(l.controls, c)
	l.at = append(l.at, l.lines)
}

// focused reports whether the next control to be recorded holds focus
func (l *layout) focused(focus int) bool {
	return len(l.controls) == focus
}

// nest adds a card whose inner layout was built separately, shifting the
// inner control lines by the card's top inset
func (l *layout) nest(inner *layout, card widgets.Card, p theme.Palette) {
	offset := l.lines + card.TopInset(p)
	for i, c := range inner.controls {
		l.controls = append(l.controls, c)
		l.at = append(l.at, offset+inner.at[i])
	}
	l.add(card.Render(p, inner.String()))
}

func (l *layout) String() string {
	return strings.Join(l.blocks, "\n")
}

func (l *layout) view() View {
	return View{
		Content:      l.String(),
		Controls:     l.controls,
		ControlLines: l.at,
	}
}

// sectionTitle renders the small upper-case heading above a group
func sectionTitle(p theme.Palette, text string) string {
	return lipgloss.NewStyle().
		Foreground(p.Muted).
		Bold(true).
		PaddingLeft(1).
		Render(strings.ToUpper(text))
}

// spread places left and right on one line of the given width, or stacks
// them when they do not fit
func spread(width int, left, right string) string {
	gap := width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		if width > 0 {
			return left + "\n" + right
		}
		gap = 1
	}
	return left + strings.Repeat(" ", gap) + right
}
