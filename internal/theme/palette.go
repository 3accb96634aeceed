// Package theme maps the two preview themes to their color palettes.
//
// Colors follow the Material 3 role names (primary, onPrimary, ...). The
// extra roles at the end of Palette cover the phone frame chrome and the
// semantic tones used by the audit log and the status ring.
package theme

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

// Name identifies a theme
type Name string

const (
	Light Name = "light"
	Dark  Name = "dark"
)

// ErrUnknownTheme is returned by Parse for names other than light and dark
var ErrUnknownTheme = errors.New("unknown theme")

// Names returns the themes in preview order (light first)
func Names() []Name {
	return []Name{Light, Dark}
}

// Parse converts a string into a theme Name
func Parse(s string) (Name, error) {
	switch Name(s) {
	case Light, Dark:
		return Name(s), nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownTheme, s)
}

// IsDark reports whether n is the dark theme
func (n Name) IsDark() bool {
	return n == Dark
}

// Tone is a semantic color independent of the theme
type Tone int

const (
	ToneInfo Tone = iota
	ToneDestructive
	ToneSuccess
	ToneHighlight
	ToneWarning
)

// String returns the tone name
func (t Tone) String() string {
	switch t {
	case ToneInfo:
		return "info"
	case ToneDestructive:
		return "destructive"
	case ToneSuccess:
		return "success"
	case ToneHighlight:
		return "highlight"
	case ToneWarning:
		return "warning"
	default:
		return fmt.Sprintf("Tone(%d)", int(t))
	}
}

// Fixed tone colors, identical in both themes
var toneColors = map[Tone]lipgloss.Color{
	ToneInfo:        lipgloss.Color("#3b82f6"), // blue-500
	ToneDestructive: lipgloss.Color("#ef4444"), // red-500
	ToneSuccess:     lipgloss.Color("#22c55e"), // green-500
	ToneHighlight:   lipgloss.Color("#a855f7"), // purple-500
	ToneWarning:     lipgloss.Color("#f59e0b"), // amber-500
}

// ToneColor returns the color of a semantic tone
func ToneColor(t Tone) lipgloss.Color {
	if c, ok := toneColors[t]; ok {
		return c
	}
	return toneColors[ToneInfo]
}

// Palette is the full set of color roles for one theme
type Palette struct {
	Name Name

	Primary              lipgloss.Color
	OnPrimary            lipgloss.Color
	PrimaryContainer     lipgloss.Color
	OnPrimaryContainer   lipgloss.Color
	Secondary            lipgloss.Color
	OnSecondary          lipgloss.Color
	SecondaryContainer   lipgloss.Color
	OnSecondaryContainer lipgloss.Color
	Tertiary             lipgloss.Color
	OnTertiary           lipgloss.Color
	TertiaryContainer    lipgloss.Color
	OnTertiaryContainer  lipgloss.Color
	Error                lipgloss.Color
	OnError              lipgloss.Color
	ErrorContainer       lipgloss.Color
	OnErrorContainer     lipgloss.Color
	Surface              lipgloss.Color
	OnSurface            lipgloss.Color
	SurfaceVariant       lipgloss.Color
	OnSurfaceVariant     lipgloss.Color
	Outline              lipgloss.Color

	// Frame chrome
	FrameBorder    lipgloss.Color // Phone bezel
	NavSurface     lipgloss.Color // Bottom navigation bar
	FilledCard     lipgloss.Color // Background of filled cards
	ElevatedCard   lipgloss.Color // Background of elevated cards
	RingTrack      lipgloss.Color // Unfilled part of the status ring
	SelectedRow    lipgloss.Color // Background of a selected list row
	SelectedBadge  lipgloss.Color // Icon badge of a selected list row
	CaptionSurface lipgloss.Color // Pill above the frame
	CaptionText    lipgloss.Color
	Muted          lipgloss.Color // Secondary text
}

var palettes = map[Name]Palette{
	Light: {
		Name:                 Light,
		Primary:              lipgloss.Color("#005ac1"), // Command Blue
		OnPrimary:            lipgloss.Color("#ffffff"),
		PrimaryContainer:     lipgloss.Color("#d8e2ff"),
		OnPrimaryContainer:   lipgloss.Color("#001a41"),
		Secondary:            lipgloss.Color("#575e71"), // Professional Slate
		OnSecondary:          lipgloss.Color("#ffffff"),
		SecondaryContainer:   lipgloss.Color("#dbe2f9"),
		OnSecondaryContainer: lipgloss.Color("#141b2c"),
		Tertiary:             lipgloss.Color("#715573"), // Subtle Violet
		OnTertiary:           lipgloss.Color("#ffffff"),
		TertiaryContainer:    lipgloss.Color("#fbd7fc"),
		OnTertiaryContainer:  lipgloss.Color("#29132d"),
		Error:                lipgloss.Color("#ba1a1a"),
		OnError:              lipgloss.Color("#ffffff"),
		ErrorContainer:       lipgloss.Color("#ffdad6"),
		OnErrorContainer:     lipgloss.Color("#410002"),
		Surface:              lipgloss.Color("#fdfbff"),
		OnSurface:            lipgloss.Color("#1a1b1f"),
		SurfaceVariant:       lipgloss.Color("#e1e2ec"),
		OnSurfaceVariant:     lipgloss.Color("#44474f"),
		Outline:              lipgloss.Color("#74777f"),

		FrameBorder:    lipgloss.Color("#0f172a"),
		NavSurface:     lipgloss.Color("#f0f4f9"),
		FilledCard:     lipgloss.Color("#f0f4f9"),
		ElevatedCard:   lipgloss.Color("#ffffff"),
		RingTrack:      lipgloss.Color("#eef2f6"),
		SelectedRow:    lipgloss.Color("#d7e3f7"),
		SelectedBadge:  lipgloss.Color("#0061a4"),
		CaptionSurface: lipgloss.Color("#ffffff"),
		CaptionText:    lipgloss.Color("#94a3b8"),
		Muted:          lipgloss.Color("#64748b"),
	},
	Dark: {
		Name:                 Dark,
		Primary:              lipgloss.Color("#adc6ff"), // Electric Sky
		OnPrimary:            lipgloss.Color("#002e69"),
		PrimaryContainer:     lipgloss.Color("#004494"),
		OnPrimaryContainer:   lipgloss.Color("#d8e2ff"),
		Secondary:            lipgloss.Color("#bfc6dc"), // Steel Grey
		OnSecondary:          lipgloss.Color("#293041"),
		SecondaryContainer:   lipgloss.Color("#3f4759"),
		OnSecondaryContainer: lipgloss.Color("#dbe2f9"),
		Tertiary:             lipgloss.Color("#dfbcde"),
		OnTertiary:           lipgloss.Color("#402843"),
		TertiaryContainer:    lipgloss.Color("#583e5a"),
		OnTertiaryContainer:  lipgloss.Color("#fbd7fc"),
		Error:                lipgloss.Color("#ffb4ab"),
		OnError:              lipgloss.Color("#690005"),
		ErrorContainer:       lipgloss.Color("#93000a"),
		OnErrorContainer:     lipgloss.Color("#ffdad6"),
		Surface:              lipgloss.Color("#1a1c1e"), // Deep Space
		OnSurface:            lipgloss.Color("#e2e2e6"),
		SurfaceVariant:       lipgloss.Color("#44474f"),
		OnSurfaceVariant:     lipgloss.Color("#c4c6d0"),
		Outline:              lipgloss.Color("#8e9099"),

		FrameBorder:    lipgloss.Color("#2c2f33"),
		NavSurface:     lipgloss.Color("#212429"),
		FilledCard:     lipgloss.Color("#212429"),
		ElevatedCard:   lipgloss.Color("#25282e"),
		RingTrack:      lipgloss.Color("#2a2c31"),
		SelectedRow:    lipgloss.Color("#3b4858"),
		SelectedBadge:  lipgloss.Color("#9ecaff"),
		CaptionSurface: lipgloss.Color("#1c1d27"),
		CaptionText:    lipgloss.Color("#60a5fa"),
		Muted:          lipgloss.Color("#94a3b8"),
	},
}

// For returns the palette of a theme. Unknown names fall back to light.
func For(n Name) Palette {
	if p, ok := palettes[n]; ok {
		return p
	}
	return palettes[Light]
}

// Lookup returns the palette of a theme or ErrUnknownTheme
func Lookup(n Name) (Palette, error) {
	p, ok := palettes[n]
	if !ok {
		return Palette{}, fmt.Errorf("%w: %q", ErrUnknownTheme, string(n))
	}
	return p, nil
}

// Caption returns the label of the pill shown above the phone frame
func Caption(n Name) string {
	if n.IsDark() {
		return "System: Deep Space"
	}
	return "System: Strategic"
}
