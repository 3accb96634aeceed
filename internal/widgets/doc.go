// Package widgets provides the stateless, theme-aware building blocks of the
// preview screens: Card, Button, Switch, Slider and ListItem.
//
// A widget renders solely from its fields, the palette of the theme being
// drawn and whether it currently holds keyboard focus. Widgets never mutate
// anything themselves. Interactive widgets carry caller-supplied callbacks
// expressed as Bubble Tea commands; activating a widget hands that command
// back to the caller, which returns it from its Update function:
//
//	btn := widgets.Button{
//	    Label:   "High",
//	    OnPress: widgets.Emit(automation.SelectTier{Tier: automation.TierHigh}),
//	}
//	cmd := btn.Activate() // exactly one command per interaction
//
// Every interactive widget implements Control, which is what the root
// controller drives from key presses.
package widgets
