// Package screens composes the three preview screens (Dashboard, Setup and
// Audit) from widgets and catalog data.
//
// A screen is a pure function of its props: the palette of the theme being
// drawn, the content width, the index of the focused control and the slice
// of application state it displays. It returns a View holding the rendered
// content together with the screen's controls in focus order. Controls carry
// the callbacks supplied in the props; a screen never changes state itself.
package screens
