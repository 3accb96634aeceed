// Package preview implements the interactive dual-theme preview of the
// BtAutoLaunch app.
//
// AppModel is the root Bubble Tea model. It owns the single automation.State
// value and renders the active screen once per theme, each inside a phone
// frame with its caption pill, status bar, app header and bottom navigation.
// Every frame is drawn from the same state.
//
// Widgets never mutate state. Their callbacks are commands yielding
// automation.Action messages, which Update folds into the state with
// automation.Reduce.
//
// # Keys
//
//   - 1/2/3, tab/shift+tab: select a tab
//   - ↑/↓: move focus between controls
//   - enter/space: activate the focused control
//   - ←/→: adjust the focused slider
//   - ?: toggle full help
//   - q/ctrl+c: quit
//
// # Usage
//
//	m := preview.New(preview.WithFrameSize(44, 44))
//	if _, err := tea.NewProgram(m, tea.WithAltScreen()).Run(); err != nil {
//	    return err
//	}
//
// Render draws a static frame set with no focus or help, for snapshots and
// the preview server.
package preview
