// Package automation holds the state model of the BtAutoLaunch preview.
//
// The whole application state is a single State value: the visible tab, the
// selected reliability tier, the mocked connection status and the
// user-editable automation rule. State never changes in place. Every user
// interaction is expressed as an Action and folded into the next state with
// Reduce:
//
//	state := automation.DefaultState()
//	state = automation.Reduce(state, automation.SelectTab{Tab: automation.TabSetup})
//	state = automation.Reduce(state, automation.UpdateConfig{
//	    Patch: automation.WithDeviceID("88:44:00:FF:EE:DD"),
//	})
//
// # Merge Semantics
//
// UpdateConfig carries a ConfigPatch whose fields are pointers. Only the
// non-nil fields replace the corresponding AutomationConfig fields; the rest
// are left untouched. There is no validation and no rejection path: device
// and package identifiers are free strings that are not checked against the
// catalog.
//
// # Connection Status
//
// ConnectionStatus is display-only. No action transitions it; it is fixed
// when the state is created (see catalog.StatusProbe).
//
// # Wire Format
//
// Actions arriving from the preview server are decoded with DecodeAction.
// This is the only place where input is validated, because it is the only
// place where input is not drawn from a closed set of on-screen options.
package automation
