package automation

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Action type names used on the wire and in logs
const (
	ActionSelectTab    = "select_tab"
	ActionSelectTier   = "select_tier"
	ActionUpdateConfig = "update_config"
)

// Action is a single user interaction. Actions are plain values; they can be
// delivered as Bubble Tea messages.
type Action interface {
	fmt.Stringer

	// Type returns the wire name of the action
	Type() string

	apply(State) State
}

// SelectTab switches the visible screen
type SelectTab struct {
	Tab Tab
}

func (SelectTab) Type() string { return ActionSelectTab }

func (a SelectTab) apply(s State) State {
	s.Tab = a.Tab
	return s
}

func (a SelectTab) String() string {
	return fmt.Sprintf("%s(%s)", ActionSelectTab, a.Tab)
}

// SelectTier changes the reliability tier
type SelectTier struct {
	Tier ReliabilityTier
}

func (SelectTier) Type() string { return ActionSelectTier }

func (a SelectTier) apply(s State) State {
	s.Tier = a.Tier
	return s
}

func (a SelectTier) String() string {
	return fmt.Sprintf("%s(%s)", ActionSelectTier, a.Tier)
}

// UpdateConfig merges a partial rule into the automation config
type UpdateConfig struct {
	Patch ConfigPatch
}

func (UpdateConfig) Type() string { return ActionUpdateConfig }

func (a UpdateConfig) apply(s State) State {
	s.Config = s.Config.Merge(a.Patch)
	return s
}

func (a UpdateConfig) String() string {
	data, err := json.Marshal(a.Patch)
	if err != nil {
		return ActionUpdateConfig
	}
	return fmt.Sprintf("%s(%s)", ActionUpdateConfig, data)
}

// Reduce folds one action into the state and returns the next state.
// A nil action leaves the state unchanged.
func Reduce(s State, a Action) State {
	if a == nil {
		return s
	}
	return a.apply(s)
}

// envelope is the JSON shape of an action
type envelope struct {
	Type   string       `json:"type"`
	Tab    string       `json:"tab,omitempty"`
	Tier   string       `json:"tier,omitempty"`
	Config *ConfigPatch `json:"config,omitempty"`
}

// EncodeAction serialises an action into its JSON envelope
func EncodeAction(a Action) ([]byte, error) {
	var env envelope
	switch a := a.(type) {
	case SelectTab:
		env = envelope{Type: ActionSelectTab, Tab: string(a.Tab)}
	case SelectTier:
		env = envelope{Type: ActionSelectTier, Tier: string(a.Tier)}
	case UpdateConfig:
		patch := a.Patch
		env = envelope{Type: ActionUpdateConfig, Config: &patch}
	default:
		return nil, &ActionError{Message: fmt.Sprintf("cannot encode %T", a)}
	}
	return json.Marshal(env)
}

// DecodeAction parses a JSON envelope such as
//
//	{"type":"select_tab","tab":"audit"}
//	{"type":"select_tier","tier":"High"}
//	{"type":"update_config","config":{"deviceId":"88:44:00:FF:EE:DD"}}
//
// Enumerations must name a known member and launchDelay must lie within
// [MinLaunchDelay, MaxLaunchDelay]. Unknown JSON fields are rejected.
func DecodeAction(data []byte) (Action, error) {
	var env envelope
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&env); err != nil {
		return nil, &ActionError{Message: "malformed JSON", Err: err}
	}

	switch env.Type {
	case ActionSelectTab:
		tab, err := ParseTab(env.Tab)
		if err != nil {
			return nil, &ActionError{Type: env.Type, Field: "tab", Message: "unknown tab", Err: err}
		}
		return SelectTab{Tab: tab}, nil

	case ActionSelectTier:
		tier, err := ParseTier(env.Tier)
		if err != nil {
			return nil, &ActionError{Type: env.Type, Field: "tier", Message: "unknown tier", Err: err}
		}
		return SelectTier{Tier: tier}, nil

	case ActionUpdateConfig:
		if env.Config == nil || env.Config.IsEmpty() {
			return nil, &ActionError{Type: env.Type, Field: "config", Message: "patch carries no field"}
		}
		if d := env.Config.LaunchDelay; d != nil && ClampLaunchDelay(*d) != *d {
			return nil, &ActionError{
				Type:    env.Type,
				Field:   "launchDelay",
				Message: fmt.Sprintf("must be %d-%d, got %d", MinLaunchDelay, MaxLaunchDelay, *d),
			}
		}
		return UpdateConfig{Patch: *env.Config}, nil

	case "":
		return nil, &ActionError{Field: "type", Message: "missing action type"}

	default:
		return nil, &ActionError{Type: env.Type, Field: "type", Message: "unsupported action type"}
	}
}
