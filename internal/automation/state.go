package automation

// State is the single source of truth of the app
type State struct {
	Tab    Tab              `json:"tab"`
	Tier   ReliabilityTier  `json:"tier"`
	Status ConnectionStatus `json:"status"`
	Config AutomationConfig `json:"config"`
}

// DefaultState returns the state the app starts with
func DefaultState() State {
	return State{
		Tab:    TabDashboard,
		Tier:   TierBalanced,
		Status: StatusReady,
		Config: DefaultConfig(),
	}
}
