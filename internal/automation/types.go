package automation

// Tab identifies one of the three screens of the app
type Tab string

const (
	TabDashboard Tab = "dashboard"
	TabSetup     Tab = "setup"
	TabAudit     Tab = "audit"
)

var tabs = []Tab{TabDashboard, TabSetup, TabAudit}

// Tabs returns all tabs in bottom-navigation order
func Tabs() []Tab {
	return append([]Tab(nil), tabs...)
}

// ParseTab converts a string into a Tab
func ParseTab(s string) (Tab, error) {
	for _, t := range tabs {
		if string(t) == s {
			return t, nil
		}
	}
	return "", unknownValue("tab", s)
}

// Index returns the position of the tab in navigation order, or -1
func (t Tab) Index() int {
	for i, candidate := range tabs {
		if candidate == t {
			return i
		}
	}
	return -1
}

// Next returns the tab to the right, wrapping around
func (t Tab) Next() Tab {
	return tabs[(t.Index()+1+len(tabs))%len(tabs)]
}

// Prev returns the tab to the left, wrapping around
func (t Tab) Prev() Tab {
	i := t.Index()
	if i < 0 {
		i = 0
	}
	return tabs[(i-1+len(tabs))%len(tabs)]
}

// ReliabilityTier is the coarse performance/aggressiveness profile
type ReliabilityTier string

const (
	TierEco      ReliabilityTier = "Eco"
	TierBalanced ReliabilityTier = "Balanced"
	TierHigh     ReliabilityTier = "High"
)

var tiers = []ReliabilityTier{TierEco, TierBalanced, TierHigh}

// Tiers returns all tiers in selector order
func Tiers() []ReliabilityTier {
	return append([]ReliabilityTier(nil), tiers...)
}

// ParseTier converts a string into a ReliabilityTier
func ParseTier(s string) (ReliabilityTier, error) {
	for _, t := range tiers {
		if string(t) == s {
			return t, nil
		}
	}
	return "", unknownValue("tier", s)
}

// ConnectionStatus is the mocked state of the automation engine
type ConnectionStatus string

const (
	StatusReady     ConnectionStatus = "Ready"
	StatusSearching ConnectionStatus = "Searching"
	StatusConnected ConnectionStatus = "Connected"
	StatusError     ConnectionStatus = "Error"
)

var statuses = []ConnectionStatus{StatusReady, StatusSearching, StatusConnected, StatusError}

// Statuses returns every connection status
func Statuses() []ConnectionStatus {
	return append([]ConnectionStatus(nil), statuses...)
}

// ParseStatus converts a string into a ConnectionStatus
func ParseStatus(s string) (ConnectionStatus, error) {
	for _, st := range statuses {
		if string(st) == s {
			return st, nil
		}
	}
	return "", unknownValue("status", s)
}
