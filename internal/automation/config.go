package automation

// Launch delay bounds in seconds (inclusive)
const (
	MinLaunchDelay = 0
	MaxLaunchDelay = 10
)

// Default rule values used at application start
const (
	DefaultDeviceID    = "4C:32:75:A1:B2:C3"
	DefaultPackageName = "com.spotify.music"
	DefaultLaunchDelay = 2
)

// AutomationConfig is the user-editable automation rule: which paired device
// triggers the launch, which media player is launched and under which
// conditions.
type AutomationConfig struct {
	DeviceID     string `json:"deviceId"`
	PackageName  string `json:"packageName"`
	LaunchDelay  int    `json:"launchDelay"` // seconds, 0-10
	CheckNetwork bool   `json:"checkNetwork"`
	CheckRSSI    bool   `json:"checkRssi"`
}

// DefaultConfig returns the rule the app starts with
func DefaultConfig() AutomationConfig {
	return AutomationConfig{
		DeviceID:     DefaultDeviceID,
		PackageName:  DefaultPackageName,
		LaunchDelay:  DefaultLaunchDelay,
		CheckNetwork: true,
		CheckRSSI:    false,
	}
}

// ConfigPatch is a partial AutomationConfig. Nil fields are left unchanged
// when the patch is merged.
type ConfigPatch struct {
	DeviceID     *string `json:"deviceId,omitempty"`
	PackageName  *string `json:"packageName,omitempty"`
	LaunchDelay  *int    `json:"launchDelay,omitempty"`
	CheckNetwork *bool   `json:"checkNetwork,omitempty"`
	CheckRSSI    *bool   `json:"checkRssi,omitempty"`
}

// IsEmpty reports whether the patch carries no field at all
func (p ConfigPatch) IsEmpty() bool {
	return p.DeviceID == nil && p.PackageName == nil && p.LaunchDelay == nil &&
		p.CheckNetwork == nil && p.CheckRSSI == nil
}

// Merge returns a copy of c with every field present in p replaced.
// Last write wins per field; nothing is validated.
func (c AutomationConfig) Merge(p ConfigPatch) AutomationConfig {
	if p.DeviceID != nil {
		c.DeviceID = *p.DeviceID
	}
	if p.PackageName != nil {
		c.PackageName = *p.PackageName
	}
	if p.LaunchDelay != nil {
		c.LaunchDelay = *p.LaunchDelay
	}
	if p.CheckNetwork != nil {
		c.CheckNetwork = *p.CheckNetwork
	}
	if p.CheckRSSI != nil {
		c.CheckRSSI = *p.CheckRSSI
	}
	return c
}

// ClampLaunchDelay bounds v to [MinLaunchDelay, MaxLaunchDelay]
func ClampLaunchDelay(v int) int {
	if v < MinLaunchDelay {
		return MinLaunchDelay
	}
	if v > MaxLaunchDelay {
		return MaxLaunchDelay
	}
	return v
}

// WithDeviceID returns a patch that only sets the target device
func WithDeviceID(id string) ConfigPatch {
	return ConfigPatch{DeviceID: &id}
}

// WithPackageName returns a patch that only sets the media player package
func WithPackageName(pkg string) ConfigPatch {
	return ConfigPatch{PackageName: &pkg}
}

// WithLaunchDelay returns a patch that only sets the launch delay
func WithLaunchDelay(seconds int) ConfigPatch {
	return ConfigPatch{LaunchDelay: &seconds}
}

// WithCheckNetwork returns a patch that only sets the network requirement
func WithCheckNetwork(enabled bool) ConfigPatch {
	return ConfigPatch{CheckNetwork: &enabled}
}

// WithCheckRSSI returns a patch that only sets the signal quality requirement
func WithCheckRSSI(enabled bool) ConfigPatch {
	return ConfigPatch{CheckRSSI: &enabled}
}
