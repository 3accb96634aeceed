package catalog

import "sort"

// RestrictionLevel classifies how aggressively a vendor's Android build
// kills background processes
type RestrictionLevel string

const (
	RestrictionAggressive RestrictionLevel = "Aggressive"
	RestrictionModerate   RestrictionLevel = "Moderate"
	RestrictionNone       RestrictionLevel = "None"
)

// DashboardVendor is the manufacturer whose advisory the dashboard shows.
// It is not derived from the selected device.
const DashboardVendor = "Samsung"

// VendorInfo is the advisory for one manufacturer
type VendorInfo struct {
	Manufacturer     string           `json:"manufacturer"`
	RestrictionLevel RestrictionLevel `json:"restrictionLevel"`
	Explanation      string           `json:"explanation"`
	Recommendations  []string         `json:"recommendations"`
}

var vendorDatabase = map[string]VendorInfo{
	"Samsung": {
		Manufacturer:     "Samsung",
		RestrictionLevel: RestrictionModerate,
		Explanation:      `OneUI enforces strict background limits for non-media-session apps. Requires "Keep open" in Recents.`,
		Recommendations: []string{
			`Disable "Put unused apps to sleep"`,
			"Allow Background Data",
			"Exclude from Battery Optimization",
		},
	},
	"Xiaomi": {
		Manufacturer:     "Xiaomi",
		RestrictionLevel: RestrictionAggressive,
		Explanation:      `MIUI kills background processes within 5 minutes of screen off unless "Autostart" is toggled and Battery Saver is set to "No restrictions".`,
		Recommendations: []string{
			"Enable Autostart",
			"Set Battery Saver to No Restrictions",
			"Lock in App Switcher",
		},
	},
	"Google": {
		Manufacturer:     "Google",
		RestrictionLevel: RestrictionNone,
		Explanation:      "Pixel devices follow standard AOSP Doze behavior. Minimal proprietary intervention.",
		Recommendations: []string{
			"Exclude from Battery Optimization",
		},
	},
	"Huawei": {
		Manufacturer:     "Huawei",
		RestrictionLevel: RestrictionAggressive,
		Explanation:      `EMUI has a "Power Intensive" monitor that kills high-frequency Bluetooth polling.`,
		Recommendations: []string{
			"Disable App Launch Management (Set to Manual)",
			"Allow Background Activity",
		},
	},
}

// VendorTable is a VendorProvider backed by a map keyed by manufacturer
type VendorTable map[string]VendorInfo

// Vendor implements VendorProvider. The key is matched exactly.
func (t VendorTable) Vendor(manufacturer string) (VendorInfo, bool) {
	v, ok := t[manufacturer]
	if !ok {
		return VendorInfo{}, false
	}
	v.Recommendations = append([]string(nil), v.Recommendations...)
	return v, true
}

// Vendors implements VendorProvider, sorted by manufacturer name
func (t VendorTable) Vendors() []VendorInfo {
	names := make([]string, 0, len(t))
	for name := range t {
		names = append(names, name)
	}
	sort.Strings(names)

	out := make([]VendorInfo, 0, len(names))
	for _, name := range names {
		v, _ := t.Vendor(name)
		out = append(out, v)
	}
	return out
}

// StaticVendors returns the built-in vendor database
func StaticVendors() VendorTable {
	return VendorTable(vendorDatabase)
}
