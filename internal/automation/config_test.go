package automation

import "testing"

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.DeviceID != "4C:32:75:A1:B2:C3" {
		t.Errorf("DeviceID = %v, want 4C:32:75:A1:B2:C3", cfg.DeviceID)
	}
	if cfg.PackageName != "com.spotify.music" {
		t.Errorf("PackageName = %v, want com.spotify.music", cfg.PackageName)
	}
	if cfg.LaunchDelay != 2 {
		t.Errorf("LaunchDelay = %v, want 2", cfg.LaunchDelay)
	}
	if !cfg.CheckNetwork {
		t.Error("CheckNetwork should be enabled by default")
	}
	if cfg.CheckRSSI {
		t.Error("CheckRSSI should be disabled by default")
	}
}

func TestAutomationConfig_Merge(t *testing.T) {
	base := DefaultConfig()

	tests := []struct {
		name  string
		patch ConfigPatch
		want  AutomationConfig
	}{
		{
			name:  "empty patch leaves everything unchanged",
			patch: ConfigPatch{},
			want:  base,
		},
		{
			name:  "device only",
			patch: WithDeviceID("88:44:00:FF:EE:DD"),
			want: AutomationConfig{
				DeviceID:     "88:44:00:FF:EE:DD",
				PackageName:  base.PackageName,
				LaunchDelay:  base.LaunchDelay,
				CheckNetwork: base.CheckNetwork,
				CheckRSSI:    base.CheckRSSI,
			},
		},
		{
			name:  "package only",
			patch: WithPackageName("org.videolan.vlc"),
			want: AutomationConfig{
				DeviceID:     base.DeviceID,
				PackageName:  "org.videolan.vlc",
				LaunchDelay:  base.LaunchDelay,
				CheckNetwork: base.CheckNetwork,
				CheckRSSI:    base.CheckRSSI,
			},
		},
		{
			name:  "false overrides true",
			patch: WithCheckNetwork(false),
			want: AutomationConfig{
				DeviceID:     base.DeviceID,
				PackageName:  base.PackageName,
				LaunchDelay:  base.LaunchDelay,
				CheckNetwork: false,
				CheckRSSI:    base.CheckRSSI,
			},
		},
		{
			name:  "zero delay is applied",
			patch: WithLaunchDelay(0),
			want: AutomationConfig{
				DeviceID:     base.DeviceID,
				PackageName:  base.PackageName,
				LaunchDelay:  0,
				CheckNetwork: base.CheckNetwork,
				CheckRSSI:    base.CheckRSSI,
			},
		},
		{
			name:  "unknown identifiers are accepted",
			patch: WithDeviceID("not-in-catalog"),
			want: AutomationConfig{
				DeviceID:     "not-in-catalog",
				PackageName:  base.PackageName,
				LaunchDelay:  base.LaunchDelay,
				CheckNetwork: base.CheckNetwork,
				CheckRSSI:    base.CheckRSSI,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := base.Merge(tt.patch); got != tt.want {
				t.Errorf("Merge() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestAutomationConfig_MergeDoesNotMutateReceiver(t *testing.T) {
	base := DefaultConfig()
	_ = base.Merge(WithDeviceID("00:11:22:33:44:55"))

	if base.DeviceID != DefaultDeviceID {
		t.Errorf("receiver was mutated: DeviceID = %v", base.DeviceID)
	}
}

func TestAutomationConfig_MergeLastWriteWins(t *testing.T) {
	cfg := DefaultConfig().
		Merge(WithLaunchDelay(7)).
		Merge(WithLaunchDelay(3))

	if cfg.LaunchDelay != 3 {
		t.Errorf("LaunchDelay = %v, want 3", cfg.LaunchDelay)
	}
}

func TestClampLaunchDelay(t *testing.T) {
	tests := []struct {
		in   int
		want int
	}{
		{-5, 0},
		{0, 0},
		{5, 5},
		{10, 10},
		{11, 10},
		{1000, 10},
	}

	for _, tt := range tests {
		if got := ClampLaunchDelay(tt.in); got != tt.want {
			t.Errorf("ClampLaunchDelay(%d) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestConfigPatch_IsEmpty(t *testing.T) {
	if !(ConfigPatch{}).IsEmpty() {
		t.Error("zero patch should be empty")
	}
	if WithCheckRSSI(false).IsEmpty() {
		t.Error("patch with a false field should not be empty")
	}
}
