package preview

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"

	"github.com/muurk/btautolaunch/internal/automation"
	"github.com/muurk/btautolaunch/internal/catalog"
	"github.com/muurk/btautolaunch/internal/screens"
	"github.com/muurk/btautolaunch/internal/theme"
	"github.com/muurk/btautolaunch/internal/widgets"
)

// Key messages as Bubble Tea delivers them
var (
	keyDown     = tea.KeyMsg{Type: tea.KeyDown}
	keyUp       = tea.KeyMsg{Type: tea.KeyUp}
	keyLeft     = tea.KeyMsg{Type: tea.KeyLeft}
	keyRight    = tea.KeyMsg{Type: tea.KeyRight}
	keyEnter    = tea.KeyMsg{Type: tea.KeyEnter}
	keySpace    = tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	keyTab      = tea.KeyMsg{Type: tea.KeyTab}
	keyShiftTab = tea.KeyMsg{Type: tea.KeyShiftTab}
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// send feeds msgs through Update, running every returned command and feeding
// its message back until the model settles
func send(t *testing.T, m AppModel, msgs ...tea.Msg) AppModel {
	t.Helper()
	for _, msg := range msgs {
		queue := []tea.Msg{msg}
		for len(queue) > 0 {
			next := queue[0]
			queue = queue[1:]
			updated, cmd := m.Update(next)
			m = updated.(AppModel)
			if cmd == nil {
				continue
			}
			out := cmd()
			if _, quit := out.(tea.QuitMsg); quit || out == nil {
				continue
			}
			queue = append(queue, out)
		}
	}
	return m
}

func repeat(msg tea.Msg, n int) []tea.Msg {
	msgs := make([]tea.Msg, n)
	for i := range msgs {
		msgs[i] = msg
	}
	return msgs
}

func plain(m AppModel) string {
	return ansi.Strip(m.View())
}

func TestNew_Defaults(t *testing.T) {
	m := New()
	if m.State != automation.DefaultState() {
		t.Errorf("State = %+v, want defaults", m.State)
	}
	if len(m.Themes) != 2 {
		t.Errorf("Themes = %v, want light and dark", m.Themes)
	}
	if m.Focus() != 0 {
		t.Errorf("Focus() = %d, want 0", m.Focus())
	}
}

func TestNew_Options(t *testing.T) {
	providers := catalog.StaticProviders()
	providers.Status = catalog.FixedStatus(automation.StatusSearching)

	m := New(
		WithProviders(providers),
		WithThemes(theme.Dark),
		WithFrameSize(10, 10),
	)
	if m.State.Status != automation.StatusSearching {
		t.Errorf("Status = %s, want the probe's status", m.State.Status)
	}
	if len(m.Themes) != 1 || m.Themes[0] != theme.Dark {
		t.Errorf("Themes = %v", m.Themes)
	}
	if m.FrameWidth != MinFrameWidth || m.FrameHeight != MinFrameHeight {
		t.Errorf("frame = %dx%d, want the minimum", m.FrameWidth, m.FrameHeight)
	}
}

func TestView_BothThemes(t *testing.T) {
	out := plain(New())

	for _, want := range []string{
		theme.Caption(theme.Light),
		theme.Caption(theme.Dark),
		AppSubtitle,
		ClockText,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("view lacks %q", want)
		}
	}
	if n := strings.Count(out, AppTitle); n != 2 {
		t.Errorf("%d app headers, want 2", n)
	}
	if n := strings.Count(out, screens.LinkID); n != 2 {
		t.Errorf("%d status rings, want 2", n)
	}
}

func TestTabNavigation(t *testing.T) {
	tests := []struct {
		name string
		keys []tea.Msg
		want automation.Tab
	}{
		{"digit 2", []tea.Msg{runes("2")}, automation.TabSetup},
		{"digit 3", []tea.Msg{runes("3")}, automation.TabAudit},
		{"digit 1 after 3", []tea.Msg{runes("3"), runes("1")}, automation.TabDashboard},
		{"tab", []tea.Msg{keyTab}, automation.TabSetup},
		{"tab wraps", repeat(keyTab, 3), automation.TabDashboard},
		{"shift+tab wraps", []tea.Msg{keyShiftTab}, automation.TabAudit},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := send(t, New(), tt.keys...)
			if m.State.Tab != tt.want {
				t.Errorf("Tab = %s, want %s", m.State.Tab, tt.want)
			}
		})
	}
}

func TestNavButtons(t *testing.T) {
	// Dashboard has three tier buttons, then navigation
	m := send(t, New(), repeat(keyDown, 5)...)
	if m.Focus() != 5 {
		t.Fatalf("Focus() = %d, want 5", m.Focus())
	}
	m = send(t, m, keyEnter)
	if m.State.Tab != automation.TabAudit {
		t.Errorf("Tab = %s after pressing LOGS, want audit", m.State.Tab)
	}
}

func TestFocusWraps(t *testing.T) {
	m := send(t, New(), keyUp)
	if want := 3 + len(navItems) - 1; m.Focus() != want {
		t.Errorf("Focus() = %d, want %d", m.Focus(), want)
	}
	m = send(t, m, keyDown)
	if m.Focus() != 0 {
		t.Errorf("Focus() = %d, want 0", m.Focus())
	}
}

func TestFocusIsPerTab(t *testing.T) {
	m := send(t, New(), keyDown, keyDown, runes("2"), keyDown, runes("1"))
	if m.Focus() != 2 {
		t.Errorf("dashboard focus = %d, want 2", m.Focus())
	}
	m = send(t, m, runes("2"))
	if m.Focus() != 1 {
		t.Errorf("setup focus = %d, want 1", m.Focus())
	}
}

func TestSelectTier(t *testing.T) {
	m := send(t, New(), keyDown, keyDown, keyEnter)
	if m.State.Tier != automation.TierHigh {
		t.Fatalf("Tier = %s, want High", m.State.Tier)
	}
	if m.State.Config != automation.DefaultConfig() {
		t.Error("tier selection changed the config")
	}

	out := plain(m)
	if n := strings.Count(out, widgets.ActiveMarker+" HIGH"); n != 2 {
		t.Errorf("High highlighted in %d frames, want 2", n)
	}
	if n := strings.Count(out, widgets.ActiveMarker); n != 2 {
		t.Errorf("%d highlighted tiers across both frames, want 2", n)
	}
}

// Selecting the BMW on the Setup tab changes only the device; both frames
// show it selected.
func TestSelectBMW(t *testing.T) {
	m := send(t, New(), runes("2"), keyDown, keyEnter)

	want := automation.DefaultConfig()
	want.DeviceID = "88:44:00:FF:EE:DD"
	if m.State.Config != want {
		t.Errorf("Config = %+v, want %+v", m.State.Config, want)
	}
	if m.State.Tab != automation.TabSetup {
		t.Errorf("Tab = %s, want setup", m.State.Tab)
	}

	out := plain(m)
	if n := strings.Count(out, "BMW 520i"); n != 2 {
		t.Errorf("BMW shown in %d frames, want 2", n)
	}
	// One device and one player per frame
	if n := strings.Count(out, widgets.SelectedMarker); n != 4 {
		t.Errorf("%d selected rows, want 4", n)
	}
}

func TestSelectPlayer(t *testing.T) {
	devices := len(catalog.StaticDevices())
	keys := append([]tea.Msg{runes("2")}, repeat(keyDown, devices+2)...)
	m := send(t, New(), append(keys, keySpace)...)

	if got := m.State.Config.PackageName; got != "com.apple.android.music" {
		t.Errorf("PackageName = %q", got)
	}
	if m.State.Config.DeviceID != automation.DefaultDeviceID {
		t.Error("player selection changed the device")
	}
}

func sliderIndex() int {
	return len(catalog.StaticDevices()) + len(catalog.StaticPlayers())
}

func TestLaunchDelaySlider(t *testing.T) {
	keys := append([]tea.Msg{runes("2")}, repeat(keyDown, sliderIndex())...)
	m := send(t, New(), keys...)

	m = send(t, m, keyRight)
	if m.State.Config.LaunchDelay != 3 {
		t.Errorf("LaunchDelay = %d after →, want 3", m.State.Config.LaunchDelay)
	}

	m = send(t, m, repeat(keyLeft, 5)...)
	if m.State.Config.LaunchDelay != automation.MinLaunchDelay {
		t.Errorf("LaunchDelay = %d, want the minimum", m.State.Config.LaunchDelay)
	}

	m = send(t, m, repeat(keyRight, 20)...)
	if m.State.Config.LaunchDelay != automation.MaxLaunchDelay {
		t.Errorf("LaunchDelay = %d, want the maximum", m.State.Config.LaunchDelay)
	}
	if !strings.Contains(plain(m), "10s") {
		t.Error("slider label not updated")
	}

	// Enter does nothing on a slider
	before := m.State
	m = send(t, m, keyEnter)
	if m.State != before {
		t.Error("enter changed state on the slider")
	}
}

func TestSwitchDoubleToggle(t *testing.T) {
	tests := []struct {
		name   string
		offset int
		get    func(automation.AutomationConfig) bool
	}{
		{"network", 1, func(c automation.AutomationConfig) bool { return c.CheckNetwork }},
		{"rssi", 2, func(c automation.AutomationConfig) bool { return c.CheckRSSI }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			keys := append([]tea.Msg{runes("2")}, repeat(keyDown, sliderIndex()+tt.offset)...)
			m := send(t, New(), keys...)
			initial := m.State.Config

			m = send(t, m, keyEnter)
			if tt.get(m.State.Config) == tt.get(initial) {
				t.Fatal("first toggle did not flip the flag")
			}
			m = send(t, m, keyEnter)
			if m.State.Config != initial {
				t.Errorf("double toggle: got %+v, want %+v", m.State.Config, initial)
			}
		})
	}
}

func TestAuditTab(t *testing.T) {
	m := send(t, New(), runes("3"))
	out := plain(m)

	if n := strings.Count(out, screens.LogLevel); n != 2 {
		t.Errorf("%d audit headers, want 2", n)
	}

	// Export is inert
	before := m.State
	m = send(t, m, keyEnter)
	if m.State != before {
		t.Error("export changed state")
	}
}

func TestObserver(t *testing.T) {
	var seen []string
	m := New(WithObserver(func(a automation.Action, s automation.State) {
		seen = append(seen, a.Type())
	}))
	send(t, m, runes("2"), keyDown, keyEnter)

	want := []string{automation.ActionSelectTab, automation.ActionUpdateConfig}
	if strings.Join(seen, ",") != strings.Join(want, ",") {
		t.Errorf("observed %v, want %v", seen, want)
	}
}

func TestQuit(t *testing.T) {
	for _, k := range []tea.KeyMsg{runes("q"), {Type: tea.KeyCtrlC}} {
		_, cmd := New().Update(k)
		if cmd == nil {
			t.Fatalf("%s: no command", k)
		}
		if _, ok := cmd().(tea.QuitMsg); !ok {
			t.Errorf("%s did not quit", k)
		}
	}
}

func TestWindowSize(t *testing.T) {
	m := send(t, New(), tea.WindowSizeMsg{Width: 200, Height: 60})
	if m.Width != 200 || m.Height != 60 {
		t.Errorf("size = %dx%d", m.Width, m.Height)
	}
}

func TestRender_Static(t *testing.T) {
	s := automation.DefaultState()
	s.Tab = automation.TabSetup

	out := ansi.Strip(Render(s))
	if strings.Contains(out, widgets.FocusMarker) {
		t.Error("static render shows focus")
	}
	if !strings.Contains(out, screens.TitleNetwork) {
		t.Error("static render is not the setup tab")
	}

	one := ansi.Strip(Render(s, WithThemes(theme.Dark)))
	if strings.Contains(one, theme.Caption(theme.Light)) {
		t.Error("single-theme render drew the light frame")
	}
}

func TestFrameHeight(t *testing.T) {
	m := New(WithThemes(theme.Light), WithStatic(), WithFrameSize(DefaultFrameWidth, 30))
	lines := strings.Split(plain(m), "\n")
	if len(lines) != 30 {
		t.Errorf("frame is %d lines, want 30", len(lines))
	}
}
