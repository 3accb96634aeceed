package widgets

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"

	"github.com/muurk/btautolaunch/internal/theme"
)

type pressed struct{ n int }

func TestEmit(t *testing.T) {
	cmd := Emit(pressed{n: 7})
	if got := cmd(); got != (pressed{n: 7}) {
		t.Errorf("Emit()() = %v, want pressed{7}", got)
	}
}

func TestButton_ActivateReturnsCallbackOnce(t *testing.T) {
	calls := 0
	b := Button{
		Label: "High",
		OnPress: func() tea.Msg {
			calls++
			return pressed{n: calls}
		},
	}

	cmd := b.Activate()
	if cmd == nil {
		t.Fatal("Activate() returned nil")
	}
	if calls != 0 {
		t.Fatal("Activate() must not run the callback itself")
	}
	if msg := cmd(); msg != (pressed{n: 1}) {
		t.Errorf("callback produced %v", msg)
	}
	if calls != 1 {
		t.Errorf("callback ran %d times, want 1", calls)
	}
	if b.Adjust(1) != nil {
		t.Error("Adjust() on a button should be nil")
	}
}

func TestButton_InertWithoutCallback(t *testing.T) {
	if (Button{Label: "Export"}).Activate() != nil {
		t.Error("button without OnPress should be inert")
	}
}

func TestButton_Render(t *testing.T) {
	p := theme.For(theme.Light)

	plain := ansi.Strip(Button{Label: "Eco", Variant: ButtonTonal}.Render(p, false))
	if !strings.Contains(plain, "ECO") {
		t.Errorf("render %q should contain upper-cased label", plain)
	}
	if strings.Contains(plain, ActiveMarker) {
		t.Errorf("inactive button %q should not carry the active marker", plain)
	}
	if strings.Contains(plain, FocusMarker) {
		t.Errorf("unfocused button %q should not carry the focus marker", plain)
	}

	active := ansi.Strip(Button{Label: "Balanced", Active: true, Icon: "★"}.Render(p, true))
	for _, want := range []string{ActiveMarker, "★", "BALANCED", FocusMarker} {
		if !strings.Contains(active, want) {
			t.Errorf("render %q should contain %q", active, want)
		}
	}
}

func TestButton_RenderWidth(t *testing.T) {
	p := theme.For(theme.Dark)
	out := Button{Label: "Eco", Width: 12}.Render(p, false)
	if w := ansi.StringWidth(out); w != 12 {
		t.Errorf("button width = %d, want 12", w)
	}
}

func TestSwitch(t *testing.T) {
	p := theme.For(theme.Dark)

	on := ansi.Strip(Switch{Checked: true}.Render(p, false))
	off := ansi.Strip(Switch{Checked: false}.Render(p, false))
	if !strings.Contains(on, "ON") || strings.Contains(on, "OFF") {
		t.Errorf("checked switch rendered %q", on)
	}
	if !strings.Contains(off, "OFF") {
		t.Errorf("unchecked switch rendered %q", off)
	}

	s := Switch{Checked: true, OnToggle: Emit(pressed{n: 1})}
	if s.Activate() == nil {
		t.Error("Activate() should return the toggle callback")
	}
	if s.Adjust(-1) != nil {
		t.Error("Adjust() on a switch should be nil")
	}
}

func TestSlider_AdjustStaysInBounds(t *testing.T) {
	var got []int
	onChange := func(v int) tea.Cmd {
		got = append(got, v)
		return Emit(v)
	}

	tests := []struct {
		name    string
		value   int
		delta   int
		want    int
		wantNil bool
	}{
		{"step up", 2, 1, 3, false},
		{"step down", 2, -1, 1, false},
		{"upper bound holds", 10, 1, 0, true},
		{"lower bound holds", 0, -1, 0, true},
		{"large jump clamps high", 8, 5, 10, false},
		{"large jump clamps low", 3, -9, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got = nil
			s := Slider{Value: tt.value, Max: 10, OnChange: onChange}
			cmd := s.Adjust(tt.delta)
			if tt.wantNil {
				if cmd != nil {
					t.Fatalf("Adjust(%d) at %d should emit nothing", tt.delta, tt.value)
				}
				return
			}
			if cmd == nil {
				t.Fatal("Adjust() returned nil")
			}
			if v := cmd().(int); v != tt.want {
				t.Errorf("Adjust(%d) from %d forwarded %d, want %d", tt.delta, tt.value, v, tt.want)
			}
			if v := got[0]; v < 0 || v > 10 {
				t.Errorf("forwarded value %d outside [0, 10]", v)
			}
		})
	}
}

func TestSlider_Render(t *testing.T) {
	p := theme.For(theme.Light)
	s := Slider{Value: 4, Max: 10, Width: 30}

	out := ansi.Strip(s.Render(p, true))
	if !strings.Contains(out, "4s") {
		t.Errorf("render %q should contain the value label", out)
	}
	if !strings.HasPrefix(out, FocusMarker) {
		t.Errorf("focused slider %q should start with the focus marker", out)
	}
	if s.Activate() != nil {
		t.Error("Activate() on a slider should be nil")
	}
	if got := (Slider{Value: 5, Max: 10}).Fraction(); got != 0.5 {
		t.Errorf("Fraction() = %v, want 0.5", got)
	}
	if got := (Slider{Value: 5}).Fraction(); got != 0 {
		t.Errorf("Fraction() with Max 0 = %v, want 0", got)
	}
}

func TestListItem(t *testing.T) {
	p := theme.For(theme.Light)

	selected := ansi.Strip(ListItem{Title: "BMW 520i", Subtitle: "88:44:00:FF:EE:DD", Icon: "⛟", Selected: true, Width: 36}.Render(p, false))
	if !strings.Contains(selected, SelectedMarker) {
		t.Errorf("selected row %q should carry the check mark", selected)
	}
	for _, want := range []string{"BMW 520i", "88:44:00:FF:EE:DD"} {
		if !strings.Contains(selected, want) {
			t.Errorf("row %q should contain %q", selected, want)
		}
	}

	plain := ansi.Strip(ListItem{Title: "VLC", Subtitle: "org.videolan.vlc", Icon: "▶"}.Render(p, false))
	if strings.Contains(plain, SelectedMarker) {
		t.Errorf("unselected row %q should not carry the check mark", plain)
	}
}

func TestCard(t *testing.T) {
	p := theme.For(theme.Dark)

	for _, v := range []CardVariant{CardFilled, CardOutlined, CardElevated} {
		c := Card{Variant: v, Width: 30}
		out := c.Render(p, "hello")
		if !strings.Contains(ansi.Strip(out), "hello") {
			t.Errorf("%s card lost its content: %q", v, out)
		}
		for _, line := range strings.Split(out, "\n") {
			if w := ansi.StringWidth(line); w != 30 {
				t.Errorf("%s card line width = %d, want 30", v, w)
				break
			}
		}
		if cw := c.ContentWidth(p); cw <= 0 || cw >= 30 {
			t.Errorf("%s ContentWidth() = %d", v, cw)
		}
	}
}
