package screens

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/muurk/btautolaunch/internal/automation"
	"github.com/muurk/btautolaunch/internal/catalog"
	"github.com/muurk/btautolaunch/internal/widgets"
)

// Section copy on the Setup screen
const (
	TitleHardware = "Target Hardware"
	TitlePayload  = "Media Payload"
	TitleDelay    = "Launch Delay"
	HintDelay     = "Wait time"
	TitleNetwork  = "Network Verification"
	HintNetwork   = "Require active 4G/5G for launch"
	TitleRSSI     = "Signal Filter (RSSI)"
	HintRSSI      = "Wait for high-quality connection"
)

const (
	deviceIcon = "⚲"
	playerIcon = "♫"
	delayIcon  = "⏱"
)

// SetupProps is the state slice and callback the Setup screen consumes
type SetupProps struct {
	Canvas
	Config  automation.AutomationConfig
	Devices catalog.DeviceProvider
	Players catalog.PlayerProvider

	OnUpdateConfig func(automation.ConfigPatch) tea.Cmd
}

func (props SetupProps) update(patch automation.ConfigPatch) tea.Cmd {
	if props.OnUpdateConfig == nil {
		return nil
	}
	return props.OnUpdateConfig(patch)
}

// Setup renders the rule editor. Controls in focus order: one row per
// device, one row per player, the delay slider, the network switch and the
// signal switch.
func Setup(props SetupProps) View {
	p := props.Palette
	cfg := props.Config
	var l layout

	list := widgets.Card{Variant: widgets.CardOutlined, Width: props.Width}
	rowWidth := list.ContentWidth(p)

	l.add(sectionTitle(p, TitleHardware))
	var devices layout
	if props.Devices != nil {
		for _, d := range props.Devices.Devices() {
			row := widgets.ListItem{
				Title:    d.Name,
				Subtitle: d.ID,
				Icon:     deviceIcon,
				Selected: d.ID == cfg.DeviceID,
				Width:    rowWidth,
				OnSelect: props.update(automation.WithDeviceID(d.ID)),
			}
			focused := len(l.controls)+len(devices.controls) == props.Focus
			devices.control(row)
			devices.add(row.Render(p, focused))
		}
	}
	l.nest(&devices, list, p)
	l.gap()

	l.add(sectionTitle(p, TitlePayload))
	var players layout
	if props.Players != nil {
		for _, pl := range props.Players.Players() {
			row := widgets.ListItem{
				Title:    pl.Name,
				Subtitle: pl.Package,
				Icon:     playerIcon,
				Selected: pl.Package == cfg.PackageName,
				Width:    rowWidth,
				OnSelect: props.update(automation.WithPackageName(pl.Package)),
			}
			focused := len(l.controls)+len(players.controls) == props.Focus
			players.control(row)
			players.add(row.Render(p, focused))
		}
	}
	l.nest(&players, list, p)
	l.gap()

	l.nest(constraints(props, len(l.controls)), widgets.Card{Variant: widgets.CardFilled, Width: props.Width}, p)

	return l.view()
}

// constraints builds the inner layout of the launch-constraint card. base is
// the number of controls that precede the card on the screen.
func constraints(props SetupProps, base int) *layout {
	p := props.Palette
	cfg := props.Config
	card := widgets.Card{Variant: widgets.CardFilled, Width: props.Width}
	inner := card.ContentWidth(p)

	var l layout
	focused := func() bool { return base+len(l.controls) == props.Focus }

	title := lipgloss.NewStyle().Foreground(p.OnSurface).Bold(true)
	hint := lipgloss.NewStyle().Foreground(p.Muted)

	l.add(spread(inner, title.Render(delayIcon+" "+TitleDelay), hint.Render(HintDelay)))

	slider := widgets.Slider{
		Value: cfg.LaunchDelay,
		Max:   automation.MaxLaunchDelay,
		Width: inner,
		OnChange: func(v int) tea.Cmd {
			return props.update(automation.WithLaunchDelay(automation.ClampLaunchDelay(v)))
		},
	}
	rendered := slider.Render(p, focused())
	l.control(slider)
	l.add(rendered)
	l.gap()

	toggles := []struct {
		title, hint string
		checked     bool
		patch       automation.ConfigPatch
	}{
		{TitleNetwork, HintNetwork, cfg.CheckNetwork, automation.WithCheckNetwork(!cfg.CheckNetwork)},
		{TitleRSSI, HintRSSI, cfg.CheckRSSI, automation.WithCheckRSSI(!cfg.CheckRSSI)},
	}
	for _, t := range toggles {
		sw := widgets.Switch{Checked: t.checked, OnToggle: props.update(t.patch)}
		rendered := sw.Render(p, focused())
		l.control(sw)
		l.add(spread(inner, title.Render(t.title), rendered))
		l.add(hint.Render(t.hint))
	}

	return &l
}
