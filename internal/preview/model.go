package preview

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/muurk/btautolaunch/internal/automation"
	"github.com/muurk/btautolaunch/internal/catalog"
	"github.com/muurk/btautolaunch/internal/logging"
	"github.com/muurk/btautolaunch/internal/screens"
	"github.com/muurk/btautolaunch/internal/theme"
	"github.com/muurk/btautolaunch/internal/widgets"
)

// Frame size bounds in terminal cells
const (
	DefaultFrameWidth  = 44
	DefaultFrameHeight = 44
	MinFrameWidth      = 32
	MinFrameHeight     = 24
)

const numTabs = 3

// tabView is the UI-only state kept per tab
type tabView struct {
	focus  int // Index into the tab's controls, nav buttons last
	scroll int // First visible content line
}

// AppModel is the root model. It owns the automation state; everything else
// it holds is presentation.
type AppModel struct {
	State     automation.State
	Providers catalog.Providers
	Themes    []theme.Name

	FrameWidth  int
	FrameHeight int

	// Terminal size from tea.WindowSizeMsg
	Width  int
	Height int

	// Static hides focus and help, for one-shot renders
	Static bool

	tabs     [numTabs]tabView
	observer func(automation.Action, automation.State)

	Help help.Model
	Keys keyMap
}

// Option configures an AppModel
type Option func(*AppModel)

// WithState sets the initial state
func WithState(s automation.State) Option {
	return func(m *AppModel) {
		m.State = s
	}
}

// WithProviders sets the data sources. A non-nil status probe also seeds
// the connection status.
func WithProviders(p catalog.Providers) Option {
	return func(m *AppModel) {
		m.Providers = p
		if p.Status != nil {
			m.State.Status = p.Status.Status()
		}
	}
}

// WithThemes sets the frames to draw, left to right
func WithThemes(names ...theme.Name) Option {
	return func(m *AppModel) {
		if len(names) > 0 {
			m.Themes = append([]theme.Name(nil), names...)
		}
	}
}

// WithFrameSize sets the outer size of each phone frame
func WithFrameSize(width, height int) Option {
	return func(m *AppModel) {
		if width > 0 {
			m.FrameWidth = max(width, MinFrameWidth)
		}
		if height > 0 {
			m.FrameHeight = max(height, MinFrameHeight)
		}
	}
}

// WithObserver registers fn to be called after every reduced action
func WithObserver(fn func(automation.Action, automation.State)) Option {
	return func(m *AppModel) {
		m.observer = fn
	}
}

// WithStatic disables focus and help
func WithStatic() Option {
	return func(m *AppModel) {
		m.Static = true
	}
}

// New creates the root model with the default state and the static catalog
func New(opts ...Option) AppModel {
	m := AppModel{
		State:       automation.DefaultState(),
		Providers:   catalog.StaticProviders(),
		Themes:      theme.Names(),
		FrameWidth:  DefaultFrameWidth,
		FrameHeight: DefaultFrameHeight,
		Help:        help.New(),
		Keys:        newKeyMap(),
	}
	for _, opt := range opts {
		opt(&m)
	}
	return m
}

// Render draws the frames for s once, without focus or help
func Render(s automation.State, opts ...Option) string {
	opts = append([]Option{WithState(s), WithStatic()}, opts...)
	return New(opts...).View()
}

// Init implements tea.Model
func (m AppModel) Init() tea.Cmd {
	return nil
}

// Update handles all messages
func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		m.Help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case automation.Action:
		return m.dispatch(msg), nil
	}

	return m, nil
}

// dispatch reduces one action into the state
func (m AppModel) dispatch(a automation.Action) AppModel {
	m.State = automation.Reduce(m.State, a)
	logging.LogAction("tui", a, m.State)
	if m.observer != nil {
		m.observer(a, m.State)
	}
	return m.follow()
}

func (m AppModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.Keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.Keys.Dashboard):
		return m, selectTab(automation.TabDashboard)
	case key.Matches(msg, m.Keys.Setup):
		return m, selectTab(automation.TabSetup)
	case key.Matches(msg, m.Keys.Audit):
		return m, selectTab(automation.TabAudit)
	case key.Matches(msg, m.Keys.NextTab):
		return m, selectTab(m.State.Tab.Next())
	case key.Matches(msg, m.Keys.PrevTab):
		return m, selectTab(m.State.Tab.Prev())

	case key.Matches(msg, m.Keys.Up):
		return m.moveFocus(-1), nil
	case key.Matches(msg, m.Keys.Down):
		return m.moveFocus(+1), nil

	case key.Matches(msg, m.Keys.Activate):
		if c := m.focusedControl(); c != nil {
			return m, c.Activate()
		}
	case key.Matches(msg, m.Keys.Decrease):
		if c := m.focusedControl(); c != nil {
			return m, c.Adjust(-1)
		}
	case key.Matches(msg, m.Keys.Increase):
		if c := m.focusedControl(); c != nil {
			return m, c.Adjust(+1)
		}

	case key.Matches(msg, m.Keys.Help):
		m.Help.ShowAll = !m.Help.ShowAll
	}

	return m, nil
}

func selectTab(t automation.Tab) tea.Cmd {
	return widgets.Emit(automation.SelectTab{Tab: t})
}

// Focus returns the focused control index on the active tab
func (m AppModel) Focus() int {
	if m.Static {
		return screens.NoFocus
	}
	i := m.State.Tab.Index()
	if i < 0 {
		return screens.NoFocus
	}
	return m.tabs[i].focus
}

func (m AppModel) scroll() int {
	i := m.State.Tab.Index()
	if i < 0 {
		return 0
	}
	return m.tabs[i].scroll
}

// controls returns the active tab's controls: the screen's own followed by
// the bottom navigation
func (m AppModel) controls() []widgets.Control {
	p := m.palette()
	view := m.screen(p, screens.NoFocus)
	all := append([]widgets.Control(nil), view.Controls...)
	for _, b := range m.navButtons(p) {
		all = append(all, b)
	}
	return all
}

func (m AppModel) focusedControl() widgets.Control {
	focus := m.Focus()
	controls := m.controls()
	if focus < 0 || focus >= len(controls) {
		return nil
	}
	return controls[focus]
}

// moveFocus steps focus by delta, wrapping around
func (m AppModel) moveFocus(delta int) AppModel {
	i := m.State.Tab.Index()
	if m.Static || i < 0 {
		return m
	}
	n := len(m.controls())
	if n == 0 {
		return m
	}
	m.tabs[i].focus = ((m.tabs[i].focus+delta)%n + n) % n
	return m.follow()
}

// follow scrolls the active tab so the focused control is visible
func (m AppModel) follow() AppModel {
	i := m.State.Tab.Index()
	if m.Static || i < 0 {
		return m
	}
	tv := &m.tabs[i]
	view := m.screen(m.palette(), tv.focus)
	if tv.focus >= len(view.Controls) {
		// Navigation is outside the scrolled area
		return m
	}
	line := view.FocusLine(tv.focus)
	height := m.contentHeight()
	switch {
	case line < tv.scroll:
		tv.scroll = line
	case line >= tv.scroll+height-1:
		// Keep one line below the focus for two-line rows
		tv.scroll = line - height + 2
	}
	if tv.scroll < 0 {
		tv.scroll = 0
	}
	return m
}

// palette is the palette used for layout; all themes share geometry
func (m AppModel) palette() theme.Palette {
	if len(m.Themes) == 0 {
		return theme.For(theme.Light)
	}
	return theme.For(m.Themes[0])
}

// screen builds the active tab's view
func (m AppModel) screen(p theme.Palette, focus int) screens.View {
	canvas := screens.Canvas{Palette: p, Width: m.contentWidth(), Focus: focus}

	switch m.State.Tab {
	case automation.TabSetup:
		return screens.Setup(screens.SetupProps{
			Canvas:         canvas,
			Config:         m.State.Config,
			Devices:        m.Providers.Devices,
			Players:        m.Providers.Players,
			OnUpdateConfig: updateConfig,
		})
	case automation.TabAudit:
		// Export is inert
		return screens.Audit(screens.AuditProps{
			Canvas: canvas,
			Log:    m.Providers.Log,
		})
	default:
		return screens.Dashboard(screens.DashboardProps{
			Canvas:       canvas,
			Tier:         m.State.Tier,
			Status:       m.State.Status,
			Vendors:      m.Providers.Vendors,
			OnSelectTier: selectTier,
		})
	}
}

func updateConfig(patch automation.ConfigPatch) tea.Cmd {
	return widgets.Emit(automation.UpdateConfig{Patch: patch})
}

func selectTier(t automation.ReliabilityTier) tea.Cmd {
	return widgets.Emit(automation.SelectTier{Tier: t})
}
