package config

import (
	"fmt"
	"time"

	"github.com/muurk/btautolaunch/internal/automation"
	"github.com/muurk/btautolaunch/internal/theme"
)

// CurrentVersion is the config file format version
const CurrentVersion = 1

// Preference defaults
const (
	DefaultFrameWidth      = 44
	DefaultFrameHeight     = 44
	DefaultServerHost      = "127.0.0.1"
	DefaultServerPort      = 8765
	DefaultDiscoverTimeout = 5 // seconds
)

// Registry represents the entire user configuration file.
// It stores viewer preferences and the preview servers seen on the network.
// The automation rule itself is never persisted.
type Registry struct {
	Version     int              `yaml:"version"`
	Preferences *Preferences     `yaml:"preferences,omitempty"`
	Peers       map[string]*Peer `yaml:"peers,omitempty"` // Keyed by mDNS instance name
}

// Preferences represents application-wide user preferences.
type Preferences struct {
	StartTab        string       `yaml:"start_tab"`           // Tab shown at launch
	Themes          []string     `yaml:"themes"`              // Frames drawn left to right
	FrameWidth      int          `yaml:"frame_width"`         // Phone frame width in cells
	FrameHeight     int          `yaml:"frame_height"`        // Phone frame height in cells
	LogLevel        string       `yaml:"log_level,omitempty"` // debug, info, warn, error
	LogFile         string       `yaml:"log_file,omitempty"`  // Log destination for the interactive preview
	DiscoverTimeout int          `yaml:"discover_timeout"`    // mDNS browse timeout in seconds
	Server          *ServerPrefs `yaml:"server,omitempty"`
}

// ServerPrefs configures the preview server
type ServerPrefs struct {
	Host      string `yaml:"host"`
	Port      int    `yaml:"port"`
	Advertise bool   `yaml:"advertise"`          // Register over mDNS
	Instance  string `yaml:"instance,omitempty"` // mDNS instance name; hostname when empty
}

// Peer is a preview server seen during discovery
type Peer struct {
	Address  string    `yaml:"address"` // host:port
	Version  string    `yaml:"version,omitempty"`
	LastSeen time.Time `yaml:"last_seen"`
}

// NewRegistry creates a new Registry with default values.
func NewRegistry() *Registry {
	return &Registry{
		Version:     CurrentVersion,
		Preferences: DefaultPreferences(),
		Peers:       make(map[string]*Peer),
	}
}

// DefaultPreferences returns the preferences used when no file exists
func DefaultPreferences() *Preferences {
	themes := make([]string, 0, 2)
	for _, n := range theme.Names() {
		themes = append(themes, string(n))
	}
	return &Preferences{
		StartTab:        string(automation.TabDashboard),
		Themes:          themes,
		FrameWidth:      DefaultFrameWidth,
		FrameHeight:     DefaultFrameHeight,
		DiscoverTimeout: DefaultDiscoverTimeout,
		Server: &ServerPrefs{
			Host:      DefaultServerHost,
			Port:      DefaultServerPort,
			Advertise: false,
		},
	}
}

// Tab returns the parsed start tab
func (p *Preferences) Tab() (automation.Tab, error) {
	tab, err := automation.ParseTab(p.StartTab)
	if err != nil {
		return "", fmt.Errorf("start_tab: %w", err)
	}
	return tab, nil
}

// ThemeNames returns the parsed theme order
func (p *Preferences) ThemeNames() ([]theme.Name, error) {
	names := make([]theme.Name, 0, len(p.Themes))
	for _, s := range p.Themes {
		n, err := theme.Parse(s)
		if err != nil {
			return nil, fmt.Errorf("themes: %w", err)
		}
		names = append(names, n)
	}
	return names, nil
}

// Validate checks every enumerated and numeric field
func (p *Preferences) Validate() error {
	if _, err := p.Tab(); err != nil {
		return err
	}
	names, err := p.ThemeNames()
	if err != nil {
		return err
	}
	if len(names) == 0 {
		return fmt.Errorf("themes: at least one theme is required")
	}
	if p.FrameWidth < 0 || p.FrameHeight < 0 {
		return fmt.Errorf("frame size %dx%d is negative", p.FrameWidth, p.FrameHeight)
	}
	if p.Server != nil && (p.Server.Port < 0 || p.Server.Port > 65535) {
		return fmt.Errorf("server port %d out of range", p.Server.Port)
	}
	return nil
}

// fillDefaults sets any missing preference to its default
func (p *Preferences) fillDefaults() {
	d := DefaultPreferences()
	if p.StartTab == "" {
		p.StartTab = d.StartTab
	}
	if len(p.Themes) == 0 {
		p.Themes = d.Themes
	}
	if p.FrameWidth == 0 {
		p.FrameWidth = d.FrameWidth
	}
	if p.FrameHeight == 0 {
		p.FrameHeight = d.FrameHeight
	}
	if p.DiscoverTimeout == 0 {
		p.DiscoverTimeout = d.DiscoverTimeout
	}
	if p.Server == nil {
		p.Server = d.Server
	}
	if p.Server.Host == "" {
		p.Server.Host = DefaultServerHost
	}
	if p.Server.Port == 0 {
		p.Server.Port = DefaultServerPort
	}
}

// GetPeer retrieves a remembered peer by instance name.
// Returns nil if the peer doesn't exist in the registry.
func (r *Registry) GetPeer(instance string) *Peer {
	return r.Peers[instance]
}

// RememberPeer records a discovered preview server
func (r *Registry) RememberPeer(instance, address, version string) *Peer {
	if r.Peers == nil {
		r.Peers = make(map[string]*Peer)
	}
	peer := r.Peers[instance]
	if peer == nil {
		peer = &Peer{}
		r.Peers[instance] = peer
	}
	peer.Address = address
	if version != "" {
		peer.Version = version
	}
	peer.LastSeen = time.Now()
	return peer
}
