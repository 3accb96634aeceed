package discovery

import (
	"fmt"
	"net"
	"strconv"
	"strings"
	"time"
)

// TXT record keys published by Advertise
const (
	TxtVersion = "version"
	TxtTabs    = "tabs"
)

// Peer is a preview server found on the local network
type Peer struct {
	// Instance is the advertised mDNS instance name
	Instance string `json:"instance"`

	// Host is the mDNS hostname (e.g., "studio.local.")
	Host string `json:"host"`

	// IP is the preferred address, IPv4 when available
	IP string `json:"ip"`

	Port int `json:"port"`

	// Metadata holds the TXT records, e.g. "version" and "tabs"
	Metadata map[string]string `json:"metadata,omitempty"`

	DiscoveredAt time.Time `json:"discoveredAt"`
}

// String returns a human-readable string representation of the peer
func (p *Peer) String() string {
	return fmt.Sprintf("Preview %s (%s) at %s", p.Instance, p.Host, p.Address())
}

// Address returns host:port for the peer's IP
func (p *Peer) Address() string {
	return net.JoinHostPort(p.IP, strconv.Itoa(p.Port))
}

// BaseURL returns the HTTP base URL of the peer's API
func (p *Peer) BaseURL() string {
	return "http://" + p.Address()
}

// GetMetadata retrieves a metadata value by key, or returns empty string if not found
func (p *Peer) GetMetadata(key string) string {
	if p.Metadata == nil {
		return ""
	}
	return p.Metadata[key]
}

// Version returns the advertised build version
func (p *Peer) Version() string {
	return p.GetMetadata(TxtVersion)
}

// Tabs returns the advertised tab names
func (p *Peer) Tabs() []string {
	raw := p.GetMetadata(TxtTabs)
	if raw == "" {
		return nil
	}
	return strings.Split(raw, ",")
}
