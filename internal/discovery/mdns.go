package discovery

import (
	"context"
	"fmt"
	"os"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/grandcat/zeroconf"
	"go.uber.org/zap"

	"github.com/muurk/btautolaunch/internal/logging"
)

const (
	// ServiceType is the mDNS service type of preview servers
	ServiceType = "_btautolaunch._tcp"

	// ServiceDomain is the mDNS domain (typically "local.")
	ServiceDomain = "local."

	// DefaultScanTimeout is the default timeout for peer discovery
	DefaultScanTimeout = 5 * time.Second

	// fallbackInstance names the service when the hostname is unknown
	fallbackInstance = "btautolaunch"
)

// DefaultInstance returns the instance name used when none is configured
func DefaultInstance() string {
	host, err := os.Hostname()
	if err != nil || host == "" {
		return fallbackInstance
	}
	return fallbackInstance + "@" + strings.TrimSuffix(host, ".local")
}

// Advertisement is a live mDNS registration
type Advertisement struct {
	server *zeroconf.Server
	once   sync.Once
}

// Advertise registers a preview server listening on port. txt holds
// "key=value" records. The registration ends when ctx is cancelled or
// Shutdown is called.
func Advertise(ctx context.Context, instance string, port int, txt []string) (*Advertisement, error) {
	if instance == "" {
		return nil, fmt.Errorf("instance name is required")
	}
	if port <= 0 || port > 65535 {
		return nil, fmt.Errorf("invalid port %d", port)
	}

	server, err := zeroconf.Register(instance, ServiceType, ServiceDomain, port, txt, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to register mDNS service: %w", err)
	}
	logging.Info("Registered mDNS service",
		zap.String("instance", instance),
		zap.String("service", ServiceType),
		zap.Int("port", port),
		zap.Strings("txt", txt),
	)

	a := &Advertisement{server: server}
	go func() {
		<-ctx.Done()
		a.Shutdown()
	}()
	return a, nil
}

// Shutdown withdraws the registration. It is safe to call more than once.
func (a *Advertisement) Shutdown() {
	a.once.Do(func() {
		a.server.Shutdown()
	})
}

// Scanner handles mDNS peer discovery
type Scanner struct {
	// Timeout is the maximum time to wait for peer discovery
	Timeout time.Duration
}

// NewScanner creates a new mDNS scanner with default settings
func NewScanner() *Scanner {
	return &Scanner{
		Timeout: DefaultScanTimeout,
	}
}

// ScanForPreviews browses for preview servers until the timeout or ctx
// expires. Peers are sorted by instance name; duplicates are collapsed.
func (s *Scanner) ScanForPreviews(ctx context.Context) ([]*Peer, error) {
	ctx, cancel := context.WithTimeout(ctx, s.Timeout)
	defer cancel()

	resolver, err := zeroconf.NewResolver(nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create mDNS resolver: %w", err)
	}

	var mu sync.Mutex
	found := make(map[string]*Peer)
	entries := make(chan *zeroconf.ServiceEntry)

	go func() {
		for entry := range entries {
			peer := parseServiceEntry(entry)
			if peer == nil {
				continue
			}
			logging.LogPeer(peer.Instance, peer.Host, peer.Port)
			mu.Lock()
			found[peer.Instance] = peer
			mu.Unlock()
		}
	}()

	if err := resolver.Browse(ctx, ServiceType, ServiceDomain, entries); err != nil {
		return nil, fmt.Errorf("failed to browse for mDNS services: %w", err)
	}

	<-ctx.Done()

	mu.Lock()
	defer mu.Unlock()
	return sortPeers(found), nil
}

// WaitForPreview browses until a server advertising instance answers or the
// timeout expires
func (s *Scanner) WaitForPreview(ctx context.Context, instance string) (*Peer, error) {
	ctx, cancel := context.WithTimeout(ctx, s.Timeout)
	defer cancel()

	resolver, err := zeroconf.NewResolver(nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create mDNS resolver: %w", err)
	}

	entries := make(chan *zeroconf.ServiceEntry)
	if err := resolver.Browse(ctx, ServiceType, ServiceDomain, entries); err != nil {
		return nil, fmt.Errorf("failed to browse for mDNS services: %w", err)
	}

	peer := awaitInstance(ctx, entries, instance)
	cancel()
	// Keep the resolver from blocking on a send after the match
	go func() {
		for range entries {
		}
	}()

	if peer == nil {
		return nil, fmt.Errorf("preview %q not found within %s", instance, s.Timeout)
	}
	return peer, nil
}

// awaitInstance reads entries until one names instance. It returns nil when
// ctx ends or entries is closed first.
func awaitInstance(ctx context.Context, entries <-chan *zeroconf.ServiceEntry, instance string) *Peer {
	for {
		select {
		case entry, ok := <-entries:
			if !ok {
				return nil
			}
			peer := parseServiceEntry(entry)
			if peer == nil || peer.Instance != instance {
				continue
			}
			logging.LogPeer(peer.Instance, peer.Host, peer.Port)
			return peer
		case <-ctx.Done():
			return nil
		}
	}
}

// parseServiceEntry converts a zeroconf service entry to a Peer.
// Returns nil if the entry has no usable address.
func parseServiceEntry(entry *zeroconf.ServiceEntry) *Peer {
	if entry == nil || entry.Instance == "" || entry.Port == 0 {
		return nil
	}

	// Prefer IPv4
	var ip string
	if len(entry.AddrIPv4) > 0 {
		ip = entry.AddrIPv4[0].String()
	} else if len(entry.AddrIPv6) > 0 {
		ip = entry.AddrIPv6[0].String()
	}
	if ip == "" {
		return nil
	}

	return &Peer{
		Instance:     entry.Instance,
		Host:         entry.HostName,
		IP:           ip,
		Port:         entry.Port,
		Metadata:     parseTXT(entry.Text),
		DiscoveredAt: time.Now(),
	}
}

// parseTXT splits "key=value" records. A record without "=" maps to "".
func parseTXT(records []string) map[string]string {
	metadata := make(map[string]string, len(records))
	for _, txt := range records {
		key, value, _ := strings.Cut(txt, "=")
		if key == "" {
			continue
		}
		metadata[key] = value
	}
	return metadata
}

func sortPeers(found map[string]*Peer) []*Peer {
	peers := make([]*Peer, 0, len(found))
	for _, p := range found {
		peers = append(peers, p)
	}
	sort.Slice(peers, func(i, j int) bool {
		return peers[i].Instance < peers[j].Instance
	})
	return peers
}
