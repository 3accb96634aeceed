package discovery

import (
	"reflect"
	"testing"
)

func TestPeer_String(t *testing.T) {
	peer := &Peer{
		Instance: "studio",
		Host:     "studio.local.",
		IP:       "192.168.4.16",
		Port:     8765,
	}

	expected := "Preview studio (studio.local.) at 192.168.4.16:8765"
	if peer.String() != expected {
		t.Errorf("Peer.String() = %v, want %v", peer.String(), expected)
	}
}

func TestPeer_BaseURL(t *testing.T) {
	tests := []struct {
		name     string
		peer     *Peer
		expected string
	}{
		{
			name:     "IPv4",
			peer:     &Peer{IP: "192.168.4.16", Port: 8765},
			expected: "http://192.168.4.16:8765",
		},
		{
			name:     "IPv6 is bracketed",
			peer:     &Peer{IP: "fe80::1", Port: 9000},
			expected: "http://[fe80::1]:9000",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.peer.BaseURL(); got != tt.expected {
				t.Errorf("Peer.BaseURL() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestPeer_Metadata(t *testing.T) {
	peer := &Peer{
		Metadata: map[string]string{
			TxtVersion: "v0.3.0",
			TxtTabs:    "dashboard,setup,audit",
		},
	}

	if got := peer.Version(); got != "v0.3.0" {
		t.Errorf("Version() = %q, want v0.3.0", got)
	}
	if got, want := peer.Tabs(), []string{"dashboard", "setup", "audit"}; !reflect.DeepEqual(got, want) {
		t.Errorf("Tabs() = %v, want %v", got, want)
	}
	if got := peer.GetMetadata("missing"); got != "" {
		t.Errorf("GetMetadata(missing) = %q, want empty", got)
	}

	var bare Peer
	if bare.GetMetadata(TxtVersion) != "" || bare.Tabs() != nil {
		t.Error("peer without metadata should report nothing")
	}
}
