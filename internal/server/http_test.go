package server

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/muurk/btautolaunch/internal/automation"
	"github.com/muurk/btautolaunch/internal/catalog"
	"github.com/muurk/btautolaunch/internal/logging"
	"github.com/muurk/btautolaunch/internal/theme"
)

func newTestServer(t *testing.T) (*Server, *httptest.Server) {
	t.Helper()
	srv, err := New(&Config{Host: "127.0.0.1"}, automation.DefaultState(), catalog.StaticProviders())
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	ts := httptest.NewServer(srv.Handler())
	t.Cleanup(ts.Close)
	return srv, ts
}

func postAction(t *testing.T, url, body string) (*http.Response, []byte) {
	t.Helper()
	resp, err := http.Post(url+"/api/actions", "application/json", strings.NewReader(body))
	if err != nil {
		t.Fatalf("POST /api/actions error = %v", err)
	}
	defer resp.Body.Close()
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body error = %v", err)
	}
	return resp, data
}

func getBody(t *testing.T, url string) (*http.Response, []byte) {
	t.Helper()
	resp, err := http.Get(url)
	if err != nil {
		t.Fatalf("GET %s error = %v", url, err)
	}
	defer resp.Body.Close()
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body error = %v", err)
	}
	return resp, data
}

func TestNewRejectsBadPort(t *testing.T) {
	if _, err := New(&Config{Port: 70000}, automation.DefaultState(), catalog.StaticProviders()); err == nil {
		t.Error("New() with port 70000 should fail")
	}
}

func TestNewSeedsStatusFromProbe(t *testing.T) {
	providers := catalog.StaticProviders()
	providers.Status = catalog.FixedStatus(automation.StatusSearching)

	srv, err := New(&Config{}, automation.DefaultState(), providers)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if got := srv.Store().Snapshot().Status; got != automation.StatusSearching {
		t.Errorf("status = %s, want Searching", got)
	}
}

func TestGetState(t *testing.T) {
	_, ts := newTestServer(t)

	resp, body := getBody(t, ts.URL+"/api/state")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	if ct := resp.Header.Get("Content-Type"); ct != "application/json" {
		t.Errorf("Content-Type = %q, want application/json", ct)
	}

	var state automation.State
	if err := json.Unmarshal(body, &state); err != nil {
		t.Fatalf("decode state: %v", err)
	}
	if state != automation.DefaultState() {
		t.Errorf("state = %+v, want default", state)
	}
}

func TestPostActions(t *testing.T) {
	tests := []struct {
		name  string
		body  string
		check func(t *testing.T, s automation.State)
	}{
		{
			name: "select tab",
			body: `{"type":"select_tab","tab":"audit"}`,
			check: func(t *testing.T, s automation.State) {
				if s.Tab != automation.TabAudit {
					t.Errorf("tab = %s, want audit", s.Tab)
				}
			},
		},
		{
			name: "select tier",
			body: `{"type":"select_tier","tier":"High"}`,
			check: func(t *testing.T, s automation.State) {
				if s.Tier != automation.TierHigh {
					t.Errorf("tier = %s, want High", s.Tier)
				}
			},
		},
		{
			name: "update config",
			body: `{"type":"update_config","config":{"deviceId":"88:44:00:FF:EE:DD","launchDelay":10}}`,
			check: func(t *testing.T, s automation.State) {
				want := automation.DefaultConfig()
				want.DeviceID = "88:44:00:FF:EE:DD"
				want.LaunchDelay = 10
				if s.Config != want {
					t.Errorf("config = %+v, want %+v", s.Config, want)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv, ts := newTestServer(t)

			resp, body := postAction(t, ts.URL, tt.body)
			if resp.StatusCode != http.StatusOK {
				t.Fatalf("status = %d, want 200: %s", resp.StatusCode, body)
			}

			var state automation.State
			if err := json.Unmarshal(body, &state); err != nil {
				t.Fatalf("decode state: %v", err)
			}
			tt.check(t, state)

			if snap := srv.Store().Snapshot(); snap != state {
				t.Errorf("store = %+v, response = %+v", snap, state)
			}
		})
	}
}

func TestPostActionRejected(t *testing.T) {
	tests := []struct {
		name      string
		body      string
		wantField string
	}{
		{name: "malformed JSON", body: `{"type":`},
		{name: "unknown type", body: `{"type":"reboot"}`, wantField: "type"},
		{name: "missing type", body: `{}`, wantField: "type"},
		{name: "unknown tab", body: `{"type":"select_tab","tab":"settings"}`, wantField: "tab"},
		{name: "unknown tier", body: `{"type":"select_tier","tier":"Turbo"}`, wantField: "tier"},
		{name: "empty patch", body: `{"type":"update_config","config":{}}`, wantField: "config"},
		{name: "delay out of range", body: `{"type":"update_config","config":{"launchDelay":11}}`, wantField: "launchDelay"},
		{name: "unknown field", body: `{"type":"select_tab","tab":"audit","extra":1}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv, ts := newTestServer(t)

			resp, body := postAction(t, ts.URL, tt.body)
			if resp.StatusCode != http.StatusBadRequest {
				t.Fatalf("status = %d, want 400", resp.StatusCode)
			}

			var errResp ErrorResponse
			if err := json.Unmarshal(body, &errResp); err != nil {
				t.Fatalf("decode error body: %v", err)
			}
			if errResp.Error == "" {
				t.Error("error message is empty")
			}
			if errResp.Field != tt.wantField {
				t.Errorf("field = %q, want %q", errResp.Field, tt.wantField)
			}
			if snap := srv.Store().Snapshot(); snap != automation.DefaultState() {
				t.Errorf("state changed after rejected action: %+v", snap)
			}
		})
	}
}

func TestMethodNotAllowed(t *testing.T) {
	_, ts := newTestServer(t)

	resp, _ := getBody(t, ts.URL+"/api/actions")
	if resp.StatusCode != http.StatusMethodNotAllowed {
		t.Errorf("GET /api/actions status = %d, want 405", resp.StatusCode)
	}
}

func TestGetCatalog(t *testing.T) {
	_, ts := newTestServer(t)

	resp, body := getBody(t, ts.URL+"/api/catalog")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}

	var cat CatalogResponse
	if err := json.Unmarshal(body, &cat); err != nil {
		t.Fatalf("decode catalog: %v", err)
	}
	if len(cat.Devices) != 3 {
		t.Errorf("devices = %d, want 3", len(cat.Devices))
	}
	if len(cat.Players) != 4 {
		t.Errorf("players = %d, want 4", len(cat.Players))
	}
	if len(cat.Vendors) != 4 {
		t.Errorf("vendors = %d, want 4", len(cat.Vendors))
	}
}

func TestGetCatalogWithoutProviders(t *testing.T) {
	srv, err := New(&Config{}, automation.DefaultState(), catalog.Providers{})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	ts := httptest.NewServer(srv.Handler())
	defer ts.Close()

	_, body := getBody(t, ts.URL+"/api/catalog")
	want := `{"devices":[],"players":[],"vendors":[]}`
	if got := strings.TrimSpace(string(body)); got != want {
		t.Errorf("body = %s, want %s", got, want)
	}
}

func TestGetVersion(t *testing.T) {
	_, ts := newTestServer(t)

	resp, body := getBody(t, ts.URL+"/api/version")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	var info map[string]string
	if err := json.Unmarshal(body, &info); err != nil {
		t.Fatalf("decode version: %v", err)
	}
	if info["version"] == "" || info["goVersion"] == "" {
		t.Errorf("version info incomplete: %v", info)
	}
}

func TestGetPreview(t *testing.T) {
	tests := []struct {
		query    string
		want     []string
		notWant  []string
		wantCode int
	}{
		{
			query:    "",
			want:     []string{theme.Caption(theme.Light), theme.Caption(theme.Dark)},
			wantCode: http.StatusOK,
		},
		{
			query:    "?theme=dark",
			want:     []string{theme.Caption(theme.Dark)},
			notWant:  []string{theme.Caption(theme.Light)},
			wantCode: http.StatusOK,
		},
		{
			query:    "?theme=light",
			want:     []string{theme.Caption(theme.Light)},
			notWant:  []string{theme.Caption(theme.Dark)},
			wantCode: http.StatusOK,
		},
		{
			query:    "?theme=sepia",
			wantCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run("preview"+tt.query, func(t *testing.T) {
			_, ts := newTestServer(t)

			resp, body := getBody(t, ts.URL+"/preview"+tt.query)
			if resp.StatusCode != tt.wantCode {
				t.Fatalf("status = %d, want %d", resp.StatusCode, tt.wantCode)
			}
			if tt.wantCode != http.StatusOK {
				return
			}

			text := string(body)
			if strings.Contains(text, "\x1b[") {
				t.Error("preview contains ANSI escape sequences")
			}
			for _, w := range tt.want {
				if !strings.Contains(text, w) {
					t.Errorf("preview missing %q", w)
				}
			}
			for _, w := range tt.notWant {
				if strings.Contains(text, w) {
					t.Errorf("preview should not contain %q", w)
				}
			}
		})
	}
}

func TestPreviewFollowsState(t *testing.T) {
	_, ts := newTestServer(t)

	postAction(t, ts.URL, `{"type":"select_tab","tab":"audit"}`)

	_, body := getBody(t, ts.URL+"/preview?theme=light")
	if !strings.Contains(string(body), "LOG_LEVEL: VERBOSE") {
		t.Error("preview should show the audit screen after select_tab")
	}
}

func TestRequestsAreLogged(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	logging.SetLogger(zap.New(core))
	defer logging.SetLogger(nil)

	_, ts := newTestServer(t)
	getBody(t, ts.URL+"/api/state")
	postAction(t, ts.URL, `{"type":"select_tab","tab":"nowhere"}`)

	requests := logs.FilterMessage("HTTP request").All()
	if len(requests) != 2 {
		t.Fatalf("logged %d requests, want 2", len(requests))
	}
	fields := requests[1].ContextMap()
	if fields["path"] != "/api/actions" || fields["status_code"] != int64(http.StatusBadRequest) {
		t.Errorf("second request fields = %v", fields)
	}
	if n := logs.FilterMessage("Action rejected").Len(); n != 1 {
		t.Errorf("rejected actions logged = %d, want 1", n)
	}
}

func TestWebSocketSnapshots(t *testing.T) {
	srv, ts := newTestServer(t)

	wsURL := "ws" + strings.TrimPrefix(ts.URL, "http") + "/ws"
	conn, resp, err := websocket.DefaultDialer.Dial(wsURL, nil)
	if err != nil {
		t.Fatalf("Dial() error = %v", err)
	}
	defer conn.Close()
	if resp.StatusCode != http.StatusSwitchingProtocols {
		t.Errorf("handshake status = %d, want 101", resp.StatusCode)
	}

	readState := func() automation.State {
		t.Helper()
		_ = conn.SetReadDeadline(time.Now().Add(5 * time.Second))
		var s automation.State
		if err := conn.ReadJSON(&s); err != nil {
			t.Fatalf("ReadJSON() error = %v", err)
		}
		return s
	}

	if first := readState(); first != automation.DefaultState() {
		t.Errorf("first snapshot = %+v, want default", first)
	}

	// Reduction over HTTP reaches the websocket
	postAction(t, ts.URL, `{"type":"select_tier","tier":"Eco"}`)
	if s := readState(); s.Tier != automation.TierEco {
		t.Errorf("snapshot tier = %s, want Eco", s.Tier)
	}

	// Actions sent over the socket are reduced too
	if err := conn.WriteMessage(websocket.TextMessage, []byte(`{"type":"select_tab","tab":"setup"}`)); err != nil {
		t.Fatalf("WriteMessage() error = %v", err)
	}
	if s := readState(); s.Tab != automation.TabSetup {
		t.Errorf("snapshot tab = %s, want setup", s.Tab)
	}

	// Invalid actions are dropped without closing the socket
	_ = conn.WriteMessage(websocket.TextMessage, []byte(`{"type":"select_tab","tab":"nowhere"}`))
	postAction(t, ts.URL, `{"type":"update_config","config":{"checkRssi":true}}`)
	if s := readState(); !s.Config.CheckRSSI || s.Tab != automation.TabSetup {
		t.Errorf("snapshot = %+v, want setup tab with RSSI check", s)
	}

	if got := srv.GetActiveConnections(); got != 1 {
		t.Errorf("GetActiveConnections() = %d, want 1", got)
	}
}

func TestWebSocketDisconnectUnsubscribes(t *testing.T) {
	srv, ts := newTestServer(t)

	wsURL := "ws" + strings.TrimPrefix(ts.URL, "http") + "/ws"
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	if err != nil {
		t.Fatalf("Dial() error = %v", err)
	}
	var s automation.State
	if err := conn.ReadJSON(&s); err != nil {
		t.Fatalf("ReadJSON() error = %v", err)
	}
	_ = conn.WriteMessage(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
	conn.Close()

	deadline := time.Now().Add(5 * time.Second)
	for srv.Store().Subscribers() != 0 || srv.GetActiveConnections() != 0 {
		if time.Now().After(deadline) {
			t.Fatalf("subscribers = %d, connections = %d after disconnect",
				srv.Store().Subscribers(), srv.GetActiveConnections())
		}
		time.Sleep(10 * time.Millisecond)
	}
}
