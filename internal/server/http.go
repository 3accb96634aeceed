package server

import (
	"bufio"
	"encoding/json"
	"errors"
	"io"
	"net"
	"net/http"
	"time"

	"github.com/charmbracelet/x/ansi"
	"go.uber.org/zap"

	"github.com/muurk/btautolaunch/internal/automation"
	"github.com/muurk/btautolaunch/internal/catalog"
	"github.com/muurk/btautolaunch/internal/logging"
	"github.com/muurk/btautolaunch/internal/preview"
	"github.com/muurk/btautolaunch/internal/theme"
	"github.com/muurk/btautolaunch/internal/version"
)

// maxActionBytes bounds the body of POST /api/actions
const maxActionBytes = 16 << 10

// CatalogResponse is the body of GET /api/catalog
type CatalogResponse struct {
	Devices []catalog.Device     `json:"devices"`
	Players []catalog.Player     `json:"players"`
	Vendors []catalog.VendorInfo `json:"vendors"`
}

// ErrorResponse is the body of every non-2xx API response
type ErrorResponse struct {
	Error string `json:"error"`
	Field string `json:"field,omitempty"`
}

// Handler returns the HTTP handler serving the preview API
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/state", s.handleState)
	mux.HandleFunc("POST /api/actions", s.handleAction)
	mux.HandleFunc("GET /api/catalog", s.handleCatalog)
	mux.HandleFunc("GET /api/version", s.handleVersion)
	mux.HandleFunc("GET /preview", s.handlePreview)
	mux.HandleFunc("GET /ws", s.handleWebSocket)
	return logRequests(mux)
}

func (s *Server) handleState(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.store.Snapshot())
}

func (s *Server) handleAction(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxActionBytes))
	if err != nil {
		writeError(w, http.StatusRequestEntityTooLarge, err)
		return
	}

	action, err := automation.DecodeAction(body)
	if err != nil {
		logging.LogActionRejected("http", err)
		writeError(w, http.StatusBadRequest, err)
		return
	}

	state := s.store.Dispatch(action)
	logging.LogAction("http", action, state)
	writeJSON(w, http.StatusOK, state)
}

func (s *Server) handleCatalog(w http.ResponseWriter, r *http.Request) {
	resp := CatalogResponse{
		Devices: []catalog.Device{},
		Players: []catalog.Player{},
		Vendors: []catalog.VendorInfo{},
	}
	if p := s.providers.Devices; p != nil {
		resp.Devices = append(resp.Devices, p.Devices()...)
	}
	if p := s.providers.Players; p != nil {
		resp.Players = append(resp.Players, p.Players()...)
	}
	if p := s.providers.Vendors; p != nil {
		resp.Vendors = append(resp.Vendors, p.Vendors()...)
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleVersion(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, version.Get())
}

// handlePreview renders the frame for the current state as plain text.
// Without a theme parameter both frames are drawn side by side.
func (s *Server) handlePreview(w http.ResponseWriter, r *http.Request) {
	themes := theme.Names()
	if q := r.URL.Query().Get("theme"); q != "" {
		name, err := theme.Parse(q)
		if err != nil {
			writeError(w, http.StatusBadRequest, err)
			return
		}
		themes = []theme.Name{name}
	}

	frame := preview.Render(s.store.Snapshot(),
		preview.WithProviders(s.providers),
		preview.WithThemes(themes...),
		preview.WithFrameSize(s.config.FrameWidth, s.config.FrameHeight),
	)

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = io.WriteString(w, ansi.Strip(frame)+"\n")
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logging.Error("Failed to encode response", zap.Error(err))
	}
}

func writeError(w http.ResponseWriter, status int, err error) {
	resp := ErrorResponse{Error: err.Error()}
	var actionErr *automation.ActionError
	if errors.As(err, &actionErr) {
		resp.Field = actionErr.Field
	}
	writeJSON(w, status, resp)
}

// statusRecorder captures the status code written by a handler
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

func (r *statusRecorder) Unwrap() http.ResponseWriter {
	return r.ResponseWriter
}

// Hijack lets the websocket upgrader take over the connection
func (r *statusRecorder) Hijack() (net.Conn, *bufio.ReadWriter, error) {
	h, ok := r.ResponseWriter.(http.Hijacker)
	if !ok {
		return nil, nil, errors.New("response writer does not support hijacking")
	}
	r.status = http.StatusSwitchingProtocols
	return h.Hijack()
}

func logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		logging.LogHTTPRequest(r.RemoteAddr, r.Method, r.URL.Path, rec.status, time.Since(start))
	})
}
