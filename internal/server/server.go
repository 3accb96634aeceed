package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"sync"
	"syscall"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/muurk/btautolaunch/internal/automation"
	"github.com/muurk/btautolaunch/internal/catalog"
	"github.com/muurk/btautolaunch/internal/discovery"
	"github.com/muurk/btautolaunch/internal/logging"
	"github.com/muurk/btautolaunch/internal/version"
)

// shutdownTimeout bounds how long Shutdown waits for open connections
const shutdownTimeout = 10 * time.Second

// Config holds the server configuration
type Config struct {
	Host      string
	Port      int
	Advertise bool   // Register the server over mDNS
	Instance  string // mDNS instance name (defaults to the hostname)
	LogLevel  string // Empty keeps the current logger

	// Frame size used by GET /preview (zero uses the preview default)
	FrameWidth  int
	FrameHeight int
}

// Server serves the preview state over HTTP and websocket
type Server struct {
	config    *Config
	store     *Store
	providers catalog.Providers

	httpServer *http.Server
	listener   net.Listener
	advert     *discovery.Advertisement
	advertised bool

	wg          sync.WaitGroup
	mu          sync.Mutex
	activeConns map[string]*websocket.Conn
}

// New creates a new Server seeded with initial
func New(config *Config, initial automation.State, providers catalog.Providers) (*Server, error) {
	if config.LogLevel != "" {
		if err := logging.Initialize(config.LogLevel); err != nil {
			return nil, fmt.Errorf("failed to initialize logging: %w", err)
		}
	}
	if config.Port < 0 || config.Port > 65535 {
		return nil, fmt.Errorf("invalid port %d", config.Port)
	}
	if providers.Status != nil {
		initial.Status = providers.Status.Status()
	}

	return &Server{
		config:      config,
		store:       NewStore(initial),
		providers:   providers,
		activeConns: make(map[string]*websocket.Conn),
	}, nil
}

// Store returns the state store behind the server
func (s *Server) Store() *Store {
	return s.store
}

// Listen binds the listening socket. Start calls it when needed; calling it
// first lets a caller learn the port when Config.Port is 0.
func (s *Server) Listen() (net.Addr, error) {
	if s.listener != nil {
		return s.listener.Addr(), nil
	}
	addr := net.JoinHostPort(s.config.Host, strconv.Itoa(s.config.Port))
	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("failed to listen on %s: %w", addr, err)
	}
	s.listener = listener
	return listener.Addr(), nil
}

// Start serves until ctx is cancelled, SIGINT/SIGTERM arrives or the
// listener fails, then shuts down gracefully
func (s *Server) Start(ctx context.Context) error {
	addr, err := s.Listen()
	if err != nil {
		return err
	}

	logging.Info("Starting preview server",
		zap.String("addr", addr.String()),
		zap.String("version", version.Version),
		zap.Bool("advertise", s.config.Advertise),
	)

	s.httpServer = &http.Server{
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	if s.config.Advertise && !s.advertised {
		if err := s.Advertise(ctx); err != nil {
			// The server still works without mDNS
			logging.Warn("Failed to advertise preview server", zap.Error(err))
		}
	}

	// Set up signal handling for graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigChan)

	errChan := make(chan error, 1)
	go func() {
		errChan <- s.httpServer.Serve(s.listener)
	}()

	logging.Info("Server listening for connections",
		zap.String("addr", addr.String()),
	)

	select {
	case <-sigChan:
		logging.Info("Shutdown signal received, stopping server...")
		return s.Shutdown(context.Background())
	case <-ctx.Done():
		logging.Info("Context cancelled, stopping server...")
		return s.Shutdown(context.Background())
	case err := <-errChan:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}

// Advertise registers the server over mDNS. Start calls it when
// Config.Advertise is set and no earlier attempt was made, so a caller can
// advertise first to report a failure itself. The registration ends with
// ctx or Shutdown.
func (s *Server) Advertise(ctx context.Context) error {
	s.advertised = true
	addr, err := s.Listen()
	if err != nil {
		return err
	}
	tcp, ok := addr.(*net.TCPAddr)
	if !ok {
		return fmt.Errorf("unexpected listener address %s", addr)
	}
	instance := s.config.Instance
	if instance == "" {
		instance = discovery.DefaultInstance()
	}
	tabs := make([]string, 0, len(automation.Tabs()))
	for _, t := range automation.Tabs() {
		tabs = append(tabs, string(t))
	}

	advert, err := discovery.Advertise(ctx, instance, tcp.Port, []string{
		discovery.TxtVersion + "=" + version.Version,
		discovery.TxtTabs + "=" + strings.Join(tabs, ","),
	})
	if err != nil {
		return err
	}
	s.advert = advert
	return nil
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	logging.Info("Shutting down server...")

	if s.advert != nil {
		s.advert.Shutdown()
		s.advert = nil
	}

	ctx, cancel := context.WithTimeout(ctx, shutdownTimeout)
	defer cancel()

	var shutdownErr error
	if s.httpServer != nil {
		if err := s.httpServer.Shutdown(ctx); err != nil {
			logging.Error("Error stopping HTTP server", zap.Error(err))
			shutdownErr = err
		}
	} else if s.listener != nil {
		if err := s.listener.Close(); err != nil {
			logging.Error("Error closing listener", zap.Error(err))
		}
	}

	// Hijacked websocket connections are not tracked by http.Server
	s.mu.Lock()
	for addr, conn := range s.activeConns {
		logging.Info("Closing active connection", zap.String("remote_addr", addr))
		_ = conn.Close()
	}
	s.mu.Unlock()

	done := make(chan struct{})
	go func() {
		s.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		logging.Info("All connections closed gracefully")
	case <-ctx.Done():
		logging.Warn("Shutdown timeout, forcing close")
	}

	logging.Sync()

	return shutdownErr
}

// GetActiveConnections returns the number of open websocket connections
func (s *Server) GetActiveConnections() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.activeConns)
}

func (s *Server) track(remoteAddr string, conn *websocket.Conn) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.activeConns[remoteAddr] = conn
}

func (s *Server) untrack(remoteAddr string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.activeConns, remoteAddr)
}
