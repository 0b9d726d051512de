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
	"sync"
	"syscall"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/muurk/tipsplit/internal/discovery"
	"github.com/muurk/tipsplit/internal/logging"
	"github.com/muurk/tipsplit/internal/version"
)

// DefaultShutdownTimeout bounds how long Run waits for sessions to close
const DefaultShutdownTimeout = 10 * time.Second

// Config holds the server configuration
type Config struct {
	Host            string
	Port            int
	Advertise       bool   // Register the server via mDNS
	InstanceName    string // mDNS instance name (empty = derived from hostname)
	LogLevel        string // Initializes logging when non-empty
	ShutdownTimeout time.Duration
}

// Server serves the browser form over HTTP and WebSocket
type Server struct {
	config      *Config
	httpServer  *http.Server
	listener    net.Listener
	metrics     *Metrics
	advertiser  *discovery.Advertisement
	wg          sync.WaitGroup
	mu          sync.Mutex
	activeConns map[string]*websocket.Conn
	closing     bool // set by Shutdown; no new sessions after this
}

// New creates a new Server instance
func New(config *Config) (*Server, error) {
	if config == nil {
		return nil, errors.New("server config is required")
	}
	if config.Port < 0 || config.Port > 65535 {
		return nil, fmt.Errorf("invalid port: %d", config.Port)
	}

	if config.LogLevel != "" {
		if err := logging.Initialize(config.LogLevel); err != nil {
			return nil, fmt.Errorf("failed to initialize logging: %w", err)
		}
	}

	metrics, err := NewMetrics()
	if err != nil {
		return nil, fmt.Errorf("failed to register metrics: %w", err)
	}

	s := &Server{
		config:      config,
		metrics:     metrics,
		activeConns: make(map[string]*websocket.Conn),
	}
	s.httpServer = &http.Server{
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s, nil
}

// Addr returns the listening address, or nil before Listen
func (s *Server) Addr() net.Addr {
	if s.listener == nil {
		return nil
	}
	return s.listener.Addr()
}

// Listen binds the configured address. Port 0 picks a free port.
func (s *Server) Listen() error {
	addr := net.JoinHostPort(s.config.Host, strconv.Itoa(s.config.Port))
	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", addr, err)
	}
	s.listener = listener
	return nil
}

// Run serves until ctx is cancelled or SIGINT/SIGTERM arrives, then shuts down
func (s *Server) Run(ctx context.Context) error {
	if s.listener == nil {
		if err := s.Listen(); err != nil {
			return err
		}
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	logging.Info("Starting tipsplit server",
		zap.String("addr", s.listener.Addr().String()),
		zap.String("version", version.Version),
		zap.Bool("advertise", s.config.Advertise),
	)

	if s.config.Advertise {
		port := s.listener.Addr().(*net.TCPAddr).Port
		ad, err := discovery.Advertise(s.config.InstanceName, port, version.Version)
		if err != nil {
			// The form still works without mDNS
			logging.Warn("mDNS advertisement failed", zap.Error(err))
		} else {
			s.advertiser = ad
		}
	}

	errChan := make(chan error, 1)
	go func() {
		errChan <- s.httpServer.Serve(s.listener)
	}()

	select {
	case <-ctx.Done():
		logging.Info("Shutdown signal received, stopping server...")
		timeout := s.config.ShutdownTimeout
		if timeout <= 0 {
			timeout = DefaultShutdownTimeout
		}
		shutdownCtx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		return s.Shutdown(shutdownCtx)
	case err := <-errChan:
		s.advertiser.Shutdown()
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}

// trackConn registers a live WebSocket so Shutdown can close it. It returns
// false once Shutdown has started; the caller must then drop the connection.
func (s *Server) trackConn(sessionID string, conn *websocket.Conn) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closing {
		return false
	}
	s.activeConns[sessionID] = conn
	s.wg.Add(1)
	return true
}

func (s *Server) untrackConn(sessionID string) {
	s.mu.Lock()
	delete(s.activeConns, sessionID)
	s.mu.Unlock()
	s.wg.Done()
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	logging.Info("Shutting down server...")

	s.mu.Lock()
	s.closing = true
	s.mu.Unlock()

	s.advertiser.Shutdown()

	// Hijacked WebSocket connections are not tracked by http.Server
	if err := s.httpServer.Shutdown(ctx); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logging.Error("Error shutting down HTTP server", zap.Error(err))
	}

	s.mu.Lock()
	for id, conn := range s.activeConns {
		logging.Info("Closing active session", zap.String("session", id))
		_ = conn.WriteControl(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseGoingAway, "server shutting down"),
			time.Now().Add(writeWait))
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
		logging.Info("All sessions closed gracefully")
	case <-ctx.Done():
		logging.Warn("Shutdown timeout, forcing close")
	}

	logging.Sync()
	return nil
}

// GetActiveConnections returns the number of live WebSocket sessions
func (s *Server) GetActiveConnections() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.activeConns)
}
