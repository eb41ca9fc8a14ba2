// Package server exposes the window operations as MCP tools.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"sync"
	"time"

	mcpserver "github.com/mark3labs/mcp-go/server"
	"github.com/mj1618/winctl/internal/config"
	"github.com/mj1618/winctl/internal/logger"
	"github.com/mj1618/winctl/internal/platform"
	"github.com/mj1618/winctl/internal/version"
	"github.com/mj1618/winctl/internal/window"
)

// Config holds MCP server configuration.
type Config struct {
	Transport         string
	Port              int
	LegacyLockTimeout bool
	WaitInterval      time.Duration
	WaitTimeout       time.Duration
}

// Server wraps the MCP server with the window service.
type Server struct {
	cfg Config

	// providerMu serializes every call into the window system. Activation
	// mutates process-wide state (thread attachment, lock timeout) and must
	// not interleave with another tool call.
	providerMu sync.Mutex
	svc        *window.Service
	mcp        *mcpserver.MCPServer
}

// New creates an MCP server with all window tools registered.
func New(provider *platform.Provider, cfg Config) (*Server, error) {
	if provider == nil || provider.WindowSystem == nil {
		return nil, fmt.Errorf("window system not available on this platform")
	}
	switch cfg.Transport {
	case "", "stdio", "streamable-http":
	default:
		return nil, fmt.Errorf("unsupported transport: %s (use stdio or streamable-http)", cfg.Transport)
	}
	if cfg.Transport == "" {
		cfg.Transport = "stdio"
	}
	if cfg.WaitInterval <= 0 {
		cfg.WaitInterval = 500 * time.Millisecond
	}
	if cfg.WaitTimeout <= 0 {
		cfg.WaitTimeout = 30 * time.Second
	}

	logger.Infof("MCP server using %s window system", provider.Name)
	s := &Server{
		cfg: cfg,
		svc: window.NewService(provider.WindowSystem,
			window.WithLegacyLockTimeout(cfg.LegacyLockTimeout)),
	}
	s.mcp = mcpserver.NewMCPServer(
		"winctl",
		version.Version,
		mcpserver.WithToolCapabilities(false),
	)
	s.registerTools()
	return s, nil
}

// Serve runs the configured transport until ctx is done.
func (s *Server) Serve(ctx context.Context) error {
	switch s.cfg.Transport {
	case "stdio":
		logger.Infof("serving MCP on stdio")
		err := mcpserver.NewStdioServer(s.mcp).Listen(ctx, os.Stdin, os.Stdout)
		if errors.Is(err, context.Canceled) {
			return nil
		}
		return err
	case "streamable-http":
		addr := fmt.Sprintf(":%d", s.cfg.Port)
		httpServer := mcpserver.NewStreamableHTTPServer(s.mcp)
		errCh := make(chan error, 1)
		go func() {
			errCh <- httpServer.Start(addr)
		}()
		logger.Infof("serving MCP on http://localhost%s/mcp", addr)

		select {
		case err := <-errCh:
			if errors.Is(err, http.ErrServerClosed) {
				return nil
			}
			return err
		case <-ctx.Done():
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			return httpServer.Shutdown(shutdownCtx)
		}
	default:
		return fmt.Errorf("unsupported transport: %s (use stdio or streamable-http)", s.cfg.Transport)
	}
}

// Reload applies settings that can change while the server is running.
func (s *Server) Reload(c *config.Config) {
	s.providerMu.Lock()
	defer s.providerMu.Unlock()

	s.svc.SetLegacyLockTimeout(c.Activation.LegacyLockTimeout)
	s.cfg.LegacyLockTimeout = c.Activation.LegacyLockTimeout
	s.cfg.WaitInterval = c.WaitInterval()
	s.cfg.WaitTimeout = c.WaitTimeout()
	logger.Debugf("server settings reloaded: legacy_lock_timeout=%v wait=%s/%s",
		s.cfg.LegacyLockTimeout, s.cfg.WaitInterval, s.cfg.WaitTimeout)
}

// waitSettings reads the polling defaults under the lock.
func (s *Server) waitSettings() (interval, timeout time.Duration) {
	s.providerMu.Lock()
	defer s.providerMu.Unlock()
	return s.cfg.WaitInterval, s.cfg.WaitTimeout
}
