package cmd

import (
	"fmt"
	"os/signal"
	"syscall"

	"github.com/mj1618/winctl/internal/config"
	"github.com/mj1618/winctl/internal/logger"
	"github.com/mj1618/winctl/internal/platform"
	"github.com/mj1618/winctl/internal/server"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start an MCP server exposing the window tools",
	Long: `Start a Model Context Protocol (MCP) server that exposes the window
operations as tools. AI agents can call tools directly without shell overhead.

Supported transports:
  stdio             Standard I/O (default, for MCP clients)
  streamable-http   Streamable HTTP transport (for remote agents)

The config file is watched while the server runs; changes to
activation.legacy_lock_timeout and log.level apply without a restart.

Examples:
  winctl serve
  winctl serve --transport streamable-http --port 8080`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().String("transport", "", "Transport: stdio, streamable-http (default from config, stdio)")
	serveCmd.Flags().Int("port", 0, "HTTP port for streamable-http transport (default from config, 8080)")
}

func runServe(cmd *cobra.Command, args []string) error {
	transport, _ := cmd.Flags().GetString("transport")
	if transport == "" {
		transport = cfg.Serve.Transport
	}
	port, _ := cmd.Flags().GetInt("port")
	if port == 0 {
		port = cfg.Serve.Port
	}

	provider, err := platform.NewProvider()
	if err != nil {
		return err
	}
	defer provider.Release()

	srv, err := server.New(provider, server.Config{
		Transport:         transport,
		Port:              port,
		LegacyLockTimeout: cfg.Activation.LegacyLockTimeout,
		WaitInterval:      cfg.WaitInterval(),
		WaitTimeout:       cfg.WaitTimeout(),
	})
	if err != nil {
		return fmt.Errorf("failed to create MCP server: %w", err)
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	configPath, _ := rootCmd.PersistentFlags().GetString("config")
	go func() {
		err := config.Watch(ctx, configPath, func(c *config.Config) {
			applyConfigLogLevel(c)
			srv.Reload(c)
		})
		if err != nil && ctx.Err() == nil {
			logger.Warnf("config watch stopped: %v", err)
		}
	}()

	return srv.Serve(ctx)
}
