package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tetris/internal/api"
	"github.com/vovakirdan/tui-tetris/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagHTTPAddr    string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the Tetris SSH server",
	Long: `Start an SSH server that allows users to connect and play.

Each SSH connection gets its own session with a variant picker menu.
All users share the same score store, selected with --db.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.tetris/host_key

With --http, a read-only JSON API serves the leaderboards:
  GET /api/v1/health
  GET /api/v1/games
  GET /api/v1/scores/{variant}?limit=N

Examples:
  tetris serve                              # Listen on :23234 with auto-generated key
  tetris serve --ssh :2222                  # Listen on port 2222
  tetris serve --http :8080                 # Also serve the leaderboard API
  tetris serve --db redis://localhost:6379  # Share scores through Redis

Users can connect with:
  ssh localhost -p 23234`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().StringVar(&flagHTTPAddr, "http", "", "Leaderboard API address (disabled if empty)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
}

func runServe(cmd *cobra.Command, _ []string) error {
	logger := newLogger(os.Stderr, "tetris-ssh")

	store, err := openStore()
	if err != nil {
		// Continue without storage
		logger.Warn("could not open score store", "db", flagDBPath, "err", err)
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	cfg := tui.SSHServerConfig{
		Address:     flagSSHAddr,
		HostKeyPath: flagHostKey,
		TickRate:    flagFPS,
		IdleTimeout: time.Duration(flagIdleTimeout) * time.Minute,
	}
	server, err := tui.NewSSHServer(cfg, store, logger)
	if err != nil {
		return fmt.Errorf("cannot create server: %w", err)
	}

	if flagHTTPAddr != "" {
		httpLogger := newLogger(os.Stderr, "tetris-http")
		apiCfg := api.DefaultServerConfig()
		apiCfg.Addr = flagHTTPAddr
		httpServer := api.NewServer(api.NewRouter(api.RouterConfig{
			Logger: httpLogger,
			Store:  store,
			Limit:  storeLimit(),
		}), apiCfg, httpLogger)

		go func() {
			if err := httpServer.Start(); err != nil {
				httpLogger.Error("HTTP server failed", "err", err)
			}
		}()
		defer func() {
			if err := httpServer.Shutdown(context.Background()); err != nil {
				httpLogger.Warn("HTTP shutdown", "err", err)
			}
		}()
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	return server.ListenAndServe(ctx)
}
