package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	specpkg "github.com/daap14/wcdash/api"
	"github.com/daap14/wcdash/internal/api"
	"github.com/daap14/wcdash/internal/config"
	"github.com/daap14/wcdash/internal/dashboard"
	"github.com/daap14/wcdash/internal/mcpserver"
	"github.com/daap14/wcdash/internal/worldcup"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	var (
		host  string
		port  int
		debug bool
	)

	cmd := &cobra.Command{
		Use:           "wcdash",
		Short:         "Serve the FIFA World Cup winners dashboard",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(c *cobra.Command, _ []string) error {
			cfg, err := config.Load()
			if err != nil {
				slog.Error("failed to load configuration", "error", err)
				return err
			}

			flags := c.Flags()
			if flags.Changed("host") {
				cfg.Host = host
			}
			if flags.Changed("port") {
				cfg.Port = port
			}
			if flags.Changed("debug") {
				cfg.Debug = debug
			}

			return run(cfg)
		},
	}

	cmd.Flags().StringVar(&host, "host", "", "interface to listen on (overrides HOST)")
	cmd.Flags().IntVar(&port, "port", 8050, "port to listen on (overrides PORT)")
	cmd.Flags().BoolVar(&debug, "debug", false, "enable debug logging (overrides DEBUG)")

	return cmd
}

func run(cfg *config.Config) error {
	setupLogger(cfg.EffectiveLogLevel())

	store, err := worldcup.LoadEmbedded()
	if err != nil {
		slog.Error("failed to load team table", "error", err)
		return err
	}
	views := dashboard.New(store)
	slog.Info("team table loaded", "teams", store.Len(), "years", len(store.Years()))

	deps := api.RouterDeps{
		Catalog:        store,
		Renderer:       views,
		Version:        cfg.Version,
		OpenAPISpec:    specpkg.OpenAPISpec,
		MetricsEnabled: cfg.MetricsEnabled,
	}
	if cfg.MCPEnabled {
		server := mcpserver.NewServer(mcpserver.NewTools(store, views), cfg.Version)
		deps.MCPHandler = mcpserver.NewHandler(server)
		deps.MCPPath = cfg.MCPPath
	}

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           api.NewRouter(deps),
		ReadHeaderTimeout: 10 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		slog.Info("starting dashboard server", "addr", srv.Addr, "version", cfg.Version, "debug", cfg.Debug)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-quit:
		slog.Info("shutting down server", "signal", sig.String())
	case err := <-serverErr:
		slog.Error("server error", "error", err)
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("server forced to shutdown", "error", err)
		return fmt.Errorf("shutting down server: %w", err)
	}

	slog.Info("server stopped gracefully")
	return nil
}

func setupLogger(level string) {
	var logLevel slog.Level
	switch level {
	case "debug":
		logLevel = slog.LevelDebug
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}

	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	})
	slog.SetDefault(slog.New(handler))
}
