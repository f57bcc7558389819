// Package internal provides the main application initialization and runtime logic.
package internal

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

	"golang.org/x/sync/errgroup"

	"github.com/inkdropapp/mcp-server/internal/api"
	"github.com/inkdropapp/mcp-server/internal/inkdrop"
	"github.com/inkdropapp/mcp-server/internal/mcpserver"
	"github.com/inkdropapp/mcp-server/internal/noteservice"
)

// Run starts the application with the given options.
func Run(ctx context.Context, opts ...Option) error {
	app := &application{
		stdin:  os.Stdin,
		stdout: os.Stdout,
		stderr: os.Stderr,
	}

	for _, opt := range opts {
		opt(app)
	}

	if app.config == nil {
		return fmt.Errorf("config is required")
	}

	cfg := app.config

	// Stdout carries the protocol, so logs go to stderr.
	logger := slog.New(slog.NewJSONHandler(app.stderr, &slog.HandlerOptions{
		Level: cfg.App.LogLevel,
	}))
	slog.SetDefault(logger)

	logger.Info("Configuration loaded",
		slog.String("transport", cfg.App.Transport),
		slog.String("inkdrop_url", cfg.Inkdrop.URL),
		slog.String("inkdrop_username", cfg.Inkdrop.Username),
		slog.String("log_level", cfg.App.LogLevel.String()))

	client := inkdrop.New(inkdrop.Config{
		BaseURL:  cfg.Inkdrop.URL,
		Username: cfg.Inkdrop.Username,
		Password: cfg.Inkdrop.Password,
		Timeout:  cfg.Inkdrop.Timeout,
	})
	srv := mcpserver.New(noteservice.NewService(client), logger)

	switch cfg.App.Transport {
	case TransportHTTP:
		return serveHTTP(ctx, cfg, srv, logger)
	default:
		return serveStdio(ctx, app, srv, logger)
	}
}

func serveStdio(ctx context.Context, app *application, srv *mcpserver.Server, logger *slog.Logger) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logger.Info("Inkdrop MCP server running on stdio")

	err := srv.ServeStdio(ctx, app.stdin, app.stdout)
	if err != nil && !errors.Is(err, context.Canceled) {
		logger.Error("stdio server error", slog.String("error", err.Error()))
		return fmt.Errorf("stdio server: %w", err)
	}

	logger.Info("Server stopped successfully")
	return nil
}

func serveHTTP(ctx context.Context, cfg *Config, srv *mcpserver.Server, logger *slog.Logger) error {
	router := api.NewRouter(srv.HTTPHandler(), cfg.Auth.AuthEnabled(), cfg.Auth.Token, logger)

	httpServer := &http.Server{
		Addr:              cfg.App.HTTP.Address(),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("Starting HTTP server",
			slog.String("address", cfg.App.HTTP.Address()),
			slog.String("mcp_path", api.MCPPath),
			slog.Bool("auth_enabled", cfg.Auth.AuthEnabled()))
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("HTTP server error: %w", err)
		}
		return nil
	})

	// Handle shutdown signals.
	g.Go(func() error {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		defer signal.Stop(quit)

		select {
		case sig := <-quit:
			logger.Info("Received shutdown signal", slog.String("signal", sig.String()))
		case <-gCtx.Done():
			logger.Info("Context cancelled, initiating shutdown")
		}

		logger.Info("Shutting down server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			logger.Error("HTTP server shutdown error", slog.String("error", err.Error()))
		}

		return nil
	})

	if err := g.Wait(); err != nil {
		logger.Error("Application error", slog.String("error", err.Error()))
		return err
	}

	logger.Info("Server stopped successfully")
	return nil
}
