package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/inkdropapp/mcp-server/internal"
	pkgconfig "github.com/inkdropapp/mcp-server/pkg/config"
	_ "github.com/joho/godotenv/autoload"
	"github.com/urfave/cli/v3"
)

func run(ctx context.Context, cmd *cli.Command) error {
	cfg := internal.NewDefaultConfig()

	// Defaults, then the optional file, then flags and their env sources.
	if err := pkgconfig.LoadOptional(cmd.String("config"), cfg); err != nil {
		return fmt.Errorf("failed to parse config: %w", err)
	}
	applyFlags(cmd, cfg)
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	opts := []internal.Option{
		internal.WithConfig(cfg),
	}

	if err := internal.Run(ctx, opts...); err != nil {
		return fmt.Errorf("app run error: %w", err)
	}

	return nil
}

// applyFlags overrides file values with flags or their environment sources.
func applyFlags(cmd *cli.Command, cfg *internal.Config) {
	if v := cmd.String("url"); v != "" {
		cfg.Inkdrop.URL = v
	}
	if v := cmd.String("username"); v != "" {
		cfg.Inkdrop.Username = v
	}
	if v := cmd.String("password"); v != "" {
		cfg.Inkdrop.Password = v
	}
	if v := cmd.String("transport"); v != "" {
		cfg.App.Transport = v
	}
	if v := cmd.Int("port"); v != 0 {
		cfg.App.HTTP.Port = int(v)
	}
}

func main() {
	cmd := &cli.Command{
		Name:   "inkdrop-mcp-server",
		Usage:  "MCP server exposing an Inkdrop database to LLM agents",
		Action: run,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to an optional config file",
				Sources: cli.EnvVars("APP_CONFIG_FILE"),
			},
			&cli.StringFlag{
				Name:    "url",
				Usage:   "Base URL of the Inkdrop local server",
				Sources: cli.EnvVars("INKDROP_LOCAL_SERVER_URL"),
			},
			&cli.StringFlag{
				Name:    "username",
				Usage:   "Inkdrop local server username",
				Sources: cli.EnvVars("INKDROP_LOCAL_USERNAME"),
			},
			&cli.StringFlag{
				Name:    "password",
				Usage:   "Inkdrop local server password",
				Sources: cli.EnvVars("INKDROP_LOCAL_PASSWORD"),
			},
			&cli.StringFlag{
				Name:    "transport",
				Usage:   "MCP transport: stdio or http",
				Sources: cli.EnvVars("INKDROP_MCP_TRANSPORT"),
			},
			&cli.IntFlag{
				Name:    "port",
				Usage:   "Listen port of the http transport",
				Sources: cli.EnvVars("INKDROP_MCP_PORT"),
			},
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		slog.Error("application error", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
