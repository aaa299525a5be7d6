package main

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/randalmurphal/websearch/config"
	"github.com/randalmurphal/websearch/internal/logging"
	"github.com/randalmurphal/websearch/mcpserver"
)

func newServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the MCP server",
		Long: `Runs an MCP server named ollama-web-search exposing the web_search and
web_fetch tools. The stdio transport talks over stdin/stdout; the http
transport serves streamable HTTP at /mcp with a health check at /healthz.

When --config is given the file is watched and the defaults for truncate,
max_chars and max_results are reloaded on change.`,
		Args: cobra.NoArgs,
		RunE: runServe,
	}
	cmd.Flags().String("transport", "", "transport: stdio or http (default from config)")
	cmd.Flags().String("addr", "", "listen address for the http transport")
	return cmd
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, path, svc, err := setup(cmd)
	if err != nil {
		return err
	}

	log := logging.New("mcpserver")
	srv := mcpserver.New(svc, defaultsFrom(cfg), mcpserver.WithLogger(log))

	ctx, cancel := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		// The watcher stops once the transport returns.
		defer cancel()
		if cfg.Transport == config.TransportHTTP {
			return srv.ListenAndServe(gctx, cfg.Addr)
		}
		return srv.ServeStdio(gctx)
	})

	if path != "" {
		g.Go(func() error {
			return config.Watch(gctx, path, func(next config.Config, err error) {
				if err != nil {
					log.Warn("config reload failed", slog.Any("error", err))
					return
				}
				if err := next.Validate(); err != nil {
					log.Warn("reloaded config is invalid, keeping previous defaults", slog.Any("error", err))
					return
				}
				srv.SetDefaults(defaultsFrom(next))
				log.Info("config reloaded", slog.String("path", path))
			})
		})
	}

	if err := g.Wait(); err != nil && !isShutdown(err) {
		return err
	}
	return nil
}

func defaultsFrom(cfg config.Config) mcpserver.Defaults {
	return mcpserver.Defaults{
		Truncate:   cfg.TruncateEnabled(),
		MaxChars:   cfg.MaxChars,
		MaxResults: cfg.MaxResults,
	}
}

func isShutdown(err error) bool {
	return errors.Is(err, context.Canceled)
}
