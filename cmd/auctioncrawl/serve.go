package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/nao1215/auctioncrawl/internal/model"
	"github.com/nao1215/auctioncrawl/internal/pipeline"
	"github.com/nao1215/auctioncrawl/internal/server"
	"github.com/spf13/cobra"
)

// NewServeCmd creates the serve command.
func NewServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve crawl results over HTTP",
		Long: `Serve starts an HTTP server. Every GET /craw request runs one crawl and
responds with the {total, productsByCategories} JSON document. When the
category list page cannot be fetched the response is 500 with the body
"Error fetching HTML content".

GET /health responds 200 without crawling.

The server shuts down gracefully on SIGINT or SIGTERM.

Examples:
  auctioncrawl serve
  auctioncrawl serve --listen 127.0.0.1:8080 --json-logs`,
		Args: cobra.NoArgs,
		RunE: runServeCmd,
	}

	addCrawlFlags(cmd)

	cmd.Flags().StringP("listen", "l", "",
		"Address to listen on (default :3003)")
	cmd.Flags().Bool("json-logs", false,
		"Write logs as JSON")
	cmd.Flags().Duration("shutdown-timeout", server.DefaultShutdownTimeout,
		"Time allowed for in-flight requests on shutdown")

	return cmd
}

// runServeCmd executes the serve command.
func runServeCmd(cmd *cobra.Command, _ []string) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}

	listen, err := cmd.Flags().GetString("listen")
	if err != nil {
		return err
	}
	if listen != "" {
		cfg.ListenAddress = listen
	}
	jsonLogs, err := cmd.Flags().GetBool("json-logs")
	if err != nil {
		return err
	}
	shutdownTimeout, err := cmd.Flags().GetDuration("shutdown-timeout")
	if err != nil {
		return err
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	logger := setupLogger(cfg.Verbose, jsonLogs)
	slog.SetDefault(logger)

	client, err := newClient(cfg, logger)
	if err != nil {
		return err
	}
	p, err := newPipeline(cfg, client, logger)
	if err != nil {
		return fmt.Errorf("failed to create pipeline: %w", err)
	}

	crawl := func(ctx context.Context) (*model.CrawlReport, error) {
		return pipeline.Crawl(ctx, p, cfg.HomeURL)
	}

	srv, err := server.New(cfg.ListenAddress, crawl,
		server.WithLogger(logger),
		server.WithShutdownTimeout(shutdownTimeout),
		server.WithDebug(cfg.Verbose),
	)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	fmt.Fprintf(cmd.OutOrStdout(), "Listening on %s (GET /craw, request timeout %s)\n",
		srv.Addr(), client.Timeout().Round(time.Second))

	return srv.Run(ctx)
}
