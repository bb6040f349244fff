package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/nao1215/auctioncrawl/internal/config"
	"github.com/nao1215/auctioncrawl/internal/model"
	"github.com/nao1215/auctioncrawl/internal/pipeline"
	"github.com/nao1215/auctioncrawl/internal/report"
	"github.com/spf13/cobra"
)

// NewCrawlCmd creates the crawl command.
func NewCrawlCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "crawl",
		Short: "Crawl every category once and print the result",
		Long: `Crawl fetches the category list page, extracts the categories, fetches every
category listing page concurrently and prints the product links per category.

A category whose listing page cannot be fetched (for example because of rate
limiting) stays in the result without product data. The crawl only fails when
the category list page itself cannot be fetched.

Examples:
  # Human-readable summary
  auctioncrawl crawl

  # The {total, productsByCategories} JSON document
  auctioncrawl crawl --json

  # JSON with run metadata, written to a file
  auctioncrawl crawl --json --metadata -o reports/crawl.json

  # Markdown report, at most 8 listing pages at once, 4 requests per second
  auctioncrawl crawl --markdown -n 8 -r 4

  # Route requests through a SOCKS5 proxy
  auctioncrawl crawl -x socks5://127.0.0.1:1080`,
		Args: cobra.NoArgs,
		RunE: runCrawlCmd,
	}

	addCrawlFlags(cmd)

	cmd.Flags().BoolP("json", "j", false,
		"Output JSON report (mutually exclusive with --markdown)")
	cmd.Flags().BoolP("markdown", "m", false,
		"Output Markdown report (mutually exclusive with --json)")
	cmd.Flags().Bool("metadata", false,
		"Wrap the JSON report with run metadata")
	cmd.Flags().StringP("output", "o", "",
		"Write report to specified file path (creates directories if needed)")

	return cmd
}

// runCrawlCmd executes the crawl command.
func runCrawlCmd(cmd *cobra.Command, _ []string) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}

	if cfg.JSONReport, err = cmd.Flags().GetBool("json"); err != nil {
		return err
	}
	if cfg.MarkdownReport, err = cmd.Flags().GetBool("markdown"); err != nil {
		return err
	}
	if cfg.ReportFile, err = cmd.Flags().GetString("output"); err != nil {
		return err
	}
	metadata, err := cmd.Flags().GetBool("metadata")
	if err != nil {
		return err
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	logger := setupLogger(cfg.Verbose, false)
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	crawlReport, err := runCrawl(ctx, cfg, logger)
	if err != nil {
		return err
	}

	return outputReport(cmd.OutOrStdout(), cfg, crawlReport, metadata)
}

// runCrawl performs one crawl as described by cfg.
func runCrawl(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*model.CrawlReport, error) {
	client, err := newClient(cfg, logger)
	if err != nil {
		return nil, err
	}

	p, err := newPipeline(cfg, client, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create pipeline: %w", err)
	}

	logger.Info("starting crawl",
		"home", cfg.HomeURL,
		"category_base", cfg.CategoryBaseURL,
		"concurrency", cfg.Concurrency,
		"rate", cfg.RateLimit,
	)

	crawlReport, err := pipeline.Crawl(ctx, p, cfg.HomeURL)
	if err != nil {
		return crawlReport, fmt.Errorf("crawl failed: %w", err)
	}

	result := crawlReport.Result
	logger.Info("crawl completed",
		"categories", result.Total,
		"products", result.ProductCount(),
		"failed", result.FailedCount(),
		"elapsed", crawlReport.Elapsed(),
	)

	return crawlReport, nil
}

// outputReport writes the crawl report in the requested format, to
// cfg.ReportFile when set and to stdout otherwise.
func outputReport(stdout io.Writer, cfg *config.Config, crawlReport *model.CrawlReport, metadata bool) error {
	output := stdout
	if cfg.ReportFile != "" {
		dir := filepath.Dir(cfg.ReportFile)
		if dir != "" && dir != "." {
			if err := os.MkdirAll(dir, 0750); err != nil {
				return fmt.Errorf("failed to create output directory: %w", err)
			}
		}

		f, err := os.OpenFile(cfg.ReportFile, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer f.Close()
		output = f
	}

	var writer report.Writer
	switch {
	case cfg.JSONReport && metadata:
		writer = report.NewFullJSONWriter(output, getVersion(), report.WithPrettyPrint())
	case cfg.JSONReport:
		writer = report.NewJSONWriter(output, report.WithPrettyPrint())
	case cfg.MarkdownReport:
		writer = report.NewMarkdownWriter(output)
	default:
		writer = report.NewSimpleWriter(output, report.WithVerbose(cfg.Verbose))
	}

	// A machine-readable file still gets a summary on the terminal.
	if cfg.ReportFile != "" && (cfg.JSONReport || cfg.MarkdownReport) {
		writer = report.NewMultiWriter(writer, report.NewSimpleWriter(stdout))
	}

	if _, err := writer.Write(crawlReport); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	return nil
}
